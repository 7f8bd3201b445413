// pkg/memcache/itinerary_cache.go
package mem

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"rutero/internal/models/response_models"
)

// ItineraryCacheStore keeps fully generated itineraries for a while so an
// identical re-invocation does not hit the generative endpoint (or persist a
// duplicate route) again.
type ItineraryCacheStore interface {
	Set(key string, result *response_models.GeneratedItinerary, ttl time.Duration)
	Get(key string) (*response_models.GeneratedItinerary, bool)
}

type cacheEntry struct {
	result    *response_models.GeneratedItinerary
	expiresAt time.Time
}

type ItineraryCache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
}

func NewItineraryCache() *ItineraryCache {
	return &ItineraryCache{
		data: make(map[string]cacheEntry),
	}
}

func (s *ItineraryCache) Set(key string, result *response_models.GeneratedItinerary, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = cacheEntry{
		result:    result,
		expiresAt: time.Now().Add(ttl),
	}

	// Opportunistic cleanup once the map grows.
	if len(s.data) > 1000 {
		now := time.Now()
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}

func (s *ItineraryCache) Get(key string) (*response_models.GeneratedItinerary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

// CacheKey derives a stable key from the user and the exact prompt text.
func CacheKey(userID int, prompt string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d|%s", userID, prompt)
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
