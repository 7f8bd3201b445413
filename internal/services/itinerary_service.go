package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"rutero/internal/models/request_models"
	"rutero/internal/models/response_models"
	mem "rutero/pkg/memcache"
	"rutero/pkg/utils"
)

// Stage flow: fetching preferences -> composing -> generating -> parsing ->
// persisting. Each arrow is a single attempt; whether to re-run the whole
// pipeline is the caller's decision. Cancellation of ctx aborts in-flight
// network calls; already completed writes are never rolled back.
type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, userID int, places []request_models.PlaceCandidate) (*response_models.GeneratedItinerary, *utils.PipelineFailure)
}

type ItineraryService struct {
	preferences PreferenceServiceInterface
	composer    PromptComposerInterface
	generator   utils.TextGenerator
	parser      *ItineraryParser
	persistence ItineraryPersistenceInterface
	cache       mem.ItineraryCacheStore

	// Generation is the dominant latency source; its deadline is much
	// longer than the CRUD timeouts around it.
	generationTimeout time.Duration
	cacheTTL          time.Duration
}

func NewItineraryService(
	preferences PreferenceServiceInterface,
	composer PromptComposerInterface,
	generator utils.TextGenerator,
	parser *ItineraryParser,
	persistence ItineraryPersistenceInterface,
	cache mem.ItineraryCacheStore,
) ItineraryServiceInterface {
	return &ItineraryService{
		preferences:       preferences,
		composer:          composer,
		generator:         generator,
		parser:            parser,
		persistence:       persistence,
		cache:             cache,
		generationTimeout: 60 * time.Second,
		cacheTTL:          time.Hour,
	}
}

func (s *ItineraryService) GenerateItinerary(
	ctx context.Context,
	userID int,
	places []request_models.PlaceCandidate,
) (*response_models.GeneratedItinerary, *utils.PipelineFailure) {

	// Input errors fail fast, before any network call.
	if userID <= 0 {
		return nil, &utils.PipelineFailure{
			Stage:   utils.StageFetchingPreferences,
			Kind:    utils.KindInvalidInput,
			Message: "user id must be positive",
		}
	}
	if len(places) == 0 {
		return nil, &utils.PipelineFailure{
			Stage:   utils.StageComposing,
			Kind:    utils.KindInvalidInput,
			Message: "at least one place is required",
		}
	}

	// Preference fetch failures are recovered locally: generation proceeds
	// with the degraded default summary.
	summary, err := s.preferences.BuildAnswerSummary(ctx, userID)
	if err != nil {
		log.Printf("continuing without preferences for user %d: %v", userID, err)
	}

	prompt, err := s.composer.ComposeItineraryPrompt(places, summary)
	if err != nil {
		return nil, &utils.PipelineFailure{
			Stage:   utils.StageComposing,
			Kind:    utils.KindInvalidInput,
			Message: err.Error(),
			Detail:  err,
		}
	}

	cacheKey := mem.CacheKey(userID, prompt)
	if cached, ok := s.cache.Get(cacheKey); ok {
		log.Printf("itinerary cache hit for user %d", userID)
		return cached, nil
	}

	genCtx, cancel := context.WithTimeout(ctx, s.generationTimeout)
	defer cancel()

	rawText, err := s.generator.GenerateItinerary(genCtx, prompt)
	if err != nil {
		return nil, &utils.PipelineFailure{
			Stage:   utils.StageGenerating,
			Kind:    utils.ClassifyGenerationError(err),
			Message: "the generative service did not return an itinerary",
			Detail:  err,
		}
	}

	itinerary, parseFailure := s.parser.Parse(rawText)
	if parseFailure != nil {
		return nil, &utils.PipelineFailure{
			Stage:   utils.StageParsing,
			Kind:    string(parseFailure.Kind),
			Message: parseFailure.Message,
			Detail:  parseFailure,
		}
	}

	persisted, persistErr := s.persistence.PersistItinerary(ctx, itinerary, userID)
	if persistErr != nil && !persistErr.Partial {
		failure := &utils.PipelineFailure{
			Stage:   utils.StagePersisting,
			Kind:    persistErr.Kind,
			Message: "the itinerary could not be saved",
			Detail:  persistErr,
		}
		return nil, failure
	}

	result := &response_models.GeneratedItinerary{Itinerary: *itinerary}
	if persisted != nil {
		result.RouteID = persisted.RouteID
		result.PlaceIDs = persisted.PlaceIDs
	}
	if persistErr != nil {
		// Some link rows failed: degraded success, route and places exist.
		for _, order := range persisted.FailedOrders {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("place with order %d was saved but not linked to the route", order))
		}
		log.Printf("itinerary for user %d partially persisted: %v", userID, persistErr)
	}

	s.cache.Set(cacheKey, result, s.cacheTTL)
	return result, nil
}
