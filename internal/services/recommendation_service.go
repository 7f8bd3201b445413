package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"rutero/internal/models/db_models"
	"rutero/internal/models/response_models"
	"rutero/internal/repositories"
	"rutero/pkg/utils"
)

// RecommendationPayload is the request body of the place-type recommender.
// The six keys and their order mirror the fixed question ordering; the
// service matches values to questions positionally, so this layout is a
// brittle external contract. Do not reorder or rename fields.
type RecommendationPayload struct {
	Transporte  string `json:"transporte"`
	Gastronomia string `json:"gastronomia"`
	Presupuesto string `json:"presupuesto"`
	Acompanado  string `json:"acompanado"`
	Actividad   string `json:"actividad"`
	Comida      string `json:"comida"`
}

type RecommendationClient interface {
	FetchRecommendation(ctx context.Context, payload RecommendationPayload) (*response_models.RecommendationResponse, error)
}

type restRecommendationClient struct {
	httpClient *http.Client
	endpoint   string
}

func NewRecommendationClient() RecommendationClient {
	endpoint := os.Getenv("RECOMMENDER_URL")
	if endpoint == "" {
		log.Println("RECOMMENDER_URL is empty, recommendation calls will fail")
	}
	return &restRecommendationClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
	}
}

func NewRecommendationClientWithEndpoint(endpoint string) RecommendationClient {
	return &restRecommendationClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
	}
}

func (c *restRecommendationClient) FetchRecommendation(ctx context.Context, payload RecommendationPayload) (*response_models.RecommendationResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode recommendation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build recommendation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call recommendation endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &utils.HTTPStatusError{Status: resp.StatusCode}
	}

	var parsed response_models.RecommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode recommendation response: %w", err)
	}

	return &parsed, nil
}

type RecommendationServiceInterface interface {
	// RecommendPlaceTypes aggregates the user's preferences, asks the
	// recommender for place types and records the outcome.
	RecommendPlaceTypes(ctx context.Context, userID int) (*response_models.RecommendationResponse, error)
}

type RecommendationService struct {
	preferences PreferenceServiceInterface
	client      RecommendationClient
	logRepo     repositories.RecommendationRepository
}

func NewRecommendationService(
	preferences PreferenceServiceInterface,
	client RecommendationClient,
	logRepo repositories.RecommendationRepository,
) RecommendationServiceInterface {
	return &RecommendationService{
		preferences: preferences,
		client:      client,
		logRepo:     logRepo,
	}
}

func (s *RecommendationService) RecommendPlaceTypes(ctx context.Context, userID int) (*response_models.RecommendationResponse, error) {
	if userID <= 0 {
		return nil, utils.ErrInvalidInput
	}

	profile, err := s.preferences.BuildPreferenceProfile(ctx, userID)
	if err != nil {
		// Same degradation rule as the itinerary pipeline: an empty
		// profile still produces a (generic) recommendation.
		log.Printf("recommending with empty profile for user %d: %v", userID, err)
	}

	payload := RecommendationPayload{
		Transporte:  profile.Transport,
		Gastronomia: profile.Diet,
		Presupuesto: profile.Budget,
		Acompanado:  profile.Companionship,
		Actividad:   profile.ActivityLevel,
		Comida:      profile.FoodInclusion,
	}

	recommendation, err := s.client.FetchRecommendation(ctx, payload)
	if err != nil {
		log.Printf("recommendation fetch failed for user %d: %v", userID, err)
		return nil, utils.ErrRecommendationFailed
	}

	placeTypes := make([]string, 0, len(recommendation.Recomendaciones))
	for _, r := range recommendation.Recomendaciones {
		placeTypes = append(placeTypes, r.PlaceType)
	}

	entry := &db_models.RecommendationLog{
		UserID:              userID,
		PlaceTypes:          placeTypes,
		FinalRecommendation: recommendation.RecomendacionFinal,
	}
	if err := s.logRepo.CreateLog(ctx, entry); err != nil {
		// The recommendation is still usable; only the audit row is lost.
		log.Printf("could not store recommendation log for user %d: %v", userID, err)
	}

	return recommendation, nil
}
