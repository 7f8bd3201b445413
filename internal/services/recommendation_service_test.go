package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rutero/internal/models/db_models"
	"rutero/pkg/utils"
)

type mockRecommendationRepo struct {
	logs []db_models.RecommendationLog
	err  error
}

func (m *mockRecommendationRepo) CreateLog(ctx context.Context, entry *db_models.RecommendationLog) error {
	if m.err != nil {
		return m.err
	}
	m.logs = append(m.logs, *entry)
	return nil
}

const recommenderReply = `{
  "recomendaciones": [
    {"place_type": "museo", "probabilidad": 0.8},
    {"place_type": "parque", "probabilidad": 0.6}
  ],
  "recomendacion_final": "museo"
}`

func TestFetchRecommendationKeepsPayloadKeyOrder(t *testing.T) {
	var captured []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, recommenderReply)
	}))
	defer ts.Close()

	client := NewRecommendationClientWithEndpoint(ts.URL)
	payload := RecommendationPayload{
		Transporte:  "en auto",
		Gastronomia: "vegetariana",
		Presupuesto: "economico",
		Acompanado:  "si",
		Actividad:   "relajado",
		Comida:      "si",
	}

	if _, err := client.FetchRecommendation(context.Background(), payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The recommender matches values to questions by position, so the key
	// order in the serialized body is part of the contract.
	body := string(captured)
	keys := []string{"transporte", "gastronomia", "presupuesto", "acompanado", "actividad", "comida"}
	last := -1
	for _, key := range keys {
		idx := strings.Index(body, `"`+key+`"`)
		if idx < 0 {
			t.Fatalf("payload missing key %q: %s", key, body)
		}
		if idx < last {
			t.Fatalf("key %q out of order in payload: %s", key, body)
		}
		last = idx
	}
}

func TestFetchRecommendationDecodesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		io.WriteString(w, recommenderReply)
	}))
	defer ts.Close()

	client := NewRecommendationClientWithEndpoint(ts.URL)
	got, err := client.FetchRecommendation(context.Background(), RecommendationPayload{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.RecomendacionFinal != "museo" {
		t.Errorf("final recommendation = %q, want 'museo'", got.RecomendacionFinal)
	}
	if len(got.Recomendaciones) != 2 || got.Recomendaciones[0].PlaceType != "museo" {
		t.Errorf("recommendations = %+v", got.Recomendaciones)
	}
	if got.Recomendaciones[0].Probabilidad != 0.8 {
		t.Errorf("probability = %v, want 0.8", got.Recomendaciones[0].Probabilidad)
	}
}

func TestFetchRecommendationNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewRecommendationClientWithEndpoint(ts.URL)
	_, err := client.FetchRecommendation(context.Background(), RecommendationPayload{})

	var statusErr *utils.HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected HTTPStatusError, got %v", err)
	}
	if statusErr.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", statusErr.Status)
	}
}

func TestRecommendPlaceTypesSendsNormalizedProfile(t *testing.T) {
	var captured RecommendationPayload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		io.WriteString(w, recommenderReply)
	}))
	defer ts.Close()

	answers := &mockAnswerRepo{answers: []db_models.Answer{
		answerRow("¿Cómo te transportas?", "En auto"),
		answerRow("¿Qué gastronomía?", "Vegetariana"),
		answerRow("¿Presupuesto?", "Económico"),
		answerRow("¿Acompañado?", "Sí"),
		answerRow("¿Actividad?", "Relajado"),
		answerRow("¿Comida?", "Sí"),
	}}
	logRepo := &mockRecommendationRepo{}
	svc := NewRecommendationService(
		NewPreferenceService(answers),
		NewRecommendationClientWithEndpoint(ts.URL),
		logRepo,
	)

	got, err := svc.RecommendPlaceTypes(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RecomendacionFinal != "museo" {
		t.Errorf("final recommendation = %q", got.RecomendacionFinal)
	}

	want := RecommendationPayload{
		Transporte:  "en auto",
		Gastronomia: "vegetariana",
		Presupuesto: "economico",
		Acompanado:  "si",
		Actividad:   "relajado",
		Comida:      "si",
	}
	if captured != want {
		t.Errorf("payload = %+v, want %+v", captured, want)
	}

	if len(logRepo.logs) != 1 {
		t.Fatalf("expected one log row, got %d", len(logRepo.logs))
	}
	entry := logRepo.logs[0]
	if entry.UserID != 7 || entry.FinalRecommendation != "museo" {
		t.Errorf("log entry = %+v", entry)
	}
	if len(entry.PlaceTypes) != 2 || entry.PlaceTypes[0] != "museo" || entry.PlaceTypes[1] != "parque" {
		t.Errorf("log place types = %v", entry.PlaceTypes)
	}
}

func TestRecommendPlaceTypesDegradesWithoutPreferences(t *testing.T) {
	var captured RecommendationPayload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		io.WriteString(w, recommenderReply)
	}))
	defer ts.Close()

	svc := NewRecommendationService(
		NewPreferenceService(&mockAnswerRepo{err: errors.New("connection refused")}),
		NewRecommendationClientWithEndpoint(ts.URL),
		&mockRecommendationRepo{},
	)

	if _, err := svc.RecommendPlaceTypes(context.Background(), 7); err != nil {
		t.Fatalf("empty profile must still produce a recommendation: %v", err)
	}
	if captured != (RecommendationPayload{}) {
		t.Errorf("expected empty payload after preference failure, got %+v", captured)
	}
}

func TestRecommendPlaceTypesClientFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	logRepo := &mockRecommendationRepo{}
	svc := NewRecommendationService(
		NewPreferenceService(&mockAnswerRepo{}),
		NewRecommendationClientWithEndpoint(ts.URL),
		logRepo,
	)

	if _, err := svc.RecommendPlaceTypes(context.Background(), 7); !errors.Is(err, utils.ErrRecommendationFailed) {
		t.Errorf("expected ErrRecommendationFailed, got %v", err)
	}
	if len(logRepo.logs) != 0 {
		t.Error("no log row may be written for a failed recommendation")
	}
}

func TestRecommendPlaceTypesLogFailureIsNotFatal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, recommenderReply)
	}))
	defer ts.Close()

	svc := NewRecommendationService(
		NewPreferenceService(&mockAnswerRepo{}),
		NewRecommendationClientWithEndpoint(ts.URL),
		&mockRecommendationRepo{err: errors.New("insert failed")},
	)

	got, err := svc.RecommendPlaceTypes(context.Background(), 7)
	if err != nil {
		t.Fatalf("audit log failure must not fail the call: %v", err)
	}
	if got.RecomendacionFinal != "museo" {
		t.Errorf("final recommendation = %q", got.RecomendacionFinal)
	}
}
