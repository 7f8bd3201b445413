package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"rutero/internal/models/request_models"
	"rutero/pkg/utils"
)

func testPlaces(n int) []request_models.PlaceCandidate {
	places := make([]request_models.PlaceCandidate, 0, n)
	for i := 1; i <= n; i++ {
		places = append(places, request_models.PlaceCandidate{
			ID:          fmt.Sprintf("p%d", i),
			Name:        fmt.Sprintf("Lugar %d", i),
			Description: fmt.Sprintf("descripcion %d", i),
		})
	}
	return places
}

func TestComposeItineraryPromptEnumeratesAllPlaces(t *testing.T) {
	composer := NewPromptComposer()

	for _, n := range []int{1, 2, 5, 12} {
		prompt, err := composer.ComposeItineraryPrompt(testPlaces(n), "sin preferencias")
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}

		for i := 1; i <= n; i++ {
			line := fmt.Sprintf("%d. Lugar %d (descripcion %d)", i, i, i)
			if !strings.Contains(prompt, line) {
				t.Errorf("n=%d: prompt missing destination line %q", n, line)
			}
		}
		// The count rule must state the exact N.
		if !strings.Contains(prompt, fmt.Sprintf("exactamente %d", n)) {
			t.Errorf("n=%d: prompt missing exact entry count rule", n)
		}
	}
}

func TestComposeItineraryPromptContainsSchemaFieldNames(t *testing.T) {
	composer := NewPromptComposer()
	prompt, err := composer.ComposeItineraryPrompt(testPlaces(2), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, field := range []string{
		"titulo",
		"descripcion_general",
		"total_duracion",
		"total_distancia",
		"coordenada_start",
		"coordenada_end",
		"nombre",
		"costo_promedio",
		"recomendaciones",
		"notas",
		"coordenadas",
		"lugares",
	} {
		if !strings.Contains(prompt, `"`+field+`"`) {
			t.Errorf("prompt missing schema field %q", field)
		}
	}
}

func TestComposeItineraryPromptEmbedsAnswerSummary(t *testing.T) {
	composer := NewPromptComposer()
	summary := "¿Cómo viajas?: En auto; ¿Presupuesto?: Bajo"

	prompt, err := composer.ComposeItineraryPrompt(testPlaces(1), summary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, summary) {
		t.Error("prompt does not embed the answer summary")
	}
}

func TestComposeItineraryPromptIsDeterministic(t *testing.T) {
	composer := NewPromptComposer()
	places := testPlaces(4)

	first, err1 := composer.ComposeItineraryPrompt(places, "resumen")
	second, err2 := composer.ComposeItineraryPrompt(places, "resumen")
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Error("identical input produced different prompts")
	}
}

func TestComposeItineraryPromptEmptyPlacesFailsFast(t *testing.T) {
	composer := NewPromptComposer()

	if _, err := composer.ComposeItineraryPrompt(nil, "x"); !errors.Is(err, utils.ErrEmptyPlaceList) {
		t.Errorf("expected ErrEmptyPlaceList, got %v", err)
	}
}
