package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"rutero/internal/models/response_models"
	"rutero/pkg/utils"
)

// ItineraryParser turns the raw, untrusted model output into a validated
// Itinerary. The model may wrap its JSON in markdown fences, omit fields or
// emit garbage; the parser recovers as much usable structure as it can and
// reports a distinguishable failure otherwise. It never fabricates place
// entries and it is stateless, so parsing the same text twice yields the
// same result.
type ItineraryParser struct {
	// StrictOrderKeys rejects itineraries whose place keys are not valid
	// integers instead of skipping them.
	StrictOrderKeys bool
}

func NewItineraryParser() *ItineraryParser {
	return &ItineraryParser{}
}

func (p *ItineraryParser) Parse(raw string) (*response_models.Itinerary, *utils.ParseFailure) {
	text := strings.TrimSpace(raw)

	// The tagged opener must be checked first: "```" is a prefix of
	// "```json" and would otherwise leave "json" glued to the payload.
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}
	text = strings.TrimSpace(text)

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &utils.ParseFailure{
			Kind:    utils.ParseSyntaxError,
			Message: err.Error(),
			Raw:     raw,
		}
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, &utils.ParseFailure{
			Kind:    utils.ParseSchemaError,
			Message: "top level is not a JSON object",
			Raw:     raw,
		}
	}

	meta, ok := root["metadata"].(map[string]any)
	if !ok {
		return nil, &utils.ParseFailure{
			Kind:    utils.ParseSchemaError,
			Message: `missing or invalid "metadata" object`,
			Raw:     raw,
		}
	}

	rawPlaces, ok := root["lugares"].(map[string]any)
	if !ok {
		// Some model replies use the English key.
		if rawPlaces, ok = root["places"].(map[string]any); !ok {
			return nil, &utils.ParseFailure{
				Kind:    utils.ParseSchemaError,
				Message: `missing or invalid "lugares" object`,
				Raw:     raw,
			}
		}
	}

	itinerary := &response_models.Itinerary{
		Metadata: response_models.ItineraryMetadata{
			Titulo:             stringField(meta, "titulo"),
			DescripcionGeneral: stringField(meta, "descripcion_general"),
			TotalDuracion:      stringField(meta, "total_duracion"),
			TotalDistancia:     stringField(meta, "total_distancia"),
			CoordenadaStart:    stringField(meta, "coordenada_start"),
			CoordenadaEnd:      stringField(meta, "coordenada_end"),
		},
		Lugares: make(map[string]response_models.ItineraryPlace, len(rawPlaces)),
	}

	for key, value := range rawPlaces {
		order, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || order < 1 {
			if p.StrictOrderKeys {
				return nil, &utils.ParseFailure{
					Kind:    utils.ParseSchemaError,
					Message: fmt.Sprintf("invalid place order key %q", key),
					Raw:     raw,
				}
			}
			continue
		}

		entry, ok := value.(map[string]any)
		if !ok {
			continue
		}

		name := stringField(entry, "nombre")
		if name == "" {
			name = stringField(entry, "name")
		}
		if name == "" {
			continue
		}

		itinerary.Lugares[strconv.Itoa(order)] = response_models.ItineraryPlace{
			Nombre:          name,
			CostoPromedio:   stringField(entry, "costo_promedio"),
			Recomendaciones: stringField(entry, "recomendaciones"),
			Notas:           stringField(entry, "notas"),
			Coordenadas:     stringField(entry, "coordenadas"),
		}
	}

	return itinerary, nil
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
