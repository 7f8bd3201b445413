package response_models

// ItineraryMetadata mirrors the Spanish field names the model is instructed
// to produce. These names are the wire contract with the prompt; do not
// translate them.
type ItineraryMetadata struct {
	Titulo             string `json:"titulo"`
	DescripcionGeneral string `json:"descripcion_general"`
	TotalDuracion      string `json:"total_duracion"`
	TotalDistancia     string `json:"total_distancia"`
	CoordenadaStart    string `json:"coordenada_start"`
	CoordenadaEnd      string `json:"coordenada_end"`
}

type ItineraryPlace struct {
	Nombre          string `json:"nombre"`
	CostoPromedio   string `json:"costo_promedio"`
	Recomendaciones string `json:"recomendaciones"`
	Notas           string `json:"notas"`
	Coordenadas     string `json:"coordenadas"`
}

// Itinerary is the validated result of parsing the model output. Lugares is
// keyed by the visiting order serialized as a string ("1", "2", ...); the
// keys are expected to be consecutive integers starting at 1, though the
// parser repairs rather than rejects deviations.
type Itinerary struct {
	Metadata ItineraryMetadata         `json:"metadata"`
	Lugares  map[string]ItineraryPlace `json:"lugares"`
}

// GeneratedItinerary is what the generation endpoint returns to the client:
// the itinerary plus the identifiers of the persisted records. Warnings is
// populated when persistence partially failed and the result is degraded.
type GeneratedItinerary struct {
	Itinerary
	RouteID  uint     `json:"route_id,omitempty"`
	PlaceIDs []uint   `json:"place_ids,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
