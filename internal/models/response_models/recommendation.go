package response_models

type PlaceTypeRecommendation struct {
	PlaceType    string  `json:"place_type"`
	Probabilidad float64 `json:"probabilidad"`
}

type RecommendationResponse struct {
	Recomendaciones    []PlaceTypeRecommendation `json:"recomendaciones"`
	RecomendacionFinal string                    `json:"recomendacion_final"`
}
