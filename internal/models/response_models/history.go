package response_models

// ItineraryHistoryItem is one visited-place row of a stored itinerary,
// joined with its route header and place details.
type ItineraryHistoryItem struct {
	RouteID        uint                `json:"Route_ID"`
	TouristPlaceID uint                `json:"TouristPlace_ID"`
	OrderNumber    int                 `json:"Order_Number"`
	Route          HistoryRoute        `json:"route"`
	Place          HistoryTouristPlace `json:"place"`
}

type HistoryRoute struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Duration         string `json:"duration"`
	Distance         string `json:"distance"`
	Coordinates      string `json:"coordinates"`
	RegistrationDate string `json:"registration_date"`
}

type HistoryTouristPlace struct {
	ID              uint   `json:"id"`
	Nombre          string `json:"nombre"`
	CostoPromedio   string `json:"costo_promedio"`
	Recomendaciones string `json:"recomendaciones"`
	Notas           string `json:"notas"`
	Coordenadas     string `json:"coordenadas"`
}
