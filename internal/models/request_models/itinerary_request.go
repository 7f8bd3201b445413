package request_models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceCandidate is a place the user picked on the map. It is supplied by
// the client and consumed once per generation request.
type PlaceCandidate struct {
	ID          string      `json:"id" binding:"required"`
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Coordinates Coordinates `json:"coordinates"`
}

type GenerateItineraryRequest struct {
	UserID int              `json:"user_id" binding:"required,gt=0"`
	Places []PlaceCandidate `json:"places" binding:"required,min=1,dive"`
}
