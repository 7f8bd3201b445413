package services

import (
	"context"
	"time"

	"rutero/internal/models/response_models"
	"rutero/internal/repositories"
	"rutero/pkg/utils"
)

type HistoryServiceInterface interface {
	ListItineraryHistory(ctx context.Context, userID int) ([]response_models.ItineraryHistoryItem, error)
}

type HistoryService struct {
	routeRepo repositories.RouteRepository
}

func NewHistoryService(routeRepo repositories.RouteRepository) HistoryServiceInterface {
	return &HistoryService{routeRepo: routeRepo}
}

func (s *HistoryService) ListItineraryHistory(ctx context.Context, userID int) ([]response_models.ItineraryHistoryItem, error) {
	if userID <= 0 {
		return nil, utils.ErrInvalidInput
	}

	links, err := s.routeRepo.ListDetailedHistoryByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryHistoryItem, 0, len(links))
	for _, link := range links {
		out = append(out, response_models.ItineraryHistoryItem{
			RouteID:        link.RouteID,
			TouristPlaceID: link.TouristPlaceID,
			OrderNumber:    link.OrderNumber,
			Route: response_models.HistoryRoute{
				ID:               link.Route.RouteID,
				Name:             link.Route.RouteName,
				Description:      link.Route.Description,
				Duration:         link.Route.Duration,
				Distance:         link.Route.Distance,
				Coordinates:      link.Route.Coordinates,
				RegistrationDate: link.Route.RegistrationDate.Format(time.RFC3339),
			},
			Place: response_models.HistoryTouristPlace{
				ID:              link.Place.TouristPlaceID,
				Nombre:          link.Place.Nombre,
				CostoPromedio:   link.Place.CostoPromedio,
				Recomendaciones: link.Place.Recomendaciones,
				Notas:           link.Place.Notas,
				Coordenadas:     link.Place.Coordenadas,
			},
		})
	}

	return out, nil
}
