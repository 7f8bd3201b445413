package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"rutero/internal/models/db_models"
	"rutero/internal/models/response_models"
	"rutero/internal/repositories"
	"rutero/pkg/utils"
)

// PersistenceResult carries whatever was written, even on failure, so a
// caller can surface a degraded success instead of throwing the route away.
type PersistenceResult struct {
	RouteID      uint
	PlaceIDs     []uint
	Orders       []int
	FailedOrders []int
}

// PersistenceError identifies which stage of the three-step write failed.
// Partial marks the links stage having written some rows but not all;
// compensating cleanup is deliberately left to the operator.
type PersistenceError struct {
	Kind    string
	Partial bool
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

type ItineraryPersistenceInterface interface {
	// PersistItinerary writes the route header, then the places, then the
	// order links. Place ids are returned in ascending order-key order.
	PersistItinerary(ctx context.Context, itinerary *response_models.Itinerary, userID int) (*PersistenceResult, *PersistenceError)
}

type ItineraryPersistence struct {
	routeRepo repositories.RouteRepository
}

func NewItineraryPersistence(routeRepo repositories.RouteRepository) ItineraryPersistenceInterface {
	return &ItineraryPersistence{routeRepo: routeRepo}
}

func (s *ItineraryPersistence) PersistItinerary(
	ctx context.Context,
	itinerary *response_models.Itinerary,
	userID int,
) (*PersistenceResult, *PersistenceError) {

	// Sort the order keys numerically up front. The map iteration order is
	// meaningless; the keys themselves carry the visiting order.
	orders := make([]int, 0, len(itinerary.Lugares))
	for key := range itinerary.Lugares {
		order, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}
	sort.Ints(orders)

	meta := itinerary.Metadata
	route := &db_models.Route{
		UserID:      userID,
		RouteName:   meta.Titulo,
		Description: meta.DescripcionGeneral,
		Duration:    meta.TotalDuracion,
		Distance:    meta.TotalDistancia,
		Coordinates: fmt.Sprintf("%s;%s", meta.CoordenadaStart, meta.CoordenadaEnd),
	}

	routeID, err := s.routeRepo.CreateRoute(ctx, route)
	if err != nil {
		return nil, &PersistenceError{Kind: utils.KindRouteSaveFailed, Err: err}
	}

	result := &PersistenceResult{RouteID: routeID, Orders: orders}

	places := make([]db_models.TouristPlace, 0, len(orders))
	for _, order := range orders {
		entry := itinerary.Lugares[strconv.Itoa(order)]
		rawData, _ := json.Marshal(entry)
		places = append(places, db_models.TouristPlace{
			Nombre:          entry.Nombre,
			CostoPromedio:   entry.CostoPromedio,
			Recomendaciones: entry.Recomendaciones,
			Notas:           entry.Notas,
			Coordenadas:     entry.Coordenadas,
			RawData:         rawData,
		})
	}

	placeIDs, err := s.routeRepo.CreateTouristPlaces(ctx, places)
	if err != nil {
		return result, &PersistenceError{Kind: utils.KindPlacesSaveFail, Err: err}
	}
	result.PlaceIDs = placeIDs

	// Link writes are independent rows; run them concurrently and report
	// each outcome instead of failing the batch on the first error.
	linkErrs := make([]error, len(placeIDs))
	var wg sync.WaitGroup
	for i, placeID := range placeIDs {
		wg.Add(1)
		go func(i int, placeID uint) {
			defer wg.Done()
			linkErrs[i] = s.routeRepo.CreatePlaceLink(ctx, &db_models.PlaceInRoute{
				RouteID:        routeID,
				TouristPlaceID: placeID,
				OrderNumber:    orders[i],
			})
		}(i, placeID)
	}
	wg.Wait()

	var firstErr error
	for i, linkErr := range linkErrs {
		if linkErr != nil {
			result.FailedOrders = append(result.FailedOrders, orders[i])
			if firstErr == nil {
				firstErr = linkErr
			}
		}
	}

	if firstErr != nil {
		return result, &PersistenceError{
			Kind:    utils.KindLinksSaveFail,
			Partial: len(result.FailedOrders) < len(placeIDs),
			Err:     firstErr,
		}
	}

	return result, nil
}
