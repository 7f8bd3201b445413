package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"rutero/internal/models/db_models"
	"rutero/internal/models/response_models"
	"rutero/pkg/utils"
)

type mockRouteRepo struct {
	mu sync.Mutex

	routeErr  error
	placesErr error
	// linkErrByOrder fails the link write for specific order numbers.
	linkErrByOrder map[int]error

	nextPlaceID   uint
	createdRoute  *db_models.Route
	createdPlaces []db_models.TouristPlace
	createdLinks  []db_models.PlaceInRoute
}

func newMockRouteRepo() *mockRouteRepo {
	return &mockRouteRepo{nextPlaceID: 100}
}

func (m *mockRouteRepo) CreateRoute(ctx context.Context, route *db_models.Route) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.routeErr != nil {
		return 0, m.routeErr
	}
	route.RouteID = 1
	m.createdRoute = route
	return route.RouteID, nil
}

func (m *mockRouteRepo) CreateTouristPlaces(ctx context.Context, places []db_models.TouristPlace) ([]uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.placesErr != nil {
		return nil, m.placesErr
	}
	ids := make([]uint, len(places))
	for i := range places {
		m.nextPlaceID++
		places[i].TouristPlaceID = m.nextPlaceID
		ids[i] = m.nextPlaceID
	}
	m.createdPlaces = append(m.createdPlaces, places...)
	return ids, nil
}

func (m *mockRouteRepo) CreatePlaceLink(ctx context.Context, link *db_models.PlaceInRoute) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.linkErrByOrder[link.OrderNumber]; err != nil {
		return err
	}
	m.createdLinks = append(m.createdLinks, *link)
	return nil
}

func (m *mockRouteRepo) ListDetailedHistoryByUserID(ctx context.Context, userID int) ([]db_models.PlaceInRoute, error) {
	return nil, nil
}

func twoPlaceItinerary() *response_models.Itinerary {
	return &response_models.Itinerary{
		Metadata: response_models.ItineraryMetadata{
			Titulo:          "Ruta",
			TotalDuracion:   "4 horas",
			CoordenadaStart: "0,0",
			CoordenadaEnd:   "1,1",
		},
		// Deliberately out of numeric order: persistence must sort by the
		// order keys, not by map iteration order.
		Lugares: map[string]response_models.ItineraryPlace{
			"2": {Nombre: "A"},
			"1": {Nombre: "B"},
		},
	}
}

func TestPersistItineraryOrdersByOrderKey(t *testing.T) {
	repo := newMockRouteRepo()
	svc := NewItineraryPersistence(repo)

	result, perr := svc.PersistItinerary(context.Background(), twoPlaceItinerary(), 7)
	if perr != nil {
		t.Fatalf("unexpected persistence error: %v", perr)
	}

	if result.RouteID != 1 {
		t.Errorf("route id = %d, want 1", result.RouteID)
	}
	if len(result.PlaceIDs) != 2 {
		t.Fatalf("expected 2 place ids, got %d", len(result.PlaceIDs))
	}

	// Order key "1" is B, so B must be persisted first.
	if repo.createdPlaces[0].Nombre != "B" || repo.createdPlaces[1].Nombre != "A" {
		t.Errorf("places persisted out of order: %q, %q",
			repo.createdPlaces[0].Nombre, repo.createdPlaces[1].Nombre)
	}

	if len(repo.createdLinks) != 2 {
		t.Fatalf("expected 2 link rows, got %d", len(repo.createdLinks))
	}
	linkByOrder := make(map[int]db_models.PlaceInRoute)
	for _, link := range repo.createdLinks {
		linkByOrder[link.OrderNumber] = link
	}
	if linkByOrder[1].TouristPlaceID != result.PlaceIDs[0] {
		t.Errorf("order 1 linked to place %d, want %d", linkByOrder[1].TouristPlaceID, result.PlaceIDs[0])
	}
	if linkByOrder[2].TouristPlaceID != result.PlaceIDs[1] {
		t.Errorf("order 2 linked to place %d, want %d", linkByOrder[2].TouristPlaceID, result.PlaceIDs[1])
	}
	for _, link := range repo.createdLinks {
		if link.RouteID != result.RouteID {
			t.Errorf("link carries route id %d, want %d", link.RouteID, result.RouteID)
		}
	}
}

func TestPersistItineraryRouteMetadata(t *testing.T) {
	repo := newMockRouteRepo()
	svc := NewItineraryPersistence(repo)

	if _, perr := svc.PersistItinerary(context.Background(), twoPlaceItinerary(), 7); perr != nil {
		t.Fatalf("unexpected persistence error: %v", perr)
	}

	route := repo.createdRoute
	if route.UserID != 7 {
		t.Errorf("route user id = %d, want 7", route.UserID)
	}
	if route.RouteName != "Ruta" {
		t.Errorf("route name = %q, want 'Ruta'", route.RouteName)
	}
	if route.Coordinates != "0,0;1,1" {
		t.Errorf("route coordinates = %q, want start;end pair", route.Coordinates)
	}
}

func TestPersistItineraryRouteFailureAbortsEverything(t *testing.T) {
	repo := newMockRouteRepo()
	repo.routeErr = errors.New("insert failed")
	svc := NewItineraryPersistence(repo)

	result, perr := svc.PersistItinerary(context.Background(), twoPlaceItinerary(), 7)
	if result != nil {
		t.Errorf("expected no result after route failure, got %+v", result)
	}
	if perr == nil || perr.Kind != utils.KindRouteSaveFailed {
		t.Fatalf("expected route_save_failed, got %v", perr)
	}
	if len(repo.createdPlaces) != 0 || len(repo.createdLinks) != 0 {
		t.Error("nothing may be written after the route stage fails")
	}
}

func TestPersistItineraryPlacesFailureKeepsRouteID(t *testing.T) {
	repo := newMockRouteRepo()
	repo.placesErr = errors.New("batch insert failed")
	svc := NewItineraryPersistence(repo)

	result, perr := svc.PersistItinerary(context.Background(), twoPlaceItinerary(), 7)
	if perr == nil || perr.Kind != utils.KindPlacesSaveFail {
		t.Fatalf("expected places_save_failed, got %v", perr)
	}
	if result == nil || result.RouteID != 1 {
		t.Errorf("partial result must still carry the route id, got %+v", result)
	}
}

func TestPersistItineraryPartialLinkFailure(t *testing.T) {
	repo := newMockRouteRepo()
	repo.linkErrByOrder = map[int]error{2: errors.New("link insert failed")}
	svc := NewItineraryPersistence(repo)

	result, perr := svc.PersistItinerary(context.Background(), twoPlaceItinerary(), 7)
	if perr == nil || perr.Kind != utils.KindLinksSaveFail {
		t.Fatalf("expected links_save_failed, got %v", perr)
	}
	if !perr.Partial {
		t.Error("one of two links succeeded, failure must be marked partial")
	}
	if len(result.FailedOrders) != 1 || result.FailedOrders[0] != 2 {
		t.Errorf("failed orders = %v, want [2]", result.FailedOrders)
	}
	if len(result.PlaceIDs) != 2 {
		t.Errorf("place ids must survive a link failure, got %v", result.PlaceIDs)
	}
}
