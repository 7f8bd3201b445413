package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rutero/internal/models/db_models"
)

type RouteRepository interface {
	// CreateRoute writes the route header and returns its generated id. The
	// id is a foreign key for every later write, so nothing else may be
	// persisted until this has succeeded.
	CreateRoute(ctx context.Context, route *db_models.Route) (uint, error)

	// CreateTouristPlaces batch-inserts the given places. The returned id
	// slice is positionally aligned with the input slice; callers rely on
	// that correspondence to attach order numbers.
	CreateTouristPlaces(ctx context.Context, places []db_models.TouristPlace) ([]uint, error)

	CreatePlaceLink(ctx context.Context, link *db_models.PlaceInRoute) error

	// ListDetailedHistoryByUserID returns the user's link rows with route
	// and place preloaded, newest route first, ordered within a route by
	// order number.
	ListDetailedHistoryByUserID(ctx context.Context, userID int) ([]db_models.PlaceInRoute, error)
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db: db}
}

func (r *routeRepository) CreateRoute(ctx context.Context, route *db_models.Route) (uint, error) {
	if err := r.db.WithContext(ctx).Create(route).Error; err != nil {
		return 0, err
	}
	return route.RouteID, nil
}

func (r *routeRepository) CreateTouristPlaces(ctx context.Context, places []db_models.TouristPlace) ([]uint, error) {
	if len(places) == 0 {
		return nil, errors.New("no places to persist")
	}

	if err := r.db.WithContext(ctx).Create(&places).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, len(places))
	for i, p := range places {
		ids[i] = p.TouristPlaceID
	}
	return ids, nil
}

func (r *routeRepository) CreatePlaceLink(ctx context.Context, link *db_models.PlaceInRoute) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *routeRepository) ListDetailedHistoryByUserID(ctx context.Context, userID int) ([]db_models.PlaceInRoute, error) {
	var links []db_models.PlaceInRoute
	err := r.db.WithContext(ctx).
		Joins("JOIN routes ON routes.route_id = place_in_routes.route_id").
		Where("routes.user_id = ?", userID).
		Preload("Route").
		Preload("Place").
		Order("place_in_routes.route_id DESC, place_in_routes.order_number ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	return links, nil
}
