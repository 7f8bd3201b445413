package db_models

// PlaceInRoute links a tourist place to a route with its visiting order.
type PlaceInRoute struct {
	PlaceInRouteID uint `gorm:"column:place_in_route_id;primaryKey;autoIncrement"`
	RouteID        uint `gorm:"column:route_id;index"`
	TouristPlaceID uint `gorm:"column:tourist_place_id"`
	OrderNumber    int  `gorm:"column:order_number"`

	Route Route        `gorm:"foreignKey:RouteID"`
	Place TouristPlace `gorm:"foreignKey:TouristPlaceID"`
}
