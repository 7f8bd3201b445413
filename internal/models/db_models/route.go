package db_models

import "time"

// Route is the persisted itinerary header. Coordinates stores the start and
// end coordinate of the generated route joined by ";".
type Route struct {
	RouteID          uint      `gorm:"column:route_id;primaryKey;autoIncrement"`
	UserID           int       `gorm:"column:user_id;index"`
	RouteName        string    `gorm:"column:route_name"`
	Description      string    `gorm:"column:description"`
	Duration         string    `gorm:"column:duration"`
	Distance         string    `gorm:"column:distance"`
	Coordinates      string    `gorm:"column:coordinates"`
	RegistrationDate time.Time `gorm:"column:registration_date;autoCreateTime"`

	Places []PlaceInRoute `gorm:"foreignKey:RouteID"`
}
