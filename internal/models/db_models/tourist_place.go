package db_models

import (
	"encoding/json"
	"time"
)

// TouristPlace is one stored place of a generated itinerary. The synthesized
// fields are flattened into columns and the original payload is kept as a
// jsonb blob so a place stays addressable by its order key later.
type TouristPlace struct {
	TouristPlaceID  uint            `gorm:"column:tourist_place_id;primaryKey;autoIncrement"`
	Nombre          string          `gorm:"column:nombre"`
	CostoPromedio   string          `gorm:"column:costo_promedio"`
	Recomendaciones string          `gorm:"column:recomendaciones"`
	Notas           string          `gorm:"column:notas"`
	Coordenadas     string          `gorm:"column:coordenadas"`
	RawData         json.RawMessage `gorm:"column:raw_data;type:jsonb"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
}
