package db_models

import (
	"time"

	"github.com/lib/pq"
)

// RecommendationLog records one call to the place-type recommender: which
// types came back and the final pick, for later inspection.
type RecommendationLog struct {
	RecommendationLogID uint           `gorm:"column:recommendation_log_id;primaryKey;autoIncrement"`
	UserID              int            `gorm:"column:user_id;index"`
	PlaceTypes          pq.StringArray `gorm:"column:place_types;type:text[]"`
	FinalRecommendation string         `gorm:"column:final_recommendation"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime"`
}
