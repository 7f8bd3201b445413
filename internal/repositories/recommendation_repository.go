package repositories

import (
	"context"

	"gorm.io/gorm"

	"rutero/internal/models/db_models"
)

type RecommendationRepository interface {
	CreateLog(ctx context.Context, entry *db_models.RecommendationLog) error
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) CreateLog(ctx context.Context, entry *db_models.RecommendationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
