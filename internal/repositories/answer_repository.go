package repositories

import (
	"context"

	"gorm.io/gorm"

	"rutero/internal/models/db_models"
)

type AnswerRepository interface {
	// ListAnswersByUserID returns the user's stored answers with their
	// questions preloaded, ordered by question position. That ordering is
	// the slot contract of the preference profile.
	ListAnswersByUserID(ctx context.Context, userID int) ([]db_models.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) ListAnswersByUserID(ctx context.Context, userID int) ([]db_models.Answer, error) {
	var answers []db_models.Answer
	err := r.db.WithContext(ctx).
		Joins("Question").
		Where("answers.user_id = ?", userID).
		Order(`"Question".position ASC`).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}

	return answers, nil
}
