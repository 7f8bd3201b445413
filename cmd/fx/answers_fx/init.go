package answers_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"rutero/internal/repositories"
	"rutero/internal/services"
)

var Module = fx.Provide(provideAnswerRepo, providePreferenceService)

func provideAnswerRepo(db *gorm.DB) repositories.AnswerRepository {
	return repositories.NewAnswerRepository(db)
}

func providePreferenceService(answerRepo repositories.AnswerRepository) services.PreferenceServiceInterface {
	return services.NewPreferenceService(answerRepo)
}
