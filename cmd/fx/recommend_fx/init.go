package recommend_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"rutero/internal/api/controllers"
	"rutero/internal/repositories"
	"rutero/internal/services"
)

var Module = fx.Provide(
	provideRecommendationRepo,
	provideRecommendationClient,
	provideRecommendationService,
	provideRecommendationController)

func provideRecommendationRepo(db *gorm.DB) repositories.RecommendationRepository {
	return repositories.NewRecommendationRepository(db)
}

func provideRecommendationClient() services.RecommendationClient {
	return services.NewRecommendationClient()
}

func provideRecommendationService(
	preferences services.PreferenceServiceInterface,
	client services.RecommendationClient,
	logRepo repositories.RecommendationRepository,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(preferences, client, logRepo)
}

func provideRecommendationController(recommendationService services.RecommendationServiceInterface) *controllers.RecommendationController {
	return controllers.NewRecommendationController(recommendationService)
}
