package history_fx

import (
	"go.uber.org/fx"

	"rutero/internal/api/controllers"
	"rutero/internal/repositories"
	"rutero/internal/services"
)

var Module = fx.Provide(provideHistoryService, provideHistoryController)

func provideHistoryService(routeRepo repositories.RouteRepository) services.HistoryServiceInterface {
	return services.NewHistoryService(routeRepo)
}

func provideHistoryController(historyService services.HistoryServiceInterface) *controllers.HistoryController {
	return controllers.NewHistoryController(historyService)
}
