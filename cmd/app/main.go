package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"rutero/cmd/fx/answers_fx"
	"rutero/cmd/fx/db_fx"
	"rutero/cmd/fx/history_fx"
	"rutero/cmd/fx/itinerary_fx"
	"rutero/cmd/fx/recommend_fx"
	"rutero/internal/api/controllers"
	"rutero/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		answers_fx.Module,
		itinerary_fx.Module,
		recommend_fx.Module,
		history_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	historyController *controllers.HistoryController,
	recommendationController *controllers.RecommendationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, historyController, recommendationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	historyController *controllers.HistoryController,
	recommendationController *controllers.RecommendationController) {

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())

	itineraries := api.Group("/itineraries")
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.GET("/history/:userId", historyController.GetItineraryHistory)

	recommendations := api.Group("/recommendations")
	recommendations.GET("/:userId", recommendationController.GetRecommendation)
}
