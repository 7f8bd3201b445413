// cmd/fx/itinerary_fx/init.go
package itinerary_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"rutero/internal/api/controllers"
	"rutero/internal/repositories"
	"rutero/internal/services"
	mem "rutero/pkg/memcache"
	"rutero/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	provideRouteRepo,
	provideParser,
	providePersistence,
	provideCache,
	provideItineraryService,
	provideItineraryController)

// GeneratorConfig holds configuration for the text generation client
type GeneratorConfig struct {
	Provider string
	APIKey   string
	Model    string
	Endpoint string
}

// ProvideTextGenerator creates a text generator based on environment variables
func ProvideTextGenerator() (utils.TextGenerator, error) {
	config := getGeneratorConfig()

	log.Printf("Initializing %s text generator", config.Provider)

	switch strings.ToLower(config.Provider) {
	case "rest":
		return utils.NewGeminiRESTClient(config.Endpoint, config.APIKey), nil
	case "genai":
		client, err := utils.NewGenAIClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	case "openai":
		return utils.NewOpenAIClient(config.APIKey, config.Model), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'rest', 'genai' or 'openai'", config.Provider)
	}
}

func provideRouteRepo(db *gorm.DB) repositories.RouteRepository {
	return repositories.NewRouteRepository(db)
}

func provideParser() *services.ItineraryParser {
	parser := services.NewItineraryParser()
	parser.StrictOrderKeys = os.Getenv("STRICT_ORDER_KEYS") == "true"
	return parser
}

func providePersistence(routeRepo repositories.RouteRepository) services.ItineraryPersistenceInterface {
	return services.NewItineraryPersistence(routeRepo)
}

func provideCache() mem.ItineraryCacheStore {
	return mem.NewItineraryCache()
}

func provideItineraryService(
	preferences services.PreferenceServiceInterface,
	generator utils.TextGenerator,
	parser *services.ItineraryParser,
	persistence services.ItineraryPersistenceInterface,
	cache mem.ItineraryCacheStore,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(
		preferences,
		services.NewPromptComposer(),
		generator,
		parser,
		persistence,
		cache,
	)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}

// getGeneratorConfig reads configuration from environment variables
func getGeneratorConfig() GeneratorConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "rest")

	var apiKey, model, endpoint string

	switch strings.ToLower(provider) {
	case "rest":
		apiKey = os.Getenv("GEMINI_API_KEY")
		endpoint = getEnvWithDefault("GEMINI_URL",
			"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-pro-exp-03-25:generateContent")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the REST provider")
		}
	case "genai":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the genai provider")
		}
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	}

	return GeneratorConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
		Endpoint: endpoint,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
