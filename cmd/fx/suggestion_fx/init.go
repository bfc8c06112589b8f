package suggestion_fx

import (
	"go.uber.org/fx"

	"gemquest/internal/api/controllers"
	"gemquest/internal/services"
	"gemquest/pkg/suggest"
)

var Module = fx.Provide(
	ProvideSuggestionProvider,
	provideSuggestionService,
	provideSuggestionController)

// ProvideSuggestionProvider builds the LLM backend from environment
// variables (SUGGESTION_PROVIDER = openai | gemini).
func ProvideSuggestionProvider() (suggest.Provider, error) {
	return suggest.NewProviderFromEnv()
}

func provideSuggestionService(provider suggest.Provider) services.SuggestionServiceInterface {
	return services.NewSuggestionService(provider)
}

func provideSuggestionController(suggestionService services.SuggestionServiceInterface) *controllers.SuggestionController {
	return controllers.NewSuggestionController(suggestionService)
}
