package services

import (
	"context"
	"log"
	"time"

	"gemquest/internal/models/response_models"
	"gemquest/pkg/suggest"
)

type SuggestionServiceInterface interface {
	GenerateSuggestions(ctx context.Context, req suggest.Request) (*response_models.SuggestionListResponse, error)
}

type SuggestionService struct {
	provider suggest.Provider
}

func NewSuggestionService(provider suggest.Provider) SuggestionServiceInterface {
	return &SuggestionService{provider: provider}
}

// GenerateSuggestions asks the configured model for chore ideas and
// falls back to the static table on any failure, so the screen always
// has something to show.
func (s *SuggestionService) GenerateSuggestions(ctx context.Context, req suggest.Request) (*response_models.SuggestionListResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	suggestions, err := s.provider.Suggest(callCtx, req)
	if err != nil {
		log.Printf("Suggestion provider failed, using fallback: %v", err)
		return &response_models.SuggestionListResponse{
			Suggestions: suggest.Fallback(req.ChildAge),
			Source:      "fallback",
		}, nil
	}

	return &response_models.SuggestionListResponse{
		Suggestions: suggestions,
		Source:      "ai",
	}, nil
}
