package response_models

import "gemquest/pkg/suggest"

type SuggestionListResponse struct {
	Suggestions []suggest.Suggestion `json:"suggestions"`
	Source      string               `json:"source"`
}
