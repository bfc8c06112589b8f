// Package suggest generates age-appropriate chore suggestions via a
// language-model provider, with a static table as the safety net.
package suggest

import (
	"context"
	"fmt"
	"os"
	"strings"
)

type Suggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Gems        int    `json:"gems"`
	Location    string `json:"location"`
	Category    string `json:"category"`
}

type Request struct {
	ChildAge  int
	ChildName string
	Context   string
}

type Provider interface {
	Suggest(ctx context.Context, req Request) ([]Suggestion, error)
}

// NewProviderFromEnv selects the provider the same way the embedding
// layer does: SUGGESTION_PROVIDER = openai | gemini.
func NewProviderFromEnv() (Provider, error) {
	provider := os.Getenv("SUGGESTION_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	switch strings.ToLower(provider) {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when using OpenAI provider")
		}
		model := os.Getenv("OPENAI_MODEL")
		return NewOpenAISuggester(apiKey, model), nil
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when using Gemini provider")
		}
		model := os.Getenv("GEMINI_MODEL")
		return NewGeminiSuggester(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported suggestion provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Suggest 8 household chores suitable for a ")
	fmt.Fprintf(&b, "%d-year-old child", req.ChildAge)
	if req.ChildName != "" {
		fmt.Fprintf(&b, " named %s", req.ChildName)
	}
	b.WriteString(". ")
	if req.Context != "" {
		fmt.Fprintf(&b, "Extra context from the parent: %s. ", req.Context)
	}
	b.WriteString(`Respond with a JSON array only, no prose. Each element: ` +
		`{"name": string, "description": string, "gems": integer 1-20 scaled by effort, ` +
		`"location": string (room or area), "category": one of "cleaning","organizing","outdoor","pets","kitchen","general"}`)
	return b.String()
}

// normalize drops unusable entries and clamps the result to the 5-10
// range the screens expect. Returns nil when too few survive, which
// callers treat as a provider failure.
func normalize(in []Suggestion) []Suggestion {
	out := make([]Suggestion, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		if s.Gems < 1 {
			s.Gems = 1
		}
		if s.Category == "" {
			s.Category = "general"
		}
		out = append(out, s)
		if len(out) == 10 {
			break
		}
	}
	if len(out) < 5 {
		return nil
	}
	return out
}
