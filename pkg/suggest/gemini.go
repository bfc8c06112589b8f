package suggest

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiSuggester struct {
	client *genai.Client
	model  string
}

func NewGeminiSuggester(apiKey, model string) (*GeminiSuggester, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSuggester{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiSuggester) Suggest(ctx context.Context, req Request) ([]Suggestion, error) {
	m := g.client.GenerativeModel(g.model)
	// Force JSON-only output so no brace-matching is needed on our side.
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.7)

	resp, err := m.GenerateContent(ctx, genai.Text(buildPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var content string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content += string(text)
		}
	}

	suggestions, err := parseSuggestionJSON(content)
	if err != nil {
		return nil, err
	}
	if out := normalize(suggestions); out != nil {
		return out, nil
	}
	return nil, fmt.Errorf("gemini returned too few usable suggestions")
}
