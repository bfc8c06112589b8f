package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAISuggester struct {
	client *openai.Client
	model  string
}

func NewOpenAISuggester(apiKey, model string) *OpenAISuggester {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISuggester{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (o *OpenAISuggester) Suggest(ctx context.Context, req Request) ([]Suggestion, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You generate chore ideas for a family chore-reward app. Output raw JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(req),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	suggestions, err := parseSuggestionJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	if out := normalize(suggestions); out != nil {
		return out, nil
	}
	return nil, fmt.Errorf("openai returned too few usable suggestions")
}

// parseSuggestionJSON tolerates models that wrap the array in a
// markdown fence or an object with a single array field.
func parseSuggestionJSON(content string) ([]Suggestion, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(content), &suggestions); err == nil {
		return suggestions, nil
	}

	var wrapped map[string][]Suggestion
	if err := json.Unmarshal([]byte(content), &wrapped); err == nil {
		for _, v := range wrapped {
			return v, nil
		}
	}

	return nil, fmt.Errorf("could not parse suggestion JSON")
}
