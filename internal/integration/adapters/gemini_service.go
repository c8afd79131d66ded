// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/gestao-financeira/backend/internal/application/adapter"
)

// GeminiService implements the CategorySuggester using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks the model to pick one of categories for an expense description.
func (s *GeminiService) Suggest(ctx context.Context, description string, categories []string) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories to choose from")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildSuggestionPrompt(description, categories)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	suggestion, err := parseSuggestion(text, categories)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return suggestion, nil
}

func buildSuggestionPrompt(description string, categories []string) string {
	var sb strings.Builder

	sb.WriteString(`Voce classifica despesas de uma pequena empresa brasileira.
Escolha UMA categoria da lista abaixo para a despesa informada. Nao invente categorias.

CATEGORIAS:
`)
	for _, category := range categories {
		sb.WriteString("- " + category + "\n")
	}

	sb.WriteString(fmt.Sprintf("\nDESPESA: %q\n", description))
	sb.WriteString(`
Responda apenas com um objeto JSON:
{"category": "nome exato da lista", "confidence": 0.0-1.0, "reasoning": "breve explicacao em Portugues"}
`)
	return sb.String()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && strings.TrimSpace(string(text)) != "" {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

type geminiSuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseSuggestion decodes the model output and maps the category onto the
// user's spelling, rejecting names outside the list.
func parseSuggestion(text string, categories []string) (*adapter.CategorySuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON %q: %w", text, err)
	}

	for _, category := range categories {
		if strings.EqualFold(strings.TrimSpace(raw.Category), category) {
			confidence := raw.Confidence
			if confidence < 0 {
				confidence = 0
			}
			if confidence > 1 {
				confidence = 1
			}
			return &adapter.CategorySuggestion{
				Category:   category,
				Confidence: confidence,
				Reasoning:  raw.Reasoning,
			}, nil
		}
	}
	return nil, fmt.Errorf("suggested category %q is not in the list", raw.Category)
}
