package adapters

import (
	"strings"
	"testing"
)

func TestParseSuggestion(t *testing.T) {
	categories := []string{"Alimentação", "Transporte", "Outros"}

	tests := []struct {
		name       string
		text       string
		want       string
		confidence float64
		wantErr    bool
	}{
		{
			name:       "plain JSON",
			text:       `{"category": "Transporte", "confidence": 0.9, "reasoning": "Uber"}`,
			want:       "Transporte",
			confidence: 0.9,
		},
		{
			name:       "markdown fenced and different case",
			text:       "```json\n{\"category\": \"alimentação\", \"confidence\": 1.4}\n```",
			want:       "Alimentação",
			confidence: 1,
		},
		{
			name:    "category outside the list",
			text:    `{"category": "Viagem", "confidence": 0.5}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			text:    "Transporte",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestion(tt.text, categories)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Category != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.Category)
			}
			if got.Confidence != tt.confidence {
				t.Errorf("expected confidence %v, got %v", tt.confidence, got.Confidence)
			}
		})
	}
}

func TestBuildSuggestionPrompt(t *testing.T) {
	prompt := buildSuggestionPrompt("Corrida de Uber", []string{"Transporte", "Lazer"})

	for _, want := range []string{"- Transporte\n", "- Lazer\n", `"Corrida de Uber"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGeminiService_IsAvailable(t *testing.T) {
	if NewGeminiService("", "").IsAvailable() {
		t.Error("expected service without key to be unavailable")
	}
	if !NewGeminiService("key", "").IsAvailable() {
		t.Error("expected service with key to be available")
	}
}
