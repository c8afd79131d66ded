package adapter

import "context"

// CategorySuggestion is the model's pick for an expense description.
type CategorySuggestion struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// CategorySuggester suggests an expense category among the user's categories.
type CategorySuggester interface {
	// Suggest returns a suggestion whose Category is one of categories.
	Suggest(ctx context.Context, description string, categories []string) (*CategorySuggestion, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
