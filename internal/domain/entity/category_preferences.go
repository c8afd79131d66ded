package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultExpenseCategories is the category list a user starts with.
var DefaultExpenseCategories = []string{
	"Alimentação",
	"Transporte",
	"Moradia",
	"Saúde",
	"Educação",
	"Lazer",
	"Outros",
}

// CategoryPreferences holds the expense categories a user picks from.
type CategoryPreferences struct {
	UserID     uuid.UUID
	Categories []string
	UpdatedAt  time.Time
}

// NewDefaultCategoryPreferences returns the default list for a user.
func NewDefaultCategoryPreferences(userID uuid.UUID) *CategoryPreferences {
	categories := make([]string, len(DefaultExpenseCategories))
	copy(categories, DefaultExpenseCategories)
	return &CategoryPreferences{
		UserID:     userID,
		Categories: categories,
	}
}
