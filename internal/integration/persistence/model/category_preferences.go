package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// CategoryPreferencesModel represents the category_preferences table. The
// ordered list is stored as a JSON array.
type CategoryPreferencesModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Categories string    `gorm:"type:text;not null;default:'[]'"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryPreferencesModel.
func (CategoryPreferencesModel) TableName() string {
	return "category_preferences"
}

// ToEntity converts a CategoryPreferencesModel to a domain CategoryPreferences entity.
func (m *CategoryPreferencesModel) ToEntity() *entity.CategoryPreferences {
	var categories []string
	if err := json.Unmarshal([]byte(m.Categories), &categories); err != nil {
		slog.Warn("Failed to unmarshal category preferences", "error", err, "user_id", m.UserID)
	}
	if categories == nil {
		categories = []string{}
	}

	return &entity.CategoryPreferences{
		UserID:     m.UserID,
		Categories: categories,
		UpdatedAt:  m.UpdatedAt,
	}
}

// CategoryPreferencesFromEntity creates a CategoryPreferencesModel from a domain entity.
func CategoryPreferencesFromEntity(prefs *entity.CategoryPreferences) *CategoryPreferencesModel {
	categories := prefs.Categories
	if categories == nil {
		categories = []string{}
	}
	data, err := json.Marshal(categories)
	if err != nil {
		slog.Error("Failed to marshal category preferences", "error", err, "user_id", prefs.UserID)
		data = []byte("[]")
	}

	return &CategoryPreferencesModel{
		UserID:     prefs.UserID,
		Categories: string(data),
		UpdatedAt:  prefs.UpdatedAt,
	}
}
