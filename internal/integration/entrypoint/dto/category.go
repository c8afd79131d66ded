package dto

// CategoryPreferencesRequest represents the request body for saving expense categories.
type CategoryPreferencesRequest struct {
	Categories []string `json:"categories" binding:"required"`
}

// CategoryPreferencesResponse represents the expense categories a user picks from.
type CategoryPreferencesResponse struct {
	Categories []string `json:"categories"`
	IsDefault  bool     `json:"is_default"`
}
