package models

import "time"

// Category groups a user's skills.
type Category struct {
	ID           string
	UserID       string
	Name         string
	Icon         string
	Color        string
	Description  string
	IsPredefined bool
	CreatedAt    time.Time
}

const (
	DefaultCategoryIcon  = "📂"
	DefaultCategoryColor = "#00BFA6"
)
