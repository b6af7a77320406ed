package catalog

import "github.com/dmitrijs2005/galacticquest/internal/server/models"

// PredefinedCategory is a category template copied into new accounts.
type PredefinedCategory struct {
	ID          string
	Name        string
	Icon        string
	Color       string
	Description string
}

var predefined = []PredefinedCategory{
	{ID: "predefined-mind", Name: "Mind", Icon: "🧠", Color: "#00BFA6", Description: "Mental development and learning"},
	{ID: "predefined-body", Name: "Body", Icon: "💪", Color: "#2962FF", Description: "Physical fitness and health"},
	{ID: "predefined-creativity", Name: "Creativity", Icon: "🎨", Color: "#BB86FC", Description: "Creative expression and arts"},
	{ID: "predefined-productivity", Name: "Productivity", Icon: "⚡", Color: "#FFD54F", Description: "Work efficiency and organization"},
	{ID: "predefined-social", Name: "Social", Icon: "🤝", Color: "#FF6B6B", Description: "Relationships and communication"},
	{ID: "predefined-spiritual", Name: "Spiritual", Icon: "🕯️", Color: "#9C27B0", Description: "Inner peace and mindfulness"},
}

// PredefinedCategories returns the templates in display order.
func PredefinedCategories() []PredefinedCategory {
	out := make([]PredefinedCategory, len(predefined))
	copy(out, predefined)
	return out
}

// ToCategory instantiates the template for a user. ID and CreatedAt are
// left for the caller.
func (p PredefinedCategory) ToCategory(userID string) models.Category {
	return models.Category{
		UserID:       userID,
		Name:         p.Name,
		Icon:         p.Icon,
		Color:        p.Color,
		Description:  p.Description,
		IsPredefined: true,
	}
}
