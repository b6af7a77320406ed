package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/server/catalog"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name        string
	Icon        string
	Color       string
	Description string
}

type CategoryService struct {
	repos  repomanager.RepositoryManager
	logger logging.Logger
	now    func() time.Time
}

func NewCategoryService(m repomanager.RepositoryManager, logger logging.Logger) *CategoryService {
	return &CategoryService{repos: m, logger: logger.With("module", "categories"), now: time.Now}
}

func (s *CategoryService) List(ctx context.Context, userID string) ([]models.Category, error) {
	return s.repos.Categories(s.repos.Conn()).ListByUser(ctx, userID)
}

// Predefined lists the templates offered to every account.
func (s *CategoryService) Predefined() []catalog.PredefinedCategory {
	return catalog.PredefinedCategories()
}

func (s *CategoryService) Create(ctx context.Context, userID string, req CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if n := utf8.RuneCountInString(name); n < 1 || n > 50 {
		return nil, invalid("name must be 1 to 50 characters")
	}

	c := &models.Category{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Icon:        orDefault(req.Icon, models.DefaultCategoryIcon),
		Color:       orDefault(req.Color, models.DefaultCategoryColor),
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   s.now().UTC(),
	}
	return s.repos.Categories(s.repos.Conn()).Create(ctx, c)
}

// Delete removes the category, its skills and their time logs.
func (s *CategoryService) Delete(ctx context.Context, userID, id string) error {
	err := s.repos.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		categories := s.repos.Categories(tx)
		if _, err := categories.FindOwned(ctx, id, userID); err != nil {
			return err
		}
		if err := s.repos.TimeLogs(tx).DeleteByCategory(ctx, id, userID); err != nil {
			return err
		}
		if err := s.repos.Skills(tx).DeleteByCategory(ctx, id, userID); err != nil {
			return err
		}
		return categories.Delete(ctx, id, userID)
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "category deleted", "user_id", userID, "category_id", id)
	return nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
