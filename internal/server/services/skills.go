package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type CreateSkillRequest struct {
	Name        string
	CategoryID  string
	Difficulty  models.Difficulty
	Icon        string
	Description string
}

type SkillService struct {
	repos  repomanager.RepositoryManager
	logger logging.Logger
	now    func() time.Time
}

func NewSkillService(m repomanager.RepositoryManager, logger logging.Logger) *SkillService {
	return &SkillService{repos: m, logger: logger.With("module", "skills"), now: time.Now}
}

func (s *SkillService) List(ctx context.Context, userID string) ([]models.Skill, error) {
	return s.repos.Skills(s.repos.Conn()).ListByUser(ctx, userID)
}

func validSkillName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 1 && n <= 100
}

// Create adds a skill with zero totals. The category must belong to the
// user; a foreign or unknown category is reported as ErrInvalidArgument.
func (s *SkillService) Create(ctx context.Context, userID string, req CreateSkillRequest) (*models.Skill, error) {
	name := strings.TrimSpace(req.Name)
	if !validSkillName(name) {
		return nil, invalid("name must be 1 to 100 characters")
	}
	if !req.Difficulty.Valid() {
		return nil, invalid("unknown difficulty")
	}

	if _, err := s.repos.Categories(s.repos.Conn()).FindOwned(ctx, req.CategoryID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, invalid("category not found")
		}
		return nil, err
	}

	now := s.now().UTC()
	skill := &models.Skill{
		ID:          uuid.NewString(),
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Name:        name,
		Icon:        orDefault(req.Icon, models.DefaultSkillIcon),
		Description: strings.TrimSpace(req.Description),
		Difficulty:  req.Difficulty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repos.Skills(s.repos.Conn()).Create(ctx, skill)
}

// Update changes the descriptive fields only; aggregates are not reachable
// from here.
func (s *SkillService) Update(ctx context.Context, userID, id string, patch models.SkillPatch) (*models.Skill, error) {
	if patch.Empty() {
		return nil, invalid("nothing to update")
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if !validSkillName(name) {
			return nil, invalid("name must be 1 to 100 characters")
		}
		patch.Name = &name
	}
	if patch.Difficulty != nil && !patch.Difficulty.Valid() {
		return nil, invalid("unknown difficulty")
	}
	return s.repos.Skills(s.repos.Conn()).Update(ctx, id, userID, patch, s.now().UTC())
}

// Delete removes the skill and its time logs. User aggregates keep the XP
// already earned.
func (s *SkillService) Delete(ctx context.Context, userID, id string) error {
	err := s.repos.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		skills := s.repos.Skills(tx)
		if _, err := skills.FindOwned(ctx, id, userID); err != nil {
			return err
		}
		if err := s.repos.TimeLogs(tx).DeleteBySkill(ctx, id, userID); err != nil {
			return err
		}
		return skills.Delete(ctx, id, userID)
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "skill deleted", "user_id", userID, "skill_id", id)
	return nil
}
