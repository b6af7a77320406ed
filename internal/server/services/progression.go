package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/ranks"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/dmitrijs2005/galacticquest/internal/server/services")

// LogTimeRequest is a practice session to be recorded. ID is optional; when
// set it must be a UUID and makes the call idempotent.
type LogTimeRequest struct {
	ID      string
	UserID  string
	SkillID string
	Minutes int64
	Note    *string
}

// ProgressionService records time logs and keeps the skill and user
// aggregates in step with the ledger.
type ProgressionService struct {
	repos  repomanager.RepositoryManager
	policy dbx.RetryPolicy
	logger logging.Logger
	now    func() time.Time
	newID  func() string
}

// NewProgressionService bounds optimistic retries by maxAttempts; a
// non-positive value selects dbx.DefaultRetryPolicy.
func NewProgressionService(m repomanager.RepositoryManager, maxAttempts int, logger logging.Logger) *ProgressionService {
	policy := dbx.DefaultRetryPolicy
	if maxAttempts > 0 {
		policy.Attempts = uint64(maxAttempts)
	}
	return &ProgressionService{
		repos:  m,
		policy: policy,
		logger: logger.With("module", "progression"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func isRetryable(err error) bool {
	return errors.Is(err, common.ErrVersionConflict) || dbx.IsSerializationFailure(err)
}

func (s *ProgressionService) validate(req *LogTimeRequest) error {
	if req.Minutes < common.MinLogMinutes || req.Minutes > common.MaxLogMinutes {
		return fmt.Errorf("%w: minutes must be between %d and %d", common.ErrInvalidArgument, common.MinLogMinutes, common.MaxLogMinutes)
	}
	if req.ID != "" {
		if _, err := uuid.Parse(req.ID); err != nil {
			return fmt.Errorf("%w: id must be a UUID", common.ErrInvalidArgument)
		}
	}
	if req.Note != nil && strings.TrimSpace(*req.Note) == "" {
		req.Note = nil
	}
	return nil
}

// LogTime validates the request, then writes the ledger record, the skill
// increment and the user compare-and-set in one transaction. Version
// conflicts and serialization failures restart the transaction with the same
// record. Replaying a known ID returns the stored record unchanged.
func (s *ProgressionService) LogTime(ctx context.Context, req LogTimeRequest) (*models.TimeLog, error) {
	ctx, span := tracer.Start(ctx, "ProgressionService.LogTime", trace.WithAttributes(
		attribute.String("user_id", req.UserID),
		attribute.String("skill_id", req.SkillID),
		attribute.Int64("minutes", req.Minutes),
	))
	defer span.End()

	rec, err := s.logTime(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int64("xp_earned", rec.XPEarned))
	return rec, nil
}

func (s *ProgressionService) logTime(ctx context.Context, req LogTimeRequest) (*models.TimeLog, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	skill, err := s.repos.Skills(s.repos.Conn()).FindOwned(ctx, req.SkillID, req.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: skill %s", common.ErrorNotFound, req.SkillID)
		}
		s.logger.Error(ctx, "skill lookup failed", "skill_id", req.SkillID, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrTransactionFailed, err)
	}

	id := req.ID
	if id == "" {
		id = s.newID()
	}
	record := &models.TimeLog{
		ID:       id,
		SkillID:  skill.ID,
		UserID:   req.UserID,
		Minutes:  req.Minutes,
		XPEarned: skill.Difficulty.XPFor(req.Minutes),
		Note:     req.Note,
		LoggedAt: s.now().UTC(),
	}

	var result *models.TimeLog
	replayed := false
	attempts := 0

	err = dbx.RetryTx(ctx, s.repos, s.policy, isRetryable, func(ctx context.Context, tx dbx.DBTX) error {
		attempts++
		result, replayed = nil, false

		usersRepo := s.repos.Users(tx)
		logsRepo := s.repos.TimeLogs(tx)

		user, err := usersRepo.GetByID(ctx, req.UserID)
		if err != nil {
			return err
		}

		inserted, err := logsRepo.Insert(ctx, record)
		if err != nil {
			return err
		}
		if !inserted {
			existing, err := logsRepo.FindByID(ctx, record.ID)
			if err != nil {
				return err
			}
			if existing.UserID != req.UserID || existing.SkillID != req.SkillID {
				return fmt.Errorf("%w: id %s is already used", common.ErrInvalidArgument, record.ID)
			}
			result, replayed = existing, true
			return nil
		}

		err = s.repos.Skills(tx).ApplyProgress(ctx, models.SkillProgress{
			SkillID:      record.SkillID,
			UserID:       record.UserID,
			AddMinutes:   record.Minutes,
			AddXP:        record.XPEarned,
			LastLoggedAt: record.LoggedAt,
		})
		if err != nil {
			return err
		}

		totalXP := user.TotalXP + record.XPEarned
		err = usersRepo.ApplyProgress(ctx, models.ProgressUpdate{
			UserID:           user.ID,
			ExpectedVersion:  user.Version,
			TotalXP:          totalXP,
			TotalTimeMinutes: user.TotalTimeMinutes + record.Minutes,
			CurrentRank:      ranks.RankFor(totalXP).TotalRank,
			LastActive:       record.LoggedAt,
		})
		if err != nil {
			return err
		}

		result = record
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrInvalidArgument):
		return nil, err
	default:
		s.logger.Error(ctx, "time log not committed", "user_id", req.UserID, "skill_id", req.SkillID, "attempts", attempts, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrTransactionFailed, err)
	}

	if replayed {
		s.logger.Info(ctx, "time log replayed", "id", result.ID, "user_id", req.UserID)
	} else {
		s.logger.Info(ctx, "time logged", "id", result.ID, "user_id", req.UserID, "skill_id", req.SkillID,
			"minutes", result.Minutes, "xp", result.XPEarned, "attempts", attempts)
	}
	return result, nil
}
