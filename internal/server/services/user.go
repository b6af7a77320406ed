// Package services contains server-side business logic. This file implements
// UserService: registration, login, token rotation, the profile and the
// per-user settings.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/server/auth"
	"github.com/dmitrijs2005/galacticquest/internal/server/catalog"
	"github.com/dmitrijs2005/galacticquest/internal/server/config"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/ranks"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TokenPair bundles an access token and a server-stored refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterRequest carries the sign-up form. Avatar may be empty.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
	Avatar   string
}

// Profile is a user together with the descriptor of their current rank.
type Profile struct {
	User models.User
	Rank ranks.RankDescriptor
}

type UserService struct {
	repos                        repomanager.RepositoryManager
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		repos:                        m,
		logger:                       logger.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrInvalidArgument, msg)
}

func validateRegistration(req *RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Avatar = strings.TrimSpace(req.Avatar)

	if n := utf8.RuneCountInString(req.Username); n < 3 || n > 20 {
		return invalid("username must be 3 to 20 characters")
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return invalid("email is not valid")
	}
	if utf8.RuneCountInString(req.Password) < 6 {
		return invalid("password must be at least 6 characters")
	}
	if req.Avatar == "" {
		req.Avatar = models.DefaultAvatar
	}
	return nil
}

// Register creates the account, copies the predefined categories when the
// default settings ask for it, and signs the user in.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, *TokenPair, error) {
	if err := validateRegistration(&req); err != nil {
		return nil, nil, err
	}

	repo := s.repos.Users(s.repos.Conn())
	if _, err := repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, nil, fmt.Errorf("%w: email already registered", common.ErrAlreadyExists)
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, nil, fmt.Errorf("error checking email: %w", err)
	}
	if _, err := repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, nil, fmt.Errorf("%w: username already taken", common.ErrAlreadyExists)
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, nil, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	now := s.now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Avatar:       req.Avatar,
		CurrentRank:  ranks.Lowest().TotalRank,
		Settings:     models.DefaultSettings(),
		JoinedAt:     now,
		LastActive:   now,
	}

	var pair *TokenPair
	err = s.repos.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repos.Users(tx).Create(ctx, user); err != nil {
			return err
		}
		if user.Settings.UsePredefinedCategories {
			categoriesRepo := s.repos.Categories(tx)
			for i, p := range catalog.PredefinedCategories() {
				c := p.ToCategory(user.ID)
				c.ID = uuid.NewString()
				c.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
				if _, err := categoriesRepo.Create(ctx, &c); err != nil {
					return err
				}
			}
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, user.ID, tx)
		return genErr
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, pair, nil
}

// Login checks the email and password, records activity and returns a new
// token pair. Unknown email and wrong password both yield ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	repo := s.repos.Users(s.repos.Conn())
	user, err := repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}
	if !ok {
		return nil, nil, common.ErrorUnauthorized
	}

	user.LastActive = s.now().UTC()
	if err := repo.TouchLastActive(ctx, user.ID, user.LastActive); err != nil {
		return nil, nil, common.ErrorInternal
	}

	pair, err := s.generateTokenPair(ctx, user.ID, s.repos.Conn())
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.repos.RefreshTokens(s.repos.Conn()).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(s.now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := s.repos.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// UserIDFromToken verifies an access token and returns its subject.
func (s *UserService) UserIDFromToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *UserService) Profile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.repos.Users(s.repos.Conn()).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	rank, ok := ranks.ByOrdinal(user.CurrentRank)
	if !ok {
		rank = ranks.RankFor(user.TotalXP)
	}
	return &Profile{User: *user, Rank: rank}, nil
}

func (s *UserService) Settings(ctx context.Context, userID string) (models.Settings, error) {
	user, err := s.repos.Users(s.repos.Conn()).GetByID(ctx, userID)
	if err != nil {
		return models.Settings{}, err
	}
	return user.Settings, nil
}

// UpdateSettings applies the non-nil fields of patch and returns the result.
func (s *UserService) UpdateSettings(ctx context.Context, userID string, patch models.SettingsPatch) (models.Settings, error) {
	if patch.DailyGoal != nil && (*patch.DailyGoal < common.MinLogMinutes || *patch.DailyGoal > common.MaxLogMinutes) {
		return models.Settings{}, invalid("daily_goal must be between 1 and 1440")
	}
	if patch.Theme != nil && strings.TrimSpace(*patch.Theme) == "" {
		return models.Settings{}, invalid("theme must not be empty")
	}

	var updated models.Settings
	err := s.repos.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)
		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		updated = patch.Apply(user.Settings)
		if patch.Empty() {
			return nil
		}
		return repo.UpdateSettings(ctx, userID, updated)
	})
	if err != nil {
		return models.Settings{}, err
	}
	return updated, nil
}

// --- helpers below ---

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, db dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repos.RefreshTokens(db).Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
