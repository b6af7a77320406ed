package httpapi

import (
	"encoding/json"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/ranks"
	"github.com/dmitrijs2005/galacticquest/internal/server/services"
)

type rankJSON struct {
	Tier      string  `json:"tier"`
	Division  *string `json:"division"`
	Name      string  `json:"name"`
	TotalRank int     `json:"total_rank"`
	MinXP     int64   `json:"min_xp"`
	MaxXP     int64   `json:"max_xp"`
	Color     string  `json:"color"`
	BgColor   string  `json:"bg_color"`
}

func toRank(r ranks.RankDescriptor) rankJSON {
	out := rankJSON{
		Tier: r.Tier, Name: r.Name(), TotalRank: r.TotalRank,
		MinXP: r.MinXP, MaxXP: r.MaxXP, Color: r.Color, BgColor: r.BgColor,
	}
	if r.Division != "" {
		d := r.Division
		out.Division = &d
	}
	return out
}

// rankOf renders the stored ordinal, falling back to the XP lookup.
func rankOf(ordinal int, xp int64) rankJSON {
	if r, ok := ranks.ByOrdinal(ordinal); ok {
		return toRank(r)
	}
	return toRank(ranks.RankFor(xp))
}

type userJSON struct {
	ID                      string    `json:"id"`
	Username                string    `json:"username"`
	Email                   string    `json:"email"`
	Avatar                  string    `json:"avatar"`
	TotalXP                 int64     `json:"total_xp"`
	TotalTimeMinutes        int64     `json:"total_time_minutes"`
	CurrentRank             rankJSON  `json:"current_rank"`
	UsePredefinedCategories bool      `json:"use_predefined_categories"`
	JoinedAt                time.Time `json:"joined_at"`
	LastActive              time.Time `json:"last_active"`
}

func toUser(u *models.User) userJSON {
	return userJSON{
		ID: u.ID, Username: u.Username, Email: u.Email, Avatar: u.Avatar,
		TotalXP: u.TotalXP, TotalTimeMinutes: u.TotalTimeMinutes,
		CurrentRank:             rankOf(u.CurrentRank, u.TotalXP),
		UsePredefinedCategories: u.Settings.UsePredefinedCategories,
		JoinedAt:                u.JoinedAt, LastActive: u.LastActive,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokensJSON struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func toTokens(p *services.TokenPair) tokensJSON {
	return tokensJSON{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken, TokenType: "bearer"}
}

type authResponse struct {
	userJSON
	tokensJSON
}

type settingsJSON struct {
	UsePredefinedCategories bool   `json:"use_predefined_categories"`
	Notifications           bool   `json:"notifications"`
	AutoSave                bool   `json:"auto_save"`
	Theme                   string `json:"theme"`
	SoundEffects            bool   `json:"sound_effects"`
	DailyGoal               int    `json:"daily_goal"`
	StreakReminders         bool   `json:"streak_reminders"`
}

func toSettings(s models.Settings) settingsJSON {
	return settingsJSON(s)
}

type settingsPatchJSON struct {
	UsePredefinedCategories *bool   `json:"use_predefined_categories"`
	Notifications           *bool   `json:"notifications"`
	AutoSave                *bool   `json:"auto_save"`
	Theme                   *string `json:"theme"`
	SoundEffects            *bool   `json:"sound_effects"`
	DailyGoal               *int    `json:"daily_goal"`
	StreakReminders         *bool   `json:"streak_reminders"`
}

type categoryJSON struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	Description  string    `json:"description"`
	UserID       string    `json:"user_id,omitempty"`
	IsPredefined bool      `json:"is_predefined"`
	CreatedAt    time.Time `json:"created_at"`
}

func toCategory(c models.Category) categoryJSON {
	return categoryJSON{
		ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color, Description: c.Description,
		UserID: c.UserID, IsPredefined: c.IsPredefined, CreatedAt: c.CreatedAt,
	}
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type skillJSON struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	CategoryID       string            `json:"category_id"`
	Difficulty       models.Difficulty `json:"difficulty"`
	Icon             string            `json:"icon"`
	Description      string            `json:"description"`
	TotalTimeMinutes int64             `json:"total_time_minutes"`
	TotalXP          int64             `json:"total_xp"`
	Streak           int64             `json:"streak"`
	LastLoggedAt     *time.Time        `json:"last_logged_at"`
	UserID           string            `json:"user_id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func toSkill(s *models.Skill) skillJSON {
	return skillJSON{
		ID: s.ID, Name: s.Name, CategoryID: s.CategoryID, Difficulty: s.Difficulty,
		Icon: s.Icon, Description: s.Description,
		TotalTimeMinutes: s.TotalTimeMinutes, TotalXP: s.TotalXP, Streak: s.Streak,
		LastLoggedAt: s.LastLoggedAt, UserID: s.UserID, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

type createSkillRequest struct {
	Name        string            `json:"name"`
	CategoryID  string            `json:"category_id"`
	Difficulty  models.Difficulty `json:"difficulty"`
	Icon        string            `json:"icon"`
	Description string            `json:"description"`
}

type updateSkillRequest struct {
	Name        *string            `json:"name"`
	Difficulty  *models.Difficulty `json:"difficulty"`
	Icon        *string            `json:"icon"`
	Description *string            `json:"description"`
}

type logTimeRequest struct {
	SkillID string  `json:"skill_id"`
	Minutes int64   `json:"minutes"`
	Note    *string `json:"note"`
}

type timeLogJSON struct {
	ID       string    `json:"id"`
	SkillID  string    `json:"skill_id"`
	Minutes  int64     `json:"minutes"`
	XPEarned int64     `json:"xp_earned"`
	Note     *string   `json:"note"`
	UserID   string    `json:"user_id"`
	LoggedAt time.Time `json:"logged_at"`
}

func toTimeLog(l *models.TimeLog) timeLogJSON {
	return timeLogJSON{
		ID: l.ID, SkillID: l.SkillID, Minutes: l.Minutes, XPEarned: l.XPEarned,
		Note: l.Note, UserID: l.UserID, LoggedAt: l.LoggedAt,
	}
}

type leaderboardEntryJSON struct {
	UserID       string   `json:"user_id"`
	Username     string   `json:"username"`
	Avatar       string   `json:"avatar"`
	TotalXP      int64    `json:"total_xp"`
	CurrentRank  rankJSON `json:"current_rank"`
	RankPosition int      `json:"rank_position"`
}

type leaderboardJSON struct {
	Entries      []leaderboardEntryJSON `json:"entries"`
	UserPosition int64                  `json:"user_position"`
	TotalPlayers int64                  `json:"total_players"`
}

func toLeaderboard(b *models.Leaderboard) leaderboardJSON {
	out := leaderboardJSON{
		Entries:      make([]leaderboardEntryJSON, 0, len(b.Entries)),
		UserPosition: b.UserPosition,
		TotalPlayers: b.TotalPlayers,
	}
	for _, e := range b.Entries {
		out.Entries = append(out.Entries, leaderboardEntryJSON{
			UserID: e.UserID, Username: e.Username, Avatar: e.Avatar, TotalXP: e.TotalXP,
			CurrentRank: rankOf(e.CurrentRank, e.TotalXP), RankPosition: e.Position,
		})
	}
	return out
}

type achievementJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	XPReward    int64           `json:"xp_reward"`
	Type        string          `json:"achievement_type"`
	Criteria    json.RawMessage `json:"criteria"`
	Earned      bool            `json:"earned"`
	EarnedDate  *time.Time      `json:"earned_date"`
}

func toAchievement(a models.AchievementStatus) achievementJSON {
	criteria := a.Criteria
	if len(criteria) == 0 {
		criteria = json.RawMessage(`{}`)
	}
	return achievementJSON{
		ID: a.ID, Name: a.Name, Description: a.Description, Icon: a.Icon, XPReward: a.XPReward,
		Type: a.Type, Criteria: criteria, Earned: a.Earned, EarnedDate: a.EarnedDate,
	}
}

type statsJSON struct {
	TotalSkills      int     `json:"total_skills"`
	TotalTimeMinutes int64   `json:"total_time_minutes"`
	TotalXP          int64   `json:"total_xp"`
	CurrentStreak    int64   `json:"current_streak"`
	TotalLogs        int64   `json:"total_logs"`
	AvgXPPerSkill    float64 `json:"avg_xp_per_skill"`
	AvgTimePerSkill  float64 `json:"avg_time_per_skill"`
}

type exportJSON struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Count     int       `json:"count"`
	ExpiresAt time.Time `json:"expires_at"`
}

type messageJSON struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
