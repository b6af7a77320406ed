package rpc

import "time"

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// User is the public part of an account.
type User struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Avatar           string `json:"avatar"`
	TotalXP          int64  `json:"total_xp"`
	TotalTimeMinutes int64  `json:"total_time_minutes"`
	Rank             string `json:"rank"`
	RankOrdinal      int    `json:"rank_ordinal"`
	NextRankXP       int64  `json:"next_rank_xp"`
}

type AuthResponse struct {
	User   User          `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

type ProfileRequest struct{}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	IsPredefined bool   `json:"is_predefined"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type Skill struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	CategoryID       string     `json:"category_id"`
	Difficulty       string     `json:"difficulty"`
	Icon             string     `json:"icon"`
	TotalTimeMinutes int64      `json:"total_time_minutes"`
	TotalXP          int64      `json:"total_xp"`
	Streak           int64      `json:"streak"`
	LastLoggedAt     *time.Time `json:"last_logged_at,omitempty"`
}

type ListSkillsRequest struct{}

type ListSkillsResponse struct {
	Skills []Skill `json:"skills"`
}

type CreateSkillRequest struct {
	Name        string `json:"name"`
	CategoryID  string `json:"category_id"`
	Difficulty  string `json:"difficulty"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// LogTimeRequest records minutes against a skill. ID is optional; a client
// that retries with the same ID gets the originally stored record back.
type LogTimeRequest struct {
	ID      string  `json:"id,omitempty"`
	SkillID string  `json:"skill_id"`
	Minutes int64   `json:"minutes"`
	Note    *string `json:"note,omitempty"`
}

type TimeLog struct {
	ID       string    `json:"id"`
	SkillID  string    `json:"skill_id"`
	Minutes  int64     `json:"minutes"`
	XPEarned int64     `json:"xp_earned"`
	Note     *string   `json:"note,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

type ListTimeLogsRequest struct {
	SkillID string `json:"skill_id,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

type ListTimeLogsResponse struct {
	TimeLogs []TimeLog `json:"time_logs"`
}

type LeaderboardRequest struct {
	Limit int `json:"limit,omitempty"`
}

type LeaderboardEntry struct {
	Position int    `json:"position"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	TotalXP  int64  `json:"total_xp"`
	Rank     string `json:"rank"`
}

type LeaderboardResponse struct {
	Entries      []LeaderboardEntry `json:"entries"`
	UserPosition int64              `json:"user_position"`
	TotalPlayers int64              `json:"total_players"`
}

type ExportRequest struct{}

type ExportResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Count     int       `json:"count"`
	ExpiresAt time.Time `json:"expires_at"`
}
