// Package models defines the server-side records persisted by repositories.
package models

import "time"

// User is an account together with its progression aggregates.
//
// CurrentRank is the ordinal of ranks.RankFor(TotalXP). It is recomputed on
// every XP change and never edited on its own. Version increases on every
// progression write and guards the compare-and-set update.
type User struct {
	ID               string
	Username         string
	Email            string
	PasswordHash     string
	Avatar           string
	TotalXP          int64
	TotalTimeMinutes int64
	CurrentRank      int
	Version          int64
	Settings         Settings
	JoinedAt         time.Time
	LastActive       time.Time
}

// DefaultAvatar is used when registration does not pick one.
const DefaultAvatar = "🌟"

// Settings are per-user preferences.
type Settings struct {
	UsePredefinedCategories bool
	Notifications           bool
	AutoSave                bool
	Theme                   string
	SoundEffects            bool
	DailyGoal               int
	StreakReminders         bool
}

// DefaultSettings returns the settings a new account starts with.
func DefaultSettings() Settings {
	return Settings{
		UsePredefinedCategories: true,
		Notifications:           true,
		AutoSave:                true,
		Theme:                   "dark",
		SoundEffects:            true,
		DailyGoal:               120,
		StreakReminders:         true,
	}
}

// SettingsPatch carries optional updates; nil fields are left unchanged.
type SettingsPatch struct {
	UsePredefinedCategories *bool
	Notifications           *bool
	AutoSave                *bool
	Theme                   *string
	SoundEffects            *bool
	DailyGoal               *int
	StreakReminders         *bool
}

// Empty reports whether the patch changes nothing.
func (p SettingsPatch) Empty() bool {
	return p.UsePredefinedCategories == nil && p.Notifications == nil && p.AutoSave == nil &&
		p.Theme == nil && p.SoundEffects == nil && p.DailyGoal == nil && p.StreakReminders == nil
}

// Apply returns s with the patch applied.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.UsePredefinedCategories != nil {
		s.UsePredefinedCategories = *p.UsePredefinedCategories
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.AutoSave != nil {
		s.AutoSave = *p.AutoSave
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.SoundEffects != nil {
		s.SoundEffects = *p.SoundEffects
	}
	if p.DailyGoal != nil {
		s.DailyGoal = *p.DailyGoal
	}
	if p.StreakReminders != nil {
		s.StreakReminders = *p.StreakReminders
	}
	return s
}

// ProgressUpdate is the compare-and-set write applied to a user when time is
// logged. It succeeds only while the stored version equals ExpectedVersion.
type ProgressUpdate struct {
	UserID           string
	ExpectedVersion  int64
	TotalXP          int64
	TotalTimeMinutes int64
	CurrentRank      int
	LastActive       time.Time
}
