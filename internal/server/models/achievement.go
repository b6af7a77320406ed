package models

import (
	"encoding/json"
	"time"
)

// Achievement is a catalog entry. Criteria is opaque JSON describing the
// unlock rule.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	XPReward    int64
	Type        string
	Criteria    json.RawMessage
}

// UserAchievement records that a user earned an achievement.
type UserAchievement struct {
	UserID        string
	AchievementID string
	EarnedAt      time.Time
	XPAwarded     int64
}

// AchievementStatus is a catalog entry as seen by one user.
type AchievementStatus struct {
	Achievement
	Earned     bool
	EarnedDate *time.Time
}
