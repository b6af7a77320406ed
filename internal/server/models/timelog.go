package models

import "time"

// TimeLog is one immutable entry of the progression ledger.
type TimeLog struct {
	ID       string
	SkillID  string
	UserID   string
	Minutes  int64
	XPEarned int64
	Note     *string
	LoggedAt time.Time
}
