package models

// UserStats summarises a user's skills and ledger.
type UserStats struct {
	TotalSkills      int
	TotalTimeMinutes int64
	TotalXP          int64
	CurrentStreak    int64
	TotalLogs        int64
	AvgXPPerSkill    float64
	AvgTimePerSkill  float64
}
