package models

// LeaderboardRow is a user as ranked by total XP.
type LeaderboardRow struct {
	UserID      string
	Username    string
	Avatar      string
	TotalXP     int64
	CurrentRank int
}

// Leaderboard is the global ranking page seen by one user.
type Leaderboard struct {
	Entries      []LeaderboardEntry
	UserPosition int64
	TotalPlayers int64
}

// LeaderboardEntry is a LeaderboardRow with its 1-based position.
type LeaderboardEntry struct {
	LeaderboardRow
	Position int
}
