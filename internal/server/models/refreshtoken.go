package models

import "time"

// RefreshToken is a server-stored, single-use token for minting new access
// tokens.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
