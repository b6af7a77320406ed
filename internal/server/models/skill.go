package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Difficulty is the tier of a skill. It decides the XP multiplier.
type Difficulty int

const (
	DifficultyTrivial Difficulty = iota + 1
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
	DifficultyExtreme
	DifficultyLegendary
)

var difficultyNames = map[Difficulty]string{
	DifficultyTrivial:   "trivial",
	DifficultyEasy:      "easy",
	DifficultyMedium:    "medium",
	DifficultyHard:      "hard",
	DifficultyExtreme:   "extreme",
	DifficultyLegendary: "legendary",
}

// halfMultipliers holds each multiplier doubled, so XP stays in integers.
var halfMultipliers = map[Difficulty]int64{
	DifficultyTrivial:   2,
	DifficultyEasy:      3,
	DifficultyMedium:    4,
	DifficultyHard:      5,
	DifficultyExtreme:   6,
	DifficultyLegendary: 7,
}

// Difficulties lists every valid value in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyTrivial, DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme, DifficultyLegendary}
}

// ParseDifficulty accepts the lower-case name, ignoring surrounding space
// and case.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range difficultyNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyNames[d]
	return ok
}

func (d Difficulty) String() string {
	if n, ok := difficultyNames[d]; ok {
		return n
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Multiplier is the XP earned per minute. Invalid values yield 0.
func (d Difficulty) Multiplier() float64 {
	return float64(halfMultipliers[d]) / 2
}

// XPFor returns floor(minutes * multiplier). Non-positive minutes or an
// invalid difficulty earn nothing.
func (d Difficulty) XPFor(minutes int64) int64 {
	if minutes <= 0 {
		return 0
	}
	return minutes * halfMultipliers[d] / 2
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Value stores the difficulty by name.
func (d Difficulty) Value() (driver.Value, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return d.String(), nil
}

func (d *Difficulty) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Difficulty", src)
	}
}

// Skill is a trackable activity owned by one user. The totals and the streak
// are only changed by time logging and never decrease.
type Skill struct {
	ID               string
	UserID           string
	CategoryID       string
	Name             string
	Icon             string
	Description      string
	Difficulty       Difficulty
	TotalTimeMinutes int64
	TotalXP          int64
	Streak           int64
	LastLoggedAt     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultSkillIcon is used when creation does not pick one.
const DefaultSkillIcon = "🎯"

// SkillPatch carries the user-editable fields; nil means unchanged.
type SkillPatch struct {
	Name        *string
	Difficulty  *Difficulty
	Icon        *string
	Description *string
}

func (p SkillPatch) Empty() bool {
	return p.Name == nil && p.Difficulty == nil && p.Icon == nil && p.Description == nil
}

// SkillProgress is the atomic increment applied to a skill per time log.
type SkillProgress struct {
	SkillID      string
	UserID       string
	AddMinutes   int64
	AddXP        int64
	LastLoggedAt time.Time
}
