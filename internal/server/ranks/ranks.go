// Package ranks holds the fixed rank ladder and the XP to rank lookup.
package ranks

// Unbounded is the upper XP bound of the top rank.
const Unbounded int64 = 999999999

// RankDescriptor is one step of the ladder. MinXP and MaxXP are inclusive.
// Division is empty for the top three tiers.
type RankDescriptor struct {
	Tier      string
	Division  string
	TotalRank int
	MinXP     int64
	MaxXP     int64
	Color     string
	BgColor   string
}

// Name renders the rank as shown to players, e.g. "Gold II" or "Master".
func (r RankDescriptor) Name() string {
	if r.Division == "" {
		return r.Tier
	}
	return r.Tier + " " + r.Division
}

var table = [...]RankDescriptor{
	{"Iron", "IV", 1, 0, 999, "#8B4513", "#2D1810"},
	{"Iron", "III", 2, 1000, 1999, "#8B4513", "#2D1810"},
	{"Iron", "II", 3, 2000, 2999, "#8B4513", "#2D1810"},
	{"Iron", "I", 4, 3000, 3999, "#8B4513", "#2D1810"},

	{"Bronze", "IV", 5, 4000, 5999, "#CD7F32", "#3D2F1A"},
	{"Bronze", "III", 6, 6000, 7999, "#CD7F32", "#3D2F1A"},
	{"Bronze", "II", 7, 8000, 9999, "#CD7F32", "#3D2F1A"},
	{"Bronze", "I", 8, 10000, 11999, "#CD7F32", "#3D2F1A"},

	{"Silver", "IV", 9, 12000, 14999, "#C0C0C0", "#2A2A2A"},
	{"Silver", "III", 10, 15000, 17999, "#C0C0C0", "#2A2A2A"},
	{"Silver", "II", 11, 18000, 20999, "#C0C0C0", "#2A2A2A"},
	{"Silver", "I", 12, 21000, 23999, "#C0C0C0", "#2A2A2A"},

	{"Gold", "IV", 13, 24000, 27999, "#FFD700", "#3D3D1A"},
	{"Gold", "III", 14, 28000, 31999, "#FFD700", "#3D3D1A"},
	{"Gold", "II", 15, 32000, 35999, "#FFD700", "#3D3D1A"},
	{"Gold", "I", 16, 36000, 39999, "#FFD700", "#3D3D1A"},

	{"Platinum", "IV", 17, 40000, 44999, "#00CED1", "#1A3D3D"},
	{"Platinum", "III", 18, 45000, 49999, "#00CED1", "#1A3D3D"},
	{"Platinum", "II", 19, 50000, 54999, "#00CED1", "#1A3D3D"},
	{"Platinum", "I", 20, 55000, 59999, "#00CED1", "#1A3D3D"},

	{"Diamond", "IV", 21, 60000, 69999, "#1E90FF", "#1A1A3D"},
	{"Diamond", "III", 22, 70000, 79999, "#1E90FF", "#1A1A3D"},
	{"Diamond", "II", 23, 80000, 89999, "#1E90FF", "#1A1A3D"},
	{"Diamond", "I", 24, 90000, 99999, "#1E90FF", "#1A1A3D"},

	{"Master", "", 25, 100000, 149999, "#9370DB", "#3D1A3D"},
	{"Grandmaster", "", 26, 150000, 199999, "#FF1493", "#3D1A2A"},
	{"Challenger", "", 27, 200000, Unbounded, "#FF6347", "#3D2A1A"},
}

// Count is the number of ranks on the ladder.
const Count = len(table)

// RankFor maps cumulative XP to its rank. The ladder is scanned from the top
// and the first rank whose lower bound is reached wins, so an XP value equal
// to a boundary lands on the higher rank. Anything above the last finite
// bound is the top rank; negative input falls back to the lowest.
func RankFor(xp int64) RankDescriptor {
	for i := len(table) - 1; i >= 0; i-- {
		if xp >= table[i].MinXP {
			return table[i]
		}
	}
	return table[0]
}

// ByOrdinal returns the rank with the given TotalRank.
func ByOrdinal(totalRank int) (RankDescriptor, bool) {
	if totalRank < 1 || totalRank > len(table) {
		return RankDescriptor{}, false
	}
	return table[totalRank-1], true
}

// Lowest is the rank every account starts at.
func Lowest() RankDescriptor {
	return table[0]
}

// All returns a copy of the ladder in ascending order.
func All() []RankDescriptor {
	out := make([]RankDescriptor, len(table))
	copy(out, table[:])
	return out
}
