// Package catalog holds the static data every installation starts with: the
// achievement catalog and the predefined skill categories.
package catalog

import (
	"encoding/json"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

// Achievements returns the default achievement catalog. Unlock rules are
// carried as criteria JSON only; nothing in the server evaluates them yet.
func Achievements() []models.Achievement {
	out := make([]models.Achievement, len(achievements))
	copy(out, achievements)
	return out
}

var achievements = []models.Achievement{
	{ID: "night-owl", Name: "Night Owl", Description: "Log activity between 2-5 AM", Icon: "🦉", XPReward: 100, Type: "time-based", Criteria: json.RawMessage(`{"start_hour":2,"end_hour":5}`)},
	{ID: "early-bird", Name: "Early Bird", Description: "Log activity before 6 AM", Icon: "🐦", XPReward: 75, Type: "time-based", Criteria: json.RawMessage(`{"before_hour":6}`)},
	{ID: "marathon-session", Name: "Marathon Master", Description: "Spend 5+ hours on one skill in a day", Icon: "🏃‍♂️", XPReward: 200, Type: "duration", Criteria: json.RawMessage(`{"min_minutes":300,"same_day":true}`)},
	{ID: "category-explorer", Name: "Category Explorer", Description: "Try a new skill category for the first time", Icon: "🗺️", XPReward: 50, Type: "exploration", Criteria: json.RawMessage(`{"new_category":true}`)},
	{ID: "weekend-warrior", Name: "Weekend Warrior", Description: "Log activities on both Saturday and Sunday", Icon: "⚔️", XPReward: 150, Type: "consistency", Criteria: json.RawMessage(`{"weekend_days":2}`)},
	{ID: "speed-demon", Name: "Speed Demon", Description: "Log 10 different activities in one day", Icon: "⚡", XPReward: 300, Type: "variety", Criteria: json.RawMessage(`{"activities_per_day":10}`)},
	{ID: "perfectionist", Name: "Perfectionist", Description: "Complete 7 days without missing any planned activities", Icon: "💎", XPReward: 500, Type: "consistency", Criteria: json.RawMessage(`{"consecutive_days":7,"no_missed":true}`)},
	{ID: "legendary-grinder", Name: "Legendary Grinder", Description: "Spend 100+ hours on Legendary difficulty activities", Icon: "🌟", XPReward: 1000, Type: "difficulty", Criteria: json.RawMessage(`{"difficulty":"legendary","min_hours":100}`)},
	{ID: "social-butterfly", Name: "Social Butterfly", Description: "Log 20+ hours of social activities in a week", Icon: "🦋", XPReward: 250, Type: "category", Criteria: json.RawMessage(`{"category":"social","min_hours":20,"period":"week"}`)},
	{ID: "mind-over-matter", Name: "Mind Over Matter", Description: "Balance 50+ hours each in Mind and Body categories", Icon: "🧠💪", XPReward: 400, Type: "balance", Criteria: json.RawMessage(`{"categories":["mind","body"],"min_hours":50}`)},
	{ID: "creative-genius", Name: "Creative Genius", Description: "Reach 10,000 XP in Creativity category", Icon: "🎭", XPReward: 750, Type: "mastery", Criteria: json.RawMessage(`{"category":"creativity","min_xp":10000}`)},
	{ID: "productivity-guru", Name: "Productivity Guru", Description: "Maintain 30-day streak in Productivity", Icon: "📈", XPReward: 600, Type: "mastery", Criteria: json.RawMessage(`{"category":"productivity","streak_days":30}`)},
	{ID: "midnight-madness", Name: "Midnight Madness", Description: "Log activity exactly at midnight (12:00 AM)", Icon: "🌙", XPReward: 150, Type: "time-based", Criteria: json.RawMessage(`{"exact_hour":0}`)},
	{ID: "holiday-hero", Name: "Holiday Hero", Description: "Log activities on 3 major holidays", Icon: "🎉", XPReward: 300, Type: "special", Criteria: json.RawMessage(`{"holiday_count":3}`)},
	{ID: "triple-threat", Name: "Triple Threat", Description: "Reach level 10 in 3 different categories", Icon: "🎯", XPReward: 800, Type: "achievement", Criteria: json.RawMessage(`{"categories":3,"min_level":10}`)},
	{ID: "time-lord", Name: "Time Lord", Description: "Log activities for 365 consecutive days", Icon: "⏰", XPReward: 2000, Type: "legendary", Criteria: json.RawMessage(`{"consecutive_days":365}`)},
	{ID: "variety-seeker", Name: "Variety Seeker", Description: "Try all 6 difficulty levels in one week", Icon: "🎲", XPReward: 200, Type: "variety", Criteria: json.RawMessage(`{"difficulty_levels":6,"period":"week"}`)},
	{ID: "comeback-kid", Name: "Comeback Kid", Description: "Return after a 7+ day break and log activity", Icon: "🔄", XPReward: 100, Type: "resilience", Criteria: json.RawMessage(`{"break_days":7,"return":true}`)},
	{ID: "zen-master", Name: "Zen Master", Description: "Log meditation activity for 100+ hours total", Icon: "☯️", XPReward: 500, Type: "mastery", Criteria: json.RawMessage(`{"skill_type":"meditation","min_hours":100}`)},
	{ID: "ultimate-champion", Name: "Ultimate Champion", Description: "Reach Challenger rank", Icon: "🏆", XPReward: 5000, Type: "legendary", Criteria: json.RawMessage(`{"min_rank":"challenger"}`)},
}
