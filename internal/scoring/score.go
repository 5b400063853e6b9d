// Package scoring turns streaks and completion counts into difficulty-weighted scores
// and ranks them. Functions never fail: missing data degrades to neutral values.
package scoring

import (
	"bytes"
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/limbo/accountability/pkg/entity"
)

var difficultyMultipliers = map[entity.Difficulty]float64{
	entity.DifficultyEasy:   1,
	entity.DifficultyMedium: 1.5,
	entity.DifficultyHard:   2,
}

const (
	currentStreakWeight = 10
	completionWeight    = 2
	bestStreakWeight    = 5
)

type UserLevel struct {
	Level     string `json:"level"`
	Title     string `json:"title"`
	Threshold int    `json:"threshold"`
}

// Ascending by threshold; the first entry is the default.
var userLevels = []UserLevel{
	{Level: "bronze", Title: "Bronze", Threshold: 0},
	{Level: "silver", Title: "Silver", Threshold: 500},
	{Level: "gold", Title: "Gold", Threshold: 1500},
	{Level: "platinum", Title: "Platinum", Threshold: 3500},
	{Level: "diamond", Title: "Diamond", Threshold: 7500},
}

type UserScore struct {
	TotalRawScore      int       `json:"total_raw_score"`
	TotalAdjustedScore int       `json:"total_adjusted_score"`
	AverageMultiplier  float64   `json:"average_multiplier"`
	HardHabitCount     int       `json:"hard_habit_count"`
	TotalHabits        int       `json:"total_habits"`
	OverallLevel       UserLevel `json:"overall_level"`
}

// Multiplier falls back to 1 for unknown difficulties.
func Multiplier(d entity.Difficulty) float64 {
	m, ok := difficultyMultipliers[d]
	if !ok {
		return 1
	}
	return m
}

func CalculateHabitScore(streak entity.HabitStreak, goal entity.Goal, totalCompletions int) entity.HabitScore {
	raw := streak.CurrentStreak*currentStreakWeight +
		totalCompletions*completionWeight +
		streak.BestStreak*bestStreakWeight
	multiplier := Multiplier(goal.Difficulty)
	return entity.HabitScore{
		HabitID:          goal.ID,
		RawScore:         raw,
		AdjustedScore:    roundHalfUp(float64(raw) * multiplier),
		Difficulty:       goal.Difficulty,
		Multiplier:       multiplier,
		StreakLength:     streak.CurrentStreak,
		TotalCompletions: totalCompletions,
	}
}

// CalculateMultipleHabitScores pairs streaks with goals by habit id. Streaks whose goal
// is gone are dropped, missing completion counts are zero.
func CalculateMultipleHabitScores(streaks []entity.HabitStreak, goals []entity.Goal, completionCounts map[uuid.UUID]int) []entity.HabitScore {
	goalsByID := make(map[uuid.UUID]entity.Goal, len(goals))
	for _, g := range goals {
		goalsByID[g.ID] = g
	}
	scores := make([]entity.HabitScore, 0, len(streaks))
	for _, s := range streaks {
		goal, ok := goalsByID[s.HabitID]
		if !ok {
			continue
		}
		scores = append(scores, CalculateHabitScore(s, goal, completionCounts[s.HabitID]))
	}
	return scores
}

// NormalizeHabitScores computes a percentile inside each difficulty group and a rank
// across the whole input. Output is in rank order.
func NormalizeHabitScores(scores []entity.HabitScore) []entity.NormalizedScore {
	result := make([]entity.NormalizedScore, 0, len(scores))
	if len(scores) == 0 {
		return result
	}
	groups := make(map[entity.Difficulty][]int)
	for _, s := range scores {
		groups[s.Difficulty] = append(groups[s.Difficulty], s.AdjustedScore)
	}
	ranked := slices.Clone(scores)
	slices.SortStableFunc(ranked, func(a, b entity.HabitScore) int {
		if a.AdjustedScore != b.AdjustedScore {
			return b.AdjustedScore - a.AdjustedScore
		}
		return bytes.Compare(a.HabitID[:], b.HabitID[:])
	})
	for i, s := range ranked {
		group := groups[s.Difficulty]
		atOrBelow := 0
		for _, v := range group {
			if v <= s.AdjustedScore {
				atOrBelow++
			}
		}
		pct := 100 * float64(atOrBelow-1) / float64(max(len(group)-1, 1))
		result = append(result, entity.NormalizedScore{
			HabitID:         s.HabitID,
			NormalizedScore: pct,
			Percentile:      int(math.Round(pct)),
			Rank:            i + 1,
			TotalHabits:     len(scores),
		})
	}
	return result
}

func CalculateOverallUserScore(scores []entity.HabitScore) UserScore {
	us := UserScore{
		AverageMultiplier: 1,
		TotalHabits:       len(scores),
	}
	if len(scores) == 0 {
		us.OverallLevel = userLevels[0]
		return us
	}
	multiplierSum := 0.0
	for _, s := range scores {
		us.TotalRawScore += s.RawScore
		us.TotalAdjustedScore += s.AdjustedScore
		multiplierSum += s.Multiplier
		if s.Difficulty == entity.DifficultyHard {
			us.HardHabitCount++
		}
	}
	us.AverageMultiplier = multiplierSum / float64(len(scores))
	us.OverallLevel = levelFor(us.TotalAdjustedScore)
	return us
}

func levelFor(total int) UserLevel {
	level := userLevels[0]
	for _, l := range userLevels {
		if total >= l.Threshold {
			level = l
		}
	}
	return level
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
