package tracker

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/accountability/pkg/entity"
)

type MissOutcome string

const (
	// MissNone means there was nothing to evaluate: the deadline is ahead or the miss was already counted.
	MissNone    MissOutcome = "none"
	MissCovered MissOutcome = "covered"
	MissReset   MissOutcome = "reset"
)

// Streak lengths that are recorded as milestones.
var milestoneDays = []int{7, 30, 60, 100, 365}

// Freezes granted when a milestone is first reached.
var milestoneFreezeGrants = map[int]int{
	30: 1,
}

func NewHabitStreak(habitID, userID uuid.UUID) entity.HabitStreak {
	return entity.HabitStreak{
		HabitID:    habitID,
		UserID:     userID,
		Milestones: []entity.Milestone{},
	}
}

// RecordCompletion applies a completion to the streak. Only on-time completions extend it;
// late ones just move the last completion date and duplicates change nothing.
func RecordCompletion(streak entity.HabitStreak, goal entity.Goal, at time.Time) (entity.HabitStreak, entity.CompletionKind, error) {
	kind, err := ClassifyCompletion(goal, at)
	if err != nil {
		return streak, "", err
	}
	streak.Milestones = cloneMilestones(streak.Milestones)
	completedAt := at
	switch kind {
	case entity.CompletionLate:
		streak.LastCompletionDate = &completedAt
	case entity.CompletionOnTime:
		if streak.CurrentStreak == 0 {
			start := at
			streak.StreakStartDate = &start
		}
		streak.CurrentStreak++
		if streak.CurrentStreak > streak.BestStreak {
			streak.BestStreak = streak.CurrentStreak
		}
		streak.LastCompletionDate = &completedAt
		streak = reachMilestone(streak, at)
	}
	return streak, kind, nil
}

// EvaluateMiss counts a missed deadline once per Red episode: goal is the state before
// the status flips. A freeze covers the miss, otherwise the current streak resets.
func EvaluateMiss(streak entity.HabitStreak, goal entity.Goal, now time.Time) (entity.HabitStreak, MissOutcome, error) {
	if goal.CurrentStatus == entity.StatusRed {
		return streak, MissNone, nil
	}
	deadline, err := ScheduleDeadline(goal)
	if err != nil {
		return streak, MissNone, err
	}
	if now.Before(deadline) {
		return streak, MissNone, nil
	}
	if streak.FreezesAvailable > 0 {
		streak.FreezesAvailable--
		streak.FreezesUsed++
		return streak, MissCovered, nil
	}
	streak.CurrentStreak = 0
	streak.StreakStartDate = nil
	return streak, MissReset, nil
}

func reachMilestone(streak entity.HabitStreak, at time.Time) entity.HabitStreak {
	if !isMilestone(streak.CurrentStreak) {
		return streak
	}
	if n := len(streak.Milestones); n > 0 && streak.Milestones[n-1].Days >= streak.CurrentStreak {
		return streak
	}
	streak.Milestones = append(streak.Milestones, entity.Milestone{
		Days:       streak.CurrentStreak,
		AchievedAt: at,
	})
	streak.FreezesAvailable += milestoneFreezeGrants[streak.CurrentStreak]
	return streak
}

func isMilestone(days int) bool {
	for _, d := range milestoneDays {
		if d == days {
			return true
		}
	}
	return false
}

func cloneMilestones(ms []entity.Milestone) []entity.Milestone {
	out := make([]entity.Milestone, len(ms))
	copy(out, ms)
	return out
}
