// Package tracker holds the deadline classifier and the streak tracker.
// All functions are pure: they take the goal and streak state plus a point in
// time and return the new state without touching storage.
package tracker

import (
	"fmt"
	"strings"
	"time"

	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/entity"
)

// DefaultGraceWindow is how long before a deadline the goal turns Yellow.
const DefaultGraceWindow = 2 * time.Hour

const targetTimeLayout = "15:04"

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Evaluation is the classifier output for a goal at a given moment.
type Evaluation struct {
	NextDeadline  time.Time
	CurrentStatus entity.Status
	RedSince      *time.Time
	// BecameRed is set when the goal was not Red before this evaluation.
	BecameRed bool
}

// Apply copies the evaluation onto the goal.
func (ev Evaluation) Apply(goal *entity.Goal) {
	goal.NextDeadline = ev.NextDeadline
	goal.CurrentStatus = ev.CurrentStatus
	goal.RedSince = ev.RedSince
}

func ParseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown weekday %q", errorvalues.ErrInvalidSchedule, name)
	}
	return day, nil
}

func ParseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		day, err := ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// WeekdayNames is the inverse of ParseWeekdays.
func WeekdayNames(days []time.Weekday) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, strings.ToLower(d.String()))
	}
	return names
}

// ValidateSchedule rejects goals whose deadlines can't be derived.
func ValidateSchedule(goal *entity.Goal) error {
	switch goal.Frequency {
	case entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyThreeTimes:
	default:
		return fmt.Errorf("%w: unknown frequency %q", errorvalues.ErrInvalidSchedule, goal.Frequency)
	}
	if goal.Frequency != entity.FrequencyDaily && len(goal.TargetDays) == 0 {
		return fmt.Errorf("%w: target days are required for %s goals", errorvalues.ErrInvalidSchedule, goal.Frequency)
	}
	seen := make(map[time.Weekday]bool, len(goal.TargetDays))
	for _, day := range goal.TargetDays {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: weekday %d out of range", errorvalues.ErrInvalidSchedule, day)
		}
		if seen[day] {
			return fmt.Errorf("%w: duplicated target day %s", errorvalues.ErrInvalidSchedule, day)
		}
		seen[day] = true
	}
	switch goal.Difficulty {
	case entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", errorvalues.ErrInvalidSchedule, goal.Difficulty)
	}
	switch goal.Type {
	case entity.GoalTypeFlexible:
	case entity.GoalTypeTimeBound:
		if _, err := time.Parse(targetTimeLayout, goal.TargetTime); err != nil {
			return fmt.Errorf("%w: target time %q must be HH:MM", errorvalues.ErrInvalidSchedule, goal.TargetTime)
		}
	default:
		return fmt.Errorf("%w: unknown goal type %q", errorvalues.ErrInvalidSchedule, goal.Type)
	}
	return nil
}

// NextDeadline returns the first scheduled deadline strictly after the given moment.
func NextDeadline(goal entity.Goal, after time.Time) (time.Time, error) {
	if err := ValidateSchedule(&goal); err != nil {
		return time.Time{}, err
	}
	days := scheduledDays(goal)
	day := startOfDay(after)
	// Eight days cover the case when today is the only target day and its deadline has passed.
	for i := 0; i <= 7; i++ {
		candidate := day.AddDate(0, 0, i)
		if !days[candidate.Weekday()] {
			continue
		}
		deadline := deadlineOn(goal, candidate)
		if deadline.After(after) {
			return deadline, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: no deadline found after %s", errorvalues.ErrInvalidSchedule, after)
}

// ScheduleDeadline derives the current deadline from the schedule and the last completion.
func ScheduleDeadline(goal entity.Goal) (time.Time, error) {
	if goal.LatestCompletionDate == nil {
		return NextDeadline(goal, goal.CreatedAt)
	}
	settled, err := settledUntil(goal)
	if err != nil {
		return time.Time{}, err
	}
	return NextDeadline(goal, settled)
}

// CoveredDeadline is the earliest deadline not before at: the one a completion at that moment satisfies.
func CoveredDeadline(goal entity.Goal, at time.Time) (time.Time, error) {
	return NextDeadline(goal, at.Add(-time.Nanosecond))
}

// WindowStart is the earliest moment a completion counts toward the current deadline.
func WindowStart(goal entity.Goal) (time.Time, error) {
	if goal.LatestCompletionDate == nil {
		return goal.CreatedAt, nil
	}
	settled, err := settledUntil(goal)
	if err != nil {
		return time.Time{}, err
	}
	return settled.Add(time.Nanosecond), nil
}

// settledUntil is the moment up to which the latest completion satisfied the schedule.
// An on-time completion consumes the deadline it covers. A late one settles only the
// missed deadline, plus the deadline of its own day when that day is scheduled.
func settledUntil(goal entity.Goal) (time.Time, error) {
	at := *goal.LatestCompletionDate
	covered, err := CoveredDeadline(goal, at)
	if err != nil {
		return time.Time{}, err
	}
	if goal.LatestCompletionKind == entity.CompletionLate && !sameDay(covered, at) {
		return at, nil
	}
	return covered, nil
}

// EvaluateGoal classifies the goal at now. grace is the Yellow window before the deadline.
func EvaluateGoal(goal entity.Goal, now time.Time, grace time.Duration) (Evaluation, error) {
	deadline, err := ScheduleDeadline(goal)
	if err != nil {
		return Evaluation{}, err
	}
	ev := Evaluation{NextDeadline: deadline}
	switch {
	case !now.Before(deadline):
		ev.CurrentStatus = entity.StatusRed
		if goal.CurrentStatus == entity.StatusRed && goal.RedSince != nil {
			redSince := *goal.RedSince
			ev.RedSince = &redSince
		} else {
			redSince := deadline
			ev.RedSince = &redSince
			ev.BecameRed = true
		}
	case grace > 0 && !now.Before(deadline.Add(-grace)):
		ev.CurrentStatus = entity.StatusYellow
	default:
		ev.CurrentStatus = entity.StatusGreen
	}
	return ev, nil
}

// ClassifyCompletion tells whether a completion at the given moment is on time, late or a duplicate.
func ClassifyCompletion(goal entity.Goal, at time.Time) (entity.CompletionKind, error) {
	deadline, err := ScheduleDeadline(goal)
	if err != nil {
		return "", err
	}
	windowStart, err := WindowStart(goal)
	if err != nil {
		return "", err
	}
	switch {
	case at.Before(windowStart):
		return entity.CompletionDuplicate, nil
	case !at.After(deadline):
		return entity.CompletionOnTime, nil
	default:
		return entity.CompletionLate, nil
	}
}

// CompleteGoal moves the goal past an accepted completion and re-evaluates it at now.
// Duplicates leave the goal untouched.
func CompleteGoal(goal entity.Goal, at, now time.Time, grace time.Duration) (entity.Goal, entity.CompletionKind, error) {
	kind, err := ClassifyCompletion(goal, at)
	if err != nil {
		return goal, "", err
	}
	if kind == entity.CompletionDuplicate {
		return goal, kind, nil
	}
	completedAt := at
	goal.LatestCompletionDate = &completedAt
	goal.LatestCompletionKind = kind
	goal.CurrentStatus = entity.StatusGreen
	goal.RedSince = nil
	ev, err := EvaluateGoal(goal, now, grace)
	if err != nil {
		return goal, "", err
	}
	ev.Apply(&goal)
	return goal, kind, nil
}

func scheduledDays(goal entity.Goal) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool, 7)
	if goal.Frequency == entity.FrequencyDaily {
		for d := time.Sunday; d <= time.Saturday; d++ {
			days[d] = true
		}
		return days
	}
	for _, d := range goal.TargetDays {
		days[d] = true
	}
	return days
}

func deadlineOn(goal entity.Goal, day time.Time) time.Time {
	y, m, d := day.Date()
	if goal.Type == entity.GoalTypeTimeBound {
		// Already validated by ValidateSchedule.
		tt, _ := time.Parse(targetTimeLayout, goal.TargetTime)
		return time.Date(y, m, d, tt.Hour(), tt.Minute(), 0, 0, day.Location())
	}
	return time.Date(y, m, d, 23, 59, 59, 0, day.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
