package errorvalues

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound  = errors.New("user doesn't exists")
	ErrUserExists    = errors.New("user with such name already exists")
	ErrOwnerNotFound = errors.New("owner of the goal doesn't exist")
	ErrInvalidToken  = errors.New("invalid token")

	ErrGoalNotFound   = errors.New("goal doesn't exist")
	ErrGoalExists     = errors.New("user already has goal with such description")
	ErrWrongOwner     = errors.New("goal has different owner")
	ErrStreakNotFound = errors.New("streak doesn't exist")
	ErrGoalModified   = errors.New("goal was changed by another request")

	ErrValidation          = errors.New("validation error")
	ErrInvalidSchedule     = errors.New("invalid goal schedule")
	ErrCompletionDuplicate = errors.New("goal already completed for current window")
	ErrCompletionInFuture  = errors.New("completion time is in the future")

	ErrSelfNudge     = errors.New("you cannot nudge yourself")
	ErrNudgeCooldown = errors.New("nudge cooldown is active")
)

// CooldownError carries the minutes left until the same sender may nudge the goal again.
type CooldownError struct {
	RemainingMinutes int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("please wait %d minutes before nudging again", e.RemainingMinutes)
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrNudgeCooldown
}
