package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/accountability/internal/scoring"
	"github.com/limbo/accountability/internal/tracker"
	"github.com/limbo/accountability/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CreateGoalRequest struct {
	Description string            `validate:"required,notblank,max=500"`
	Frequency   entity.Frequency  `validate:"required"`
	TargetDays  []time.Weekday    `validate:"max=7"`
	Difficulty  entity.Difficulty `validate:"required"`
	Type        entity.GoalType
	TargetTime  string
	IsShared    bool
}

type SendNudgeRequest struct {
	SenderID        uuid.UUID `validate:"required"`
	SenderName      string    `validate:"required,notblank"`
	ReceiverID      uuid.UUID `validate:"required"`
	GoalID          uuid.UUID `validate:"required"`
	GoalDescription string    `validate:"required,notblank"`
}

// CompletionResult is the goal and streak state after a completion was accepted.
type CompletionResult struct {
	Goal          *entity.Goal
	Streak        *entity.HabitStreak
	Kind          entity.CompletionKind
	Encouragement scoring.Encouragement
}

// EvaluationResult is the goal and streak state after a miss check.
type EvaluationResult struct {
	Goal   *entity.Goal
	Streak *entity.HabitStreak
	Miss   tracker.MissOutcome
}

type HabitReport struct {
	Score       entity.HabitScore
	Normalized  entity.NormalizedScore
	Recognition scoring.RecognitionLevel
}

type ScoreReport struct {
	Habits  []HabitReport
	Overall scoring.UserScore
}

type UsersServiceI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Returns user, storing it first if the id was never seen. Called on every authorized request
	EnsureUser(ctx context.Context, id uuid.UUID, name string) (*entity.User, error)
	// Registers device token of receiver. Empty token disables pushes
	UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error
}

type GoalsServiceI interface {
	// Validates schedule, stores goal with its initial deadline and empty streak
	CreateGoal(ctx context.Context, uid uuid.UUID, req CreateGoalRequest) (*entity.Goal, error)
	// Lists user's goals with status evaluated at the current moment
	GetUserGoals(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Goal, error)
	GetGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, goalID, uid uuid.UUID) error
	// Records completion at given moment, now when nil
	CompleteGoal(ctx context.Context, goalID, uid uuid.UUID, at *time.Time) (*CompletionResult, error)
	// Counts missed deadline if any and stores the evaluated status
	EvaluateGoal(ctx context.Context, goalID, uid uuid.UUID) (*EvaluationResult, error)
	GetStreak(ctx context.Context, goalID, uid uuid.UUID) (*entity.HabitStreak, error)
	GetCompletions(ctx context.Context, goalID, uid uuid.UUID, pagination PaginationOpts) ([]entity.Completion, error)
}

type ScoresServiceI interface {
	GetUserScores(ctx context.Context, uid uuid.UUID) (*ScoreReport, error)
}

type NudgeServiceI interface {
	CanSendNudge(ctx context.Context, userID, goalID uuid.UUID) (bool, error)
	// Whole minutes left until user may nudge goal again, 0 when allowed
	GetRemainingCooldownMinutes(ctx context.Context, userID, goalID uuid.UUID) (int, error)
	SendNudge(ctx context.Context, req SendNudgeRequest) (uuid.UUID, error)
	GetNudgeCooldowns(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]time.Time, error)
	GetReceivedNudges(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.Nudge, error)
}

// PushSenderI delivers push notifications. Delivery is best effort.
type PushSenderI interface {
	SendPush(ctx context.Context, n entity.PushNotification) error
}
