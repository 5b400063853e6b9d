package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/internal/scoring"
	"github.com/limbo/accountability/internal/tracker"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/limbo/accountability/pkg/metrics"
	"go.uber.org/zap"
)

type GoalsServiceOptions struct {
	Clock tracker.Clock
	// Yellow window before a deadline. Zero means tracker.DefaultGraceWindow
	GraceWindow time.Duration
	// Zone where calendar days are cut. Defaults to UTC
	Location *time.Location
	Logger   *zap.Logger
}

type GoalsService struct {
	goalsRepo    repository.GoalsRepositoryI
	streaksRepo  repository.StreaksRepositoryI
	progressRepo repository.ProgressRepositoryI
	clock        tracker.Clock
	grace        time.Duration
	loc          *time.Location
	logger       *zap.Logger
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, streaksRepo repository.StreaksRepositoryI, progressRepo repository.ProgressRepositoryI, opts GoalsServiceOptions) *GoalsService {
	if goalsRepo == nil || streaksRepo == nil || progressRepo == nil {
		log.Fatal("on goals service provided nil repos")
	}
	gs := &GoalsService{
		goalsRepo:    goalsRepo,
		streaksRepo:  streaksRepo,
		progressRepo: progressRepo,
		clock:        opts.Clock,
		grace:        opts.GraceWindow,
		loc:          opts.Location,
		logger:       opts.Logger,
	}
	if gs.loc == nil {
		gs.loc = time.UTC
	}
	if gs.clock == nil {
		gs.clock = tracker.LocalClock(gs.loc)
	}
	if gs.grace == 0 {
		gs.grace = tracker.DefaultGraceWindow
	}
	if gs.logger == nil {
		gs.logger = zap.NewNop()
	}
	return gs
}

func (gs *GoalsService) now() time.Time {
	return gs.clock().In(gs.loc)
}

func (gs *GoalsService) CreateGoal(ctx context.Context, uid uuid.UUID, req CreateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	goalType := req.Type
	if goalType == "" {
		goalType = entity.GoalTypeFlexible
	}
	now := gs.now()
	goal := entity.Goal{
		OwnerID:       uid,
		Description:   strings.TrimSpace(req.Description),
		Frequency:     req.Frequency,
		TargetDays:    req.TargetDays,
		Difficulty:    req.Difficulty,
		Type:          goalType,
		TargetTime:    req.TargetTime,
		CurrentStatus: entity.StatusGreen,
		IsShared:      req.IsShared,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if goal.Frequency == entity.FrequencyDaily {
		goal.TargetDays = nil
	}
	ev, err := tracker.EvaluateGoal(goal, now, gs.grace)
	if err != nil {
		return nil, err
	}
	ev.Apply(&goal)
	id, err := gs.goalsRepo.Create(ctx, &goal)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrGoalExists):
			return nil, errorvalues.ErrGoalExists
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal.ID = id
	return &goal, nil
}

func (gs *GoalsService) GetUserGoals(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Goal, error) {
	goals, err := gs.goalsRepo.GetByOwnerID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	now := gs.now()
	for _, goal := range goals {
		if err = gs.evaluate(goal, now); err != nil {
			gs.logger.Warn("goal left with stored status", zap.String("goal_id", goal.ID.String()), zap.Error(err))
		}
	}
	return goals, nil
}

func (gs *GoalsService) GetGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.getOwnedGoal(ctx, goalID, uid)
	if err != nil {
		return nil, err
	}
	if err = gs.evaluate(goal, gs.now()); err != nil {
		return nil, err
	}
	return goal, nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, goalID, uid uuid.UUID) error {
	if _, err := gs.getOwnedGoal(ctx, goalID, uid); err != nil {
		return err
	}
	err := gs.goalsRepo.Delete(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalsService) CompleteGoal(ctx context.Context, goalID, uid uuid.UUID, at *time.Time) (*CompletionResult, error) {
	now := gs.now()
	completedAt := now
	if at != nil {
		completedAt = at.In(gs.loc)
	}
	if completedAt.After(now) {
		return nil, errorvalues.ErrCompletionInFuture
	}
	goal, err := gs.getOwnedGoal(ctx, goalID, uid)
	if err != nil {
		return nil, err
	}
	gs.localize(goal)
	streak, err := gs.getStreak(ctx, goal)
	if err != nil {
		return nil, err
	}

	// The deadline missed before this completion is counted first.
	updated, earlierMiss, err := tracker.EvaluateMiss(*streak, *goal, completedAt)
	if err != nil {
		return nil, err
	}
	updated, kind, err := tracker.RecordCompletion(updated, *goal, completedAt)
	if err != nil {
		return nil, err
	}
	if kind == entity.CompletionDuplicate {
		metrics.RecordCompletion(string(kind))
		return nil, errorvalues.ErrCompletionDuplicate
	}

	// A backdated completion may leave the following deadline already missed.
	completed := *goal
	completed.LatestCompletionDate = &completedAt
	completed.LatestCompletionKind = kind
	completed.CurrentStatus = entity.StatusGreen
	completed.RedSince = nil
	updated, laterMiss, err := tracker.EvaluateMiss(updated, completed, now)
	if err != nil {
		return nil, err
	}

	next, _, err := tracker.CompleteGoal(*goal, completedAt, now, gs.grace)
	if err != nil {
		return nil, err
	}
	completion := entity.Completion{
		GoalID:      goal.ID,
		UserID:      uid,
		CompletedAt: completedAt,
		Kind:        kind,
	}
	if err = gs.progressRepo.Save(ctx, &next, &updated, &completion); err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) || errors.Is(err, errorvalues.ErrGoalModified) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	gs.recordMiss(goal, earlierMiss)
	gs.recordMiss(goal, laterMiss)
	metrics.RecordCompletion(string(kind))
	gs.logger.Info("goal completed",
		zap.String("goal_id", goal.ID.String()),
		zap.String("kind", string(kind)),
		zap.Int("current_streak", updated.CurrentStreak),
	)
	return &CompletionResult{
		Goal:          &next,
		Streak:        &updated,
		Kind:          kind,
		Encouragement: scoring.GetDifficultyEncouragement(goal.Difficulty),
	}, nil
}

func (gs *GoalsService) EvaluateGoal(ctx context.Context, goalID, uid uuid.UUID) (*EvaluationResult, error) {
	goal, err := gs.getOwnedGoal(ctx, goalID, uid)
	if err != nil {
		return nil, err
	}
	gs.localize(goal)
	streak, err := gs.getStreak(ctx, goal)
	if err != nil {
		return nil, err
	}
	now := gs.now()
	updated, miss, err := tracker.EvaluateMiss(*streak, *goal, now)
	if err != nil {
		return nil, err
	}
	ev, err := tracker.EvaluateGoal(*goal, now, gs.grace)
	if err != nil {
		return nil, err
	}
	ev.Apply(goal)
	if err = gs.progressRepo.Save(ctx, goal, &updated, nil); err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) || errors.Is(err, errorvalues.ErrGoalModified) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	gs.recordMiss(goal, miss)
	return &EvaluationResult{
		Goal:   goal,
		Streak: &updated,
		Miss:   miss,
	}, nil
}

func (gs *GoalsService) GetStreak(ctx context.Context, goalID, uid uuid.UUID) (*entity.HabitStreak, error) {
	if _, err := gs.getOwnedGoal(ctx, goalID, uid); err != nil {
		return nil, err
	}
	streak, err := gs.streaksRepo.GetByHabitID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			return nil, err
		}
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return streak, nil
}

func (gs *GoalsService) GetCompletions(ctx context.Context, goalID, uid uuid.UUID, pagination PaginationOpts) ([]entity.Completion, error) {
	if _, err := gs.getOwnedGoal(ctx, goalID, uid); err != nil {
		return nil, err
	}
	completions, err := gs.progressRepo.GetByGoalID(ctx, goalID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return completions, nil
}

func (gs *GoalsService) getOwnedGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.goalsRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.OwnerID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return goal, nil
}

// getStreak falls back to an empty streak for goals stored without one.
func (gs *GoalsService) getStreak(ctx context.Context, goal *entity.Goal) (*entity.HabitStreak, error) {
	streak, err := gs.streaksRepo.GetByHabitID(ctx, goal.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			fresh := tracker.NewHabitStreak(goal.ID, goal.OwnerID)
			return &fresh, nil
		}
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return streak, nil
}

func (gs *GoalsService) evaluate(goal *entity.Goal, now time.Time) error {
	gs.localize(goal)
	ev, err := tracker.EvaluateGoal(*goal, now, gs.grace)
	if err != nil {
		return err
	}
	ev.Apply(goal)
	return nil
}

// localize moves stored instants to the service zone so that days are cut there.
func (gs *GoalsService) localize(goal *entity.Goal) {
	goal.CreatedAt = goal.CreatedAt.In(gs.loc)
	goal.UpdatedAt = goal.UpdatedAt.In(gs.loc)
	goal.NextDeadline = goal.NextDeadline.In(gs.loc)
	if goal.LatestCompletionDate != nil {
		t := goal.LatestCompletionDate.In(gs.loc)
		goal.LatestCompletionDate = &t
	}
	if goal.RedSince != nil {
		t := goal.RedSince.In(gs.loc)
		goal.RedSince = &t
	}
}

func (gs *GoalsService) recordMiss(goal *entity.Goal, miss tracker.MissOutcome) {
	if miss == tracker.MissNone {
		return
	}
	metrics.RecordMiss(string(miss))
	gs.logger.Info("missed deadline counted",
		zap.String("goal_id", goal.ID.String()),
		zap.String("outcome", string(miss)),
	)
}
