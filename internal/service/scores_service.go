package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/internal/scoring"
	"github.com/limbo/accountability/pkg/entity"
)

// Upper bound of goals taken into a user's score.
const maxScoredGoals = 500

type ScoresService struct {
	goalsRepo    repository.GoalsRepositoryI
	streaksRepo  repository.StreaksRepositoryI
	progressRepo repository.ProgressRepositoryI
}

func NewScoresService(goalsRepo repository.GoalsRepositoryI, streaksRepo repository.StreaksRepositoryI, progressRepo repository.ProgressRepositoryI) *ScoresService {
	if goalsRepo == nil || streaksRepo == nil || progressRepo == nil {
		log.Fatal("on scores service provided nil repos")
	}
	return &ScoresService{
		goalsRepo:    goalsRepo,
		streaksRepo:  streaksRepo,
		progressRepo: progressRepo,
	}
}

func (ss *ScoresService) GetUserScores(ctx context.Context, uid uuid.UUID) (*ScoreReport, error) {
	goals, err := ss.goalsRepo.GetByOwnerID(ctx, uid, maxScoredGoals, 0)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	streaks, err := ss.streaksRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	ids := make([]uuid.UUID, 0, len(goals))
	values := make([]entity.Goal, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
		values = append(values, *g)
	}
	counts, err := ss.progressRepo.CountByGoalIDs(ctx, ids)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}

	scores := scoring.CalculateMultipleHabitScores(streaks, values, counts)
	normalized := scoring.NormalizeHabitScores(scores)
	byHabit := make(map[uuid.UUID]entity.NormalizedScore, len(normalized))
	for _, n := range normalized {
		byHabit[n.HabitID] = n
	}
	report := &ScoreReport{
		Habits:  make([]HabitReport, 0, len(scores)),
		Overall: scoring.CalculateOverallUserScore(scores),
	}
	for _, s := range scores {
		n := byHabit[s.HabitID]
		report.Habits = append(report.Habits, HabitReport{
			Score:       s,
			Normalized:  n,
			Recognition: scoring.GetRecognitionLevel(s, n),
		})
	}
	return report, nil
}
