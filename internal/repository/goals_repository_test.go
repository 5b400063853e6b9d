package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goalRowColumns = []string{
	"id", "owner_id", "description", "frequency", "target_days", "difficulty", "goal_type", "target_time",
	"latest_completion_date", "latest_completion_kind", "current_status", "next_deadline", "red_since", "is_shared", "created_at", "updated_at",
}

func sampleGoal() entity.Goal {
	created := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	return entity.Goal{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		Description:   "read 20 pages",
		Frequency:     entity.FrequencyWeekly,
		TargetDays:    []time.Weekday{time.Monday, time.Thursday},
		Difficulty:    entity.DifficultyMedium,
		Type:          entity.GoalTypeTimeBound,
		TargetTime:    "21:00",
		CurrentStatus: entity.StatusGreen,
		NextDeadline:  time.Date(2025, 3, 3, 21, 0, 0, 0, time.UTC),
		IsShared:      true,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func goalRow(g entity.Goal) []any {
	return []any{
		g.ID, g.OwnerID, g.Description, string(g.Frequency), []string{"monday", "thursday"}, string(g.Difficulty), string(g.Type), g.TargetTime,
		g.LatestCompletionDate, string(g.LatestCompletionKind), string(g.CurrentStatus), g.NextDeadline, g.RedSince, g.IsShared, g.CreatedAt, g.UpdatedAt,
	}
}

func TestCreateGoal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGoalsRepoWithConn(conn)
	goal := sampleGoal()
	id := uuid.New()
	insertGoal := regexp.QuoteMeta(`INSERT INTO goals (owner_id, description, frequency, target_days, difficulty, goal_type, target_time, current_status, next_deadline, is_shared, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id;`)
	insertStreak := regexp.QuoteMeta(`INSERT INTO habit_streaks (habit_id, user_id) VALUES ($1, $2);`)
	args := []any{
		goal.OwnerID, goal.Description, "weekly", []string{"monday", "thursday"}, "medium", "time-bound",
		goal.TargetTime, "Green", goal.NextDeadline, goal.IsShared, goal.CreatedAt,
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "created with empty streak",
			MockPrepFunc: func() {
				conn.ExpectBegin()
				conn.ExpectQuery(insertGoal).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
				conn.ExpectExec(insertStreak).WithArgs(id, goal.OwnerID).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				conn.ExpectCommit()
			},
		},
		{
			Desc:  "duplicate description",
			Error: errorvalues.ErrGoalExists,
			MockPrepFunc: func() {
				conn.ExpectBegin()
				conn.ExpectQuery(insertGoal).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
				conn.ExpectRollback()
			},
		},
		{
			Desc:  "owner missing",
			Error: errorvalues.ErrOwnerNotFound,
			MockPrepFunc: func() {
				conn.ExpectBegin()
				conn.ExpectQuery(insertGoal).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
				conn.ExpectRollback()
			},
		},
		{
			Desc:  "streak insert fails",
			Error: errors.New("creating streak db error: db error"),
			MockPrepFunc: func() {
				conn.ExpectBegin()
				conn.ExpectQuery(insertGoal).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
				conn.ExpectExec(insertStreak).WithArgs(id, goal.OwnerID).WillReturnError(errors.New("db error"))
				conn.ExpectRollback()
			},
		},
		{
			Desc:  "begin fails",
			Error: errors.New("beginning transaction error: conn closed"),
			MockPrepFunc: func() {
				conn.ExpectBegin().WillReturnError(errors.New("conn closed"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := repo.Create(ctx, &goal)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, id, result)
			}
			assert.NoError(t, conn.ExpectationsWereMet())
		})
	}
}

func TestGetGoalByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGoalsRepoWithConn(conn)
	goal := sampleGoal()
	completed := time.Date(2025, 3, 3, 20, 0, 0, 0, time.UTC)
	goal.LatestCompletionDate = &completed
	query := regexp.QuoteMeta(`SELECT id, owner_id, description, frequency, target_days, difficulty, goal_type, target_time, latest_completion_date, latest_completion_kind, current_status, next_deadline, red_since, is_shared, created_at, updated_at FROM goals WHERE id = $1;`)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(goal.ID).
			WillReturnRows(pgxmock.NewRows(goalRowColumns).AddRow(goalRow(goal)...))
		result, err := repo.GetByID(ctx, goal.ID)
		require.NoError(t, err)
		assert.Equal(t, goal, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(goal.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, goal.ID)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("unknown weekday in row", func(t *testing.T) {
		row := goalRow(goal)
		row[4] = []string{"funday"}
		conn.ExpectQuery(query).WithArgs(goal.ID).WillReturnRows(pgxmock.NewRows(goalRowColumns).AddRow(row...))
		_, err := repo.GetByID(ctx, goal.ID)
		assert.Error(t, err)
	})
}

func TestGetGoalsByOwnerID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGoalsRepoWithConn(conn)
	first, second := sampleGoal(), sampleGoal()
	second.OwnerID = first.OwnerID
	second.Description = "run 5k"
	query := regexp.QuoteMeta(`SELECT id, owner_id, description, frequency, target_days, difficulty, goal_type, target_time, latest_completion_date, latest_completion_kind, current_status, next_deadline, red_since, is_shared, created_at, updated_at FROM goals WHERE owner_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`)
	testCases := []struct {
		Desc         string
		Expected     []*entity.Goal
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:     "two goals",
			Expected: []*entity.Goal{&first, &second},
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(first.OwnerID, 10, 0).
					WillReturnRows(pgxmock.NewRows(goalRowColumns).AddRow(goalRow(first)...).AddRow(goalRow(second)...))
			},
		},
		{
			Desc:     "no goals",
			Expected: []*entity.Goal{},
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(first.OwnerID, 10, 0).WillReturnRows(pgxmock.NewRows(goalRowColumns))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting goals by owner error: db error"),
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(first.OwnerID, 10, 0).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := repo.GetByOwnerID(ctx, first.OwnerID, 10, 0)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, result)
		})
	}
}

func TestDeleteGoal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGoalsRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM goals WHERE id = $1;`)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "deleted",
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrGoalNotFound,
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error deleting goal: db error"),
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Delete(ctx, id)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
