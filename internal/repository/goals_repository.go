package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/tracker"
	"github.com/limbo/accountability/pkg/entity"
)

const goalColumns = `id, owner_id, description, frequency, target_days, difficulty, goal_type, target_time, latest_completion_date, latest_completion_kind, current_status, next_deadline, red_since, is_shared, created_at, updated_at`

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	mustPing(conn, "goalsRepo")
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error) {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("beginning transaction error: " + err.Error())
	}
	var id uuid.UUID
	row := tx.QueryRow(ctx, `INSERT INTO goals (owner_id, description, frequency, target_days, difficulty, goal_type, target_time, current_status, next_deadline, is_shared, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id;`,
		goal.OwnerID,
		goal.Description,
		string(goal.Frequency),
		tracker.WeekdayNames(goal.TargetDays),
		string(goal.Difficulty),
		string(goal.Type),
		goal.TargetTime,
		string(goal.CurrentStatus),
		goal.NextDeadline,
		goal.IsShared,
		goal.CreatedAt,
	)
	if err = row.Scan(&id); err != nil {
		_ = tx.Rollback(ctx)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrGoalExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating goal db error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `INSERT INTO habit_streaks (habit_id, user_id) VALUES ($1, $2);`, id, goal.OwnerID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return uuid.UUID{}, errors.New("creating streak db error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing goal error: " + err.Error())
	}
	return id, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1;`, id)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return goal, nil
}

func (gr *GoalsRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT `+goalColumns+` FROM goals WHERE owner_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`, ownerID, limit, offset)
	if err != nil {
		return nil, errors.New("getting goals by owner error: " + err.Error())
	}
	defer rows.Close()
	goals := make([]*entity.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		goals = append(goals, goal)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning goals: " + err.Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(row scanner) (*entity.Goal, error) {
	var goal entity.Goal
	var frequency, difficulty, goalType, completionKind, status string
	var targetDays []string
	var latestCompletion, redSince *time.Time
	err := row.Scan(
		&goal.ID,
		&goal.OwnerID,
		&goal.Description,
		&frequency,
		&targetDays,
		&difficulty,
		&goalType,
		&goal.TargetTime,
		&latestCompletion,
		&completionKind,
		&status,
		&goal.NextDeadline,
		&redSince,
		&goal.IsShared,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	goal.TargetDays, err = tracker.ParseWeekdays(targetDays)
	if err != nil {
		return nil, err
	}
	goal.Frequency = entity.Frequency(frequency)
	goal.Difficulty = entity.Difficulty(difficulty)
	goal.Type = entity.GoalType(goalType)
	goal.CurrentStatus = entity.Status(status)
	goal.LatestCompletionDate = latestCompletion
	goal.LatestCompletionKind = entity.CompletionKind(completionKind)
	goal.RedSince = redSince
	return &goal, nil
}
