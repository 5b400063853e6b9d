package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/entity"
)

// ProgressRepository writes the results of completions and miss evaluations.
type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	mustPing(conn, "progressRepo")
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) Save(ctx context.Context, goal *entity.Goal, streak *entity.HabitStreak, completion *entity.Completion) error {
	if goal == nil || streak == nil {
		return errors.New("goal and streak are required")
	}
	milestones, err := sonic.Marshal(streak.Milestones)
	if err != nil {
		return errors.New("encoding milestones error: " + err.Error())
	}
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	// The row lock serializes saves of one goal; updated_at tells whether the state was read before another save.
	var version time.Time
	err = tx.QueryRow(ctx, `SELECT updated_at FROM goals WHERE id = $1 FOR UPDATE;`, goal.ID).Scan(&version)
	if err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrGoalNotFound
		}
		return errors.New("locking goal error: " + err.Error())
	}
	if !version.Equal(goal.UpdatedAt) {
		_ = tx.Rollback(ctx)
		return errorvalues.ErrGoalModified
	}
	err = tx.QueryRow(ctx, `UPDATE goals SET latest_completion_date = $1, latest_completion_kind = $2, current_status = $3, next_deadline = $4, red_since = $5, updated_at = clock_timestamp() WHERE id = $6 RETURNING updated_at;`,
		goal.LatestCompletionDate,
		string(goal.LatestCompletionKind),
		string(goal.CurrentStatus),
		goal.NextDeadline,
		goal.RedSince,
		goal.ID,
	).Scan(&version)
	if err != nil {
		_ = tx.Rollback(ctx)
		return errors.New("updating goal state error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `INSERT INTO habit_streaks (habit_id, user_id, current_streak, best_streak, last_completion_date, streak_start_date, freezes_available, freezes_used, milestones) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (habit_id) DO UPDATE SET current_streak = EXCLUDED.current_streak, best_streak = EXCLUDED.best_streak, last_completion_date = EXCLUDED.last_completion_date, streak_start_date = EXCLUDED.streak_start_date, freezes_available = EXCLUDED.freezes_available, freezes_used = EXCLUDED.freezes_used, milestones = EXCLUDED.milestones, updated_at = NOW();`,
		streak.HabitID,
		streak.UserID,
		streak.CurrentStreak,
		streak.BestStreak,
		streak.LastCompletionDate,
		streak.StreakStartDate,
		streak.FreezesAvailable,
		streak.FreezesUsed,
		milestones,
	)
	if err != nil {
		_ = tx.Rollback(ctx)
		return errors.New("saving streak error: " + err.Error())
	}
	if completion != nil {
		row := tx.QueryRow(ctx, `INSERT INTO completions (goal_id, user_id, completed_at, kind) VALUES ($1, $2, $3, $4) RETURNING id;`,
			completion.GoalID,
			completion.UserID,
			completion.CompletedAt,
			string(completion.Kind),
		)
		if err = row.Scan(&completion.ID); err != nil {
			_ = tx.Rollback(ctx)
			var pgErr *pgconn.PgError
			// FK violation
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return errorvalues.ErrGoalNotFound
			}
			return errors.New("creating completion error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing progress error: " + err.Error())
	}
	goal.UpdatedAt = version
	return nil
}

func (pr *ProgressRepository) CountByGoalIDs(ctx context.Context, goalIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(goalIDs))
	if len(goalIDs) == 0 {
		return counts, nil
	}
	rows, err := pr.conn.Query(ctx, `SELECT goal_id, COUNT(*) FROM completions WHERE goal_id = ANY($1) GROUP BY goal_id;`, goalIDs)
	if err != nil {
		return nil, errors.New("error counting completions: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		var count int
		if err = rows.Scan(&id, &count); err != nil {
			return nil, errors.New("completion count row parsing error: " + err.Error())
		}
		counts[id] = count
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected completion count rows error: " + err.Error())
	}
	return counts, nil
}

func (pr *ProgressRepository) GetByGoalID(ctx context.Context, goalID uuid.UUID, limit, offset int) ([]entity.Completion, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, goal_id, user_id, completed_at, kind FROM completions WHERE goal_id = $1 ORDER BY completed_at DESC LIMIT $2 OFFSET $3;`, goalID, limit, offset)
	if err != nil {
		return nil, errors.New("getting completions error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Completion, 0)
	for rows.Next() {
		var c entity.Completion
		var kind string
		if err = rows.Scan(&c.ID, &c.GoalID, &c.UserID, &c.CompletedAt, &kind); err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		c.Kind = entity.CompletionKind(kind)
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected completion rows error: " + err.Error())
	}
	return result, nil
}
