package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/entity"
)

const streakColumns = `habit_id, user_id, current_streak, best_streak, last_completion_date, streak_start_date, freezes_available, freezes_used, milestones`

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	mustPing(conn, "streaksRepo")
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) GetByHabitID(ctx context.Context, habitID uuid.UUID) (*entity.HabitStreak, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+streakColumns+` FROM habit_streaks WHERE habit_id = $1;`, habitID)
	streak, err := scanStreak(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStreakNotFound
		}
		return nil, errors.New("getting streak by habit error: " + err.Error())
	}
	return streak, nil
}

func (sr *StreaksRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.HabitStreak, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+streakColumns+` FROM habit_streaks WHERE user_id = $1;`, userID)
	if err != nil {
		return nil, errors.New("getting streaks by user error: " + err.Error())
	}
	defer rows.Close()
	streaks := make([]entity.HabitStreak, 0)
	for rows.Next() {
		streak, err := scanStreak(rows)
		if err != nil {
			return nil, errors.New("unmarshalling streak error: " + err.Error())
		}
		streaks = append(streaks, *streak)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning streaks: " + err.Error())
	}
	return streaks, nil
}

func scanStreak(row scanner) (*entity.HabitStreak, error) {
	var streak entity.HabitStreak
	var milestones []byte
	err := row.Scan(
		&streak.HabitID,
		&streak.UserID,
		&streak.CurrentStreak,
		&streak.BestStreak,
		&streak.LastCompletionDate,
		&streak.StreakStartDate,
		&streak.FreezesAvailable,
		&streak.FreezesUsed,
		&milestones,
	)
	if err != nil {
		return nil, err
	}
	streak.Milestones = make([]entity.Milestone, 0)
	if len(milestones) > 0 {
		if err = sonic.Unmarshal(milestones, &streak.Milestones); err != nil {
			return nil, errors.New("decoding milestones error: " + err.Error())
		}
	}
	return &streak, nil
}
