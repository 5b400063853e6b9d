package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/accountability/internal/error_values"
)

// CooldownsRepository is the Postgres cooldown store. Acquire is a single conditional upsert,
// so concurrent attempts for one (sender, goal) pair serialize on the row lock.
type CooldownsRepository struct {
	conn PgConnection
}

func NewCooldownsRepoWithConn(conn PgConnection) *CooldownsRepository {
	mustPing(conn, "cooldownsRepo")
	return &CooldownsRepository{
		conn: conn,
	}
}

func (cr *CooldownsRepository) Acquire(ctx context.Context, senderID, goalID uuid.UUID, now, until time.Time) (bool, time.Time, error) {
	var stored time.Time
	row := cr.conn.QueryRow(ctx, `INSERT INTO nudge_cooldowns (sender_id, goal_id, cooldown_until) VALUES ($1, $2, $3) ON CONFLICT (sender_id, goal_id) DO UPDATE SET cooldown_until = EXCLUDED.cooldown_until WHERE nudge_cooldowns.cooldown_until <= $4 RETURNING cooldown_until;`,
		senderID, goalID, until, now,
	)
	err := row.Scan(&stored)
	if err == nil {
		return true, stored, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		var pgErr *pgconn.PgError
		// FK violation
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "nudge_cooldowns_goal_id_fkey" {
				return false, time.Time{}, errorvalues.ErrGoalNotFound
			}
			return false, time.Time{}, errorvalues.ErrUserNotFound
		}
		return false, time.Time{}, errors.New("acquiring cooldown error: " + err.Error())
	}
	row = cr.conn.QueryRow(ctx, `SELECT cooldown_until FROM nudge_cooldowns WHERE sender_id = $1 AND goal_id = $2;`, senderID, goalID)
	if err = row.Scan(&stored); err != nil {
		return false, time.Time{}, errors.New("reading active cooldown error: " + err.Error())
	}
	return false, stored, nil
}

func (cr *CooldownsRepository) Release(ctx context.Context, senderID, goalID uuid.UUID, until time.Time) error {
	_, err := cr.conn.Exec(ctx, `DELETE FROM nudge_cooldowns WHERE sender_id = $1 AND goal_id = $2 AND cooldown_until = $3;`, senderID, goalID, until)
	if err != nil {
		return errors.New("releasing cooldown error: " + err.Error())
	}
	return nil
}

func (cr *CooldownsRepository) Get(ctx context.Context, senderID, goalID uuid.UUID, now time.Time) (*time.Time, error) {
	var until time.Time
	row := cr.conn.QueryRow(ctx, `SELECT cooldown_until FROM nudge_cooldowns WHERE sender_id = $1 AND goal_id = $2 AND cooldown_until > $3;`, senderID, goalID, now)
	if err := row.Scan(&until); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting cooldown error: " + err.Error())
	}
	return &until, nil
}

func (cr *CooldownsRepository) ListActive(ctx context.Context, senderID uuid.UUID, now time.Time) (map[uuid.UUID]time.Time, error) {
	rows, err := cr.conn.Query(ctx, `SELECT goal_id, cooldown_until FROM nudge_cooldowns WHERE sender_id = $1 AND cooldown_until > $2;`, senderID, now)
	if err != nil {
		return nil, errors.New("listing cooldowns error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[uuid.UUID]time.Time)
	for rows.Next() {
		var goalID uuid.UUID
		var until time.Time
		if err = rows.Scan(&goalID, &until); err != nil {
			return nil, errors.New("cooldown row parsing error: " + err.Error())
		}
		result[goalID] = until
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected cooldown rows error: " + err.Error())
	}
	return result, nil
}
