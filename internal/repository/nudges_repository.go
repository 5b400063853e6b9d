package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/entity"
)

type NudgesRepository struct {
	conn PgConnection
}

func NewNudgesRepoWithConn(conn PgConnection) *NudgesRepository {
	mustPing(conn, "nudgesRepo")
	return &NudgesRepository{
		conn: conn,
	}
}

func (nr *NudgesRepository) Create(ctx context.Context, nudge *entity.Nudge) (uuid.UUID, error) {
	var id uuid.UUID
	row := nr.conn.QueryRow(ctx, `INSERT INTO nudges (sender_id, sender_name, receiver_id, goal_id, goal_description, sent_at, cooldown_until) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		nudge.SenderID,
		nudge.SenderName,
		nudge.ReceiverID,
		nudge.GoalID,
		nudge.GoalDescription,
		nudge.Timestamp,
		nudge.CooldownUntil,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		// FK violation
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "nudges_goal_id_fkey" {
				return uuid.UUID{}, errorvalues.ErrGoalNotFound
			}
			return uuid.UUID{}, errorvalues.ErrUserNotFound
		}
		return uuid.UUID{}, errors.New("creating nudge db error: " + err.Error())
	}
	return id, nil
}

func (nr *NudgesRepository) GetByReceiverID(ctx context.Context, receiverID uuid.UUID, limit, offset int) ([]*entity.Nudge, error) {
	rows, err := nr.conn.Query(ctx, `SELECT id, sender_id, sender_name, receiver_id, goal_id, goal_description, sent_at, cooldown_until, created_at FROM nudges WHERE receiver_id = $1 ORDER BY sent_at DESC LIMIT $2 OFFSET $3;`, receiverID, limit, offset)
	if err != nil {
		return nil, errors.New("getting nudges by receiver error: " + err.Error())
	}
	defer rows.Close()
	nudges := make([]*entity.Nudge, 0)
	for rows.Next() {
		n := entity.Nudge{}
		err = rows.Scan(&n.ID, &n.SenderID, &n.SenderName, &n.ReceiverID, &n.GoalID, &n.GoalDescription, &n.Timestamp, &n.CooldownUntil, &n.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling nudge error: " + err.Error())
		}
		nudges = append(nudges, &n)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning nudges: " + err.Error())
	}
	return nudges, nil
}
