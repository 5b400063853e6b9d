package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/accountability/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Inserts user with the given id unless it is already stored
	Ensure(ctx context.Context, user *entity.User) error
	// Looks up user by uid. Used by authorization middleware and nudge delivery
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Replaces device token used for push notifications. Empty token disables pushes
	UpdatePushToken(ctx context.Context, uid uuid.UUID, token string) error
}

type GoalsRepositoryI interface {
	// Creates goal together with its empty streak. Status fields of goal are stored as given
	Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists goals owned by user. Requires pagination params provided
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Goal, error)
	// Deletes goal with its streak, completions, nudges and cooldowns
	Delete(ctx context.Context, id uuid.UUID) error
}

type StreaksRepositoryI interface {
	GetByHabitID(ctx context.Context, habitID uuid.UUID) (*entity.HabitStreak, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.HabitStreak, error)
}

type ProgressRepositoryI interface {
	// Stores goal state and streak, and appends completion when it is not nil, in one transaction
	Save(ctx context.Context, goal *entity.Goal, streak *entity.HabitStreak, completion *entity.Completion) error
	// Counts non-duplicate completions per goal. Goals without completions are absent
	CountByGoalIDs(ctx context.Context, goalIDs []uuid.UUID) (map[uuid.UUID]int, error)
	// Lists completions of goal, newest first
	GetByGoalID(ctx context.Context, goalID uuid.UUID, limit, offset int) ([]entity.Completion, error)
}

type NudgesRepositoryI interface {
	Create(ctx context.Context, nudge *entity.Nudge) (uuid.UUID, error)
	// Lists nudges received by user, newest first
	GetByReceiverID(ctx context.Context, receiverID uuid.UUID, limit, offset int) ([]*entity.Nudge, error)
}

// CooldownStoreI keeps per (sender, goal) nudge cooldowns. Implementations must make Acquire atomic.
type CooldownStoreI interface {
	// Sets cooldown to until unless an unexpired one exists. On false returns the active cooldown end
	Acquire(ctx context.Context, senderID, goalID uuid.UUID, now, until time.Time) (bool, time.Time, error)
	// Drops cooldown if it still ends at until
	Release(ctx context.Context, senderID, goalID uuid.UUID, until time.Time) error
	// Returns active cooldown end or nil
	Get(ctx context.Context, senderID, goalID uuid.UUID, now time.Time) (*time.Time, error)
	// Lists active cooldowns of sender keyed by goal
	ListActive(ctx context.Context, senderID uuid.UUID, now time.Time) (map[uuid.UUID]time.Time, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
