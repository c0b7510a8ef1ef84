package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/basetracker/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_store.go -package=mocks

// SnapshotStore keeps whole-collection snapshots keyed by identity.
// Missing records load as empty collections (or a nil user), never as errors.
type SnapshotStore interface {
	// Loads the habit collection stored under key
	LoadHabits(ctx context.Context, key string) ([]entity.Habit, error)
	// Replaces the habit collection stored under key
	SaveHabits(ctx context.Context, key string, habits []entity.Habit) error
	// Loads the task collection stored under key
	LoadTasks(ctx context.Context, key string) ([]entity.Task, error)
	// Replaces the task collection stored under key
	SaveTasks(ctx context.Context, key string, tasks []entity.Task) error
	// SaveSnapshot writes habits and tasks for key together: either both land or neither does.
	SaveSnapshot(ctx context.Context, key string, habits []entity.Habit, tasks []entity.Task) error
	// Returns the identity restored on startup, nil when nobody is signed in
	LoadCurrentUser(ctx context.Context) (*entity.User, error)
	SaveCurrentUser(ctx context.Context, user *entity.User) error
	// Removes the current identity record. Stored collections stay untouched
	ClearCurrentUser(ctx context.Context) error
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

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}
