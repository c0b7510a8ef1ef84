package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/basetracker/pkg/entity"
)

const (
	kindHabits = "habits"
	kindTasks  = "tasks"
)

type PostgresStore struct {
	conn  PgConnection
	close func()
}

func NewPostgresStore(ctx context.Context, cfg DBConfig) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating connection for postgres store error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("error while pinging connection for postgres store: " + err.Error())
	}
	return &PostgresStore{
		conn:  pool,
		close: pool.Close,
	}, nil
}

func NewPostgresStoreWithConn(conn PgConnection) (*PostgresStore, error) {
	if err := conn.Ping(context.Background()); err != nil {
		return nil, errors.New("error while pinging connection for postgres store: " + err.Error())
	}
	return &PostgresStore{
		conn:  conn,
		close: func() {},
	}, nil
}

func (ps *PostgresStore) loadDocument(ctx context.Context, key, kind string) ([]byte, error) {
	var document []byte
	row := ps.conn.QueryRow(ctx, `SELECT document FROM snapshots WHERE owner_key = $1 AND kind = $2;`, key, kind)
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting " + kind + " snapshot error: " + err.Error())
	}
	return document, nil
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func saveDocument(ctx context.Context, conn execer, key, kind string, document []byte) error {
	_, err := conn.Exec(ctx, `INSERT INTO snapshots (owner_key, kind, document) VALUES ($1, $2, $3)
		ON CONFLICT (owner_key, kind) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW();`,
		key, kind, document,
	)
	if err != nil {
		return errors.New("saving " + kind + " snapshot error: " + err.Error())
	}
	return nil
}

func (ps *PostgresStore) LoadHabits(ctx context.Context, key string) ([]entity.Habit, error) {
	document, err := ps.loadDocument(ctx, key, kindHabits)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return []entity.Habit{}, nil
	}
	return decodeHabits(document)
}

func (ps *PostgresStore) SaveHabits(ctx context.Context, key string, habits []entity.Habit) error {
	document, err := encodeHabits(habits)
	if err != nil {
		return err
	}
	return saveDocument(ctx, ps.conn, key, kindHabits, document)
}

func (ps *PostgresStore) LoadTasks(ctx context.Context, key string) ([]entity.Task, error) {
	document, err := ps.loadDocument(ctx, key, kindTasks)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return []entity.Task{}, nil
	}
	return decodeTasks(document)
}

func (ps *PostgresStore) SaveTasks(ctx context.Context, key string, tasks []entity.Task) error {
	document, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	return saveDocument(ctx, ps.conn, key, kindTasks, document)
}

// SaveSnapshot upserts both documents inside one transaction.
func (ps *PostgresStore) SaveSnapshot(ctx context.Context, key string, habits []entity.Habit, tasks []entity.Task) error {
	habitsDoc, err := encodeHabits(habits)
	if err != nil {
		return err
	}
	tasksDoc, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	tx, err := ps.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning snapshot transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	if err = saveDocument(ctx, tx, key, kindHabits, habitsDoc); err != nil {
		return err
	}
	if err = saveDocument(ctx, tx, key, kindTasks, tasksDoc); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing snapshot transaction error: " + err.Error())
	}
	return nil
}

func (ps *PostgresStore) LoadCurrentUser(ctx context.Context) (*entity.User, error) {
	var document []byte
	row := ps.conn.QueryRow(ctx, `SELECT document FROM current_identity WHERE id = 1;`)
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting current identity error: " + err.Error())
	}
	return decodeUser(document)
}

func (ps *PostgresStore) SaveCurrentUser(ctx context.Context, user *entity.User) error {
	document, err := encodeUser(user)
	if err != nil {
		return err
	}
	_, err = ps.conn.Exec(ctx, `INSERT INTO current_identity (id, document) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW();`, document)
	if err != nil {
		return errors.New("saving current identity error: " + err.Error())
	}
	return nil
}

func (ps *PostgresStore) ClearCurrentUser(ctx context.Context) error {
	_, err := ps.conn.Exec(ctx, `DELETE FROM current_identity WHERE id = 1;`)
	if err != nil {
		return errors.New("deleting current identity error: " + err.Error())
	}
	return nil
}

func (ps *PostgresStore) Close() error {
	ps.close()
	return nil
}
