package repository

import (
	"context"
	"fmt"

	errorvalues "github.com/limbo/basetracker/internal/error_values"
	"github.com/limbo/basetracker/pkg/cleanup"
)

const (
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type StoreCfg struct {
	Driver   string
	BoltPath string
	Postgres PGCfg
	Redis    RedisCfg
}

type closer interface {
	Close() error
}

// Open builds the store selected by cfg.Driver and registers a cleanup job closing it.
func Open(ctx context.Context, cfg *StoreCfg) (SnapshotStore, error) {
	var (
		store SnapshotStore
		err   error
	)
	switch cfg.Driver {
	case DriverBolt, "":
		store, err = NewBoltStore(cfg.BoltPath)
	case DriverPostgres:
		store, err = NewPostgresStore(ctx, &cfg.Postgres)
	case DriverRedis:
		store, err = NewRedisStore(ctx, &cfg.Redis)
	case DriverMemory:
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if c, ok := store.(closer); ok {
		cleanup.Register(&cleanup.Job{
			Name: "closing " + cfg.Driver + " store",
			F:    c.Close,
		})
	}
	return store, nil
}
