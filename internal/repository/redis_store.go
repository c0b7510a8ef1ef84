package repository

import (
	"context"
	"errors"
	"time"

	"github.com/limbo/basetracker/pkg/entity"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "basetracker:"

// RedisStore keeps each snapshot as a plain string value with no expiry.
type RedisStore struct {
	client redis.Cmdable
	close  func() error
}

func NewRedisStore(ctx context.Context, cfg *RedisCfg) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, errors.New("error while pinging redis: " + err.Error())
	}
	return &RedisStore{
		client: client,
		close:  client.Close,
	}, nil
}

func NewRedisStoreWithClient(client redis.Cmdable) *RedisStore {
	return &RedisStore{
		client: client,
		close:  func() error { return nil },
	}
}

func habitsKey(key string) string {
	return keyPrefix + "habits:" + key
}

func tasksKey(key string) string {
	return keyPrefix + "tasks:" + key
}

func currentUserRedisKey() string {
	return keyPrefix + "current_user"
}

func (rs *RedisStore) get(ctx context.Context, key string) ([]byte, error) {
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.New("redis get " + key + " error: " + err.Error())
	}
	return data, nil
}

func (rs *RedisStore) set(ctx context.Context, key string, data []byte) error {
	if err := rs.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.New("redis set " + key + " error: " + err.Error())
	}
	return nil
}

func (rs *RedisStore) LoadHabits(ctx context.Context, key string) ([]entity.Habit, error) {
	data, err := rs.get(ctx, habitsKey(key))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []entity.Habit{}, nil
	}
	return decodeHabits(data)
}

func (rs *RedisStore) SaveHabits(ctx context.Context, key string, habits []entity.Habit) error {
	data, err := encodeHabits(habits)
	if err != nil {
		return err
	}
	return rs.set(ctx, habitsKey(key), data)
}

func (rs *RedisStore) LoadTasks(ctx context.Context, key string) ([]entity.Task, error) {
	data, err := rs.get(ctx, tasksKey(key))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []entity.Task{}, nil
	}
	return decodeTasks(data)
}

func (rs *RedisStore) SaveTasks(ctx context.Context, key string, tasks []entity.Task) error {
	data, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	return rs.set(ctx, tasksKey(key), data)
}

// SaveSnapshot writes both documents in one MULTI/EXEC block.
func (rs *RedisStore) SaveSnapshot(ctx context.Context, key string, habits []entity.Habit, tasks []entity.Task) error {
	habitsDoc, err := encodeHabits(habits)
	if err != nil {
		return err
	}
	tasksDoc, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	_, err = rs.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, habitsKey(key), habitsDoc, 0)
		pipe.Set(ctx, tasksKey(key), tasksDoc, 0)
		return nil
	})
	if err != nil {
		return errors.New("redis snapshot transaction error: " + err.Error())
	}
	return nil
}

func (rs *RedisStore) LoadCurrentUser(ctx context.Context) (*entity.User, error) {
	data, err := rs.get(ctx, currentUserRedisKey())
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return decodeUser(data)
}

func (rs *RedisStore) SaveCurrentUser(ctx context.Context, user *entity.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	return rs.set(ctx, currentUserRedisKey(), data)
}

func (rs *RedisStore) ClearCurrentUser(ctx context.Context) error {
	if err := rs.client.Del(ctx, currentUserRedisKey()).Err(); err != nil {
		return errors.New("redis del current user error: " + err.Error())
	}
	return nil
}

func (rs *RedisStore) Close() error {
	return rs.close()
}
