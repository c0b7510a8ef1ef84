package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/limbo/basetracker/pkg/entity"
	bolt "go.etcd.io/bbolt"
)

var (
	habitsBucket  = []byte("habits")
	tasksBucket   = []byte("tasks")
	sessionBucket = []byte("session")

	currentUserKey = []byte("current_user")
)

// BoltStore is the default local store: one bbolt file with a bucket per record kind.
type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.New("creating bolt directory error: " + err.Error())
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.New("opening bolt file error: " + err.Error())
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{habitsBucket, tasksBucket, sessionBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, errors.New("creating bolt buckets error: " + err.Error())
	}
	return &BoltStore{db: db}, nil
}

func (bs *BoltStore) get(bucket, key []byte) ([]byte, error) {
	var data []byte
	err := bs.db.View(func(tx *bolt.Tx) error {
		// values are only valid inside the transaction
		if v := tx.Bucket(bucket).Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	return data, err
}

func (bs *BoltStore) put(bucket, key, value []byte) error {
	return bs.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, value)
	})
}

func (bs *BoltStore) LoadHabits(_ context.Context, key string) ([]entity.Habit, error) {
	data, err := bs.get(habitsBucket, []byte(key))
	if err != nil {
		return nil, errors.New("reading habits error: " + err.Error())
	}
	if data == nil {
		return []entity.Habit{}, nil
	}
	return decodeHabits(data)
}

func (bs *BoltStore) SaveHabits(_ context.Context, key string, habits []entity.Habit) error {
	data, err := encodeHabits(habits)
	if err != nil {
		return err
	}
	if err = bs.put(habitsBucket, []byte(key), data); err != nil {
		return errors.New("writing habits error: " + err.Error())
	}
	return nil
}

func (bs *BoltStore) LoadTasks(_ context.Context, key string) ([]entity.Task, error) {
	data, err := bs.get(tasksBucket, []byte(key))
	if err != nil {
		return nil, errors.New("reading tasks error: " + err.Error())
	}
	if data == nil {
		return []entity.Task{}, nil
	}
	return decodeTasks(data)
}

func (bs *BoltStore) SaveTasks(_ context.Context, key string, tasks []entity.Task) error {
	data, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	if err = bs.put(tasksBucket, []byte(key), data); err != nil {
		return errors.New("writing tasks error: " + err.Error())
	}
	return nil
}

func (bs *BoltStore) SaveSnapshot(_ context.Context, key string, habits []entity.Habit, tasks []entity.Task) error {
	habitsDoc, err := encodeHabits(habits)
	if err != nil {
		return err
	}
	tasksDoc, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	err = bs.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(habitsBucket).Put([]byte(key), habitsDoc); err != nil {
			return err
		}
		return tx.Bucket(tasksBucket).Put([]byte(key), tasksDoc)
	})
	if err != nil {
		return errors.New("writing snapshot error: " + err.Error())
	}
	return nil
}

func (bs *BoltStore) LoadCurrentUser(_ context.Context) (*entity.User, error) {
	data, err := bs.get(sessionBucket, currentUserKey)
	if err != nil {
		return nil, errors.New("reading current user error: " + err.Error())
	}
	if data == nil {
		return nil, nil
	}
	return decodeUser(data)
}

func (bs *BoltStore) SaveCurrentUser(_ context.Context, user *entity.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	if err = bs.put(sessionBucket, currentUserKey, data); err != nil {
		return errors.New("writing current user error: " + err.Error())
	}
	return nil
}

func (bs *BoltStore) ClearCurrentUser(_ context.Context) error {
	err := bs.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete(currentUserKey)
	})
	if err != nil {
		return errors.New("deleting current user error: " + err.Error())
	}
	return nil
}

func (bs *BoltStore) Close() error {
	return bs.db.Close()
}
