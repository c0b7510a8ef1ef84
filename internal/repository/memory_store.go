package repository

import (
	"context"
	"sync"

	"github.com/limbo/basetracker/pkg/entity"
)

// MemoryStore keeps encoded documents in process memory. Documents go through the
// same codec as the persistent drivers so stored snapshots never alias live state.
type MemoryStore struct {
	mu      sync.RWMutex
	habits  map[string][]byte
	tasks   map[string][]byte
	current []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		habits: make(map[string][]byte),
		tasks:  make(map[string][]byte),
	}
}

func (ms *MemoryStore) LoadHabits(_ context.Context, key string) ([]entity.Habit, error) {
	ms.mu.RLock()
	data := ms.habits[key]
	ms.mu.RUnlock()
	if data == nil {
		return []entity.Habit{}, nil
	}
	return decodeHabits(data)
}

func (ms *MemoryStore) SaveHabits(_ context.Context, key string, habits []entity.Habit) error {
	data, err := encodeHabits(habits)
	if err != nil {
		return err
	}
	ms.mu.Lock()
	ms.habits[key] = data
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) LoadTasks(_ context.Context, key string) ([]entity.Task, error) {
	ms.mu.RLock()
	data := ms.tasks[key]
	ms.mu.RUnlock()
	if data == nil {
		return []entity.Task{}, nil
	}
	return decodeTasks(data)
}

func (ms *MemoryStore) SaveTasks(_ context.Context, key string, tasks []entity.Task) error {
	data, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	ms.mu.Lock()
	ms.tasks[key] = data
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) SaveSnapshot(_ context.Context, key string, habits []entity.Habit, tasks []entity.Task) error {
	habitsDoc, err := encodeHabits(habits)
	if err != nil {
		return err
	}
	tasksDoc, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	ms.mu.Lock()
	ms.habits[key] = habitsDoc
	ms.tasks[key] = tasksDoc
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) LoadCurrentUser(_ context.Context) (*entity.User, error) {
	ms.mu.RLock()
	data := ms.current
	ms.mu.RUnlock()
	if data == nil {
		return nil, nil
	}
	return decodeUser(data)
}

func (ms *MemoryStore) SaveCurrentUser(_ context.Context, user *entity.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	ms.mu.Lock()
	ms.current = data
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) ClearCurrentUser(_ context.Context) error {
	ms.mu.Lock()
	ms.current = nil
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) Close() error {
	return nil
}
