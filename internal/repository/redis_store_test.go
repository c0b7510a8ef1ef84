package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redismock/v9"
	errorvalues "github.com/limbo/basetracker/internal/error_values"
	"github.com/limbo/basetracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisHabits(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)
	ctx := context.Background()
	key := "basetracker:habits:" + testUser.StorageKey()
	habits := sampleHabits()
	document, err := sonic.Marshal(habits)
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		Error        error
		Expected     int
		MockPrepFunc func()
	}{
		{
			Desc:     "success",
			Expected: 2,
			MockPrepFunc: func() {
				mock.ExpectGet(key).SetVal(string(document))
			},
		},
		{
			Desc:     "missing key",
			Expected: 0,
			MockPrepFunc: func() {
				mock.ExpectGet(key).RedisNil()
			},
		},
		{
			Desc:  "malformed",
			Error: errorvalues.ErrMalformedRecord,
			MockPrepFunc: func() {
				mock.ExpectGet(key).SetVal(`{"habits":`)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := store.LoadHabits(ctx, testUser.StorageKey())
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Len(t, result, tc.Expected)
		})
	}

	t.Run("connection error", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(errors.New("connection refused"))
		_, err := store.LoadHabits(ctx, testUser.StorageKey())
		assert.Error(t, err)
	})
	t.Run("save", func(t *testing.T) {
		mock.ExpectSet(key, document, 0).SetVal("OK")
		assert.NoError(t, store.SaveHabits(ctx, testUser.StorageKey(), habits))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTasks(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)
	ctx := context.Background()
	key := "basetracker:tasks:" + testUser.StorageKey()
	tasks := sampleTasks()
	document, err := sonic.Marshal(tasks)
	require.NoError(t, err)

	mock.ExpectSet(key, document, 0).SetVal("OK")
	require.NoError(t, store.SaveTasks(ctx, testUser.StorageKey(), tasks))

	mock.ExpectGet(key).SetVal(string(document))
	loaded, err := store.LoadTasks(ctx, testUser.StorageKey())
	require.NoError(t, err)
	assert.Equal(t, tasks, loaded)

	mock.ExpectSet(key, document, 0).SetErr(errors.New("READONLY"))
	assert.Error(t, store.SaveTasks(ctx, testUser.StorageKey(), tasks))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSaveSnapshot(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)
	ctx := context.Background()
	habits := sampleHabits()
	tasks := sampleTasks()
	habitsDoc, err := sonic.Marshal(habits)
	require.NoError(t, err)
	tasksDoc, err := sonic.Marshal(tasks)
	require.NoError(t, err)
	habitsKey := "basetracker:habits:" + testUser.StorageKey()
	tasksKey := "basetracker:tasks:" + testUser.StorageKey()

	mock.ExpectTxPipeline()
	mock.ExpectSet(habitsKey, habitsDoc, 0).SetVal("OK")
	mock.ExpectSet(tasksKey, tasksDoc, 0).SetVal("OK")
	mock.ExpectTxPipelineExec()
	require.NoError(t, store.SaveSnapshot(ctx, testUser.StorageKey(), habits, tasks))

	mock.ExpectTxPipeline()
	mock.ExpectSet(habitsKey, habitsDoc, 0).SetVal("OK")
	mock.ExpectSet(tasksKey, tasksDoc, 0).SetErr(errors.New("READONLY"))
	mock.ExpectTxPipelineExec()
	assert.Error(t, store.SaveSnapshot(ctx, testUser.StorageKey(), habits, tasks))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCurrentUser(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)
	ctx := context.Background()
	key := "basetracker:current_user"
	document, err := sonic.Marshal(testUser)
	require.NoError(t, err)

	mock.ExpectSet(key, document, 0).SetVal("OK")
	require.NoError(t, store.SaveCurrentUser(ctx, testUser))

	mock.ExpectGet(key).SetVal(string(document))
	user, err := store.LoadCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, testUser, user)

	mock.ExpectDel(key).SetVal(1)
	require.NoError(t, store.ClearCurrentUser(ctx))

	mock.ExpectGet(key).RedisNil()
	user, err = store.LoadCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
