package kvstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRedisCommander struct {
	mock.Mock
}

func (m *mockRedisCommander) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisCommander) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockRedisCommander) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return args.Get(0).(*redis.IntCmd)
}

func (m *mockRedisCommander) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	args := m.Called(ctx, cursor, match, count)
	return args.Get(0).(*redis.ScanCmd)
}

func (m *mockRedisCommander) Close() error {
	return m.Called().Error(0)
}

func TestRedisStoreGet(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		err           error
		expectedValue []byte
		expectedError error
	}{
		{name: "hit", value: "payload", expectedValue: []byte("payload")},
		{name: "redis nil is not found", err: redis.Nil, expectedError: ErrNotFound},
		{name: "connection error", err: errors.New("connection refused"), expectedError: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockRedisCommander)
			client.On("Get", mock.Anything, "key").Return(tt.value, tt.err).Once()

			store := NewRedisStore(client)
			value, err := store.Get(context.Background(), "key")

			if tt.expectedError != nil {
				assert.ErrorContains(t, err, tt.expectedError.Error())
				assert.Nil(t, value)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedValue, value)
			}
			client.AssertExpectations(t)
		})
	}
}

func TestRedisStoreSetAndDelete(t *testing.T) {
	client := new(mockRedisCommander)
	store := NewRedisStore(client)
	ctx := context.Background()

	client.On("Set", ctx, "key", []byte("v"), time.Minute).Return(nil).Once()
	client.On("Del", ctx, []string{"key"}).Return(redis.NewIntResult(1, nil)).Once()

	assert.NoError(t, store.Set(ctx, "key", []byte("v"), time.Minute))
	assert.NoError(t, store.Delete(ctx, "key"))
	client.AssertExpectations(t)
}

func TestRedisStoreKeys(t *testing.T) {
	client := new(mockRedisCommander)
	store := NewRedisStore(client)
	ctx := context.Background()

	client.On("Scan", ctx, uint64(0), "lol-app-cache-*", int64(scanCount)).
		Return(redis.NewScanCmdResult([]string{"lol-app-cache-a"}, 42, nil)).Once()
	client.On("Scan", ctx, uint64(42), "lol-app-cache-*", int64(scanCount)).
		Return(redis.NewScanCmdResult([]string{"lol-app-cache-b"}, 0, nil)).Once()

	keys, err := store.Keys(ctx, "lol-app-cache-")
	require.NoError(t, err)
	assert.Equal(t, []string{"lol-app-cache-a", "lol-app-cache-b"}, keys)
	client.AssertExpectations(t)
}

func TestRedisStoreKeysError(t *testing.T) {
	client := new(mockRedisCommander)
	store := NewRedisStore(client)

	client.On("Scan", mock.Anything, uint64(0), "p*", int64(scanCount)).
		Return(redis.NewScanCmdResult(nil, 0, errors.New("scan failed"))).Once()

	keys, err := store.Keys(context.Background(), "p")
	assert.Error(t, err)
	assert.Nil(t, keys)
}
