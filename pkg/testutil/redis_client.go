package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/moonticket/backend/pkg/xredis"
)

// MockRedisClient keeps values in memory unless a function is overridden.
// Expirations are ignored.
type MockRedisClient struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetExFunc  func(ctx context.Context, key, value string, expiration time.Duration) error
	GetDelFunc func(ctx context.Context, key string) (string, error)

	mu   sync.Mutex
	data map[string]string
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return "", xredis.ErrNotFound
	}

	return v, nil
}

func (m *MockRedisClient) SetEx(ctx context.Context, key, value string, expiration time.Duration) error {
	if m.SetExFunc != nil {
		return m.SetExFunc(ctx, key, value, expiration)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[key] = value
	return nil
}

func (m *MockRedisClient) GetDel(ctx context.Context, key string) (string, error) {
	if m.GetDelFunc != nil {
		return m.GetDelFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return "", xredis.ErrNotFound
	}

	delete(m.data, key)
	return v, nil
}
