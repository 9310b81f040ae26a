package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/models"
)

type safeNotificationStore struct {
	mu       sync.Mutex
	failures int
	messages []string
}

func (m *safeNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		return assert.AnError
	}
	m.messages = append(m.messages, n.Message)
	return nil
}

func (m *safeNotificationStore) List(ctx context.Context, limit int) ([]models.Notification, error) {
	return nil, nil
}

func (m *safeNotificationStore) snapshot() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

func TestAsyncNotifierDeliversInBackground(t *testing.T) {
	store := &safeNotificationStore{}
	notifier := NewAsyncNotifier(NewNotificationService(store, zap.NewNop()), zap.NewNop())
	notifier.Start(context.Background())
	defer notifier.Stop()

	notifier.Notify(context.Background(), "Work order ACK-1 submitted")

	require.Eventually(t, func() bool {
		return len(store.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "Work order ACK-1 submitted", store.snapshot()[0])
}

func TestAsyncNotifierRetriesFailedWrites(t *testing.T) {
	store := &safeNotificationStore{failures: 1}
	notifier := NewAsyncNotifier(NewNotificationService(store, zap.NewNop()), zap.NewNop())
	notifier.Start(context.Background())
	defer notifier.Stop()

	notifier.Notify(context.Background(), "Logistics request LOG-9 submitted")

	require.Eventually(t, func() bool {
		return len(store.snapshot()) == 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestAsyncNotifierDropsWhenStopped(t *testing.T) {
	store := &safeNotificationStore{}
	notifier := NewAsyncNotifier(NewNotificationService(store, zap.NewNop()), zap.NewNop())

	// Never started: enqueue fails and is swallowed.
	notifier.Notify(context.Background(), "dropped")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, store.snapshot())
}
