package service

import (
	"errors"
	"net/http"
	"sync" // Used for tracking calls in mocks safely in parallel tests
	"testing"

	"github.com/oremod/oremod/shared/domain"
	internal_errors "github.com/oremod/oremod/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	getThreadsFunc func(ids []domain.ThreadId) (map[domain.ThreadId]domain.Thread, error)

	mu         sync.Mutex
	callCount  int
	lastIdsArg []domain.ThreadId
}

func (m *MockThreadStorage) GetThreads(ids []domain.ThreadId) (map[domain.ThreadId]domain.Thread, error) {
	m.mu.Lock()
	m.callCount++
	m.lastIdsArg = append([]domain.ThreadId(nil), ids...)
	m.mu.Unlock()

	if m.getThreadsFunc != nil {
		return m.getThreadsFunc(ids)
	}
	// Default success returns one basic thread per requested id
	out := make(map[domain.ThreadId]domain.Thread, len(ids))
	for _, id := range ids {
		out[id] = domain.Thread{Id: id, Type: domain.ThreadTypeDirectMessage, Members: []domain.UserId{}, Messages: []domain.Message{}}
	}
	return out, nil
}

func (m *MockThreadStorage) calls() (int, []domain.ThreadId) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount, m.lastIdsArg
}

// --- Tests ---

func TestThreadGetMany(t *testing.T) {
	t.Run("DeduplicatesInputIds", func(t *testing.T) {
		mock := &MockThreadStorage{}
		svc := NewThread(mock)

		result, err := svc.GetMany([]domain.ThreadId{3, 1, 3, 2, 1})
		require.NoError(t, err)

		count, ids := mock.calls()
		assert.Equal(t, 1, count, "exactly one aggregated query per invocation")
		assert.Equal(t, []domain.ThreadId{3, 1, 2}, ids, "repeated ids must not reach the query")
		assert.Len(t, result, 3)
	})

	t.Run("EmptyInputSkipsStorage", func(t *testing.T) {
		mock := &MockThreadStorage{}
		svc := NewThread(mock)

		result, err := svc.GetMany(nil)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)

		count, _ := mock.calls()
		assert.Equal(t, 0, count, "empty input must not issue a query")
	})

	t.Run("StorageErrorSurfacedUnmodified", func(t *testing.T) {
		storageErr := errors.New("connection lost")
		mock := &MockThreadStorage{
			getThreadsFunc: func([]domain.ThreadId) (map[domain.ThreadId]domain.Thread, error) {
				return nil, storageErr
			},
		}
		svc := NewThread(mock)

		_, err := svc.GetMany([]domain.ThreadId{1})
		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("MissingIdsAbsent", func(t *testing.T) {
		mock := &MockThreadStorage{
			getThreadsFunc: func(ids []domain.ThreadId) (map[domain.ThreadId]domain.Thread, error) {
				// Only id 1 exists in storage
				return map[domain.ThreadId]domain.Thread{1: {Id: 1}}, nil
			},
		}
		svc := NewThread(mock)

		result, err := svc.GetMany([]domain.ThreadId{1, 2})
		require.NoError(t, err)
		require.Len(t, result, 1)
		_, ok := result[2]
		assert.False(t, ok, "unknown ids are absent, not an error")
	})
}

func TestThreadGet(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mock := &MockThreadStorage{}
		svc := NewThread(mock)

		thread, err := svc.Get(10)
		require.NoError(t, err)
		assert.Equal(t, domain.ThreadId(10), thread.Id)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock := &MockThreadStorage{
			getThreadsFunc: func([]domain.ThreadId) (map[domain.ThreadId]domain.Thread, error) {
				return map[domain.ThreadId]domain.Thread{}, nil
			},
		}
		svc := NewThread(mock)

		_, err := svc.Get(10)
		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})
}
