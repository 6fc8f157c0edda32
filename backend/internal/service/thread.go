package service

import (
	"fmt"

	"github.com/oremod/oremod/shared/domain"
	internal_errors "github.com/oremod/oremod/shared/errors"
)

// ThreadStorage is the single capability the orchestrator consumes: one
// aggregated query per batch.
type ThreadStorage interface {
	GetThreads(ids []domain.ThreadId) (map[domain.ThreadId]domain.Thread, error)
}

type Thread struct {
	storage ThreadStorage
}

func NewThread(storage ThreadStorage) *Thread {
	return &Thread{storage}
}

// GetMany returns snapshots for the requested thread ids, keyed by id.
// Input ids are deduplicated before querying; an empty input returns an
// empty map without touching storage. Ids with no matching thread are
// absent from the result, which is not an error: callers diff the returned
// key set against their request when they need to detect missing entries.
func (t *Thread) GetMany(ids []domain.ThreadId) (map[domain.ThreadId]domain.Thread, error) {
	ids = domain.DedupIds(ids)
	if len(ids) == 0 {
		return map[domain.ThreadId]domain.Thread{}, nil
	}
	return t.storage.GetThreads(ids)
}

// Get returns a single snapshot, translating absence into a 404 for the
// single-thread endpoint.
func (t *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	threads, err := t.GetMany([]domain.ThreadId{id})
	if err != nil {
		return domain.Thread{}, err
	}
	thread, ok := threads[id]
	if !ok {
		return domain.Thread{}, internal_errors.NotFound(fmt.Sprintf("Thread %d not found", id))
	}
	return thread, nil
}
