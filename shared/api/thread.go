package api

import (
	"github.com/oremod/oremod/shared/domain"
)

// Request DTOs

// ThreadsBatchRequest is the POST body for bulk thread retrieval. An empty
// id list is valid and yields an empty result.
type ThreadsBatchRequest struct {
	Ids []domain.ThreadId `json:"ids" validate:"omitempty,dive,gt=0"`
}

// Response DTOs

// ThreadResponse wraps a single thread snapshot
type ThreadResponse struct {
	domain.Thread
}

// ThreadsResponse maps thread id to snapshot. Requested ids with no
// matching thread are absent from the map; callers diff the key set
// against their request if they need to detect missing entries.
type ThreadsResponse struct {
	Threads map[domain.ThreadId]domain.Thread `json:"threads"`
}
