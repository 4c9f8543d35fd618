package output

import (
	"context"
	"time"

	"medsite/internal/domain/entities"
	"medsite/internal/domain/language"
	"medsite/pkg/multilingual"
)

// ContentSource fetches raw multilingual records from the REST backend.
type ContentSource interface {
	Fetch(ctx context.Context, resource entities.Resource, lang language.Code) ([]multilingual.Record, error)
}

// Snapshot is the last good payload fetched for a resource.
type Snapshot struct {
	Resource  string
	Records   []multilingual.Record
	FetchedAt time.Time
}

type SnapshotRepository interface {
	Save(ctx context.Context, snapshot Snapshot) error
	// Load returns domain.ErrSnapshotNotFound when nothing is stored.
	Load(ctx context.Context, resource string) (*Snapshot, error)
}

// FallbackData serves records compiled into the binary.
type FallbackData interface {
	Records(resource string) ([]multilingual.Record, bool)
}
