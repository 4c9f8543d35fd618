package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"medsite/internal/domain"
	"medsite/internal/ports/output"
	"medsite/pkg/multilingual"
)

const (
	upsertSnapshotSQL = `
INSERT INTO content_snapshots (resource, payload, fetched_at)
VALUES ($1, $2, $3)
ON CONFLICT (resource) DO UPDATE
SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at`

	selectSnapshotSQL = `
SELECT resource, payload, fetched_at
FROM content_snapshots
WHERE resource = $1`
)

// DBTX is the subset of pgxpool.Pool used by the repository.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ output.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository implements output.SnapshotRepository on PostgreSQL.
type SnapshotRepository struct {
	db DBTX
}

func NewSnapshotRepository(db DBTX) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot output.Snapshot) error {
	payload, err := encodePayload(snapshot.Records)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snapshot.Resource, err)
	}
	fetchedAt := timeToPgtypeTimestamptz(snapshot.FetchedAt)
	if _, err := r.db.Exec(ctx, upsertSnapshotSQL, snapshot.Resource, payload, fetchedAt); err != nil {
		return fmt.Errorf("save snapshot %s: %w", snapshot.Resource, err)
	}
	return nil
}

func (r *SnapshotRepository) Load(ctx context.Context, resource string) (*output.Snapshot, error) {
	var (
		name      string
		payload   []byte
		fetchedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectSnapshotSQL, resource).Scan(&name, &payload, &fetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("load snapshot %s: %w", resource, domain.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", resource, err)
	}
	records, err := decodePayload(payload)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", resource, err)
	}
	return &output.Snapshot{
		Resource:  name,
		Records:   records,
		FetchedAt: pgtypeTimestamptzToTime(fetchedAt),
	}, nil
}

// encodePayload never stores JSON null, so a saved empty listing reads back
// as an empty slice.
func encodePayload(records []multilingual.Record) ([]byte, error) {
	if records == nil {
		records = []multilingual.Record{}
	}
	return json.Marshal(records)
}

func decodePayload(payload []byte) ([]multilingual.Record, error) {
	records := []multilingual.Record{}
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
