package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"medsite/internal/domain"
	"medsite/internal/domain/entities"
	"medsite/internal/domain/language"
	"medsite/internal/ports/input"
	"medsite/internal/ports/output"
	"medsite/pkg/multilingual"
)

var _ input.ContentUseCase = (*ContentService)(nil)

// ContentService fetches backend content and localizes it. When the backend
// fails it serves the stored snapshot, then the compiled-in data.
type ContentService struct {
	source    output.ContentSource
	snapshots output.SnapshotRepository
	fallback  output.FallbackData
	messages  output.T
	logger    *slog.Logger
	now       func() time.Time
}

// NewContentService wires the service. snapshots and fallback may be nil.
func NewContentService(
	source output.ContentSource,
	snapshots output.SnapshotRepository,
	fallback output.FallbackData,
	messages output.T,
	logger *slog.Logger,
) *ContentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentService{
		source:    source,
		snapshots: snapshots,
		fallback:  fallback,
		messages:  messages,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ContentService) List(ctx context.Context, q input.ListQuery) (*input.Listing, error) {
	res, ok := entities.LookupResource(q.Resource)
	if !ok {
		return nil, fmt.Errorf("list %q: %w", q.Resource, domain.ErrUnknownResource)
	}

	records, origin, err := s.load(ctx, res, q.Language)
	if err != nil {
		return nil, err
	}

	if res.Kind == entities.KindEvents {
		records = s.filterEvents(records, q.Status)
	}

	return &input.Listing{
		Language: q.Language,
		Origin:   origin,
		Items:    LocalizeItems(records, res.Kind, q.Language),
	}, nil
}

func (s *ContentService) Get(ctx context.Context, resource, id string, lang language.Code) (multilingual.Record, input.Origin, error) {
	listing, err := s.List(ctx, input.ListQuery{Resource: resource, Language: lang})
	if err != nil {
		return nil, "", err
	}
	for _, item := range listing.Items {
		if recordID(item) == id || item.String("slug") == id {
			return item, listing.Origin, nil
		}
	}
	return nil, "", fmt.Errorf("get %s %q: %w", resource, id, domain.ErrItemNotFound)
}

func (s *ContentService) Messages(lang language.Code, keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out[k] = s.messages.T(string(lang), k, nil)
	}
	return out
}

// load walks upstream, snapshot, static in that order.
func (s *ContentService) load(ctx context.Context, res entities.Resource, lang language.Code) ([]multilingual.Record, input.Origin, error) {
	records, upstreamErr := s.source.Fetch(ctx, res, lang)
	if upstreamErr == nil {
		s.saveSnapshot(ctx, res.Name, records)
		return records, input.OriginUpstream, nil
	}
	s.logger.WarnContext(ctx, "content: upstream fetch failed",
		slog.String("resource", res.Name),
		slog.String("lang", string(lang)),
		slog.Any("error", upstreamErr))

	if s.snapshots != nil {
		snap, err := s.snapshots.Load(ctx, res.Name)
		switch {
		case err == nil:
			return snap.Records, input.OriginSnapshot, nil
		case !errors.Is(err, domain.ErrSnapshotNotFound):
			s.logger.WarnContext(ctx, "content: snapshot load failed",
				slog.String("resource", res.Name), slog.Any("error", err))
		}
	}

	if s.fallback != nil {
		if records, ok := s.fallback.Records(res.Name); ok {
			return records, input.OriginStatic, nil
		}
	}

	return nil, "", fmt.Errorf("list %s: %w", res.Name, errors.Join(domain.ErrNoContent, upstreamErr))
}

// saveSnapshot stores the raw payload. Snapshots are kept per resource, not
// per language: records carry their suffixed variants.
func (s *ContentService) saveSnapshot(ctx context.Context, resource string, records []multilingual.Record) {
	if s.snapshots == nil {
		return
	}
	err := s.snapshots.Save(ctx, output.Snapshot{
		Resource:  resource,
		Records:   records,
		FetchedAt: s.now(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "content: snapshot save failed",
			slog.String("resource", resource), slog.Any("error", err))
	}
}

func (s *ContentService) filterEvents(records []multilingual.Record, status string) []multilingual.Record {
	want := entities.EventStatus(strings.ToLower(strings.TrimSpace(status)))
	if want != entities.StatusUpcoming && want != entities.StatusPast {
		return records
	}
	now := s.now()
	out := make([]multilingual.Record, 0, len(records))
	for _, r := range records {
		if entities.EventFromRecord(r).StatusAt(now) == want {
			out = append(out, r)
		}
	}
	return out
}

// recordID renders the "id" key the way it appears in URLs.
func recordID(r multilingual.Record) string {
	switch v := r["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case interface{ String() string }:
		return v.String()
	}
	return ""
}
