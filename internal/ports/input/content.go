package input

import (
	"context"

	"medsite/internal/domain/language"
	"medsite/pkg/multilingual"
)

// Origin tells where a listing came from.
type Origin string

const (
	OriginUpstream Origin = "upstream"
	OriginSnapshot Origin = "snapshot"
	OriginStatic   Origin = "static"
)

// ListQuery selects a localized listing.
type ListQuery struct {
	Resource string
	Language language.Code
	// Status filters events: "upcoming", "past" or "" / "all".
	Status string
}

// Listing is a localized set of records.
type Listing struct {
	Language language.Code
	Origin   Origin
	Items    []multilingual.Record
}

type ContentUseCase interface {
	List(ctx context.Context, q ListQuery) (*Listing, error)
	Get(ctx context.Context, resource, id string, lang language.Code) (multilingual.Record, Origin, error)
	Messages(lang language.Code, keys []string) map[string]string
}
