package domain

import "errors"

// Domain errors.
var (
	ErrUnknownResource     = errors.New("unknown content resource")
	ErrUpstreamUnavailable = errors.New("content backend unavailable")
	ErrSnapshotNotFound    = errors.New("no stored snapshot for resource")
	ErrItemNotFound        = errors.New("content item not found")
	ErrNoContent           = errors.New("no content available")
)

// codes is ordered: the first match wins for joined errors.
var codes = []struct {
	err  error
	code string
}{
	{ErrUnknownResource, "unknown_resource"},
	{ErrItemNotFound, "item_not_found"},
	{ErrNoContent, "no_content"},
	{ErrUpstreamUnavailable, "upstream_unavailable"},
	{ErrSnapshotNotFound, "snapshot_not_found"},
}

// Code returns the stable message key of the domain error wrapped in err,
// or "" when err carries none.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
