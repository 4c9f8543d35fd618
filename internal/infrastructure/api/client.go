package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"medsite/internal/domain"
	"medsite/internal/domain/entities"
	"medsite/internal/domain/language"
	"medsite/internal/ports/output"
	"medsite/pkg/multilingual"
)

// DefaultTimeout bounds a single backend request.
const DefaultTimeout = 10 * time.Second

const maxBodyBytes = 8 << 20

var _ output.ContentSource = (*Client)(nil)

// Client implements output.ContentSource against the university REST API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// NewClient creates a Client for baseURL (e.g. "https://host/api").
// A nil httpClient gets one with DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: base url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

// Fetch loads the records of res. The backend gets the language both as
// "lang" query parameter and Accept-Language header, Kyrgyz as "ky".
func (c *Client) Fetch(ctx context.Context, res entities.Resource, lang language.Code) ([]multilingual.Record, error) {
	endpoint := c.baseURL.JoinPath(res.Path)
	if strings.HasSuffix(res.Path, "/") && !strings.HasSuffix(endpoint.Path, "/") {
		endpoint.Path += "/"
	}
	q := endpoint.Query()
	q.Set("lang", lang.Backend())
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", lang.Backend())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: get %s: %w: %w", res.Name, domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("api: get %s: status %d: %w", res.Name, resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("api: read %s: %w: %w", res.Name, domain.ErrUpstreamUnavailable, err)
	}
	records, err := DecodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("api: decode %s: %w: %w", res.Name, domain.ErrUpstreamUnavailable, err)
	}
	return records, nil
}

// envelopeKeys are the wrapper keys the backend uses around listings, in
// lookup order.
var envelopeKeys = []string{"results", "data", "partners"}

// DecodeRecords accepts a JSON array of objects, an object wrapping such an
// array under one of envelopeKeys, or a single object.
func DecodeRecords(body []byte) ([]multilingual.Record, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("empty body")
	}

	switch body[0] {
	case '[':
		var records []multilingual.Record
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, err
		}
		return records, nil
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, err
		}
		for _, key := range envelopeKeys {
			raw, ok := envelope[key]
			if !ok || !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
				continue
			}
			var records []multilingual.Record
			if err := json.Unmarshal(raw, &records); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			return records, nil
		}
		var single multilingual.Record
		if err := json.Unmarshal(body, &single); err != nil {
			return nil, err
		}
		return []multilingual.Record{single}, nil
	default:
		return nil, fmt.Errorf("unexpected payload starting with %q", body[0])
	}
}
