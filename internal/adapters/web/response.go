package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"medsite/internal/domain"
	"medsite/internal/domain/language"
	"medsite/internal/ports/input"
	"medsite/pkg/multilingual"
)

type listResponse struct {
	Language language.Code         `json:"language"`
	Source   input.Origin          `json:"source"`
	Notice   string                `json:"notice,omitempty"`
	Items    []multilingual.Record `json:"items"`
}

func newListResponse(l *input.Listing, notice string) listResponse {
	items := l.Items
	if items == nil {
		items = []multilingual.Record{}
	}
	return listResponse{Language: l.Language, Source: l.Origin, Notice: notice, Items: items}
}

type itemResponse struct {
	Language language.Code       `json:"language"`
	Source   input.Origin        `json:"source"`
	Notice   string              `json:"notice,omitempty"`
	Item     multilingual.Record `json:"item"`
}

type messagesResponse struct {
	Language language.Code     `json:"language"`
	Messages map[string]string `json:"messages"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// statusFor maps a domain error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownResource), errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoContent), errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, lang language.Code, err error) {
	status := statusFor(err)
	code := domain.Code(err)
	if code == "" {
		code = "internal"
	}
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "web: request failed",
			slog.String("path", r.URL.Path), slog.Int("status", status), slog.Any("error", err))
	}
	h.writeJSON(w, r, status, errorResponse{
		Code:  code,
		Error: h.messages.T(string(lang), "error_"+code, nil),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.DebugContext(r.Context(), "web: write response failed",
			slog.String("path", r.URL.Path), slog.Int("status", status), slog.Any("error", err))
	}
}
