package web

import (
	"log/slog"
	"net/http"
	"strings"

	"medsite/internal/domain/language"
	"medsite/internal/ports/input"
	"medsite/internal/ports/output"
)

// autoLanguage in the path asks for Accept-Language negotiation.
const autoLanguage = "auto"

// Handler serves localized content using the content use case.
type Handler struct {
	content  input.ContentUseCase
	messages output.T
	logger   *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(content input.ContentUseCase, messages output.T, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		content:  content,
		messages: messages,
		logger:   logger,
	}
}

// Routes registers every endpoint on a new mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.HandleHealth)
	mux.HandleFunc("GET /api/messages", h.HandleMessages)
	mux.HandleFunc("GET /api/{lang}/{resource}", h.HandleList)
	mux.HandleFunc("GET /api/{lang}/{resource}/{id}", h.HandleGet)
	return logRequests(h.logger, mux)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	listing, err := h.content.List(r.Context(), input.ListQuery{
		Resource: r.PathValue("resource"),
		Language: lang,
		Status:   r.URL.Query().Get("status"),
	})
	if err != nil {
		h.respondError(w, r, lang, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newListResponse(listing, h.notice(lang, listing.Origin)))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	item, origin, err := h.content.Get(r.Context(), r.PathValue("resource"), r.PathValue("id"), lang)
	if err != nil {
		h.respondError(w, r, lang, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, itemResponse{
		Language: lang,
		Source:   origin,
		Notice:   h.notice(lang, origin),
		Item:     item,
	})
}

func (h *Handler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	lang := language.Negotiate(r.Header.Get("Accept-Language"))
	if q := r.URL.Query().Get("lang"); q != "" {
		lang = language.Parse(q)
	}
	var keys []string
	if raw := r.URL.Query().Get("keys"); raw != "" {
		keys = strings.Split(raw, ",")
	}
	h.writeJSON(w, r, http.StatusOK, messagesResponse{
		Language: lang,
		Messages: h.content.Messages(lang, keys),
	})
}

// notice is the user-facing hint shown when the data is not live.
func (h *Handler) notice(lang language.Code, origin input.Origin) string {
	if origin == input.OriginUpstream {
		return ""
	}
	return h.messages.T(string(lang), "content_stale", nil)
}

func requestLanguage(r *http.Request) language.Code {
	raw := r.PathValue("lang")
	if strings.EqualFold(raw, autoLanguage) {
		return language.Negotiate(r.Header.Get("Accept-Language"))
	}
	return language.Parse(raw)
}
