// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/teachthetutor/backend/internal/content"
	"github.com/teachthetutor/backend/internal/tutor"
)

// Handler holds all dependencies needed by HTTP handlers. Instead of
// relying on package-level globals, every handler method receives its
// dependencies through this struct.
type Handler struct {
	catalog    *content.Catalog
	store      tutor.Store
	notifier   tutor.Notifier
	analyzer   *tutor.Analyzer
	curriculum []string
	logger     *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

// liveSession serializes calls into one tutor.Session. The conversational
// runtime sends turns sequentially, but nothing stops a second HTTP
// client from hitting the same session id.
type liveSession struct {
	mu      sync.Mutex
	session *tutor.Session
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(catalog *content.Catalog, store tutor.Store, notifier tutor.Notifier, curriculum []string, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:    catalog,
		store:      store,
		notifier:   notifier,
		analyzer:   tutor.NewAnalyzer(catalog, store),
		curriculum: curriculum,
		logger:     logger,
		sessions:   make(map[string]*liveSession),
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with a hint the conversational
// layer can speak back as a clarifying question.
func respondError(w http.ResponseWriter, status int, hint string) {
	respondJSON(w, status, map[string]string{"error": hint})
}

// decodeJSON decodes the request body; on failure it responds 400 and
// returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleTutorError converts the tutoring error taxonomy into an HTTP
// response with a corrective hint. Returns true if an error was handled
// (caller should return).
func (h *Handler) handleTutorError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, tutor.ErrConceptNotFound), errors.Is(err, content.ErrNotFound):
		respondError(w, http.StatusNotFound, "concept not found — list concepts with GET /concepts")
	case errors.Is(err, tutor.ErrNoConceptSelected):
		respondError(w, http.StatusConflict, "no concept selected — pick one first")
	case errors.Is(err, tutor.ErrInvalidMode):
		respondError(w, http.StatusBadRequest, "unknown mode — choose learn, quiz, or teach_back")
	case errors.Is(err, tutor.ErrNoQuizAvailable):
		respondError(w, http.StatusConflict, "this concept has no quiz questions — try teach_back instead")
	case errors.Is(err, tutor.ErrNoQuestionPending):
		respondError(w, http.StatusConflict, "no question is waiting for an answer — request the next question first")
	default:
		h.logger.Error("tutor error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// getSession looks up a live session by id.
func (h *Handler) getSession(id string) (*liveSession, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ls, ok := h.sessions[id]
	return ls, ok
}
