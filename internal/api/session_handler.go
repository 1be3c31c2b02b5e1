package api

import (
	"net/http"

	"github.com/teachthetutor/backend/internal/id"
	"github.com/teachthetutor/backend/internal/tutor"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	ConceptID string `json:"concept_id,omitempty" example:"loops"`
	Mode      string `json:"mode,omitempty" example:"learn"`
}

type SessionStateResponse struct {
	ID        string `json:"id" example:"x9y8z7w6v5u4t3s2"`
	ConceptID string `json:"concept_id,omitempty" example:"loops"`
	Title     string `json:"title,omitempty" example:"Loops"`
	Mode      string `json:"mode,omitempty" example:"learn"`
}

type SelectConceptRequest struct {
	ConceptID string `json:"concept_id" example:"loops"`
}

type SetModeRequest struct {
	Mode string `json:"mode" example:"quiz"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" example:"b"`
}

type TeachBackRequest struct {
	Explanation string `json:"explanation" example:"a loop runs code again and again while a condition holds"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a tutoring session.
// @Summary      Start a tutoring session
// @Description  Creates a session; optionally selects a concept and mode in the same call.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  false  "Initial concept and mode"
// @Success      201   {object}  SessionStateResponse
// @Failure      404   {object}  map[string]string  "concept not found"
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}

	session := tutor.NewSession(h.catalog, h.store, h.notifier, h.logger)

	if req.ConceptID != "" {
		if _, err := session.SelectConcept(req.ConceptID); h.handleTutorError(w, err) {
			return
		}
	}
	if req.Mode != "" {
		if _, err := session.SetMode(req.Mode); h.handleTutorError(w, err) {
			return
		}
	}

	sessionID := id.New()
	h.mu.Lock()
	h.sessions[sessionID] = &liveSession{session: session}
	h.mu.Unlock()

	respondJSON(w, http.StatusCreated, h.sessionState(sessionID, session))
}

// getSessionState reports the session's current concept and mode.
// @Summary      Get session state
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionStateResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSessionState(w http.ResponseWriter, r *http.Request) {
	ls, ok := h.getSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	respondJSON(w, http.StatusOK, h.sessionState(r.PathValue("sessionID"), ls.session))
}

// selectConcept switches the session to another concept.
// @Summary      Select a concept
// @Description  Switches the session's concept by exact id; the quiz cursor resets, the mode is kept.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                true  "Session ID"
// @Param        body       body      SelectConceptRequest  true  "Concept to select"
// @Success      200        {object}  SessionStateResponse
// @Failure      404        {object}  map[string]string  "session or concept not found"
// @Router       /sessions/{sessionID}/concept [post]
func (h *Handler) selectConcept(w http.ResponseWriter, r *http.Request) {
	ls, ok := h.getSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	var req SelectConceptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	if _, err := ls.session.SelectConcept(req.ConceptID); h.handleTutorError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.sessionState(r.PathValue("sessionID"), ls.session))
}

// setMode switches the tutoring mode.
// @Summary      Set the tutoring mode
// @Description  Validates the mode and notifies the voice collaborator to switch its output profile.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string          true  "Session ID"
// @Param        body       body      SetModeRequest  true  "learn, quiz, or teach_back"
// @Success      200        {object}  SessionStateResponse
// @Failure      400        {object}  map[string]string  "invalid mode"
// @Router       /sessions/{sessionID}/mode [post]
func (h *Handler) setMode(w http.ResponseWriter, r *http.Request) {
	ls, ok := h.getSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	var req SetModeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	if _, err := ls.session.SetMode(req.Mode); h.handleTutorError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.sessionState(r.PathValue("sessionID"), ls.session))
}

// explain returns the concept summary and counts the explanation.
// @Summary      Explain the selected concept
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  tutor.ExplainResult
// @Failure      409        {object}  map[string]string  "no concept selected"
// @Router       /sessions/{sessionID}/explain [post]
func (h *Handler) explain(w http.ResponseWriter, r *http.Request) {
	ls, ok := h.getSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	res, err := ls.session.Explain(r.Context())
	if h.handleTutorError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// nextQuizItem serves the next multiple-choice question.
// @Summary      Next quiz question
// @Description  Serves the question at the quiz cursor without revealing the correct index.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  tutor.QuizPrompt
// @Failure      409        {object}  map[string]string  "no quiz available"
// @Router       /sessions/{sessionID}/quiz/next [post]
func (h *Handler) nextQuizItem(w http.ResponseWriter, r *http.Request) {
	ls, ok := h.getSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	prompt, err := ls.session.NextQuizItem()
	if h.handleTutorError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, prompt)
}

// submitQuizAnswer grades an utterance against the last served question.
// @Summary      Answer the current quiz question
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Raw utterance"
// @Success      200        {object}  tutor.QuizResult
// @Failure      409        {object}  map[string]string  "no question pending"
// @Router       /sessions/{sessionID}/quiz/answer [post]
func (h *Handler) submitQuizAnswer(w http.ResponseWriter, r *http.Request) {
	ls, ok := h.getSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	res, err := ls.session.SubmitQuizAnswer(r.Context(), req.Answer)
	if h.handleTutorError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// submitTeachBack scores the learner's own explanation.
// @Summary      Submit a teach-back explanation
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string            true  "Session ID"
// @Param        body       body      TeachBackRequest  true  "Learner's explanation"
// @Success      200        {object}  tutor.TeachBackResult
// @Failure      409        {object}  map[string]string  "no concept selected"
// @Router       /sessions/{sessionID}/teachback [post]
func (h *Handler) submitTeachBack(w http.ResponseWriter, r *http.Request) {
	ls, ok := h.getSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	var req TeachBackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	res, err := ls.session.SubmitTeachBack(r.Context(), req.Explanation)
	if h.handleTutorError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *Handler) sessionState(sessionID string, s *tutor.Session) SessionStateResponse {
	state := SessionStateResponse{ID: sessionID, Mode: string(s.Mode())}
	if c, ok := s.CurrentConcept(); ok {
		state.ConceptID = c.ID
		state.Title = c.Title
	}
	return state
}
