// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every tutoring endpoint onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Concepts
	mux.HandleFunc("GET /concepts", h.listConcepts)

	// Tutoring sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSessionState)
	mux.HandleFunc("POST /sessions/{sessionID}/concept", h.selectConcept)
	mux.HandleFunc("POST /sessions/{sessionID}/mode", h.setMode)
	mux.HandleFunc("POST /sessions/{sessionID}/explain", h.explain)
	mux.HandleFunc("POST /sessions/{sessionID}/quiz/next", h.nextQuizItem)
	mux.HandleFunc("POST /sessions/{sessionID}/quiz/answer", h.submitQuizAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/teachback", h.submitTeachBack)

	// Progress analytics
	mux.HandleFunc("GET /progress/report", h.progressReport)
	mux.HandleFunc("GET /progress/weaknesses", h.progressWeaknesses)
	mux.HandleFunc("GET /progress/path", h.learningPath)
}
