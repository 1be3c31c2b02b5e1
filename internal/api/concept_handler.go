package api

import "net/http"

// ── Request / Response types ────────────────────────────────────────────────

type ConceptSummary struct {
	ID        string `json:"id" example:"loops"`
	Title     string `json:"title" example:"Loops"`
	HasQuiz   bool   `json:"has_quiz" example:"true"`
	QuizItems int    `json:"quiz_items" example:"2"`
}

type ListConceptsResponse struct {
	Concepts []ConceptSummary `json:"concepts"`
	Spoken   string           `json:"spoken"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listConcepts lists every teachable concept.
// @Summary      List concepts
// @Description  Returns the concept catalog plus a speakable listing for the voice layer.
// @Tags         Concepts
// @Produce      json
// @Success      200  {object}  ListConceptsResponse
// @Router       /concepts [get]
func (h *Handler) listConcepts(w http.ResponseWriter, r *http.Request) {
	concepts := make([]ConceptSummary, 0, h.catalog.Len())
	for _, c := range h.catalog.Concepts() {
		concepts = append(concepts, ConceptSummary{
			ID:        c.ID,
			Title:     c.Title,
			HasQuiz:   c.HasQuiz(),
			QuizItems: len(c.Quiz),
		})
	}

	respondJSON(w, http.StatusOK, ListConceptsResponse{
		Concepts: concepts,
		Spoken:   h.catalog.Listing(),
	})
}
