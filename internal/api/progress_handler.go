package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/teachthetutor/backend/internal/tutor"
)

// ── Request / Response types ────────────────────────────────────────────────

type ReportResponse struct {
	Concepts []tutor.ConceptStatus `json:"concepts"`
	Spoken   string                `json:"spoken"`
}

type WeaknessesResponse struct {
	NoData     bool                  `json:"no_data"`
	Weaknesses []tutor.ConceptStatus `json:"weaknesses,omitempty"`
	Spoken     string                `json:"spoken"`
}

type LearningPathResponse struct {
	Steps  []tutor.PathStep `json:"steps"`
	Spoken string           `json:"spoken"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// progressReport classifies every scored concept.
// @Summary      Mastery report
// @Description  Strong / developing / needs-work classification for every scored concept.
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  ReportResponse
// @Router       /progress/report [get]
func (h *Handler) progressReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyzer.Report(r.Context())
	if err != nil {
		h.logger.Error("progress report failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var b strings.Builder
	if len(report) == 0 {
		b.WriteString("No mastery data yet.")
	} else {
		b.WriteString("Mastery report:")
		for _, line := range report {
			fmt.Fprintf(&b, "\n%s: %s (avg %.0f%%, %d attempts)",
				line.Title, line.Status, line.AvgScore, line.Attempts)
		}
	}

	respondJSON(w, http.StatusOK, ReportResponse{Concepts: report, Spoken: b.String()})
}

// progressWeaknesses ranks the weakest concepts.
// @Summary      Weakness analysis
// @Description  Weakest concepts first. When nothing has been scored yet, returns an explicit no-data result rather than an empty list.
// @Tags         Progress
// @Produce      json
// @Param        top  query     int  false  "How many concepts to return"  default(3)
// @Success      200  {object}  WeaknessesResponse
// @Router       /progress/weaknesses [get]
func (h *Handler) progressWeaknesses(w http.ResponseWriter, r *http.Request) {
	topN := 3
	if v := r.URL.Query().Get("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}

	weak, err := h.analyzer.Weaknesses(r.Context(), topN)
	if errors.Is(err, tutor.ErrNoScoredAttempts) {
		respondJSON(w, http.StatusOK, WeaknessesResponse{
			NoData: true,
			Spoken: "No scored attempts yet. Try taking some quizzes!",
		})
		return
	}
	if err != nil {
		h.logger.Error("weakness analysis failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var b strings.Builder
	b.WriteString("Focus on these concepts:")
	for i, line := range weak {
		fmt.Fprintf(&b, "\n%d. %s: %.0f%% avg (%d attempts)", i+1, line.Title, line.AvgScore, line.Attempts)
	}
	fmt.Fprintf(&b, "\nRecommendation: focus on %q — try teach-back mode for deeper understanding.", weak[0].Title)

	respondJSON(w, http.StatusOK, WeaknessesResponse{Weaknesses: weak, Spoken: b.String()})
}

// learningPath classifies the curriculum against accumulated mastery.
// @Summary      Personalized learning path
// @Description  Classifies each curriculum concept as mastered, review needed, struggling, or not started.
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  LearningPathResponse
// @Router       /progress/path [get]
func (h *Handler) learningPath(w http.ResponseWriter, r *http.Request) {
	steps, err := h.analyzer.LearningPath(r.Context(), h.curriculum)
	if err != nil {
		h.logger.Error("learning path failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var b strings.Builder
	b.WriteString("Personalized learning path:")
	for i, step := range steps {
		fmt.Fprintf(&b, "\n%d. %s: %s", i+1, step.Title, pathLabel(step.Status))
		if step.Hint != "" {
			fmt.Fprintf(&b, "\n   -> %s", step.Hint)
		}
	}

	respondJSON(w, http.StatusOK, LearningPathResponse{Steps: steps, Spoken: b.String()})
}

func pathLabel(s tutor.PathStatus) string {
	switch s {
	case tutor.PathMastered:
		return "Mastered"
	case tutor.PathReviewNeeded:
		return "Review Needed"
	case tutor.PathStruggling:
		return "Struggling"
	default:
		return "Not Started"
	}
}
