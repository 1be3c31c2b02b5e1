package tutor

import (
	"context"

	"github.com/teachthetutor/backend/internal/content"
)

// Mastery report buckets.
const (
	StatusStrong     = "strong"     // avg >= 80
	StatusDeveloping = "developing" // avg >= 60
	StatusNeedsWork  = "needs work"
)

// Learning-path classifications.
type PathStatus string

const (
	PathMastered     PathStatus = "mastered"      // avg >= 80
	PathReviewNeeded PathStatus = "review_needed" // avg >= 60
	PathStruggling   PathStatus = "struggling"    // attempts > 0, avg < 60
	PathNotStarted   PathStatus = "not_started"   // no scored attempts
)

// ConceptStatus is one line of the mastery report or weakness ranking.
type ConceptStatus struct {
	ConceptID string  `json:"concept_id"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	AvgScore  float64 `json:"avg_score"`
	Attempts  int     `json:"attempts"`
}

// PathStep is one entry of the personalized learning path.
type PathStep struct {
	ConceptID string     `json:"concept_id"`
	Title     string     `json:"title"`
	Status    PathStatus `json:"status"`
	Hint      string     `json:"hint,omitempty"`
}

// Analyzer derives rankings and a learning path from the full mastery
// snapshot. It is read-only over the store and safe to use alongside
// live sessions.
type Analyzer struct {
	catalog *content.Catalog
	store   Store
}

// NewAnalyzer creates an Analyzer over a shared catalog and store.
func NewAnalyzer(catalog *content.Catalog, st Store) *Analyzer {
	return &Analyzer{catalog: catalog, store: st}
}

// Report classifies every scored concept as strong, developing, or needs
// work. Concepts never scored are omitted; output follows catalog order
// so callers get stable messaging.
func (a *Analyzer) Report(ctx context.Context) ([]ConceptStatus, error) {
	records, err := a.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []ConceptStatus
	for _, c := range a.catalog.Concepts() {
		rec, ok := records[c.ID]
		if !ok || rec.AvgScore == nil {
			continue
		}
		out = append(out, ConceptStatus{
			ConceptID: c.ID,
			Title:     c.Title,
			Status:    reportStatus(rec.Avg()),
			AvgScore:  rec.Avg(),
			Attempts:  rec.ScoredAttempts(),
		})
	}
	return out, nil
}

// Weaknesses ranks scored concepts ascending by average score, weakest
// first, truncated to topN. Zero scored attempts is reported as
// ErrNoScoredAttempts so callers can tell "no data" apart from "nothing
// weak".
func (a *Analyzer) Weaknesses(ctx context.Context, topN int) ([]ConceptStatus, error) {
	report, err := a.Report(ctx)
	if err != nil {
		return nil, err
	}
	if len(report) == 0 {
		return nil, ErrNoScoredAttempts
	}

	// Insertion sort keeps the catalog-order tie-break stable.
	for i := 1; i < len(report); i++ {
		for j := i; j > 0 && report[j].AvgScore < report[j-1].AvgScore; j-- {
			report[j], report[j-1] = report[j-1], report[j]
		}
	}

	if topN > 0 && len(report) > topN {
		report = report[:topN]
	}
	return report, nil
}

// LearningPath classifies each concept of the curriculum order against
// the mastery snapshot. Ids missing from the catalog are skipped
// silently; output order follows the given curriculum, not the store.
func (a *Analyzer) LearningPath(ctx context.Context, order []string) ([]PathStep, error) {
	records, err := a.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var steps []PathStep
	for _, id := range order {
		c, err := a.catalog.FindByID(id)
		if err != nil {
			continue
		}

		rec := records[c.ID]
		step := PathStep{ConceptID: c.ID, Title: c.Title}
		switch {
		case rec.AvgScore != nil && rec.Avg() >= 80:
			step.Status = PathMastered
		case rec.AvgScore != nil && rec.Avg() >= 60:
			step.Status = PathReviewNeeded
		case rec.ScoredAttempts() > 0:
			step.Status = PathStruggling
			step.Hint = "try teach-back mode for " + c.ID
		default:
			step.Status = PathNotStarted
			step.Hint = "start with learn mode for " + c.ID
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func reportStatus(avg float64) string {
	switch {
	case avg >= 80:
		return StatusStrong
	case avg >= 60:
		return StatusDeveloping
	default:
		return StatusNeedsWork
	}
}
