package tutor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/teachthetutor/backend/internal/content"
	"github.com/teachthetutor/backend/internal/domain/concept"
	"github.com/teachthetutor/backend/internal/domain/mastery"
	"github.com/teachthetutor/backend/internal/tutor"
)

func analyzerCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := content.New([]concept.Concept{
		{ID: "variables", Title: "Variables", Summary: "s"},
		{ID: "conditions", Title: "Conditions", Summary: "s"},
		{ID: "loops", Title: "Loops", Summary: "s"},
		{ID: "functions", Title: "Functions", Summary: "s"},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func scoredRecord(avg float64, quizzed int) mastery.Record {
	return mastery.Record{TimesQuizzed: quizzed, AvgScore: &avg}
}

func TestReport_BucketsAndOmitsUnscored(t *testing.T) {
	st := newMemStore()
	st.records["variables"] = scoredRecord(85, 2)
	st.records["conditions"] = scoredRecord(65, 1)
	st.records["loops"] = scoredRecord(30, 3)
	// functions: explained once but never scored, so omitted from the report.
	st.records["functions"] = mastery.Record{TimesExplained: 1}

	a := tutor.NewAnalyzer(analyzerCatalog(t), st)
	report, err := a.Report(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if len(report) != 3 {
		t.Fatalf("expected 3 scored concepts, got %d", len(report))
	}

	want := map[string]string{
		"variables":  tutor.StatusStrong,
		"conditions": tutor.StatusDeveloping,
		"loops":      tutor.StatusNeedsWork,
	}
	for _, line := range report {
		if line.Status != want[line.ConceptID] {
			t.Errorf("%s: expected status %q, got %q", line.ConceptID, want[line.ConceptID], line.Status)
		}
	}
}

func TestWeaknesses_RanksAscending(t *testing.T) {
	st := newMemStore()
	st.records["variables"] = scoredRecord(90, 1)
	st.records["conditions"] = scoredRecord(40, 2)
	st.records["loops"] = scoredRecord(70, 1)
	st.records["functions"] = scoredRecord(20, 1)

	a := tutor.NewAnalyzer(analyzerCatalog(t), st)
	weak, err := a.Weaknesses(context.Background(), 3)
	if err != nil {
		t.Fatalf("weaknesses: %v", err)
	}

	if len(weak) != 3 {
		t.Fatalf("expected top 3, got %d", len(weak))
	}
	got := []string{weak[0].ConceptID, weak[1].ConceptID, weak[2].ConceptID}
	wantOrder := []string{"functions", "conditions", "loops"}
	for i := range wantOrder {
		if got[i] != wantOrder[i] {
			t.Fatalf("expected order %v, got %v", wantOrder, got)
		}
	}
}

func TestWeaknesses_TieBreaksByCatalogOrder(t *testing.T) {
	st := newMemStore()
	st.records["loops"] = scoredRecord(50, 1)
	st.records["conditions"] = scoredRecord(50, 1)

	a := tutor.NewAnalyzer(analyzerCatalog(t), st)
	weak, err := a.Weaknesses(context.Background(), 3)
	if err != nil {
		t.Fatalf("weaknesses: %v", err)
	}

	// conditions precedes loops in the catalog.
	if weak[0].ConceptID != "conditions" || weak[1].ConceptID != "loops" {
		t.Errorf("expected catalog-order tie break, got %v then %v", weak[0].ConceptID, weak[1].ConceptID)
	}
}

func TestWeaknesses_NoScoredAttempts(t *testing.T) {
	st := newMemStore()
	st.records["variables"] = mastery.Record{TimesExplained: 4}

	a := tutor.NewAnalyzer(analyzerCatalog(t), st)
	_, err := a.Weaknesses(context.Background(), 3)
	if !errors.Is(err, tutor.ErrNoScoredAttempts) {
		t.Errorf("expected ErrNoScoredAttempts, got %v", err)
	}
}

func TestLearningPath_OrderAndStatuses(t *testing.T) {
	st := newMemStore()
	st.records["variables"] = scoredRecord(85, 2)
	// conditions: no record at all.
	st.records["loops"] = scoredRecord(50, 2)
	st.records["functions"] = scoredRecord(70, 1)

	a := tutor.NewAnalyzer(analyzerCatalog(t), st)
	steps, err := a.LearningPath(context.Background(), []string{"variables", "conditions", "loops", "functions"})
	if err != nil {
		t.Fatalf("learning path: %v", err)
	}

	want := []tutor.PathStatus{
		tutor.PathMastered,
		tutor.PathNotStarted,
		tutor.PathStruggling,
		tutor.PathReviewNeeded,
	}
	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(steps))
	}
	for i, step := range steps {
		if step.Status != want[i] {
			t.Errorf("step %d (%s): expected %q, got %q", i, step.ConceptID, want[i], step.Status)
		}
	}

	if steps[1].Hint == "" {
		t.Error("expected a next-action hint for a not-started concept")
	}
	if steps[2].Hint == "" {
		t.Error("expected a next-action hint for a struggling concept")
	}
	if steps[0].Hint != "" {
		t.Errorf("mastered concepts need no hint, got %q", steps[0].Hint)
	}
}

func TestLearningPath_SkipsUnknownIDs(t *testing.T) {
	st := newMemStore()
	st.records["variables"] = scoredRecord(85, 1)

	a := tutor.NewAnalyzer(analyzerCatalog(t), st)
	steps, err := a.LearningPath(context.Background(), []string{"variables", "quantum-computing"})
	if err != nil {
		t.Fatalf("learning path: %v", err)
	}

	if len(steps) != 1 || steps[0].ConceptID != "variables" {
		t.Errorf("expected unknown ids to be skipped, got %+v", steps)
	}
}

func TestLearningPath_IndependentOfStoreKeyOrder(t *testing.T) {
	// Map iteration order must not leak into the path: output follows
	// the curriculum order ["variables", "loops"] exactly.
	st := newMemStore()
	st.records["loops"] = mastery.Record{}
	st.records["variables"] = scoredRecord(85, 1)

	a := tutor.NewAnalyzer(analyzerCatalog(t), st)
	steps, err := a.LearningPath(context.Background(), []string{"variables", "loops"})
	if err != nil {
		t.Fatalf("learning path: %v", err)
	}

	if steps[0].ConceptID != "variables" || steps[0].Status != tutor.PathMastered {
		t.Errorf("expected variables mastered first, got %+v", steps[0])
	}
	if steps[1].ConceptID != "loops" || steps[1].Status != tutor.PathNotStarted {
		t.Errorf("expected loops not started second, got %+v", steps[1])
	}
}
