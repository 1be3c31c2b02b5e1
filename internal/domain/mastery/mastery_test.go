package mastery_test

import (
	"testing"

	"github.com/teachthetutor/backend/internal/domain/mastery"
)

func TestFold_FirstScoreSetsAverage(t *testing.T) {
	var r mastery.Record

	r.Fold(80)

	if r.LastScore == nil || *r.LastScore != 80 {
		t.Fatalf("expected last score 80, got %v", r.LastScore)
	}
	if r.AvgScore == nil || *r.AvgScore != 80 {
		t.Fatalf("expected avg 80, got %v", r.AvgScore)
	}
}

func TestFold_RecencyWeightedAverage(t *testing.T) {
	// avg after [s1, s2, s3] must be (((s1+s2)/2)+s3)/2,
	// not the arithmetic mean of the three.
	var r mastery.Record

	r.Fold(100)
	r.Fold(0)
	r.Fold(100)

	if r.AvgScore == nil {
		t.Fatal("expected avg to be set")
	}
	if got, want := *r.AvgScore, 75.0; got != want {
		t.Errorf("expected avg %.1f, got %.1f", want, got)
	}
}

func TestFold_RoundsToOneDecimal(t *testing.T) {
	var r mastery.Record

	r.Fold(100)
	r.Fold(41) // (100+41)/2 = 70.5

	if got, want := *r.AvgScore, 70.5; got != want {
		t.Errorf("expected avg %.1f, got %.1f", want, got)
	}
}

func TestScoredAttempts(t *testing.T) {
	r := mastery.Record{TimesExplained: 5, TimesQuizzed: 2, TimesTaughtBack: 3}

	if got := r.ScoredAttempts(); got != 5 {
		t.Errorf("expected 5 scored attempts, got %d", got)
	}
}

func TestAvg_ZeroWhenUnscored(t *testing.T) {
	var r mastery.Record

	if got := r.Avg(); got != 0 {
		t.Errorf("expected 0 for unscored record, got %.1f", got)
	}
}
