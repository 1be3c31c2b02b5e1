package mastery

import "math"

// Record accumulates a learner's history for one concept. Counters only
// ever grow; a record is never deleted once created.
type Record struct {
	TimesExplained  int
	TimesQuizzed    int
	TimesTaughtBack int
	LastScore       *int     // nil until the first scored event
	AvgScore        *float64 // nil until the first scored event
}

// Fold records a new scored event (quiz outcomes arrive as 0 or 100,
// teach-back as the computed 0-100 score).
//
// The average is recency-weighted: avg' = (avg + score) / 2, so later
// events count more than earlier ones. After [70, 90, 50] the average is
// (((70+90)/2)+50)/2 = 65, not the arithmetic mean 70.
func (r *Record) Fold(score int) {
	s := score
	r.LastScore = &s

	if r.AvgScore == nil {
		avg := float64(score)
		r.AvgScore = &avg
		return
	}
	avg := round1((*r.AvgScore + float64(score)) / 2)
	r.AvgScore = &avg
}

// ScoredAttempts counts the events that contributed to AvgScore.
func (r *Record) ScoredAttempts() int {
	return r.TimesQuizzed + r.TimesTaughtBack
}

// Avg returns the running average, or 0 when no event has been scored.
func (r *Record) Avg() float64 {
	if r.AvgScore == nil {
		return 0
	}
	return *r.AvgScore
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
