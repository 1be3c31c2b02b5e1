// Package scorer grades free-text explanations against a reference
// summary. Scoring is a bag-of-words heuristic, not language
// understanding: it rewards recall of the reference vocabulary
// (coverage), penalizes padding (precision), and checks for a fixed set
// of domain key terms.
package scorer

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// Bucket labels the feedback tier a score falls into.
type Bucket string

const (
	BucketOutstanding   Bucket = "outstanding"
	BucketExcellent     Bucket = "excellent"
	BucketGood          Bucket = "good"
	BucketDecent        Bucket = "decent"
	BucketOnTrack       Bucket = "on_the_right_track"
	BucketKeepTrying    Bucket = "keep_trying"
	BucketNoReference   Bucket = "no_reference"
	BucketNoExplanation Bucket = "no_explanation"
)

// Result is the outcome of scoring one explanation.
type Result struct {
	Score           int      `json:"score"`
	Bucket          Bucket   `json:"bucket"`
	Feedback        string   `json:"feedback"`
	Coverage        float64  `json:"coverage"`
	Precision       float64  `json:"precision"`
	MissingKeyTerms []string `json:"missing_key_terms,omitempty"`
}

// keyTerms is the control-flow vocabulary of the reference corpus. When a
// reference uses none of them the key-term component scores neutral, so
// non-technical concepts are not penalized.
var keyTerms = map[string]struct{}{
	"variable": {}, "loop": {}, "function": {}, "condition": {},
	"if": {}, "else": {}, "for": {}, "while": {}, "def": {}, "return": {},
}

var wordRun = regexp.MustCompile(`[a-z0-9]+`)

// Score grades an explanation against the reference summary and returns
// a 0-100 score with a feedback message ready to be spoken.
//
// score = round(min(100, coverage*40 + precision*30 + keyTermScore*30))
func Score(reference, explanation string) Result {
	refWords := wordSet(reference)
	ansWords := wordSet(explanation)

	if len(refWords) == 0 {
		return Result{
			Score:    0,
			Bucket:   BucketNoReference,
			Feedback: "No reference available to score against.",
		}
	}
	if len(ansWords) == 0 {
		return Result{
			Score:    0,
			Bucket:   BucketNoExplanation,
			Feedback: "Please provide an explanation to evaluate.",
		}
	}

	common := 0
	for w := range ansWords {
		if _, ok := refWords[w]; ok {
			common++
		}
	}
	coverage := float64(common) / float64(len(refWords))
	precision := float64(common) / float64(len(ansWords))

	refKey := intersectKeyTerms(refWords)
	ansKey := intersectKeyTerms(ansWords)
	keyTermScore := 1.0
	var missing []string
	if len(refKey) > 0 {
		hit := 0
		for w := range ansKey {
			if _, ok := refKey[w]; ok {
				hit++
			}
		}
		keyTermScore = float64(hit) / float64(len(refKey))
		for w := range refKey {
			if _, ok := ansKey[w]; !ok {
				missing = append(missing, w)
			}
		}
		sort.Strings(missing)
	}

	score := int(math.Round(coverage*40 + precision*30 + keyTermScore*30))
	if score > 100 {
		score = 100
	}

	bucket, feedback := bucketFor(score)
	if score < 80 && len(missing) > 0 {
		hint := missing
		if len(hint) > 3 {
			hint = hint[:3]
		}
		feedback += fmt.Sprintf(" Try mentioning: %s.", strings.Join(hint, ", "))
	}

	return Result{
		Score:           score,
		Bucket:          bucket,
		Feedback:        feedback,
		Coverage:        coverage,
		Precision:       precision,
		MissingKeyTerms: missing,
	}
}

func bucketFor(score int) (Bucket, string) {
	switch {
	case score >= 90:
		return BucketOutstanding, "Outstanding! You demonstrated deep understanding with precise terminology."
	case score >= 80:
		return BucketExcellent, "Excellent! You covered the key concepts clearly and accurately."
	case score >= 70:
		return BucketGood, "Good work! You understand the main ideas. Try to be more precise with technical terms."
	case score >= 60:
		return BucketDecent, "Decent attempt! You got some key points but missed important details. Review the concept again."
	case score >= 40:
		return BucketOnTrack, "You're on the right track but need to cover more core concepts. Focus on the main definition."
	default:
		return BucketKeepTrying, "Keep trying! Make sure to explain the basic purpose and give a simple example."
	}
}

func intersectKeyTerms(words map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for w := range words {
		if _, ok := keyTerms[w]; ok {
			out[w] = struct{}{}
		}
	}
	return out
}

func wordSet(s string) map[string]struct{} {
	words := wordRun.FindAllString(strings.ToLower(s), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
