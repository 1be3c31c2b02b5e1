// Package matcher resolves a raw spoken utterance to a multiple-choice
// option. Voice transcripts are messy, so matching is a layered heuristic
// rather than a strict parse; each tier runs only if the previous one
// produced nothing.
package matcher

import (
	"regexp"
	"strings"

	"github.com/teachthetutor/backend/internal/domain/concept"
)

var (
	letterToken = regexp.MustCompile(`\b[a-d]\b`)
	digitToken  = regexp.MustCompile(`\b[1-4]\b`)
	wordRun     = regexp.MustCompile(`[a-z0-9]+`)
)

// Match returns the option index the utterance selects, or ok=false when
// every tier comes up empty. No match means the answer counts as wrong;
// it is not an error. Tiers, in order:
//
//  1. standalone letter token a-d
//  2. standalone digit token 1-4
//  3. an option's full text appears verbatim in the utterance
//  4. bag-of-words: option with the largest non-empty word overlap
//     (earliest option wins ties)
//  5. any word of the correct option appears in the utterance
func Match(item concept.QuizItem, utterance string) (int, bool) {
	u := strings.ToLower(strings.TrimSpace(utterance))
	if u == "" {
		return 0, false
	}

	if m := letterToken.FindString(u); m != "" {
		return int(m[0] - 'a'), true
	}
	if m := digitToken.FindString(u); m != "" {
		return int(m[0] - '1'), true
	}

	for i, opt := range item.Options {
		if opt != "" && strings.Contains(u, strings.ToLower(opt)) {
			return i, true
		}
	}

	uttWords := wordSet(u)
	best, bestOverlap := -1, 0
	for i, opt := range item.Options {
		overlap := 0
		for w := range wordSet(strings.ToLower(opt)) {
			if _, ok := uttWords[w]; ok {
				overlap++
			}
		}
		if overlap > bestOverlap {
			best, bestOverlap = i, overlap
		}
	}
	if best >= 0 {
		return best, true
	}

	if item.CorrectIndex >= 0 && item.CorrectIndex < len(item.Options) {
		for _, w := range wordRun.FindAllString(strings.ToLower(item.Options[item.CorrectIndex]), -1) {
			if _, ok := uttWords[w]; ok {
				return item.CorrectIndex, true
			}
		}
	}

	return 0, false
}

func wordSet(s string) map[string]struct{} {
	words := wordRun.FindAllString(s, -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
