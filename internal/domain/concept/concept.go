package concept

import (
	"errors"
	"fmt"
)

// QuizItem is one multiple-choice question attached to a concept.
// CorrectIndex is never exposed to the learner before they answer.
type QuizItem struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"answer"`
}

// Concept is one unit of teachable material. The summary doubles as the
// "learn" payload and as the reference text for teach-back scoring.
type Concept struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Summary        string     `json:"summary"`
	Quiz           []QuizItem `json:"quiz,omitempty"`
	SampleQuestion string     `json:"sample_question,omitempty"`
}

// Validate checks the structural invariants of a single concept.
func (c *Concept) Validate() error {
	if c.ID == "" {
		return errors.New("concept id cannot be empty")
	}
	if c.Title == "" {
		return fmt.Errorf("concept %q: title cannot be empty", c.ID)
	}
	for i, q := range c.Quiz {
		if len(q.Options) == 0 {
			return fmt.Errorf("concept %q: quiz item %d has no options", c.ID, i)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("concept %q: quiz item %d answer index %d out of range (%d options)",
				c.ID, i, q.CorrectIndex, len(q.Options))
		}
	}
	return nil
}

// HasQuiz reports whether the concept carries at least one quiz item.
func (c *Concept) HasQuiz() bool {
	return len(c.Quiz) > 0
}
