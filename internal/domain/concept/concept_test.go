package concept_test

import (
	"testing"

	"github.com/teachthetutor/backend/internal/domain/concept"
)

func TestValidate(t *testing.T) {
	c := concept.Concept{
		ID:      "loops",
		Title:   "Loops",
		Summary: "A loop repeats code until a condition is false.",
		Quiz: []concept.QuizItem{
			{Question: "What does a loop do?", Options: []string{"repeats code", "stores data"}, CorrectIndex: 0},
		},
	}

	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EmptyID(t *testing.T) {
	c := concept.Concept{Title: "Loops"}

	if err := c.Validate(); err == nil {
		t.Error("expected error for empty id, got nil")
	}
}

func TestValidate_AnswerIndexOutOfRange(t *testing.T) {
	c := concept.Concept{
		ID:    "loops",
		Title: "Loops",
		Quiz: []concept.QuizItem{
			{Question: "Q", Options: []string{"a", "b"}, CorrectIndex: 2},
		},
	}

	if err := c.Validate(); err == nil {
		t.Error("expected error for out-of-range answer index, got nil")
	}
}

func TestHasQuiz(t *testing.T) {
	c := concept.Concept{ID: "x", Title: "X"}
	if c.HasQuiz() {
		t.Error("expected HasQuiz to be false with no items")
	}

	c.Quiz = []concept.QuizItem{{Question: "Q", Options: []string{"a"}, CorrectIndex: 0}}
	if !c.HasQuiz() {
		t.Error("expected HasQuiz to be true with one item")
	}
}
