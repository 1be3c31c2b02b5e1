package content_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/teachthetutor/backend/internal/content"
	"github.com/teachthetutor/backend/internal/domain/concept"
)

const sampleContent = `[
  {
    "id": "variables",
    "title": "Variables",
    "summary": "A variable is a named container that stores a value.",
    "sample_question": "What is a variable?",
    "quiz": [
      {
        "question": "What does a variable do?",
        "options": ["stores a value", "repeats code", "draws a picture"],
        "answer": 0
      }
    ]
  },
  {
    "id": "loops",
    "title": "Loops",
    "summary": "A loop repeats code until a condition is false.",
    "sample_question": "Explain what a loop is."
  }
]`

func writeContent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write content file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cat, err := content.Load(writeContent(t, sampleContent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cat.Len() != 2 {
		t.Fatalf("expected 2 concepts, got %d", cat.Len())
	}

	c, err := cat.FindByID("variables")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "Variables" {
		t.Errorf("expected title %q, got %q", "Variables", c.Title)
	}
	if len(c.Quiz) != 1 || c.Quiz[0].CorrectIndex != 0 {
		t.Errorf("quiz items not decoded: %+v", c.Quiz)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := content.Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, content.ErrContentLoad) {
		t.Errorf("expected ErrContentLoad, got %v", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := content.Load(writeContent(t, `{"not": "an array"`))
	if !errors.Is(err, content.ErrContentLoad) {
		t.Errorf("expected ErrContentLoad, got %v", err)
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	// Missing required "summary".
	_, err := content.Load(writeContent(t, `[{"id": "x", "title": "X"}]`))
	if !errors.Is(err, content.ErrContentLoad) {
		t.Errorf("expected ErrContentLoad, got %v", err)
	}
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := content.New([]concept.Concept{
		{ID: "loops", Title: "Loops", Summary: "s"},
		{ID: "loops", Title: "Loops Again", Summary: "s"},
	})
	if !errors.Is(err, content.ErrContentLoad) {
		t.Errorf("expected ErrContentLoad for duplicate id, got %v", err)
	}
}

func TestNew_AnswerIndexOutOfRange(t *testing.T) {
	_, err := content.New([]concept.Concept{
		{
			ID: "loops", Title: "Loops", Summary: "s",
			Quiz: []concept.QuizItem{{Question: "q", Options: []string{"a", "b"}, CorrectIndex: 5}},
		},
	})
	if !errors.Is(err, content.ErrContentLoad) {
		t.Errorf("expected ErrContentLoad for bad answer index, got %v", err)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	cat, err := content.Load(writeContent(t, sampleContent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = cat.FindByID("recursion")
	if !errors.Is(err, content.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByTitleOrID(t *testing.T) {
	cat, err := content.Load(writeContent(t, sampleContent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"exact id", "loops", "loops"},
		{"exact title case-insensitive", "LOOPS", "loops"},
		{"title substring", "aria", "variables"},
		{"no match falls back to first", "recursion", "variables"},
		{"empty query falls back to first", "", "variables"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := cat.FindByTitleOrID(tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.ID != tt.want {
				t.Errorf("query %q: expected %q, got %q", tt.query, tt.want, c.ID)
			}
		})
	}
}

func TestFindByTitleOrID_EmptyCatalog(t *testing.T) {
	cat, err := content.New(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = cat.FindByTitleOrID("anything")
	if !errors.Is(err, content.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestListing(t *testing.T) {
	cat, err := content.Load(writeContent(t, sampleContent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Available concepts:\n- variables: Variables\n- loops: Loops"
	if got := cat.Listing(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
