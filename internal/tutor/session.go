// Package tutor implements the adaptive teach → quiz → teach-back loop:
// the per-conversation session state machine and the progress analyzer
// that derives weaknesses and a learning path from accumulated mastery.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/teachthetutor/backend/internal/content"
	"github.com/teachthetutor/backend/internal/domain/concept"
	"github.com/teachthetutor/backend/internal/domain/mastery"
	"github.com/teachthetutor/backend/internal/matcher"
	"github.com/teachthetutor/backend/internal/scorer"
	"github.com/teachthetutor/backend/internal/store"
)

// Store is the mastery persistence the session depends on. Satisfied by
// *store.SQLiteStore; tests use an in-memory fake.
type Store interface {
	LoadAll(ctx context.Context) (map[string]mastery.Record, error)
	Get(ctx context.Context, conceptID string) (mastery.Record, error)
	Upsert(ctx context.Context, conceptID string, rec mastery.Record) error
}

// Session orchestrates one learner's conversation. Methods are invoked
// sequentially by the conversational runtime; the session itself holds
// no locks. The shared Store handles cross-session concurrency.
type Session struct {
	catalog  *content.Catalog
	store    Store
	notifier Notifier
	logger   *slog.Logger

	current    *concept.Concept
	mode       Mode
	quizCursor int
	pending    *concept.QuizItem // most recently served, awaiting an answer

	// Write-through cache so a failed upsert degrades to "saved locally
	// but not durably" instead of losing the event.
	records map[string]mastery.Record
}

// NewSession creates a session over a shared catalog and store.
func NewSession(catalog *content.Catalog, st Store, notifier Notifier, logger *slog.Logger) *Session {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Session{
		catalog:  catalog,
		store:    st,
		notifier: notifier,
		logger:   logger,
		records:  make(map[string]mastery.Record),
	}
}

// Mode returns the current tutoring mode.
func (s *Session) Mode() Mode { return s.mode }

// CurrentConcept returns the selected concept, or ok=false.
func (s *Session) CurrentConcept() (concept.Concept, bool) {
	if s.current == nil {
		return concept.Concept{}, false
	}
	return *s.current, true
}

// ListConcepts renders the catalog for the conversational layer.
func (s *Session) ListConcepts() string {
	return s.catalog.Listing()
}

// SelectConcept switches the session to the concept with the given id.
// The quiz cursor resets; the mode is kept.
func (s *Session) SelectConcept(id string) (concept.Concept, error) {
	c, err := s.catalog.FindByID(id)
	if err != nil {
		return concept.Concept{}, fmt.Errorf("%w: %q", ErrConceptNotFound, id)
	}
	s.current = &c
	s.quizCursor = 0
	s.pending = nil
	return c, nil
}

// SetMode validates and applies a mode, then notifies the voice
// collaborator. The notification is fire-and-forget.
func (s *Session) SetMode(raw string) (Mode, error) {
	m, err := ParseMode(raw)
	if err != nil {
		return ModeNone, err
	}
	s.mode = m
	s.notifier.ModeChanged(m)
	return m, nil
}

// ExplainResult is the payload for a learn-mode turn.
type ExplainResult struct {
	ConceptID string `json:"concept_id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Durable   bool   `json:"durable"`
}

// Explain returns the concept summary and counts the explanation.
// The running average is untouched: explaining is not a scored event.
func (s *Session) Explain(ctx context.Context) (ExplainResult, error) {
	if s.current == nil {
		return ExplainResult{}, ErrNoConceptSelected
	}

	durable := s.mutate(ctx, s.current.ID, func(r *mastery.Record) {
		r.TimesExplained++
	})

	return ExplainResult{
		ConceptID: s.current.ID,
		Title:     s.current.Title,
		Summary:   s.current.Summary,
		Durable:   durable,
	}, nil
}

// QuizPrompt is a quiz item with the correct index stripped.
type QuizPrompt struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Number   int      `json:"number"` // position within the concept's quiz, 0-based
}

// NextQuizItem serves the question at the cursor and advances it,
// wrapping around the concept's quiz items.
func (s *Session) NextQuizItem() (QuizPrompt, error) {
	if s.current == nil {
		return QuizPrompt{}, ErrNoConceptSelected
	}
	if !s.current.HasQuiz() {
		return QuizPrompt{}, ErrNoQuizAvailable
	}

	idx := s.quizCursor % len(s.current.Quiz)
	item := s.current.Quiz[idx]
	s.quizCursor = idx + 1
	s.pending = &item

	return QuizPrompt{Question: item.Question, Options: item.Options, Number: idx}, nil
}

// QuizResult reports the outcome of one answered question.
type QuizResult struct {
	Correct       bool   `json:"correct"`
	SelectedIndex int    `json:"selected_index"` // -1 when no tier matched
	CorrectIndex  int    `json:"correct_index"`
	CorrectOption string `json:"correct_option"`
	Feedback      string `json:"feedback"`
	Durable       bool   `json:"durable"`
}

// SubmitQuizAnswer matches the utterance against the most recently
// served question and folds the outcome (100 or 0) into the record.
func (s *Session) SubmitQuizAnswer(ctx context.Context, utterance string) (QuizResult, error) {
	if s.current == nil {
		return QuizResult{}, ErrNoConceptSelected
	}
	if s.pending == nil {
		return QuizResult{}, ErrNoQuestionPending
	}

	item := *s.pending
	s.pending = nil

	sel, matched := matcher.Match(item, utterance)
	if !matched {
		sel = -1
	}
	correct := matched && sel == item.CorrectIndex

	score := 0
	feedback := fmt.Sprintf("Not quite. Correct answer: %s.", item.Options[item.CorrectIndex])
	if correct {
		score = 100
		feedback = "Correct — well done!"
	}

	durable := s.mutate(ctx, s.current.ID, func(r *mastery.Record) {
		r.TimesQuizzed++
		r.Fold(score)
	})

	return QuizResult{
		Correct:       correct,
		SelectedIndex: sel,
		CorrectIndex:  item.CorrectIndex,
		CorrectOption: item.Options[item.CorrectIndex],
		Feedback:      feedback,
		Durable:       durable,
	}, nil
}

// TeachBackResult wraps the scorer output with the durability flag.
type TeachBackResult struct {
	scorer.Result
	Durable bool `json:"durable"`
}

// SubmitTeachBack scores the learner's own explanation against the
// concept summary and folds the score into the record.
func (s *Session) SubmitTeachBack(ctx context.Context, text string) (TeachBackResult, error) {
	if s.current == nil {
		return TeachBackResult{}, ErrNoConceptSelected
	}

	result := scorer.Score(s.current.Summary, text)

	durable := s.mutate(ctx, s.current.ID, func(r *mastery.Record) {
		r.TimesTaughtBack++
		r.Fold(result.Score)
	})

	return TeachBackResult{Result: result, Durable: durable}, nil
}

// mutate applies fn to the concept's record and upserts it immediately.
// A failed upsert keeps the in-memory record current, logs, and returns
// false so callers can say "saved locally but not durably".
func (s *Session) mutate(ctx context.Context, conceptID string, fn func(*mastery.Record)) bool {
	rec := s.record(ctx, conceptID)
	fn(&rec)
	s.records[conceptID] = rec

	if err := s.store.Upsert(ctx, conceptID, rec); err != nil {
		s.logger.Error("mastery upsert failed, progress held in memory only",
			"concept_id", conceptID,
			"error", err,
		)
		return false
	}
	return true
}

// record returns the current record for a concept: cache first, then the
// store, then a fresh zero record.
func (s *Session) record(ctx context.Context, conceptID string) mastery.Record {
	if rec, ok := s.records[conceptID]; ok {
		return rec
	}
	rec, err := s.store.Get(ctx, conceptID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("mastery read failed, starting from a fresh record",
				"concept_id", conceptID,
				"error", err,
			)
		}
		return mastery.Record{}
	}
	return rec
}
