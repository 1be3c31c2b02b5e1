package tutor

import "errors"

// User-facing error taxonomy. Every one of these is recovered at the API
// or CLI boundary and rendered as a clarifying hint; none may terminate
// the process.
var (
	ErrConceptNotFound   = errors.New("concept not found")
	ErrNoConceptSelected = errors.New("no concept selected")
	ErrInvalidMode       = errors.New("invalid mode")
	ErrNoQuizAvailable   = errors.New("no quiz available for this concept")
	ErrNoQuestionPending = errors.New("no quiz question has been served yet")
	ErrNoScoredAttempts  = errors.New("no scored attempts yet")
)
