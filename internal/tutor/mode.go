package tutor

import (
	"fmt"
	"strings"
)

// Mode is a tutoring mode. It drives which scorer handles the next
// utterance and which voice profile the speech collaborator uses.
type Mode string

const (
	ModeNone      Mode = ""
	ModeLearn     Mode = "learn"
	ModeQuiz      Mode = "quiz"
	ModeTeachBack Mode = "teach_back"
)

// ParseMode validates raw conversational input as a mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLearn, ModeQuiz, ModeTeachBack:
		return m, nil
	default:
		return ModeNone, fmt.Errorf("%w: %q (choose learn, quiz, or teach_back)", ErrInvalidMode, s)
	}
}

// Notifier receives mode-change events so the voice collaborator can
// swap its output profile. Calls are fire-and-forget: implementations
// must not block and their failures never fail a mode transition.
type Notifier interface {
	ModeChanged(mode Mode)
}

// NopNotifier ignores every event.
type NopNotifier struct{}

func (NopNotifier) ModeChanged(Mode) {}
