// Package notify delivers mode-change events to the voice collaborator
// so it can switch its output profile. Delivery is fire-and-forget: the
// tutoring core never waits on it and never fails because of it.
package notify

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/teachthetutor/backend/internal/tutor"
	"github.com/teachthetutor/backend/internal/worker"
)

// voiceByMode maps each tutoring mode to its speech profile.
var voiceByMode = map[tutor.Mode]string{
	tutor.ModeLearn:     "en-US-matthew",
	tutor.ModeQuiz:      "en-US-alicia",
	tutor.ModeTeachBack: "en-US-ken",
}

// VoiceFor returns the speech profile for a mode, falling back to the
// learn voice.
func VoiceFor(mode tutor.Mode) string {
	if v, ok := voiceByMode[mode]; ok {
		return v
	}
	return voiceByMode[tutor.ModeLearn]
}

// LogNotifier just records mode switches; it is the default when no
// webhook is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) ModeChanged(mode tutor.Mode) {
	n.logger.Info("mode switched", "mode", string(mode), "voice", VoiceFor(mode))
}

// WebhookNotifier POSTs {mode, voice} to the voice collaborator. Posts
// run on a worker pool so a slow or dead endpoint never blocks a mode
// transition; failures are logged and dropped.
type WebhookNotifier struct {
	url    string
	client *http.Client
	pool   *worker.Pool[error]
	logger *slog.Logger
}

type modeChangedEvent struct {
	Mode  string `json:"mode"`
	Voice string `json:"voice"`
}

func NewWebhook(url string, logger *slog.Logger) *WebhookNotifier {
	n := &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
		pool:   worker.NewPool[error](1, 8),
		logger: logger,
	}

	go func() {
		for res := range n.pool.Results() {
			if res.Output != nil {
				logger.Warn("voice profile notification failed",
					"mode", res.JobID,
					"error", res.Output,
				)
			}
		}
	}()

	return n
}

func (n *WebhookNotifier) ModeChanged(mode tutor.Mode) {
	event := modeChangedEvent{Mode: string(mode), Voice: VoiceFor(mode)}

	n.pool.Submit(string(mode), func() error {
		body, err := json.Marshal(event)
		if err != nil {
			return err
		}
		resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
		if err != nil {
			return err
		}
		resp.Body.Close()
		return nil
	})
}

// Close flushes pending notifications and stops the pool.
func (n *WebhookNotifier) Close() {
	n.pool.Close()
}
