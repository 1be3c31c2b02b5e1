// internal/simulation/simulation.go
package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/teachthetutor/backend/internal/content"
	"github.com/teachthetutor/backend/internal/tutor"
)

// Run walks one scripted learner through the full loop (learn, quiz,
// teach-back, then the analytics) and prints the transcript. Useful for
// exercising the engine end to end without a voice frontend.
func Run(ctx context.Context, catalog *content.Catalog, st tutor.Store, notifier tutor.Notifier, logger *slog.Logger) error {
	if catalog.Len() == 0 {
		return errors.New("simulation needs a non-empty catalog")
	}

	session := tutor.NewSession(catalog, st, notifier, logger)
	first := catalog.Concepts()[0]

	c, err := session.SelectConcept(first.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Concept selected: %s\n", c.Title)

	// Learn
	if _, err := session.SetMode("learn"); err != nil {
		return err
	}
	explained, err := session.Explain(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\n--- Learn: %s ---\n%s\n", explained.Title, explained.Summary)

	// Quiz: answer the first question with the correct option verbatim,
	// cheating off the catalog the way a scripted learner can.
	if c.HasQuiz() {
		if _, err := session.SetMode("quiz"); err != nil {
			return err
		}
		prompt, err := session.NextQuizItem()
		if err != nil {
			return err
		}
		fmt.Printf("\n--- Quiz ---\nQ: %s\n", prompt.Question)

		answer := c.Quiz[prompt.Number].Options[c.Quiz[prompt.Number].CorrectIndex]
		result, err := session.SubmitQuizAnswer(ctx, answer)
		if err != nil {
			return err
		}
		fmt.Printf("A: %q -> %s\n", answer, result.Feedback)
	}

	// Teach back the summary itself; the score lands near the top.
	if _, err := session.SetMode("teach_back"); err != nil {
		return err
	}
	tb, err := session.SubmitTeachBack(ctx, c.Summary)
	if err != nil {
		return err
	}
	fmt.Printf("\n--- Teach-back ---\nScore: %d\nFeedback: %s\n", tb.Score, tb.Feedback)

	// Analytics over everything persisted so far.
	analyzer := tutor.NewAnalyzer(catalog, st)
	report, err := analyzer.Report(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\n--- Report ---\n")
	for _, line := range report {
		fmt.Printf("%s: %s (avg %.0f%%)\n", line.Title, line.Status, line.AvgScore)
	}

	return nil
}
