// tutorcli drives the tutoring engine from a terminal, without the voice
// pipeline: an interactive REPL over the same learn / quiz / teach_back
// loop, plus a scripted simulation for smoke-testing a content file.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teachthetutor/backend/internal/content"
	"github.com/teachthetutor/backend/internal/notify"
	"github.com/teachthetutor/backend/internal/simulation"
	"github.com/teachthetutor/backend/internal/store"
	"github.com/teachthetutor/backend/internal/tutor"
)

var rootCmd = &cobra.Command{
	Use:   "tutorcli",
	Short: "Teach-the-Tutor from the terminal",
	Long:  "Teach-the-Tutor — active recall tutoring (learn, quiz, teach_back) with per-concept mastery tracking.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted session against the content file",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, st, logger, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		return simulation.Run(cmd.Context(), catalog, st, notify.NewLog(logger), logger)
	},
}

func init() {
	rootCmd.PersistentFlags().String("content", "shared-data/tutor_content.json", "Path to the concept catalog JSON")
	rootCmd.PersistentFlags().String("db", "tutor_mastery.db", "Path to the SQLite mastery database")
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildDeps(cmd *cobra.Command) (*content.Catalog, *store.SQLiteStore, *slog.Logger, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	contentPath, _ := cmd.Flags().GetString("content")
	catalog, err := content.Load(contentPath)
	if err != nil {
		return nil, nil, nil, err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	st, err := store.NewSQLite(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	return catalog, st, logger, nil
}

func runREPL(cmd *cobra.Command) error {
	catalog, st, logger, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	session := tutor.NewSession(catalog, st, notify.NewLog(logger), logger)
	analyzer := tutor.NewAnalyzer(catalog, st)

	fmt.Println("Welcome to Teach-the-Tutor (CLI mode).")
	fmt.Println("Commands: learn | quiz | teach_back | list | concept <id or title> | report | weaknesses | path | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmdWord, arg, _ := strings.Cut(line, " ")
		switch strings.ToLower(cmdWord) {
		case "quit", "exit":
			fmt.Println("Goodbye!")
			return nil

		case "list":
			fmt.Println(session.ListConcepts())

		case "concept", "change":
			// Conversational lookup: id, title, or a title fragment.
			// Accepts both "concept loops" and "change concept loops".
			arg = strings.TrimSpace(strings.TrimPrefix(arg, "concept "))
			c, err := catalog.FindByTitleOrID(arg)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if _, err := session.SelectConcept(c.ID); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Concept changed to: %s\n", c.Title)

		case "learn", "quiz", "teach_back":
			if _, err := session.SetMode(cmdWord); err != nil {
				fmt.Println(err)
				continue
			}
			runMode(ctx, session, scanner)

		case "switch":
			// "switch to quiz" or "switch quiz"
			mode := strings.TrimSpace(strings.TrimPrefix(arg, "to "))
			if _, err := session.SetMode(mode); err != nil {
				fmt.Println(err)
				continue
			}
			runMode(ctx, session, scanner)

		case "report":
			printReport(ctx, analyzer)

		case "weaknesses":
			printWeaknesses(ctx, analyzer)

		case "path":
			printPath(ctx, analyzer)

		case "help":
			fmt.Println("Commands: learn | quiz | teach_back | list | concept <id or title> | report | weaknesses | path | quit")

		default:
			fmt.Println("Unknown command. Type 'help'.")
		}
	}
}

// runMode performs one turn of the active mode.
func runMode(ctx context.Context, session *tutor.Session, scanner *bufio.Scanner) {
	switch session.Mode() {
	case tutor.ModeLearn:
		res, err := session.Explain(ctx)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("\n--- Learn: %s ---\n%s\n", res.Title, res.Summary)
		if !res.Durable {
			fmt.Println("(saved locally but not durably)")
		}

	case tutor.ModeQuiz:
		prompt, err := session.NextQuizItem()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("\n--- Quiz ---\n%s\n", prompt.Question)
		for i, opt := range prompt.Options {
			fmt.Printf("  %c) %s\n", 'a'+i, opt)
		}
		fmt.Print("You> ")
		if !scanner.Scan() {
			return
		}
		result, err := session.SubmitQuizAnswer(ctx, scanner.Text())
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(result.Feedback)

	case tutor.ModeTeachBack:
		c, _ := session.CurrentConcept()
		prompt := c.SampleQuestion
		if prompt == "" {
			prompt = "Explain this concept in your own words."
		}
		fmt.Printf("\n--- Teach Back: %s ---\n%s\n", c.Title, prompt)
		fmt.Print("You> ")
		if !scanner.Scan() {
			return
		}
		result, err := session.SubmitTeachBack(ctx, scanner.Text())
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Score: %d%%\nCoach feedback: %s\n", result.Score, result.Feedback)
	}
}

func printReport(ctx context.Context, analyzer *tutor.Analyzer) {
	report, err := analyzer.Report(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(report) == 0 {
		fmt.Println("No mastery data yet.")
		return
	}
	for _, line := range report {
		fmt.Printf("%s: %s (avg %.0f%%, %d attempts)\n", line.Title, line.Status, line.AvgScore, line.Attempts)
	}
}

func printWeaknesses(ctx context.Context, analyzer *tutor.Analyzer) {
	weak, err := analyzer.Weaknesses(ctx, 3)
	if errors.Is(err, tutor.ErrNoScoredAttempts) {
		fmt.Println("No scored attempts yet. Try taking some quizzes!")
		return
	}
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Focus on these concepts:")
	for i, line := range weak {
		fmt.Printf("%d. %s: %.0f%% avg (%d attempts)\n", i+1, line.Title, line.AvgScore, line.Attempts)
	}
}

func printPath(ctx context.Context, analyzer *tutor.Analyzer) {
	steps, err := analyzer.LearningPath(ctx, []string{"variables", "conditions", "loops", "functions"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, step := range steps {
		fmt.Printf("%d. %s: %s\n", i+1, step.Title, step.Status)
		if step.Hint != "" {
			fmt.Printf("   -> %s\n", step.Hint)
		}
	}
}
