package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/abhisek/critterquiz/internal/quiz"
	"github.com/abhisek/critterquiz/internal/share"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <animal>...",
	Short: "Score a full set of answers without the TUI",
	Long: `Run a quiz session headlessly, answering each question with the given
animal in order, and print the tally and the result.

Animals: cat, dog, fox, hamster, horse.`,
	Example: "  critterquiz score dog dog dog cat cat",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		q, err := cfg.NewQuiz()
		if err != nil {
			return fmt.Errorf("build quiz: %w", err)
		}

		answers, err := parseAnswers(args)
		if err != nil {
			return err
		}
		final, err := playAnswers(q, answers)
		if err != nil {
			return err
		}
		return printScore(cmd.OutOrStdout(), final, cfg.ShareURL)
	},
}

func parseAnswers(args []string) ([]quiz.Animal, error) {
	answers := make([]quiz.Animal, 0, len(args))
	for _, arg := range args {
		a, err := quiz.ParseAnimal(arg)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

// playAnswers runs a fresh session of q to completion with answers.
func playAnswers(q *quiz.Quiz, answers []quiz.Animal) (quiz.State, error) {
	if want := len(q.Questions()); len(answers) != want {
		return quiz.State{}, fmt.Errorf("need exactly %d answers, got %d", want, len(answers))
	}

	st := q.Start()
	for i, a := range answers {
		next, err := st.Answer(a)
		if err != nil {
			return quiz.State{}, fmt.Errorf("answer %d: %w", i+1, err)
		}
		st = next
	}
	return st, nil
}

func printScore(out io.Writer, st quiz.State, shareURL string) error {
	result, ok := st.Result()
	if !ok {
		return errors.New("print score: session not completed")
	}

	tally := st.Tally()
	for _, a := range quiz.Animals() {
		fmt.Fprintf(out, "%-8s %d\n", a, tally.Get(a))
	}
	fmt.Fprintf(out, "\nscoring: %s\n", st.Scoring())
	fmt.Fprintf(out, "result:  %s\n", result)
	fmt.Fprintf(out, "share:   %s\n", share.Message(result, shareURL))
	return nil
}
