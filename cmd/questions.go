package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/critterquiz/internal/quiz"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions and the animal each option scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		questions := quiz.DefaultQuestions()

		for i, q := range questions {
			fmt.Fprintf(out, "%d. %s\n", i+1, q.Text)
			for _, opt := range q.Options {
				fmt.Fprintf(out, "   %-40s  %s\n", opt.Label, opt.Animal)
			}
			fmt.Fprintln(out)
		}

		fmt.Fprintln(out, strings.Repeat("─", 50))
		fmt.Fprintf(out, "%d questions\n", len(questions))
		return nil
	},
}
