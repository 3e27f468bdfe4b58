package cmd

import (
	"fmt"

	"github.com/abhisek/critterquiz/internal/app"
	"github.com/abhisek/critterquiz/internal/share"
	"github.com/spf13/cobra"
)

// runApp resolves config, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := cfg.OpenLogger()
	if err != nil {
		return fmt.Errorf("open logger: %w", err)
	}
	defer closeLog()

	q, err := cfg.NewQuiz()
	if err != nil {
		return fmt.Errorf("build quiz: %w", err)
	}

	logger.Info("starting critterquiz",
		"version", version,
		"scoring", q.Scoring().String(),
		"seeded", cfg.Seed != 0,
	)

	return app.Run(app.Options{
		Quiz:     q,
		Logger:   logger,
		Sharer:   share.NewClipboard(),
		ShareURL: cfg.ShareURL,
	})
}
