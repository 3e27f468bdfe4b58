package cmd

import (
	"fmt"

	"github.com/abhisek/critterquiz/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "critterquiz",
	Short: "Find out which animal you are",
	Long:  "Critter Quiz: a five-question terminal personality quiz that tells you which animal you are.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for option shuffling (overrides CRITTERQUIZ_SEED env var)")
	rootCmd.PersistentFlags().String("share-url", "", "Link appended to the share message (overrides CRITTERQUIZ_SHARE_URL env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides CRITTERQUIZ_LOG env var)")
	rootCmd.PersistentFlags().Bool("count-final-answer", false, "Count the last answer when picking the result")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the environment config and applies any flags the
// user set explicitly on top of it.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("share-url") {
		cfg.ShareURL, _ = flags.GetString("share-url")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("count-final-answer") {
		cfg.CountFinalAnswer, _ = flags.GetBool("count-final-answer")
	}
	return cfg, nil
}
