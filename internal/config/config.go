package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/critterquiz/internal/quiz"
	"github.com/abhisek/critterquiz/internal/shuffle"
)

// Config holds runtime settings. Command-line flags override these values.
type Config struct {
	// ShareURL is appended to the share message. Empty means no link.
	ShareURL string `env:"CRITTERQUIZ_SHARE_URL"`

	// Seed makes option shuffling reproducible. Zero means unseeded.
	Seed uint64 `env:"CRITTERQUIZ_SEED"`

	// LogFile receives structured logs. Empty disables logging.
	LogFile string `env:"CRITTERQUIZ_LOG"`

	// CountFinalAnswer includes the last answer when picking the result.
	CountFinalAnswer bool `env:"CRITTERQUIZ_COUNT_FINAL_ANSWER" envDefault:"false"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Rand returns the shuffle source described by the config.
func (c Config) Rand() shuffle.Rand {
	if c.Seed == 0 {
		return shuffle.Default()
	}
	return shuffle.NewSeeded(c.Seed)
}

// Scoring returns the result scoring policy described by the config.
func (c Config) Scoring() quiz.Scoring {
	if c.CountFinalAnswer {
		return quiz.ScoreAllAnswers
	}
	return quiz.ScoreBeforeFinalAnswer
}

// NewQuiz builds a quiz over the built-in questions using the config.
func (c Config) NewQuiz() (*quiz.Quiz, error) {
	return quiz.New(quiz.DefaultQuestions(),
		quiz.WithRand(c.Rand()),
		quiz.WithScoring(c.Scoring()),
	)
}

// OpenLogger returns a logger writing to LogFile, or a discarding logger
// when no file is configured. The returned close func is never nil.
func (c Config) OpenLogger() (*slog.Logger, func() error, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}
