package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/critterquiz/internal/quiz"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"CRITTERQUIZ_SHARE_URL",
		"CRITTERQUIZ_SEED",
		"CRITTERQUIZ_LOG",
		"CRITTERQUIZ_COUNT_FINAL_ANSWER",
	} {
		t.Setenv(k, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
	assert.Equal(t, quiz.ScoreBeforeFinalAnswer, cfg.Scoring())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CRITTERQUIZ_SHARE_URL", "https://example.com/q")
	t.Setenv("CRITTERQUIZ_SEED", "1234")
	t.Setenv("CRITTERQUIZ_LOG", "/tmp/critterquiz.log")
	t.Setenv("CRITTERQUIZ_COUNT_FINAL_ANSWER", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/q", cfg.ShareURL)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, "/tmp/critterquiz.log", cfg.LogFile)
	assert.True(t, cfg.CountFinalAnswer)
	assert.Equal(t, quiz.ScoreAllAnswers, cfg.Scoring())
}

func TestLoad_BadSeed(t *testing.T) {
	t.Setenv("CRITTERQUIZ_SEED", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewQuiz_SeededIsReproducible(t *testing.T) {
	cfg := Config{Seed: 7}

	q1, err := cfg.NewQuiz()
	require.NoError(t, err)
	q2, err := cfg.NewQuiz()
	require.NoError(t, err)

	p1, err := q1.Start().Current()
	require.NoError(t, err)
	p2, err := q2.Start().Current()
	require.NoError(t, err)
	assert.Equal(t, p1.Options, p2.Options)
}

func TestOpenLogger_Discard(t *testing.T) {
	logger, closeFn, err := Config{}.OpenLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestOpenLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quiz.log")

	logger, closeFn, err := Config{LogFile: path}.OpenLogger()
	require.NoError(t, err)
	logger.Info("session started", "session_id", "abc")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Contains(t, string(data), "session_id=abc")
}
