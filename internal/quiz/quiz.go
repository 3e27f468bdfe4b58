package quiz

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/critterquiz/internal/shuffle"
)

var (
	ErrNoQuestions   = errors.New("quiz has no questions")
	ErrCompleted     = errors.New("quiz already completed")
	ErrUnknownAnimal = errors.New("unknown animal")
)

// Scoring selects which tally the final result is computed from.
type Scoring int

const (
	// ScoreBeforeFinalAnswer picks the winner from the tally as it stood
	// before the last answer was counted. It is the default.
	ScoreBeforeFinalAnswer Scoring = iota

	// ScoreAllAnswers counts every answer, including the last one.
	ScoreAllAnswers
)

func (s Scoring) String() string {
	switch s {
	case ScoreBeforeFinalAnswer:
		return "before-final-answer"
	case ScoreAllAnswers:
		return "all-answers"
	default:
		return fmt.Sprintf("Scoring(%d)", int(s))
	}
}

// Quiz holds the read-only configuration shared by every session.
type Quiz struct {
	questions []Question
	rng       shuffle.Rand
	scoring   Scoring
	newID     func() string
}

// QuizOption configures a Quiz.
type QuizOption func(*Quiz)

// WithRand sets the randomness source used to shuffle options.
func WithRand(rng shuffle.Rand) QuizOption {
	return func(q *Quiz) {
		if rng != nil {
			q.rng = rng
		}
	}
}

// WithScoring sets the result scoring policy.
func WithScoring(s Scoring) QuizOption {
	return func(q *Quiz) { q.scoring = s }
}

// WithSessionIDs overrides how session IDs are generated.
func WithSessionIDs(fn func() string) QuizOption {
	return func(q *Quiz) {
		if fn != nil {
			q.newID = fn
		}
	}
}

// New creates a Quiz over the given questions.
func New(questions []Question, opts ...QuizOption) (*Quiz, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	q := &Quiz{
		questions: cloneQuestions(questions),
		rng:       shuffle.Default(),
		scoring:   ScoreBeforeFinalAnswer,
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

// Questions returns a copy of the question bank.
func (q *Quiz) Questions() []Question {
	return cloneQuestions(q.questions)
}

func cloneQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, question := range questions {
		out[i] = Question{Text: question.Text, Options: slices.Clone(question.Options)}
	}
	return out
}

// Scoring returns the configured scoring policy.
func (q *Quiz) Scoring() Scoring {
	return q.scoring
}

// Start begins a fresh session with every question's options shuffled.
func (q *Quiz) Start() State {
	options := make([][]Option, len(q.questions))
	for i, question := range q.questions {
		options[i] = shuffle.Shuffle(q.rng, question.Options)
	}
	return State{
		quiz:    q,
		id:      q.newID(),
		options: options,
	}
}
