package quiz

import (
	"fmt"
	"slices"
)

// Prompt is the question currently shown to the player.
type Prompt struct {
	Index   int
	Text    string
	Options []Option
}

// State is a snapshot of one quiz session. Transitions return a new State
// and never modify the receiver, so a caller may keep old states around.
//
// The zero State is not usable; obtain one from Quiz.Start.
type State struct {
	quiz    *Quiz
	id      string
	index   int
	tally   Tally
	options [][]Option // shuffled once per session, shared between states

	completed bool
	result    Animal
}

// ID identifies the session. Retake produces a new ID.
func (s State) ID() string {
	return s.id
}

// Answered returns how many questions have been answered.
func (s State) Answered() int {
	return s.index
}

// Total returns the number of questions in the session.
func (s State) Total() int {
	if s.quiz == nil {
		return 0
	}
	return len(s.quiz.questions)
}

// Scoring returns the scoring policy the result is computed with.
func (s State) Scoring() Scoring {
	if s.quiz == nil {
		return ScoreBeforeFinalAnswer
	}
	return s.quiz.scoring
}

// Tally returns a copy of the current scores.
func (s State) Tally() Tally {
	return s.tally
}

// Completed reports whether every question has been answered.
func (s State) Completed() bool {
	return s.completed
}

// Result returns the winning animal once the session is completed.
func (s State) Result() (Animal, bool) {
	return s.result, s.completed
}

// Current returns the question awaiting an answer.
func (s State) Current() (Prompt, error) {
	if s.quiz == nil {
		return Prompt{}, ErrNoQuestions
	}
	if s.completed {
		return Prompt{}, ErrCompleted
	}
	q := s.quiz.questions[s.index]
	return Prompt{
		Index:   s.index,
		Text:    q.Text,
		Options: slices.Clone(s.options[s.index]),
	}, nil
}

// Answer records an answer for the current question and returns the next
// state. Answering the last question completes the session.
func (s State) Answer(a Animal) (State, error) {
	if s.quiz == nil {
		return s, ErrNoQuestions
	}
	if s.completed {
		return s, ErrCompleted
	}
	if !a.Valid() {
		return s, fmt.Errorf("%w: %d", ErrUnknownAnimal, int(a))
	}

	before := s.tally
	next := s
	next.tally = s.tally.inc(a)
	next.index = s.index + 1

	if next.index < len(s.quiz.questions) {
		return next, nil
	}

	scored := next.tally
	if s.quiz.scoring == ScoreBeforeFinalAnswer {
		scored = before
	}
	next.completed = true
	next.result = scored.Winner()
	return next, nil
}

// Retake discards the session and starts a new one with a fresh shuffle.
// On the zero State it returns the zero State.
func (s State) Retake() State {
	if s.quiz == nil {
		return s
	}
	return s.quiz.Start()
}
