package quiz

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/critterquiz/internal/quiz"
	"github.com/abhisek/critterquiz/internal/router"
	"github.com/abhisek/critterquiz/internal/screen"
	"github.com/abhisek/critterquiz/internal/screens/result"
	"github.com/abhisek/critterquiz/internal/ui/components"
	"github.com/abhisek/critterquiz/internal/ui/layout"
	"github.com/abhisek/critterquiz/internal/ui/theme"
)

var keyRestart = key.NewBinding(
	key.WithKeys("r"),
	key.WithHelp("R", "Restart"),
)

// QuizScreen asks one question at a time until the session completes, then
// hands over to the result screen.
type QuizScreen struct {
	state  qz.State
	deps   Deps
	list   components.OptionList
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ProgressProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for a freshly started session.
func New(state qz.State, deps Deps) *QuizScreen {
	s := &QuizScreen{state: state, deps: deps}
	s.resetList()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	s.deps.logger().Info("session started",
		"session_id", s.state.ID(),
		"questions", s.state.Total())
	return nil
}

func (s *QuizScreen) Title() string {
	return "Which animal are you?"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "1-5", Description: "Pick"},
		{Key: "Enter", Description: "Answer"},
		{Key: keyRestart.Help().Key, Description: keyRestart.Help().Desc},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

func (s *QuizScreen) Progress() layout.Progress {
	return layout.Progress{Answered: s.state.Answered(), Total: s.state.Total()}
}

// State returns the current session state.
func (s *QuizScreen) State() qz.State {
	return s.state
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.state.Completed() {
		return s, nil
	}

	if key.Matches(kmsg, keyRestart) {
		s.deps.logger().Info("session restarted",
			"session_id", s.state.ID(),
			"answered", s.state.Answered())
		s.state = s.state.Retake()
		s.resetList()
		return s, s.Init()
	}

	s.list = s.list.Update(kmsg)
	if s.list.Chosen < 0 {
		return s, nil
	}
	return s.answer(s.list.Chosen)
}

// answer records the option at index i of the current prompt.
func (s *QuizScreen) answer(i int) (screen.Screen, tea.Cmd) {
	prompt, err := s.state.Current()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	opt := prompt.Options[i]

	next, err := s.state.Answer(opt.Animal)
	if err != nil {
		s.deps.logger().Error("answer rejected",
			"session_id", s.state.ID(),
			"animal", opt.Animal.String(),
			"error", err)
		s.errMsg = err.Error()
		return s, nil
	}

	s.deps.logger().Debug("answer recorded",
		"session_id", next.ID(),
		"question", prompt.Index,
		"animal", opt.Animal.String())
	s.state = next
	s.errMsg = ""

	if !next.Completed() {
		s.resetList()
		return s, nil
	}

	animal, _ := next.Result()
	s.deps.logger().Info("session completed",
		"session_id", next.ID(),
		"result", animal.String(),
		"scoring", next.Scoring().String())

	res := result.New(next, result.Options{
		Logger:   s.deps.logger(),
		Sharer:   s.deps.Sharer,
		ShareURL: s.deps.ShareURL,
		Retake: func(done qz.State) screen.Screen {
			return New(done.Retake(), s.deps)
		},
	})
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: res} }
}

// resetList rebuilds the option list for the current question.
func (s *QuizScreen) resetList() {
	prompt, err := s.state.Current()
	if err != nil {
		s.list = components.NewOptionList(nil)
		return
	}
	labels := make([]string, len(prompt.Options))
	for i, opt := range prompt.Options {
		labels[i] = opt.Label
	}
	s.list = components.NewOptionList(labels)
}

func (s *QuizScreen) View(width, height int) string {
	prompt, err := s.state.Current()
	if err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nAll done!")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.list.View()))
	b.WriteString("\n")

	progress := components.ProgressBar{
		Value: s.state.Answered(),
		Max:   s.state.Total(),
		Width: min(width-8, 50),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.StatusErr.Render(s.errMsg)))
	}

	return b.String()
}
