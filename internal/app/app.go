package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/critterquiz/internal/quiz"
	"github.com/abhisek/critterquiz/internal/router"
	"github.com/abhisek/critterquiz/internal/screen"
	"github.com/abhisek/critterquiz/internal/screens/home"
	quizscreen "github.com/abhisek/critterquiz/internal/screens/quiz"
	"github.com/abhisek/critterquiz/internal/share"
	"github.com/abhisek/critterquiz/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	Quiz     *quiz.Quiz
	Logger   *slog.Logger
	Sharer   share.Sharer
	ShareURL string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	deps := quizscreen.Deps{
		Logger:   opts.Logger,
		Sharer:   opts.Sharer,
		ShareURL: opts.ShareURL,
	}
	return AppModel{
		router: router.New(home.New(opts.Quiz, deps)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame as a string.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()

	var progress layout.Progress
	if pp, ok := active.(screen.ProgressProvider); ok {
		progress = pp.Progress()
	}
	header := layout.RenderHeader(active.Title(), progress, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Quiz == nil {
		return fmt.Errorf("run app: %w", quiz.ErrNoQuestions)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		opts.Logger.Error("program exited with error", "error", err)
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
