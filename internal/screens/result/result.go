package result

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/critterquiz/internal/quiz"
	"github.com/abhisek/critterquiz/internal/router"
	"github.com/abhisek/critterquiz/internal/screen"
	"github.com/abhisek/critterquiz/internal/share"
	"github.com/abhisek/critterquiz/internal/ui/components"
	"github.com/abhisek/critterquiz/internal/ui/layout"
	"github.com/abhisek/critterquiz/internal/ui/theme"
)

var errNoSharer = errors.New("sharing is not available")

// Options configures a ResultScreen.
type Options struct {
	Logger   *slog.Logger
	Sharer   share.Sharer
	ShareURL string

	// Retake builds the screen for a new session. It receives the completed
	// state so the new session reuses the same quiz configuration.
	Retake func(quiz.State) screen.Screen
}

// sharedMsg reports the outcome of a share action.
type sharedMsg struct {
	Err error
}

// ResultScreen reveals the winning animal and offers retake and share.
type ResultScreen struct {
	state   quiz.State
	animal  quiz.Animal
	opts    Options
	message string
	menu    components.Menu
	status  string
	failed  bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a completed session.
func New(state quiz.State, opts Options) *ResultScreen {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	animal, _ := state.Result()
	r := &ResultScreen{
		state:   state,
		animal:  animal,
		opts:    opts,
		message: share.Message(animal, opts.ShareURL),
	}

	r.menu = components.NewMenu([]components.MenuItem{
		{Label: "RETAKE QUIZ", Action: r.retake},
		{Label: "COPY SHARE MESSAGE", Action: r.share},
		{Label: "BACK TO HOME", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
	})
	return r
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Your Result"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

// Message returns the share message for this result.
func (r *ResultScreen) Message() string {
	return r.message
}

func (r *ResultScreen) retake() tea.Cmd {
	r.opts.Logger.Info("retake requested",
		"session_id", r.state.ID(),
		"result", r.animal.String())
	if r.opts.Retake == nil {
		return nil
	}
	next := r.opts.Retake(r.state)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (r *ResultScreen) share() tea.Cmd {
	sharer, msg := r.opts.Sharer, r.message
	return func() tea.Msg {
		if sharer == nil {
			return sharedMsg{Err: errNoSharer}
		}
		return sharedMsg{Err: sharer.Share(msg)}
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sharedMsg:
		if msg.Err != nil {
			r.opts.Logger.Warn("share failed",
				"session_id", r.state.ID(),
				"error", msg.Err)
			r.status = fmt.Sprintf("Could not copy: %v", msg.Err)
			r.failed = true
			return r, nil
		}
		r.opts.Logger.Info("result shared",
			"session_id", r.state.ID(),
			"result", r.animal.String())
		r.status = "Copied to clipboard!"
		r.failed = false
		return r, nil
	}

	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	var b strings.Builder
	accent := theme.AnimalColor(r.animal)

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(accent).
		Bold(true).
		Render(fmt.Sprintf("You are a %s!", r.animal)))
	b.WriteString("\n\n")

	if art := renderArt(r.animal); art != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(accent).Render(art)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.renderBreakdown(min(width-8, 44))))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(r.message)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.menu.View()))

	if r.status != "" {
		style := theme.StatusOK
		if r.failed {
			style = theme.StatusErr
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(r.status)))
	}

	return b.String()
}

// renderBreakdown draws one bar per animal, in canonical order.
func (r *ResultScreen) renderBreakdown(width int) string {
	tally := r.state.Tally()
	var b strings.Builder
	for _, a := range quiz.Animals() {
		bar := components.ProgressBar{
			Label:      a.DisplayName(),
			LabelWidth: 8,
			Value:      tally.Get(a),
			Max:        r.state.Total(),
			Width:      width,
		}
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	return b.String()
}
