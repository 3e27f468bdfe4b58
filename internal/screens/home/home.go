package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/critterquiz/internal/quiz"
	"github.com/abhisek/critterquiz/internal/router"
	"github.com/abhisek/critterquiz/internal/screen"
	quizscreen "github.com/abhisek/critterquiz/internal/screens/quiz"
	"github.com/abhisek/critterquiz/internal/ui/components"
	"github.com/abhisek/critterquiz/internal/ui/theme"
)

const bannerArt = `  ___  ____  __  ____  ____  ____  ____
 / __)(  _ \(  )(_  _)(_  _)(  __)(  _ \
( (__  )   / )(   )(    )(   ) _)  )   /
 \___)(__\_)(__) (__)  (__) (____)(__\_)`

const bannerCompact = "C R I T T E R   Q U I Z"

// HomeScreen is the landing screen.
type HomeScreen struct {
	menu components.Menu

	// starting is set once a quiz screen has been requested and cleared
	// when the home screen is back on top.
	starting bool
}

var (
	_ screen.Screen  = (*HomeScreen)(nil)
	_ screen.Resumer = (*HomeScreen)(nil)
)

// New creates a HomeScreen whose first item starts a session of q.
func New(q *quiz.Quiz, deps quizscreen.Deps) *HomeScreen {
	h := &HomeScreen{}
	items := []components.MenuItem{
		{Label: "TAKE THE QUIZ", Action: func() tea.Cmd {
			if h.starting {
				return nil
			}
			h.starting = true
			next := quizscreen.New(q.Start(), deps)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// Resume re-enables the start action once the quiz has been left.
func (h *HomeScreen) Resume() {
	h.starting = false
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	banner := bannerArt
	if width < 48 || height < 22 {
		banner = bannerCompact
	}

	sections := []string{
		theme.Title.Render(banner),
		theme.Subtitle.Render("Five questions. One animal. Which one are you?"),
		h.menu.View(),
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
