package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/critterquiz/internal/ui/layout"
)

// Screen is one page of the app managed by the router.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ProgressProvider is implemented by screens that show the question counter
// in the header.
type ProgressProvider interface {
	Progress() layout.Progress
}

// Resumer is implemented by screens that need to know when they become the
// top of the stack again after the screens above them were popped.
type Resumer interface {
	Resume()
}
