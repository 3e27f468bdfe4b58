package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/critterquiz/internal/quiz"
)

// Color palette: warm, outdoorsy
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#10B981") // Meadow green
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Per-animal accents used on the result screen.
var animalColors = map[quiz.Animal]color.Color{
	quiz.Cat:     lipgloss.Color("#A78BFA"), // Lilac
	quiz.Dog:     lipgloss.Color("#F59E0B"), // Golden
	quiz.Fox:     lipgloss.Color("#F97316"), // Rust
	quiz.Hamster: lipgloss.Color("#FBBF24"), // Butter
	quiz.Horse:   lipgloss.Color("#B45309"), // Chestnut
}

// AnimalColor returns the accent color for an animal.
func AnimalColor(a quiz.Animal) color.Color {
	if c, ok := animalColors[a]; ok {
		return c
	}
	return Text
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	StatusOK = lipgloss.NewStyle().
			Foreground(Success)

	StatusErr = lipgloss.NewStyle().
			Foreground(Error)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 3)
)
