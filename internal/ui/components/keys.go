package components

import "charm.land/bubbles/v2/key"

// Shared key bindings for list-style components.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
	KeySelect = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "select"),
	)
)

// digitIndex maps "1".."9" to a zero-based index. It returns -1 otherwise.
func digitIndex(s string) int {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}
