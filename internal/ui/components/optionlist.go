package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/critterquiz/internal/ui/theme"
)

// OptionList is a numbered single-choice selector. Unlike a menu it does
// not run actions; the owner reads Chosen after each update.
type OptionList struct {
	Options  []string
	Selected int
	Chosen   int // -1 until the player picks an option
}

// NewOptionList creates a list with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options: options,
		Chosen:  -1,
	}
}

// Update moves the cursor or records a choice. Digits 1-9 choose directly.
// Chosen only reports a choice made by this update.
func (o OptionList) Update(msg tea.Msg) OptionList {
	o.Chosen = -1
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(o.Options) == 0 {
		return o
	}

	switch {
	case key.Matches(kmsg, KeyUp):
		if o.Selected > 0 {
			o.Selected--
		}
	case key.Matches(kmsg, KeyDown):
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case key.Matches(kmsg, KeySelect):
		o.Chosen = o.Selected
	default:
		if i := digitIndex(kmsg.String()); i >= 0 && i < len(o.Options) {
			o.Selected = i
			o.Chosen = i
		}
	}
	return o
}

// View renders the options, highlighting the cursor row.
func (o OptionList) View() string {
	var b strings.Builder
	for i, opt := range o.Options {
		prefix := "  "
		style := theme.Unselected
		if i == o.Selected {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)))
		b.WriteString("\n")
	}
	return b.String()
}
