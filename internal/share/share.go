package share

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/abhisek/critterquiz/internal/quiz"
)

// ErrClipboardUnavailable is returned when the host has no clipboard utility.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Sharer hands a share message to something outside the app.
type Sharer interface {
	Share(text string) error
}

// Message builds the text a player shares for their result.
func Message(a quiz.Animal, url string) string {
	msg := fmt.Sprintf("I am a %s!", a)
	if u := strings.TrimSpace(url); u != "" {
		msg += " " + u
	}
	return msg
}

// Clipboard copies share messages to the system clipboard.
type Clipboard struct {
	write       func(string) error
	unsupported bool
}

var _ Sharer = (*Clipboard)(nil)

// NewClipboard returns a Sharer backed by the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

func (c *Clipboard) Share(text string) error {
	if c.unsupported {
		return ErrClipboardUnavailable
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
