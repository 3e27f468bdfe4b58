package quiz

import (
	"io"
	"log/slog"

	"github.com/abhisek/critterquiz/internal/share"
)

// Deps are the collaborators shared by the quiz and result screens.
type Deps struct {
	Logger   *slog.Logger
	Sharer   share.Sharer
	ShareURL string
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}
