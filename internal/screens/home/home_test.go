package home

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/critterquiz/internal/quiz"
	"github.com/abhisek/critterquiz/internal/router"
	quizscreen "github.com/abhisek/critterquiz/internal/screens/quiz"
	"github.com/abhisek/critterquiz/internal/shuffle"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestHome(t *testing.T) *HomeScreen {
	t.Helper()
	q, err := quiz.New(quiz.DefaultQuestions())
	if err != nil {
		t.Fatal(err)
	}
	return New(q, quizscreen.Deps{})
}

func TestHome_StartPushesQuiz(t *testing.T) {
	h := newTestHome(t)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	qs, ok := msg.Screen.(*quizscreen.QuizScreen)
	if !ok {
		t.Fatalf("expected QuizScreen, got %T", msg.Screen)
	}
	if qs.State().Answered() != 0 {
		t.Error("expected a fresh session")
	}
}

func TestHome_EachStartIsNewSession(t *testing.T) {
	h := newTestHome(t)

	ids := map[string]bool{}
	for range 3 {
		_, cmd := h.Update(specialKey(tea.KeyEnter))
		qs := cmd().(router.PushScreenMsg).Screen.(*quizscreen.QuizScreen)
		ids[qs.State().ID()] = true
		h.Resume()
	}
	if len(ids) != 3 {
		t.Errorf("expected 3 distinct sessions, got %d", len(ids))
	}
}

func TestHome_DoubleEnterStartsOneSession(t *testing.T) {
	var ids int
	q, err := quiz.New(quiz.DefaultQuestions(),
		quiz.WithRand(shuffle.NewSeeded(7)),
		quiz.WithSessionIDs(func() string {
			ids++
			return fmt.Sprintf("session-%d", ids)
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	h := New(q, quizscreen.Deps{})

	_, first := h.Update(specialKey(tea.KeyEnter))
	_, second := h.Update(specialKey(tea.KeyEnter))

	if first == nil {
		t.Fatal("expected a command on the first Enter")
	}
	if second != nil {
		t.Error("second Enter before the push lands should do nothing")
	}
	if ids != 1 {
		t.Errorf("built %d sessions, want 1", ids)
	}

	// The session is built when Enter is handled, not inside the command.
	a := first().(router.PushScreenMsg).Screen
	b := first().(router.PushScreenMsg).Screen
	if a != b || ids != 1 {
		t.Errorf("command rebuilt the session: sessions=%d", ids)
	}
}

func TestHome_ResumeAllowsNewStart(t *testing.T) {
	h := newTestHome(t)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	h.Resume()

	_, cmd = h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Error("Enter after Resume should start a new session")
	}
}

func TestHome_Exit(t *testing.T) {
	h := newTestHome(t)
	h.Update(specialKey(tea.KeyDown))

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestHome_View(t *testing.T) {
	h := newTestHome(t)
	view := h.View(80, 24)
	if !strings.Contains(view, "TAKE THE QUIZ") {
		t.Error("view missing menu")
	}
	if !strings.Contains(h.View(40, 24), bannerCompact) {
		t.Error("narrow view should use the compact banner")
	}
}
