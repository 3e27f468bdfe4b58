package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/critterquiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	s2 := &stubScreen{title: "quiz"}
	r.Update(PushScreenMsg{Screen: s2})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopNoopAtRoot(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at root, got %d", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})

	result := &stubScreen{title: "result"}
	r.Update(ReplaceScreenMsg{Screen: result})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != result {
		t.Errorf("expected active 'result', got %q", r.Active().Title())
	}
	if !result.initRan {
		t.Error("expected Init() to run on replacement")
	}
}

func TestPopToRoot(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	r.Push(&stubScreen{title: "quiz"})
	r.Push(&stubScreen{title: "result"})

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 || r.Active() != home {
		t.Errorf("expected only home on the stack, depth %d", r.Depth())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "home"}
	quiz := &stubScreen{title: "quiz"}
	r := New(home)
	r.Push(quiz)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if quiz.updates != 1 || home.updates != 0 {
		t.Errorf("updates: quiz=%d home=%d, want 1 and 0", quiz.updates, home.updates)
	}
	if got := r.View(80, 24); got != "quiz" {
		t.Errorf("View = %q, want %q", got, "quiz")
	}
}

type resumeScreen struct {
	stubScreen
	resumed int
}

func (s *resumeScreen) Resume() { s.resumed++ }

func TestPopResumesRevealedScreen(t *testing.T) {
	home := &resumeScreen{stubScreen: stubScreen{title: "home"}}
	r := New(home)

	r.Push(&stubScreen{title: "quiz"})
	r.Update(PopScreenMsg{})
	if home.resumed != 1 {
		t.Errorf("resumed = %d after pop, want 1", home.resumed)
	}

	r.Push(&stubScreen{title: "quiz"})
	r.Push(&stubScreen{title: "result"})
	r.Update(PopToRootMsg{})
	if home.resumed != 2 {
		t.Errorf("resumed = %d after pop to root, want 2", home.resumed)
	}

	r.Push(&stubScreen{title: "quiz"})
	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "result"}})
	if home.resumed != 2 {
		t.Errorf("replace should not resume, resumed = %d", home.resumed)
	}
}
