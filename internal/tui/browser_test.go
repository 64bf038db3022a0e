// internal/tui/browser_test.go
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/mathbench/internal/dataset"
	"github.com/mwiater/mathbench/internal/display"
)

func testModel(t *testing.T) *model {
	t.Helper()
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return newModel(ds)
}

// drain delivers frame messages until the animation loop stops.
func drain(t *testing.T, m *model) int {
	t.Helper()
	frames := 0
	for {
		_, cmd := m.Update(frameMsg{})
		frames++
		if cmd == nil {
			return frames
		}
		if frames > 1000 {
			t.Fatal("counter animation did not terminate")
		}
	}
}

func TestInitRevealsFirstCategory(t *testing.T) {
	m := testModel(t)
	first := m.ds.Categories[0]
	if m.observer.Pending(first.ID) != 1 {
		t.Fatalf("expected a pending reveal for %s", first.ID)
	}
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected Init to start the frame loop")
	}
	if m.observer.Pending(first.ID) != 0 {
		t.Fatal("reveal must be delivered at most once")
	}
	drain(t, m)
	for i, md := range m.models {
		want := display.PctNum(first.Results[md.ID].Accuracy)
		if got := m.shown[first.ID][i]; got != want {
			t.Fatalf("%s: expected counter to end on %.1f, got %v", md.ID, want, got)
		}
	}
	if m.animating {
		t.Fatal("expected animation to be finished")
	}
}

func TestSelectingRowRevealsOnce(t *testing.T) {
	m := testModel(t)
	m.Init()
	drain(t, m)

	second := m.ds.Categories[1]
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd == nil {
		t.Fatal("expected selecting a new row to start counters")
	}
	if _, ok := m.shown[second.ID]; !ok {
		t.Fatalf("expected %s to be revealed", second.ID)
	}
	drain(t, m)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if !m.frames.Idle() {
		t.Fatal("revisiting a row must not restart its counters")
	}
}

func TestQuitKeys(t *testing.T) {
	m := testModel(t)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		if _, cmd := m.Update(key); cmd == nil {
			t.Fatalf("expected quit command for %q", key.String())
		}
	}
}

func TestWindowSize(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(*model)
	if m.width != 120 || m.height != 40 {
		t.Fatalf("expected 120x40, got %dx%d", m.width, m.height)
	}
}

func TestViewShowsSelectedCategory(t *testing.T) {
	m := testModel(t)
	m.Init()
	drain(t, m)
	view := m.View()
	first := m.ds.Categories[0]
	if !strings.Contains(view, first.Topics[0].Topic) {
		t.Fatalf("expected topic %q in view", first.Topics[0].Topic)
	}
	for _, md := range m.models {
		if !strings.Contains(view, md.Name) {
			t.Fatalf("expected model %q in view", md.Name)
		}
	}
}
