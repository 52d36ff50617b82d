package repl

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/defiro/lang"
	"github.com/ardnew/defiro/log"
)

func newTestModel(t *testing.T, fsys fstest.MapFS) model {
	t.Helper()

	env := lang.NewEnv(lang.WithFS(fsys))
	path := lang.AbsPath{Dirs: []string{"work"}, Name: "<repl>"}

	return newModel(context.Background(), env, path, NewHistory(""), log.Logger{})
}

func TestModel_Evaluate(t *testing.T) {
	m := newTestModel(t, fstest.MapFS{
		"work/base.dfr": {Data: []byte("let base = #1e1e2e;")},
	})

	lines := m.evaluate("let a = rgb(1, 2, 3); let b = a")
	if len(lines) != 2 ||
		!strings.Contains(lines[0], "a = #010203") ||
		!strings.Contains(lines[1], "b = #010203") {
		t.Fatalf("lines = %q", lines)
	}

	// Unchanged bindings are not reported again.
	lines = m.evaluate("let b = #010203; let c = missing")
	if len(lines) != 1 || !strings.Contains(lines[0], "EvalError: name not found (name=missing)") {
		t.Fatalf("lines = %q", lines)
	}

	// Includes resolve against the session's directory.
	lines = m.evaluate("include base.dfr")
	if len(lines) != 1 || !strings.Contains(lines[0], "base = #1e1e2e") {
		t.Fatalf("lines = %q", lines)
	}

	if got := m.env.Names(); strings.Join(got, ",") != "a,b,base" {
		t.Errorf("names = %v", got)
	}
}

func TestModel_ExecuteInput(t *testing.T) {
	m := newTestModel(t, nil)

	m.input.SetValue("let a = #ffffff")

	m, cmd := m.executeInput()
	if cmd == nil {
		t.Fatal("no output command")
	}

	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}

	if c, ok := m.env.Lookup("a"); !ok || c != lang.RGB(255, 255, 255) {
		t.Errorf("a = %v, %v", c, ok)
	}

	entry, err := m.history.Entry(0)
	if err != nil || entry != (HistoryEntry{"let a = #ffffff", modeEval}) {
		t.Errorf("history entry = %v, %v", entry, err)
	}
}

func TestModel_Commands(t *testing.T) {
	m := newTestModel(t, nil)
	m.evaluate("let a = #ffffff; let b = nope")

	if !strings.Contains(m.listBindings(), "a = #ffffff") {
		t.Errorf("list = %q", m.listBindings())
	}

	// The marker runs a command from eval mode.
	m.input.SetValue(":reset")

	m, _ = m.executeInput()
	if m.env.Len() != 0 || len(m.env.Faults()) != 0 {
		t.Errorf("reset left %d bindings, %d faults", m.env.Len(), len(m.env.Faults()))
	}

	if !strings.Contains(m.listBindings(), "no bindings") {
		t.Errorf("list = %q", m.listBindings())
	}

	m, _ = m.toggleMode()
	if m.mode != modeCtrl {
		t.Fatal("toggleMode did not enter control mode")
	}

	m.input.SetValue("quit")

	m, cmd := m.executeInput()
	if !m.quitting || cmd == nil {
		t.Error("quit did not quit")
	}

	entry, _ := m.history.Entry(m.history.Len() - 1)
	if entry != (HistoryEntry{"quit", modeCtrl}) {
		t.Errorf("last history entry = %v", entry)
	}
}

func TestModel_TabCycle(t *testing.T) {
	m := newTestModel(t, nil)
	m.env.Define("accent", lang.RGB(1, 1, 1))
	m.env.Define("accent2", lang.RGB(2, 2, 2))

	m.input.SetValue("let x = acc")
	m.input.SetCursor(len("let x = acc"))
	refreshMatches(&m, false)

	if len(m.matches) < 2 {
		t.Fatalf("matches = %v", m.matches)
	}

	m, _ = m.cycle(1)
	first := m.input.Value()

	m, _ = m.cycle(1)
	second := m.input.Value()

	if first == second || !strings.HasPrefix(first, "let x = accent") ||
		!strings.HasPrefix(second, "let x = accent") {
		t.Errorf("cycled %q then %q", first, second)
	}

	// Esc restores the text typed before cycling.
	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if got := next.input.Value(); got != "let x = acc" {
		t.Errorf("after Esc input = %q", got)
	}
}

func TestModel_HistoryStep(t *testing.T) {
	m := newTestModel(t, nil)

	for _, e := range []HistoryEntry{
		{"let a = #000000", modeEval},
		{"list", modeCtrl},
		{"let b = a", modeEval},
	} {
		if err := m.history.Add(e.Line, e.Mode); err != nil {
			t.Fatal(err)
		}
	}

	m.historyIdx = m.history.Len()

	m, _ = m.historyStep(-1, false)
	if m.input.Value() != "let b = a" || m.mode != modeEval {
		t.Fatalf("step 1: %q mode %d", m.input.Value(), m.mode)
	}

	m, _ = m.historyStep(-1, false)
	if m.input.Value() != "list" || m.mode != modeCtrl {
		t.Fatalf("step 2: %q mode %d", m.input.Value(), m.mode)
	}

	// Within control mode there is nothing older.
	m, _ = m.historyStep(-1, true)
	if m.input.Value() != "list" {
		t.Fatalf("step 3: %q", m.input.Value())
	}

	m, _ = m.historyStep(1, false)
	m, _ = m.historyStep(1, false)
	if m.input.Value() != "" || m.historyIdx != m.history.Len() {
		t.Errorf("past newest: %q at %d", m.input.Value(), m.historyIdx)
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, nil)

	if !strings.Contains(m.View(), "Type a statement") {
		t.Errorf("view = %q", m.View())
	}

	m.input.SetValue("let a = rgb(1, ")
	m.input.SetCursor(len("let a = rgb(1, "))
	refreshMatches(&m, false)

	if view := m.View(); !strings.Contains(view, "rgb") || !strings.Contains(view, "g") {
		t.Errorf("view = %q", view)
	}

	m.quitting = true
	if m.View() != "" {
		t.Error("quitting view not empty")
	}
}
