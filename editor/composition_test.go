package editor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/compose/composition"
	"github.com/iw2rmb/compose/document"
)

func composeAtEnd(t *testing.T, text string) (Model, *composition.ManualScheduler) {
	t.Helper()
	sched := &composition.ManualScheduler{}
	m := New(Config{Text: text, Scheduler: sched})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	return m, sched
}

func TestComposition_ResolvesIntoOneHistoryEntry(t *testing.T) {
	m, sched := composeAtEnd(t, "caf")

	m, _ = m.Update(CompositionStartMsg{})
	if m.Mode() != ModeComposition {
		t.Fatalf("mode: got %v, want %v", m.Mode(), ModeComposition)
	}
	m, _ = m.Update(m.PreeditMsg("e"))
	m, _ = m.Update(m.PreeditMsg("é"))
	m, _ = m.Update(CompositionEndMsg{Data: "é"})

	if got := m.State().Content().PlainText(); got != "caf" {
		t.Fatalf("resolved before the delay: %q", got)
	}
	sched.Advance(composition.DefaultResolveDelay)

	st := m.State()
	if got := st.Content().PlainText(); got != "café" {
		t.Fatalf("text: got %q, want %q", got, "café")
	}
	if st.UndoDepth() != 1 || st.LastChangeType() != document.ChangeInsertCharacters {
		t.Fatalf("history: depth=%d change=%q", st.UndoDepth(), st.LastChangeType())
	}
	if m.Mode() != ModeEdit || st.InCompositionMode() {
		t.Fatalf("mode after resolve: %v (state composing=%v)", m.Mode(), st.InCompositionMode())
	}
	if m.Resyncs() != 1 {
		t.Fatalf("resyncs: got %d, want 1", m.Resyncs())
	}
	if m.Recorder().Recording() {
		t.Fatalf("recorder still running after resolve")
	}
	if got := st.Undo().Content().PlainText(); got != "caf" {
		t.Fatalf("undo: got %q, want %q", got, "caf")
	}
}

func TestComposition_KeyAfterEndResolvesAndDispatches(t *testing.T) {
	m, sched := composeAtEnd(t, "caf")
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(m.PreeditMsg("é"))
	m, _ = m.Update(CompositionEndMsg{Data: "é"})

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.State().Content().PlainText(); got != "caf" {
		t.Fatalf("text: got %q, want %q", got, "caf")
	}
	if got := m.State().UndoDepth(); got != 2 {
		t.Fatalf("undo depth: got %d, want 2", got)
	}

	sched.RunPending()
	if m.Restores() != 1 {
		t.Fatalf("restores: got %d, want 1", m.Restores())
	}
	sched.Advance(composition.DefaultResolveDelay)
	if got := m.Session().Resolutions(); got != 1 {
		t.Fatalf("resolutions: got %d, want 1", got)
	}
}

func TestComposition_CaretKeysAndEnterSuppressedWhileComposing(t *testing.T) {
	m, _ := composeAtEnd(t, "ab")
	m, _ = m.Update(CompositionStartMsg{})
	before := m.State()

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter}, runes("x"))
	m, _ = m.Update(KeyDownMsg{Key: "x", Code: composition.KeyCodeIMEProcessed})

	if m.State() != before {
		t.Fatalf("keys while composing changed the state")
	}
	if got := m.Session().KeyPress(composition.KeyEvent{Key: "enter"}); got != composition.KeyPreventDefault {
		t.Fatalf("enter key press: got %v, want %v", got, composition.KeyPreventDefault)
	}
}

func TestComposition_NewlineCommit(t *testing.T) {
	m, sched := composeAtEnd(t, "")
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(m.PreeditMsg("안녕"))
	m, _ = m.Update(CompositionEndMsg{Data: "안녕\n"})

	blocks := m.State().Content().Blocks()
	if len(blocks) != 2 || blocks[0].Text() != "안녕" || blocks[1].Text() != "" {
		t.Fatalf("blocks: got %q", m.State().Content().PlainText())
	}
	if m.Session().Active() {
		t.Fatalf("session must resolve synchronously")
	}
	if sched.Pending() != 1 {
		t.Fatalf("pending: got %d, want the surface restore only", sched.Pending())
	}
	sched.Advance(time.Second)
	if m.Restores() != 1 {
		t.Fatalf("restores: got %d, want 1", m.Restores())
	}
}

func TestComposition_RestartKeepsComposing(t *testing.T) {
	m, sched := composeAtEnd(t, "")
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(m.PreeditMsg("ㅎ"))
	m, _ = m.Update(CompositionEndMsg{Data: "ㅎ"})
	sched.Advance(5 * time.Millisecond)

	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(m.PreeditMsg("한"))
	sched.Advance(time.Second)
	if got := m.State().Content().PlainText(); got != "" {
		t.Fatalf("resolved mid-composition: %q", got)
	}

	m, _ = m.Update(CompositionEndMsg{Data: "한"})
	sched.Advance(composition.DefaultResolveDelay)
	if got := m.State().Content().PlainText(); got != "한" {
		t.Fatalf("text: got %q, want %q", got, "한")
	}
	if got := m.State().UndoDepth(); got != 1 {
		t.Fatalf("undo depth: got %d, want 1", got)
	}
}

func TestComposition_SurfaceMutationOutsideCompositionIgnored(t *testing.T) {
	m := New(Config{Text: "a", Scheduler: noopScheduler{}})
	m, _ = m.Update(SurfaceMutationMsg{Key: "b1-0-0", Text: "zzz"})
	if _, ok := m.Recorder().Text("b1-0-0"); ok {
		t.Fatalf("mutation recorded outside composition")
	}
}

func TestTeaScheduler_ResolvesThroughCommands(t *testing.T) {
	m := New(Config{Text: "", ResolveDelay: time.Millisecond})
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(m.PreeditMsg("é"))

	m, cmd := m.Update(CompositionEndMsg{Data: "é"})
	if cmd == nil {
		t.Fatalf("expected a command for the deferred resolution")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		msg = batch[0]()
	}
	if _, ok := msg.(deferredMsg); !ok {
		t.Fatalf("command produced %T, want deferredMsg", msg)
	}

	other := deferredMsg{editor: m.id + 1000, task: msg.(deferredMsg).task}
	m, _ = m.Update(other)
	if !m.Session().Active() {
		t.Fatalf("another editor's message resolved this session")
	}

	m, _ = m.Update(msg)
	if got := m.State().Content().PlainText(); got != "é" {
		t.Fatalf("text: got %q, want %q", got, "é")
	}
	m, _ = m.Update(msg)
	if got := m.Session().Resolutions(); got != 1 {
		t.Fatalf("resolutions: got %d, want 1", got)
	}
}
