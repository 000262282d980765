package editor

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// deferredMsg fires a task scheduled through teaScheduler.
type deferredMsg struct {
	editor int
	task   uint64
}

// teaScheduler turns deferred composition work into Bubble Tea commands.
// AfterFunc queues a command; Update drains the queue into its return value
// and runs the task when the command's message comes back.
type teaScheduler struct {
	editor int
	seq    uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
}

func newTeaScheduler(editor int) *teaScheduler {
	return &teaScheduler{editor: editor, tasks: map[uint64]func(){}}
}

func (t *teaScheduler) AfterFunc(d time.Duration, fn func()) {
	t.seq++
	msg := deferredMsg{editor: t.editor, task: t.seq}
	t.tasks[msg.task] = fn
	if d <= 0 {
		t.queued = append(t.queued, func() tea.Msg { return msg })
		return
	}
	t.queued = append(t.queued, tea.Tick(d, func(time.Time) tea.Msg { return msg }))
}

// run executes the task msg names, once. It reports whether msg belonged to
// this scheduler.
func (t *teaScheduler) run(msg deferredMsg) bool {
	if msg.editor != t.editor {
		return false
	}
	if fn, ok := t.tasks[msg.task]; ok {
		delete(t.tasks, msg.task)
		fn()
	}
	return true
}

func (t *teaScheduler) drain() tea.Cmd {
	if len(t.queued) == 0 {
		return nil
	}
	cmds := t.queued
	t.queued = nil
	return tea.Batch(cmds...)
}
