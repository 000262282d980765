package composition

import (
	"sort"
	"time"
)

// Scheduler runs deferred work on the host's event timeline. A zero delay
// means "on the next turn", after the current event finishes.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, fn func())

func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) { f(d, fn) }

// ManualScheduler is a virtual-clock Scheduler. Nothing runs until Advance
// or RunPending is called; tasks due at the same instant run in scheduling
// order.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []manualTask
}

type manualTask struct {
	at  time.Duration
	seq int
	fn  func()
}

func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	m.seq++
	m.tasks = append(m.tasks, manualTask{at: m.now + d, seq: m.seq, fn: fn})
}

// Now returns the virtual time elapsed since the scheduler was created.
func (m *ManualScheduler) Now() time.Duration { return m.now }

// Pending returns the number of tasks not yet run.
func (m *ManualScheduler) Pending() int { return len(m.tasks) }

// Advance moves the clock forward by d, running every task due on the way,
// including tasks those tasks schedule. It returns how many ran.
func (m *ManualScheduler) Advance(d time.Duration) int {
	target := m.now + d
	ran := 0
	for {
		i, ok := m.nextDue(target)
		if !ok {
			break
		}
		t := m.tasks[i]
		m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
		if t.at > m.now {
			m.now = t.at
		}
		t.fn()
		ran++
	}
	m.now = target
	return ran
}

// RunPending runs the tasks due now without moving the clock.
func (m *ManualScheduler) RunPending() int { return m.Advance(0) }

func (m *ManualScheduler) nextDue(target time.Duration) (int, bool) {
	if len(m.tasks) == 0 {
		return 0, false
	}
	sort.SliceStable(m.tasks, func(a, b int) bool {
		if m.tasks[a].at != m.tasks[b].at {
			return m.tasks[a].at < m.tasks[b].at
		}
		return m.tasks[a].seq < m.tasks[b].seq
	})
	if m.tasks[0].at > target {
		return 0, false
	}
	return 0, true
}
