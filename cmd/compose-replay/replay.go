package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/iw2rmb/compose/composition"
	"github.com/iw2rmb/compose/editor"
)

// replayer drives an editor through a script on a virtual clock.
type replayer struct {
	cfg   Config
	sched *composition.ManualScheduler
	ed    editor.Model
	out   io.Writer
	log   *slog.Logger

	resolutions int
}

func newReplayer(cfg Config, sc *Script, out io.Writer, log *slog.Logger) (*replayer, error) {
	content, err := sc.content()
	if err != nil {
		return nil, err
	}
	sched := &composition.ManualScheduler{}
	ed := editor.New(editor.Config{
		Content:      content,
		Triggers:     cfg.Triggers,
		Style:        editor.DefaultStyle(),
		HistoryLimit: cfg.HistoryLimit,
		ResolveDelay: cfg.resolveDelay(),
		Strict:       cfg.Strict,
		Scheduler:    sched,
		Logger:       log,
	})
	st := ed.State()
	sel := sc.Selection
	ed = ed.SetState(st.WithSelection(selection(st.Content(), sel.Block, sel.Offset, sel.FocusBlock, sel.FocusOffset)))
	return &replayer{cfg: cfg, sched: sched, ed: ed, out: out, log: log}, nil
}

// replay runs steps and writes the final document. A strict-mode contract
// violation stops the replay and is returned as an error.
func (r *replayer) replay(steps []Step) (err error) {
	defer func() {
		if v := recover(); v != nil {
			ie, ok := v.(*composition.InvariantError)
			if !ok {
				panic(v)
			}
			err = fmt.Errorf("step aborted: %w", ie)
		}
	}()
	r.run(steps)
	r.finish()
	return nil
}

func (r *replayer) run(steps []Step) {
	for i, s := range steps {
		r.step(s)
		r.log.Debug("replay: step",
			slog.Int("n", i+1),
			slog.String("op", s.Op),
			slog.String("phase", r.ed.Session().Phase().String()),
		)
		r.reportResolutions()
	}
}

func (r *replayer) step(s Step) {
	switch s.Op {
	case "advance":
		r.sched.Advance(s.advance())
		return
	case "select":
		st := r.ed.State()
		r.ed = r.ed.SetState(st.WithSelection(selection(st.Content(), s.Block, s.Offset, s.FocusBlock, s.FocusOffset)))
		return
	}
	r.ed, _ = r.ed.Update(s.msg(r.ed))
	// Zero-delay work (surface restores) runs on the next turn.
	r.sched.RunPending()
}

func (r *replayer) reportResolutions() {
	n := r.ed.Session().Resolutions()
	for ; r.resolutions < n; r.resolutions++ {
		st := r.ed.State()
		fmt.Fprintf(r.out, "resolved #%d at %s: %q (%s)\n",
			r.resolutions+1, r.sched.Now(), st.Content().PlainText(), st.LastChangeType())
	}
}

// finish flushes due work and writes the final document.
func (r *replayer) finish() {
	r.sched.RunPending()
	r.reportResolutions()
	st := r.ed.State()
	if r.ed.Session().Active() {
		fmt.Fprintf(r.out, "composition still %s\n", r.ed.Session().Phase())
	}
	view := r.ed.SetSize(r.cfg.Width, len(st.Content().Blocks())).Blur().View()
	for _, line := range strings.Split(view, "\n") {
		fmt.Fprintln(r.out, strings.TrimRight(line, " "))
	}
	fmt.Fprintf(r.out, "undo depth: %d\n", st.UndoDepth())
}
