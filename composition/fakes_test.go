package composition

import (
	"github.com/iw2rmb/compose/document"
)

type fakeHost struct {
	state *document.State

	updates  int
	exits    int
	scroll   Point
	restores []Point
	desync   []string
	resyncs  int
	keys     []KeyEvent
	inputs   []InputEvent
}

func newFakeHost(blocks ...*document.Block) *fakeHost {
	return &fakeHost{state: document.NewState(document.NewContent(blocks...), document.Options{})}
}

func (h *fakeHost) LatestState() *document.State         { return h.state }
func (h *fakeHost) Update(s *document.State)             { h.state = s; h.updates++ }
func (h *fakeHost) ExitCurrentMode()                     { h.exits++ }
func (h *fakeHost) ScrollPosition() Point                { return h.scroll }
func (h *fakeHost) RestoreSurface(p Point)               { h.restores = append(h.restores, p) }
func (h *fakeHost) RegisterDesynchronizedBlock(k string) { h.desync = append(h.desync, k) }
func (h *fakeHost) ResyncDesynchronizedBlocks()          { h.resyncs++ }
func (h *fakeHost) HandleKeyDown(ev KeyEvent)            { h.keys = append(h.keys, ev) }
func (h *fakeHost) HandleInput(ev InputEvent)            { h.inputs = append(h.inputs, ev) }

type fakeObserver struct {
	started int
	stopped int
	muts    *Mutations
}

func (o *fakeObserver) Start() { o.started++ }

func (o *fakeObserver) StopAndFlushMutations() *Mutations {
	o.stopped++
	m := o.muts
	o.muts = NewMutations()
	return m
}

type observerPool struct {
	all []*fakeObserver
}

func (p *observerPool) New() Observer {
	o := &fakeObserver{muts: NewMutations()}
	p.all = append(p.all, o)
	return o
}

func (p *observerPool) current() *fakeObserver {
	if len(p.all) == 0 {
		return nil
	}
	return p.all[len(p.all)-1]
}

type harness struct {
	host  *fakeHost
	sched *ManualScheduler
	pool  *observerPool
	s     *Session
}

func newHarness(blocks ...*document.Block) *harness {
	h := &harness{
		host:  newFakeHost(blocks...),
		sched: &ManualScheduler{},
		pool:  &observerPool{},
	}
	h.s = NewSession(h.host, h.sched, Options{NewObserver: h.pool.New})
	return h
}

// mutate records composed text on the running observer at the leaf that
// holds offset in block key.
func (h *harness) mutate(key string, offset int, text string) {
	tree := h.host.state.BlockTree(key)
	loc, _ := tree.LeafAt(key, offset)
	h.pool.current().muts.Set(loc.Encode(), text)
}
