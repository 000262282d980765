package editor

import "github.com/iw2rmb/compose/composition"

// Recorder buffers surface mutations for the composition engine. It records
// only between Start and StopAndFlushMutations.
type Recorder struct {
	recording bool
	muts      *composition.Mutations
}

func (r *Recorder) Start() {
	r.recording = true
	r.muts = composition.NewMutations()
}

func (r *Recorder) StopAndFlushMutations() *composition.Mutations {
	m := r.muts
	r.recording = false
	r.muts = nil
	return m
}

// Recording reports whether the recorder is between Start and
// StopAndFlushMutations.
func (r *Recorder) Recording() bool { return r.recording }

// Record stores text for key and reports whether it was recorded.
func (r *Recorder) Record(key, text string) bool {
	if !r.recording {
		return false
	}
	r.muts.Set(key, text)
	return true
}

// Text returns the recorded surface text for key.
func (r *Recorder) Text(key string) (string, bool) {
	if !r.recording {
		return "", false
	}
	return r.muts.Text(key)
}
