// Package composition reconciles IME composition sessions into the
// document model.
//
// While a composition is in flight the platform edits the rendered surface
// directly. A Session starts an Observer when composition begins, and when
// it ends (after a short delay that lets a follow-up composition-start arrive
// first) it flushes the observed surface mutations and applies them to the
// document as one undoable insert-characters edit.
//
// The Session is a plain state machine. It never sees platform event types:
// a host adapter translates platform events into CompositionStart,
// CompositionEnd, KeyDown, KeyPress and Input calls, and supplies a Scheduler
// for deferred work. Everything runs on one event timeline; nothing here is
// safe for concurrent use.
package composition
