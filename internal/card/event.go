// Package card implements the presentation and interaction core of the
// playlist post card: visibility iconography, link routing, the
// content-warning disclosure and contextual menu state machines, attachment
// classification, and the composed card view. It is pure over a read-only
// Playlist snapshot and renders no HTML itself.
package card

// InputEvent is one discrete UI input delivered to a card handler. Handlers
// run synchronously to completion; a handler that accepts the event stops
// further propagation before returning.
type InputEvent struct {
	// Key is the key name for keyboard events ("Enter", "Escape", ...).
	// Empty for pointer clicks.
	Key string

	stopped bool
}

// Click returns a pointer-click event.
func Click() *InputEvent {
	return &InputEvent{}
}

// KeyPress returns a keyboard event for the named key.
func KeyPress(key string) *InputEvent {
	return &InputEvent{Key: key}
}

// StopPropagation marks the event as fully consumed. No further handlers
// observe it.
func (e *InputEvent) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether propagation has been halted.
func (e *InputEvent) Stopped() bool {
	return e.stopped
}

// activates reports whether this event counts as an activation: a click or
// the Enter key. Other keys pass through untouched.
func (e *InputEvent) activates() bool {
	return e.Key == "" || e.Key == "Enter"
}
