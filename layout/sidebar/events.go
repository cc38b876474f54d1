package sidebar

// MouseEvent is a click raised inside the sidebar. It travels from the
// clicked navigation item up to the content container unless a handler
// stops it.
type MouseEvent struct {
	// Target is the path of the clicked item, empty for clicks outside items
	Target  string
	stopped bool
}

// NewClick creates a click event on target
func NewClick(target string) *MouseEvent {
	return &MouseEvent{Target: target}
}

// StopPropagation keeps the event from reaching ancestor handlers
func (e *MouseEvent) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether a handler stopped the event
func (e *MouseEvent) PropagationStopped() bool {
	return e.stopped
}

// EventHandler handles a click
type EventHandler func(e *MouseEvent)

// CloseReason tells why the drawer asks to be closed
type CloseReason string

const (
	ReasonBackdropClick CloseReason = "backdropClick"
	ReasonEscapeKeyDown CloseReason = "escapeKeyDown"
)

// CloseHandler is invoked to request closing the drawer
type CloseHandler func(e *MouseEvent, reason CloseReason)
