package tui

// Notice is one toast line shown in the status bar.
type Notice struct {
	Text    string
	IsError bool
}

// Notices bridges the workflow services' outcome toasts into the
// bubbletea message loop. Services call Success/Error from their own
// goroutines; the model drains the channel with a listen command.
type Notices struct {
	ch chan Notice
}

// NewNotices creates the toast bridge.
func NewNotices() *Notices {
	return &Notices{ch: make(chan Notice, 16)}
}

// Success implements service.Notifier. Drops the notice if the channel
// is full rather than blocking a workflow.
func (n *Notices) Success(message string) {
	select {
	case n.ch <- Notice{Text: message}:
	default:
	}
}

// Error implements service.Notifier.
func (n *Notices) Error(message string) {
	select {
	case n.ch <- Notice{Text: message, IsError: true}:
	default:
	}
}

// C exposes the channel for the model's listen command.
func (n *Notices) C() <-chan Notice {
	return n.ch
}
