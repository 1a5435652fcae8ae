package service

import "context"

// Prompt describes a confirmation dialog. Advisory is extra text shown
// under the question; it never blocks the action.
type Prompt struct {
	Title    string
	Text     string
	Advisory string
}

// Confirmer gates destructive workflow actions behind an explicit
// yes/no. The console implements this with a modal overlay; tests use
// ConfirmerFunc.
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, prompt Prompt) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(ctx context.Context, prompt Prompt) (bool, error) {
	return f(ctx, prompt)
}

// Notifier receives the outcome toasts the workflows emit.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
