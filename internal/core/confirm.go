package core

import "errors"

// ErrDeclined is returned when the operator refuses a confirmation prompt.
// The gated operation is aborted with no gateway calls issued.
var ErrDeclined = errors.New("declined by operator")

// Confirmer asks the operator to approve a mutation before it is submitted.
// Implementations decide how the question is posed (terminal prompt, preset
// answer); the services only see the decision.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) (bool, error)

func (f ConfirmerFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// AcceptAll approves every prompt. Used when the operator passes --yes.
type AcceptAll struct{}

func (AcceptAll) Confirm(string) (bool, error) { return true, nil }
