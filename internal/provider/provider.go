// Package provider wraps the generative-AI service that answers travel questions.
package provider

import (
	"context"
	"errors"
)

//go:generate mockgen -source=provider.go -destination=../mocks/mock_completer.go -package=mocks

// ErrEmptyCompletion is returned when the provider answers without any text.
var ErrEmptyCompletion = errors.New("provider returned an empty completion")

// Completer turns a prompt into a text completion.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
