// Package llm contains the remote provider implementations and the
// normalization of their varied request/response envelopes into plain
// response text.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Provider is one remote AI service in the fallback chain.
type Provider interface {
	// Name returns the provider name used in priority ordering and logs
	Name() string

	// Chat sends the message and returns the assistant's plain text.
	// Every error is a *Failure carrying a classification.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// ChatRequest is the uniform request shape across providers.
type ChatRequest struct {
	// System carries the system instructions (persona, corpus context)
	System string

	// Message is the (possibly mode-augmented) user message
	Message string

	// Temperature controls sampling; zero value means provider default
	Temperature float32

	// MaxTokens limits the response length
	MaxTokens int
}

// ChatResponse is the normalized success shape.
type ChatResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// FailureKind classifies a failed provider attempt. All kinds are
// handled identically by the orchestrator: advance to the next provider.
type FailureKind string

const (
	FailureTimeout   FailureKind = "timeout"
	FailureTransport FailureKind = "transport"
	FailureMalformed FailureKind = "malformed"
	FailureEmpty     FailureKind = "empty"
)

// Failure wraps a provider error with its classification. The detail is
// for the diagnostic channel only and must never reach the user-facing
// result stream.
type Failure struct {
	Provider string
	Kind     FailureKind
	Err      error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s provider %s failure: %v", f.Provider, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// classify wraps a raw transport-level error into a Failure, detecting
// timeouts so an abandoned call frees the caller instead of surfacing
// as a generic transport problem.
func classify(provider string, err error) *Failure {
	kind := FailureTransport

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = FailureTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = FailureTimeout
	}

	return &Failure{Provider: provider, Kind: kind, Err: err}
}
