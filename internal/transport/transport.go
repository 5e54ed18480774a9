// Package transport defines the interface for pluggable request transports.
//
// Each transport (HTTP, gRPC) implements this interface and hands
// incoming requests to the dispatcher. The dispatcher doesn't care how
// requests arrive — it only works with the Handler contract.
package transport

import (
	"context"

	"github.com/nadzzz/sayd/internal/message"
)

// Handler is a function that processes an incoming synthesis request.
// The dispatcher provides this handler to each transport.
type Handler func(ctx context.Context, req *message.SynthesisRequest) (*message.SynthesisResult, error)

// EnvironmentFunc reports the engine environment for diagnostics.
type EnvironmentFunc func() *message.EnvironmentReport

// Transport is the interface that every transport adapter must implement.
type Transport interface {
	// Name returns the transport identifier (e.g., "http", "grpc").
	Name() string

	// Listen starts accepting incoming requests and dispatches them to
	// the handler. It blocks until the context is cancelled.
	Listen(ctx context.Context, handler Handler) error

	// Close gracefully shuts down the transport, draining in-flight work.
	Close() error
}
