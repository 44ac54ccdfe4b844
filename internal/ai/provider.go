package ai

import "context"

type Message struct {
	Role    string
	Content string
}

// Request is one completion call. For schema-constrained tasks JSONOnly asks
// the provider to emit a single JSON object.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	JSONOnly    bool
}

type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}
