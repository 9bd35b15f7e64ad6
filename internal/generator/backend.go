package generator

import (
	"context"
	"fmt"
)

// Backend is the generative text service boundary. Implementations send
// one prompt exchange and return the raw completion text; they never
// retry — a single failure hands control to the fallback templates.
type Backend interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// BackendFailure records why a generative call could not be used. It is
// the explicit failure variant the generator matches on before falling
// back, so the cause survives into the output record for audit.
type BackendFailure struct {
	Backend string
	Origin  string // "transport" or "parse"
	Err     error
}

func (f *BackendFailure) Error() string {
	return fmt.Sprintf("%s %s error: %v", f.Backend, f.Origin, f.Err)
}

func (f *BackendFailure) Unwrap() error { return f.Err }
