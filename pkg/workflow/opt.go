package workflow

import (
	"io"
	"time"

	// Packages
	alloy "github.com/alloy-automation/alloy-mcp-go"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Executor) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithWriter sets the destination for progress output
func WithWriter(w io.Writer) Opt {
	return func(e *Executor) error {
		if w == nil {
			return alloy.ErrBadParameter.With("writer is required")
		}
		e.w = w
		return nil
	}
}

// WithDelay sets the pause between simulated steps. Zero disables the
// pause; the delay is presentational and carries no ordering guarantee.
func WithDelay(d time.Duration) Opt {
	return func(e *Executor) error {
		if d < 0 {
			return alloy.ErrBadParameter.With("delay cannot be negative")
		}
		e.delay = d
		return nil
	}
}
