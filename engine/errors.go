package engine

import "errors"

// ErrExceededRuntime is returned by Run when the wall-clock deadline set
// via Builder.Runtime passes before every trial reaches Stable. No partial
// average is returned alongside it — a prematurely terminated ensemble's
// average is not meaningful (spec.md §9 Open Question 3).
var ErrExceededRuntime = errors.New("engine: exceeded max runtime")

// ErrUnknown is reserved for unclassified worker failures: a violated
// precondition (an empty possible-reaction set) or a worker panic surfaces
// as this error wrapped with context, rather than propagating a bare panic
// past the worker pool boundary. A consumer that stops reading the response
// channel is not detected and produces no error: Run blocks on the send.
var ErrUnknown = errors.New("engine: unknown failure")
