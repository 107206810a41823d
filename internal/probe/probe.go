package probe

import "context"

// Prober performs exactly one outbound call and reports what happened.
// Implementations keep no state between runs.
type Prober interface {
	Name() string
	Probe(ctx context.Context) Result
}
