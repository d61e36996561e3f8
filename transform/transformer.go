package transform

import (
	"errors"
	"fmt"
)

// ErrNoStrategy is returned by Transformer.Apply when no strategy has been
// selected yet.
var ErrNoStrategy = errors.New("no strategy selected")

// Transformer holds the currently selected strategy and forwards transform
// requests to it, so the event layer driving it never needs to know which
// concrete algorithm is active. The zero value is usable but has no
// strategy; Apply fails until Select has been called once. A Transformer is
// reusable indefinitely and Select may swap strategies at any time.
//
// Not safe for concurrent use: callers issue transforms serially, and the
// point sequence must not be read or written by anyone else during a call.
type Transformer struct {
	strategy Strategy
}

// Select replaces the active strategy. Strategies are stateless values, so
// no ownership changes hands.
func (t *Transformer) Select(s Strategy) {
	t.strategy = s
}

// Apply forwards the request verbatim to the active strategy. It returns
// ErrNoStrategy if Select was never called, and the strategy's ErrKind if
// the kind is outside its set; in both cases no point has been mutated.
func (t *Transformer) Apply(points []Point, kind Kind, value float64) error {
	if t.strategy == nil {
		return fmt.Errorf("apply %s: %w", kind, ErrNoStrategy)
	}
	return t.strategy.Transform(points, kind, value)
}
