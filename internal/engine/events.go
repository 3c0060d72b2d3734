package engine

import "time"

// EventKind enumerates the non-fatal conditions the pipeline can surface.
type EventKind string

const (
	// EventParseError reports a raw message dropped by the normalizer.
	EventParseError EventKind = "parse_error"
	// EventInvalidPrice reports a non-positive price rejected by the pipeline.
	EventInvalidPrice EventKind = "invalid_price"
)

// Event is a non-fatal status notification for presentation layers.
type Event struct {
	Kind EventKind
	Err  error
	Ts   time.Time
}

// Events exposes the status channel. Events are dropped, never blocked on,
// when no consumer keeps up, so ingestion cannot stall on a slow display.
func (e *Engine) Events() <-chan Event {
	return e.events
}

func (e *Engine) publish(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}
