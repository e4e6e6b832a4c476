package interfaces

import "context"

// IEventDeduper suppresses duplicate interaction events at the edge.
//
// Seen records the interaction id and reports whether it was already recorded
// within the dedup window. Best-effort: callers treat an error as "not seen"
// and proceed, since every mutating operation is also guarded server-side.
type IEventDeduper interface {
	Seen(ctx context.Context, interactionID string) (bool, error)
}
