package matchevent

import "context"

// Repository exposes event reads plus the append that is the engine's only
// event write. Generation is a monotonic counter that moves on every
// append; caches key derived tables on it so no stale standings can
// outlive a write.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Event, error)
	ListByPlayerRegistration(ctx context.Context, playerRegID string) ([]Event, error)
	Append(ctx context.Context, e Event) error
	Generation(ctx context.Context) (uint64, error)
}
