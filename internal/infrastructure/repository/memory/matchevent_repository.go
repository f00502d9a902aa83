package memory

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
)

// MatchEventRepository is an append-only in-process event log. The
// generation counter moves on every append and never goes backwards.
type MatchEventRepository struct {
	mu         sync.RWMutex
	byMatch    map[string][]matchevent.Event
	byPlayer   map[string][]matchevent.Event
	ids        map[string]struct{}
	generation uint64
}

func NewMatchEventRepository(events []matchevent.Event) *MatchEventRepository {
	repo := &MatchEventRepository{
		byMatch:  make(map[string][]matchevent.Event),
		byPlayer: make(map[string][]matchevent.Event),
		ids:      make(map[string]struct{}),
	}
	for _, e := range events {
		repo.index(e)
		repo.generation++
	}

	return repo
}

func (r *MatchEventRepository) ListByMatch(_ context.Context, matchID string) ([]matchevent.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byMatch[matchID]
	out := make([]matchevent.Event, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *MatchEventRepository) ListByPlayerRegistration(_ context.Context, playerRegID string) ([]matchevent.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byPlayer[playerRegID]
	out := make([]matchevent.Event, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *MatchEventRepository) Append(_ context.Context, e matchevent.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[e.ID]; exists {
		return errors.Newf("event %s already appended", e.ID)
	}
	r.index(e)
	r.generation++
	return nil
}

func (r *MatchEventRepository) Generation(_ context.Context) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation, nil
}

func (r *MatchEventRepository) index(e matchevent.Event) {
	r.byMatch[e.MatchID] = append(r.byMatch[e.MatchID], e)
	if e.PlayerRegistrationID != "" {
		r.byPlayer[e.PlayerRegistrationID] = append(r.byPlayer[e.PlayerRegistrationID], e)
	}
	r.ids[e.ID] = struct{}{}
}
