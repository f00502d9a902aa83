package memory

import (
	"context"
	"sync"

	"github.com/ligadavila/copa-engine/internal/domain/tournament"
)

type TournamentRepository struct {
	mu    sync.RWMutex
	items []tournament.Tournament
	byID  map[string]tournament.Tournament
}

func NewTournamentRepository(items []tournament.Tournament) *TournamentRepository {
	byID := make(map[string]tournament.Tournament, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return &TournamentRepository{items: items, byID: byID}
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[tournamentID]
	return item, ok, nil
}
