package memory

import (
	"context"
	"sync"

	"github.com/ligadavila/copa-engine/internal/domain/group"
)

type GroupRepository struct {
	mu           sync.RWMutex
	byID         map[string]group.Group
	byTournament map[string][]group.Group
}

func NewGroupRepository(groups []group.Group) *GroupRepository {
	repo := &GroupRepository{
		byID:         make(map[string]group.Group, len(groups)),
		byTournament: make(map[string][]group.Group),
	}
	for _, item := range groups {
		repo.byID[item.ID] = item
		repo.byTournament[item.TournamentID] = append(repo.byTournament[item.TournamentID], item)
	}

	return repo
}

func (r *GroupRepository) GetByID(_ context.Context, groupID string) (group.Group, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[groupID]
	return item, ok, nil
}

func (r *GroupRepository) ListByTournament(_ context.Context, tournamentID string) ([]group.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byTournament[tournamentID]
	out := make([]group.Group, 0, len(items))
	out = append(out, items...)
	return out, nil
}
