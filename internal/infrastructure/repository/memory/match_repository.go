package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/ligadavila/copa-engine/internal/domain/match"
)

type MatchRepository struct {
	mu   sync.RWMutex
	byID map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	byID := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		byID[item.ID] = item
	}

	return &MatchRepository{byID: byID}
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[matchID]
	return item, ok, nil
}

func (r *MatchRepository) ListPlayedByGroup(_ context.Context, groupID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Match
	for _, item := range r.byID {
		if item.GroupID == groupID && item.Status.CountsForStandings() {
			out = append(out, item)
		}
	}
	sortByMatchNo(out)
	return out, nil
}

func (r *MatchRepository) ListPlayedByTeamRegistration(_ context.Context, teamRegID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Match
	for _, item := range r.byID {
		if item.Participates(teamRegID) && item.Status.CountsForStandings() {
			out = append(out, item)
		}
	}
	sortByMatchNo(out)
	return out, nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[m.ID]; !ok {
		return errors.Newf("match %s does not exist", m.ID)
	}
	r.byID[m.ID] = m
	return nil
}

func sortByMatchNo(matches []match.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchNo < matches[j].MatchNo
	})
}
