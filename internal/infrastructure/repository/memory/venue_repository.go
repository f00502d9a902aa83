package memory

import (
	"context"
	"sync"

	"github.com/ligadavila/copa-engine/internal/domain/match"
)

type VenueRepository struct {
	mu   sync.RWMutex
	byID map[string]match.Venue
}

func NewVenueRepository(venues []match.Venue) *VenueRepository {
	byID := make(map[string]match.Venue, len(venues))
	for _, item := range venues {
		byID[item.ID] = item
	}

	return &VenueRepository{byID: byID}
}

func (r *VenueRepository) GetVenueByID(_ context.Context, venueID string) (match.Venue, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[venueID]
	return item, ok, nil
}
