package match

import "context"

// Repository exposes match reads and the single lifecycle write. The list
// methods return only matches past Scheduled; fixtures that never started
// feed no aggregate, so callers never see them.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListPlayedByGroup(ctx context.Context, groupID string) ([]Match, error)
	ListPlayedByTeamRegistration(ctx context.Context, teamRegID string) ([]Match, error)
	Update(ctx context.Context, m Match) error
}

// VenueRepository exposes venue lookups for match display.
type VenueRepository interface {
	GetVenueByID(ctx context.Context, venueID string) (Venue, bool, error)
}
