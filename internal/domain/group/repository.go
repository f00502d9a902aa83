package group

import "context"

// Repository exposes group read operations.
type Repository interface {
	GetByID(ctx context.Context, groupID string) (Group, bool, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Group, error)
}
