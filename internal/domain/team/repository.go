package team

import "context"

// Repository exposes team read operations.
type Repository interface {
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
}
