package person

import "context"

// Repository exposes person read operations.
type Repository interface {
	GetByID(ctx context.Context, personID string) (Person, bool, error)
}
