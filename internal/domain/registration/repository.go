package registration

import "context"

// Repository exposes registration read operations.
type Repository interface {
	GetTeamRegistration(ctx context.Context, teamRegID string) (TeamRegistration, bool, error)
	GetPlayerRegistration(ctx context.Context, playerRegID string) (PlayerRegistration, bool, error)
	ListPlayerRegistrationsByTeamRegistration(ctx context.Context, teamRegID string) ([]PlayerRegistration, error)
	ListPlayerRegistrationsByPerson(ctx context.Context, personID string) ([]PlayerRegistration, error)
}
