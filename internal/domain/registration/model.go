package registration

// TeamRegistration enrolls a team in one tournament. It is the unit that
// plays matches and accumulates standings; the same team registered in two
// tournaments is two independent registrations.
type TeamRegistration struct {
	ID           string
	TournamentID string
	TeamID       string
	CaptainID    string
}

// PlayerRegistration enrolls a person under one team registration.
type PlayerRegistration struct {
	ID                 string
	TeamRegistrationID string
	PersonID           string
	Position           string
	ShirtNo            string
}
