package group

// Stage ordinals. Knockout achievements are gated on these: a win at the
// final stage is a title, a loss there a runner-up finish, and a win at the
// third-place stage a third-place finish.
const (
	StageGroup      = 1
	StageThirdPlace = 2
	StageFinal      = 3
)

// Group is a standings-bearing set of team registrations within one
// tournament. TeamRegistrationIDs keeps enrollment order; standings must
// preserve it for teams whose ranking keys compare equal.
type Group struct {
	ID                  string
	Name                string
	TournamentID        string
	Stage               int
	TeamRegistrationIDs []string
}
