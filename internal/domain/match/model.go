package match

import "time"

// Status is the lifecycle ordinal. Only matches past Scheduled count
// toward any aggregate, even if events exist for them.
type Status int

const (
	StatusScheduled  Status = 1
	StatusInProgress Status = 2
	StatusFinished   Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusInProgress:
		return "in_progress"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// CountsForStandings reports whether the match contributes to aggregates.
func (s Status) CountsForStandings() bool {
	return s > StatusScheduled
}

// Venue is where a match is played. Address feeds the map-link helper.
type Venue struct {
	ID      string
	Name    string
	Address string
}

// Match is one fixture between two team registrations of the same
// tournament. Its score is never stored; it is always recomputed from the
// match's events.
type Match struct {
	ID            string
	MatchNo       int
	GroupID       string
	HomeTeamRegID string
	AwayTeamRegID string
	ScheduledAt   time.Time
	ActualStart   *time.Time
	ActualFinish  *time.Time
	Status        Status
	VenueID       string
}

// Participates reports whether the registration plays in this match.
func (m Match) Participates(teamRegID string) bool {
	return teamRegID == m.HomeTeamRegID || teamRegID == m.AwayTeamRegID
}

// IsHome reports the registration's side; callers must have checked
// Participates first.
func (m Match) IsHome(teamRegID string) bool {
	return teamRegID == m.HomeTeamRegID
}
