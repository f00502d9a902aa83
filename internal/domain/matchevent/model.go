package matchevent

import "time"

// EventType is the closed vocabulary of things the scorekeeper can log.
// Reference data; the engine never mutates it.
type EventType string

const (
	TypeGoal                EventType = "goal"
	TypeOwnGoal             EventType = "own_goal"
	TypeTieBreakPenaltyGoal EventType = "tie_break_penalty_goal"
	TypeFoul                EventType = "foul"
	TypeYellowCard          EventType = "yellow_card"
	TypeRedCard             EventType = "red_card"
)

// Valid reports whether the type belongs to the vocabulary.
func (t EventType) Valid() bool {
	switch t {
	case TypeGoal, TypeOwnGoal, TypeTieBreakPenaltyGoal, TypeFoul, TypeYellowCard, TypeRedCard:
		return true
	default:
		return false
	}
}

// Event is one timestamped occurrence inside a match. Immutable once
// appended; every downstream statistic is a pure function of the event set.
type Event struct {
	ID                   string
	MatchID              string
	Type                 EventType
	TeamRegistrationID   string
	PlayerRegistrationID string
	Timestamp            time.Time
	MatchtimeMinutes     float64
}
