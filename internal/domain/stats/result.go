package stats

import (
	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
)

// MatchResult is one match's derived outcome. A team's score is its own
// goals plus the opponent's own goals; the tie-break score counts only
// tie-break penalty goals and never feeds the draw/win flags, which compare
// regulation score alone. The tie-break winner flags exist for knockout
// display only.
type MatchResult struct {
	MatchID           string
	HomeScore         int
	AwayScore         int
	HomeTieBreakScore int
	AwayTieBreakScore int
	IsDraw            bool
	IsHomeWin         bool
	IsAwayWin         bool
	HomeTieBreakWin   bool
	AwayTieBreakWin   bool
	HomeFouls         int
	AwayFouls         int
	HomeYellowCards   int
	AwayYellowCards   int
	HomeRedCards      int
	AwayRedCards      int
}

// ComputeMatchResult folds a match's events into its result. It is pure and
// deterministic: the same event set always yields the same result. Events
// attributed to a registration that is not a participant are skipped; a
// match with no events of a given type yields zero counts, not an error.
func ComputeMatchResult(m match.Match, events []matchevent.Event) MatchResult {
	var homeGoals, awayGoals, homeOwnGoals, awayOwnGoals int
	result := MatchResult{MatchID: m.ID}

	for _, e := range events {
		if e.MatchID != m.ID {
			continue
		}

		var home bool
		switch e.TeamRegistrationID {
		case m.HomeTeamRegID:
			home = true
		case m.AwayTeamRegID:
			home = false
		default:
			continue
		}

		switch e.Type {
		case matchevent.TypeGoal:
			if home {
				homeGoals++
			} else {
				awayGoals++
			}
		case matchevent.TypeOwnGoal:
			if home {
				homeOwnGoals++
			} else {
				awayOwnGoals++
			}
		case matchevent.TypeTieBreakPenaltyGoal:
			if home {
				result.HomeTieBreakScore++
			} else {
				result.AwayTieBreakScore++
			}
		case matchevent.TypeFoul:
			if home {
				result.HomeFouls++
			} else {
				result.AwayFouls++
			}
		case matchevent.TypeYellowCard:
			if home {
				result.HomeYellowCards++
			} else {
				result.AwayYellowCards++
			}
		case matchevent.TypeRedCard:
			if home {
				result.HomeRedCards++
			} else {
				result.AwayRedCards++
			}
		}
	}

	// An own goal scores for the opposing side.
	result.HomeScore = homeGoals + awayOwnGoals
	result.AwayScore = awayGoals + homeOwnGoals

	result.IsHomeWin = result.HomeScore > result.AwayScore
	result.IsAwayWin = result.HomeScore < result.AwayScore
	result.IsDraw = result.HomeScore == result.AwayScore
	result.HomeTieBreakWin = result.HomeTieBreakScore > result.AwayTieBreakScore
	result.AwayTieBreakWin = result.HomeTieBreakScore < result.AwayTieBreakScore

	return result
}
