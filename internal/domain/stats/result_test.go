package stats

import (
	"testing"

	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
)

func testMatch() match.Match {
	return match.Match{
		ID:            "m1",
		MatchNo:       1,
		GroupID:       "g1",
		HomeTeamRegID: "reg-home",
		AwayTeamRegID: "reg-away",
		Status:        match.StatusFinished,
	}
}

func TestComputeMatchResult_OwnGoalScoresForOpponent(t *testing.T) {
	t.Parallel()

	m := testMatch()
	events := []matchevent.Event{
		{ID: "e1", MatchID: m.ID, Type: matchevent.TypeGoal, TeamRegistrationID: "reg-home"},
		{ID: "e2", MatchID: m.ID, Type: matchevent.TypeGoal, TeamRegistrationID: "reg-home"},
		{ID: "e3", MatchID: m.ID, Type: matchevent.TypeGoal, TeamRegistrationID: "reg-away"},
		{ID: "e4", MatchID: m.ID, Type: matchevent.TypeOwnGoal, TeamRegistrationID: "reg-away"},
		{ID: "e5", MatchID: m.ID, Type: matchevent.TypeYellowCard, TeamRegistrationID: "reg-home"},
	}

	got := ComputeMatchResult(m, events)

	if got.HomeScore != 3 || got.AwayScore != 1 {
		t.Fatalf("expected 3-1, got %d-%d", got.HomeScore, got.AwayScore)
	}
	if !got.IsHomeWin || got.IsDraw || got.IsAwayWin {
		t.Fatalf("expected home win flags, got %+v", got)
	}
	if got.HomeYellowCards != 1 || got.AwayYellowCards != 0 {
		t.Fatalf("unexpected card counts: %+v", got)
	}
}

func TestComputeMatchResult_NoEventsYieldsZeroes(t *testing.T) {
	t.Parallel()

	got := ComputeMatchResult(testMatch(), nil)

	if got.HomeScore != 0 || got.AwayScore != 0 {
		t.Fatalf("expected 0-0, got %d-%d", got.HomeScore, got.AwayScore)
	}
	if !got.IsDraw || got.IsHomeWin || got.IsAwayWin {
		t.Fatalf("expected draw flags on 0-0, got %+v", got)
	}
}

func TestComputeMatchResult_TieBreakNeverOverridesOutcome(t *testing.T) {
	t.Parallel()

	m := testMatch()
	events := []matchevent.Event{
		{ID: "e1", MatchID: m.ID, Type: matchevent.TypeGoal, TeamRegistrationID: "reg-home"},
		{ID: "e2", MatchID: m.ID, Type: matchevent.TypeGoal, TeamRegistrationID: "reg-away"},
		{ID: "e3", MatchID: m.ID, Type: matchevent.TypeTieBreakPenaltyGoal, TeamRegistrationID: "reg-away"},
		{ID: "e4", MatchID: m.ID, Type: matchevent.TypeTieBreakPenaltyGoal, TeamRegistrationID: "reg-away"},
		{ID: "e5", MatchID: m.ID, Type: matchevent.TypeTieBreakPenaltyGoal, TeamRegistrationID: "reg-home"},
	}

	got := ComputeMatchResult(m, events)

	if !got.IsDraw {
		t.Fatalf("regulation 1-1 must stay a draw, got %+v", got)
	}
	if got.HomeTieBreakScore != 1 || got.AwayTieBreakScore != 2 {
		t.Fatalf("unexpected tie-break score %d-%d", got.HomeTieBreakScore, got.AwayTieBreakScore)
	}
	if got.HomeTieBreakWin || !got.AwayTieBreakWin {
		t.Fatalf("expected away tie-break win, got %+v", got)
	}
}

func TestComputeMatchResult_ScoreSymmetry(t *testing.T) {
	t.Parallel()

	m := testMatch()
	events := []matchevent.Event{
		{ID: "e1", MatchID: m.ID, Type: matchevent.TypeGoal, TeamRegistrationID: "reg-home"},
		{ID: "e2", MatchID: m.ID, Type: matchevent.TypeOwnGoal, TeamRegistrationID: "reg-home"},
		{ID: "e3", MatchID: m.ID, Type: matchevent.TypeGoal, TeamRegistrationID: "reg-away"},
		{ID: "e4", MatchID: m.ID, Type: matchevent.TypeOwnGoal, TeamRegistrationID: "reg-away"},
		{ID: "e5", MatchID: m.ID, Type: matchevent.TypeGoal, TeamRegistrationID: "reg-away"},
	}

	got := ComputeMatchResult(m, events)

	goalEvents := 0
	for _, e := range events {
		if e.Type == matchevent.TypeGoal || e.Type == matchevent.TypeOwnGoal {
			goalEvents++
		}
	}
	if got.HomeScore+got.AwayScore != goalEvents {
		t.Fatalf("score symmetry broken: %d+%d != %d", got.HomeScore, got.AwayScore, goalEvents)
	}
}

func TestComputeMatchResult_IgnoresStrayReferences(t *testing.T) {
	t.Parallel()

	m := testMatch()
	events := []matchevent.Event{
		{ID: "e1", MatchID: m.ID, Type: matchevent.TypeGoal, TeamRegistrationID: "reg-elsewhere"},
		{ID: "e2", MatchID: "other-match", Type: matchevent.TypeGoal, TeamRegistrationID: "reg-home"},
	}

	got := ComputeMatchResult(m, events)
	if got.HomeScore != 0 || got.AwayScore != 0 {
		t.Fatalf("stray events must not count, got %d-%d", got.HomeScore, got.AwayScore)
	}
}

func TestComputeMatchResult_Deterministic(t *testing.T) {
	t.Parallel()

	m := testMatch()
	events := []matchevent.Event{
		{ID: "e1", MatchID: m.ID, Type: matchevent.TypeGoal, TeamRegistrationID: "reg-home"},
		{ID: "e2", MatchID: m.ID, Type: matchevent.TypeFoul, TeamRegistrationID: "reg-away"},
		{ID: "e3", MatchID: m.ID, Type: matchevent.TypeRedCard, TeamRegistrationID: "reg-away"},
	}

	first := ComputeMatchResult(m, events)
	for i := 0; i < 10; i++ {
		if got := ComputeMatchResult(m, events); got != first {
			t.Fatalf("recomputation diverged: %+v vs %+v", got, first)
		}
	}
}
