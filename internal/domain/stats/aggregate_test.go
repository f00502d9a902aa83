package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_AddZeroIdentityAndAssociativity(t *testing.T) {
	t.Parallel()

	a := Aggregate{Matches: 3, Wins: 2, Draws: 1, GoalsScored: 7, GoalsConceded: 2, GoalDifference: 5, Fouls: 4}
	b := Aggregate{Matches: 2, Losses: 2, GoalsScored: 1, GoalsConceded: 6, GoalDifference: -5, RedCards: 1}
	c := Aggregate{Matches: 1, Draws: 1, TieBreakGoals: 2, YellowCards: 3}

	assert.Equal(t, a, a.Add(Aggregate{}))
	assert.Equal(t, a, Aggregate{}.Add(a))
	assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
}

func TestAggregate_PointsFormula(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		wins, draws, want int
	}{
		{0, 0, 0},
		{1, 0, 3},
		{0, 1, 1},
		{4, 2, 14},
	} {
		got := Aggregate{Wins: tc.wins, Draws: tc.draws}.Points()
		require.Equal(t, tc.want, got, "wins=%d draws=%d", tc.wins, tc.draws)
	}
}

func TestSideAggregate_PerspectiveFlip(t *testing.T) {
	t.Parallel()

	r := MatchResult{
		HomeScore:         3,
		AwayScore:         1,
		IsHomeWin:         true,
		HomeTieBreakScore: 1,
		HomeFouls:         5,
		AwayFouls:         2,
		AwayYellowCards:   1,
		HomeRedCards:      1,
	}

	home := SideAggregate(r, true)
	away := SideAggregate(r, false)

	require.Equal(t, 1, home.Wins)
	require.Equal(t, 1, away.Losses)
	assert.Equal(t, 3, home.GoalsScored)
	assert.Equal(t, 3, away.GoalsConceded)
	assert.Equal(t, 2, home.GoalDifference)
	assert.Equal(t, -2, away.GoalDifference)
	assert.Equal(t, 1, home.TieBreakGoals)
	assert.Equal(t, 5, home.Fouls)
	assert.Equal(t, 1, away.YellowCards)
	assert.Equal(t, 1, home.RedCards)

	// Both perspectives of one match must add up to a consistent whole.
	total := home.Add(away)
	assert.Equal(t, 2, total.Matches)
	assert.Equal(t, total.GoalsScored, total.GoalsConceded)
	assert.Equal(t, 0, total.GoalDifference)
}

func TestAggregate_FairPlaySentinel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(1000), Aggregate{}.FairPlayScore())
	assert.Equal(t, 2.5, Aggregate{Matches: 2, Fouls: 5}.FairPlayScore())
}
