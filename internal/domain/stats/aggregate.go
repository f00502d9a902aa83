package stats

// Aggregate is the additive per-team counter block. Its zero value is the
// fold identity and Add is associative, so rolling up N children is a plain
// fold regardless of whether the children are matches, groups or whole
// registrations.
type Aggregate struct {
	Matches        int
	Wins           int
	Draws          int
	Losses         int
	GoalsScored    int
	GoalsConceded  int
	GoalDifference int
	TieBreakGoals  int
	Fouls          int
	YellowCards    int
	RedCards       int
}

// Points applies the standings formula: three per win, one per draw.
func (a Aggregate) Points() int {
	return 3*a.Wins + a.Draws
}

// Add combines two aggregates field by field.
func (a Aggregate) Add(b Aggregate) Aggregate {
	return Aggregate{
		Matches:        a.Matches + b.Matches,
		Wins:           a.Wins + b.Wins,
		Draws:          a.Draws + b.Draws,
		Losses:         a.Losses + b.Losses,
		GoalsScored:    a.GoalsScored + b.GoalsScored,
		GoalsConceded:  a.GoalsConceded + b.GoalsConceded,
		GoalDifference: a.GoalDifference + b.GoalDifference,
		TieBreakGoals:  a.TieBreakGoals + b.TieBreakGoals,
		Fouls:          a.Fouls + b.Fouls,
		YellowCards:    a.YellowCards + b.YellowCards,
		RedCards:       a.RedCards + b.RedCards,
	}
}

// SideAggregate extracts one side's perspective of a match result as an
// addable single-match aggregate.
func SideAggregate(r MatchResult, home bool) Aggregate {
	out := Aggregate{Matches: 1}
	if r.IsDraw {
		out.Draws = 1
	}
	if home {
		if r.IsHomeWin {
			out.Wins = 1
		}
		if r.IsAwayWin {
			out.Losses = 1
		}
		out.GoalsScored = r.HomeScore
		out.GoalsConceded = r.AwayScore
		out.TieBreakGoals = r.HomeTieBreakScore
		out.Fouls = r.HomeFouls
		out.YellowCards = r.HomeYellowCards
		out.RedCards = r.HomeRedCards
	} else {
		if r.IsAwayWin {
			out.Wins = 1
		}
		if r.IsHomeWin {
			out.Losses = 1
		}
		out.GoalsScored = r.AwayScore
		out.GoalsConceded = r.HomeScore
		out.TieBreakGoals = r.AwayTieBreakScore
		out.Fouls = r.AwayFouls
		out.YellowCards = r.AwayYellowCards
		out.RedCards = r.AwayRedCards
	}
	out.GoalDifference = out.GoalsScored - out.GoalsConceded
	return out
}

// FairPlayScore is fouls per match played, lower is better. A team that
// never played ranks worst via the 1000 sentinel instead of dividing by
// zero.
func (a Aggregate) FairPlayScore() float64 {
	if a.Matches == 0 {
		return 1000
	}
	return float64(a.Fouls) / float64(a.Matches)
}
