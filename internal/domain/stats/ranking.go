package stats

// RankingKey orders group standings. Priority, all descending: points,
// wins, goal difference, goals scored including tie-break goals; then
// fewer red cards, fewer yellow cards, fewer fouls. Encoded as an explicit
// field-by-field comparison rather than the decimal-band float packing the
// bookkeeping spreadsheets used, which silently corrupted the order once a
// field outgrew its digit band.
type RankingKey struct {
	Points         int
	Wins           int
	GoalDifference int
	GoalsTotal     int
	RedCards       int
	YellowCards    int
	Fouls          int
}

// RankingKey derives the composite sort key for an aggregate.
func (a Aggregate) RankingKey() RankingKey {
	return RankingKey{
		Points:         a.Points(),
		Wins:           a.Wins,
		GoalDifference: a.GoalDifference,
		GoalsTotal:     a.GoalsScored + a.TieBreakGoals,
		RedCards:       a.RedCards,
		YellowCards:    a.YellowCards,
		Fouls:          a.Fouls,
	}
}

// Compare returns -1, 0 or 1 as k ranks below, equal to or above other.
func (k RankingKey) Compare(other RankingKey) int {
	if c := cmpInt(k.Points, other.Points); c != 0 {
		return c
	}
	if c := cmpInt(k.Wins, other.Wins); c != 0 {
		return c
	}
	if c := cmpInt(k.GoalDifference, other.GoalDifference); c != 0 {
		return c
	}
	if c := cmpInt(k.GoalsTotal, other.GoalsTotal); c != 0 {
		return c
	}
	// Discipline fields invert: fewer is better.
	if c := cmpInt(other.RedCards, k.RedCards); c != 0 {
		return c
	}
	if c := cmpInt(other.YellowCards, k.YellowCards); c != 0 {
		return c
	}
	return cmpInt(other.Fouls, k.Fouls)
}

// Beats reports whether k strictly outranks other.
func (k RankingKey) Beats(other RankingKey) bool {
	return k.Compare(other) > 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
