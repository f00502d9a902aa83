package stats

import (
	"math/rand"
	"testing"
)

// bandedIndex reproduces the legacy single-float packing of the ranking
// fields into disjoint decimal-digit bands. Kept here only to pin the
// tuple comparator to the same relative order within the bands' assumed
// bounds.
func bandedIndex(k RankingKey) float64 {
	return float64(k.Points)*1e6 +
		float64(k.Wins)*1e4 +
		float64(50+k.GoalDifference)*1e2 +
		float64(k.GoalsTotal) +
		float64(99-k.RedCards)*1e-2 +
		float64(99-k.YellowCards)*1e-4 +
		float64(999-k.Fouls)*1e-7
}

// randomBoundedKey samples keys the legacy packing can actually hold.
// The goal-difference band stores 50+gd in two digits, so gd tops out at
// +49; at +50 the band carries into the wins digit and the encodings
// disagree (pinned below).
func randomBoundedKey(rng *rand.Rand) RankingKey {
	wins := rng.Intn(20)
	draws := rng.Intn(20)
	return RankingKey{
		Points:         3*wins + draws,
		Wins:           wins,
		GoalDifference: rng.Intn(100) - 50,
		GoalsTotal:     rng.Intn(100),
		RedCards:       rng.Intn(99),
		YellowCards:    rng.Intn(99),
		Fouls:          rng.Intn(999),
	}
}

func TestRankingKey_MatchesBandedFloatOrderingWithinBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20000; i++ {
		a := randomBoundedKey(rng)
		b := randomBoundedKey(rng)

		fa, fb := bandedIndex(a), bandedIndex(b)
		var want int
		switch {
		case fa < fb:
			want = -1
		case fa > fb:
			want = 1
		}

		if got := a.Compare(b); got != want {
			t.Fatalf("ordering mismatch: %+v vs %+v: tuple=%d banded=%d (%v, %v)", a, b, got, want, fa, fb)
		}
	}
}

func TestRankingKey_AuthoritativeWhereBandedPackingOverflows(t *testing.T) {
	t.Parallel()

	// At gd=+50 the legacy (50+gd)*1e2 band reaches 100 and bleeds into
	// the wins digit, so the packed float promotes a two-win team over a
	// three-win one. The tuple comparator is authoritative there: wins
	// decide once points are equal.
	a := RankingKey{Points: 9, Wins: 2, GoalDifference: 50, GoalsTotal: 5}
	b := RankingKey{Points: 9, Wins: 3, GoalDifference: -50, GoalsTotal: 0}

	if bandedIndex(a) <= bandedIndex(b) {
		t.Fatalf("expected the overflowed packing to favor a: %v vs %v", bandedIndex(a), bandedIndex(b))
	}
	if !b.Beats(a) {
		t.Fatalf("more wins at equal points must outrank regardless of goal difference")
	}
	if got := a.Compare(b); got != -1 {
		t.Fatalf("Compare=%d, want -1", got)
	}
}

func TestRankingKey_SingleFieldFlips(t *testing.T) {
	t.Parallel()

	base := RankingKey{Points: 10, Wins: 3, GoalDifference: 2, GoalsTotal: 8, RedCards: 1, YellowCards: 2, Fouls: 14}

	cases := []struct {
		name   string
		mutate func(k RankingKey) RankingKey
		beats  bool
	}{
		{"more points", func(k RankingKey) RankingKey { k.Points++; return k }, true},
		{"more wins", func(k RankingKey) RankingKey { k.Wins++; return k }, true},
		{"better goal difference", func(k RankingKey) RankingKey { k.GoalDifference++; return k }, true},
		{"more goals", func(k RankingKey) RankingKey { k.GoalsTotal++; return k }, true},
		{"more red cards", func(k RankingKey) RankingKey { k.RedCards++; return k }, false},
		{"more yellow cards", func(k RankingKey) RankingKey { k.YellowCards++; return k }, false},
		{"more fouls", func(k RankingKey) RankingKey { k.Fouls++; return k }, false},
	}

	for _, tc := range cases {
		mutated := tc.mutate(base)
		if got := mutated.Beats(base); got != tc.beats {
			t.Fatalf("%s: Beats=%v, want %v", tc.name, got, tc.beats)
		}
		if base.Compare(base) != 0 {
			t.Fatalf("self compare must be 0")
		}
	}
}

func TestRankingKey_DisciplineOnlyBreaksExactTies(t *testing.T) {
	t.Parallel()

	clean := RankingKey{Points: 4, Wins: 1, GoalDifference: 0, GoalsTotal: 3, Fouls: 2}
	dirty := clean
	dirty.RedCards = 1

	if !clean.Beats(dirty) {
		t.Fatalf("cleaner team must outrank on equal sporting fields")
	}
}
