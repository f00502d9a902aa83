package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	"github.com/ligadavila/copa-engine/internal/domain/person"
	"github.com/ligadavila/copa-engine/internal/domain/registration"
	"github.com/ligadavila/copa-engine/internal/domain/stats"
)

// MatchResultView is a match with its recomputed outcome. MatchtimeMinutes
// is live elapsed time for a running match and zero otherwise.
type MatchResultView struct {
	Match            match.Match
	Result           stats.MatchResult
	Venue            *match.Venue
	MatchtimeMinutes float64
}

// BreakdownRow is one player's event tallies within a single match.
type BreakdownRow struct {
	PlayerRegistrationID string
	PersonID             string
	PersonName           string
	ShirtNo              string
	Position             string
	Goals                int
	OwnGoals             int
	TieBreakGoals        int
	Fouls                int
	YellowCards          int
	RedCards             int
}

// MatchBreakdown lists both squads' per-player tallies, each side ordered
// by shirt number.
type MatchBreakdown struct {
	MatchID string
	Home    []BreakdownRow
	Away    []BreakdownRow
}

type MatchResultService struct {
	matchRepo  match.Repository
	venueRepo  match.VenueRepository
	eventRepo  matchevent.Repository
	regRepo    registration.Repository
	personRepo person.Repository
	now        func() time.Time
}

func NewMatchResultService(
	matchRepo match.Repository,
	venueRepo match.VenueRepository,
	eventRepo matchevent.Repository,
	regRepo registration.Repository,
	personRepo person.Repository,
) *MatchResultService {
	return &MatchResultService{
		matchRepo:  matchRepo,
		venueRepo:  venueRepo,
		eventRepo:  eventRepo,
		regRepo:    regRepo,
		personRepo: personRepo,
		now:        time.Now,
	}
}

// WithNow overrides the clock used for live match time.
func (s *MatchResultService) WithNow(now func() time.Time) *MatchResultService {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *MatchResultService) Result(ctx context.Context, matchID string) (MatchResultView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.Result")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchResultView{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchResultView{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchResultView{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	events, err := s.eventRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchResultView{}, fmt.Errorf("list match events: %w", err)
	}

	view := MatchResultView{
		Match:  m,
		Result: stats.ComputeMatchResult(m, events),
	}

	if m.Status == match.StatusInProgress && m.ActualStart != nil {
		view.MatchtimeMinutes = s.now().Sub(*m.ActualStart).Minutes()
	}

	if s.venueRepo != nil && m.VenueID != "" {
		venue, ok, err := s.venueRepo.GetVenueByID(ctx, m.VenueID)
		if err != nil {
			return MatchResultView{}, fmt.Errorf("get venue: %w", err)
		}
		if ok {
			view.Venue = &venue
		}
	}

	return view, nil
}

func (s *MatchResultService) Breakdown(ctx context.Context, matchID string) (MatchBreakdown, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.Breakdown")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchBreakdown{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchBreakdown{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchBreakdown{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	events, err := s.eventRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchBreakdown{}, fmt.Errorf("list match events: %w", err)
	}

	tallies := make(map[string]BreakdownRow)
	for _, e := range events {
		if e.MatchID != m.ID || e.PlayerRegistrationID == "" {
			continue
		}
		row := tallies[e.PlayerRegistrationID]
		switch e.Type {
		case matchevent.TypeGoal:
			row.Goals++
		case matchevent.TypeOwnGoal:
			row.OwnGoals++
		case matchevent.TypeTieBreakPenaltyGoal:
			row.TieBreakGoals++
		case matchevent.TypeFoul:
			row.Fouls++
		case matchevent.TypeYellowCard:
			row.YellowCards++
		case matchevent.TypeRedCard:
			row.RedCards++
		}
		tallies[e.PlayerRegistrationID] = row
	}

	home, err := s.squadRows(ctx, m.HomeTeamRegID, tallies)
	if err != nil {
		return MatchBreakdown{}, err
	}
	away, err := s.squadRows(ctx, m.AwayTeamRegID, tallies)
	if err != nil {
		return MatchBreakdown{}, err
	}

	return MatchBreakdown{MatchID: m.ID, Home: home, Away: away}, nil
}

func (s *MatchResultService) squadRows(ctx context.Context, teamRegID string, tallies map[string]BreakdownRow) ([]BreakdownRow, error) {
	players, err := s.regRepo.ListPlayerRegistrationsByTeamRegistration(ctx, teamRegID)
	if err != nil {
		return nil, fmt.Errorf("list squad: %w", err)
	}

	rows := make([]BreakdownRow, 0, len(players))
	for _, p := range players {
		row := tallies[p.ID]
		row.PlayerRegistrationID = p.ID
		row.PersonID = p.PersonID
		row.ShirtNo = p.ShirtNo
		row.Position = p.Position

		if s.personRepo != nil {
			who, ok, err := s.personRepo.GetByID(ctx, p.PersonID)
			if err != nil {
				return nil, fmt.Errorf("get person: %w", err)
			}
			if ok {
				row.PersonName = who.Name
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return shirtNoLess(rows[i].ShirtNo, rows[j].ShirtNo)
	})

	return rows, nil
}

// shirtNoLess orders shirt numbers numerically when both parse as
// integers. Non-numeric shirts (squad sheets sometimes carry "C" or "GK")
// sort after numeric ones, among themselves lexically.
func shirtNoLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
