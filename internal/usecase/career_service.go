package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/ligadavila/copa-engine/internal/domain/group"
	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	"github.com/ligadavila/copa-engine/internal/domain/person"
	"github.com/ligadavila/copa-engine/internal/domain/registration"
	"github.com/ligadavila/copa-engine/internal/domain/stats"
	"github.com/ligadavila/copa-engine/internal/domain/team"
)

const defaultCareerWorkers = 8

// TeamCareerStats is everything one team registration has accumulated,
// recomputed from its matches' events. Achievements come from knockout
// stages: a final won is a title, a final lost a runner-up finish, a
// third-place match won a third-place finish.
type TeamCareerStats struct {
	TeamRegistrationID    string
	TeamID                string
	TeamName              string
	Aggregate             stats.Aggregate
	Points                int
	CleanSheets           int
	OwnGoals              int
	FoulsAgainst          int
	TieBreakGoalsConceded int
	Titles                int
	RunnerUps             int
	ThirdPlaces           int
	FairPlay              float64
}

// PersonCareerStats mixes two views: team fields sum the career stats of
// every team registration the person played under, and the personal
// counters tally only the events attributed to the person directly.
type PersonCareerStats struct {
	PersonID      string
	PersonName    string
	Registrations int
	Team          stats.Aggregate
	TeamPoints    int
	CleanSheets   int
	Titles        int
	RunnerUps     int
	ThirdPlaces   int
	Goals         int
	OwnGoals      int
	TieBreakGoals int
	Fouls         int
	YellowCards   int
	RedCards      int
}

type CareerService struct {
	regRepo    registration.Repository
	matchRepo  match.Repository
	eventRepo  matchevent.Repository
	groupRepo  group.Repository
	teamRepo   team.Repository
	personRepo person.Repository
	workers    int
}

func NewCareerService(
	regRepo registration.Repository,
	matchRepo match.Repository,
	eventRepo matchevent.Repository,
	groupRepo group.Repository,
	teamRepo team.Repository,
	personRepo person.Repository,
	workers int,
) *CareerService {
	if workers <= 0 {
		workers = defaultCareerWorkers
	}
	return &CareerService{
		regRepo:    regRepo,
		matchRepo:  matchRepo,
		eventRepo:  eventRepo,
		groupRepo:  groupRepo,
		teamRepo:   teamRepo,
		personRepo: personRepo,
		workers:    workers,
	}
}

// teamContribution is one counting match's addition to a registration's
// career line. Contributions commute, so concurrent completion order does
// not matter.
type teamContribution struct {
	agg              stats.Aggregate
	cleanSheet       int
	ownGoals         int
	foulsAgainst     int
	tieBreakConceded int
	title            int
	runnerUp         int
	thirdPlace       int
}

func (s *CareerService) TeamRegistrationStats(ctx context.Context, teamRegID string) (TeamCareerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.TeamRegistrationStats")
	defer span.End()

	teamRegID = strings.TrimSpace(teamRegID)
	if teamRegID == "" {
		return TeamCareerStats{}, fmt.Errorf("%w: team registration id is required", ErrInvalidInput)
	}

	reg, exists, err := s.regRepo.GetTeamRegistration(ctx, teamRegID)
	if err != nil {
		return TeamCareerStats{}, fmt.Errorf("get team registration: %w", err)
	}
	if !exists {
		return TeamCareerStats{}, fmt.Errorf("%w: team registration=%s", ErrNotFound, teamRegID)
	}

	matches, err := s.matchRepo.ListPlayedByTeamRegistration(ctx, teamRegID)
	if err != nil {
		return TeamCareerStats{}, fmt.Errorf("list registration matches: %w", err)
	}

	p := pool.NewWithResults[teamContribution]().WithContext(ctx).WithMaxGoroutines(s.workers)
	for _, m := range matches {
		m := m
		if !m.Participates(teamRegID) {
			continue
		}
		p.Go(func(ctx context.Context) (teamContribution, error) {
			return s.matchContribution(ctx, m, teamRegID)
		})
	}
	contributions, err := p.Wait()
	if err != nil {
		return TeamCareerStats{}, err
	}

	out := TeamCareerStats{TeamRegistrationID: reg.ID, TeamID: reg.TeamID}
	for _, c := range contributions {
		out.Aggregate = out.Aggregate.Add(c.agg)
		out.CleanSheets += c.cleanSheet
		out.OwnGoals += c.ownGoals
		out.FoulsAgainst += c.foulsAgainst
		out.TieBreakGoalsConceded += c.tieBreakConceded
		out.Titles += c.title
		out.RunnerUps += c.runnerUp
		out.ThirdPlaces += c.thirdPlace
	}
	out.Points = out.Aggregate.Points()
	out.FairPlay = out.Aggregate.FairPlayScore()

	t, exists, err := s.teamRepo.GetByID(ctx, reg.TeamID)
	if err != nil {
		return TeamCareerStats{}, fmt.Errorf("get team: %w", err)
	}
	if exists {
		out.TeamName = t.Name
	}

	return out, nil
}

func (s *CareerService) matchContribution(ctx context.Context, m match.Match, teamRegID string) (teamContribution, error) {
	events, err := s.eventRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return teamContribution{}, fmt.Errorf("list events for match %s: %w", m.ID, err)
	}

	result := stats.ComputeMatchResult(m, events)
	home := m.IsHome(teamRegID)

	c := teamContribution{agg: stats.SideAggregate(result, home)}
	if c.agg.GoalsConceded == 0 {
		c.cleanSheet = 1
	}
	if home {
		c.foulsAgainst = result.AwayFouls
		c.tieBreakConceded = result.AwayTieBreakScore
	} else {
		c.foulsAgainst = result.HomeFouls
		c.tieBreakConceded = result.HomeTieBreakScore
	}
	for _, e := range events {
		if e.MatchID == m.ID && e.Type == matchevent.TypeOwnGoal && e.TeamRegistrationID == teamRegID {
			c.ownGoals++
		}
	}

	g, exists, err := s.groupRepo.GetByID(ctx, m.GroupID)
	if err != nil {
		return teamContribution{}, fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return c, nil
	}

	won := (home && result.IsHomeWin) || (!home && result.IsAwayWin)
	lost := (home && result.IsAwayWin) || (!home && result.IsHomeWin)
	switch g.Stage {
	case group.StageFinal:
		if won {
			c.title = 1
		}
		if lost {
			c.runnerUp = 1
		}
	case group.StageThirdPlace:
		if won {
			c.thirdPlace = 1
		}
	}

	return c, nil
}

func (s *CareerService) PersonStats(ctx context.Context, personID string) (PersonCareerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.PersonStats")
	defer span.End()

	personID = strings.TrimSpace(personID)
	if personID == "" {
		return PersonCareerStats{}, fmt.Errorf("%w: person id is required", ErrInvalidInput)
	}

	who, exists, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		return PersonCareerStats{}, fmt.Errorf("get person: %w", err)
	}
	if !exists {
		return PersonCareerStats{}, fmt.Errorf("%w: person=%s", ErrNotFound, personID)
	}

	playerRegs, err := s.regRepo.ListPlayerRegistrationsByPerson(ctx, personID)
	if err != nil {
		return PersonCareerStats{}, fmt.Errorf("list player registrations: %w", err)
	}

	out := PersonCareerStats{
		PersonID:      who.ID,
		PersonName:    who.Name,
		Registrations: len(playerRegs),
	}

	// Team fields delegate to each registration's team career. A person who
	// played the same tournament under two registrations is counted under
	// both, matching how the club has always read these numbers.
	p := pool.NewWithResults[TeamCareerStats]().WithContext(ctx).WithMaxGoroutines(s.workers)
	for _, pr := range playerRegs {
		pr := pr
		p.Go(func(ctx context.Context) (TeamCareerStats, error) {
			return s.TeamRegistrationStats(ctx, pr.TeamRegistrationID)
		})
	}
	teamLines, err := p.Wait()
	if err != nil {
		return PersonCareerStats{}, err
	}
	for _, line := range teamLines {
		out.Team = out.Team.Add(line.Aggregate)
		out.CleanSheets += line.CleanSheets
		out.Titles += line.Titles
		out.RunnerUps += line.RunnerUps
		out.ThirdPlaces += line.ThirdPlaces
	}
	out.TeamPoints = out.Team.Points()

	if err := s.tallyPersonalEvents(ctx, playerRegs, &out); err != nil {
		return PersonCareerStats{}, err
	}

	return out, nil
}

// tallyPersonalEvents counts the person's own events across all their
// player registrations. Events from matches that never started are
// skipped, same as every other aggregate.
func (s *CareerService) tallyPersonalEvents(ctx context.Context, playerRegs []registration.PlayerRegistration, out *PersonCareerStats) error {
	counting := make(map[string]bool)

	for _, pr := range playerRegs {
		events, err := s.eventRepo.ListByPlayerRegistration(ctx, pr.ID)
		if err != nil {
			return fmt.Errorf("list player events: %w", err)
		}
		for _, e := range events {
			counts, seen := counting[e.MatchID]
			if !seen {
				m, exists, err := s.matchRepo.GetByID(ctx, e.MatchID)
				if err != nil {
					return fmt.Errorf("get match: %w", err)
				}
				counts = exists && m.Status.CountsForStandings()
				counting[e.MatchID] = counts
			}
			if !counts {
				continue
			}

			switch e.Type {
			case matchevent.TypeGoal:
				out.Goals++
			case matchevent.TypeOwnGoal:
				out.OwnGoals++
			case matchevent.TypeTieBreakPenaltyGoal:
				out.TieBreakGoals++
			case matchevent.TypeFoul:
				out.Fouls++
			case matchevent.TypeYellowCard:
				out.YellowCards++
			case matchevent.TypeRedCard:
				out.RedCards++
			}
		}
	}

	return nil
}
