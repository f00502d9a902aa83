package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ligadavila/copa-engine/internal/domain/group"
	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	"github.com/ligadavila/copa-engine/internal/domain/registration"
	"github.com/ligadavila/copa-engine/internal/domain/stats"
	"github.com/ligadavila/copa-engine/internal/domain/team"
	"github.com/ligadavila/copa-engine/internal/platform/cache"
)

const defaultStandingsWorkers = 8

// StandingRow is one team's line in a group table.
type StandingRow struct {
	Rank               int
	TeamRegistrationID string
	TeamID             string
	TeamName           string
	Aggregate          stats.Aggregate
	Points             int
	FairPlay           float64
}

// GroupStandings is a fully ordered group table recomputed from the match
// event log. Generation identifies the log state it was derived from.
type GroupStandings struct {
	GroupID    string
	GroupName  string
	Stage      int
	Generation uint64
	Rows       []StandingRow
}

type StandingsService struct {
	groupRepo group.Repository
	matchRepo match.Repository
	eventRepo matchevent.Repository
	regRepo   registration.Repository
	teamRepo  team.Repository
	cache     *cache.Store
	workers   int
}

func NewStandingsService(
	groupRepo group.Repository,
	matchRepo match.Repository,
	eventRepo matchevent.Repository,
	regRepo registration.Repository,
	teamRepo team.Repository,
	store *cache.Store,
	workers int,
) *StandingsService {
	if workers <= 0 {
		workers = defaultStandingsWorkers
	}
	return &StandingsService{
		groupRepo: groupRepo,
		matchRepo: matchRepo,
		eventRepo: eventRepo,
		regRepo:   regRepo,
		teamRepo:  teamRepo,
		cache:     store,
		workers:   workers,
	}
}

// GroupStandings returns the ordered table for one group. Results are
// cached per event-log generation, so a cached table can never be staler
// than the last recorded event.
func (s *StandingsService) GroupStandings(ctx context.Context, groupID string) (GroupStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.GroupStandings")
	defer span.End()

	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return GroupStandings{}, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	g, exists, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return GroupStandings{}, fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return GroupStandings{}, fmt.Errorf("%w: group=%s", ErrNotFound, groupID)
	}

	generation, err := s.eventRepo.Generation(ctx)
	if err != nil {
		return GroupStandings{}, fmt.Errorf("read event generation: %w", err)
	}

	if s.cache == nil {
		return s.computeStandings(ctx, g, generation)
	}

	key := standingsCacheKey(g.ID, generation)
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.computeStandings(ctx, g, generation)
	})
	if err != nil {
		return GroupStandings{}, err
	}

	standings, ok := value.(GroupStandings)
	if !ok {
		return GroupStandings{}, fmt.Errorf("unexpected cached standings type %T", value)
	}
	return standings, nil
}

// Invalidate drops every cached generation of one group's table.
func (s *StandingsService) Invalidate(ctx context.Context, groupID string) {
	if s.cache == nil || groupID == "" {
		return
	}
	s.cache.DeletePrefix(ctx, "standings:"+groupID+":")
}

func standingsCacheKey(groupID string, generation uint64) string {
	return fmt.Sprintf("standings:%s:%d", groupID, generation)
}

func (s *StandingsService) computeStandings(ctx context.Context, g group.Group, generation uint64) (GroupStandings, error) {
	counting, err := s.matchRepo.ListPlayedByGroup(ctx, g.ID)
	if err != nil {
		return GroupStandings{}, fmt.Errorf("list group matches: %w", err)
	}

	results, err := s.computeResults(ctx, counting)
	if err != nil {
		return GroupStandings{}, err
	}

	// Fold in enrollment order so the final stable sort preserves it for
	// teams whose ranking keys compare equal.
	perTeam := make(map[string]stats.Aggregate, len(g.TeamRegistrationIDs))
	for _, regID := range g.TeamRegistrationIDs {
		perTeam[regID] = stats.Aggregate{}
	}
	for i, m := range counting {
		if _, ok := perTeam[m.HomeTeamRegID]; ok {
			perTeam[m.HomeTeamRegID] = perTeam[m.HomeTeamRegID].Add(stats.SideAggregate(results[i], true))
		}
		if _, ok := perTeam[m.AwayTeamRegID]; ok {
			perTeam[m.AwayTeamRegID] = perTeam[m.AwayTeamRegID].Add(stats.SideAggregate(results[i], false))
		}
	}

	rows := make([]StandingRow, 0, len(g.TeamRegistrationIDs))
	for _, regID := range g.TeamRegistrationIDs {
		agg := perTeam[regID]
		row := StandingRow{
			TeamRegistrationID: regID,
			Aggregate:          agg,
			Points:             agg.Points(),
			FairPlay:           agg.FairPlayScore(),
		}
		if err := s.fillTeamIdentity(ctx, &row); err != nil {
			return GroupStandings{}, err
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Aggregate.RankingKey().Beats(rows[j].Aggregate.RankingKey())
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return GroupStandings{
		GroupID:    g.ID,
		GroupName:  g.Name,
		Stage:      g.Stage,
		Generation: generation,
		Rows:       rows,
	}, nil
}

// computeResults derives every match result on a bounded worker pool. Each
// result lands at its match's index so ordering never depends on worker
// scheduling.
func (s *StandingsService) computeResults(ctx context.Context, matches []match.Match) ([]stats.MatchResult, error) {
	results := make([]stats.MatchResult, len(matches))
	if len(matches) == 0 {
		return results, nil
	}

	workerCount := s.workers
	if workerCount > len(matches) {
		workerCount = len(matches)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	errs := make([]error, len(matches))
	var workers sync.WaitGroup
	for i, m := range matches {
		i, m := i, m
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			events, listErr := s.eventRepo.ListByMatch(ctx, m.ID)
			if listErr != nil {
				errs[i] = fmt.Errorf("list events for match %s: %w", m.ID, listErr)
				return
			}
			results[i] = stats.ComputeMatchResult(m, events)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit standings task: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *StandingsService) fillTeamIdentity(ctx context.Context, row *StandingRow) error {
	reg, exists, err := s.regRepo.GetTeamRegistration(ctx, row.TeamRegistrationID)
	if err != nil {
		return fmt.Errorf("get team registration: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team registration=%s", ErrInconsistentReference, row.TeamRegistrationID)
	}
	row.TeamID = reg.TeamID

	t, exists, err := s.teamRepo.GetByID(ctx, reg.TeamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if exists {
		row.TeamName = t.Name
	}
	return nil
}
