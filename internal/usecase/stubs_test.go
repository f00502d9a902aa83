package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/ligadavila/copa-engine/internal/domain/group"
	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	"github.com/ligadavila/copa-engine/internal/domain/person"
	"github.com/ligadavila/copa-engine/internal/domain/registration"
	"github.com/ligadavila/copa-engine/internal/domain/team"
	"github.com/ligadavila/copa-engine/internal/domain/tournament"
)

type stubMatchRepository struct {
	mu      sync.Mutex
	byID    map[string]match.Match
	byGroup map[string][]match.Match
	byReg   map[string][]match.Match
	updated []match.Match
}

func (r *stubMatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[matchID]
	return m, ok, nil
}

func (r *stubMatchRepository) ListPlayedByGroup(_ context.Context, groupID string) ([]match.Match, error) {
	return playedOnly(r.byGroup[groupID]), nil
}

func (r *stubMatchRepository) ListPlayedByTeamRegistration(_ context.Context, teamRegID string) ([]match.Match, error) {
	return playedOnly(r.byReg[teamRegID]), nil
}

func playedOnly(matches []match.Match) []match.Match {
	out := matches[:0:0]
	for _, m := range matches {
		if m.Status.CountsForStandings() {
			out = append(out, m)
		}
	}
	return out
}

func (r *stubMatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID == nil {
		r.byID = make(map[string]match.Match)
	}
	r.byID[m.ID] = m
	r.updated = append(r.updated, m)
	return nil
}

type stubEventRepository struct {
	mu         sync.Mutex
	byMatch    map[string][]matchevent.Event
	byPlayer   map[string][]matchevent.Event
	appended   []matchevent.Event
	generation uint64
}

func (r *stubEventRepository) ListByMatch(_ context.Context, matchID string) ([]matchevent.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byMatch[matchID], nil
}

func (r *stubEventRepository) ListByPlayerRegistration(_ context.Context, playerRegID string) ([]matchevent.Event, error) {
	return r.byPlayer[playerRegID], nil
}

func (r *stubEventRepository) Append(_ context.Context, e matchevent.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byMatch == nil {
		r.byMatch = make(map[string][]matchevent.Event)
	}
	r.byMatch[e.MatchID] = append(r.byMatch[e.MatchID], e)
	r.appended = append(r.appended, e)
	r.generation++
	return nil
}

func (r *stubEventRepository) Generation(_ context.Context) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation, nil
}

type stubGroupRepository struct {
	byID         map[string]group.Group
	byTournament map[string][]group.Group
}

func (r *stubGroupRepository) GetByID(_ context.Context, groupID string) (group.Group, bool, error) {
	g, ok := r.byID[groupID]
	return g, ok, nil
}

func (r *stubGroupRepository) ListByTournament(_ context.Context, tournamentID string) ([]group.Group, error) {
	return r.byTournament[tournamentID], nil
}

type stubRegistrationRepository struct {
	teamRegs   map[string]registration.TeamRegistration
	playerRegs map[string]registration.PlayerRegistration
	byTeamReg  map[string][]registration.PlayerRegistration
	byPerson   map[string][]registration.PlayerRegistration
}

func (r *stubRegistrationRepository) GetTeamRegistration(_ context.Context, teamRegID string) (registration.TeamRegistration, bool, error) {
	reg, ok := r.teamRegs[teamRegID]
	return reg, ok, nil
}

func (r *stubRegistrationRepository) GetPlayerRegistration(_ context.Context, playerRegID string) (registration.PlayerRegistration, bool, error) {
	pr, ok := r.playerRegs[playerRegID]
	return pr, ok, nil
}

func (r *stubRegistrationRepository) ListPlayerRegistrationsByTeamRegistration(_ context.Context, teamRegID string) ([]registration.PlayerRegistration, error) {
	return r.byTeamReg[teamRegID], nil
}

func (r *stubRegistrationRepository) ListPlayerRegistrationsByPerson(_ context.Context, personID string) ([]registration.PlayerRegistration, error) {
	return r.byPerson[personID], nil
}

type stubTeamRepository struct {
	byID map[string]team.Team
}

func (r *stubTeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	t, ok := r.byID[teamID]
	return t, ok, nil
}

type stubPersonRepository struct {
	byID map[string]person.Person
}

func (r *stubPersonRepository) GetByID(_ context.Context, personID string) (person.Person, bool, error) {
	p, ok := r.byID[personID]
	return p, ok, nil
}

type stubTournamentRepository struct {
	items []tournament.Tournament
	byID  map[string]tournament.Tournament
}

func (r *stubTournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	return r.items, nil
}

func (r *stubTournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	t, ok := r.byID[tournamentID]
	return t, ok, nil
}

type stubVenueRepository struct {
	byID map[string]match.Venue
}

func (r *stubVenueRepository) GetVenueByID(_ context.Context, venueID string) (match.Venue, bool, error) {
	v, ok := r.byID[venueID]
	return v, ok, nil
}

type stubIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *stubIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

type recordingInvalidator struct {
	mu       sync.Mutex
	groupIDs []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, groupID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groupIDs = append(r.groupIDs, groupID)
}
