package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	"github.com/ligadavila/copa-engine/internal/domain/person"
	"github.com/ligadavila/copa-engine/internal/domain/registration"
)

func TestMatchResultService_Result_LiveMatchClock(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 5, 10, 16, 0, 0, 0, time.UTC)
	matchRepo := &stubMatchRepository{
		byID: map[string]match.Match{
			"m1": {
				ID:            "m1",
				GroupID:       "g1",
				HomeTeamRegID: "reg-h",
				AwayTeamRegID: "reg-a",
				Status:        match.StatusInProgress,
				ActualStart:   &kickoff,
				VenueID:       "v1",
			},
		},
	}
	eventRepo := &stubEventRepository{
		byMatch: map[string][]matchevent.Event{
			"m1": {
				{ID: "e1", MatchID: "m1", Type: matchevent.TypeGoal, TeamRegistrationID: "reg-h"},
			},
		},
	}
	venueRepo := &stubVenueRepository{
		byID: map[string]match.Venue{
			"v1": {ID: "v1", Name: "Cancha Municipal", Address: "Av. Siempre Viva 742"},
		},
	}

	service := NewMatchResultService(matchRepo, venueRepo, eventRepo, &stubRegistrationRepository{}, &stubPersonRepository{}).
		WithNow(func() time.Time { return kickoff.Add(30 * time.Minute) })

	got, err := service.Result(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}

	if got.Result.HomeScore != 1 || got.Result.AwayScore != 0 {
		t.Fatalf("unexpected score: %+v", got.Result)
	}
	if got.MatchtimeMinutes != 30 {
		t.Fatalf("expected 30 live minutes, got %v", got.MatchtimeMinutes)
	}
	if got.Venue == nil || got.Venue.Name != "Cancha Municipal" {
		t.Fatalf("venue not attached: %+v", got.Venue)
	}
}

func TestMatchResultService_Result_NoClockOutsideLiveMatch(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 5, 10, 16, 0, 0, 0, time.UTC)
	matchRepo := &stubMatchRepository{
		byID: map[string]match.Match{
			"m1": {ID: "m1", HomeTeamRegID: "reg-h", AwayTeamRegID: "reg-a", Status: match.StatusFinished, ActualStart: &kickoff},
		},
	}

	service := NewMatchResultService(matchRepo, nil, &stubEventRepository{}, &stubRegistrationRepository{}, &stubPersonRepository{}).
		WithNow(func() time.Time { return kickoff.Add(2 * time.Hour) })

	got, err := service.Result(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if got.MatchtimeMinutes != 0 {
		t.Fatalf("finished match must report zero minutes, got %v", got.MatchtimeMinutes)
	}
}

func TestMatchResultService_Result_UnknownMatch(t *testing.T) {
	t.Parallel()

	service := NewMatchResultService(&stubMatchRepository{}, nil, &stubEventRepository{}, &stubRegistrationRepository{}, &stubPersonRepository{})

	if _, err := service.Result(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchResultService_Breakdown_ShirtNumberOrder(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepository{
		byID: map[string]match.Match{
			"m1": {ID: "m1", HomeTeamRegID: "reg-h", AwayTeamRegID: "reg-a", Status: match.StatusInProgress},
		},
	}
	eventRepo := &stubEventRepository{
		byMatch: map[string][]matchevent.Event{
			"m1": {
				{ID: "e1", MatchID: "m1", Type: matchevent.TypeGoal, TeamRegistrationID: "reg-h", PlayerRegistrationID: "pr-10"},
				{ID: "e2", MatchID: "m1", Type: matchevent.TypeGoal, TeamRegistrationID: "reg-h", PlayerRegistrationID: "pr-10"},
				{ID: "e3", MatchID: "m1", Type: matchevent.TypeYellowCard, TeamRegistrationID: "reg-h", PlayerRegistrationID: "pr-2"},
				{ID: "e4", MatchID: "m1", Type: matchevent.TypeFoul, TeamRegistrationID: "reg-a", PlayerRegistrationID: "pr-away"},
			},
		},
	}
	regRepo := &stubRegistrationRepository{
		byTeamReg: map[string][]registration.PlayerRegistration{
			"reg-h": {
				{ID: "pr-10", TeamRegistrationID: "reg-h", PersonID: "p-10", ShirtNo: "10"},
				{ID: "pr-2", TeamRegistrationID: "reg-h", PersonID: "p-2", ShirtNo: "2"},
				{ID: "pr-gk", TeamRegistrationID: "reg-h", PersonID: "p-gk", ShirtNo: "GK"},
			},
			"reg-a": {
				{ID: "pr-away", TeamRegistrationID: "reg-a", PersonID: "p-away", ShirtNo: "7"},
			},
		},
	}
	personRepo := &stubPersonRepository{
		byID: map[string]person.Person{
			"p-10":   {ID: "p-10", Name: "Diego"},
			"p-2":    {ID: "p-2", Name: "Rafa"},
			"p-gk":   {ID: "p-gk", Name: "Chato"},
			"p-away": {ID: "p-away", Name: "Nico"},
		},
	}

	service := NewMatchResultService(matchRepo, nil, eventRepo, regRepo, personRepo)

	got, err := service.Breakdown(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Breakdown error: %v", err)
	}

	// Numeric shirts sort numerically, non-numeric shirts go last.
	if len(got.Home) != 3 {
		t.Fatalf("expected 3 home rows, got %d", len(got.Home))
	}
	if got.Home[0].ShirtNo != "2" || got.Home[1].ShirtNo != "10" || got.Home[2].ShirtNo != "GK" {
		t.Fatalf("unexpected shirt order: %+v", got.Home)
	}

	if got.Home[1].Goals != 2 || got.Home[1].PersonName != "Diego" {
		t.Fatalf("unexpected scorer row: %+v", got.Home[1])
	}
	if got.Home[0].YellowCards != 1 {
		t.Fatalf("unexpected booked row: %+v", got.Home[0])
	}
	if got.Home[2].Goals != 0 || got.Home[2].Fouls != 0 {
		t.Fatalf("quiet player must appear with zero counts: %+v", got.Home[2])
	}
	if len(got.Away) != 1 || got.Away[0].Fouls != 1 {
		t.Fatalf("unexpected away rows: %+v", got.Away)
	}
}
