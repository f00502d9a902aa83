package memory

import (
	"time"

	"github.com/ligadavila/copa-engine/internal/domain/group"
	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	"github.com/ligadavila/copa-engine/internal/domain/person"
	"github.com/ligadavila/copa-engine/internal/domain/registration"
	"github.com/ligadavila/copa-engine/internal/domain/team"
	"github.com/ligadavila/copa-engine/internal/domain/tournament"
)

// Dev-mode dataset: one finished tournament round so every endpoint
// returns something without postgres.
const (
	TournamentIDApertura2026 = "copa-davila-apertura-2026"

	GroupIDGrupoA       = "apertura-2026-grupo-a"
	GroupIDTercerPuesto = "apertura-2026-tercer-puesto"
	GroupIDFinal        = "apertura-2026-final"
)

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:            TournamentIDApertura2026,
			Name:          "Copa Davila Apertura 2026",
			Short:         "APE26",
			CompetitionID: "copa-davila",
			SeasonID:      "2026",
			Genre:         "male",
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-atletico", Name: "Atletico Davila", Short: "ATD", Genre: "male"},
		{ID: "team-boca", Name: "Boca del Rio", Short: "BDR", Genre: "male"},
		{ID: "team-cerro", Name: "Cerro Alto", Short: "CAL", Genre: "male"},
		{ID: "team-defensores", Name: "Defensores del Sur", Short: "DDS", Genre: "male"},
	}
}

func SeedPeople() []person.Person {
	return []person.Person{
		{ID: "p-diego", Name: "Diego Ferreyra", Short: "Diego", Hood: "La Loma"},
		{ID: "p-rafa", Name: "Rafael Sosa", Short: "Rafa", Hood: "Centro"},
		{ID: "p-chato", Name: "Sebastian Aguirre", Short: "Chato", Hood: "La Loma"},
		{ID: "p-nico", Name: "Nicolas Paredes", Short: "Nico", Hood: "El Bajo"},
		{ID: "p-tano", Name: "Luciano Bianchi", Short: "Tano", Hood: "Centro"},
		{ID: "p-colo", Name: "Martin Juarez", Short: "Colo", Hood: "El Bajo"},
		{ID: "p-pato", Name: "Pablo Dominguez", Short: "Pato", Hood: "San Jose"},
		{ID: "p-lucho", Name: "Luis Medina", Short: "Lucho", Hood: "San Jose"},
	}
}

func SeedTeamRegistrations() []registration.TeamRegistration {
	return []registration.TeamRegistration{
		{ID: "reg-atletico", TournamentID: TournamentIDApertura2026, TeamID: "team-atletico", CaptainID: "p-diego"},
		{ID: "reg-boca", TournamentID: TournamentIDApertura2026, TeamID: "team-boca", CaptainID: "p-chato"},
		{ID: "reg-cerro", TournamentID: TournamentIDApertura2026, TeamID: "team-cerro", CaptainID: "p-tano"},
		{ID: "reg-defensores", TournamentID: TournamentIDApertura2026, TeamID: "team-defensores", CaptainID: "p-pato"},
	}
}

func SeedPlayerRegistrations() []registration.PlayerRegistration {
	return []registration.PlayerRegistration{
		{ID: "pr-diego", TeamRegistrationID: "reg-atletico", PersonID: "p-diego", Position: "forward", ShirtNo: "10"},
		{ID: "pr-rafa", TeamRegistrationID: "reg-atletico", PersonID: "p-rafa", Position: "defender", ShirtNo: "2"},
		{ID: "pr-chato", TeamRegistrationID: "reg-boca", PersonID: "p-chato", Position: "goalkeeper", ShirtNo: "1"},
		{ID: "pr-nico", TeamRegistrationID: "reg-boca", PersonID: "p-nico", Position: "midfielder", ShirtNo: "8"},
		{ID: "pr-tano", TeamRegistrationID: "reg-cerro", PersonID: "p-tano", Position: "forward", ShirtNo: "9"},
		{ID: "pr-colo", TeamRegistrationID: "reg-cerro", PersonID: "p-colo", Position: "defender", ShirtNo: "4"},
		{ID: "pr-pato", TeamRegistrationID: "reg-defensores", PersonID: "p-pato", Position: "midfielder", ShirtNo: "5"},
		{ID: "pr-lucho", TeamRegistrationID: "reg-defensores", PersonID: "p-lucho", Position: "forward", ShirtNo: "11"},
	}
}

func SeedGroups() []group.Group {
	return []group.Group{
		{
			ID:           GroupIDGrupoA,
			Name:         "Grupo A",
			TournamentID: TournamentIDApertura2026,
			Stage:        group.StageGroup,
			TeamRegistrationIDs: []string{
				"reg-atletico", "reg-boca", "reg-cerro", "reg-defensores",
			},
		},
		{
			ID:                  GroupIDTercerPuesto,
			Name:                "Tercer Puesto",
			TournamentID:        TournamentIDApertura2026,
			Stage:               group.StageThirdPlace,
			TeamRegistrationIDs: []string{"reg-cerro", "reg-defensores"},
		},
		{
			ID:                  GroupIDFinal,
			Name:                "Final",
			TournamentID:        TournamentIDApertura2026,
			Stage:               group.StageFinal,
			TeamRegistrationIDs: []string{"reg-atletico", "reg-boca"},
		},
	}
}

func SeedVenues() []match.Venue {
	return []match.Venue{
		{ID: "v-municipal", Name: "Cancha Municipal", Address: "Av. Belgrano 1200, Villa Davila"},
		{ID: "v-sintetico", Name: "Sintetico La Loma", Address: "Calle 9 y 42, La Loma"},
	}
}

func SeedMatches() []match.Match {
	kickoff := func(day, hour int) time.Time {
		return time.Date(2026, time.March, day, hour, 0, 0, 0, time.UTC)
	}
	started := func(t time.Time) *time.Time { return &t }

	return []match.Match{
		{
			ID: "m-a1", MatchNo: 1, GroupID: GroupIDGrupoA,
			HomeTeamRegID: "reg-atletico", AwayTeamRegID: "reg-boca",
			ScheduledAt: kickoff(7, 15), ActualStart: started(kickoff(7, 15)), ActualFinish: started(kickoff(7, 16)),
			Status: match.StatusFinished, VenueID: "v-municipal",
		},
		{
			ID: "m-a2", MatchNo: 2, GroupID: GroupIDGrupoA,
			HomeTeamRegID: "reg-cerro", AwayTeamRegID: "reg-defensores",
			ScheduledAt: kickoff(7, 17), ActualStart: started(kickoff(7, 17)), ActualFinish: started(kickoff(7, 18)),
			Status: match.StatusFinished, VenueID: "v-municipal",
		},
		{
			ID: "m-a3", MatchNo: 3, GroupID: GroupIDGrupoA,
			HomeTeamRegID: "reg-atletico", AwayTeamRegID: "reg-cerro",
			ScheduledAt: kickoff(14, 15),
			Status:      match.StatusScheduled, VenueID: "v-sintetico",
		},
		{
			ID: "m-a4", MatchNo: 4, GroupID: GroupIDGrupoA,
			HomeTeamRegID: "reg-boca", AwayTeamRegID: "reg-defensores",
			ScheduledAt: kickoff(14, 17),
			Status:      match.StatusScheduled, VenueID: "v-sintetico",
		},
		{
			ID: "m-tercer", MatchNo: 5, GroupID: GroupIDTercerPuesto,
			HomeTeamRegID: "reg-cerro", AwayTeamRegID: "reg-defensores",
			ScheduledAt: kickoff(21, 15),
			Status:      match.StatusScheduled, VenueID: "v-municipal",
		},
		{
			ID: "m-final", MatchNo: 6, GroupID: GroupIDFinal,
			HomeTeamRegID: "reg-atletico", AwayTeamRegID: "reg-boca",
			ScheduledAt: kickoff(21, 17),
			Status:      match.StatusScheduled, VenueID: "v-municipal",
		},
	}
}

func SeedMatchEvents() []matchevent.Event {
	at := func(day, hour, minute int) time.Time {
		return time.Date(2026, time.March, day, hour, minute, 0, 0, time.UTC)
	}

	return []matchevent.Event{
		// m-a1: Atletico 2-1 Boca, the equalizer an own goal.
		{ID: "ev-1", MatchID: "m-a1", Type: matchevent.TypeGoal, TeamRegistrationID: "reg-atletico", PlayerRegistrationID: "pr-diego", Timestamp: at(7, 15, 12), MatchtimeMinutes: 12},
		{ID: "ev-2", MatchID: "m-a1", Type: matchevent.TypeGoal, TeamRegistrationID: "reg-boca", PlayerRegistrationID: "pr-nico", Timestamp: at(7, 15, 25), MatchtimeMinutes: 25},
		{ID: "ev-3", MatchID: "m-a1", Type: matchevent.TypeOwnGoal, TeamRegistrationID: "reg-boca", PlayerRegistrationID: "pr-chato", Timestamp: at(7, 15, 40), MatchtimeMinutes: 40},
		{ID: "ev-4", MatchID: "m-a1", Type: matchevent.TypeFoul, TeamRegistrationID: "reg-boca", PlayerRegistrationID: "pr-nico", Timestamp: at(7, 15, 44), MatchtimeMinutes: 44},
		{ID: "ev-5", MatchID: "m-a1", Type: matchevent.TypeYellowCard, TeamRegistrationID: "reg-boca", PlayerRegistrationID: "pr-nico", Timestamp: at(7, 15, 44), MatchtimeMinutes: 44},

		// m-a2: Cerro 1-1 Defensores, rough second half.
		{ID: "ev-6", MatchID: "m-a2", Type: matchevent.TypeGoal, TeamRegistrationID: "reg-cerro", PlayerRegistrationID: "pr-tano", Timestamp: at(7, 17, 8), MatchtimeMinutes: 8},
		{ID: "ev-7", MatchID: "m-a2", Type: matchevent.TypeGoal, TeamRegistrationID: "reg-defensores", PlayerRegistrationID: "pr-lucho", Timestamp: at(7, 17, 33), MatchtimeMinutes: 33},
		{ID: "ev-8", MatchID: "m-a2", Type: matchevent.TypeFoul, TeamRegistrationID: "reg-cerro", PlayerRegistrationID: "pr-colo", Timestamp: at(7, 17, 38), MatchtimeMinutes: 38},
		{ID: "ev-9", MatchID: "m-a2", Type: matchevent.TypeFoul, TeamRegistrationID: "reg-cerro", PlayerRegistrationID: "pr-colo", Timestamp: at(7, 17, 47), MatchtimeMinutes: 47},
		{ID: "ev-10", MatchID: "m-a2", Type: matchevent.TypeRedCard, TeamRegistrationID: "reg-cerro", PlayerRegistrationID: "pr-colo", Timestamp: at(7, 17, 47), MatchtimeMinutes: 47},
	}
}
