package httpapi

import (
	"net/http"

	"github.com/ligadavila/copa-engine/internal/usecase"
)

type teamCareerDTO struct {
	TeamRegistrationID    string  `json:"team_registration_id"`
	TeamID                string  `json:"team_id"`
	TeamName              string  `json:"team_name"`
	Matches               int     `json:"matches"`
	Wins                  int     `json:"wins"`
	Draws                 int     `json:"draws"`
	Losses                int     `json:"losses"`
	GoalsScored           int     `json:"goals_scored"`
	GoalsConceded         int     `json:"goals_conceded"`
	GoalDifference        int     `json:"goal_difference"`
	TieBreakGoals         int     `json:"tie_break_goals"`
	Fouls                 int     `json:"fouls"`
	YellowCards           int     `json:"yellow_cards"`
	RedCards              int     `json:"red_cards"`
	Points                int     `json:"points"`
	CleanSheets           int     `json:"clean_sheets"`
	OwnGoals              int     `json:"own_goals"`
	FoulsAgainst          int     `json:"fouls_against"`
	TieBreakGoalsConceded int     `json:"tie_break_goals_conceded"`
	Titles                int     `json:"titles"`
	RunnerUps             int     `json:"runner_ups"`
	ThirdPlaces           int     `json:"third_places"`
	FairPlay              float64 `json:"fair_play"`
}

type personCareerDTO struct {
	PersonID      string `json:"person_id"`
	PersonName    string `json:"person_name"`
	Registrations int    `json:"registrations"`

	TeamMatches        int `json:"team_matches"`
	TeamWins           int `json:"team_wins"`
	TeamDraws          int `json:"team_draws"`
	TeamLosses         int `json:"team_losses"`
	TeamGoalsScored    int `json:"team_goals_scored"`
	TeamGoalsConceded  int `json:"team_goals_conceded"`
	TeamGoalDifference int `json:"team_goal_difference"`
	TeamPoints         int `json:"team_points"`
	CleanSheets        int `json:"clean_sheets"`
	Titles             int `json:"titles"`
	RunnerUps          int `json:"runner_ups"`
	ThirdPlaces        int `json:"third_places"`

	Goals         int `json:"goals"`
	OwnGoals      int `json:"own_goals"`
	TieBreakGoals int `json:"tie_break_goals"`
	Fouls         int `json:"fouls"`
	YellowCards   int `json:"yellow_cards"`
	RedCards      int `json:"red_cards"`
}

func teamCareerToDTO(s usecase.TeamCareerStats) teamCareerDTO {
	return teamCareerDTO{
		TeamRegistrationID:    s.TeamRegistrationID,
		TeamID:                s.TeamID,
		TeamName:              s.TeamName,
		Matches:               s.Aggregate.Matches,
		Wins:                  s.Aggregate.Wins,
		Draws:                 s.Aggregate.Draws,
		Losses:                s.Aggregate.Losses,
		GoalsScored:           s.Aggregate.GoalsScored,
		GoalsConceded:         s.Aggregate.GoalsConceded,
		GoalDifference:        s.Aggregate.GoalDifference,
		TieBreakGoals:         s.Aggregate.TieBreakGoals,
		Fouls:                 s.Aggregate.Fouls,
		YellowCards:           s.Aggregate.YellowCards,
		RedCards:              s.Aggregate.RedCards,
		Points:                s.Points,
		CleanSheets:           s.CleanSheets,
		OwnGoals:              s.OwnGoals,
		FoulsAgainst:          s.FoulsAgainst,
		TieBreakGoalsConceded: s.TieBreakGoalsConceded,
		Titles:                s.Titles,
		RunnerUps:             s.RunnerUps,
		ThirdPlaces:           s.ThirdPlaces,
		FairPlay:              s.FairPlay,
	}
}

func personCareerToDTO(s usecase.PersonCareerStats) personCareerDTO {
	return personCareerDTO{
		PersonID:           s.PersonID,
		PersonName:         s.PersonName,
		Registrations:      s.Registrations,
		TeamMatches:        s.Team.Matches,
		TeamWins:           s.Team.Wins,
		TeamDraws:          s.Team.Draws,
		TeamLosses:         s.Team.Losses,
		TeamGoalsScored:    s.Team.GoalsScored,
		TeamGoalsConceded:  s.Team.GoalsConceded,
		TeamGoalDifference: s.Team.GoalDifference,
		TeamPoints:         s.TeamPoints,
		CleanSheets:        s.CleanSheets,
		Titles:             s.Titles,
		RunnerUps:          s.RunnerUps,
		ThirdPlaces:        s.ThirdPlaces,
		Goals:              s.Goals,
		OwnGoals:           s.OwnGoals,
		TieBreakGoals:      s.TieBreakGoals,
		Fouls:              s.Fouls,
		YellowCards:        s.YellowCards,
		RedCards:           s.RedCards,
	}
}

func (h *Handler) GetTeamRegistrationStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRegistrationStats")
	defer span.End()

	teamRegID := r.PathValue("teamRegID")
	careerStats, err := h.careerService.TeamRegistrationStats(ctx, teamRegID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team registration stats failed", "team_reg_id", teamRegID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamCareerToDTO(careerStats))
}

func (h *Handler) GetPersonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPersonStats")
	defer span.End()

	personID := r.PathValue("personID")
	careerStats, err := h.careerService.PersonStats(ctx, personID)
	if err != nil {
		h.logger.WarnContext(ctx, "get person stats failed", "person_id", personID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, personCareerToDTO(careerStats))
}
