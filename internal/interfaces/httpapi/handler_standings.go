package httpapi

import (
	"net/http"

	"github.com/ligadavila/copa-engine/internal/usecase"
)

type standingRowDTO struct {
	Rank               int     `json:"rank"`
	TeamRegistrationID string  `json:"team_registration_id"`
	TeamID             string  `json:"team_id"`
	TeamName           string  `json:"team_name"`
	Matches            int     `json:"matches"`
	Wins               int     `json:"wins"`
	Draws              int     `json:"draws"`
	Losses             int     `json:"losses"`
	GoalsScored        int     `json:"goals_scored"`
	GoalsConceded      int     `json:"goals_conceded"`
	GoalDifference     int     `json:"goal_difference"`
	TieBreakGoals      int     `json:"tie_break_goals"`
	Fouls              int     `json:"fouls"`
	YellowCards        int     `json:"yellow_cards"`
	RedCards           int     `json:"red_cards"`
	Points             int     `json:"points"`
	FairPlay           float64 `json:"fair_play"`
}

type groupStandingsDTO struct {
	GroupID    string           `json:"group_id"`
	GroupName  string           `json:"group_name"`
	Stage      int              `json:"stage"`
	Generation uint64           `json:"generation"`
	Rows       []standingRowDTO `json:"rows"`
}

func groupStandingsToDTO(standings usecase.GroupStandings) groupStandingsDTO {
	rows := make([]standingRowDTO, 0, len(standings.Rows))
	for _, row := range standings.Rows {
		rows = append(rows, standingRowDTO{
			Rank:               row.Rank,
			TeamRegistrationID: row.TeamRegistrationID,
			TeamID:             row.TeamID,
			TeamName:           row.TeamName,
			Matches:            row.Aggregate.Matches,
			Wins:               row.Aggregate.Wins,
			Draws:              row.Aggregate.Draws,
			Losses:             row.Aggregate.Losses,
			GoalsScored:        row.Aggregate.GoalsScored,
			GoalsConceded:      row.Aggregate.GoalsConceded,
			GoalDifference:     row.Aggregate.GoalDifference,
			TieBreakGoals:      row.Aggregate.TieBreakGoals,
			Fouls:              row.Aggregate.Fouls,
			YellowCards:        row.Aggregate.YellowCards,
			RedCards:           row.Aggregate.RedCards,
			Points:             row.Points,
			FairPlay:           row.FairPlay,
		})
	}

	return groupStandingsDTO{
		GroupID:    standings.GroupID,
		GroupName:  standings.GroupName,
		Stage:      standings.Stage,
		Generation: standings.Generation,
		Rows:       rows,
	}
}

func (h *Handler) GetGroupStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGroupStandings")
	defer span.End()

	groupID := r.PathValue("groupID")
	standings, err := h.standingsService.GroupStandings(ctx, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get group standings failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupStandingsToDTO(standings))
}
