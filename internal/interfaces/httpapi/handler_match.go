package httpapi

import (
	"net/http"
	"time"

	"github.com/ligadavila/copa-engine/internal/usecase"
)

type venueDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	MapLink string `json:"map_link,omitempty"`
}

type matchResultDTO struct {
	MatchID           string     `json:"match_id"`
	MatchNo           int        `json:"match_no"`
	GroupID           string     `json:"group_id"`
	HomeTeamRegID     string     `json:"home_team_registration_id"`
	AwayTeamRegID     string     `json:"away_team_registration_id"`
	Status            string     `json:"status"`
	ScheduledAt       time.Time  `json:"scheduled_at"`
	ActualStart       *time.Time `json:"actual_start,omitempty"`
	ActualFinish      *time.Time `json:"actual_finish,omitempty"`
	MatchtimeMinutes  float64    `json:"matchtime_minutes"`
	HomeScore         int        `json:"home_score"`
	AwayScore         int        `json:"away_score"`
	HomeTieBreakScore int        `json:"home_tie_break_score"`
	AwayTieBreakScore int        `json:"away_tie_break_score"`
	IsDraw            bool       `json:"is_draw"`
	IsHomeWin         bool       `json:"is_home_win"`
	IsAwayWin         bool       `json:"is_away_win"`
	HomeTieBreakWin   bool       `json:"home_tie_break_win"`
	AwayTieBreakWin   bool       `json:"away_tie_break_win"`
	HomeFouls         int        `json:"home_fouls"`
	AwayFouls         int        `json:"away_fouls"`
	HomeYellowCards   int        `json:"home_yellow_cards"`
	AwayYellowCards   int        `json:"away_yellow_cards"`
	HomeRedCards      int        `json:"home_red_cards"`
	AwayRedCards      int        `json:"away_red_cards"`
	Venue             *venueDTO  `json:"venue,omitempty"`
}

type breakdownRowDTO struct {
	PlayerRegistrationID string `json:"player_registration_id"`
	PersonID             string `json:"person_id"`
	PersonName           string `json:"person_name,omitempty"`
	ShirtNo              string `json:"shirt_no,omitempty"`
	Position             string `json:"position,omitempty"`
	Goals                int    `json:"goals"`
	OwnGoals             int    `json:"own_goals"`
	TieBreakGoals        int    `json:"tie_break_goals"`
	Fouls                int    `json:"fouls"`
	YellowCards          int    `json:"yellow_cards"`
	RedCards             int    `json:"red_cards"`
}

type matchBreakdownDTO struct {
	MatchID string            `json:"match_id"`
	Home    []breakdownRowDTO `json:"home"`
	Away    []breakdownRowDTO `json:"away"`
}

func matchResultToDTO(view usecase.MatchResultView) matchResultDTO {
	dto := matchResultDTO{
		MatchID:           view.Match.ID,
		MatchNo:           view.Match.MatchNo,
		GroupID:           view.Match.GroupID,
		HomeTeamRegID:     view.Match.HomeTeamRegID,
		AwayTeamRegID:     view.Match.AwayTeamRegID,
		Status:            view.Match.Status.String(),
		ScheduledAt:       view.Match.ScheduledAt,
		ActualStart:       view.Match.ActualStart,
		ActualFinish:      view.Match.ActualFinish,
		MatchtimeMinutes:  view.MatchtimeMinutes,
		HomeScore:         view.Result.HomeScore,
		AwayScore:         view.Result.AwayScore,
		HomeTieBreakScore: view.Result.HomeTieBreakScore,
		AwayTieBreakScore: view.Result.AwayTieBreakScore,
		IsDraw:            view.Result.IsDraw,
		IsHomeWin:         view.Result.IsHomeWin,
		IsAwayWin:         view.Result.IsAwayWin,
		HomeTieBreakWin:   view.Result.HomeTieBreakWin,
		AwayTieBreakWin:   view.Result.AwayTieBreakWin,
		HomeFouls:         view.Result.HomeFouls,
		AwayFouls:         view.Result.AwayFouls,
		HomeYellowCards:   view.Result.HomeYellowCards,
		AwayYellowCards:   view.Result.AwayYellowCards,
		HomeRedCards:      view.Result.HomeRedCards,
		AwayRedCards:      view.Result.AwayRedCards,
	}

	if view.Venue != nil {
		dto.Venue = &venueDTO{
			ID:      view.Venue.ID,
			Name:    view.Venue.Name,
			Address: view.Venue.Address,
			MapLink: venueMapLink(view.Venue.Address),
		}
	}

	return dto
}

func breakdownRowsToDTO(rows []usecase.BreakdownRow) []breakdownRowDTO {
	out := make([]breakdownRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, breakdownRowDTO{
			PlayerRegistrationID: row.PlayerRegistrationID,
			PersonID:             row.PersonID,
			PersonName:           row.PersonName,
			ShirtNo:              row.ShirtNo,
			Position:             row.Position,
			Goals:                row.Goals,
			OwnGoals:             row.OwnGoals,
			TieBreakGoals:        row.TieBreakGoals,
			Fouls:                row.Fouls,
			YellowCards:          row.YellowCards,
			RedCards:             row.RedCards,
		})
	}
	return out
}

func (h *Handler) GetMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchResult")
	defer span.End()

	matchID := r.PathValue("matchID")
	view, err := h.matchResultService.Result(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchResultToDTO(view))
}

func (h *Handler) GetMatchBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchBreakdown")
	defer span.End()

	matchID := r.PathValue("matchID")
	breakdown, err := h.matchResultService.Breakdown(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match breakdown failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchBreakdownDTO{
		MatchID: breakdown.MatchID,
		Home:    breakdownRowsToDTO(breakdown.Home),
		Away:    breakdownRowsToDTO(breakdown.Away),
	})
}
