package httpapi

import (
	"net/http"

	"github.com/ligadavila/copa-engine/internal/domain/group"
	"github.com/ligadavila/copa-engine/internal/domain/tournament"
)

type tournamentDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Short         string `json:"short,omitempty"`
	CompetitionID string `json:"competition_id,omitempty"`
	SeasonID      string `json:"season_id,omitempty"`
	Genre         string `json:"genre,omitempty"`
}

type groupDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TournamentID string `json:"tournament_id"`
	Stage        int    `json:"stage"`
	TeamCount    int    `json:"team_count"`
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:            t.ID,
		Name:          t.Name,
		Short:         t.Short,
		CompetitionID: t.CompetitionID,
		SeasonID:      t.SeasonID,
		Genre:         t.Genre,
	}
}

func groupToDTO(g group.Group) groupDTO {
	return groupDTO{
		ID:           g.ID,
		Name:         g.Name,
		TournamentID: g.TournamentID,
		Stage:        g.Stage,
		TeamCount:    len(g.TeamRegistrationIDs),
	}
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	tournaments, err := h.tournamentService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tournamentDTO, 0, len(tournaments))
	for _, t := range tournaments {
		items = append(items, tournamentToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTournamentGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournamentGroups")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	groups, err := h.tournamentService.Groups(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list tournament groups failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]groupDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, groupToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
