package httpapi

import (
	"net/http"
	"time"

	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	"github.com/ligadavila/copa-engine/internal/usecase"
)

type matchLifecycleDTO struct {
	MatchID      string     `json:"match_id"`
	GroupID      string     `json:"group_id"`
	Status       string     `json:"status"`
	ActualStart  *time.Time `json:"actual_start,omitempty"`
	ActualFinish *time.Time `json:"actual_finish,omitempty"`
}

type recordEventRequest struct {
	Type                 string `json:"type" validate:"required,oneof=goal own_goal tie_break_penalty_goal foul yellow_card red_card"`
	TeamRegistrationID   string `json:"team_registration_id" validate:"required"`
	PlayerRegistrationID string `json:"player_registration_id" validate:"omitempty"`
}

type matchEventDTO struct {
	ID                   string    `json:"id"`
	MatchID              string    `json:"match_id"`
	Type                 string    `json:"type"`
	TeamRegistrationID   string    `json:"team_registration_id"`
	PlayerRegistrationID string    `json:"player_registration_id,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
	MatchtimeMinutes     float64   `json:"matchtime_minutes"`
}

func matchLifecycleToDTO(m match.Match) matchLifecycleDTO {
	return matchLifecycleDTO{
		MatchID:      m.ID,
		GroupID:      m.GroupID,
		Status:       m.Status.String(),
		ActualStart:  m.ActualStart,
		ActualFinish: m.ActualFinish,
	}
}

func (h *Handler) StartMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	m, err := h.lifecycleService.StartMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "start match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchLifecycleToDTO(m))
}

func (h *Handler) FinishMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinishMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	m, err := h.lifecycleService.FinishMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "finish match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchLifecycleToDTO(m))
}

func (h *Handler) RecordMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchEvent")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req recordEventRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	e, err := h.lifecycleService.RecordEvent(ctx, usecase.RecordEventInput{
		MatchID:              matchID,
		Type:                 matchevent.EventType(req.Type),
		TeamRegistrationID:   req.TeamRegistrationID,
		PlayerRegistrationID: req.PlayerRegistrationID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record match event failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchEventDTO{
		ID:                   e.ID,
		MatchID:              e.MatchID,
		Type:                 string(e.Type),
		TeamRegistrationID:   e.TeamRegistrationID,
		PlayerRegistrationID: e.PlayerRegistrationID,
		Timestamp:            e.Timestamp,
		MatchtimeMinutes:     e.MatchtimeMinutes,
	})
}
