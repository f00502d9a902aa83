package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/ligadavila/copa-engine/internal/platform/logging"
	"github.com/ligadavila/copa-engine/internal/usecase"
)

type Handler struct {
	tournamentService  *usecase.TournamentService
	matchResultService *usecase.MatchResultService
	standingsService   *usecase.StandingsService
	careerService      *usecase.CareerService
	lifecycleService   *usecase.LifecycleService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	tournamentService *usecase.TournamentService,
	matchResultService *usecase.MatchResultService,
	standingsService *usecase.StandingsService,
	careerService *usecase.CareerService,
	lifecycleService *usecase.LifecycleService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tournamentService:  tournamentService,
		matchResultService: matchResultService,
		standingsService:   standingsService,
		careerService:      careerService,
		lifecycleService:   lifecycleService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(r *http.Request, payload any) error {
	if err := jsoniter.NewDecoder(r.Body).Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
