package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ligadavila/copa-engine/internal/domain/group"
	"github.com/ligadavila/copa-engine/internal/domain/tournament"
)

type TournamentService struct {
	tournamentRepo tournament.Repository
	groupRepo      group.Repository
}

func NewTournamentService(tournamentRepo tournament.Repository, groupRepo group.Repository) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		groupRepo:      groupRepo,
	}
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.List")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

func (s *TournamentService) Groups(ctx context.Context, tournamentID string) ([]group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Groups")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	groups, err := s.groupRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list tournament groups: %w", err)
	}
	return groups, nil
}
