package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	"github.com/ligadavila/copa-engine/internal/domain/registration"
	"github.com/ligadavila/copa-engine/internal/platform/id"
	"github.com/ligadavila/copa-engine/internal/platform/logging"
)

// StandingsInvalidator drops cached standings after a write changes what
// they would be derived from.
type StandingsInvalidator interface {
	Invalidate(ctx context.Context, groupID string)
}

// RecordEventInput describes one scorekeeper entry. PlayerRegistrationID
// is optional; unattributed events still count for the team.
type RecordEventInput struct {
	MatchID              string
	Type                 matchevent.EventType
	TeamRegistrationID   string
	PlayerRegistrationID string
}

// LifecycleService owns the engine's only writes: the two match status
// transitions and the event append. Writes to one match are serialized by
// a per-match lock; writes to different matches do not contend.
type LifecycleService struct {
	matchRepo   match.Repository
	eventRepo   matchevent.Repository
	regRepo     registration.Repository
	idGen       id.Generator
	invalidator StandingsInvalidator
	logger      *logging.Logger
	now         func() time.Time
	locks       keyedMutex
}

func NewLifecycleService(
	matchRepo match.Repository,
	eventRepo matchevent.Repository,
	regRepo registration.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *LifecycleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LifecycleService{
		matchRepo: matchRepo,
		eventRepo: eventRepo,
		regRepo:   regRepo,
		idGen:     idGen,
		logger:    logger,
		now:       time.Now,
	}
}

// WithNow overrides the clock; tests pin it.
func (s *LifecycleService) WithNow(now func() time.Time) *LifecycleService {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *LifecycleService) WithInvalidator(inv StandingsInvalidator) *LifecycleService {
	s.invalidator = inv
	return s
}

// StartMatch moves a scheduled match to in progress and stamps the kickoff
// time. Any other starting status is rejected.
func (s *LifecycleService) StartMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LifecycleService.StartMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	unlock := s.locks.lock(matchID)
	defer unlock()

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if m.Status != match.StatusScheduled {
		return match.Match{}, fmt.Errorf("%w: cannot start match in status %s", ErrInvalidTransition, m.Status)
	}

	startedAt := s.now()
	m.Status = match.StatusInProgress
	m.ActualStart = &startedAt

	if err := s.matchRepo.Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	s.invalidateGroup(ctx, m.GroupID)
	s.logger.InfoContext(ctx, "match started", "match_id", m.ID, "group_id", m.GroupID)
	return m, nil
}

// FinishMatch moves a running match to finished and stamps the final
// whistle.
func (s *LifecycleService) FinishMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LifecycleService.FinishMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	unlock := s.locks.lock(matchID)
	defer unlock()

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if m.Status != match.StatusInProgress {
		return match.Match{}, fmt.Errorf("%w: cannot finish match in status %s", ErrInvalidTransition, m.Status)
	}

	finishedAt := s.now()
	m.Status = match.StatusFinished
	m.ActualFinish = &finishedAt

	if err := s.matchRepo.Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	s.invalidateGroup(ctx, m.GroupID)
	s.logger.InfoContext(ctx, "match finished", "match_id", m.ID, "group_id", m.GroupID)
	return m, nil
}

// RecordEvent appends one event to a running match. The match must be in
// progress, the team must be one of the match's two sides, and an
// attributed player must belong to that team's squad. Events are never
// updated or deleted once appended.
func (s *LifecycleService) RecordEvent(ctx context.Context, input RecordEventInput) (matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LifecycleService.RecordEvent")
	defer span.End()

	input.MatchID = strings.TrimSpace(input.MatchID)
	input.TeamRegistrationID = strings.TrimSpace(input.TeamRegistrationID)
	input.PlayerRegistrationID = strings.TrimSpace(input.PlayerRegistrationID)

	if input.MatchID == "" {
		return matchevent.Event{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.TeamRegistrationID == "" {
		return matchevent.Event{}, fmt.Errorf("%w: team registration id is required", ErrInvalidInput)
	}
	if !input.Type.Valid() {
		return matchevent.Event{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, input.Type)
	}

	unlock := s.locks.lock(input.MatchID)
	defer unlock()

	m, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return matchevent.Event{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return matchevent.Event{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}
	if m.Status != match.StatusInProgress {
		return matchevent.Event{}, fmt.Errorf("%w: cannot record events while match is %s", ErrInvalidTransition, m.Status)
	}
	if !m.Participates(input.TeamRegistrationID) {
		return matchevent.Event{}, fmt.Errorf("%w: team registration %s does not play in match %s", ErrInconsistentReference, input.TeamRegistrationID, m.ID)
	}

	if input.PlayerRegistrationID != "" {
		pr, exists, err := s.regRepo.GetPlayerRegistration(ctx, input.PlayerRegistrationID)
		if err != nil {
			return matchevent.Event{}, fmt.Errorf("get player registration: %w", err)
		}
		if !exists || pr.TeamRegistrationID != input.TeamRegistrationID {
			return matchevent.Event{}, fmt.Errorf("%w: player registration %s is not in team registration %s", ErrInconsistentReference, input.PlayerRegistrationID, input.TeamRegistrationID)
		}
	}

	eventID, err := s.idGen.NewID()
	if err != nil {
		return matchevent.Event{}, fmt.Errorf("generate event id: %w", err)
	}

	recordedAt := s.now()
	e := matchevent.Event{
		ID:                   eventID,
		MatchID:              m.ID,
		Type:                 input.Type,
		TeamRegistrationID:   input.TeamRegistrationID,
		PlayerRegistrationID: input.PlayerRegistrationID,
		Timestamp:            recordedAt,
	}
	if m.ActualStart != nil {
		e.MatchtimeMinutes = recordedAt.Sub(*m.ActualStart).Minutes()
	}

	if err := s.eventRepo.Append(ctx, e); err != nil {
		return matchevent.Event{}, fmt.Errorf("append match event: %w", err)
	}

	s.invalidateGroup(ctx, m.GroupID)
	s.logger.InfoContext(ctx, "match event recorded",
		"match_id", m.ID,
		"event_id", e.ID,
		"event_type", string(e.Type),
		"team_reg_id", e.TeamRegistrationID,
	)
	return e, nil
}

func (s *LifecycleService) invalidateGroup(ctx context.Context, groupID string) {
	if s.invalidator == nil {
		return
	}
	s.invalidator.Invalidate(ctx, groupID)
}

// keyedMutex hands out one mutex per key. Keys are never evicted; the
// key space is bounded by the match table.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
