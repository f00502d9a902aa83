package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	"github.com/ligadavila/copa-engine/internal/domain/registration"
	"github.com/ligadavila/copa-engine/internal/platform/logging"
)

func lifecycleFixture(status match.Status, actualStart *time.Time) (*LifecycleService, *stubMatchRepository, *stubEventRepository, *recordingInvalidator) {
	matchRepo := &stubMatchRepository{
		byID: map[string]match.Match{
			"m1": {
				ID:            "m1",
				GroupID:       "g1",
				HomeTeamRegID: "reg-h",
				AwayTeamRegID: "reg-a",
				Status:        status,
				ActualStart:   actualStart,
			},
		},
	}
	eventRepo := &stubEventRepository{}
	regRepo := &stubRegistrationRepository{
		playerRegs: map[string]registration.PlayerRegistration{
			"pr-h": {ID: "pr-h", TeamRegistrationID: "reg-h", PersonID: "p-h"},
			"pr-a": {ID: "pr-a", TeamRegistrationID: "reg-a", PersonID: "p-a"},
		},
	}
	invalidator := &recordingInvalidator{}

	service := NewLifecycleService(matchRepo, eventRepo, regRepo, &stubIDGenerator{}, logging.NewNop()).
		WithInvalidator(invalidator)

	return service, matchRepo, eventRepo, invalidator
}

func TestLifecycleService_StartMatch(t *testing.T) {
	t.Parallel()

	service, matchRepo, _, invalidator := lifecycleFixture(match.StatusScheduled, nil)
	kickoff := time.Date(2026, 5, 10, 16, 0, 0, 0, time.UTC)
	service.WithNow(func() time.Time { return kickoff })

	got, err := service.StartMatch(context.Background(), "m1")
	if err != nil {
		t.Fatalf("StartMatch error: %v", err)
	}

	if got.Status != match.StatusInProgress {
		t.Fatalf("unexpected status: %v", got.Status)
	}
	if got.ActualStart == nil || !got.ActualStart.Equal(kickoff) {
		t.Fatalf("kickoff not stamped: %+v", got.ActualStart)
	}
	if stored := matchRepo.byID["m1"]; stored.Status != match.StatusInProgress {
		t.Fatalf("transition not persisted: %+v", stored)
	}
	if len(invalidator.groupIDs) != 1 || invalidator.groupIDs[0] != "g1" {
		t.Fatalf("standings not invalidated: %+v", invalidator.groupIDs)
	}
}

func TestLifecycleService_StartMatch_RejectsWrongState(t *testing.T) {
	t.Parallel()

	for _, status := range []match.Status{match.StatusInProgress, match.StatusFinished} {
		service, _, _, _ := lifecycleFixture(status, nil)
		if _, err := service.StartMatch(context.Background(), "m1"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("status %v: expected ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestLifecycleService_FinishMatch(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 5, 10, 16, 0, 0, 0, time.UTC)
	service, matchRepo, _, _ := lifecycleFixture(match.StatusInProgress, &kickoff)
	finish := kickoff.Add(50 * time.Minute)
	service.WithNow(func() time.Time { return finish })

	got, err := service.FinishMatch(context.Background(), "m1")
	if err != nil {
		t.Fatalf("FinishMatch error: %v", err)
	}

	if got.Status != match.StatusFinished {
		t.Fatalf("unexpected status: %v", got.Status)
	}
	if got.ActualFinish == nil || !got.ActualFinish.Equal(finish) {
		t.Fatalf("final whistle not stamped: %+v", got.ActualFinish)
	}
	if got.ActualStart == nil || !got.ActualStart.Equal(kickoff) {
		t.Fatalf("kickoff lost on finish: %+v", got.ActualStart)
	}
	if stored := matchRepo.byID["m1"]; stored.Status != match.StatusFinished {
		t.Fatalf("transition not persisted: %+v", stored)
	}
}

func TestLifecycleService_FinishMatch_RejectsWrongState(t *testing.T) {
	t.Parallel()

	for _, status := range []match.Status{match.StatusScheduled, match.StatusFinished} {
		service, _, _, _ := lifecycleFixture(status, nil)
		if _, err := service.FinishMatch(context.Background(), "m1"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("status %v: expected ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestLifecycleService_RecordEvent(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 5, 10, 16, 0, 0, 0, time.UTC)
	service, _, eventRepo, invalidator := lifecycleFixture(match.StatusInProgress, &kickoff)
	service.WithNow(func() time.Time { return kickoff.Add(15 * time.Minute) })

	got, err := service.RecordEvent(context.Background(), RecordEventInput{
		MatchID:              "m1",
		Type:                 matchevent.TypeGoal,
		TeamRegistrationID:   "reg-h",
		PlayerRegistrationID: "pr-h",
	})
	if err != nil {
		t.Fatalf("RecordEvent error: %v", err)
	}

	if got.ID == "" {
		t.Fatalf("event id not assigned")
	}
	if got.MatchtimeMinutes != 15 {
		t.Fatalf("expected 15 match minutes, got %v", got.MatchtimeMinutes)
	}
	if len(eventRepo.appended) != 1 || eventRepo.appended[0].Type != matchevent.TypeGoal {
		t.Fatalf("event not appended: %+v", eventRepo.appended)
	}
	if len(invalidator.groupIDs) != 1 {
		t.Fatalf("standings not invalidated: %+v", invalidator.groupIDs)
	}
}

func TestLifecycleService_RecordEvent_OnlyWhileInProgress(t *testing.T) {
	t.Parallel()

	for _, status := range []match.Status{match.StatusScheduled, match.StatusFinished} {
		service, _, eventRepo, _ := lifecycleFixture(status, nil)
		_, err := service.RecordEvent(context.Background(), RecordEventInput{
			MatchID:            "m1",
			Type:               matchevent.TypeGoal,
			TeamRegistrationID: "reg-h",
		})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("status %v: expected ErrInvalidTransition, got %v", status, err)
		}
		if len(eventRepo.appended) != 0 {
			t.Fatalf("status %v: rejected event reached the log", status)
		}
	}
}

func TestLifecycleService_RecordEvent_RejectsBadReferences(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 5, 10, 16, 0, 0, 0, time.UTC)
	service, _, eventRepo, _ := lifecycleFixture(match.StatusInProgress, &kickoff)

	// A team that is not one of the match's two sides.
	_, err := service.RecordEvent(context.Background(), RecordEventInput{
		MatchID:            "m1",
		Type:               matchevent.TypeGoal,
		TeamRegistrationID: "reg-elsewhere",
	})
	if !errors.Is(err, ErrInconsistentReference) {
		t.Fatalf("expected ErrInconsistentReference for stray team, got %v", err)
	}

	// A player registered under the other side.
	_, err = service.RecordEvent(context.Background(), RecordEventInput{
		MatchID:              "m1",
		Type:                 matchevent.TypeGoal,
		TeamRegistrationID:   "reg-h",
		PlayerRegistrationID: "pr-a",
	})
	if !errors.Is(err, ErrInconsistentReference) {
		t.Fatalf("expected ErrInconsistentReference for stray player, got %v", err)
	}

	// An unknown event type.
	_, err = service.RecordEvent(context.Background(), RecordEventInput{
		MatchID:            "m1",
		Type:               "corner",
		TeamRegistrationID: "reg-h",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}

	if len(eventRepo.appended) != 0 {
		t.Fatalf("rejected events reached the log: %+v", eventRepo.appended)
	}
}

func TestLifecycleService_RecordEvent_UnknownMatch(t *testing.T) {
	t.Parallel()

	service, _, _, _ := lifecycleFixture(match.StatusInProgress, nil)
	_, err := service.RecordEvent(context.Background(), RecordEventInput{
		MatchID:            "missing",
		Type:               matchevent.TypeGoal,
		TeamRegistrationID: "reg-h",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
