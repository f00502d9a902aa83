package memory

import (
	"context"
	"sync"

	"github.com/ligadavila/copa-engine/internal/domain/registration"
)

type RegistrationRepository struct {
	mu         sync.RWMutex
	teamRegs   map[string]registration.TeamRegistration
	playerRegs map[string]registration.PlayerRegistration
	byTeamReg  map[string][]registration.PlayerRegistration
	byPerson   map[string][]registration.PlayerRegistration
}

func NewRegistrationRepository(teamRegs []registration.TeamRegistration, playerRegs []registration.PlayerRegistration) *RegistrationRepository {
	repo := &RegistrationRepository{
		teamRegs:   make(map[string]registration.TeamRegistration, len(teamRegs)),
		playerRegs: make(map[string]registration.PlayerRegistration, len(playerRegs)),
		byTeamReg:  make(map[string][]registration.PlayerRegistration),
		byPerson:   make(map[string][]registration.PlayerRegistration),
	}
	for _, item := range teamRegs {
		repo.teamRegs[item.ID] = item
	}
	for _, item := range playerRegs {
		repo.playerRegs[item.ID] = item
		repo.byTeamReg[item.TeamRegistrationID] = append(repo.byTeamReg[item.TeamRegistrationID], item)
		repo.byPerson[item.PersonID] = append(repo.byPerson[item.PersonID], item)
	}

	return repo
}

func (r *RegistrationRepository) GetTeamRegistration(_ context.Context, teamRegID string) (registration.TeamRegistration, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teamRegs[teamRegID]
	return item, ok, nil
}

func (r *RegistrationRepository) GetPlayerRegistration(_ context.Context, playerRegID string) (registration.PlayerRegistration, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.playerRegs[playerRegID]
	return item, ok, nil
}

func (r *RegistrationRepository) ListPlayerRegistrationsByTeamRegistration(_ context.Context, teamRegID string) ([]registration.PlayerRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byTeamReg[teamRegID]
	out := make([]registration.PlayerRegistration, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *RegistrationRepository) ListPlayerRegistrationsByPerson(_ context.Context, personID string) ([]registration.PlayerRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byPerson[personID]
	out := make([]registration.PlayerRegistration, 0, len(items))
	out = append(out, items...)
	return out, nil
}
