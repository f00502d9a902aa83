package memory

import (
	"context"
	"sync"

	"github.com/ligadavila/copa-engine/internal/domain/person"
)

type PersonRepository struct {
	mu   sync.RWMutex
	byID map[string]person.Person
}

func NewPersonRepository(people []person.Person) *PersonRepository {
	byID := make(map[string]person.Person, len(people))
	for _, item := range people {
		byID[item.ID] = item
	}

	return &PersonRepository{byID: byID}
}

func (r *PersonRepository) GetByID(_ context.Context, personID string) (person.Person, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[personID]
	return item, ok, nil
}
