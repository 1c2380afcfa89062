package repository

import (
	"context"
	"sync"

	"mission-service/internal/domain/entity"
	"mission-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryMissionRepository keeps missions in process memory. It backs local
// runs without a database and the HTTP tests.
type MemoryMissionRepository struct {
	mu       sync.RWMutex
	order    []string
	missions map[string]entity.Mission
}

var _ repository.MissionRepository = (*MemoryMissionRepository)(nil)

// NewMemoryMissionRepository creates an empty in-memory mission repository
func NewMemoryMissionRepository() *MemoryMissionRepository {
	return &MemoryMissionRepository{
		missions: make(map[string]entity.Mission),
	}
}

// FindAll returns every mission in insertion order
func (r *MemoryMissionRepository) FindAll(ctx context.Context) ([]*entity.Mission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	missions := make([]*entity.Mission, 0, len(r.order))
	for _, id := range r.order {
		m := r.missions[id]
		missions = append(missions, &m)
	}
	return missions, nil
}

// FindByID finds a mission by id
func (r *MemoryMissionRepository) FindByID(ctx context.Context, id string) (*entity.Mission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.missions[id]
	if !ok {
		return nil, repository.ErrMissionNotFound
	}
	return &m, nil
}

// Create stores a new mission and sets its id
func (r *MemoryMissionRepository) Create(ctx context.Context, mission *entity.Mission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mission.ID = primitive.NewObjectID().Hex()
	r.missions[mission.ID] = *mission
	r.order = append(r.order, mission.ID)
	return nil
}

// Update applies the update and returns the mission as stored afterwards
func (r *MemoryMissionRepository) Update(ctx context.Context, id string, update entity.MissionUpdate) (*entity.Mission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.missions[id]
	if !ok {
		return nil, repository.ErrMissionNotFound
	}

	m.Name = update.Name
	m.LaunchDate = update.LaunchDate
	m.SpaceCraft = update.SpaceCraft
	m.Destination = update.Destination
	if update.Status != "" {
		m.Status = update.Status
	}
	m.UpdatedAt = update.UpdatedAt
	r.missions[id] = m

	return &m, nil
}

// Delete removes a mission by id
func (r *MemoryMissionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.missions[id]; !ok {
		return repository.ErrMissionNotFound
	}
	delete(r.missions, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
