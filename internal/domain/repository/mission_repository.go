package repository

import (
	"context"
	"errors"

	"mission-service/internal/domain/entity"
)

// ErrMissionNotFound is returned when no mission matches the given id
var ErrMissionNotFound = errors.New("mission not found")

// MissionRepository defines the interface for mission storage operations
type MissionRepository interface {
	// FindAll returns every stored mission, oldest first
	FindAll(ctx context.Context) ([]*entity.Mission, error)
	FindByID(ctx context.Context, id string) (*entity.Mission, error)
	// Create assigns the mission a new id and stores it
	Create(ctx context.Context, mission *entity.Mission) error
	Update(ctx context.Context, id string, update entity.MissionUpdate) (*entity.Mission, error)
	Delete(ctx context.Context, id string) error
}
