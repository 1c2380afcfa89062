package usecase

import (
	"context"
	"errors"
	"time"

	"mission-service/internal/domain/entity"
	"mission-service/internal/domain/repository"
	"mission-service/pkg/logger"
	"mission-service/pkg/metrics"
)

// MissionService holds the mission use cases on top of a repository
type MissionService struct {
	repo    repository.MissionRepository
	logger  logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewMissionService creates a new mission service
func NewMissionService(repo repository.MissionRepository, logger logger.Logger, metrics *metrics.Metrics) *MissionService {
	return &MissionService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ListMissions returns every stored mission
func (s *MissionService) ListMissions(ctx context.Context) ([]*entity.Mission, error) {
	missions, err := s.repo.FindAll(ctx)
	s.record("list", err)
	if err != nil {
		s.logger.Error("Failed to list missions", "error", err)
		return nil, err
	}
	return missions, nil
}

// GetMission returns a single mission
func (s *MissionService) GetMission(ctx context.Context, id string) (*entity.Mission, error) {
	mission, err := s.repo.FindByID(ctx, id)
	s.record("get", err)
	if err != nil {
		if !errors.Is(err, repository.ErrMissionNotFound) {
			s.logger.Error("Failed to get mission", "id", id, "error", err)
		}
		return nil, err
	}
	return mission, nil
}

// CreateMission stores a new mission, defaulting its status to Planned
func (s *MissionService) CreateMission(ctx context.Context, input MissionInput) (*entity.Mission, error) {
	now := s.now()
	mission := &entity.Mission{
		Name:        input.Name,
		LaunchDate:  input.LaunchDate,
		SpaceCraft:  input.SpaceCraft,
		Destination: input.Destination,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if mission.Status == "" {
		mission.Status = entity.MissionStatusPlanned
	}

	err := s.repo.Create(ctx, mission)
	s.record("create", err)
	if err != nil {
		s.logger.Error("Failed to create mission", "name", input.Name, "error", err)
		return nil, err
	}

	s.logger.Info("Mission created", "id", mission.ID, "name", mission.Name)
	return mission, nil
}

// UpdateMission applies the supplied fields to an existing mission
func (s *MissionService) UpdateMission(ctx context.Context, id string, input MissionInput) (*entity.Mission, error) {
	mission, err := s.repo.Update(ctx, id, entity.MissionUpdate{
		Name:        input.Name,
		LaunchDate:  input.LaunchDate,
		SpaceCraft:  input.SpaceCraft,
		Destination: input.Destination,
		Status:      input.Status,
		UpdatedAt:   s.now(),
	})
	s.record("update", err)
	if err != nil {
		if !errors.Is(err, repository.ErrMissionNotFound) {
			s.logger.Error("Failed to update mission", "id", id, "error", err)
		}
		return nil, err
	}

	s.logger.Info("Mission updated", "id", id)
	return mission, nil
}

// DeleteMission removes a mission
func (s *MissionService) DeleteMission(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	s.record("delete", err)
	if err != nil {
		if !errors.Is(err, repository.ErrMissionNotFound) {
			s.logger.Error("Failed to delete mission", "id", id, "error", err)
		}
		return err
	}

	s.logger.Info("Mission deleted", "id", id)
	return nil
}

func (s *MissionService) record(operation string, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	switch {
	case errors.Is(err, repository.ErrMissionNotFound):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}
	s.metrics.MissionOperations.WithLabelValues(operation, outcome).Inc()
}
