package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mission-service/internal/domain/entity"
	"mission-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// GormMissionRepository implements MissionRepository on a relational database
type GormMissionRepository struct {
	db *gorm.DB
}

var _ repository.MissionRepository = (*GormMissionRepository)(nil)

// NewGormMissionRepository creates a new GORM mission repository
func NewGormMissionRepository(db *gorm.DB) *GormMissionRepository {
	return &GormMissionRepository{
		db: db,
	}
}

// Missions GORM model for database mapping
type Missions struct {
	ID          string    `gorm:"primaryKey;size:24"`
	Name        string    `gorm:"column:name;not null"`
	LaunchDate  time.Time `gorm:"column:launch_date;not null;index"`
	SpaceCraft  string    `gorm:"column:space_craft;not null"`
	Destination string    `gorm:"column:destination;not null"`
	Status      string    `gorm:"column:status;not null;default:Planned;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Missions) TableName() string {
	return "missions"
}

func (m *Missions) toEntity() *entity.Mission {
	return &entity.Mission{
		ID:          m.ID,
		Name:        m.Name,
		LaunchDate:  m.LaunchDate.UTC(),
		SpaceCraft:  m.SpaceCraft,
		Destination: m.Destination,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

// Migrate creates or updates the missions table
func (r *GormMissionRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&Missions{}); err != nil {
		return fmt.Errorf("failed to migrate missions table: %w", err)
	}
	return nil
}

// FindAll returns every mission ordered by creation time
func (r *GormMissionRepository) FindAll(ctx context.Context) ([]*entity.Mission, error) {
	var rows []Missions
	result := r.db.WithContext(ctx).Order("created_at asc").Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find missions: %w", result.Error)
	}

	missions := make([]*entity.Mission, 0, len(rows))
	for i := range rows {
		missions = append(missions, rows[i].toEntity())
	}
	return missions, nil
}

// FindByID finds a mission by id
func (r *GormMissionRepository) FindByID(ctx context.Context, id string) (*entity.Mission, error) {
	var row Missions
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to find mission %s: %w", id, result.Error)
	}
	return row.toEntity(), nil
}

// Create inserts a new mission and sets its id
func (r *GormMissionRepository) Create(ctx context.Context, mission *entity.Mission) error {
	row := Missions{
		ID:          primitive.NewObjectID().Hex(),
		Name:        mission.Name,
		LaunchDate:  mission.LaunchDate,
		SpaceCraft:  mission.SpaceCraft,
		Destination: mission.Destination,
		Status:      mission.Status,
		CreatedAt:   mission.CreatedAt,
		UpdatedAt:   mission.UpdatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&row); result.Error != nil {
		return fmt.Errorf("failed to insert mission: %w", result.Error)
	}

	mission.ID = row.ID
	return nil
}

// Update applies the update and returns the mission as stored afterwards
func (r *GormMissionRepository) Update(ctx context.Context, id string, update entity.MissionUpdate) (*entity.Mission, error) {
	values := map[string]interface{}{
		"name":        update.Name,
		"launch_date": update.LaunchDate,
		"space_craft": update.SpaceCraft,
		"destination": update.Destination,
		"updated_at":  update.UpdatedAt,
	}
	if update.Status != "" {
		values["status"] = update.Status
	}

	result := r.db.WithContext(ctx).Model(&Missions{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update mission %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrMissionNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete removes a mission by id
func (r *GormMissionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Missions{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete mission %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrMissionNotFound
	}
	return nil
}
