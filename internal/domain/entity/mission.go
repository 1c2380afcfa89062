// internal/domain/entity/mission.go
package entity

import (
	"time"
)

// Mission statuses. The list is the single source for validation, storage
// defaults and client-side choices.
const (
	MissionStatusPlanned    = "Planned"
	MissionStatusLaunched   = "Launched"
	MissionStatusInProgress = "In Progress"
	MissionStatusCompleted  = "Completed"
	MissionStatusFailed     = "Failed"
)

// MissionStatuses lists every accepted status in display order
var MissionStatuses = []string{
	MissionStatusPlanned,
	MissionStatusLaunched,
	MissionStatusInProgress,
	MissionStatusCompleted,
	MissionStatusFailed,
}

// IsValidMissionStatus reports whether status is one of MissionStatuses
func IsValidMissionStatus(status string) bool {
	for _, s := range MissionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Mission is a space mission record. The id is serialized as "_id" so
// browser clients written against the document store keep working.
type Mission struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	LaunchDate  time.Time `json:"launchDate"`
	SpaceCraft  string    `json:"spaceCraft"`
	Destination string    `json:"destination"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MissionUpdate carries the fields applied by an update. An empty Status
// leaves the stored status untouched.
type MissionUpdate struct {
	Name        string
	LaunchDate  time.Time
	SpaceCraft  string
	Destination string
	Status      string
	UpdatedAt   time.Time
}
