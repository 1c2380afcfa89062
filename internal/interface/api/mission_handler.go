// package api provides the HTTP API for missions
package api

import (
	"context"
	"errors"
	"net/http"

	"mission-service/internal/domain/entity"
	"mission-service/internal/domain/repository"
	"mission-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MissionsPath is the base path of the missions resource
const MissionsPath = "/api/v1/missions"

// Messages returned by the missions resource
const (
	MsgMissionNotFound = "Mission not found"
	MsgMissionDeleted  = "Mission deleted successfully"
	MsgListFailed      = "Failed to retrieve missions."
	MsgGetFailed       = "Failed to retrieve mission."
	MsgCreateFailed    = "Failed to create mission."
	MsgUpdateFailed    = "Failed to update mission."
	MsgDeleteFailed    = "Failed to delete mission."
)

// MissionService defines the mission operations the handler depends on
type MissionService interface {
	ListMissions(ctx context.Context) ([]*entity.Mission, error)
	GetMission(ctx context.Context, id string) (*entity.Mission, error)
	CreateMission(ctx context.Context, input usecase.MissionInput) (*entity.Mission, error)
	UpdateMission(ctx context.Context, id string, input usecase.MissionInput) (*entity.Mission, error)
	DeleteMission(ctx context.Context, id string) error
}

// MissionHandler handles HTTP requests for mission operations
type MissionHandler struct {
	service MissionService
}

// NewMissionHandler creates a new mission handler with the given service
func NewMissionHandler(service MissionService) *MissionHandler {
	return &MissionHandler{
		service: service,
	}
}

// Register mounts the mission routes on g
func (h *MissionHandler) Register(g *echo.Group) {
	g.GET("", h.ListMissions)
	g.POST("", h.CreateMission, validateMission)
	g.GET("/:id", h.GetMission)
	g.PUT("/:id", h.UpdateMission, validateMission)
	g.DELETE("/:id", h.DeleteMission)
}

// ListMissions handles GET /
func (h *MissionHandler) ListMissions(c echo.Context) error {
	missions, err := h.service.ListMissions(c.Request().Context())
	if err != nil {
		return serverError(MsgListFailed, err)
	}
	if missions == nil {
		missions = []*entity.Mission{}
	}
	return c.JSON(http.StatusOK, missions)
}

// GetMission handles GET /:id
func (h *MissionHandler) GetMission(c echo.Context) error {
	mission, err := h.service.GetMission(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMissionNotFound) {
			return notFound(MsgMissionNotFound)
		}
		return serverError(MsgGetFailed, err)
	}
	return c.JSON(http.StatusOK, mission)
}

// CreateMission handles POST /
func (h *MissionHandler) CreateMission(c echo.Context) error {
	input, ok := missionInputFrom(c)
	if !ok {
		return serverError(MsgCreateFailed, errors.New("mission input missing from context"))
	}

	mission, err := h.service.CreateMission(c.Request().Context(), *input)
	if err != nil {
		return serverError(MsgCreateFailed, err)
	}
	return c.JSON(http.StatusCreated, mission)
}

// UpdateMission handles PUT /:id
func (h *MissionHandler) UpdateMission(c echo.Context) error {
	input, ok := missionInputFrom(c)
	if !ok {
		return serverError(MsgUpdateFailed, errors.New("mission input missing from context"))
	}

	mission, err := h.service.UpdateMission(c.Request().Context(), c.Param("id"), *input)
	if err != nil {
		if errors.Is(err, repository.ErrMissionNotFound) {
			return notFound(MsgMissionNotFound)
		}
		return serverError(MsgUpdateFailed, err)
	}
	return c.JSON(http.StatusOK, mission)
}

// DeleteMission handles DELETE /:id
func (h *MissionHandler) DeleteMission(c echo.Context) error {
	err := h.service.DeleteMission(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMissionNotFound) {
			return notFound(MsgMissionNotFound)
		}
		return serverError(MsgDeleteFailed, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: MsgMissionDeleted})
}
