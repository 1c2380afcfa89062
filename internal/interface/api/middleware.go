package api

import (
	"encoding/json"
	"errors"
	"io"

	"mission-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	missionInputKey = "missionInput"

	msgInvalidBody = "Invalid request body."
)

// validateMission rejects write requests whose body fails the mission schema.
// The validated input is stored on the context for the next handler.
func validateMission(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body map[string]interface{}
		if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return badRequest(msgInvalidBody)
		}

		input, err := usecase.ValidateMission(body)
		if err != nil {
			var verr *usecase.ValidationError
			if errors.As(err, &verr) {
				return badRequest(verr.Message)
			}
			return err
		}

		c.Set(missionInputKey, input)
		return next(c)
	}
}

func missionInputFrom(c echo.Context) (*usecase.MissionInput, bool) {
	input, ok := c.Get(missionInputKey).(*usecase.MissionInput)
	return input, ok
}
