package usecase

import (
	"fmt"
	"strings"
	"time"

	"mission-service/internal/domain/entity"
	"mission-service/pkg/utils"
)

// Validation messages returned to API callers
const (
	MsgMissingMissionFields = "Please provide all mandatory fields: Name, Launch Date, SpaceCraft, and Destination"
	MsgInvalidName          = "Name must be a valid string."
	MsgInvalidLaunchDate    = "Launch Date must be a valid date."
	MsgInvalidSpaceCraft    = "SpaceCraft must be a valid string."
	MsgInvalidDestination   = "Destination must be a valid string."
)

// MsgInvalidStatus lists the accepted statuses
var MsgInvalidStatus = fmt.Sprintf("Status must be one of the following values: %s",
	strings.Join(entity.MissionStatuses, ", "))

// ValidationError reports a rejected mission body
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissionInput is a mission body that passed validation
type MissionInput struct {
	Name        string
	LaunchDate  time.Time
	SpaceCraft  string
	Destination string
	Status      string
}

// fieldRule describes one field of a mission body
type fieldRule struct {
	field    string
	required bool
	check    func(value interface{}) bool
	message  string
}

// missionSchema is evaluated in order: presence of every required field
// first, then each field's check.
var missionSchema = []fieldRule{
	{field: "name", required: true, check: isNonBlankString, message: MsgInvalidName},
	{field: "launchDate", required: true, check: isLaunchDate, message: MsgInvalidLaunchDate},
	{field: "spaceCraft", required: true, check: isNonBlankString, message: MsgInvalidSpaceCraft},
	{field: "destination", required: true, check: isNonBlankString, message: MsgInvalidDestination},
	{field: "status", check: isMissionStatus, message: MsgInvalidStatus},
}

// ValidateMission checks a decoded JSON body against the mission schema.
// Values are not trimmed or otherwise normalized.
func ValidateMission(body map[string]interface{}) (*MissionInput, error) {
	for _, rule := range missionSchema {
		if rule.required && !isPresent(body[rule.field]) {
			return nil, &ValidationError{Message: MsgMissingMissionFields}
		}
	}

	for _, rule := range missionSchema {
		value := body[rule.field]
		if !rule.required && !isPresent(value) {
			continue
		}
		if !rule.check(value) {
			return nil, &ValidationError{Message: rule.message}
		}
	}

	launchDate, _ := launchDateOf(body["launchDate"])
	status, _ := body["status"].(string)

	return &MissionInput{
		Name:        body["name"].(string),
		LaunchDate:  launchDate,
		SpaceCraft:  body["spaceCraft"].(string),
		Destination: body["destination"].(string),
		Status:      status,
	}, nil
}

// isPresent treats missing, null, "", false and 0 as absent
func isPresent(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}

func isNonBlankString(value interface{}) bool {
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) != ""
}

func isLaunchDate(value interface{}) bool {
	_, err := launchDateOf(value)
	return err == nil
}

func isMissionStatus(value interface{}) bool {
	s, ok := value.(string)
	return ok && entity.IsValidMissionStatus(s)
}

func launchDateOf(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case string:
		return utils.ParseLaunchDate(v)
	case float64:
		return utils.LaunchDateFromMillis(v)
	default:
		return time.Time{}, utils.ErrInvalidDate
	}
}
