package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mission-service/internal/domain/entity"
	"mission-service/internal/domain/repository"
	"mission-service/internal/usecase"
	"mission-service/pkg/logger"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMissionService struct {
	mock.Mock
}

func (m *mockMissionService) ListMissions(ctx context.Context) ([]*entity.Mission, error) {
	args := m.Called(ctx)
	missions, _ := args.Get(0).([]*entity.Mission)
	return missions, args.Error(1)
}

func (m *mockMissionService) GetMission(ctx context.Context, id string) (*entity.Mission, error) {
	args := m.Called(ctx, id)
	mission, _ := args.Get(0).(*entity.Mission)
	return mission, args.Error(1)
}

func (m *mockMissionService) CreateMission(ctx context.Context, input usecase.MissionInput) (*entity.Mission, error) {
	args := m.Called(ctx, input)
	mission, _ := args.Get(0).(*entity.Mission)
	return mission, args.Error(1)
}

func (m *mockMissionService) UpdateMission(ctx context.Context, id string, input usecase.MissionInput) (*entity.Mission, error) {
	args := m.Called(ctx, id, input)
	mission, _ := args.Get(0).(*entity.Mission)
	return mission, args.Error(1)
}

func (m *mockMissionService) DeleteMission(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

const missionID = "665f1c2e9b1e8a0012345678"

var launch = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

func newTestEcho(svc MissionService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.NewNopLogger())
	NewMissionHandler(svc).Register(e.Group(MissionsPath))
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestMissionHandler_List(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		stored   []*entity.Mission
		wantBody string
	}{
		"empty store is an empty array": {
			stored:   nil,
			wantBody: "[]",
		},
		"stored missions": {
			stored: []*entity.Mission{{
				ID:          missionID,
				Name:        "Artemis II",
				LaunchDate:  launch,
				SpaceCraft:  "Orion",
				Destination: "Lunar Orbit",
				Status:      entity.MissionStatusPlanned,
				CreatedAt:   launch,
				UpdatedAt:   launch,
			}},
			wantBody: `[{"_id":"665f1c2e9b1e8a0012345678","name":"Artemis II","launchDate":"2026-02-01T00:00:00Z",` +
				`"spaceCraft":"Orion","destination":"Lunar Orbit","status":"Planned",` +
				`"createdAt":"2026-02-01T00:00:00Z","updatedAt":"2026-02-01T00:00:00Z"}]`,
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			svc := &mockMissionService{}
			svc.On("ListMissions", mock.Anything).Return(tc.stored, nil)

			rec := serve(newTestEcho(svc), http.MethodGet, MissionsPath, "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestMissionHandler_Create(t *testing.T) {
	t.Parallel()

	svc := &mockMissionService{}
	want := usecase.MissionInput{
		Name:        "Artemis II",
		LaunchDate:  launch,
		SpaceCraft:  "Orion",
		Destination: "Lunar Orbit",
	}
	svc.On("CreateMission", mock.Anything, want).Return(&entity.Mission{
		ID:          missionID,
		Name:        want.Name,
		LaunchDate:  launch,
		SpaceCraft:  want.SpaceCraft,
		Destination: want.Destination,
		Status:      entity.MissionStatusPlanned,
	}, nil)

	rec := serve(newTestEcho(svc), http.MethodPost, MissionsPath,
		`{"name":"Artemis II","launchDate":"2026-02-01","spaceCraft":"Orion","destination":"Lunar Orbit","status":""}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got entity.Mission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, missionID, got.ID)
	assert.Equal(t, entity.MissionStatusPlanned, got.Status)
	svc.AssertExpectations(t)
}

func TestMissionHandler_RejectsInvalidBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		wantMsg string
	}{
		{
			name:    "create without name",
			method:  http.MethodPost,
			target:  MissionsPath,
			body:    `{"launchDate":"2026-02-01","spaceCraft":"Orion","destination":"Moon"}`,
			wantMsg: usecase.MsgMissingMissionFields,
		},
		{
			name:    "create with empty body",
			method:  http.MethodPost,
			target:  MissionsPath,
			wantMsg: usecase.MsgMissingMissionFields,
		},
		{
			name:    "create with bad date",
			method:  http.MethodPost,
			target:  MissionsPath,
			body:    `{"name":"X","launchDate":"not-a-date","spaceCraft":"Y","destination":"Z"}`,
			wantMsg: usecase.MsgInvalidLaunchDate,
		},
		{
			name:    "create with unknown status",
			method:  http.MethodPost,
			target:  MissionsPath,
			body:    `{"name":"X","launchDate":"2026-02-01","spaceCraft":"Y","destination":"Z","status":"Started"}`,
			wantMsg: usecase.MsgInvalidStatus,
		},
		{
			name:    "create with malformed json",
			method:  http.MethodPost,
			target:  MissionsPath,
			body:    `{"name":`,
			wantMsg: msgInvalidBody,
		},
		{
			name:    "create with array body",
			method:  http.MethodPost,
			target:  MissionsPath,
			body:    `[1,2]`,
			wantMsg: msgInvalidBody,
		},
		{
			name:    "update without destination",
			method:  http.MethodPut,
			target:  MissionsPath + "/" + missionID,
			body:    `{"name":"X","launchDate":"2026-02-01","spaceCraft":"Y"}`,
			wantMsg: usecase.MsgMissingMissionFields,
		},
		{
			name:    "update with blank spacecraft",
			method:  http.MethodPut,
			target:  MissionsPath + "/" + missionID,
			body:    `{"name":"X","launchDate":"2026-02-01","spaceCraft":"  ","destination":"Z"}`,
			wantMsg: usecase.MsgInvalidSpaceCraft,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mockMissionService{}
			rec := serve(newTestEcho(svc), tc.method, tc.target, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			want := ErrorResponse{Success: false, Error: tc.wantMsg}
			if diff := cmp.Diff(want, decodeError(t, rec)); diff != "" {
				t.Errorf("unexpected error body (-want +got):\n%s", diff)
			}
			svc.AssertNotCalled(t, "CreateMission", mock.Anything, mock.Anything)
			svc.AssertNotCalled(t, "UpdateMission", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestMissionHandler_NotFound(t *testing.T) {
	t.Parallel()

	valid := `{"name":"X","launchDate":"2026-02-01","spaceCraft":"Y","destination":"Z"}`
	svc := &mockMissionService{}
	svc.On("GetMission", mock.Anything, missionID).Return(nil, repository.ErrMissionNotFound)
	svc.On("UpdateMission", mock.Anything, missionID, mock.Anything).Return(nil, repository.ErrMissionNotFound)
	svc.On("DeleteMission", mock.Anything, missionID).Return(repository.ErrMissionNotFound)
	e := newTestEcho(svc)

	for _, tc := range []struct {
		method string
		body   string
	}{
		{method: http.MethodGet},
		{method: http.MethodPut, body: valid},
		{method: http.MethodDelete},
	} {
		rec := serve(e, tc.method, MissionsPath+"/"+missionID, tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method)
		assert.Equal(t, ErrorResponse{Success: false, Error: MsgMissionNotFound}, decodeError(t, rec), tc.method)
	}
	svc.AssertExpectations(t)
}

func TestMissionHandler_StoreFailures(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("server selection timeout")
	valid := `{"name":"X","launchDate":"2026-02-01","spaceCraft":"Y","destination":"Z"}`

	svc := &mockMissionService{}
	svc.On("ListMissions", mock.Anything).Return(nil, storeErr)
	svc.On("GetMission", mock.Anything, missionID).Return(nil, storeErr)
	svc.On("CreateMission", mock.Anything, mock.Anything).Return(nil, storeErr)
	svc.On("UpdateMission", mock.Anything, missionID, mock.Anything).Return(nil, storeErr)
	svc.On("DeleteMission", mock.Anything, missionID).Return(storeErr)
	e := newTestEcho(svc)

	tests := []struct {
		method  string
		target  string
		body    string
		wantMsg string
	}{
		{method: http.MethodGet, target: MissionsPath, wantMsg: MsgListFailed},
		{method: http.MethodGet, target: MissionsPath + "/" + missionID, wantMsg: MsgGetFailed},
		{method: http.MethodPost, target: MissionsPath, body: valid, wantMsg: MsgCreateFailed},
		{method: http.MethodPut, target: MissionsPath + "/" + missionID, body: valid, wantMsg: MsgUpdateFailed},
		{method: http.MethodDelete, target: MissionsPath + "/" + missionID, wantMsg: MsgDeleteFailed},
	}
	for _, tc := range tests {
		rec := serve(e, tc.method, tc.target, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, tc.wantMsg)
		resp := decodeError(t, rec)
		assert.Equal(t, tc.wantMsg, resp.Error)
		assert.NotContains(t, rec.Body.String(), storeErr.Error())
	}
}

func TestMissionHandler_Delete(t *testing.T) {
	t.Parallel()

	svc := &mockMissionService{}
	svc.On("DeleteMission", mock.Anything, missionID).Return(nil)

	rec := serve(newTestEcho(svc), http.MethodDelete, MissionsPath+"/"+missionID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Mission deleted successfully"}`, rec.Body.String())
}

func TestHTTPErrorHandler(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.NewNopLogger())
	e.Match([]string{http.MethodGet, http.MethodHead}, "/boom", func(c echo.Context) error {
		return errors.New("kaboom")
	})
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := serve(e, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rec).Error)

	rec = serve(e, http.MethodGet, "/teapot", "")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", decodeError(t, rec).Error)

	rec = serve(e, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrorResponse{Success: false, Error: "Not Found"}, decodeError(t, rec))

	rec = serve(e, http.MethodHead, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
}
