// Package client talks to the missions API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mission-service/internal/domain/entity"
)

const missionsPath = "/api/v1/missions"

// MissionInput is the body sent when creating or updating a mission.
// LaunchDate is sent as given, typically YYYY-MM-DD.
type MissionInput struct {
	Name        string `json:"name"`
	LaunchDate  string `json:"launchDate"`
	SpaceCraft  string `json:"spaceCraft"`
	Destination string `json:"destination"`
	Status      string `json:"status,omitempty"`
}

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("missions API returned status %d: %s", e.StatusCode, e.Message)
}

// Client handles requests to the missions API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API served at baseURL, e.g. http://localhost:5000
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches every mission
func (c *Client) List(ctx context.Context) ([]entity.Mission, error) {
	var missions []entity.Mission
	if err := c.do(ctx, http.MethodGet, missionsPath, nil, http.StatusOK, &missions); err != nil {
		return nil, fmt.Errorf("failed to fetch missions: %w", err)
	}
	return missions, nil
}

// Get fetches one mission
func (c *Client) Get(ctx context.Context, id string) (*entity.Mission, error) {
	var mission entity.Mission
	if err := c.do(ctx, http.MethodGet, missionPath(id), nil, http.StatusOK, &mission); err != nil {
		return nil, fmt.Errorf("failed to fetch mission: %w", err)
	}
	return &mission, nil
}

// Create adds a mission and returns it as stored
func (c *Client) Create(ctx context.Context, input MissionInput) (*entity.Mission, error) {
	var mission entity.Mission
	if err := c.do(ctx, http.MethodPost, missionsPath, input, http.StatusCreated, &mission); err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}
	return &mission, nil
}

// Update changes a mission and returns it as stored
func (c *Client) Update(ctx context.Context, id string, input MissionInput) (*entity.Mission, error) {
	var mission entity.Mission
	if err := c.do(ctx, http.MethodPut, missionPath(id), input, http.StatusOK, &mission); err != nil {
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}
	return &mission, nil
}

// Delete removes a mission
func (c *Client) Delete(ctx context.Context, id string) error {
	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, missionPath(id), nil, http.StatusOK, &response); err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}
	return nil
}

func missionPath(id string) string {
	return missionsPath + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var errorBody struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		if errorBody.Error == "" {
			errorBody.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errorBody.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
