package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
)

// APIClient handles HTTP communication with the CourseHub server.
type APIClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// APIError represents an error response from the API.
type APIError struct {
	StatusCode int
	Code       dto.ErrorCode
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// envelope is the body shape shared by success and error responses
type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

// NewClient creates a new APIClient from stored credentials.
func NewClient() (*APIClient, error) {
	tokenData, err := LoadToken()
	if err != nil {
		return nil, err
	}
	c := NewClientWithURL(tokenData.Server)
	c.Token = tokenData.Token
	return c, nil
}

// NewClientWithURL creates a new APIClient with an explicit server URL (for login).
func NewClientWithURL(serverURL string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(serverURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do sends the request and decodes the data field of the response into
// result. A 200 response with success=false is returned as the envelope's
// error message alongside the decoded data.
func (c *APIClient) do(ctx context.Context, method, path string, body, result interface{}) (string, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	url := c.BaseURL + "/api/v1" + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	parseErr := json.Unmarshal(respBody, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if parseErr == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return "", apiErr
	}
	if parseErr != nil {
		return "", fmt.Errorf("failed to parse response: %w", parseErr)
	}

	if result != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return "", fmt.Errorf("failed to parse response data: %w", err)
		}
	}

	if !env.Success && env.Error != nil {
		return env.Error.Message, nil
	}
	return "", nil
}

// Login authenticates with email/password and returns the issued token.
func (c *APIClient) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Token.AccessToken == "" {
		return nil, fmt.Errorf("server returned empty token")
	}
	return &resp, nil
}

// Logout revokes the client's token on the server.
func (c *APIClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	return err
}

// Dashboard loads the admin dashboard. warning is set when the server
// recovered from a partial fetch failure.
func (c *APIClient) Dashboard(ctx context.Context) (dash *dto.DashboardResponse, warning string, err error) {
	var resp dto.DashboardResponse
	warning, err = c.do(ctx, http.MethodGet, "/admin/dashboard", nil, &resp)
	if err != nil {
		return nil, "", err
	}
	return &resp, warning, nil
}

// Reviews lists every review, newest first.
func (c *APIClient) Reviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if _, err := c.do(ctx, http.MethodGet, "/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview submits a review as the logged-in user.
func (c *APIClient) CreateReview(ctx context.Context, input models.ReviewInput) (*models.Review, error) {
	var review models.Review
	if _, err := c.do(ctx, http.MethodPost, "/reviews", input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
