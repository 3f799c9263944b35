package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"community-board-api/internal/metrics"
)

// Sentinel errors surfaced to the service layer. Anything else coming out of
// the client is an upstream failure.
var (
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	ErrSignupRejected     = errors.New("identity: signup rejected")
)

// Session is the credential bundle issued by the identity provider
type Session struct {
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// IdentityClient defines the interface for the hosted identity provider
type IdentityClient interface {
	// SignUp registers email+password credentials and returns the new session.
	SignUp(ctx context.Context, email, password string) (*Session, error)
	// SignInWithPassword exchanges email+password for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	// SignOut revokes the session on the provider side.
	SignOut(ctx context.Context, accessToken string) error
}

// identityClient implements IdentityClient against a GoTrue-compatible API
type identityClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewIdentityClient creates a new identity provider client
func NewIdentityClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) IdentityClient {
	return &identityClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionResponse mirrors the provider token payload
type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID string `json:"id"`
	} `json:"user"`
}

// SignUp registers a new account with the provider
func (c *identityClient) SignUp(ctx context.Context, email, password string) (*Session, error) {
	url := fmt.Sprintf("%s/signup", c.baseURL)

	statusCode, body, err := c.post(ctx, url, credentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("identity signup request failed: %w", err)
	}

	if statusCode >= 400 && statusCode < 500 {
		c.logger.Warn("Identity provider rejected signup",
			zap.Int("status", statusCode),
		)
		return nil, ErrSignupRejected
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("identity signup returned status %d", statusCode)
	}

	return parseSession(body)
}

// SignInWithPassword authenticates with the password grant
func (c *identityClient) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	url := fmt.Sprintf("%s/token?grant_type=password", c.baseURL)

	statusCode, body, err := c.post(ctx, url, credentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("identity sign-in request failed: %w", err)
	}

	if statusCode >= 400 && statusCode < 500 {
		return nil, ErrInvalidCredentials
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("identity sign-in returned status %d", statusCode)
	}

	return parseSession(body)
}

// SignOut revokes the session. Provider-side failures are logged but do not
// block logout; the local token blacklist is the effective revocation.
func (c *identityClient) SignOut(ctx context.Context, accessToken string) error {
	url := fmt.Sprintf("%s/logout", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create logout request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	c.record(url, http.MethodPost, resp, time.Since(startTime), err)
	if err != nil {
		c.logger.Warn("Identity provider sign-out failed", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		c.logger.Warn("Identity provider sign-out failed",
			zap.Int("status", resp.StatusCode),
		)
	}
	return nil
}

func (c *identityClient) post(ctx context.Context, url string, payload interface{}) (int, []byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)
	c.record(url, http.MethodPost, resp, duration, err)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, buf.Bytes(), nil
}

func (c *identityClient) record(url, method string, resp *http.Response, duration time.Duration, err error) {
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, method, statusCode, duration, err)
	}
}

func parseSession(body []byte) (*Session, error) {
	var parsed sessionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	if parsed.AccessToken == "" {
		return nil, errors.New("identity response missing access token")
	}
	userID, err := uuid.Parse(parsed.User.ID)
	if err != nil {
		return nil, fmt.Errorf("identity response has invalid user id: %w", err)
	}
	return &Session{
		UserID:       userID,
		AccessToken:  parsed.AccessToken,
		RefreshToken: parsed.RefreshToken,
		ExpiresIn:    parsed.ExpiresIn,
	}, nil
}
