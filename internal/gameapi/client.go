package gameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is where a locally running game service exposes tic_tac_toe v1
const DefaultBaseURL = "http://localhost:8080/_ah/api/tic_tac_toe/v1"

// Client is an HTTP client for the tic_tac_toe API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure Client implements Service
var _ Service = (*Client)(nil)

// CreateUser invokes tic_tac_toe.create_user
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*StringMessage, error) {
	var result StringMessage
	if err := c.do(ctx, http.MethodPost, "/user", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// NewGame invokes tic_tac_toe.new_game
func (c *Client) NewGame(ctx context.Context, req NewGameRequest) (*NewGameResult, error) {
	var result NewGameResult
	if err := c.do(ctx, http.MethodPost, "/game", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetGame invokes tic_tac_toe.get_game
func (c *Client) GetGame(ctx context.Context, req GetGameRequest) (*GameForm, error) {
	var result GameForm
	path := "/game/" + url.PathEscape(string(req.URLSafeGameKey))
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteError{Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{Status: resp.StatusCode, Message: err.Error(), Err: err}
	}

	c.logger.Debug("game service call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		// The message is optional; a body we cannot decode leaves it empty
		var errBody ErrorBody
		_ = json.Unmarshal(respBody, &errBody)
		return &RemoteError{Status: resp.StatusCode, Message: errBody.Error.Message}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &RemoteError{Status: resp.StatusCode, Message: "malformed response", Err: err}
		}
	}

	return nil
}
