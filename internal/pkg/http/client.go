package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/session"
)

const (
	// DefaultTimeout for backend requests
	DefaultTimeout = 15 * time.Second
	// RequestIDHeader carries the correlation id
	RequestIDHeader = "X-Request-ID"
)

// TokenSource is the part of the session store the client needs
type TokenSource interface {
	BearerToken(ctx context.Context) (string, session.Identity, error)
	RefreshToken(ctx context.Context, id session.Identity) (string, error)
	UpdateTokens(ctx context.Context, id session.Identity, access, refresh string) error
	ClearTokens(ctx context.Context, id session.Identity) error
}

// Response is a fully read backend answer
type Response struct {
	StatusCode int
	Header     nethttp.Header
	Body       []byte
}

// Decode unmarshals the body into v
func (r *Response) Decode(v interface{}) error {
	if v == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Client talks to the ride-booking REST backend with the session's bearer token
type Client struct {
	baseURL     string
	refreshPath string
	client      *nethttp.Client
	tokens      TokenSource
}

// NewClient creates a backend client
func NewClient(baseURL, refreshPath string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:     baseURL,
		refreshPath: refreshPath,
		client:      &nethttp.Client{Timeout: timeout},
		tokens:      tokens,
	}
}

// Request sends one call. A 401 triggers exactly one token refresh and one retry;
// the retried call is never refreshed again.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}, params url.Values) (*Response, error) {
	return c.do(ctx, method, path, body, params, false)
}

// GetJSON performs a GET and decodes the JSON answer into result
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, result interface{}) error {
	resp, err := c.Request(ctx, nethttp.MethodGet, path, nil, params)
	if err != nil {
		return err
	}
	return resp.Decode(result)
}

// PostJSON performs a POST with a JSON body and decodes the JSON answer into result
func (c *Client) PostJSON(ctx context.Context, path string, body, result interface{}) error {
	resp, err := c.Request(ctx, nethttp.MethodPost, path, body, nil)
	if err != nil {
		return err
	}
	return resp.Decode(result)
}

// PostAnonymous performs a POST without the session's token and without the refresh rule.
// The login endpoints use it so a stale session never rides along with fresh credentials.
func (c *Client) PostAnonymous(ctx context.Context, path string, body, result interface{}) error {
	resp, err := c.send(ctx, nethttp.MethodPost, path, body, nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Method: nethttp.MethodPost, Path: path, Body: resp.Body}
	}
	return resp.Decode(result)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, params url.Values, retried bool) (*Response, error) {
	token, identity, err := c.tokens.BearerToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	resp, err := c.send(ctx, method, path, body, params, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == nethttp.StatusUnauthorized && !retried {
		original := &APIError{StatusCode: resp.StatusCode, Method: method, Path: path, Body: resp.Body}
		if err := c.refresh(ctx, identity); err != nil {
			logger.Warn("Token refresh failed, session cleared",
				logger.String("identity", identity.String()),
				logger.String("path", path),
				logger.Err(err))
			return nil, original
		}
		return c.do(ctx, method, path, body, params, true)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Method: method, Path: path, Body: resp.Body}
	}
	return resp, nil
}

// refresh exchanges the stored refresh token of identity for a new access token.
// Any failure clears that identity's token pair.
func (c *Client) refresh(ctx context.Context, identity session.Identity) error {
	refreshToken, err := c.tokens.RefreshToken(ctx, identity)
	if err != nil {
		return fmt.Errorf("failed to read refresh token: %w", err)
	}
	if refreshToken == "" {
		c.clear(ctx, identity)
		return ErrNoRefreshToken
	}

	resp, err := c.send(ctx, nethttp.MethodPost, c.refreshPath, map[string]string{"refresh": refreshToken}, nil, "")
	if err != nil {
		c.clear(ctx, identity)
		return fmt.Errorf("refresh request failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		c.clear(ctx, identity)
		return &APIError{StatusCode: resp.StatusCode, Method: nethttp.MethodPost, Path: c.refreshPath, Body: resp.Body}
	}

	var out struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := resp.Decode(&out); err != nil || out.Access == "" {
		c.clear(ctx, identity)
		if err == nil {
			err = fmt.Errorf("refresh response carried no access token")
		}
		return err
	}

	if err := c.tokens.UpdateTokens(ctx, identity, out.Access, out.Refresh); err != nil {
		return fmt.Errorf("failed to store refreshed token: %w", err)
	}
	logger.Debug("Access token refreshed", logger.String("identity", identity.String()))
	return nil
}

func (c *Client) clear(ctx context.Context, identity session.Identity) {
	if err := c.tokens.ClearTokens(ctx, identity); err != nil {
		logger.Error("Failed to clear session tokens",
			logger.String("identity", identity.String()),
			logger.Err(err))
	}
}

// send performs the raw HTTP exchange and reads the whole body
func (c *Client) send(ctx context.Context, method, path string, body interface{}, params url.Values, token string) (*Response, error) {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("Backend request failed",
			logger.String("method", method),
			logger.String("path", path),
			logger.String("request_id", requestID),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug("Backend request completed",
		logger.String("method", method),
		logger.String("path", path),
		logger.String("request_id", requestID),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: respBody}, nil
}
