package gateway_http

import (
	"context"
	"fmt"
	"net/url"

	httpclient "github.com/piresc/ridebook/internal/pkg/http"
	"github.com/piresc/ridebook/internal/pkg/models"
)

// HTTPGateway calls the backend authentication endpoints
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates an auth gateway over the backend client
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// Login exchanges credentials for a token bundle
func (g *HTTPGateway) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := g.client.PostAnonymous(ctx, "/login", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	return &resp, nil
}

// SendOTP asks the backend to text a login code
func (g *HTTPGateway) SendOTP(ctx context.Context, req models.OTPRequest) error {
	if err := g.client.PostAnonymous(ctx, "/sendOTP", req, nil); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

// VerifyOTP exchanges a texted code for a token bundle
func (g *HTTPGateway) VerifyOTP(ctx context.Context, req models.OTPLoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := g.client.PostAnonymous(ctx, "/verifyOTP", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to verify OTP: %w", err)
	}
	return &resp, nil
}

// Impersonate issues a token bundle for another user; the caller's session must be an admin
func (g *HTTPGateway) Impersonate(ctx context.Context, userID string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	path := fmt.Sprintf("/impersonate/%s", url.PathEscape(userID))
	if err := g.client.PostJSON(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to impersonate user %s: %w", userID, err)
	}
	return &resp, nil
}
