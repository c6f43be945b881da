package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/jwt"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/piresc/ridebook/services/auth"
)

var (
	// ErrUnknownRole is returned for a login screen that does not exist
	ErrUnknownRole = errors.New("unknown role")
	// ErrRoleMismatch is returned when the account belongs to another route tree
	ErrRoleMismatch = errors.New("account role does not match the login screen")
	// ErrMissingToken is returned when the backend answered without an access token
	ErrMissingToken = errors.New("backend returned no access token")
	// ErrInvalidOTP is returned for login codes that are not 4 to 6 digits
	ErrInvalidOTP = errors.New("otp must be 4 to 6 digits")
	// ErrForbidden is returned when a non-admin session tries to impersonate
	ErrForbidden = errors.New("only admins can impersonate")
	// ErrMissingUserID is returned for an empty impersonation target
	ErrMissingUserID = errors.New("user id is required")
)

// AuthUC runs the login, logout and impersonation flows against the session store
type AuthUC struct {
	gw    auth.AuthGW
	store auth.SessionStore
}

// NewAuthUC creates the auth usecase
func NewAuthUC(gw auth.AuthGW, store auth.SessionStore) *AuthUC {
	return &AuthUC{gw: gw, store: store}
}

// Login signs in from the login screen of role
func (uc *AuthUC) Login(ctx context.Context, role string, req models.LoginRequest) (*models.LoginResult, error) {
	if !knownRole(role) {
		return nil, ErrUnknownRole
	}
	req.Role = role

	resp, err := uc.gw.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return uc.finishLogin(ctx, role, resp)
}

// RequestOTP texts a login code to a customer
func (uc *AuthUC) RequestOTP(ctx context.Context, mobile string) error {
	normalized, err := utils.NormalizeMobile(mobile)
	if err != nil {
		return err
	}

	if err := uc.gw.SendOTP(ctx, models.OTPRequest{Mobile: normalized, Role: constants.RoleCustomer}); err != nil {
		return err
	}

	logger.Info("Login OTP requested", logger.String("mobile", utils.MaskPhoneNumber(normalized)))
	return nil
}

// VerifyOTP completes a customer OTP login
func (uc *AuthUC) VerifyOTP(ctx context.Context, mobile, otp string) (*models.LoginResult, error) {
	normalized, err := utils.NormalizeMobile(mobile)
	if err != nil {
		return nil, err
	}
	if !validLoginOTP(otp) {
		return nil, ErrInvalidOTP
	}

	resp, err := uc.gw.VerifyOTP(ctx, models.OTPLoginRequest{
		Mobile: normalized,
		OTP:    otp,
		Role:   constants.RoleCustomer,
	})
	if err != nil {
		return nil, err
	}
	return uc.finishLogin(ctx, constants.RoleCustomer, resp)
}

// Logout destroys the whole session
func (uc *AuthUC) Logout(ctx context.Context) error {
	if err := uc.store.Logout(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.Info("Logged out")
	return nil
}

// Impersonate stores an override session for userID; the primary admin session stays intact
func (uc *AuthUC) Impersonate(ctx context.Context, userID string) (*models.SessionSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingUserID
	}

	sess, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !sess.IsAuthenticated() || sess.Role != constants.RoleAdmin {
		return nil, ErrForbidden
	}

	// The backend must see the admin token, not a previous override
	if sess.IsImpersonating() {
		if err := uc.store.EndImpersonation(ctx); err != nil {
			return nil, fmt.Errorf("failed to end previous impersonation: %w", err)
		}
	}

	resp, err := uc.gw.Impersonate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, ErrMissingToken
	}
	if resp.Role == "" {
		resp.Role = roleFromToken(resp.AccessToken)
	}

	if err := uc.store.StartImpersonation(ctx, *resp); err != nil {
		return nil, fmt.Errorf("failed to store impersonation: %w", err)
	}

	logger.Info("Impersonation started",
		logger.String("user_id", userID),
		logger.String("impersonation_role", resp.Role))
	return uc.Session(ctx)
}

// EndImpersonation drops the override session
func (uc *AuthUC) EndImpersonation(ctx context.Context) (*models.SessionSummary, error) {
	if err := uc.store.EndImpersonation(ctx); err != nil {
		return nil, fmt.Errorf("failed to end impersonation: %w", err)
	}
	logger.Info("Impersonation ended")
	return uc.Session(ctx)
}

// Session summarizes the stored session. The user id comes from the token the client
// currently authenticates with and is informational only.
func (uc *AuthUC) Session(ctx context.Context) (*models.SessionSummary, error) {
	sess, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return summarize(sess), nil
}

func (uc *AuthUC) finishLogin(ctx context.Context, role string, resp *models.AuthResponse) (*models.LoginResult, error) {
	if resp == nil || resp.AccessToken == "" {
		return nil, ErrMissingToken
	}

	accountRole := resp.Role
	if accountRole == "" {
		accountRole = roleFromToken(resp.AccessToken)
	}
	if accountRole != "" && accountRole != role {
		logger.Warn("Login rejected for role mismatch",
			logger.String("login_role", role),
			logger.String("account_role", accountRole))
		return nil, ErrRoleMismatch
	}

	if err := uc.store.SaveLogin(ctx, *resp, role); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	redirect := constants.HomePathFor(role)
	last, err := uc.store.PopLastVisited(ctx)
	if err != nil {
		logger.Warn("Failed to read last visited route", logger.Err(err))
	} else if last != "" && strings.HasPrefix(last, rootFor(role)+"/") {
		redirect = last
	}

	sess, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	logger.Info("Logged in", logger.String("role", role), logger.String("redirect_to", redirect))
	return &models.LoginResult{
		Role:       role,
		RedirectTo: redirect,
		Session:    *summarize(sess),
	}, nil
}

func summarize(sess models.Session) *models.SessionSummary {
	summary := &models.SessionSummary{
		Authenticated:     sess.IsAuthenticated(),
		Role:              sess.Role,
		Permissions:       sess.Permissions,
		Impersonating:     sess.IsImpersonating(),
		ImpersonationRole: sess.ImpersonationRole,
	}
	if token := sess.BearerToken(); token != "" {
		claims, err := jwt.ParseClaims(token)
		if err != nil {
			logger.Debug("Access token carries no readable claims", logger.Err(err))
		} else {
			summary.UserID = claims.UserIDString()
		}
	}
	return summary
}

func roleFromToken(token string) string {
	claims, err := jwt.ParseClaims(token)
	if err != nil {
		return ""
	}
	return claims.Role
}

func knownRole(role string) bool {
	switch role {
	case constants.RoleAdmin, constants.RoleDriver, constants.RoleCustomer:
		return true
	}
	return false
}

func rootFor(role string) string {
	switch role {
	case constants.RoleAdmin:
		return constants.AdminRoot
	case constants.RoleDriver:
		return constants.DriverRoot
	default:
		return constants.CustomerRoot
	}
}

func validLoginOTP(otp string) bool {
	if len(otp) < 4 || len(otp) > 6 {
		return false
	}
	for i := 0; i < len(otp); i++ {
		if otp[i] < '0' || otp[i] > '9' {
			return false
		}
	}
	return true
}
