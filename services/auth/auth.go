package auth

import (
	"context"

	"github.com/piresc/ridebook/internal/pkg/models"
)

// AuthGW defines the backend authentication calls
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/ridebook/services/auth AuthGW
type AuthGW interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	SendOTP(ctx context.Context, req models.OTPRequest) error
	VerifyOTP(ctx context.Context, req models.OTPLoginRequest) (*models.AuthResponse, error)
	Impersonate(ctx context.Context, userID string) (*models.AuthResponse, error)
}

// SessionStore is the part of the session store the auth flows write
//go:generate mockgen -destination=mocks/mock_session.go -package=mocks github.com/piresc/ridebook/services/auth SessionStore
type SessionStore interface {
	Load(ctx context.Context) (models.Session, error)
	SaveLogin(ctx context.Context, auth models.AuthResponse, role string) error
	StartImpersonation(ctx context.Context, auth models.AuthResponse) error
	EndImpersonation(ctx context.Context) error
	Logout(ctx context.Context) error
	PopLastVisited(ctx context.Context) (string, error)
}

// AuthUC defines the login, logout and impersonation flows
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridebook/services/auth AuthUC
type AuthUC interface {
	Login(ctx context.Context, role string, req models.LoginRequest) (*models.LoginResult, error)
	RequestOTP(ctx context.Context, mobile string) error
	VerifyOTP(ctx context.Context, mobile, otp string) (*models.LoginResult, error)
	Logout(ctx context.Context) error
	Impersonate(ctx context.Context, userID string) (*models.SessionSummary, error)
	EndImpersonation(ctx context.Context) (*models.SessionSummary, error)
	Session(ctx context.Context) (*models.SessionSummary, error)
}
