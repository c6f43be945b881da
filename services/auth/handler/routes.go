package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/middleware"
	"github.com/piresc/ridebook/services/auth"
	httpHandler "github.com/piresc/ridebook/services/auth/handler/http"
)

// Handler serves the login screens and the /admin route tree
type Handler struct {
	authHTTP *httpHandler.AuthHandler
}

// NewHandler creates a new auth handler
func NewHandler(authUC auth.AuthUC) *Handler {
	return &Handler{
		authHTTP: httpHandler.NewAuthHandler(authUC),
	}
}

// RegisterRoutes mounts the unguarded login endpoints and the admin tree.
// otpLimiter throttles the OTP login endpoints.
func (h *Handler) RegisterRoutes(e *echo.Echo, sessions middleware.SessionReader, otpLimiter echo.MiddlewareFunc) {
	e.POST(constants.AdminLoginPath, h.authHTTP.Login(constants.RoleAdmin))
	e.POST(constants.DriverLoginPath, h.authHTTP.Login(constants.RoleDriver))
	e.POST(constants.CustomerLoginPath, h.authHTTP.Login(constants.RoleCustomer))
	e.POST(constants.CustomerLoginPath+"/otp", h.authHTTP.RequestOTP, otpLimiter)
	e.POST(constants.CustomerLoginPath+"/otp/verify", h.authHTTP.VerifyOTP, otpLimiter)

	e.POST("/logout", h.authHTTP.Logout)
	e.GET("/session", h.authHTTP.Session)

	admin := e.Group(constants.AdminRoot, middleware.AdminGuard(sessions))
	admin.GET("/dashboard", h.authHTTP.Session)
	admin.POST("/impersonate/:userID", h.authHTTP.Impersonate)
	admin.DELETE("/impersonate", h.authHTTP.EndImpersonation)
}
