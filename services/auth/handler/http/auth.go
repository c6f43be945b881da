package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/constants"
	httpclient "github.com/piresc/ridebook/internal/pkg/http"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/piresc/ridebook/services/auth"
	"github.com/piresc/ridebook/services/auth/usecase"
)

// AuthHandler serves the login screens, the session summary and impersonation
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login returns the credential login handler of one role's login screen
func (h *AuthHandler) Login(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.LoginRequest
		if err := c.Bind(&req); err != nil {
			return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid request payload")
		}
		if (req.Username == "" && req.Mobile == "") || req.Password == "" {
			return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorValidationFailed, "Username or mobile number and password are required")
		}

		result, err := h.authUC.Login(c.Request().Context(), role, req)
		if err != nil {
			return loginError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", result)
	}
}

// RequestOTP texts a login code to a customer
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid request payload")
	}
	if req.Mobile == "" {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorValidationFailed, "Mobile number is required")
	}

	if err := h.authUC.RequestOTP(c.Request().Context(), req.Mobile); err != nil {
		if errors.Is(err, utils.ErrInvalidMobile) {
			return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorValidationFailed, "Invalid mobile number")
		}
		logger.Error("Failed to request OTP", logger.Err(err))
		return utils.CodedErrorResponse(c, http.StatusBadGateway, constants.ErrorBackend, "Failed to send OTP")
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP completes a customer OTP login
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid request payload")
	}
	if req.Mobile == "" || req.OTP == "" {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorValidationFailed, "Mobile number and OTP are required")
	}

	result, err := h.authUC.VerifyOTP(c.Request().Context(), req.Mobile, req.OTP)
	if err != nil {
		return loginError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", result)
}

// Logout clears the whole session
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		logger.Error("Failed to logout", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to logout")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Session returns the session summary
func (h *AuthHandler) Session(c echo.Context) error {
	summary, err := h.authUC.Session(c.Request().Context())
	if err != nil {
		logger.Error("Failed to load session", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load session")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// Impersonate starts an override session for :userID
func (h *AuthHandler) Impersonate(c echo.Context) error {
	summary, err := h.authUC.Impersonate(c.Request().Context(), c.Param("userID"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingUserID):
			return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorValidationFailed, "User ID is required")
		case errors.Is(err, usecase.ErrForbidden):
			return utils.ForbiddenResponse(c, "Only admins can impersonate")
		case httpclient.StatusCode(err) == http.StatusNotFound:
			return utils.NotFoundResponse(c, "User not found")
		case httpclient.IsUnauthorized(err):
			return utils.CodedErrorResponse(c, http.StatusUnauthorized, constants.ErrorUnauthorized, "Session expired, please log in again")
		}
		logger.Error("Failed to impersonate", logger.String("user_id", c.Param("userID")), logger.Err(err))
		return utils.CodedErrorResponse(c, http.StatusBadGateway, constants.ErrorBackend, "Failed to impersonate user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Impersonation started", summary)
}

// EndImpersonation drops the override session
func (h *AuthHandler) EndImpersonation(c echo.Context) error {
	summary, err := h.authUC.EndImpersonation(c.Request().Context())
	if err != nil {
		logger.Error("Failed to end impersonation", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to end impersonation")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Impersonation ended", summary)
}

func loginError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownRole):
		return utils.NotFoundResponse(c, "Unknown login screen")
	case errors.Is(err, usecase.ErrRoleMismatch):
		return utils.ForbiddenResponse(c, "This account cannot sign in here")
	case errors.Is(err, utils.ErrInvalidMobile), errors.Is(err, usecase.ErrInvalidOTP):
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorValidationFailed, err.Error())
	}

	status := httpclient.StatusCode(err)
	if status == http.StatusUnauthorized || status == http.StatusBadRequest {
		return utils.CodedErrorResponse(c, http.StatusUnauthorized, constants.ErrorUnauthorized, "Invalid credentials")
	}

	logger.Error("Login failed", logger.Int("backend_status", status), logger.Err(err))
	return utils.CodedErrorResponse(c, http.StatusBadGateway, constants.ErrorBackend, "Failed to login")
}
