package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/constants"
	httpclient "github.com/piresc/ridebook/internal/pkg/http"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/piresc/ridebook/services/rides/lifecycle"
	"github.com/piresc/ridebook/services/rides/usecase"
)

// tripIDParam reads the :tripID path parameter
func tripIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("tripID"), 10, 64)
}

// respondError maps lifecycle and backend errors onto the JSON error envelope.
// failure is the message shown when the backend call itself failed.
func respondError(c echo.Context, err error, failure string) error {
	switch {
	case errors.Is(err, usecase.ErrTripNotFound):
		return utils.CodedErrorResponse(c, http.StatusNotFound, constants.ErrorTripNotFound, "Trip not found")
	case errors.Is(err, usecase.ErrInvalidOTP),
		errors.Is(err, usecase.ErrInvalidRating),
		errors.Is(err, usecase.ErrInvalidLocation):
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorValidationFailed, err.Error())
	case errors.Is(err, usecase.ErrOTPMismatch):
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorOTPMismatch, "Invalid OTP")
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return utils.CodedErrorResponse(c, http.StatusConflict, constants.ErrorInvalidTransition, err.Error())
	case httpclient.IsUnauthorized(err):
		return utils.CodedErrorResponse(c, http.StatusUnauthorized, constants.ErrorUnauthorized, "Session expired, please log in again")
	}

	logger.Error(failure,
		logger.String("path", c.Request().URL.Path),
		logger.Int("backend_status", httpclient.StatusCode(err)),
		logger.Err(err))
	return utils.CodedErrorResponse(c, http.StatusBadGateway, constants.ErrorBackend, failure)
}
