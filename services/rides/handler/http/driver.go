package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/piresc/ridebook/services/rides"
)

// DriverHandler serves the driver screens
type DriverHandler struct {
	driverUC rides.DriverUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC rides.DriverUC) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
	}
}

// Mount opens the trip updates channel and loads the pending trips
func (h *DriverHandler) Mount(c echo.Context) error {
	if err := h.driverUC.Mount(c.Request().Context()); err != nil {
		return respondError(c, err, "Failed to load trips")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver home mounted", h.driverUC.Trips())
}

// Unmount stops every emitter and closes the channel
func (h *DriverHandler) Unmount(c echo.Context) error {
	h.driverUC.Unmount()
	return utils.SuccessResponse(c, http.StatusOK, "Driver home unmounted", nil)
}

// ListTrips returns the active trip list
func (h *DriverHandler) ListTrips(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", h.driverUC.Trips())
}

// GetTrip returns one trip as the ride status screen renders it
func (h *DriverHandler) GetTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid trip ID")
	}

	view, err := h.driverUC.Trip(tripID)
	if err != nil {
		return respondError(c, err, "Failed to load trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved", view)
}

// Approve accepts a pending ride request
func (h *DriverHandler) Approve(c echo.Context) error {
	return h.tripAction(c, "Trip approved", "Failed to approve trip", h.driverUC.Approve)
}

// Reject declines a pending ride request
func (h *DriverHandler) Reject(c echo.Context) error {
	return h.tripAction(c, "Trip rejected", "Failed to reject trip", h.driverUC.Reject)
}

// MarkReached tells the backend the driver is at the pickup point
func (h *DriverHandler) MarkReached(c echo.Context) error {
	return h.tripAction(c, "Pickup reached", "Failed to mark pickup reached", h.driverUC.MarkReached)
}

// CompleteRide ends the ride at the drop point
func (h *DriverHandler) CompleteRide(c echo.Context) error {
	return h.tripAction(c, "Ride completed", "Failed to complete ride", h.driverUC.CompleteRide)
}

// SubmitOTP verifies the rider's pickup code
func (h *DriverHandler) SubmitOTP(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid trip ID")
	}

	var req models.OTPSubmitRequest
	if err := c.Bind(&req); err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid request body")
	}

	if err := h.driverUC.SubmitOTP(c.Request().Context(), tripID, req.OTP); err != nil {
		return respondError(c, err, "Failed to verify OTP")
	}
	return h.respondTrip(c, tripID, "OTP verified")
}

// CanComplete reports whether the complete button should be enabled
func (h *DriverHandler) CanComplete(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid trip ID")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]bool{
		"can_complete": h.driverUC.CanComplete(tripID),
	})
}

// SubmitFeedback rates the rider after the ride
func (h *DriverHandler) SubmitFeedback(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid trip ID")
	}

	var req models.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid request body")
	}

	if err := h.driverUC.SubmitFeedback(c.Request().Context(), tripID, req); err != nil {
		return respondError(c, err, "Failed to submit feedback")
	}
	return h.respondTrip(c, tripID, "Feedback submitted")
}

// UpdateLocation stores the latest device position used by the location pings
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid request body")
	}

	sample := models.LocationSample{Lat: req.Lat, Lng: req.Lng}
	if err := h.driverUC.UpdateLocation(sample); err != nil {
		return respondError(c, err, "Failed to update location")
	}

	hash := utils.EncodeSample(sample, utils.LocationGeohashPrecision)
	logger.Debug("Driver location updated", logger.String("geohash", hash))

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", map[string]interface{}{
		"lat":     sample.Lat,
		"lng":     sample.Lng,
		"geohash": hash,
	})
}

func (h *DriverHandler) tripAction(c echo.Context, success, failure string, action func(ctx context.Context, tripID int64) error) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid trip ID")
	}

	if err := action(c.Request().Context(), tripID); err != nil {
		return respondError(c, err, failure)
	}
	return h.respondTrip(c, tripID, success)
}

// respondTrip answers with the trip view, or just the message once the trip left the board
func (h *DriverHandler) respondTrip(c echo.Context, tripID int64, message string) error {
	view, err := h.driverUC.Trip(tripID)
	if err != nil {
		return utils.SuccessResponse(c, http.StatusOK, message, nil)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, view)
}
