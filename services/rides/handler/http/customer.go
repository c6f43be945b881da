package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/piresc/ridebook/services/rides"
)

// CustomerHandler serves the rider screens
type CustomerHandler struct {
	customerUC rides.CustomerUC
}

// NewCustomerHandler creates a new customer HTTP handler
func NewCustomerHandler(customerUC rides.CustomerUC) *CustomerHandler {
	return &CustomerHandler{
		customerUC: customerUC,
	}
}

// Mount opens the trip updates channel and starts tracking the rider's trip
func (h *CustomerHandler) Mount(c echo.Context) error {
	if err := h.customerUC.Mount(c.Request().Context()); err != nil {
		return respondError(c, err, "Failed to load trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Customer home mounted", h.customerUC.Trips())
}

// Unmount stops polling and closes the channel
func (h *CustomerHandler) Unmount(c echo.Context) error {
	h.customerUC.Unmount()
	return utils.SuccessResponse(c, http.StatusOK, "Customer home unmounted", nil)
}

// ListTrips returns the tracked trips
func (h *CustomerHandler) ListTrips(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", h.customerUC.Trips())
}

// GetTrip returns one trip as the ride status screen renders it
func (h *CustomerHandler) GetTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid trip ID")
	}

	view, err := h.customerUC.Trip(tripID)
	if err != nil {
		return respondError(c, err, "Failed to load trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved", view)
}

// Refresh polls the trip details once, outside the background interval
func (h *CustomerHandler) Refresh(c echo.Context) error {
	if err := h.customerUC.Poll(c.Request().Context()); err != nil {
		return respondError(c, err, "Failed to refresh trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip refreshed", h.customerUC.Trips())
}

// SubmitFeedback rates the driver after the ride
func (h *CustomerHandler) SubmitFeedback(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid trip ID")
	}

	var req models.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return utils.CodedErrorResponse(c, http.StatusBadRequest, constants.ErrorInvalidFormat, "Invalid request body")
	}

	if err := h.customerUC.SubmitFeedback(c.Request().Context(), tripID, req); err != nil {
		return respondError(c, err, "Failed to submit feedback")
	}

	view, err := h.customerUC.Trip(tripID)
	if err != nil {
		return utils.SuccessResponse(c, http.StatusOK, "Feedback submitted", nil)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Feedback submitted", view)
}
