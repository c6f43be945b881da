package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/middleware"
	"github.com/piresc/ridebook/services/rides"
	httpHandler "github.com/piresc/ridebook/services/rides/handler/http"
)

// Handler combines the driver and customer ride handlers
type Handler struct {
	driverHTTP   *httpHandler.DriverHandler
	customerHTTP *httpHandler.CustomerHandler
	feedHTTP     *httpHandler.FeedHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	driverUC rides.DriverUC,
	customerUC rides.CustomerUC,
	feed httpHandler.FeedReader,
) *Handler {
	return &Handler{
		driverHTTP:   httpHandler.NewDriverHandler(driverUC),
		customerHTTP: httpHandler.NewCustomerHandler(customerUC),
		feedHTTP:     httpHandler.NewFeedHandler(feed),
	}
}

// RegisterRoutes mounts the /driver and /customer route trees behind their guards.
// otpLimiter throttles the pickup OTP form.
func (h *Handler) RegisterRoutes(e *echo.Echo, sessions middleware.SessionReader, otpLimiter echo.MiddlewareFunc) {
	driver := e.Group(constants.DriverRoot, middleware.DriverGuard(sessions))
	driver.POST("/home/mount", h.driverHTTP.Mount)
	driver.POST("/home/unmount", h.driverHTTP.Unmount)
	driver.GET("/feed", h.feedHTTP.Drain(constants.RoleDriver))
	driver.POST("/location", h.driverHTTP.UpdateLocation)

	driverTrips := driver.Group("/trips")
	driverTrips.GET("", h.driverHTTP.ListTrips)
	driverTrips.GET("/:tripID", h.driverHTTP.GetTrip)
	driverTrips.POST("/:tripID/approve", h.driverHTTP.Approve)
	driverTrips.POST("/:tripID/reject", h.driverHTTP.Reject)
	driverTrips.POST("/:tripID/reached", h.driverHTTP.MarkReached)
	driverTrips.POST("/:tripID/otp", h.driverHTTP.SubmitOTP, otpLimiter)
	driverTrips.GET("/:tripID/can-complete", h.driverHTTP.CanComplete)
	driverTrips.POST("/:tripID/complete", h.driverHTTP.CompleteRide)
	driverTrips.POST("/:tripID/feedback", h.driverHTTP.SubmitFeedback)

	customer := e.Group(constants.CustomerRoot, middleware.CustomerGuard(sessions))
	customer.POST("/home/mount", h.customerHTTP.Mount)
	customer.POST("/home/unmount", h.customerHTTP.Unmount)
	customer.GET("/feed", h.feedHTTP.Drain(constants.RoleCustomer))

	customerTrips := customer.Group("/trips")
	customerTrips.GET("", h.customerHTTP.ListTrips)
	customerTrips.POST("/refresh", h.customerHTTP.Refresh)
	customerTrips.GET("/:tripID", h.customerHTTP.GetTrip)
	customerTrips.POST("/:tripID/feedback", h.customerHTTP.SubmitFeedback)
}
