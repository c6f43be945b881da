package rides

import (
	"context"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/pkg/websocket"
)

// RideGW defines the backend calls of the ride lifecycle
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/ridebook/services/rides RideGW
type RideGW interface {
	PendingTrips(ctx context.Context) ([]models.Trip, error)
	Approve(ctx context.Context, tripID int64) (*models.ApproveResponse, error)
	Reject(ctx context.Context, tripID int64) error
	Reached(ctx context.Context, tripID int64) error
	VerifyOTP(ctx context.Context, tripID int64, otp string) (*models.OTPVerifyResponse, error)
	Complete(ctx context.Context, tripID int64) error
	Feedback(ctx context.Context, tripID int64, req models.FeedbackRequest) error
	TripDetails(ctx context.Context) (*models.Trip, error)
}

// Channel is the shared trip updates socket. Each mounted view holds it with
// Acquire and lets go with Release; the last Release closes it.
//go:generate mockgen -destination=mocks/mock_channel.go -package=mocks github.com/piresc/ridebook/services/rides Channel
type Channel interface {
	Connect(ctx context.Context) (*websocket.Conn, error)
	Subscribe(event string, h websocket.Handler) func()
	Send(v interface{}) error
	Acquire()
	Release() error
}

// Navigator moves a role's screen to another route
//go:generate mockgen -destination=mocks/mock_feed.go -package=mocks github.com/piresc/ridebook/services/rides Navigator,Notifier
type Navigator interface {
	Navigate(role, path string)
}

// Notifier shows a toast on a role's screen
type Notifier interface {
	Notify(role, level, message string)
}

// PhaseObserver is told about every lifecycle transition
//go:generate mockgen -destination=mocks/mock_observer.go -package=mocks github.com/piresc/ridebook/services/rides PhaseObserver
type PhaseObserver interface {
	PhaseChanged(ctx context.Context, change models.PhaseChange)
}

// DriverUC is the driver side of the ride lifecycle
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridebook/services/rides DriverUC,CustomerUC
type DriverUC interface {
	Mount(ctx context.Context) error
	Unmount()
	Trips() []models.TripView
	Trip(tripID int64) (models.TripView, error)
	Approve(ctx context.Context, tripID int64) error
	Reject(ctx context.Context, tripID int64) error
	MarkReached(ctx context.Context, tripID int64) error
	SubmitOTP(ctx context.Context, tripID int64, otp string) error
	CanComplete(tripID int64) bool
	CompleteRide(ctx context.Context, tripID int64) error
	SubmitFeedback(ctx context.Context, tripID int64, req models.FeedbackRequest) error
	UpdateLocation(sample models.LocationSample) error
}

// CustomerUC is the rider side of the ride lifecycle
type CustomerUC interface {
	Mount(ctx context.Context) error
	Unmount()
	Trips() []models.TripView
	Trip(tripID int64) (models.TripView, error)
	Poll(ctx context.Context) error
	SubmitFeedback(ctx context.Context, tripID int64, req models.FeedbackRequest) error
}
