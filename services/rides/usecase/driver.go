package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/services/rides"
	"github.com/piresc/ridebook/services/rides/lifecycle"
)

// driverUC implements rides.DriverUC
type driverUC struct {
	*tracker

	slot     *lifecycle.LocationSlot
	emitters map[int64]*lifecycle.Emitter

	// the pending requests list loaded since the last mount
	pendingLoaded bool
}

// NewDriverUC creates the driver side of the ride lifecycle
func NewDriverUC(cfg *models.Config, deps Dependencies) (rides.DriverUC, error) {
	if deps.Gateway == nil || deps.Channel == nil || deps.Navigator == nil || deps.Notifier == nil {
		return nil, errors.New("driver usecase needs a gateway, a channel, a navigator and a notifier")
	}
	return &driverUC{
		tracker:  newTracker(constants.RoleDriver, constants.DriverHomePath, cfg.Ride, deps),
		slot:     lifecycle.NewLocationSlot(),
		emitters: make(map[int64]*lifecycle.Emitter),
	}, nil
}

// Mount opens the shared socket, listens for trip events and loads the pending requests.
// Mounting again re-dials a socket that was closed and retries a failed pending load.
func (uc *driverUC) Mount(ctx context.Context) error {
	uc.mu.Lock()
	if _, err := uc.channel.Connect(ctx); err != nil {
		uc.mu.Unlock()
		return fmt.Errorf("failed to connect trip updates: %w", err)
	}
	uc.hold(map[string]func(json.RawMessage){
		constants.EventSendTripUpdate:   uc.onTripUpdate,
		constants.EventLocationUpdate:   uc.onLocationUpdate,
		constants.EventRemoveTripUpdate: uc.onRemoveTrip,
	})
	loaded := uc.pendingLoaded
	uc.mu.Unlock()

	if loaded {
		return nil
	}

	trips, err := uc.gw.PendingTrips(ctx)
	if err != nil {
		uc.toast(levelError, "Failed to load trip requests")
		return err
	}

	uc.mu.Lock()
	for _, trip := range trips {
		uc.track(trip)
	}
	uc.pendingLoaded = true
	uc.mu.Unlock()

	logger.Info("Driver view mounted", logger.Int("pending_trips", len(trips)))
	return nil
}

// Unmount stops every emitter, drops the subscriptions and closes the socket
func (uc *driverUC) Unmount() {
	uc.mu.Lock()
	for id := range uc.emitters {
		uc.stopEmitter(id)
	}
	uc.pendingLoaded = false
	wasMounted := uc.release()
	uc.mu.Unlock()

	if !wasMounted {
		return
	}
	uc.releaseChannel()
	logger.Info("Driver view unmounted")
}

// UpdateLocation stores the latest device position
func (uc *driverUC) UpdateLocation(sample models.LocationSample) error {
	if !sample.Valid() {
		return ErrInvalidLocation
	}
	uc.slot.Set(sample)
	return nil
}

// Approve accepts a pending request and starts sending pickup pings
func (uc *driverUC) Approve(ctx context.Context, tripID int64) error {
	uc.mu.Lock()
	err := uc.expect(tripID, lifecycle.PhaseApproved)
	uc.mu.Unlock()
	if err != nil {
		return err
	}

	resp, err := uc.gw.Approve(ctx, tripID)
	if err != nil {
		uc.toast(levelError, "Failed to approve trip")
		return err
	}

	var changes []models.PhaseChange
	uc.mu.Lock()
	if resp.Trip != nil && resp.Trip.ID == tripID {
		uc.board.Upsert(*resp.Trip)
	}
	err = uc.transition(tripID, lifecycle.PhaseApproved, &changes)
	if err == nil {
		uc.startEmitter(tripID, constants.LocationTagPickup)
	}
	uc.mu.Unlock()
	if err != nil {
		return err
	}

	uc.report(ctx, changes)
	uc.toast(levelSuccess, "Trip approved")
	return nil
}

// Reject declines a pending request and drops it from the board
func (uc *driverUC) Reject(ctx context.Context, tripID int64) error {
	uc.mu.Lock()
	_, err := uc.lookup(tripID)
	uc.mu.Unlock()
	if err != nil {
		return err
	}

	if err := uc.gw.Reject(ctx, tripID); err != nil {
		uc.toast(levelError, "Failed to reject trip")
		return err
	}

	uc.mu.Lock()
	uc.stopEmitter(tripID)
	uc.board.Remove(tripID)
	uc.finish(tripID)
	uc.mu.Unlock()

	uc.toast(levelInfo, "Trip rejected")
	return nil
}

// MarkReached records that the driver is at the pickup point and opens OTP entry
func (uc *driverUC) MarkReached(ctx context.Context, tripID int64) error {
	uc.mu.Lock()
	err := uc.expect(tripID, lifecycle.PhaseArrivedAtPickup)
	uc.mu.Unlock()
	if err != nil {
		return err
	}

	if err := uc.gw.Reached(ctx, tripID); err != nil {
		uc.toast(levelError, "Failed to update pickup status")
		return err
	}

	var changes []models.PhaseChange
	uc.mu.Lock()
	err = uc.transition(tripID, lifecycle.PhaseArrivedAtPickup, &changes)
	if err == nil {
		uc.stopEmitter(tripID)
	}
	uc.mu.Unlock()
	if err != nil {
		return err
	}

	uc.report(ctx, changes)
	return nil
}

// SubmitOTP verifies the customer's code. On success the trip enters the drop
// leg and exactly one drop_location ping is sent. A mismatch leaves the phase unchanged.
func (uc *driverUC) SubmitOTP(ctx context.Context, tripID int64, otp string) error {
	if !validOTP(otp) {
		return ErrInvalidOTP
	}

	uc.mu.Lock()
	err := uc.expect(tripID, lifecycle.PhaseOTPVerified)
	uc.mu.Unlock()
	if err != nil {
		return err
	}

	resp, err := uc.gw.VerifyOTP(ctx, tripID, otp)
	if err != nil {
		uc.toast(levelError, "Failed to verify OTP")
		return err
	}
	if resp.Status != constants.MessageStatusSuccess {
		logger.Info("OTP rejected",
			logger.Int64("trip_id", tripID),
			logger.String("message", resp.Message))
		return ErrOTPMismatch
	}

	var changes []models.PhaseChange
	uc.mu.Lock()
	err = uc.transition(tripID, lifecycle.PhaseOTPVerified, &changes)
	if err == nil {
		if pingErr := lifecycle.SendLocation(uc.channel, uc.slot, tripID, constants.LocationTagDrop); pingErr != nil {
			logger.Warn("Failed to send drop location",
				logger.Int64("trip_id", tripID),
				logger.Err(pingErr))
		}
	}
	uc.mu.Unlock()
	if err != nil {
		return err
	}

	uc.report(ctx, changes)
	uc.toast(levelSuccess, "OTP verified")
	return nil
}

// CanComplete reports whether the trip is on the drop leg with zero distance left
func (uc *driverUC) CanComplete(tripID int64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ride, ok := uc.board.Get(tripID)
	return ok && ride.CanComplete()
}

// CompleteRide closes the trip at the drop point and asks for feedback
func (uc *driverUC) CompleteRide(ctx context.Context, tripID int64) error {
	uc.mu.Lock()
	ride, err := uc.lookup(tripID)
	if err == nil && !ride.CanComplete() {
		err = fmt.Errorf("%w: trip %d cannot be completed in phase %s", lifecycle.ErrInvalidTransition, tripID, ride.Phase)
	}
	uc.mu.Unlock()
	if err != nil {
		return err
	}

	if err := uc.gw.Complete(ctx, tripID); err != nil {
		uc.toast(levelError, "Failed to complete ride")
		return err
	}

	var changes []models.PhaseChange
	uc.mu.Lock()
	err = uc.transition(tripID, lifecycle.PhaseCompleted, &changes)
	if err == nil {
		err = uc.transition(tripID, lifecycle.PhaseFeedbackPending, &changes)
	}
	uc.stopEmitter(tripID)
	uc.mu.Unlock()

	uc.report(ctx, changes)
	if err != nil {
		return err
	}
	uc.toast(levelSuccess, "Ride completed")
	return nil
}

// SubmitFeedback rates the trip; the screen returns to driver home after the redirect delay
func (uc *driverUC) SubmitFeedback(ctx context.Context, tripID int64, req models.FeedbackRequest) error {
	return uc.submitFeedback(ctx, tripID, req, nil)
}

func (uc *driverUC) onTripUpdate(data json.RawMessage) {
	trip, err := decodeTrip(data)
	if err != nil {
		logger.Warn("Malformed send_trip_update payload", logger.Err(err))
		return
	}

	uc.mu.Lock()
	uc.track(trip)
	uc.mu.Unlock()
}

// track puts a trip request on the board; new requests always start pending
// and finished trips are never tracked again. Callers hold mu.
func (uc *driverUC) track(trip models.Trip) {
	if uc.isFinished(trip.ID) {
		return
	}
	ride, inserted := uc.board.Upsert(trip)
	if inserted {
		ride.Phase = lifecycle.PhasePending
		logger.Info("Trip request received", logger.Int64("trip_id", trip.ID))
	}
}

// onLocationUpdate replaces the trip wholesale and follows the distance:
// moving away on a leg marks it en route, zero distance on the pickup leg ends the pickup pings
func (uc *driverUC) onLocationUpdate(data json.RawMessage) {
	trip, err := decodeTrip(data)
	if err != nil {
		logger.Warn("Malformed location_update payload", logger.Err(err))
		return
	}

	var changes []models.PhaseChange
	uc.mu.Lock()
	if uc.isFinished(trip.ID) {
		uc.mu.Unlock()
		return
	}
	ride, inserted := uc.board.Upsert(trip)
	if inserted {
		logger.Info("Tracking trip first seen in a location update",
			logger.Int64("trip_id", trip.ID),
			logger.String("phase", ride.Phase.String()))
	}

	switch {
	case ride.Phase == lifecycle.PhaseApproved && !ride.Arrived():
		_ = uc.transition(trip.ID, lifecycle.PhaseEnrouteToPickup, &changes)
	case ride.Phase == lifecycle.PhaseOTPVerified && !ride.Arrived():
		_ = uc.transition(trip.ID, lifecycle.PhaseEnrouteToDrop, &changes)
	}
	if ride.Phase.PickupLeg() && ride.Arrived() {
		uc.stopEmitter(trip.ID)
	}
	uc.mu.Unlock()

	uc.report(context.Background(), changes)
}

func (uc *driverUC) onRemoveTrip(data json.RawMessage) {
	uc.cancel(data, uc.stopEmitter)
}

// startEmitter replaces any emitter of the trip; callers hold mu
func (uc *driverUC) startEmitter(tripID int64, tag string) {
	uc.stopEmitter(tripID)
	e := lifecycle.NewEmitter(tripID, tag, uc.cfg.LocationPingInterval, uc.channel, uc.slot)
	uc.emitters[tripID] = e
	e.Start()
}

// stopEmitter is a no-op for trips without one; callers hold mu
func (uc *driverUC) stopEmitter(tripID int64) {
	if e, ok := uc.emitters[tripID]; ok {
		e.Stop()
		delete(uc.emitters, tripID)
	}
}
