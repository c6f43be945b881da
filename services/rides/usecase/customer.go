package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/services/rides"
	"github.com/piresc/ridebook/services/rides/lifecycle"
)

// customerUC implements rides.CustomerUC. The rider never emits location;
// progress comes from location_update events and from polling /tripDetails.
type customerUC struct {
	*tracker

	stopPoll chan struct{}
	pollDone sync.WaitGroup
}

// NewCustomerUC creates the rider side of the ride lifecycle
func NewCustomerUC(cfg *models.Config, deps Dependencies) (rides.CustomerUC, error) {
	if deps.Gateway == nil || deps.Channel == nil || deps.Navigator == nil || deps.Notifier == nil {
		return nil, errors.New("customer usecase needs a gateway, a channel, a navigator and a notifier")
	}
	return &customerUC{
		tracker: newTracker(constants.RoleCustomer, constants.CustomerHomePath, cfg.Ride, deps),
	}, nil
}

// Mount opens the shared socket, loads the current trip and starts polling it.
// Mounting again re-dials a socket that was closed and reloads the trip.
func (uc *customerUC) Mount(ctx context.Context) error {
	uc.mu.Lock()
	if _, err := uc.channel.Connect(ctx); err != nil {
		uc.mu.Unlock()
		return fmt.Errorf("failed to connect trip updates: %w", err)
	}
	first := uc.hold(map[string]func(json.RawMessage){
		constants.EventSendTripUpdate:   uc.onTripUpdate,
		constants.EventLocationUpdate:   uc.onTripUpdate,
		constants.EventRemoveTripUpdate: uc.onRemoveTrip,
	})
	var stop chan struct{}
	if first {
		uc.stopPoll = make(chan struct{})
		stop = uc.stopPoll
	}
	uc.mu.Unlock()

	if err := uc.Poll(ctx); err != nil {
		logger.Warn("Trip details load failed", logger.Err(err))
	}

	if first && uc.cfg.TripPollInterval > 0 {
		uc.pollDone.Add(1)
		go uc.pollLoop(stop)
	}

	if first {
		logger.Info("Customer view mounted")
	}
	return nil
}

// Unmount stops polling, drops the subscriptions and closes the socket
func (uc *customerUC) Unmount() {
	uc.mu.Lock()
	if uc.stopPoll != nil {
		close(uc.stopPoll)
		uc.stopPoll = nil
	}
	wasMounted := uc.release()
	uc.mu.Unlock()

	uc.pollDone.Wait()
	if !wasMounted {
		return
	}
	uc.releaseChannel()
	logger.Info("Customer view unmounted")
}

// Poll reads the current trip from the backend and moves the phase forward to its status.
// Statuses behind the local phase are stale and ignored.
func (uc *customerUC) Poll(ctx context.Context) error {
	trip, err := uc.gw.TripDetails(ctx)
	if err != nil {
		return err
	}
	if trip == nil {
		return nil
	}

	status, statusErr := lifecycle.PhaseFromStatus(trip.Status)

	var changes []models.PhaseChange
	cancelled := false
	uc.mu.Lock()
	if !uc.admit(*trip) {
		uc.mu.Unlock()
		return nil
	}
	ride, inserted := uc.board.Upsert(*trip)
	if inserted {
		logger.Info("Tracking customer trip",
			logger.Int64("trip_id", trip.ID),
			logger.String("phase", ride.Phase.String()))
	} else if statusErr != nil {
		logger.Debug("Unknown trip status", logger.String("status", string(trip.Status)))
	} else if uc.advance(ride, status, &changes) && status == lifecycle.PhaseCancelled {
		uc.board.Remove(trip.ID)
		uc.finish(trip.ID)
		cancelled = true
	}
	if ride.Phase == lifecycle.PhaseCompleted {
		uc.advance(ride, lifecycle.PhaseFeedbackPending, &changes)
	}
	uc.mu.Unlock()

	uc.report(ctx, changes)
	if cancelled {
		uc.toast(levelInfo, fmt.Sprintf("Trip %d was cancelled", trip.ID))
		uc.nav.Navigate(uc.role, uc.homePath)
	}
	return nil
}

// SubmitFeedback rates the trip; the screen returns to customer home after the redirect delay
func (uc *customerUC) SubmitFeedback(ctx context.Context, tripID int64, req models.FeedbackRequest) error {
	return uc.submitFeedback(ctx, tripID, req, nil)
}

func (uc *customerUC) pollLoop(stop <-chan struct{}) {
	defer uc.pollDone.Done()

	ticker := time.NewTicker(uc.cfg.TripPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), uc.cfg.TripPollInterval)
			if err := uc.Poll(ctx); err != nil {
				logger.Warn("Trip details poll failed", logger.Err(err))
			}
			cancel()
		}
	}
}

// onTripUpdate replaces the trip wholesale; the distance feeds the leg the rider is on
func (uc *customerUC) onTripUpdate(data json.RawMessage) {
	trip, err := decodeTrip(data)
	if err != nil {
		logger.Warn("Malformed trip payload", logger.Err(err))
		return
	}

	var changes []models.PhaseChange
	uc.mu.Lock()
	if !uc.admit(trip) {
		uc.mu.Unlock()
		return
	}
	ride, _ := uc.board.Upsert(trip)
	switch {
	case ride.Phase == lifecycle.PhaseApproved && !ride.Arrived():
		uc.advance(ride, lifecycle.PhaseEnrouteToPickup, &changes)
	case ride.Phase == lifecycle.PhaseOTPVerified && !ride.Arrived():
		uc.advance(ride, lifecycle.PhaseEnrouteToDrop, &changes)
	}
	uc.mu.Unlock()

	uc.report(context.Background(), changes)
}

// admit reports whether trip may go on the board: finished trips never come back
// and a trip first seen already cancelled or rated is not tracked. Callers hold mu.
func (uc *customerUC) admit(trip models.Trip) bool {
	if uc.isFinished(trip.ID) {
		return false
	}
	if _, ok := uc.board.Get(trip.ID); ok {
		return true
	}
	phase, err := lifecycle.PhaseFromStatus(trip.Status)
	return err != nil || !phase.Terminal()
}

func (uc *customerUC) onRemoveTrip(data json.RawMessage) {
	uc.cancel(data, nil)
}
