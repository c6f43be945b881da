package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/services/rides"
	"github.com/piresc/ridebook/services/rides/lifecycle"
)

var (
	// ErrTripNotFound is returned for actions on trips the view does not track
	ErrTripNotFound = errors.New("trip not found")
	// ErrInvalidOTP is returned when the code is not exactly 4 digits
	ErrInvalidOTP = errors.New("otp must be exactly 4 digits")
	// ErrOTPMismatch is returned when the backend does not accept the code
	ErrOTPMismatch = errors.New("otp does not match")
	// ErrInvalidRating is returned for ratings outside 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrInvalidLocation is returned for coordinates outside WGS84 bounds
	ErrInvalidLocation = errors.New("invalid location")
)

// Toast levels
const (
	levelInfo    = "info"
	levelSuccess = "success"
	levelError   = "error"
)

// tracker is the state both lifecycle views share: the board, the socket
// subscriptions, the pending redirects after feedback and the trips that are done
type tracker struct {
	role     string
	homePath string
	cfg      models.RideConfig

	gw       rides.RideGW
	channel  rides.Channel
	nav      rides.Navigator
	notifier rides.Notifier
	observer rides.PhaseObserver
	now      func() time.Time

	mu          sync.Mutex
	board       *lifecycle.Board
	unsubscribe []func()
	redirects   map[int64]*time.Timer
	mounted     bool

	// trips that left the board for good; the backend may keep reporting them
	finished map[int64]struct{}
}

func newTracker(role, homePath string, cfg models.RideConfig, deps Dependencies) *tracker {
	return &tracker{
		role:      role,
		homePath:  homePath,
		cfg:       cfg,
		gw:        deps.Gateway,
		channel:   deps.Channel,
		nav:       deps.Navigator,
		notifier:  deps.Notifier,
		observer:  deps.Observer,
		now:       time.Now,
		board:     lifecycle.NewBoard(),
		redirects: make(map[int64]*time.Timer),
		finished:  make(map[int64]struct{}),
	}
}

// Dependencies are the collaborators of a lifecycle view
type Dependencies struct {
	Gateway   rides.RideGW
	Channel   rides.Channel
	Navigator rides.Navigator
	Notifier  rides.Notifier
	Observer  rides.PhaseObserver
}

// Trips returns the tracked trips in arrival order
func (t *tracker) Trips() []models.TripView {
	t.mu.Lock()
	defer t.mu.Unlock()

	list := t.board.List()
	views := make([]models.TripView, 0, len(list))
	for i := range list {
		views = append(views, list[i].View())
	}
	return views
}

// Trip returns one tracked trip
func (t *tracker) Trip(tripID int64) (models.TripView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ride, ok := t.board.Get(tripID)
	if !ok {
		return models.TripView{}, ErrTripNotFound
	}
	return ride.View(), nil
}

// hold subscribes the handlers and takes a share of the socket on the first mount.
// It reports whether this call mounted the view. Callers hold mu.
func (t *tracker) hold(handlers map[string]func(json.RawMessage)) bool {
	if t.mounted {
		return false
	}
	t.subscribe(handlers)
	t.channel.Acquire()
	t.mounted = true
	return true
}

// subscribe registers the socket handlers; callers hold mu
func (t *tracker) subscribe(handlers map[string]func(json.RawMessage)) {
	for event, h := range handlers {
		h := h
		t.unsubscribe = append(t.unsubscribe, t.channel.Subscribe(event, func(data json.RawMessage) {
			if t.isMounted() {
				h(data)
			}
		}))
	}
}

func (t *tracker) isMounted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mounted
}

// release drops subscriptions and pending redirects and reports whether
// the view was mounted; callers hold mu
func (t *tracker) release() bool {
	for _, unsubscribe := range t.unsubscribe {
		unsubscribe()
	}
	t.unsubscribe = nil

	for id, timer := range t.redirects {
		timer.Stop()
		delete(t.redirects, id)
	}
	wasMounted := t.mounted
	t.mounted = false
	return wasMounted
}

// releaseChannel gives back this view's share of the socket; called without mu
func (t *tracker) releaseChannel() {
	if err := t.channel.Release(); err != nil {
		logger.Warn("Failed to close trip updates socket",
			logger.String("role", t.role),
			logger.Err(err))
	}
}

// finish remembers that a trip is done; callers hold mu
func (t *tracker) finish(tripID int64) {
	t.finished[tripID] = struct{}{}
}

// isFinished reports whether the trip is done; callers hold mu
func (t *tracker) isFinished(tripID int64) bool {
	_, ok := t.finished[tripID]
	return ok
}

// lookup returns the tracked trip or ErrTripNotFound; callers hold mu
func (t *tracker) lookup(tripID int64) (*lifecycle.Ride, error) {
	ride, ok := t.board.Get(tripID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTripNotFound, tripID)
	}
	return ride, nil
}

// expect checks that the trip exists and can move to next; callers hold mu
func (t *tracker) expect(tripID int64, next lifecycle.Phase) error {
	ride, err := t.lookup(tripID)
	if err != nil {
		return err
	}
	if !ride.Phase.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s (trip %d)", lifecycle.ErrInvalidTransition, ride.Phase, next, tripID)
	}
	return nil
}

// transition moves a tracked trip and records the change; callers hold mu
func (t *tracker) transition(tripID int64, next lifecycle.Phase, changes *[]models.PhaseChange) error {
	ride, err := t.lookup(tripID)
	if err != nil {
		return err
	}
	from, err := ride.Transition(next)
	if err != nil {
		return err
	}
	*changes = append(*changes, t.change(tripID, from, next))
	return nil
}

// advance jumps a trip forward when a newer phase is observed; callers hold mu
func (t *tracker) advance(ride *lifecycle.Ride, next lifecycle.Phase, changes *[]models.PhaseChange) bool {
	from, moved := ride.Advance(next)
	if moved {
		*changes = append(*changes, t.change(ride.Trip.ID, from, next))
	}
	return moved
}

func (t *tracker) change(tripID int64, from, to lifecycle.Phase) models.PhaseChange {
	return models.PhaseChange{
		TripID: tripID,
		Role:   t.role,
		From:   from.String(),
		To:     to.String(),
		At:     t.now().UTC(),
	}
}

// report hands transitions to the observer; called without mu
func (t *tracker) report(ctx context.Context, changes []models.PhaseChange) {
	for _, c := range changes {
		logger.Info("Trip phase changed",
			logger.Int64("trip_id", c.TripID),
			logger.String("role", c.Role),
			logger.String("from", c.From),
			logger.String("to", c.To))
		if t.observer != nil {
			t.observer.PhaseChanged(ctx, c)
		}
	}
}

func (t *tracker) toast(level, message string) {
	t.notifier.Notify(t.role, level, message)
}

// submitFeedback rates a completed trip and schedules the trip's removal and
// the redirect home once the thank-you screen has been shown
func (t *tracker) submitFeedback(ctx context.Context, tripID int64, req models.FeedbackRequest, onDone func(tripID int64)) error {
	if req.Rating < 1 || req.Rating > 5 {
		return ErrInvalidRating
	}

	t.mu.Lock()
	err := t.expect(tripID, lifecycle.PhaseFeedbackSubmitted)
	t.mu.Unlock()
	if err != nil {
		return err
	}

	if err := t.gw.Feedback(ctx, tripID, req); err != nil {
		t.toast(levelError, "Failed to submit feedback")
		return err
	}

	var changes []models.PhaseChange
	t.mu.Lock()
	err = t.transition(tripID, lifecycle.PhaseFeedbackSubmitted, &changes)
	if err == nil {
		t.finish(tripID)
		t.scheduleRedirect(tripID, onDone)
	}
	t.mu.Unlock()
	if err != nil {
		return err
	}

	t.report(ctx, changes)
	t.toast(levelSuccess, "Thank you for your feedback")
	return nil
}

// scheduleRedirect removes the trip and goes home after the feedback delay; callers hold mu
func (t *tracker) scheduleRedirect(tripID int64, onDone func(tripID int64)) {
	if timer, ok := t.redirects[tripID]; ok {
		timer.Stop()
	}
	t.redirects[tripID] = time.AfterFunc(t.cfg.FeedbackRedirectDelay, func() {
		t.mu.Lock()
		if _, ok := t.redirects[tripID]; !ok {
			t.mu.Unlock()
			return
		}
		delete(t.redirects, tripID)
		t.board.Remove(tripID)
		t.finish(tripID)
		t.mu.Unlock()

		if onDone != nil {
			onDone(tripID)
		}
		t.nav.Navigate(t.role, t.homePath)
	})
}

// cancel handles remove_trip_update: a trip not yet completed becomes cancelled,
// leaves the board and the screen goes home
func (t *tracker) cancel(data json.RawMessage, onCancel func(tripID int64)) {
	tripID, err := decodeTripID(data)
	if err != nil {
		logger.Warn("Malformed remove_trip_update payload",
			logger.String("role", t.role),
			logger.Err(err))
		return
	}

	var changes []models.PhaseChange
	t.mu.Lock()
	ride, ok := t.board.Get(tripID)
	if !ok {
		t.mu.Unlock()
		logger.Debug("remove_trip_update for untracked trip", logger.Int64("trip_id", tripID))
		return
	}
	if !ride.Phase.BeforeCompletion() {
		t.mu.Unlock()
		logger.Debug("Ignoring remove_trip_update after completion",
			logger.Int64("trip_id", tripID),
			logger.String("phase", ride.Phase.String()))
		return
	}
	_ = t.transition(tripID, lifecycle.PhaseCancelled, &changes)
	if onCancel != nil {
		onCancel(tripID)
	}
	t.board.Remove(tripID)
	t.finish(tripID)
	t.mu.Unlock()

	t.report(context.Background(), changes)
	t.toast(levelInfo, fmt.Sprintf("Trip %d was cancelled", tripID))
	t.nav.Navigate(t.role, t.homePath)
}

// decodeTrip reads a trip from an event payload, bare or wrapped in {"trip": ...}
func decodeTrip(data json.RawMessage) (models.Trip, error) {
	var wrapped struct {
		Trip *models.Trip `json:"trip"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Trip != nil {
		return *wrapped.Trip, nil
	}

	var trip models.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return models.Trip{}, fmt.Errorf("failed to decode trip: %w", err)
	}
	if trip.ID == 0 {
		return models.Trip{}, errors.New("trip payload has no id")
	}
	return trip, nil
}

// decodeTripID accepts {"id": 1}, {"trip_id": 1} or a trip payload
func decodeTripID(data json.RawMessage) (int64, error) {
	var ids struct {
		TripID int64 `json:"trip_id"`
	}
	if err := json.Unmarshal(data, &ids); err == nil && ids.TripID != 0 {
		return ids.TripID, nil
	}
	trip, err := decodeTrip(data)
	if err != nil {
		return 0, err
	}
	return trip.ID, nil
}

// validOTP accepts exactly 4 ASCII digits
func validOTP(otp string) bool {
	if len(otp) != 4 {
		return false
	}
	for i := 0; i < len(otp); i++ {
		if otp[i] < '0' || otp[i] > '9' {
			return false
		}
	}
	return true
}
