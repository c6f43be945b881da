package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/services/rides"
	"github.com/piresc/ridebook/services/rides/lifecycle"
	"github.com/piresc/ridebook/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPingInterval  = 20 * time.Millisecond
	testRedirectDelay = 20 * time.Millisecond
)

type driverFixture struct {
	uc       rides.DriverUC
	gw       *mocks.MockRideGW
	nav      *mocks.MockNavigator
	notifier *mocks.MockNotifier
	channel  *fakeChannel
}

func newDriverFixture(t *testing.T, observer rides.PhaseObserver) *driverFixture {
	ctrl := gomock.NewController(t)

	f := &driverFixture{
		gw:       mocks.NewMockRideGW(ctrl),
		nav:      mocks.NewMockNavigator(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		channel:  newFakeChannel(),
	}
	cfg := &models.Config{Ride: models.RideConfig{
		LocationPingInterval:  testPingInterval,
		FeedbackRedirectDelay: testRedirectDelay,
	}}

	uc, err := NewDriverUC(cfg, Dependencies{
		Gateway:   f.gw,
		Channel:   f.channel,
		Navigator: f.nav,
		Notifier:  f.notifier,
		Observer:  observer,
	})
	require.NoError(t, err)
	f.uc = uc
	t.Cleanup(uc.Unmount)
	return f
}

// mount loads the given pending trips and ignores success toasts
func (f *driverFixture) mount(t *testing.T, trips ...models.Trip) {
	f.gw.EXPECT().PendingTrips(gomock.Any()).Return(trips, nil)
	f.notifier.EXPECT().Notify(constants.RoleDriver, levelSuccess, gomock.Any()).AnyTimes()
	f.notifier.EXPECT().Notify(constants.RoleDriver, levelInfo, gomock.Any()).AnyTimes()
	require.NoError(t, f.uc.Mount(context.Background()))
}

func (f *driverFixture) phase(t *testing.T, id int64) string {
	t.Helper()
	view, err := f.uc.Trip(id)
	require.NoError(t, err)
	return view.Phase
}

// toPickup approves trip 42 and marks it reached
func (f *driverFixture) toPickup(t *testing.T) {
	f.gw.EXPECT().Approve(gomock.Any(), int64(42)).Return(&models.ApproveResponse{Status: "success"}, nil)
	f.gw.EXPECT().Reached(gomock.Any(), int64(42)).Return(nil)
	require.NoError(t, f.uc.Approve(context.Background(), 42))
	require.NoError(t, f.uc.MarkReached(context.Background(), 42))
}

func TestDriverUC_MountLoadsPendingTrips(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t,
		models.Trip{ID: 1, PickupLocation: "Kemang", Status: models.TripStatusApproved},
		models.Trip{ID: 2, PickupLocation: "Senayan"},
	)

	trips := f.uc.Trips()
	require.Len(t, trips, 2)
	assert.Equal(t, int64(1), trips[0].Trip.ID)
	assert.Equal(t, "pending", trips[0].Phase)
	assert.Equal(t, "pending", trips[1].Phase)

	assert.Equal(t, 1, f.channel.connects)
	assert.Equal(t, 1, f.channel.subscribers(constants.EventSendTripUpdate))
	assert.Equal(t, 1, f.channel.subscribers(constants.EventLocationUpdate))
	assert.Equal(t, 1, f.channel.subscribers(constants.EventRemoveTripUpdate))
}

func TestDriverUC_MountConnectFailure(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.channel.connectErr = errors.New("dial refused")

	err := f.uc.Mount(context.Background())
	assert.Error(t, err)
	assert.Zero(t, f.channel.subscribers(constants.EventLocationUpdate))
}

func TestDriverUC_RemountRetriesFailedPendingLoad(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.gw.EXPECT().PendingTrips(gomock.Any()).Return(nil, errors.New("HTTP error: 502"))
	f.notifier.EXPECT().Notify(constants.RoleDriver, levelError, "Failed to load trip requests")
	assert.Error(t, f.uc.Mount(context.Background()))

	f.mount(t, models.Trip{ID: 42})
	assert.Len(t, f.uc.Trips(), 1)

	// loaded: a further mount only checks the socket
	require.NoError(t, f.uc.Mount(context.Background()))
	assert.Equal(t, 3, f.channel.connects)
	assert.Equal(t, 1, f.channel.holders)
	assert.Equal(t, 1, f.channel.subscribers(constants.EventSendTripUpdate))
}

func TestDriverUC_NewTripRequestStartsPending(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t)

	f.channel.emit(t, constants.EventSendTripUpdate, models.Trip{ID: 8, Status: models.TripStatusOTPVerified})
	assert.Equal(t, "pending", f.phase(t, 8))
}

func TestDriverUC_ApproveStartsPickupPings(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})
	require.NoError(t, f.uc.UpdateLocation(models.LocationSample{Lat: -6.2, Lng: 106.8}))

	f.gw.EXPECT().Approve(gomock.Any(), int64(42)).Return(&models.ApproveResponse{Status: "success"}, nil)
	require.NoError(t, f.uc.Approve(context.Background(), 42))

	assert.Equal(t, "approved", f.phase(t, 42))
	require.Eventually(t, func() bool {
		return len(f.channel.pings(constants.LocationTagPickup)) > 0
	}, time.Second, 2*time.Millisecond)

	ping := f.channel.pings(constants.LocationTagPickup)[0]
	assert.Equal(t, constants.MessageTypeLocationUpdate, ping.Type)
	assert.Equal(t, int64(42), ping.Data.TripID)
	assert.Equal(t, "-6.2", ping.Data.Lat)
	assert.Equal(t, "106.8", ping.Data.Long)
}

func TestDriverUC_ApproveFailureKeepsPhase(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})
	require.NoError(t, f.uc.UpdateLocation(models.LocationSample{Lat: 1, Lng: 1}))

	f.gw.EXPECT().Approve(gomock.Any(), int64(42)).Return(nil, errors.New("HTTP error: 409"))
	f.notifier.EXPECT().Notify(constants.RoleDriver, levelError, "Failed to approve trip")

	err := f.uc.Approve(context.Background(), 42)
	assert.Error(t, err)
	assert.Equal(t, "pending", f.phase(t, 42))

	time.Sleep(3 * testPingInterval)
	assert.Empty(t, f.channel.pings(constants.LocationTagPickup))
}

func TestDriverUC_ApproveUnknownOrApprovedTrip(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})

	assert.ErrorIs(t, f.uc.Approve(context.Background(), 7), ErrTripNotFound)

	f.gw.EXPECT().Approve(gomock.Any(), int64(42)).Return(&models.ApproveResponse{Status: "success"}, nil)
	require.NoError(t, f.uc.Approve(context.Background(), 42))
	assert.ErrorIs(t, f.uc.Approve(context.Background(), 42), lifecycle.ErrInvalidTransition)
}

func TestDriverUC_Reject(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42}, models.Trip{ID: 43})

	f.gw.EXPECT().Reject(gomock.Any(), int64(42)).Return(nil)
	require.NoError(t, f.uc.Reject(context.Background(), 42))

	_, err := f.uc.Trip(42)
	assert.ErrorIs(t, err, ErrTripNotFound)
	assert.Len(t, f.uc.Trips(), 1)

	f.gw.EXPECT().Reject(gomock.Any(), int64(43)).Return(errors.New("boom"))
	f.notifier.EXPECT().Notify(constants.RoleDriver, levelError, "Failed to reject trip")
	assert.Error(t, f.uc.Reject(context.Background(), 43))
	assert.Len(t, f.uc.Trips(), 1)
}

func TestDriverUC_LocationUpdateLastWriteWins(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42, PickupLocation: "Kemang"})

	f.channel.emit(t, constants.EventLocationUpdate, map[string]interface{}{"id": 42, "distance": "5.5", "pickup_location": "Kemang"})
	f.channel.emit(t, constants.EventLocationUpdate, map[string]interface{}{"id": 42, "distance": 2.25})

	view, err := f.uc.Trip(42)
	require.NoError(t, err)
	assert.Equal(t, 2.25, view.Trip.Distance.Float64())
	assert.Empty(t, view.Trip.PickupLocation)

	f.channel.emit(t, constants.EventLocationUpdate, models.Trip{ID: 99, Distance: 1})
	view, err = f.uc.Trip(99)
	require.NoError(t, err, "unknown trips are inserted")
	assert.Equal(t, "pending", view.Phase)
}

func TestDriverUC_ZeroDistanceStopsPickupPings(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})
	require.NoError(t, f.uc.UpdateLocation(models.LocationSample{Lat: 1, Lng: 2}))

	f.gw.EXPECT().Approve(gomock.Any(), int64(42)).Return(&models.ApproveResponse{Status: "success"}, nil)
	require.NoError(t, f.uc.Approve(context.Background(), 42))

	f.channel.emit(t, constants.EventLocationUpdate, models.Trip{ID: 42, Distance: 3})
	assert.Equal(t, "driver_enroute_to_pickup", f.phase(t, 42))

	require.Eventually(t, func() bool {
		return len(f.channel.pings(constants.LocationTagPickup)) > 0
	}, time.Second, 2*time.Millisecond)

	f.channel.emit(t, constants.EventLocationUpdate, models.Trip{ID: 42, Distance: 0})
	sent := len(f.channel.pings(constants.LocationTagPickup))
	time.Sleep(4 * testPingInterval)
	assert.Equal(t, sent, len(f.channel.pings(constants.LocationTagPickup)))
	assert.Equal(t, "driver_enroute_to_pickup", f.phase(t, 42))
}

func TestDriverUC_SubmitOTPRejectsMalformedCodes(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})
	f.toPickup(t)

	for _, otp := range []string{"", "123", "12345", "12a4", "１２３４", " 123"} {
		assert.ErrorIs(t, f.uc.SubmitOTP(context.Background(), 42, otp), ErrInvalidOTP, otp)
	}
	assert.Equal(t, "arrived_at_pickup", f.phase(t, 42))
}

func TestDriverUC_SubmitOTPBeforeReached(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})

	assert.ErrorIs(t, f.uc.SubmitOTP(context.Background(), 42, "1234"), lifecycle.ErrInvalidTransition)
}

func TestDriverUC_SubmitOTPMismatch(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})
	f.toPickup(t)
	require.NoError(t, f.uc.UpdateLocation(models.LocationSample{Lat: 1, Lng: 2}))

	f.gw.EXPECT().VerifyOTP(gomock.Any(), int64(42), "9999").
		Return(&models.OTPVerifyResponse{Status: "failed", Message: "Invalid OTP"}, nil).Times(1)

	err := f.uc.SubmitOTP(context.Background(), 42, "9999")
	assert.ErrorIs(t, err, ErrOTPMismatch)
	assert.Equal(t, "arrived_at_pickup", f.phase(t, 42))
	assert.Empty(t, f.channel.pings(constants.LocationTagDrop))
}

func TestDriverUC_SubmitOTPSendsOneDropPing(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})
	f.toPickup(t)
	require.NoError(t, f.uc.UpdateLocation(models.LocationSample{Lat: -6.25, Lng: 106.79}))

	f.gw.EXPECT().VerifyOTP(gomock.Any(), int64(42), "1234").Return(&models.OTPVerifyResponse{Status: "success"}, nil)
	require.NoError(t, f.uc.SubmitOTP(context.Background(), 42, "1234"))

	assert.Equal(t, "otp_verified", f.phase(t, 42))
	time.Sleep(3 * testPingInterval)

	drops := f.channel.pings(constants.LocationTagDrop)
	require.Len(t, drops, 1)
	assert.Equal(t, int64(42), drops[0].Data.TripID)
	assert.Equal(t, "-6.25", drops[0].Data.Lat)
}

func TestDriverUC_CompleteAndFeedback(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})
	f.toPickup(t)
	f.gw.EXPECT().VerifyOTP(gomock.Any(), int64(42), "1234").Return(&models.OTPVerifyResponse{Status: "success"}, nil)
	require.NoError(t, f.uc.SubmitOTP(context.Background(), 42, "1234"))

	f.channel.emit(t, constants.EventLocationUpdate, models.Trip{ID: 42, Distance: 4})
	assert.Equal(t, "enroute_to_drop", f.phase(t, 42))
	assert.False(t, f.uc.CanComplete(42))
	assert.ErrorIs(t, f.uc.CompleteRide(context.Background(), 42), lifecycle.ErrInvalidTransition)

	f.channel.emit(t, constants.EventLocationUpdate, models.Trip{ID: 42, Distance: 0})
	assert.True(t, f.uc.CanComplete(42))

	f.gw.EXPECT().Complete(gomock.Any(), int64(42)).Return(nil)
	require.NoError(t, f.uc.CompleteRide(context.Background(), 42))
	assert.Equal(t, "feedback_pending", f.phase(t, 42))
	assert.False(t, f.uc.CanComplete(42))

	assert.ErrorIs(t, f.uc.SubmitFeedback(context.Background(), 42, models.FeedbackRequest{Rating: 6}), ErrInvalidRating)

	navigated := make(chan struct{})
	f.gw.EXPECT().Feedback(gomock.Any(), int64(42), models.FeedbackRequest{Rating: 5, Comment: "great"}).Return(nil)
	f.nav.EXPECT().Navigate(constants.RoleDriver, constants.DriverHomePath).Do(func(string, string) { close(navigated) })

	require.NoError(t, f.uc.SubmitFeedback(context.Background(), 42, models.FeedbackRequest{Rating: 5, Comment: "great"}))
	assert.Equal(t, "feedback_submitted", f.phase(t, 42))

	select {
	case <-navigated:
	case <-time.After(time.Second):
		t.Fatal("expected redirect to driver home")
	}
	_, err := f.uc.Trip(42)
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestDriverUC_OTPAtPickupPointCannotCompleteYet(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})

	f.gw.EXPECT().Approve(gomock.Any(), int64(42)).Return(&models.ApproveResponse{Status: "success"}, nil)
	require.NoError(t, f.uc.Approve(context.Background(), 42))
	f.channel.emit(t, constants.EventLocationUpdate, models.Trip{ID: 42, Distance: 3})
	f.channel.emit(t, constants.EventLocationUpdate, models.Trip{ID: 42, Distance: 0})

	f.gw.EXPECT().Reached(gomock.Any(), int64(42)).Return(nil)
	require.NoError(t, f.uc.MarkReached(context.Background(), 42))
	f.gw.EXPECT().VerifyOTP(gomock.Any(), int64(42), "1234").Return(&models.OTPVerifyResponse{Status: "success"}, nil)
	require.NoError(t, f.uc.SubmitOTP(context.Background(), 42, "1234"))

	// the zero distance belongs to the pickup leg
	assert.Equal(t, "otp_verified", f.phase(t, 42))
	assert.False(t, f.uc.CanComplete(42))
	assert.ErrorIs(t, f.uc.CompleteRide(context.Background(), 42), lifecycle.ErrInvalidTransition)
	assert.Equal(t, "otp_verified", f.phase(t, 42))

	f.channel.emit(t, constants.EventLocationUpdate, models.Trip{ID: 42, Distance: 0})
	assert.True(t, f.uc.CanComplete(42))
}

func TestDriverUC_FinishedTripIsNotTrackedAgain(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42}, models.Trip{ID: 43})

	f.nav.EXPECT().Navigate(constants.RoleDriver, constants.DriverHomePath)
	f.channel.emit(t, constants.EventRemoveTripUpdate, map[string]interface{}{"id": 42})
	f.gw.EXPECT().Reject(gomock.Any(), int64(43)).Return(nil)
	require.NoError(t, f.uc.Reject(context.Background(), 43))

	f.channel.emit(t, constants.EventSendTripUpdate, models.Trip{ID: 42})
	f.channel.emit(t, constants.EventLocationUpdate, models.Trip{ID: 43, Distance: 1})
	assert.Empty(t, f.uc.Trips())
}

func TestDriverUC_RemoveTripCancels(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})
	require.NoError(t, f.uc.UpdateLocation(models.LocationSample{Lat: 1, Lng: 2}))

	f.gw.EXPECT().Approve(gomock.Any(), int64(42)).Return(&models.ApproveResponse{Status: "success"}, nil)
	require.NoError(t, f.uc.Approve(context.Background(), 42))

	f.nav.EXPECT().Navigate(constants.RoleDriver, constants.DriverHomePath)
	f.channel.emit(t, constants.EventRemoveTripUpdate, map[string]interface{}{"id": 42})

	_, err := f.uc.Trip(42)
	assert.ErrorIs(t, err, ErrTripNotFound)

	sent := len(f.channel.pings(constants.LocationTagPickup))
	time.Sleep(3 * testPingInterval)
	assert.Equal(t, sent, len(f.channel.pings(constants.LocationTagPickup)))
}

func TestDriverUC_ReportsPhaseChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockPhaseObserver(ctrl)
	f := newDriverFixture(t, observer)
	f.mount(t, models.Trip{ID: 42})

	observer.EXPECT().PhaseChanged(gomock.Any(), gomock.Any()).Do(func(_ context.Context, c models.PhaseChange) {
		assert.Equal(t, int64(42), c.TripID)
		assert.Equal(t, constants.RoleDriver, c.Role)
		assert.Equal(t, "pending", c.From)
		assert.Equal(t, "approved", c.To)
		assert.False(t, c.At.IsZero())
	})
	f.gw.EXPECT().Approve(gomock.Any(), int64(42)).Return(&models.ApproveResponse{Status: "success"}, nil)
	require.NoError(t, f.uc.Approve(context.Background(), 42))
}

func TestDriverUC_UnmountReleasesEverything(t *testing.T) {
	f := newDriverFixture(t, nil)
	f.mount(t, models.Trip{ID: 42})
	require.NoError(t, f.uc.UpdateLocation(models.LocationSample{Lat: 1, Lng: 2}))
	assert.ErrorIs(t, f.uc.UpdateLocation(models.LocationSample{Lat: 91, Lng: 2}), ErrInvalidLocation)

	f.gw.EXPECT().Approve(gomock.Any(), int64(42)).Return(&models.ApproveResponse{Status: "success"}, nil)
	require.NoError(t, f.uc.Approve(context.Background(), 42))

	f.uc.Unmount()
	sent := len(f.channel.pings(constants.LocationTagPickup))
	time.Sleep(3 * testPingInterval)

	assert.Equal(t, sent, len(f.channel.pings(constants.LocationTagPickup)))
	assert.Zero(t, f.channel.subscribers(constants.EventLocationUpdate))
	assert.Equal(t, 1, f.channel.closes)
}
