package lifecycle

import (
	"testing"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhase(t *testing.T) {
	p, err := ParsePhase(" OTP_Verified ")
	require.NoError(t, err)
	assert.Equal(t, PhaseOTPVerified, p)

	_, err = ParsePhase("boarding")
	assert.ErrorIs(t, err, ErrInvalidPhase)

	p, err = PhaseFromStatus(models.TripStatusEnrouteToPickup)
	require.NoError(t, err)
	assert.Equal(t, PhaseEnrouteToPickup, p)
}

func TestPhase_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from Phase
		to   Phase
		want bool
	}{
		{"approve pending", PhasePending, PhaseApproved, true},
		{"skip approval", PhasePending, PhaseOTPVerified, false},
		{"reach pickup", PhaseApproved, PhaseArrivedAtPickup, true},
		{"reach pickup while driving", PhaseEnrouteToPickup, PhaseArrivedAtPickup, true},
		{"verify before arrival", PhaseApproved, PhaseOTPVerified, false},
		{"verify at pickup", PhaseArrivedAtPickup, PhaseOTPVerified, true},
		{"complete after otp", PhaseOTPVerified, PhaseCompleted, true},
		{"complete en route to drop", PhaseEnrouteToDrop, PhaseCompleted, true},
		{"complete at pickup", PhaseArrivedAtPickup, PhaseCompleted, false},
		{"ask feedback", PhaseCompleted, PhaseFeedbackPending, true},
		{"submit feedback", PhaseFeedbackPending, PhaseFeedbackSubmitted, true},
		{"cancel pending", PhasePending, PhaseCancelled, true},
		{"cancel on board", PhaseEnrouteToDrop, PhaseCancelled, true},
		{"cancel completed", PhaseCompleted, PhaseCancelled, false},
		{"leave cancelled", PhaseCancelled, PhaseApproved, false},
		{"leave submitted", PhaseFeedbackSubmitted, PhaseFeedbackPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPhase_Predicates(t *testing.T) {
	assert.True(t, PhaseCancelled.Terminal())
	assert.True(t, PhaseFeedbackSubmitted.Terminal())
	assert.False(t, PhaseCompleted.Terminal())

	assert.True(t, PhaseApproved.PickupLeg())
	assert.False(t, PhaseArrivedAtPickup.PickupLeg())
	assert.True(t, PhaseOTPVerified.DropLeg())
	assert.False(t, PhaseCompleted.DropLeg())

	assert.True(t, PhaseCompleted.After(PhasePending))
	assert.False(t, PhaseCancelled.After(PhasePending))
	assert.False(t, PhasePending.After(PhasePending))
}

func TestRide_Transition(t *testing.T) {
	ride := NewRide(models.Trip{ID: 7})
	assert.Equal(t, PhasePending, ride.Phase)

	from, err := ride.Transition(PhaseApproved)
	require.NoError(t, err)
	assert.Equal(t, PhasePending, from)

	_, err = ride.Transition(PhaseCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, PhaseApproved, ride.Phase)
}

func TestRide_Advance(t *testing.T) {
	ride := NewRide(models.Trip{ID: 7, Status: models.TripStatusApproved})
	assert.Equal(t, PhaseApproved, ride.Phase)

	_, moved := ride.Advance(PhaseOTPVerified)
	assert.True(t, moved)
	assert.Equal(t, PhaseOTPVerified, ride.Phase)

	_, moved = ride.Advance(PhaseArrivedAtPickup)
	assert.False(t, moved, "stale phase must not move the trip backwards")
	assert.Equal(t, PhaseOTPVerified, ride.Phase)

	_, moved = ride.Advance(PhaseCancelled)
	assert.True(t, moved)

	_, moved = ride.Advance(PhaseCompleted)
	assert.False(t, moved)
	assert.Equal(t, PhaseCancelled, ride.Phase)
}

func TestRide_CanComplete(t *testing.T) {
	ride := NewRide(models.Trip{ID: 1, Status: models.TripStatusOTPVerified, Distance: 2.5})
	assert.False(t, ride.CanComplete())

	ride.Replace(models.Trip{ID: 1, Status: models.TripStatusOTPVerified, Distance: 0})
	assert.True(t, ride.CanComplete())

	ride.Phase = PhaseArrivedAtPickup
	assert.False(t, ride.CanComplete())
}

func TestRide_CanCompleteIgnoresPickupDistance(t *testing.T) {
	ride := NewRide(models.Trip{ID: 2, Status: models.TripStatusApproved, Distance: 0})
	for _, next := range []Phase{PhaseArrivedAtPickup, PhaseOTPVerified} {
		_, err := ride.Transition(next)
		require.NoError(t, err)
	}

	// still at the pickup point: the zero distance belongs to the pickup leg
	assert.Nil(t, ride.DropDistance)
	assert.False(t, ride.CanComplete())

	ride.Replace(models.Trip{ID: 2, Distance: 0})
	assert.True(t, ride.CanComplete())
}

func TestRide_ViewTracksLegDistances(t *testing.T) {
	ride := NewRide(models.Trip{ID: 4, Status: models.TripStatusApproved, Distance: 3})
	require.NotNil(t, ride.PickupDistance)
	assert.Equal(t, 3.0, *ride.PickupDistance)
	assert.Nil(t, ride.DropDistance)

	ride.Phase = PhaseOTPVerified
	ride.Replace(models.Trip{ID: 4, Distance: 8})

	view := ride.View()
	assert.Equal(t, "otp_verified", view.Phase)
	assert.Equal(t, 3.0, *view.PickupDistance)
	assert.Equal(t, 8.0, *view.DropDistance)
	assert.False(t, view.CanComplete)
}
