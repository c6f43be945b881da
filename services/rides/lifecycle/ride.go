package lifecycle

import (
	"fmt"

	"github.com/piresc/ridebook/internal/pkg/models"
)

// Ride is the client-side state of one tracked trip
type Ride struct {
	Trip  models.Trip
	Phase Phase

	// last distances seen on each leg
	PickupDistance *float64
	DropDistance   *float64
}

// NewRide starts tracking trip, in the phase its backend status names or pending
func NewRide(trip models.Trip) *Ride {
	phase, err := PhaseFromStatus(trip.Status)
	if err != nil {
		phase = PhasePending
	}
	ride := &Ride{Trip: trip, Phase: phase}
	ride.recordDistance()
	return ride
}

// Transition moves along one legal edge and returns the phase left behind
func (r *Ride) Transition(next Phase) (Phase, error) {
	from := r.Phase
	if !from.CanTransitionTo(next) {
		return from, fmt.Errorf("%w: %s -> %s (trip %d)", ErrInvalidTransition, from, next, r.Trip.ID)
	}
	r.enter(next)
	return from, nil
}

// Advance jumps forward to next when it is further along than the current phase,
// or cancels a trip that is not yet completed. Stale or backward phases are ignored.
func (r *Ride) Advance(next Phase) (Phase, bool) {
	from := r.Phase
	switch {
	case next == PhaseCancelled && from.BeforeCompletion():
		r.enter(next)
		return from, true
	case next.After(from) && !from.Terminal():
		r.enter(next)
		return from, true
	default:
		return from, false
	}
}

// enter sets the phase; boarding starts the drop leg with no distance seen yet
func (r *Ride) enter(next Phase) {
	if next.DropLeg() && !r.Phase.DropLeg() {
		r.DropDistance = nil
	}
	r.Phase = next
}

// Replace swaps in a newer trip payload wholesale; the phase is kept
func (r *Ride) Replace(trip models.Trip) {
	r.Trip = trip
	r.recordDistance()
}

func (r *Ride) recordDistance() {
	d := r.Trip.Distance.Float64()
	switch {
	case r.Phase.PickupLeg() || r.Phase == PhaseArrivedAtPickup:
		r.PickupDistance = &d
	case r.Phase.DropLeg():
		r.DropDistance = &d
	}
}

// Arrived reports whether the last reported distance is exactly zero
func (r *Ride) Arrived() bool {
	return r.Trip.Distance.IsZero()
}

// CanComplete reports whether the "Ride Complete" action is available:
// a zero distance has been reported since the customer boarded
func (r *Ride) CanComplete() bool {
	return r.Phase.DropLeg() && r.DropDistance != nil && *r.DropDistance == 0
}

// View renders the ride for the screens
func (r *Ride) View() models.TripView {
	return models.TripView{
		Trip:           r.Trip,
		Phase:          r.Phase.String(),
		CanComplete:    r.CanComplete(),
		PickupDistance: r.PickupDistance,
		DropDistance:   r.DropDistance,
	}
}
