package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/ridebook/internal/pkg/models"
)

// Phase is where one trip stands in its client-side lifecycle
type Phase string

const (
	PhasePending           Phase = "pending"
	PhaseApproved          Phase = "approved"
	PhaseEnrouteToPickup   Phase = "driver_enroute_to_pickup"
	PhaseArrivedAtPickup   Phase = "arrived_at_pickup"
	PhaseOTPVerified       Phase = "otp_verified"
	PhaseEnrouteToDrop     Phase = "enroute_to_drop"
	PhaseCompleted         Phase = "completed"
	PhaseFeedbackPending   Phase = "feedback_pending"
	PhaseFeedbackSubmitted Phase = "feedback_submitted"
	PhaseCancelled         Phase = "cancelled"
)

var (
	// ErrInvalidPhase is returned for unknown phase strings
	ErrInvalidPhase = errors.New("invalid trip phase")
	// ErrInvalidTransition is returned when an action does not fit the current phase
	ErrInvalidTransition = errors.New("invalid trip phase transition")
)

// order ranks the forward phases; cancelled sits outside the chain
var order = map[Phase]int{
	PhasePending:           0,
	PhaseApproved:          1,
	PhaseEnrouteToPickup:   2,
	PhaseArrivedAtPickup:   3,
	PhaseOTPVerified:       4,
	PhaseEnrouteToDrop:     5,
	PhaseCompleted:         6,
	PhaseFeedbackPending:   7,
	PhaseFeedbackSubmitted: 8,
}

// ParsePhase normalizes and validates a phase string
func ParsePhase(in string) (Phase, error) {
	p := Phase(strings.ToLower(strings.TrimSpace(in)))
	if p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPhase, in)
}

// PhaseFromStatus maps a backend trip status onto a phase
func PhaseFromStatus(status models.TripStatus) (Phase, error) {
	return ParsePhase(string(status))
}

// Valid reports whether p is a known phase
func (p Phase) Valid() bool {
	if p == PhaseCancelled {
		return true
	}
	_, ok := order[p]
	return ok
}

func (p Phase) String() string {
	return string(p)
}

// Terminal reports whether nothing can follow p
func (p Phase) Terminal() bool {
	return p == PhaseFeedbackSubmitted || p == PhaseCancelled
}

// BeforeCompletion reports whether the trip can still be cancelled
func (p Phase) BeforeCompletion() bool {
	rank, ok := order[p]
	return ok && rank < order[PhaseCompleted]
}

// PickupLeg reports whether the driver is heading to the customer
func (p Phase) PickupLeg() bool {
	return p == PhaseApproved || p == PhaseEnrouteToPickup
}

// DropLeg reports whether the customer is on board
func (p Phase) DropLeg() bool {
	return p == PhaseOTPVerified || p == PhaseEnrouteToDrop
}

// After reports whether p is strictly further along the chain than other
func (p Phase) After(other Phase) bool {
	a, okA := order[p]
	b, okB := order[other]
	return okA && okB && a > b
}

// CanTransitionTo specifies the legal edges of the lifecycle
func (p Phase) CanTransitionTo(next Phase) bool {
	if next == PhaseCancelled {
		return p.BeforeCompletion()
	}

	switch p {
	case PhasePending:
		return next == PhaseApproved
	case PhaseApproved:
		return next == PhaseEnrouteToPickup || next == PhaseArrivedAtPickup
	case PhaseEnrouteToPickup:
		return next == PhaseArrivedAtPickup
	case PhaseArrivedAtPickup:
		return next == PhaseOTPVerified
	case PhaseOTPVerified:
		return next == PhaseEnrouteToDrop || next == PhaseCompleted
	case PhaseEnrouteToDrop:
		return next == PhaseCompleted
	case PhaseCompleted:
		return next == PhaseFeedbackPending
	case PhaseFeedbackPending:
		return next == PhaseFeedbackSubmitted
	default:
		return false
	}
}
