package models

import "time"

// TripView is one tracked trip as the driver or customer screens render it
type TripView struct {
	Trip        Trip   `json:"trip"`
	Phase       string `json:"phase"`
	CanComplete bool   `json:"can_complete"`
	// PickupDistance and DropDistance are the last distances seen on each leg, in kilometers
	PickupDistance *float64 `json:"pickup_distance,omitempty"`
	DropDistance   *float64 `json:"drop_distance,omitempty"`
}

// PhaseChange records one lifecycle transition of a trip
type PhaseChange struct {
	TripID int64     `json:"trip_id"`
	Role   string    `json:"role"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	At     time.Time `json:"at"`
}

// LocationUpdateRequest is the device position pushed by the driver screen
type LocationUpdateRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OTPSubmitRequest is the OTP form of the driver screen
type OTPSubmitRequest struct {
	OTP string `json:"otp"`
}
