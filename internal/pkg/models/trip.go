package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TripStatus is the status string reported by the ride-booking backend
type TripStatus string

const (
	TripStatusPending           TripStatus = "pending"
	TripStatusApproved          TripStatus = "approved"
	TripStatusEnrouteToPickup   TripStatus = "driver_enroute_to_pickup"
	TripStatusArrivedAtPickup   TripStatus = "arrived_at_pickup"
	TripStatusOTPVerified       TripStatus = "otp_verified"
	TripStatusEnrouteToDrop     TripStatus = "enroute_to_drop"
	TripStatusCompleted         TripStatus = "completed"
	TripStatusFeedbackPending   TripStatus = "feedback_pending"
	TripStatusFeedbackSubmitted TripStatus = "feedback_submitted"
	TripStatusCancelled         TripStatus = "cancelled"
)

// Trip is one booked ride as the backend describes it
type Trip struct {
	ID             int64         `json:"id"`
	PickupLocation string        `json:"pickup_location"`
	DropLocation   string        `json:"drop_location"`
	Distance       FlexibleFloat `json:"distance"` // in kilometers
	Durations      string        `json:"durations,omitempty"`
	EstimatedTime  string        `json:"estimated_time,omitempty"`
	MobileNumber   string        `json:"mobile_number,omitempty"`
	TotalFare      FlexibleFloat `json:"total_fare"`
	Status         TripStatus    `json:"status"`
}

// FlexibleFloat decodes JSON numbers and numeric strings ("4.2", "4.2 km") alike
type FlexibleFloat float64

// UnmarshalJSON accepts a number, a quoted number or null
func (f *FlexibleFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "km"))
		if raw == "" {
			*f = 0
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s: %w", string(data), err)
	}
	*f = FlexibleFloat(v)
	return nil
}

// Float64 returns the plain float value
func (f FlexibleFloat) Float64() float64 {
	return float64(f)
}

// IsZero reports whether the value is exactly zero
func (f FlexibleFloat) IsZero() bool {
	return f == 0
}

// ApproveResponse is returned by the approve/reject endpoints
type ApproveResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Trip    *Trip  `json:"data,omitempty"`
}

// OTPVerifyRequest carries the 4-digit code the customer reads to the driver
type OTPVerifyRequest struct {
	OTP string `json:"otp"`
}

// OTPVerifyResponse is the verify endpoint answer; Status is "success" on a match
type OTPVerifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// FeedbackRequest is the rating submitted after a completed trip
type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// StatusResponse is the generic {status, message} envelope of the lifecycle endpoints
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
