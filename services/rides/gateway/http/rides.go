package gateway_http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"strings"

	httpclient "github.com/piresc/ridebook/internal/pkg/http"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
)

// Backend routes of the ride lifecycle
const (
	pendingTripsPath = "/driverTripPendingView"
	approvePath      = "/rideRequests/%d/approve"
	rejectPath       = "/rideRequests/%d/reject"
	reachedPath      = "/reachedPickUpLocationView/%d"
	verifyOTPPath    = "/verifiedDriverAtPickUpLocationView/%d"
	completePath     = "/tripCompletedView/%d"
	feedbackPath     = "/feedbackRatingView/%d"
	tripDetailsPath  = "/tripDetails"
)

// HTTPGateway calls the ride-booking backend through the session-aware client
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates the REST gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// PendingTrips loads the driver's trip requests
func (g *HTTPGateway) PendingTrips(ctx context.Context) ([]models.Trip, error) {
	resp, err := g.client.Request(ctx, nethttp.MethodGet, pendingTripsPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending trips: %w", err)
	}

	trips, err := decodeTrips(resp.Body)
	if err != nil {
		logger.Warn("Unexpected pending trips payload",
			logger.String("body", string(resp.Body)),
			logger.Err(err))
		return nil, fmt.Errorf("failed to parse pending trips: %w", err)
	}
	return trips, nil
}

// Approve accepts a trip request
func (g *HTTPGateway) Approve(ctx context.Context, tripID int64) (*models.ApproveResponse, error) {
	var out models.ApproveResponse
	if err := g.client.PostJSON(ctx, fmt.Sprintf(approvePath, tripID), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to approve trip %d: %w", tripID, err)
	}
	return &out, nil
}

// Reject declines a trip request
func (g *HTTPGateway) Reject(ctx context.Context, tripID int64) error {
	if err := g.client.PostJSON(ctx, fmt.Sprintf(rejectPath, tripID), nil, nil); err != nil {
		return fmt.Errorf("failed to reject trip %d: %w", tripID, err)
	}
	return nil
}

// Reached tells the backend the driver is at the pickup point
func (g *HTTPGateway) Reached(ctx context.Context, tripID int64) error {
	if err := g.client.PostJSON(ctx, fmt.Sprintf(reachedPath, tripID), nil, nil); err != nil {
		return fmt.Errorf("failed to mark trip %d reached: %w", tripID, err)
	}
	return nil
}

// VerifyOTP submits the code the customer read out
func (g *HTTPGateway) VerifyOTP(ctx context.Context, tripID int64, otp string) (*models.OTPVerifyResponse, error) {
	var out models.OTPVerifyResponse
	req := models.OTPVerifyRequest{OTP: otp}
	if err := g.client.PostJSON(ctx, fmt.Sprintf(verifyOTPPath, tripID), req, &out); err != nil {
		return nil, fmt.Errorf("failed to verify otp for trip %d: %w", tripID, err)
	}
	return &out, nil
}

// Complete closes the trip at the drop point
func (g *HTTPGateway) Complete(ctx context.Context, tripID int64) error {
	if err := g.client.PostJSON(ctx, fmt.Sprintf(completePath, tripID), nil, nil); err != nil {
		return fmt.Errorf("failed to complete trip %d: %w", tripID, err)
	}
	return nil
}

// Feedback submits the rating of a completed trip
func (g *HTTPGateway) Feedback(ctx context.Context, tripID int64, req models.FeedbackRequest) error {
	if err := g.client.PostJSON(ctx, fmt.Sprintf(feedbackPath, tripID), req, nil); err != nil {
		return fmt.Errorf("failed to submit feedback for trip %d: %w", tripID, err)
	}
	return nil
}

// TripDetails returns the customer's current trip, or nil when there is none
func (g *HTTPGateway) TripDetails(ctx context.Context) (*models.Trip, error) {
	resp, err := g.client.Request(ctx, nethttp.MethodGet, tripDetailsPath, nil, nil)
	if err != nil {
		if httpclient.StatusCode(err) == nethttp.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load trip details: %w", err)
	}

	trips, err := decodeTrips(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse trip details: %w", err)
	}
	if len(trips) == 0 {
		return nil, nil
	}
	return &trips[0], nil
}

// decodeTrips accepts a bare trip, a list, or either one wrapped in {"data": ...}
func decodeTrips(body []byte) ([]models.Trip, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || string(body) == "null" {
		return nil, nil
	}

	switch body[0] {
	case '[':
		var trips []models.Trip
		if err := json.Unmarshal(body, &trips); err != nil {
			return nil, err
		}
		return trips, nil
	case '{':
		var envelope struct {
			Data  json.RawMessage `json:"data"`
			Trips json.RawMessage `json:"trips"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, err
		}
		if inner := firstNonEmpty(envelope.Data, envelope.Trips); inner != nil {
			return decodeTrips(inner)
		}
		var trip models.Trip
		if err := json.Unmarshal(body, &trip); err != nil {
			return nil, err
		}
		if trip.ID == 0 {
			return nil, nil
		}
		return []models.Trip{trip}, nil
	default:
		return nil, fmt.Errorf("unexpected payload %q", strings.TrimSpace(string(body[:min(len(body), 32)])))
	}
}

func firstNonEmpty(values ...json.RawMessage) json.RawMessage {
	for _, v := range values {
		if len(bytes.TrimSpace(v)) > 0 {
			return v
		}
	}
	return nil
}
