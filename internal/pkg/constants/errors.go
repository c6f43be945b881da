package constants

// Error codes returned in JSON error envelopes
const (
	ErrorInvalidFormat     = "invalid_format"
	ErrorValidationFailed  = "validation_failed"
	ErrorUnauthorized      = "unauthorized"
	ErrorTripNotFound      = "trip_not_found"
	ErrorInvalidTransition = "invalid_transition"
	ErrorOTPMismatch       = "otp_mismatch"
	ErrorBackend           = "backend_error"
)
