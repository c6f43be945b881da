package http

import (
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"strings"
)

// ErrNoRefreshToken is returned when a 401 cannot be recovered because no refresh token is stored
var ErrNoRefreshToken = errors.New("no refresh token stored")

// APIError is a non-2xx answer from the backend
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       []byte
}

func (e *APIError) Error() string {
	msg := e.Message()
	if msg == "" {
		return fmt.Sprintf("HTTP error: %d %s %s", e.StatusCode, e.Method, e.Path)
	}
	return fmt.Sprintf("HTTP error: %d %s %s: %s", e.StatusCode, e.Method, e.Path, msg)
}

// Message extracts the human readable reason from the usual backend envelopes
func (e *APIError) Message() string {
	if len(e.Body) == 0 {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &envelope); err == nil {
		for _, m := range []string{envelope.Message, envelope.Detail, envelope.Error} {
			if m != "" {
				return m
			}
		}
	}
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 200 {
		body = body[:200]
	}
	return body
}

// IsUnauthorized reports whether err is a 401 from the backend
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == nethttp.StatusUnauthorized
}

// StatusCode returns the backend status carried by err, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
