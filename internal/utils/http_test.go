package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "Trips retrieved", map[string]interface{}{"count": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Trips retrieved", response.Message)
	assert.Equal(t, map[string]interface{}{"count": float64(2)}, response.Data)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		send        func(c echo.Context) error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "bad request keeps message",
			send:        func(c echo.Context) error { return BadRequestResponse(c, "Invalid OTP") },
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid OTP",
		},
		{
			name:        "unauthorized default",
			send:        func(c echo.Context) error { return UnauthorizedResponse(c, "") },
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
		{
			name:        "forbidden default",
			send:        func(c echo.Context) error { return ForbiddenResponse(c, "") },
			wantStatus:  http.StatusForbidden,
			wantMessage: "Forbidden",
		},
		{
			name:        "not found default",
			send:        func(c echo.Context) error { return NotFoundResponse(c, "") },
			wantStatus:  http.StatusNotFound,
			wantMessage: "Resource not found",
		},
		{
			name:        "internal error default",
			send:        func(c echo.Context) error { return InternalServerErrorResponse(c, "") },
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name:        "bad gateway default",
			send:        func(c echo.Context) error { return BadGatewayResponse(c, "") },
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Backend unavailable",
		},
		{
			name:        "bad gateway keeps message",
			send:        func(c echo.Context) error { return BadGatewayResponse(c, "Failed to approve trip") },
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Failed to approve trip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, tt.send(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantMessage, response.Error)
			assert.Equal(t, tt.wantStatus, response.Code)
			assert.Empty(t, response.ErrorCode)
		})
	}
}

func TestCodedErrorResponse(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, CodedErrorResponse(c, http.StatusConflict, "invalid_transition", "Trip cannot move to completed"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "invalid_transition", response.ErrorCode)
	assert.Equal(t, "Trip cannot move to completed", response.Error)
	assert.Equal(t, http.StatusConflict, response.Code)
}
