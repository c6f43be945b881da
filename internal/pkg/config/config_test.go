package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ridebook.env")
	content := "API_BASE_URL=https://api.example.com/\n" +
		"WS_BASE_URL=wss://ws.example.com\n" +
		"SESSION_STORE=memory\n" +
		"LOCATION_PING_INTERVAL=2s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	configs, err := InitConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", configs.API.BaseURL)
	assert.Equal(t, "wss://ws.example.com", configs.WebSocket.BaseURL)
	assert.Equal(t, "memory", configs.Session.Store)
	assert.Equal(t, 2*time.Second, configs.Ride.LocationPingInterval)
	assert.Equal(t, 3*time.Second, configs.Ride.FeedbackRedirectDelay)
	assert.Equal(t, "/token/refresh", configs.API.RefreshPath)
	assert.False(t, configs.Auth.RateLimitEnabled)
	assert.Equal(t, 5, configs.Auth.OTPRateLimit)
	assert.Equal(t, time.Minute, configs.Auth.OTPRateWindow)
}

func TestInitConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ridebook.env")
	require.NoError(t, os.WriteFile(path, []byte("API_BASE_URL=https://file.example.com\nWS_BASE_URL=wss://ws\n"), 0o600))
	t.Setenv("API_BASE_URL", "https://env.example.com")

	configs, err := InitConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", configs.API.BaseURL)
}

func TestInitConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api")
	t.Setenv("WS_BASE_URL", "wss://ws")

	configs, err := InitConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "file", configs.Session.Store)
	assert.Equal(t, 8088, configs.Server.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing api base url",
			env:     map[string]string{"WS_BASE_URL": "wss://ws"},
			wantErr: "API_BASE_URL is required",
		},
		{
			name:    "missing ws base url",
			env:     map[string]string{"API_BASE_URL": "https://api"},
			wantErr: "WS_BASE_URL is required",
		},
		{
			name: "unknown session store",
			env: map[string]string{
				"API_BASE_URL":  "https://api",
				"WS_BASE_URL":   "wss://ws",
				"SESSION_STORE": "cookie",
			},
			wantErr: "unknown SESSION_STORE",
		},
		{
			name: "rate limiting without a limit",
			env: map[string]string{
				"API_BASE_URL":            "https://api",
				"WS_BASE_URL":             "wss://ws",
				"AUTH_RATE_LIMIT_ENABLED": "true",
				"AUTH_OTP_RATE_LIMIT":     "0",
			},
			wantErr: "AUTH_OTP_RATE_LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := InitConfig("")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
