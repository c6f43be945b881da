package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	API       APIConfig
	WebSocket WebSocketConfig
	Session   SessionConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	Ride      RideConfig
	Auth      AuthConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains the local HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// APIConfig points at the ride-booking REST backend
type APIConfig struct {
	BaseURL     string
	Timeout     time.Duration
	RefreshPath string
}

// WebSocketConfig points at the trip updates socket
type WebSocketConfig struct {
	BaseURL          string
	HandshakeTimeout time.Duration
}

// SessionConfig selects where the session is kept
type SessionConfig struct {
	Store     string // memory, file or redis
	FilePath  string
	KeyPrefix string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains the trip journal producer configuration
type NSQConfig struct {
	Address string
	Topic   string
}

// RideConfig contains the trip lifecycle timings
type RideConfig struct {
	LocationPingInterval  time.Duration
	FeedbackRedirectDelay time.Duration
	TripPollInterval      time.Duration
}

// AuthConfig throttles the OTP endpoints through Redis
type AuthConfig struct {
	RateLimitEnabled bool
	OTPRateLimit     int
	OTPRateWindow    time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
