package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/spf13/viper"
)

// DefaultConfigPath is used when CONFIG_PATH is not set
const DefaultConfigPath = "config/ridebook.env"

// InitConfig loads configuration from an optional env-format file and the process environment.
// Environment variables always win over the file.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
			log.Printf("config file %s not found, using environment only", configPath)
		}
	}
	v.AutomaticEnv()

	configs := loadConfig(v)
	if err := Validate(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "ridebook")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "127.0.0.1")
	v.SetDefault("SERVER_PORT", 8088)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("API_TIMEOUT", "15s")
	v.SetDefault("API_REFRESH_PATH", "/token/refresh")
	v.SetDefault("WS_HANDSHAKE_TIMEOUT", "10s")

	v.SetDefault("SESSION_STORE", "file")
	v.SetDefault("SESSION_FILE_PATH", "data/session.json")
	v.SetDefault("SESSION_KEY_PREFIX", "ridebook:session:")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 4)

	v.SetDefault("NSQ_TOPIC", "ridebook.trip_phase")

	v.SetDefault("LOCATION_PING_INTERVAL", "5s")
	v.SetDefault("FEEDBACK_REDIRECT_DELAY", "3s")
	v.SetDefault("TRIP_POLL_INTERVAL", "5s")

	v.SetDefault("AUTH_RATE_LIMIT_ENABLED", false)
	v.SetDefault("AUTH_OTP_RATE_LIMIT", 5)
	v.SetDefault("AUTH_OTP_RATE_WINDOW", "1m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ShutdownTimeout = v.GetDuration("SERVER_SHUTDOWN_TIMEOUT")

	// Backend config
	configs.API.BaseURL = strings.TrimRight(v.GetString("API_BASE_URL"), "/")
	configs.API.Timeout = v.GetDuration("API_TIMEOUT")
	configs.API.RefreshPath = v.GetString("API_REFRESH_PATH")
	configs.WebSocket.BaseURL = strings.TrimRight(v.GetString("WS_BASE_URL"), "/")
	configs.WebSocket.HandshakeTimeout = v.GetDuration("WS_HANDSHAKE_TIMEOUT")

	// Session config
	configs.Session.Store = strings.ToLower(v.GetString("SESSION_STORE"))
	configs.Session.FilePath = v.GetString("SESSION_FILE_PATH")
	configs.Session.KeyPrefix = v.GetString("SESSION_KEY_PREFIX")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")

	// Ride config
	configs.Ride.LocationPingInterval = v.GetDuration("LOCATION_PING_INTERVAL")
	configs.Ride.FeedbackRedirectDelay = v.GetDuration("FEEDBACK_REDIRECT_DELAY")
	configs.Ride.TripPollInterval = v.GetDuration("TRIP_POLL_INTERVAL")

	// Auth config
	configs.Auth.RateLimitEnabled = v.GetBool("AUTH_RATE_LIMIT_ENABLED")
	configs.Auth.OTPRateLimit = v.GetInt("AUTH_OTP_RATE_LIMIT")
	configs.Auth.OTPRateWindow = v.GetDuration("AUTH_OTP_RATE_WINDOW")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// Validate checks the settings the application cannot run without
func Validate(configs *models.Config) error {
	if configs.API.BaseURL == "" {
		return errors.New("API_BASE_URL is required")
	}
	if configs.WebSocket.BaseURL == "" {
		return errors.New("WS_BASE_URL is required")
	}
	switch configs.Session.Store {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", configs.Session.Store)
	}
	if configs.Ride.LocationPingInterval <= 0 {
		return errors.New("LOCATION_PING_INTERVAL must be positive")
	}
	if configs.Ride.TripPollInterval <= 0 {
		return errors.New("TRIP_POLL_INTERVAL must be positive")
	}
	if configs.Auth.RateLimitEnabled && (configs.Auth.OTPRateLimit <= 0 || configs.Auth.OTPRateWindow <= 0) {
		return errors.New("AUTH_OTP_RATE_LIMIT and AUTH_OTP_RATE_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}

// ConfigPath returns CONFIG_PATH or the default location
func ConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultConfigPath
}
