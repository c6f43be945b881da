package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/circuitbreaker"
	"github.com/piresc/ridebook/internal/pkg/config"
	"github.com/piresc/ridebook/internal/pkg/feed"
	"github.com/piresc/ridebook/internal/pkg/health"
	httpclient "github.com/piresc/ridebook/internal/pkg/http"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/middleware"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/pkg/nsq"
	"github.com/piresc/ridebook/internal/pkg/retry"
	"github.com/piresc/ridebook/internal/pkg/server"
	"github.com/piresc/ridebook/internal/pkg/session"
	"github.com/piresc/ridebook/internal/pkg/websocket"
	authgateway "github.com/piresc/ridebook/services/auth/gateway"
	authhandler "github.com/piresc/ridebook/services/auth/handler"
	authusecase "github.com/piresc/ridebook/services/auth/usecase"
	"github.com/piresc/ridebook/services/rides/gateway"
	"github.com/piresc/ridebook/services/rides/handler"
	"github.com/piresc/ridebook/services/rides/usecase"
)

func main() {
	appName := "ridebook"
	configs, err := config.InitConfig(config.ConfigPath())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("session_store", configs.Session.Store))

	components := server.NewShutdownManager(zapLogger)
	healthService := health.NewService()

	// Redis backs the session when selected and the OTP rate limiter when enabled
	var redisClient *redis.Client
	if configs.Session.Store == "redis" || configs.Auth.RateLimitEnabled {
		redisClient, err = session.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		components.Register("redis", func(context.Context) error { return redisClient.Close() })
		healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	}

	repo, err := newSessionRepository(configs, redisClient)
	if err != nil {
		zapLogger.Fatal("Failed to open session store", logger.Err(err))
	}
	sessions := session.NewStore(repo)

	// Backend client and the shared trip updates socket
	apiClient := httpclient.NewClient(configs.API.BaseURL, configs.API.RefreshPath, configs.API.Timeout, sessions)
	channel := websocket.NewManager(configs.WebSocket.BaseURL, configs.WebSocket.HandshakeTimeout, sessions)
	components.Register("trip updates socket", func(context.Context) error { return channel.Close() })

	// Trip phase journal; without NSQ_ADDRESS the journal drops changes
	var publisher nsq.Publisher
	if configs.NSQ.Address != "" {
		var producer *nsq.Producer
		err := retry.New("nsq producer", retry.DefaultConfig()).Execute(context.Background(), func(context.Context) error {
			var connErr error
			producer, connErr = nsq.NewProducer(configs.NSQ.Address)
			return connErr
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		publisher = producer
		components.Register("nsq producer", func(context.Context) error {
			producer.Stop()
			return nil
		})
		healthService.AddChecker("nsq", health.CheckerFunc(func(context.Context) error { return producer.Ping() }))
	}
	journal := nsq.NewJournal(publisher, configs.NSQ.Topic).
		WithBreaker(circuitbreaker.New(circuitbreaker.DefaultConfig("nsq-journal")))

	screens := feed.New(feed.DefaultToastLimit)
	deps := usecase.Dependencies{
		Gateway:   gateway.NewRideGW(apiClient),
		Channel:   channel,
		Navigator: screens,
		Notifier:  screens,
		Observer:  journal,
	}

	driverUC, err := usecase.NewDriverUC(configs, deps)
	if err != nil {
		zapLogger.Fatal("Failed to initialize driver use case", logger.Err(err))
	}
	customerUC, err := usecase.NewCustomerUC(configs, deps)
	if err != nil {
		zapLogger.Fatal("Failed to initialize customer use case", logger.Err(err))
	}
	components.Register("driver lifecycle", func(context.Context) error {
		driverUC.Unmount()
		return nil
	})
	components.Register("customer lifecycle", func(context.Context) error {
		customerUC.Unmount()
		return nil
	})

	authUC := authusecase.NewAuthUC(authgateway.NewAuthGW(apiClient), sessions)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Panic recovery first, then request id so the request log carries it
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	otpLimiter := middleware.OTPRateLimiter(configs.Auth.OTPRateLimit, configs.Auth.OTPRateWindow, rateLimitClient(configs, redisClient))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	authhandler.NewHandler(authUC).RegisterRoutes(e, sessions, otpLimiter)
	handler.NewHandler(driverUC, customerUC, screens).RegisterRoutes(e, sessions, otpLimiter)

	logger.Info("Trip phase journal configured", logger.Bool("enabled", journal.Enabled()))

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	srv := server.NewGracefulServer(e, zapLogger, addr, configs.Server.ShutdownTimeout, components)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}

func newSessionRepository(configs *models.Config, redisClient *redis.Client) (session.Repository, error) {
	switch configs.Session.Store {
	case "memory":
		return session.NewMemoryRepository(), nil
	case "redis":
		return session.NewRedisRepository(redisClient, configs.Session.KeyPrefix), nil
	default:
		return session.NewFileRepository(configs.Session.FilePath)
	}
}

// rateLimitClient returns nil, which disables limiting, unless rate limiting is enabled
func rateLimitClient(configs *models.Config, redisClient *redis.Client) *redis.Client {
	if !configs.Auth.RateLimitEnabled {
		return nil
	}
	return redisClient
}
