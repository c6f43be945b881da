package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/piresc/ridebook/internal/pkg/config"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/pkg/nsq"
)

// journal tails the trip phase topic and logs every change, for debugging a device's ride flow
func main() {
	channel := flag.String("channel", "ridebook-journal", "NSQ channel to consume on")
	flag.Parse()

	configs, err := config.InitConfig(config.ConfigPath())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if configs.NSQ.Address == "" {
		log.Fatal("NSQ_ADDRESS is required")
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	topic := configs.NSQ.Topic
	if topic == "" {
		topic = nsq.DefaultJournalTopic
	}

	consumer, err := nsq.NewConsumer(topic, *channel, configs.NSQ.Address, func(body []byte) error {
		var change models.PhaseChange
		if err := nsq.UnmarshalMessage(body, &change); err != nil {
			// a malformed entry would be requeued forever
			logger.Warn("Skipping malformed journal entry", logger.Err(err))
			return nil
		}
		logger.Info("Trip phase changed",
			logger.Int64("trip_id", change.TripID),
			logger.String("role", change.Role),
			logger.String("from", change.From),
			logger.String("to", change.To),
			logger.String("at", change.At.Format(time.RFC3339Nano)))
		return nil
	})
	if err != nil {
		zapLogger.Fatal("Failed to start journal consumer", logger.Err(err))
	}

	logger.Info("Tailing trip phase journal", logger.String("topic", topic), logger.String("channel", *channel))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	consumer.Stop()
	_ = zapLogger.Sync()
}
