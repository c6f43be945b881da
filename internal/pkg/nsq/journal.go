package nsq

import (
	"context"
	"errors"

	"github.com/piresc/ridebook/internal/pkg/circuitbreaker"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
)

// DefaultJournalTopic receives every trip phase change
const DefaultJournalTopic = "ridebook.trip_phase"

// Publisher publishes one JSON message
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// Journal publishes trip phase changes. A journal without a publisher drops them.
type Journal struct {
	publisher Publisher
	topic     string
	breaker   *circuitbreaker.CircuitBreaker
}

// NewJournal creates a journal on topic; a nil publisher gives a no-op journal
func NewJournal(publisher Publisher, topic string) *Journal {
	if topic == "" {
		topic = DefaultJournalTopic
	}
	return &Journal{publisher: publisher, topic: topic}
}

// WithBreaker routes publishes through cb so a down nsqd is skipped instead of retried per change
func (j *Journal) WithBreaker(cb *circuitbreaker.CircuitBreaker) *Journal {
	j.breaker = cb
	return j
}

// PhaseChanged publishes the change; publish failures are logged, never returned
func (j *Journal) PhaseChanged(ctx context.Context, change models.PhaseChange) {
	if j.publisher == nil {
		return
	}

	publish := func(context.Context) error {
		return j.publisher.Publish(j.topic, change)
	}

	var err error
	if j.breaker != nil {
		err = j.breaker.Execute(ctx, publish)
	} else {
		err = publish(ctx)
	}

	if errors.Is(err, circuitbreaker.ErrOpen) {
		logger.Debug("Journal breaker open, dropping trip phase change",
			logger.Int64("trip_id", change.TripID),
			logger.String("to", change.To))
		return
	}
	if err != nil {
		logger.Warn("Failed to journal trip phase change",
			logger.Int64("trip_id", change.TripID),
			logger.String("to", change.To),
			logger.Err(err))
	}
}

// Enabled reports whether changes leave the process
func (j *Journal) Enabled() bool {
	return j.publisher != nil
}
