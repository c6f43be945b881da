package nsq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/ridebook/internal/pkg/circuitbreaker"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	topics   []string
	messages []interface{}
	err      error
	calls    int
}

func (p *capturePublisher) Publish(topic string, message interface{}) error {
	p.calls++
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.messages = append(p.messages, message)
	return nil
}

func TestJournal_PublishesPhaseChanges(t *testing.T) {
	pub := &capturePublisher{}
	j := NewJournal(pub, "")
	change := models.PhaseChange{TripID: 42, Role: "driver", From: "pending", To: "approved", At: time.Unix(1700000000, 0)}

	j.PhaseChanged(context.Background(), change)

	require.Len(t, pub.messages, 1)
	assert.Equal(t, DefaultJournalTopic, pub.topics[0])
	assert.Equal(t, change, pub.messages[0])
	assert.True(t, j.Enabled())
}

func TestJournal_NoPublisher(t *testing.T) {
	j := NewJournal(nil, "custom")
	assert.False(t, j.Enabled())
	assert.NotPanics(t, func() {
		j.PhaseChanged(context.Background(), models.PhaseChange{TripID: 1})
	})
}

func TestJournal_PublishFailureIsSwallowed(t *testing.T) {
	pub := &capturePublisher{err: errors.New("nsqd down")}
	j := NewJournal(pub, "custom")
	assert.NotPanics(t, func() {
		j.PhaseChanged(context.Background(), models.PhaseChange{TripID: 1})
	})
	assert.Empty(t, pub.messages)
}

func TestJournal_BreakerSkipsPublishWhileOpen(t *testing.T) {
	pub := &capturePublisher{err: errors.New("nsqd down")}
	cb := circuitbreaker.New(circuitbreaker.Config{Name: "journal", FailureThreshold: 2, Timeout: time.Hour})
	j := NewJournal(pub, "custom").WithBreaker(cb)

	for i := 0; i < 5; i++ {
		j.PhaseChanged(context.Background(), models.PhaseChange{TripID: int64(i)})
	}

	assert.Equal(t, 2, pub.calls)
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())
}

func TestJournal_BreakerPassesThroughWhenHealthy(t *testing.T) {
	pub := &capturePublisher{}
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig("journal"))
	j := NewJournal(pub, "").WithBreaker(cb)

	j.PhaseChanged(context.Background(), models.PhaseChange{TripID: 3, To: "completed"})

	require.Len(t, pub.messages, 1)
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

func TestUnmarshalMessage(t *testing.T) {
	var change models.PhaseChange
	require.NoError(t, UnmarshalMessage([]byte(`{"trip_id":7,"role":"customer","from":"approved","to":"cancelled"}`), &change))
	assert.Equal(t, int64(7), change.TripID)
	assert.Equal(t, "cancelled", change.To)

	assert.Error(t, UnmarshalMessage([]byte(`{`), &change))
}
