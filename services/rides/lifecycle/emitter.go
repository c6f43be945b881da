package lifecycle

import (
	"errors"
	"sync"
	"time"

	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/utils"
)

// ErrNoLocation is returned when a ping is requested before any position is known
var ErrNoLocation = errors.New("no device location known yet")

// Sender writes one frame on the realtime channel
type Sender interface {
	Send(v interface{}) error
}

// NewLocationPing builds the outbound frame for one sample
func NewLocationPing(tripID int64, tag string, sample models.LocationSample) models.LocationPing {
	return models.LocationPing{
		Type:     constants.MessageTypeLocationUpdate,
		Status:   constants.MessageStatusSuccess,
		Location: tag,
		Data: models.LocationPingData{
			TripID: tripID,
			Lat:    sample.LatString(),
			Long:   sample.LngString(),
		},
	}
}

// SendLocation sends a single ping with the latest sample
func SendLocation(sender Sender, slot *LocationSlot, tripID int64, tag string) error {
	sample, ok := slot.Latest()
	if !ok {
		return ErrNoLocation
	}
	if err := sender.Send(NewLocationPing(tripID, tag, sample)); err != nil {
		return err
	}
	logger.Debug("Location ping sent",
		logger.Int64("trip_id", tripID),
		logger.String("location", tag),
		logger.String("geohash", utils.EncodeSample(sample, utils.LocationGeohashPrecision)))
	return nil
}

// Emitter repeats location pings for one trip phase until stopped
type Emitter struct {
	tripID   int64
	tag      string
	interval time.Duration
	sender   Sender
	slot     *LocationSlot

	mu      sync.Mutex
	started bool
	stopped bool
	stop    chan struct{}
	done    chan struct{}
}

// NewEmitter prepares a periodic emitter; nothing is sent before Start
func NewEmitter(tripID int64, tag string, interval time.Duration, sender Sender, slot *LocationSlot) *Emitter {
	return &Emitter{
		tripID:   tripID,
		tag:      tag,
		interval: interval,
		sender:   sender,
		slot:     slot,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins ticking; the first ping goes out one interval after Start
func (e *Emitter) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started || e.stopped {
		return
	}
	e.started = true
	go e.run()
}

// Stop cancels the emitter; no ping is sent once Stop returns
func (e *Emitter) Stop() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	started := e.started
	close(e.stop)
	e.mu.Unlock()

	if started {
		<-e.done
	}
}

// Stopped reports whether Stop has been called
func (e *Emitter) Stopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped
}

func (e *Emitter) run() {
	defer close(e.done)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

func (e *Emitter) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	if err := SendLocation(e.sender, e.slot, e.tripID, e.tag); err != nil && !errors.Is(err, ErrNoLocation) {
		logger.Warn("Location ping failed",
			logger.Int64("trip_id", e.tripID),
			logger.String("location", e.tag),
			logger.Err(err))
	}
}
