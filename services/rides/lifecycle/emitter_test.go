package lifecycle

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu    sync.Mutex
	pings []models.LocationPing
	err   error
}

func (s *recordingSender) Send(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.pings = append(s.pings, v.(models.LocationPing))
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pings)
}

func (s *recordingSender) last() models.LocationPing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pings[len(s.pings)-1]
}

func TestNewLocationPing(t *testing.T) {
	ping := NewLocationPing(42, constants.LocationTagDrop, models.LocationSample{Lat: -6.2, Lng: 106.816666})

	assert.Equal(t, constants.MessageTypeLocationUpdate, ping.Type)
	assert.Equal(t, constants.MessageStatusSuccess, ping.Status)
	assert.Equal(t, constants.LocationTagDrop, ping.Location)
	assert.Equal(t, int64(42), ping.Data.TripID)
	assert.Equal(t, "-6.2", ping.Data.Lat)
	assert.Equal(t, "106.816666", ping.Data.Long)
}

func TestSendLocation_NoSample(t *testing.T) {
	sender := &recordingSender{}
	err := SendLocation(sender, NewLocationSlot(), 1, constants.LocationTagDrop)
	assert.ErrorIs(t, err, ErrNoLocation)
	assert.Zero(t, sender.count())
}

func TestSendLocation_SendError(t *testing.T) {
	sender := &recordingSender{err: errors.New("socket closed")}
	slot := NewLocationSlot()
	slot.Set(models.LocationSample{Lat: 1, Lng: 2})

	err := SendLocation(sender, slot, 1, constants.LocationTagDrop)
	assert.EqualError(t, err, "socket closed")
}

func TestEmitter_SendsLatestSampleUntilStopped(t *testing.T) {
	sender := &recordingSender{}
	slot := NewLocationSlot()
	e := NewEmitter(5, constants.LocationTagPickup, 10*time.Millisecond, sender, slot)
	e.Start()

	time.Sleep(35 * time.Millisecond)
	assert.Zero(t, sender.count(), "nothing is sent before a sample exists")

	slot.Set(models.LocationSample{Lat: 1.5, Lng: 2.5})
	require.Eventually(t, func() bool { return sender.count() >= 2 }, time.Second, 5*time.Millisecond)

	slot.Set(models.LocationSample{Lat: 3, Lng: 4})
	require.Eventually(t, func() bool { return sender.last().Data.Lat == "3" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, constants.LocationTagPickup, sender.last().Location)
	assert.Equal(t, int64(5), sender.last().Data.TripID)

	e.Stop()
	stoppedAt := sender.count()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, stoppedAt, sender.count(), "no ping after Stop")
	assert.True(t, e.Stopped())
}

func TestEmitter_StopIsIdempotent(t *testing.T) {
	e := NewEmitter(1, constants.LocationTagPickup, time.Millisecond, &recordingSender{}, NewLocationSlot())
	e.Stop()
	e.Stop()
	e.Start()
	assert.True(t, e.Stopped())

	started := NewEmitter(1, constants.LocationTagPickup, time.Millisecond, &recordingSender{}, NewLocationSlot())
	started.Start()
	started.Stop()
	started.Stop()
	assert.True(t, started.Stopped())
}
