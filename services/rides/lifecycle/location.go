package lifecycle

import (
	"sync"

	"github.com/piresc/ridebook/internal/pkg/models"
)

// LocationSlot holds only the most recent device position
type LocationSlot struct {
	mu     sync.RWMutex
	sample models.LocationSample
	set    bool
}

// NewLocationSlot creates an empty slot
func NewLocationSlot() *LocationSlot {
	return &LocationSlot{}
}

// Set overwrites the held sample
func (s *LocationSlot) Set(sample models.LocationSample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sample = sample
	s.set = true
}

// Latest returns the held sample, if any has been seen
func (s *LocationSlot) Latest() (models.LocationSample, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sample, s.set
}
