package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/stoker/internal/stokercloud"
)

// Snapshot represents the latest data available to the dashboard and the HTTP endpoint.
type Snapshot struct {
	Status              *stokercloud.Status
	Readings            []Reading
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// HasStatus reports whether at least one poll succeeded.
func (s Snapshot) HasStatus() bool {
	return s.Status != nil
}

// IsOffline returns true when the service has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	now      func() time.Time
}

// Update replaces the stored snapshot. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(status *stokercloud.Status, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.now != nil {
		now = s.now()
	}

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = now
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Status = status
	s.snapshot.Readings = BuildReadings(status)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = now
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot. Status is shared since it is immutable.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Readings = cloneReadings(s.snapshot.Readings)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneReadings(items []Reading) []Reading {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Reading, len(items))
	copy(dup, items)
	return dup
}
