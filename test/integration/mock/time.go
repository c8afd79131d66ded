package mock

import (
	"sync"
	"time"
)

// Time is a settable clock. Until SetCurrentTime is called it follows the wall
// clock; afterwards it stays frozen so month boundaries are deterministic.
type Time struct {
	mu      sync.RWMutex
	current time.Time
	frozen  bool
}

func NewTime() *Time {
	return &Time{}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
	t.frozen = true
}

func (t *Time) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frozen = false
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.frozen {
		return time.Now()
	}
	return t.current
}
