package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock shared by the test server and the step definitions.
type Time struct {
	mu      sync.RWMutex
	current time.Time
}

func NewTime(start time.Time) *Time {
	return &Time{current: start.UTC()}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime.UTC()
}

func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = t.current.Add(d)
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}
