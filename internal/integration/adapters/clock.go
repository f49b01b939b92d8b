// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
)

// systemClock reads the wall clock.
type systemClock struct{}

// NewSystemClock returns the production clock.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Used by tests and local fixtures.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Time
}
