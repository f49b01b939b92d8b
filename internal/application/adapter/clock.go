// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the reference time for analytics.
type Clock interface {
	Now() time.Time
}
