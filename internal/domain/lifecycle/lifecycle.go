// Package lifecycle holds shared start/stop limits for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds connection checks on start and graceful shutdown on stop.
const DefaultTimeout = 10 * time.Second
