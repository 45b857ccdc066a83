// Package lifecycle holds shared lifecycle constants for graceful startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of infrastructure components.
const DefaultTimeout = 10 * time.Second
