// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of the delivery layer.
const DefaultTimeout = 10 * time.Second
