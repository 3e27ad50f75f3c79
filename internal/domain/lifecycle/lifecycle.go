// Package lifecycle holds shared constants for startup and shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps (DB ping, server drain).
const DefaultTimeout = 10 * time.Second
