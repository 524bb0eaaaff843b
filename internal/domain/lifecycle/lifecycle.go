// Package lifecycle holds shared lifecycle constants for servers and clients.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup health checks.
const DefaultTimeout = 10 * time.Second
