// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations
// (database pings, HTTP server drain, publisher close).
const DefaultTimeout = 10 * time.Second
