// Package lifecycle defines shared process lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and receivers.
const DefaultTimeout = 10 * time.Second
