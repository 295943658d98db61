// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps.
const DefaultTimeout = 10 * time.Second
