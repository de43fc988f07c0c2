// Package lifecycle holds process-wide lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start and stop hook.
const DefaultTimeout = 10 * time.Second
