package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful shutdown of managed components.
const DefaultTimeout = 10 * time.Second
