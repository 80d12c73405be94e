// Package lifecycle holds shared timeouts for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as the startup database ping
// and graceful server shutdown.
const DefaultTimeout = 10 * time.Second
