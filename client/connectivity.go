package client

import (
	"sync/atomic"
	"time"
)

// Connectivity reports the result of the last health check. It is a hint
// for UI consumers only: every accessor decides fallback on its own call
// outcome, never on this value.
type Connectivity struct {
	offline atomic.Bool
	checked atomic.Int64
}

// NewConnectivity starts in the online state with no check recorded.
func NewConnectivity() *Connectivity {
	return &Connectivity{}
}

// Offline reports whether the last health check failed.
func (c *Connectivity) Offline() bool {
	return c.offline.Load()
}

// LastChecked returns the time of the last health check, zero when none ran.
func (c *Connectivity) LastChecked() time.Time {
	nanos := c.checked.Load()
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos).UTC()
}

func (c *Connectivity) record(offline bool) {
	c.offline.Store(offline)
	c.checked.Store(time.Now().UTC().UnixNano())
}
