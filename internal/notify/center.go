package notify

import (
	"sync"
	"time"
)

// DefaultTTL keeps a notice visible long enough to read an order id off it.
const DefaultTTL = 5 * time.Second

// Center holds the single transient notice shown to the storefront user.
// Publishing a new notice cancels and restarts the display timer. The timer
// firing only clears the notice; it never touches ledger or registry state.
type Center struct {
	mu      sync.Mutex
	message string
	ttl     time.Duration
	timer   *time.Timer
	gen     uint64 // bumped on every publish so a stale timer cannot clear a newer notice
}

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl}
}

// Publish replaces the current notice and restarts the display timer.
func (c *Center) Publish(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.message = message
	c.gen++
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.ttl, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen == gen {
			c.message = ""
		}
	})
}

// Current returns the visible notice, or "" if none is showing.
func (c *Center) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Stop cancels the pending timer. Used on shutdown.
func (c *Center) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	c.message = ""
}
