package diag

import "sync"

// Collector is a passive sink registered with the engine in place of its
// normal reporter. Record may be called from concurrent engine workers;
// Drain is called once by the adapter after the engine finishes.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record appends one diagnostic. Safe for concurrent use.
func (c *Collector) Record(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// Drain returns everything recorded so far and resets the collector.
func (c *Collector) Drain() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.items
	c.items = nil
	return items
}

// Len reports how many diagnostics are currently held.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
