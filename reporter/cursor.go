package reporter

import "sync"

// EditingCursor remembers the issue an admin has opened for editing.
type EditingCursor struct {
	mu     sync.Mutex
	id     int
	active bool
}

func (c *EditingCursor) Open(id int) {
	c.mu.Lock()
	c.id, c.active = id, true
	c.mu.Unlock()
}

// Current returns the open issue id, if any.
func (c *EditingCursor) Current() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id, c.active
}

// Take returns the open id and clears the cursor.
func (c *EditingCursor) Take() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.id, c.active
	c.id, c.active = 0, false
	return id, ok
}

func (c *EditingCursor) Clear() {
	c.Take()
}

// ClearIf clears the cursor only when it points at id.
func (c *EditingCursor) ClearIf(id int) {
	c.mu.Lock()
	if c.active && c.id == id {
		c.id, c.active = 0, false
	}
	c.mu.Unlock()
}
