package srv

import "context"

// cleanupService runs fn on the first Shutdown only.
type cleanupService struct {
	fn   func() error
	done bool
}

func (c *cleanupService) Start(ctx context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.done || c.fn == nil {
		return nil
	}
	c.done = true
	return c.fn()
}

func NewCleanup(fn func() error) Service {
	return &cleanupService{fn: fn}
}
