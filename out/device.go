package out

import (
	"context"
	"errors"
	"time"
)

var ErrOutOfBounds = errors.New("pixel out of bounds")
var ErrNotInitialized = errors.New("device not initialized")

// Device is an output with a fixed number of pixels.
type Device interface {
	// Init prepares the device. It must be called before any other method.
	Init() error

	Width() int
	Height() int

	// Set sets the pixel at x and y in the back buffer.
	Set(x, y int, color RGB) error

	// Clear sets all pixels of the back buffer to black.
	Clear() error

	// Render makes the back buffer visible.
	Render() error

	// WaitUntil blocks until the deadline has passed or the context is done.
	WaitUntil(ctx context.Context, deadline time.Time) error

	// Deinit releases the device.
	Deinit() error
}

type Config struct {
	Width  int
	Height int
}

func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 32,
	}
}

// withDefaults replaces non positive sizes with the default size.
func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.Width <= 0 {
		c.Width = def.Width
	}

	if c.Height <= 0 {
		c.Height = def.Height
	}

	return c
}

// WaitUntil blocks until the deadline has passed. It returns early with the
// context's error if ctx is done first. Deadlines in the past return immediately.
func WaitUntil(ctx context.Context, deadline time.Time) error {
	delay := time.Until(deadline)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
