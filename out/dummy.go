package out

import (
	"context"
	"log/slog"
	"time"
)

var _ Device = (*Dummy)(nil)

// Dummy is a Device that accepts every call and shows nothing.
// It is useful for headless runs and benchmarks.
type Dummy struct {
	config Config
}

func NewDummy(config Config) *Dummy {
	return &Dummy{config: config.withDefaults()}
}

func (d *Dummy) Init() error {
	slog.Debug("Init dummy output",
		slog.Int("width", d.config.Width),
		slog.Int("height", d.config.Height))

	return nil
}

func (d *Dummy) Width() int {
	return d.config.Width
}

func (d *Dummy) Height() int {
	return d.config.Height
}

func (d *Dummy) Set(x, y int, color RGB) error {
	return nil
}

func (d *Dummy) Clear() error {
	return nil
}

func (d *Dummy) Render() error {
	return nil
}

func (d *Dummy) WaitUntil(ctx context.Context, deadline time.Time) error {
	return WaitUntil(ctx, deadline)
}

func (d *Dummy) Deinit() error {
	slog.Debug("Deinit dummy output")
	return nil
}
