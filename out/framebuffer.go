package out

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var _ Device = (*Framebuffer)(nil)

// Framebuffer is a Device that keeps its pixels in memory. The visible frame
// can be read back using At and Frame.
//
// All methods can be called concurrently, e.g. rendering from one goroutine
// while displaying the frame from another one.
type Framebuffer struct {
	mu     sync.Mutex
	config Config

	// pixels in row major order
	back  []RGB
	front []RGB

	initialized bool
	timings     Timings
}

func NewFramebuffer(config Config) *Framebuffer {
	return &Framebuffer{config: config.withDefaults()}
}

func (f *Framebuffer) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	size := f.config.Width * f.config.Height
	f.back = make([]RGB, size)
	f.front = make([]RGB, size)
	f.timings = Timings{}
	f.initialized = true

	slog.Debug("Init framebuffer output",
		slog.Int("width", f.config.Width),
		slog.Int("height", f.config.Height))

	return nil
}

func (f *Framebuffer) Width() int {
	return f.config.Width
}

func (f *Framebuffer) Height() int {
	return f.config.Height
}

func (f *Framebuffer) Set(x, y int, color RGB) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return fmt.Errorf("set pixel: %w", ErrNotInitialized)
	}

	if x < 0 || y < 0 || x >= f.config.Width || y >= f.config.Height {
		return fmt.Errorf("set pixel (%d, %d) on %dx%d: %w",
			x, y, f.config.Width, f.config.Height, ErrOutOfBounds)
	}

	f.back[y*f.config.Width+x] = color
	return nil
}

func (f *Framebuffer) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return fmt.Errorf("clear: %w", ErrNotInitialized)
	}

	clear(f.back)
	return nil
}

func (f *Framebuffer) Render() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return fmt.Errorf("render: %w", ErrNotInitialized)
	}

	startTime := time.Now()
	copy(f.front, f.back)
	f.timings = f.timings.Add(time.Since(startTime))

	return nil
}

func (f *Framebuffer) WaitUntil(ctx context.Context, deadline time.Time) error {
	return WaitUntil(ctx, deadline)
}

func (f *Framebuffer) Deinit() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.back = nil
	f.front = nil
	f.initialized = false

	slog.Debug("Deinit framebuffer output", slog.Int("frames", f.timings.Count))

	return nil
}

// At returns the visible color at x and y. Pixels outside of the framebuffer
// are black.
func (f *Framebuffer) At(x, y int) RGB {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || x < 0 || y < 0 || x >= f.config.Width || y >= f.config.Height {
		return Black
	}

	return f.front[y*f.config.Width+x]
}

// Frame appends the visible pixels in row major order to dst.
func (f *Framebuffer) Frame(dst []RGB) []RGB {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append(dst, f.front...)
}

// AppendRGBA appends the visible pixels as non premultiplied RGBA bytes to dst,
// the layout expected by image.RGBA and ebiten.Image.WritePixels.
func (f *Framebuffer) AppendRGBA(dst []byte) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, px := range f.front {
		dst = append(dst, px.R, px.G, px.B, 0xff)
	}

	return dst
}

// Timings returns statistics about the calls to Render.
func (f *Framebuffer) Timings() Timings {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.timings
}
