package matheybiten

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/mathey/out"
)

type WindowConfig struct {
	Title string

	// Scale is the size of one device pixel in screen pixels.
	Scale int

	DisableResize bool
}

// FrameFunc draws onto the device until it is done or ctx is canceled.
type FrameFunc func(ctx context.Context, dev out.Device) error

// Window is an out.Device that shows its frames in an ebiten window.
type Window struct {
	*out.Framebuffer
	config WindowConfig
}

func NewWindow(config out.Config, windowConfig WindowConfig) *Window {
	if windowConfig.Scale <= 0 {
		windowConfig.Scale = 8
	}

	return &Window{
		Framebuffer: out.NewFramebuffer(config),
		config:      windowConfig,
	}
}

// Run initializes the device, opens the window and calls frame on a new
// goroutine. It blocks until frame returns or the window is closed, in which
// case the context passed to frame is canceled.
//
// Like ebiten.RunGame, Run must be called from the main goroutine.
func (w *Window) Run(ctx context.Context, frame FrameFunc) error {
	if err := w.Init(); err != nil {
		return fmt.Errorf("init window: %w", err)
	}

	defer func() { _ = w.Deinit() }()

	ebiten.SetWindowTitle(w.config.Title)
	ebiten.SetWindowSize(w.Width()*w.config.Scale, w.Height()*w.config.Scale)

	if !w.config.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := &game{window: w, done: make(chan error, 1)}
	go func() { g.done <- frame(ctx, w) }()

	slog.Info("Open window",
		slog.String("title", w.config.Title),
		slog.Int("width", w.Width()),
		slog.Int("height", w.Height()))

	err := ebiten.RunGame(g)

	// stop the frame loop in case the window was closed
	cancel()

	if !g.finished {
		frameErr := <-g.done
		if !errors.Is(frameErr, context.Canceled) {
			err = errors.Join(err, frameErr)
		}
	}

	return err
}

type game struct {
	window *Window

	// receives the result of the FrameFunc
	done     chan error
	finished bool

	image  *ebiten.Image
	pixels []byte
}

func (g *game) Update() error {
	select {
	case err := <-g.done:
		g.finished = true

		if err != nil {
			return err
		}

		return ebiten.Termination

	default:
		return nil
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.window.Width(), g.window.Height()

	if g.image == nil {
		g.image = ebiten.NewImage(w, h)
	}

	g.pixels = g.window.AppendRGBA(g.pixels[:0])
	if len(g.pixels) != 4*w*h {
		// deinitialized
		return
	}

	g.image.WritePixels(g.pixels)
	screen.DrawImage(g.image, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.window.Width(), g.window.Height()
}
