package matheybiten

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/mathey/out"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	w := NewWindow(out.Config{Width: 32, Height: 16}, WindowConfig{Title: "test"})
	require.Equal(t, 8, w.config.Scale)
	require.Equal(t, 32, w.Width())
	require.Equal(t, 16, w.Height())

	var _ out.Device = w
}

func TestGame_Update(t *testing.T) {
	w := NewWindow(out.Config{Width: 4, Height: 4}, WindowConfig{})

	t.Run("running", func(t *testing.T) {
		g := &game{window: w, done: make(chan error, 1)}
		require.NoError(t, g.Update())
		require.False(t, g.finished)
	})

	t.Run("finished", func(t *testing.T) {
		g := &game{window: w, done: make(chan error, 1)}
		g.done <- nil
		require.ErrorIs(t, g.Update(), ebiten.Termination)
		require.True(t, g.finished)
	})

	t.Run("failed", func(t *testing.T) {
		errFrame := errors.New("frame failed")

		g := &game{window: w, done: make(chan error, 1)}
		g.done <- errFrame
		require.ErrorIs(t, g.Update(), errFrame)
		require.True(t, g.finished)
	})
}

func TestGame_Layout(t *testing.T) {
	w := NewWindow(out.Config{Width: 64, Height: 32}, WindowConfig{})
	g := &game{window: w}

	width, height := g.Layout(1024, 768)
	require.Equal(t, 64, width)
	require.Equal(t, 32, height)
}
