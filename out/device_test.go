package out

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	require.Equal(t, DefaultConfig(), Config{}.withDefaults())
	require.Equal(t, Config{Width: 8, Height: 32}, Config{Width: 8, Height: -1}.withDefaults())
}

func TestWaitUntil(t *testing.T) {
	t.Run("past deadline", func(t *testing.T) {
		require.NoError(t, WaitUntil(context.Background(), time.Now().Add(-time.Second)))
	})

	t.Run("waits", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, WaitUntil(context.Background(), start.Add(20*time.Millisecond)))
		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := WaitUntil(ctx, time.Now().Add(time.Hour))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDummy(t *testing.T) {
	var dev Device = NewDummy(Config{Width: 16, Height: 8})

	require.NoError(t, dev.Init())
	require.Equal(t, 16, dev.Width())
	require.Equal(t, 8, dev.Height())

	// everything is accepted, even pixels outside of the device
	require.NoError(t, dev.Set(100, 100, White))
	require.NoError(t, dev.Clear())
	require.NoError(t, dev.Render())
	require.NoError(t, dev.WaitUntil(context.Background(), time.Now()))
	require.NoError(t, dev.Deinit())
}

func TestFramebuffer(t *testing.T) {
	fb := NewFramebuffer(Config{Width: 4, Height: 3})

	t.Run("not initialized", func(t *testing.T) {
		require.ErrorIs(t, fb.Set(0, 0, White), ErrNotInitialized)
		require.ErrorIs(t, fb.Clear(), ErrNotInitialized)
		require.ErrorIs(t, fb.Render(), ErrNotInitialized)
		require.Equal(t, Black, fb.At(0, 0))
	})

	require.NoError(t, fb.Init())
	require.Equal(t, 4, fb.Width())
	require.Equal(t, 3, fb.Height())

	t.Run("render makes pixels visible", func(t *testing.T) {
		require.NoError(t, fb.Set(1, 2, White))
		require.Equal(t, Black, fb.At(1, 2))

		require.NoError(t, fb.Render())
		require.Equal(t, White, fb.At(1, 2))
		require.Equal(t, 1, fb.Timings().Count)

		frame := fb.Frame(nil)
		require.Len(t, frame, 12)
		require.Equal(t, White, frame[2*4+1])
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, fb.Clear())
		require.Equal(t, White, fb.At(1, 2))

		require.NoError(t, fb.Render())
		require.Equal(t, Black, fb.At(1, 2))
	})

	t.Run("out of bounds", func(t *testing.T) {
		require.ErrorIs(t, fb.Set(4, 0, White), ErrOutOfBounds)
		require.ErrorIs(t, fb.Set(0, -1, White), ErrOutOfBounds)
		require.Equal(t, Black, fb.At(-1, 0))
	})

	t.Run("rgba", func(t *testing.T) {
		require.NoError(t, fb.Set(0, 0, RGB{R: 1, G: 2, B: 3}))
		require.NoError(t, fb.Render())

		pix := fb.AppendRGBA(nil)
		require.Len(t, pix, 4*12)
		require.Equal(t, []byte{1, 2, 3, 0xff}, pix[:4])
	})

	require.NoError(t, fb.Deinit())
	require.ErrorIs(t, fb.Render(), ErrNotInitialized)
}
