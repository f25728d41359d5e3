// Package out contains output devices that transformed points can be drawn on.
//
// A Device is a grid of RGB pixels with a back buffer. Pixels are set with
// Set, made visible with Render, and WaitUntil paces the frame loop:
//
//	dev.Clear()
//	out.DrawPath(dev, transform, shape, out.White, true)
//	dev.Render()
//	dev.WaitUntil(ctx, nextFrame)
//
// Dummy discards everything, Framebuffer keeps the pixels in memory. The
// matheybiten package shows a Framebuffer in a window.
package out
