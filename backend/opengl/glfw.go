package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/avatar"
)

// WindowAdapter forwards GLFW window events to an avatar host: framebuffer
// resizes become size changes, and damage or resize marks the host dirty.
type WindowAdapter struct {
	window *glfw.Window
	host   *avatar.Host
}

// NewWindowAdapter installs GLFW callbacks on window and performs the first
// layout with the current framebuffer size.
func NewWindowAdapter(window *glfw.Window, host *avatar.Host) *WindowAdapter {
	a := &WindowAdapter{
		window: window,
		host:   host,
	}

	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	window.SetRefreshCallback(a.refreshCallback)

	w, h := window.GetFramebufferSize()
	host.Resize(w, h)

	return a
}

// FramebufferSize returns the current framebuffer size.
func (a *WindowAdapter) FramebufferSize() (width, height int) {
	return a.window.GetFramebufferSize()
}

func (a *WindowAdapter) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	avatar.Logger().Debug("framebuffer resized", "width", width, "height", height)
	a.host.Resize(width, height)
}

func (a *WindowAdapter) refreshCallback(_ *glfw.Window) {
	a.host.Invalidate()
}
