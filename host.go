package avatar

import "fmt"

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Host binds a Widget to a Renderer. It plays the part of the toolkit's base
// view: it owns the widget's bounds and padding, forwards size changes, and
// turns each frame into a DrawList.
type Host struct {
	renderer Renderer
	widget   *Widget
	textures TextureResolver
	padding  Padding
	dirty    bool

	next Invalidator // invalidator the widget had before attaching
}

// HostOption configures a Host instance.
type HostOption func(*Host)

// WithPadding sets the padding applied to every viewport the host forwards.
func WithPadding(p Padding) HostOption {
	return func(h *Host) { h.padding = p }
}

// WithTextureResolver sets how source images become renderer textures.
func WithTextureResolver(r TextureResolver) HostOption {
	return func(h *Host) { h.textures = r }
}

// NewHost attaches a widget to a renderer and initializes it. Setup requested
// before this point runs now. An invalidator set with WithInvalidator keeps
// receiving redraw requests after the host's own.
func NewHost(renderer Renderer, widget *Widget, opts ...HostOption) *Host {
	h := &Host{
		renderer: renderer,
		widget:   widget,
		dirty:    true,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.next = widget.invalidator
	widget.invalidator = h
	widget.Init()
	return h
}

// Widget returns the hosted widget.
func (h *Host) Widget() *Widget {
	return h.widget
}

// Invalidate marks the host as needing a new frame.
func (h *Host) Invalidate() {
	h.dirty = true
	if h.next != nil {
		h.next.Invalidate()
	}
}

// NeedsRedraw reports whether anything changed since the last Frame.
func (h *Host) NeedsRedraw() bool {
	return h.dirty
}

// Resize updates the renderer viewport and lays the widget out again.
func (h *Host) Resize(width, height int) {
	h.renderer.Resize(width, height)
	h.widget.SetSize(Viewport{Width: width, Height: height, Padding: h.padding})
}

// Frame draws the widget into a pooled DrawList and renders it.
func (h *Host) Frame() error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	if err := h.record(dl); err != nil {
		return fmt.Errorf("avatar frame: %w", err)
	}

	if err := h.renderer.Render(dl); err != nil {
		return fmt.Errorf("avatar render: %w", err)
	}
	h.dirty = false
	return nil
}

// record draws the widget into dl, clipped to its viewport.
func (h *Host) record(dl *DrawList) error {
	vp := h.widget.Viewport()
	dl.PushClipRect(0, 0, float32(vp.Width), float32(vp.Height))
	err := h.widget.Draw(dl.Canvas(h.textures))
	dl.PopClipRect()
	return err
}
