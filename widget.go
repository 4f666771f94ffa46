package avatar

import (
	"fmt"
	"image"
)

// Widget is a circular avatar: it shades a source image into a circle inside
// its content area, optionally over a filled backdrop and under a border ring.
//
// Widget holds geometry and paint state only. A host adapter (see Host) feeds
// it size changes and hands it a Canvas once per frame. All methods must be
// called from the UI thread.
type Widget struct {
	cfg         Config
	image       image.Image
	viewport    Viewport
	circular    bool
	invalidator Invalidator

	lifecycle Lifecycle
	paints    Paints
	layout    LayoutResult
	hasLayout bool
}

// Option configures a Widget.
type Option func(*Widget)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(w *Widget) { w.cfg = cfg }
}

// WithBorderWidth sets the border stroke thickness in pixels.
func WithBorderWidth(px int) Option {
	return func(w *Widget) { w.cfg.BorderWidth = px }
}

// WithBorderColor sets the border color.
func WithBorderColor(c uint32) Option {
	return func(w *Widget) { w.cfg.BorderColor = c }
}

// WithBorderOverlay draws the border over the image edge instead of outside it.
func WithBorderOverlay(overlay bool) Option {
	return func(w *Widget) { w.cfg.BorderOverlay = overlay }
}

// WithFillColor sets the backdrop color.
func WithFillColor(c uint32) Option {
	return func(w *Widget) { w.cfg.FillColor = c }
}

// WithImage sets the initial source image.
func WithImage(img image.Image) Option {
	return func(w *Widget) { w.image = img }
}

// WithInvalidator sets the receiver of redraw requests.
func WithInvalidator(inv Invalidator) Option {
	return func(w *Widget) { w.invalidator = inv }
}

// WithCircular toggles the circular transformation. When off the image is
// drawn center-cropped into the content rectangle.
func WithCircular(circular bool) Option {
	return func(w *Widget) { w.circular = circular }
}

// New creates an uninitialized widget. Size changes and other setup requests
// made before Init are deferred; Init runs the latest one.
func New(opts ...Option) *Widget {
	w := &Widget{
		cfg:      DefaultConfig(),
		circular: true,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.cfg = w.cfg.normalized()
	w.paints = NewPaints(w.cfg, w.image)
	return w
}

// Init marks the widget ready and runs any setup deferred before it.
func (w *Widget) Init() {
	if w.lifecycle.Pending() {
		avatarLogger.Debug("avatar: running deferred setup")
	}
	w.lifecycle.MarkReady()
}

// State returns the lifecycle state.
func (w *Widget) State() LifecycleState {
	return w.lifecycle.State()
}

// SetupPending reports whether a setup request is waiting for Init.
func (w *Widget) SetupPending() bool {
	return w.lifecycle.Pending()
}

// SetSize is the size-changed entry point. The host calls it whenever the
// widget's size or padding changes.
func (w *Widget) SetSize(vp Viewport) {
	w.viewport = vp
	w.setup()
}

// Viewport returns the last viewport set by the host.
func (w *Widget) Viewport() Viewport {
	return w.viewport
}

// SetImage replaces the source image. A nil image clears the avatar.
func (w *Widget) SetImage(img image.Image) {
	w.image = img
	w.paints = NewPaints(w.cfg, w.image)
	w.setup()
}

// Image returns the source image, or nil.
func (w *Widget) Image() image.Image {
	return w.image
}

// SetConfig replaces the configuration. Negative border widths clamp to zero.
func (w *Widget) SetConfig(cfg Config) {
	cfg = cfg.normalized()
	if cfg == w.cfg {
		return
	}
	w.cfg = cfg
	w.paints = NewPaints(w.cfg, w.image)
	w.setup()
}

// Config returns the current configuration.
func (w *Widget) Config() Config {
	return w.cfg
}

// SetBorderWidth sets the border thickness in pixels.
func (w *Widget) SetBorderWidth(px int) {
	cfg := w.cfg
	cfg.BorderWidth = px
	w.SetConfig(cfg)
}

// BorderWidth returns the border thickness in pixels.
func (w *Widget) BorderWidth() int { return w.cfg.BorderWidth }

// SetBorderColor sets the border color.
func (w *Widget) SetBorderColor(c uint32) {
	cfg := w.cfg
	cfg.BorderColor = c
	w.SetConfig(cfg)
}

// BorderColor returns the border color.
func (w *Widget) BorderColor() uint32 { return w.cfg.BorderColor }

// SetBorderOverlay sets whether the border is drawn over the image edge.
func (w *Widget) SetBorderOverlay(overlay bool) {
	cfg := w.cfg
	cfg.BorderOverlay = overlay
	w.SetConfig(cfg)
}

// BorderOverlay reports whether the border is drawn over the image edge.
func (w *Widget) BorderOverlay() bool { return w.cfg.BorderOverlay }

// SetFillColor sets the backdrop color.
func (w *Widget) SetFillColor(c uint32) {
	cfg := w.cfg
	cfg.FillColor = c
	w.SetConfig(cfg)
}

// FillColor returns the backdrop color.
func (w *Widget) FillColor() uint32 { return w.cfg.FillColor }

// SetCircular toggles the circular transformation.
func (w *Widget) SetCircular(circular bool) {
	if w.circular == circular {
		return
	}
	w.circular = circular
	w.invalidate()
}

// Circular reports whether the image is drawn as a circle.
func (w *Widget) Circular() bool { return w.circular }

// Paints returns the current render descriptors.
func (w *Widget) Paints() Paints {
	return w.paints
}

// Layout returns the last computed geometry. ok is false until a setup with a
// non-zero viewport and a source image has run.
func (w *Widget) Layout() (layout LayoutResult, ok bool) {
	return w.layout, w.hasLayout
}

// Draw renders the widget: backdrop, image, then border. It draws nothing
// until a layout exists.
func (w *Widget) Draw(c Canvas) error {
	if w.image == nil || !w.hasLayout {
		return nil
	}

	if !w.circular {
		content := w.viewport.Content()
		if content.Empty() {
			return nil
		}
		if err := c.ImageRect(content, w.paints.Image.WithTarget(content.W, content.H)); err != nil {
			return fmt.Errorf("draw image: %w", err)
		}
		return nil
	}

	l := w.layout
	if l.ImageRadius > 0 {
		if w.cfg.HasFill() {
			if err := c.FillCircle(l.ImageCenter, l.ImageRadius, w.paints.Fill); err != nil {
				return fmt.Errorf("draw fill: %w", err)
			}
		}
		if err := c.ImageCircle(l.ImageCenter, l.ImageRadius, w.paints.Image); err != nil {
			return fmt.Errorf("draw image: %w", err)
		}
	}
	if w.cfg.HasBorder() && l.BorderRadius > 0 {
		if err := c.StrokeCircle(l.BorderCenter, l.BorderRadius, w.paints.Border); err != nil {
			return fmt.Errorf("draw border: %w", err)
		}
	}
	return nil
}

// setup recomputes geometry, or defers it until Init.
func (w *Widget) setup() {
	if !w.lifecycle.Run(w.recompute) {
		avatarLogger.Debug("avatar: setup deferred until init")
	}
}

func (w *Widget) recompute() {
	if w.viewport.IsZero() {
		avatarLogger.Debug("avatar: zero viewport, skipping layout")
		return
	}
	if w.image == nil {
		w.hasLayout = false
		w.invalidate()
		return
	}

	w.layout = ComputeLayout(w.viewport, w.cfg)
	w.hasLayout = true
	avatarLogger.Debug("avatar: layout",
		"viewport", fmt.Sprintf("%dx%d", w.viewport.Width, w.viewport.Height),
		"center", w.layout.ImageCenter,
		"imageRadius", w.layout.ImageRadius,
		"borderRadius", w.layout.BorderRadius,
	)
	w.invalidate()
}

func (w *Widget) invalidate() {
	if w.invalidator != nil {
		w.invalidator.Invalidate()
	}
}
