package avatar

// Canvas is the drawing surface a widget renders onto. Implementations must
// honor the paint descriptors as given; the widget decides what to draw and in
// which order.
type Canvas interface {
	// FillCircle draws a filled circle.
	FillCircle(center Vec2, radius float32, paint FillPaint) error
	// ImageCircle draws the image paint clipped to a circle. The paint's crop
	// maps onto the circle's bounding square.
	ImageCircle(center Vec2, radius float32, paint ImagePaint) error
	// StrokeCircle strokes a circle centered on the given radius.
	StrokeCircle(center Vec2, radius float32, paint StrokePaint) error
	// ImageRect draws the image paint into a rectangle.
	ImageRect(dst Rect, paint ImagePaint) error
}

// Invalidator receives redraw requests from a widget.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a function to the Invalidator interface.
type InvalidatorFunc func()

// Invalidate calls f.
func (f InvalidatorFunc) Invalidate() { f() }
