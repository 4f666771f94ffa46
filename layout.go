package avatar

// Padding is the inset between a viewport's edges and its content area, in pixels.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Viewport is the size and padding the host assigns to the widget.
type Viewport struct {
	Width, Height int
	Padding       Padding
}

// Content returns the padded content rectangle. Width or height may be zero or
// negative when the padding exceeds the viewport.
func (v Viewport) Content() Rect {
	return Rect{
		X: float32(v.Padding.Left),
		Y: float32(v.Padding.Top),
		W: float32(v.Width - v.Padding.Left - v.Padding.Right),
		H: float32(v.Height - v.Padding.Top - v.Padding.Bottom),
	}
}

// IsZero reports whether both dimensions are zero, i.e. the host has not
// laid the widget out yet.
func (v Viewport) IsZero() bool {
	return v.Width == 0 && v.Height == 0
}

// LayoutResult holds the circle geometry for one viewport/config pair.
type LayoutResult struct {
	ImageCenter  Vec2
	ImageRadius  float32
	BorderCenter Vec2
	BorderRadius float32 // Radius of the stroke centerline
}

// ImageBounds returns the square the image circle is inscribed in.
func (l LayoutResult) ImageBounds() Rect {
	return SquareAround(l.ImageCenter, l.ImageRadius)
}

// BorderBounds returns the square the border centerline is inscribed in.
func (l LayoutResult) BorderBounds() Rect {
	return SquareAround(l.BorderCenter, l.BorderRadius)
}

// ComputeLayout fits the image circle and border ring into the viewport's
// content rectangle.
//
// Both circles share the content center and are inscribed in the largest
// square that fits the content area. The border stroke stays inside that
// square, so its centerline sits half a stroke width in from the edge. Without
// overlay the image shrinks by the full border width so the ring lies entirely
// outside it; with overlay the image fills the inscribed circle and the ring is
// painted over its edge. Radii never go below zero.
func ComputeLayout(vp Viewport, cfg Config) LayoutResult {
	content := vp.Content()
	center := content.Center()

	side := maxf(minf(content.W, content.H), 0)
	half := side / 2
	bw := float32(max(cfg.BorderWidth, 0))

	borderRadius := half - bw/2
	imageRadius := half
	if !cfg.BorderOverlay {
		imageRadius = half - bw
	}

	return LayoutResult{
		ImageCenter:  center,
		ImageRadius:  maxf(imageRadius, 0),
		BorderCenter: center,
		BorderRadius: maxf(borderRadius, 0),
	}
}
