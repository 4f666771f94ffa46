// Package software renders avatar widgets on the CPU into a gg pixmap.
//
// Every shape goes through gg's anti-aliased rasterizer. Images are filled with
// a custom brush that samples the widget's ImagePaint.
package software

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/go-theft-auto/avatar"
)

// Canvas is an avatar.Canvas backed by a gg drawing context.
type Canvas struct {
	dc     *gg.Context
	pixmap *gg.Pixmap
}

var _ avatar.Canvas = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	pm := gg.NewPixmap(width, height)
	return &Canvas{
		dc:     gg.NewContext(width, height, gg.WithPixmap(pm)),
		pixmap: pm,
	}
}

// SetLogger routes both the avatar package and gg through l.
func SetLogger(l *slog.Logger) {
	avatar.SetLogger(l)
	gg.SetLogger(l)
}

// Render draws w onto a new width x height canvas. The widget must already
// be initialized and sized.
func Render(w *avatar.Widget, width, height int) (*Canvas, error) {
	c := NewCanvas(width, height)
	if err := w.Draw(c); err != nil {
		return nil, fmt.Errorf("software render: %w", err)
	}
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.pixmap.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.pixmap.Height() }

// Pixmap returns the backing pixmap. It implements image.Image.
func (c *Canvas) Pixmap() *gg.Pixmap { return c.pixmap }

// Clear fills the whole canvas with a packed color.
func (c *Canvas) Clear(color uint32) {
	c.pixmap.Clear(toRGBA(color))
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// FillCircle implements avatar.Canvas.
func (c *Canvas) FillCircle(center avatar.Vec2, radius float32, p avatar.FillPaint) error {
	if avatar.IsTransparent(p.Color) || radius <= 0 {
		return nil
	}
	c.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	c.dc.SetFillBrush(gg.Solid(toRGBA(p.Color)))
	return c.dc.Fill()
}

// StrokeCircle implements avatar.Canvas.
func (c *Canvas) StrokeCircle(center avatar.Vec2, radius float32, p avatar.StrokePaint) error {
	if avatar.IsTransparent(p.Color) || p.Width <= 0 || radius <= 0 {
		return nil
	}
	c.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	c.dc.SetStrokeBrush(gg.Solid(toRGBA(p.Color)))
	c.dc.SetLineWidth(float64(p.Width))
	return c.dc.Stroke()
}

// ImageCircle implements avatar.Canvas.
func (c *Canvas) ImageCircle(center avatar.Vec2, radius float32, p avatar.ImagePaint) error {
	if p.Image == nil || radius <= 0 {
		return nil
	}
	c.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	c.dc.SetFillBrush(imageBrush(avatar.SquareAround(center, radius), p))
	return c.dc.Fill()
}

// ImageRect implements avatar.Canvas.
func (c *Canvas) ImageRect(dst avatar.Rect, p avatar.ImagePaint) error {
	if p.Image == nil || dst.Empty() {
		return nil
	}
	c.dc.DrawRectangle(float64(dst.X), float64(dst.Y), float64(dst.W), float64(dst.H))
	c.dc.SetFillBrush(imageBrush(dst, p))
	return c.dc.Fill()
}

// imageBrush maps dst onto the paint's crop. gg samples at pixel centers.
func imageBrush(dst avatar.Rect, p avatar.ImagePaint) gg.CustomBrush {
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		s := p.Sample((float32(x)-dst.X)/dst.W, (float32(y)-dst.Y)/dst.H)
		return gg.RGBA{
			R: float64(s.R) / 255,
			G: float64(s.G) / 255,
			B: float64(s.B) / 255,
			A: float64(s.A) / 255,
		}
	}).WithName("avatar-image")
}

func toRGBA(c uint32) gg.RGBA {
	r, g, b, a := avatar.UnpackRGBA(c)
	return gg.RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}
