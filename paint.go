package avatar

import (
	"image"
	"image/color"
	"math"
)

// ImagePaint shades a target area with a source image. The source is
// referenced, not copied. Sampling outside the crop region repeats the
// nearest edge pixel (clamped tiling).
type ImagePaint struct {
	Image     image.Image
	Crop      Rect // Source region in pixels, relative to Image.Bounds().Min
	Antialias bool
}

// StrokePaint strokes the border ring.
type StrokePaint struct {
	Color     uint32
	Width     float32
	Antialias bool
}

// FillPaint fills the backdrop circle.
type FillPaint struct {
	Color     uint32
	Antialias bool
}

// Paints is the set of render descriptors a widget draws with. It is rebuilt
// when the configuration or source image changes, never per frame.
type Paints struct {
	Image  ImagePaint
	Border StrokePaint
	Fill   FillPaint
}

// NewPaints builds the render descriptors for a config and source image.
// The image paint center-crops the source to a square.
func NewPaints(cfg Config, img image.Image) Paints {
	p := Paints{
		Border: StrokePaint{Color: cfg.BorderColor, Width: float32(cfg.BorderWidth), Antialias: true},
		Fill:   FillPaint{Color: cfg.FillColor, Antialias: true},
	}
	if img != nil {
		b := img.Bounds()
		p.Image = ImagePaint{Image: img, Crop: SquareCrop(b.Dx(), b.Dy()), Antialias: true}
	}
	return p
}

// WithTarget returns a copy whose crop covers a dstW x dstH target instead of a square.
func (p ImagePaint) WithTarget(dstW, dstH float32) ImagePaint {
	if p.Image == nil {
		return p
	}
	b := p.Image.Bounds()
	p.Crop = CenterCrop(b.Dx(), b.Dy(), dstW, dstH)
	return p
}

// Sample returns the source color at normalized target coordinates (u, v),
// where (0, 0) is the top-left of the target area and (1, 1) the bottom-right.
// Coordinates outside [0, 1] clamp to the edge.
func (p ImagePaint) Sample(u, v float32) color.NRGBA {
	if p.Image == nil || p.Crop.Empty() {
		return color.NRGBA{}
	}
	b := p.Image.Bounds()

	x := p.Crop.X + clampf(u, 0, 1)*p.Crop.W
	y := p.Crop.Y + clampf(v, 0, 1)*p.Crop.H
	px := clampi(floori(x), floori(p.Crop.X), ceili(p.Crop.X+p.Crop.W)-1)
	py := clampi(floori(y), floori(p.Crop.Y), ceili(p.Crop.Y+p.Crop.H)-1)
	px = clampi(px, 0, b.Dx()-1)
	py = clampi(py, 0, b.Dy()-1)

	return color.NRGBAModel.Convert(p.Image.At(b.Min.X+px, b.Min.Y+py)).(color.NRGBA)
}

// UV returns the crop region as normalized texture coordinates (u0, v0, u1, v1).
func (p ImagePaint) UV() [4]float32 {
	if p.Image == nil {
		return [4]float32{}
	}
	b := p.Image.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	if w <= 0 || h <= 0 {
		return [4]float32{}
	}
	return [4]float32{
		p.Crop.X / w,
		p.Crop.Y / h,
		(p.Crop.X + p.Crop.W) / w,
		(p.Crop.Y + p.Crop.H) / h,
	}
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floori(v float32) int { return int(math.Floor(float64(v))) }
func ceili(v float32) int  { return int(math.Ceil(float64(v))) }
