package avatar_test

import (
	"errors"
	"image"
	"reflect"
	"testing"

	"github.com/go-theft-auto/avatar"
)

// recordingCanvas records draw calls in order.
type recordingCanvas struct {
	calls   []string
	fills   []avatar.FillPaint
	images  []avatar.ImagePaint
	strokes []avatar.StrokePaint
	radii   []float32
	rect    avatar.Rect
	failOn  string
}

var errCanvas = errors.New("canvas failure")

func (c *recordingCanvas) record(name string, radius float32) error {
	c.calls = append(c.calls, name)
	c.radii = append(c.radii, radius)
	if c.failOn == name {
		return errCanvas
	}
	return nil
}

func (c *recordingCanvas) FillCircle(_ avatar.Vec2, radius float32, p avatar.FillPaint) error {
	c.fills = append(c.fills, p)
	return c.record("fill", radius)
}

func (c *recordingCanvas) ImageCircle(_ avatar.Vec2, radius float32, p avatar.ImagePaint) error {
	c.images = append(c.images, p)
	return c.record("image", radius)
}

func (c *recordingCanvas) StrokeCircle(_ avatar.Vec2, radius float32, p avatar.StrokePaint) error {
	c.strokes = append(c.strokes, p)
	return c.record("border", radius)
}

func (c *recordingCanvas) ImageRect(dst avatar.Rect, p avatar.ImagePaint) error {
	c.rect = dst
	c.images = append(c.images, p)
	return c.record("rect", 0)
}

type countingInvalidator struct{ n int }

func (c *countingInvalidator) Invalidate() { c.n++ }

func testImage(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func TestWidgetDefersSetupUntilInit(t *testing.T) {
	inv := &countingInvalidator{}
	w := avatar.New(avatar.WithImage(testImage(10, 10)), avatar.WithInvalidator(inv))

	w.SetSize(avatar.Viewport{Width: 100, Height: 100})
	if w.State() != avatar.Uninitialized {
		t.Fatalf("state = %v", w.State())
	}
	if !w.SetupPending() {
		t.Fatal("setup should be pending before Init")
	}
	if _, ok := w.Layout(); ok {
		t.Fatal("layout computed before Init")
	}
	if inv.n != 0 {
		t.Errorf("invalidated %d times before Init", inv.n)
	}

	w.Init()
	if w.SetupPending() {
		t.Error("pending setup not cleared by Init")
	}
	l, ok := w.Layout()
	if !ok {
		t.Fatal("no layout after Init")
	}
	if l.ImageRadius != 50 || l.ImageCenter != (avatar.Vec2{X: 50, Y: 50}) {
		t.Errorf("layout = %+v", l)
	}
	if inv.n != 1 {
		t.Errorf("invalidations = %d, want 1", inv.n)
	}
}

func TestWidgetLatestDeferredSetupWins(t *testing.T) {
	w := avatar.New(avatar.WithImage(testImage(4, 4)))
	w.SetSize(avatar.Viewport{Width: 40, Height: 40})
	w.SetSize(avatar.Viewport{Width: 200, Height: 100})
	w.Init()

	l, ok := w.Layout()
	if !ok || l.ImageRadius != 50 {
		t.Errorf("layout = %+v, ok = %v; want radius from the last size", l, ok)
	}
}

func TestWidgetZeroViewportIsNoop(t *testing.T) {
	inv := &countingInvalidator{}
	w := avatar.New(avatar.WithImage(testImage(4, 4)), avatar.WithInvalidator(inv))
	w.Init()

	w.SetSize(avatar.Viewport{})
	if _, ok := w.Layout(); ok {
		t.Error("layout computed for zero viewport")
	}
	if inv.n != 0 {
		t.Errorf("zero viewport invalidated %d times", inv.n)
	}

	w.SetSize(avatar.Viewport{Width: 60, Height: 60})
	before, _ := w.Layout()
	w.SetSize(avatar.Viewport{})
	after, ok := w.Layout()
	if !ok || after != before {
		t.Errorf("zero viewport changed layout: %+v -> %+v", before, after)
	}
}

func TestWidgetNilImageInvalidatesWithoutLayout(t *testing.T) {
	inv := &countingInvalidator{}
	w := avatar.New(avatar.WithInvalidator(inv))
	w.Init()
	w.SetSize(avatar.Viewport{Width: 50, Height: 50})

	if _, ok := w.Layout(); ok {
		t.Error("layout computed without an image")
	}
	if inv.n != 1 {
		t.Errorf("invalidations = %d, want 1", inv.n)
	}

	c := &recordingCanvas{}
	if err := w.Draw(c); err != nil {
		t.Fatal(err)
	}
	if len(c.calls) != 0 {
		t.Errorf("drew without image: %v", c.calls)
	}

	w.SetImage(testImage(8, 8))
	if _, ok := w.Layout(); !ok {
		t.Error("SetImage did not compute layout")
	}
	w.SetImage(nil)
	if _, ok := w.Layout(); ok {
		t.Error("clearing the image kept the layout")
	}
}

func TestWidgetDrawOrder(t *testing.T) {
	w := avatar.New(
		avatar.WithImage(testImage(20, 10)),
		avatar.WithBorderWidth(10),
		avatar.WithBorderColor(avatar.ColorWhite),
		avatar.WithFillColor(avatar.ColorGray),
	)
	w.Init()
	w.SetSize(avatar.Viewport{Width: 200, Height: 100})

	c := &recordingCanvas{}
	if err := w.Draw(c); err != nil {
		t.Fatal(err)
	}
	if want := []string{"fill", "image", "border"}; !reflect.DeepEqual(c.calls, want) {
		t.Fatalf("calls = %v, want %v", c.calls, want)
	}
	if want := []float32{40, 40, 45}; !reflect.DeepEqual(c.radii, want) {
		t.Errorf("radii = %v, want %v", c.radii, want)
	}
	if c.fills[0].Color != avatar.ColorGray {
		t.Errorf("fill color = %#08x", c.fills[0].Color)
	}
	if c.strokes[0].Width != 10 || c.strokes[0].Color != avatar.ColorWhite {
		t.Errorf("stroke = %+v", c.strokes[0])
	}
	if c.images[0].Crop != (avatar.Rect{X: 5, Y: 0, W: 10, H: 10}) {
		t.Errorf("crop = %+v", c.images[0].Crop)
	}
}

func TestWidgetDrawSkipsTransparentFillAndZeroBorder(t *testing.T) {
	w := avatar.New(avatar.WithImage(testImage(4, 4)), avatar.WithBorderColor(avatar.ColorRed))
	w.Init()
	w.SetSize(avatar.Viewport{Width: 30, Height: 30})

	c := &recordingCanvas{}
	if err := w.Draw(c); err != nil {
		t.Fatal(err)
	}
	if want := []string{"image"}; !reflect.DeepEqual(c.calls, want) {
		t.Errorf("calls = %v, want %v", c.calls, want)
	}
}

func TestWidgetPaintsRebuiltOnlyOnChange(t *testing.T) {
	inv := &countingInvalidator{}
	img := testImage(30, 10)
	w := avatar.New(avatar.WithImage(img), avatar.WithBorderWidth(2), avatar.WithInvalidator(inv))
	w.Init()

	p := w.Paints()
	w.SetSize(avatar.Viewport{Width: 100, Height: 80})
	w.SetSize(avatar.Viewport{Width: 120, Height: 90})
	if w.Paints() != p {
		t.Error("resizing rebuilt paints")
	}

	n := inv.n
	w.SetBorderWidth(2)
	if inv.n != n {
		t.Error("setting an unchanged config triggered setup")
	}

	w.SetBorderWidth(6)
	if got := w.Paints().Border.Width; got != 6 {
		t.Errorf("border paint width = %v, want 6", got)
	}
	if w.Paints().Image.Image != img {
		t.Error("image paint lost its source")
	}
	l, _ := w.Layout()
	if l.ImageRadius != 45-6 {
		t.Errorf("image radius = %v, want 39", l.ImageRadius)
	}
}

func TestWidgetSetters(t *testing.T) {
	w := avatar.New()
	w.SetBorderWidth(-4)
	w.SetBorderColor(avatar.ColorBlue)
	w.SetBorderOverlay(true)
	w.SetFillColor(avatar.ColorBlack)

	if w.BorderWidth() != 0 {
		t.Errorf("negative width not clamped: %d", w.BorderWidth())
	}
	if w.BorderColor() != avatar.ColorBlue || !w.BorderOverlay() || w.FillColor() != avatar.ColorBlack {
		t.Errorf("config = %+v", w.Config())
	}
	if w.Paints().Fill.Color != avatar.ColorBlack {
		t.Errorf("fill paint = %+v", w.Paints().Fill)
	}
}

func TestWidgetNonCircularDrawsRect(t *testing.T) {
	inv := &countingInvalidator{}
	w := avatar.New(
		avatar.WithImage(testImage(40, 40)),
		avatar.WithBorderWidth(4),
		avatar.WithFillColor(avatar.ColorRed),
		avatar.WithInvalidator(inv),
	)
	w.Init()
	w.SetSize(avatar.Viewport{Width: 100, Height: 50, Padding: avatar.Padding{Left: 10, Top: 5, Right: 10, Bottom: 5}})

	n := inv.n
	w.SetCircular(false)
	if w.Circular() || inv.n != n+1 {
		t.Fatalf("SetCircular(false): circular = %v, invalidations = %d", w.Circular(), inv.n-n)
	}

	c := &recordingCanvas{}
	if err := w.Draw(c); err != nil {
		t.Fatal(err)
	}
	if want := []string{"rect"}; !reflect.DeepEqual(c.calls, want) {
		t.Fatalf("calls = %v, want %v", c.calls, want)
	}
	if want := (avatar.Rect{X: 10, Y: 5, W: 80, H: 40}); c.rect != want {
		t.Errorf("rect = %+v, want %+v", c.rect, want)
	}
	if want := (avatar.Rect{X: 0, Y: 10, W: 40, H: 20}); c.images[0].Crop != want {
		t.Errorf("crop = %+v, want %+v", c.images[0].Crop, want)
	}
}

func TestWidgetDrawWrapsErrors(t *testing.T) {
	for _, step := range []string{"fill", "image", "border"} {
		t.Run(step, func(t *testing.T) {
			w := avatar.New(
				avatar.WithImage(testImage(4, 4)),
				avatar.WithBorderWidth(2),
				avatar.WithFillColor(avatar.ColorWhite),
			)
			w.Init()
			w.SetSize(avatar.Viewport{Width: 20, Height: 20})

			err := w.Draw(&recordingCanvas{failOn: step})
			if !errors.Is(err, errCanvas) {
				t.Fatalf("error = %v, want wrapped canvas failure", err)
			}
			if want := "draw " + step + ": canvas failure"; err.Error() != want {
				t.Errorf("error = %q, want %q", err.Error(), want)
			}
		})
	}
}
