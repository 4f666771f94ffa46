// Command gen renders the avatar widget in a set of configurations, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/avatar"
	"github.com/go-theft-auto/avatar/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name    string          // filename without extension
	width   int             // viewport width
	height  int             // viewport height
	padding int             // padding on every side
	opts    []avatar.Option // widget configuration
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("avatar renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots(portrait(240, 320))

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// The hidden window stays at 800x600 (larger than every screenshot), so
	// only the renderer projection changes.
	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// Fresh widget per screenshot to avoid state leaking between captures.
	w := avatar.New(s.opts...)
	host := avatar.NewHost(renderer, w,
		avatar.WithPadding(avatar.Padding{Left: s.padding, Top: s.padding, Right: s.padding, Bottom: s.padding}),
		avatar.WithTextureResolver(renderer.TextureID),
	)
	host.Resize(s.width, s.height)
	if err := host.Frame(); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the configurations to capture.
func buildScreenshots(src image.Image) []screenshot {
	white := avatar.RGBA(255, 255, 255, 255)
	accent := avatar.RGBA(230, 120, 40, 255)

	return []screenshot{
		{
			name: "plain", width: 200, height: 200,
			opts: []avatar.Option{avatar.WithImage(src)},
		},
		{
			name: "border", width: 200, height: 200, padding: 8,
			opts: []avatar.Option{
				avatar.WithImage(src),
				avatar.WithBorderWidth(10),
				avatar.WithBorderColor(white),
			},
		},
		{
			name: "border_overlay", width: 200, height: 200, padding: 8,
			opts: []avatar.Option{
				avatar.WithImage(src),
				avatar.WithBorderWidth(10),
				avatar.WithBorderColor(avatar.RGBA(255, 255, 255, 160)),
				avatar.WithBorderOverlay(true),
			},
		},
		{
			name: "fill", width: 200, height: 200, padding: 8,
			opts: []avatar.Option{
				avatar.WithImage(checkerHoles(src)),
				avatar.WithFillColor(accent),
				avatar.WithBorderWidth(4),
				avatar.WithBorderColor(white),
			},
		},
		{
			name: "wide_viewport", width: 360, height: 160, padding: 12,
			opts: []avatar.Option{
				avatar.WithImage(src),
				avatar.WithBorderWidth(6),
				avatar.WithBorderColor(accent),
			},
		},
		{
			name: "square", width: 300, height: 200, padding: 12,
			opts: []avatar.Option{
				avatar.WithImage(src),
				avatar.WithCircular(false),
			},
		},
	}
}

// portrait is a tall gradient with a horizontal band at the vertical center.
func portrait(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{
				R: uint8(60 + 150*y/(height-1)),
				G: uint8(90 + 120*x/(width-1)),
				B: 200,
				A: 255,
			}
			if y >= height/2-6 && y < height/2+6 {
				c = color.NRGBA{R: 250, G: 240, B: 200, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// checkerHoles punches a transparent checker pattern into src so the fill
// color shows through.
func checkerHoles(src image.Image) image.Image {
	b := src.Bounds()
	img := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if (x/20+y/20)%2 == 0 {
				c.A = 0
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
