// Example shows an avatar widget in a resizable window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL renderer and draws
// a bordered avatar that re-lays itself out whenever the window is resized.
// Press O to toggle border overlay, S to toggle the circular transformation.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/avatar"
	"github.com/go-theft-auto/avatar/backend/opengl"
)

const (
	windowWidth  = 480
	windowHeight = 320
	windowTitle  = "avatar example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()
	avatar.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
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

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("avatar renderer: %w", err)
	}
	defer renderer.Delete()

	w := avatar.New(
		avatar.WithImage(sampleImage(320, 200)),
		avatar.WithBorderWidth(10),
		avatar.WithBorderColor(avatar.RGBA(255, 255, 255, 255)),
		avatar.WithFillColor(avatar.RGBA(40, 40, 48, 255)),
	)
	host := avatar.NewHost(renderer, w,
		avatar.WithPadding(avatar.Padding{Left: 16, Top: 16, Right: 16, Bottom: 16}),
		avatar.WithTextureResolver(renderer.TextureID),
	)
	opengl.NewWindowAdapter(window, host)

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyO:
			w.SetBorderOverlay(!w.BorderOverlay())
		case glfw.KeyS:
			w.SetCircular(!w.Circular())
		case glfw.KeyEscape:
			window.SetShouldClose(true)
		}
	})

	for !window.ShouldClose() {
		glfw.WaitEvents()
		if !host.NeedsRedraw() {
			continue
		}

		fw, fh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := host.Frame(); err != nil {
			return fmt.Errorf("avatar frame: %w", err)
		}
		window.SwapBuffers()
	}

	return nil
}

// sampleImage is a landscape gradient with a vertical stripe at the center,
// so the center crop is easy to see.
func sampleImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{
				R: uint8(255 * x / (width - 1)),
				G: uint8(255 * y / (height - 1)),
				B: 180,
				A: 255,
			}
			if x >= width/2-4 && x < width/2+4 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
