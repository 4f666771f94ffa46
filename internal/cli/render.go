package cli

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/avatar"
	"github.com/go-theft-auto/avatar/backend/software"
)

// renderOpts holds the render command's flag values.
type renderOpts struct {
	out        string
	image      string
	size       string
	padding    int
	background string
	square     bool

	styleFile string
	styleName string

	borderWidth   int
	borderColor   string
	borderOverlay bool
	fillColor     string
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an avatar to a PNG file",
		Long: `Render draws a circular avatar with the software backend.

Styling starts from the defaults, then the selected style of --style (if any),
then any of the border/fill flags given explicitly.`,
		Example: `  avatargen render --image me.jpg --out me.png --size 256x256 --border-width 6 --border-color "#FFFFFF"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runRender(cmd, opts, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "avatar.png", "output PNG path")
	f.StringVarP(&opts.image, "image", "i", "", "source image (PNG, JPEG or WebP); a test pattern is used when empty")
	f.StringVarP(&opts.size, "size", "s", "256x256", "output size as WIDTHxHEIGHT")
	f.IntVarP(&opts.padding, "padding", "p", 0, "padding on every side in pixels")
	f.StringVar(&opts.background, "background", "#00000000", "canvas background color")
	f.BoolVar(&opts.square, "square", false, "disable the circular transformation")
	f.StringVar(&opts.styleFile, "style", "", "TOML style sheet")
	f.StringVar(&opts.styleName, "style-name", avatar.DefaultStyleName, "style to use from --style")
	f.IntVar(&opts.borderWidth, "border-width", avatar.DefaultBorderWidth, "border thickness in pixels")
	f.StringVar(&opts.borderColor, "border-color", avatar.FormatColor(avatar.DefaultBorderColor), "border color")
	f.BoolVar(&opts.borderOverlay, "border-overlay", avatar.DefaultBorderOverlay, "draw the border over the image edge")
	f.StringVar(&opts.fillColor, "fill-color", avatar.FormatColor(avatar.DefaultFillColor), "backdrop color")

	return cmd
}

// resolveConfig layers defaults, the style sheet, and explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts renderOpts) (avatar.Config, error) {
	cfg := avatar.DefaultConfig()
	if opts.styleFile != "" {
		sheet, err := avatar.LoadStyleSheet(opts.styleFile)
		if err != nil {
			return cfg, err
		}
		if cfg, err = sheet.Config(opts.styleName); err != nil {
			return cfg, err
		}
	}

	attrs := make(map[string]string)
	flags := cmd.Flags()
	if flags.Changed("border-width") {
		attrs[avatar.AttrBorderWidth] = strconv.Itoa(opts.borderWidth)
	}
	if flags.Changed("border-color") {
		attrs[avatar.AttrBorderColor] = opts.borderColor
	}
	if flags.Changed("border-overlay") {
		attrs[avatar.AttrBorderOverlay] = strconv.FormatBool(opts.borderOverlay)
	}
	if flags.Changed("fill-color") {
		attrs[avatar.AttrFillColor] = opts.fillColor
	}

	return avatar.ApplyAttributes(cfg, attrs)
}

func runRender(cmd *cobra.Command, opts renderOpts, cfg avatar.Config) error {
	logger := loggerFromContext(cmd.Context())

	width, height, err := parseSize(opts.size)
	if err != nil {
		return err
	}
	if opts.padding < 0 {
		return fmt.Errorf("padding must not be negative: %d", opts.padding)
	}
	bg, err := avatar.ParseColor(opts.background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	src, err := loadSource(opts.image, width, height)
	if err != nil {
		return err
	}

	w := avatar.New(avatar.WithConfig(cfg), avatar.WithImage(src), avatar.WithCircular(!opts.square))
	w.Init()
	w.SetSize(avatar.Viewport{
		Width:  width,
		Height: height,
		Padding: avatar.Padding{
			Left: opts.padding, Top: opts.padding, Right: opts.padding, Bottom: opts.padding,
		},
	})

	canvas := software.NewCanvas(width, height)
	canvas.Clear(bg)
	if err := w.Draw(canvas); err != nil {
		return err
	}
	if err := canvas.SavePNG(opts.out); err != nil {
		return err
	}

	if layout, ok := w.Layout(); ok {
		logger.Debug("layout", "center", layout.ImageCenter, "imageRadius", layout.ImageRadius, "borderRadius", layout.BorderRadius)
	}
	logger.Infof("Wrote %s (%dx%d)", opts.out, width, height)
	return nil
}

// parseSize parses WIDTHxHEIGHT.
func parseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	if width, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if height, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, errors.New("size must be positive")
	}
	return width, height, nil
}

// loadSource decodes path with gg, or generates a test pattern when path is empty.
func loadSource(path string, width, height int) (image.Image, error) {
	if path == "" {
		return testPattern(width, height), nil
	}
	buf, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	return buf.ToStdImage(), nil
}

// testPattern is a diagonal gradient with a checker overlay, so cropping and
// clamping are visible in the output.
func testPattern(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8(255 * x / max(width-1, 1))
			g := uint8(255 * y / max(height-1, 1))
			b := uint8(160)
			if (x/16+y/16)%2 == 0 {
				b = 224
			}
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
