package avatar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Attribute names recognized by ParseAttributes and style sheets.
const (
	AttrBorderWidth   = "border_width"
	AttrBorderColor   = "border_color"
	AttrBorderOverlay = "border_overlay"
	AttrFillColor     = "fill_color"
)

// Defaults for a widget with no styling applied.
const (
	DefaultBorderWidth   = 0
	DefaultBorderColor   = ColorTransparent
	DefaultBorderOverlay = false
	DefaultFillColor     = ColorTransparent
)

var (
	// ErrInvalidColor is returned for color strings that are not #RGB, #RGBA,
	// #RRGGBB or #RRGGBBAA.
	ErrInvalidColor = errors.New("invalid color")

	// ErrNegativeBorderWidth is returned when a border width below zero is parsed.
	ErrNegativeBorderWidth = errors.New("negative border width")

	// ErrUnknownAttribute is returned for attribute keys the widget does not recognize.
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// Config is the widget's style. It is a value type and is replaced wholesale;
// the setters on Widget build a modified copy.
type Config struct {
	BorderWidth   int    // Stroke thickness in pixels
	BorderColor   uint32 // Packed RGBA
	BorderOverlay bool   // Draw the border over the image edge instead of outside it
	FillColor     uint32 // Packed RGBA backdrop drawn beneath the image
}

// DefaultConfig returns the unstyled configuration: no border, no fill.
func DefaultConfig() Config {
	return Config{
		BorderWidth:   DefaultBorderWidth,
		BorderColor:   DefaultBorderColor,
		BorderOverlay: DefaultBorderOverlay,
		FillColor:     DefaultFillColor,
	}
}

// normalized clamps the border width to zero.
func (c Config) normalized() Config {
	if c.BorderWidth < 0 {
		c.BorderWidth = 0
	}
	return c
}

// HasBorder reports whether a border ring is drawn.
func (c Config) HasBorder() bool {
	return c.BorderWidth > 0
}

// HasFill reports whether the backdrop circle is drawn.
func (c Config) HasFill() bool {
	return !IsTransparent(c.FillColor)
}

// ParseColor decodes a hex color string into a packed color.
// The leading '#' is optional.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}

	c := gg.Hex(hex)
	return RGBAf(float32(c.R), float32(c.G), float32(c.B), float32(c.A)), nil
}

// FormatColor encodes a packed color as #RRGGBBAA.
func FormatColor(c uint32) string {
	r, g, b, a := UnpackRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ParseBorderWidth parses a non-negative pixel width. A "px" suffix is accepted.
func ParseBorderWidth(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if err != nil {
		return 0, fmt.Errorf("border width %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeBorderWidth, v)
	}
	return v, nil
}

// ParseAttributes builds a Config from string attributes, starting from
// DefaultConfig. Keys not listed in the Attr constants are rejected.
func ParseAttributes(attrs map[string]string) (Config, error) {
	return ApplyAttributes(DefaultConfig(), attrs)
}

// ApplyAttributes overrides the fields of cfg named in attrs.
func ApplyAttributes(cfg Config, attrs map[string]string) (Config, error) {
	for key, value := range attrs {
		switch key {
		case AttrBorderWidth:
			w, err := ParseBorderWidth(value)
			if err != nil {
				return Config{}, err
			}
			cfg.BorderWidth = w
		case AttrBorderColor:
			c, err := ParseColor(value)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", key, err)
			}
			cfg.BorderColor = c
		case AttrBorderOverlay:
			b, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", key, err)
			}
			cfg.BorderOverlay = b
		case AttrFillColor:
			c, err := ParseColor(value)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", key, err)
			}
			cfg.FillColor = c
		default:
			return Config{}, fmt.Errorf("%w: %q", ErrUnknownAttribute, key)
		}
	}
	return cfg, nil
}
