package avatar

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownStyle is returned when a style sheet has no style with the requested name.
var ErrUnknownStyle = errors.New("unknown style")

// DefaultStyleName selects the [default] table of a style sheet.
const DefaultStyleName = "default"

// StyleSheet is a set of named widget configurations loaded from TOML:
//
//	[default]
//	border_width = 2
//	border_color = "#FFFFFF"
//
//	[styles.profile]
//	border_width = 6
//	border_overlay = true
//	fill_color = "#202020"
//
// Named styles inherit unset keys from [default], which itself starts from
// DefaultConfig.
type StyleSheet struct {
	Default Config
	styles  map[string]Config
}

type styleTable struct {
	BorderWidth   *int    `toml:"border_width"`
	BorderColor   *string `toml:"border_color"`
	BorderOverlay *bool   `toml:"border_overlay"`
	FillColor     *string `toml:"fill_color"`
}

type styleFile struct {
	Default styleTable            `toml:"default"`
	Styles  map[string]styleTable `toml:"styles"`
}

// LoadStyleSheet reads and parses a TOML style sheet from disk.
func LoadStyleSheet(path string) (*StyleSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style sheet: %w", err)
	}
	sheet, err := ParseStyleSheet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// ParseStyleSheet parses TOML style sheet data.
func ParseStyleSheet(data []byte) (*StyleSheet, error) {
	var file styleFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("parse style sheet: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, strings.Join(keys, ", "))
	}

	base, err := file.Default.apply(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("[%s]: %w", DefaultStyleName, err)
	}

	sheet := &StyleSheet{
		Default: base,
		styles:  make(map[string]Config, len(file.Styles)),
	}
	for name, table := range file.Styles {
		cfg, err := table.apply(base)
		if err != nil {
			return nil, fmt.Errorf("[styles.%s]: %w", name, err)
		}
		sheet.styles[name] = cfg
	}

	avatarLogger.Debug("style sheet parsed", "styles", len(sheet.styles))
	return sheet, nil
}

// Config returns the configuration for a named style. An empty name or
// DefaultStyleName returns the default table.
func (s *StyleSheet) Config(name string) (Config, error) {
	if name == "" || name == DefaultStyleName {
		return s.Default, nil
	}
	cfg, ok := s.styles[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return cfg, nil
}

// Names returns the named styles in sorted order, excluding the default.
func (s *StyleSheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t styleTable) apply(cfg Config) (Config, error) {
	if t.BorderWidth != nil {
		if *t.BorderWidth < 0 {
			return Config{}, fmt.Errorf("%s: %w: %d", AttrBorderWidth, ErrNegativeBorderWidth, *t.BorderWidth)
		}
		cfg.BorderWidth = *t.BorderWidth
	}
	if t.BorderColor != nil {
		c, err := ParseColor(*t.BorderColor)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", AttrBorderColor, err)
		}
		cfg.BorderColor = c
	}
	if t.BorderOverlay != nil {
		cfg.BorderOverlay = *t.BorderOverlay
	}
	if t.FillColor != nil {
		c, err := ParseColor(*t.FillColor)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", AttrFillColor, err)
		}
		cfg.FillColor = c
	}
	return cfg, nil
}
