package avatar_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-theft-auto/avatar"
)

const sampleSheet = `
[default]
border_width = 2
border_color = "#FFFFFF"

[styles.profile]
border_width = 6
border_overlay = true
fill_color = "#202020"

[styles.plain]
border_width = 0
`

func TestParseStyleSheet(t *testing.T) {
	sheet, err := avatar.ParseStyleSheet([]byte(sampleSheet))
	if err != nil {
		t.Fatalf("ParseStyleSheet error: %v", err)
	}

	if got := sheet.Names(); !reflect.DeepEqual(got, []string{"plain", "profile"}) {
		t.Errorf("Names() = %v", got)
	}

	def, err := sheet.Config("")
	if err != nil {
		t.Fatal(err)
	}
	if def.BorderWidth != 2 || def.BorderColor != avatar.ColorWhite || def.BorderOverlay {
		t.Errorf("default = %+v", def)
	}

	profile, err := sheet.Config("profile")
	if err != nil {
		t.Fatal(err)
	}
	want := avatar.Config{
		BorderWidth:   6,
		BorderColor:   avatar.ColorWhite, // inherited from [default]
		BorderOverlay: true,
		FillColor:     avatar.RGBA(0x20, 0x20, 0x20, 0xFF),
	}
	if profile != want {
		t.Errorf("profile = %+v, want %+v", profile, want)
	}

	plain, err := sheet.Config("plain")
	if err != nil {
		t.Fatal(err)
	}
	if plain.HasBorder() {
		t.Errorf("plain should override the inherited border: %+v", plain)
	}
}

func TestStyleSheetUnknownStyle(t *testing.T) {
	sheet, err := avatar.ParseStyleSheet([]byte(sampleSheet))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sheet.Config("missing"); !errors.Is(err, avatar.ErrUnknownStyle) {
		t.Errorf("error = %v, want ErrUnknownStyle", err)
	}
}

func TestParseStyleSheetErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown key", "[default]\ncorner_radius = 3\n", avatar.ErrUnknownAttribute},
		{"bad color", "[styles.x]\nborder_color = \"#XYZ\"\n", avatar.ErrInvalidColor},
		{"negative width", "[default]\nborder_width = -1\n", avatar.ErrNegativeBorderWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := avatar.ParseStyleSheet([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := avatar.ParseStyleSheet([]byte("[default\n")); err == nil {
		t.Error("expected TOML syntax error")
	}
}

func TestLoadStyleSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.toml")
	if err := os.WriteFile(path, []byte(sampleSheet), 0o644); err != nil {
		t.Fatal(err)
	}
	sheet, err := avatar.LoadStyleSheet(path)
	if err != nil {
		t.Fatalf("LoadStyleSheet error: %v", err)
	}
	if len(sheet.Names()) != 2 {
		t.Errorf("Names() = %v", sheet.Names())
	}

	if _, err := avatar.LoadStyleSheet(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}
