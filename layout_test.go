package avatar_test

import (
	"testing"

	"github.com/go-theft-auto/avatar"
)

func TestComputeLayoutExamples(t *testing.T) {
	tests := []struct {
		name       string
		vp         avatar.Viewport
		cfg        avatar.Config
		wantCenter avatar.Vec2
		wantImage  float32
		wantBorder float32
	}{
		{
			name:       "wide viewport border outside",
			vp:         avatar.Viewport{Width: 200, Height: 100},
			cfg:        avatar.Config{BorderWidth: 10},
			wantCenter: avatar.Vec2{X: 100, Y: 50},
			wantImage:  40,
			wantBorder: 45,
		},
		{
			name:       "wide viewport border overlay",
			vp:         avatar.Viewport{Width: 200, Height: 100},
			cfg:        avatar.Config{BorderWidth: 10, BorderOverlay: true},
			wantCenter: avatar.Vec2{X: 100, Y: 50},
			wantImage:  50,
			wantBorder: 45,
		},
		{
			name:       "tall viewport no border",
			vp:         avatar.Viewport{Width: 80, Height: 300},
			cfg:        avatar.Config{},
			wantCenter: avatar.Vec2{X: 40, Y: 150},
			wantImage:  40,
			wantBorder: 40,
		},
		{
			name: "asymmetric padding",
			vp: avatar.Viewport{
				Width: 120, Height: 120,
				Padding: avatar.Padding{Left: 20, Top: 10, Right: 0, Bottom: 30},
			},
			cfg:        avatar.Config{BorderWidth: 4},
			wantCenter: avatar.Vec2{X: 70, Y: 50},
			wantImage:  36,
			wantBorder: 38,
		},
		{
			name:       "zero viewport",
			vp:         avatar.Viewport{},
			cfg:        avatar.Config{BorderWidth: 10},
			wantCenter: avatar.Vec2{},
			wantImage:  0,
			wantBorder: 0,
		},
		{
			name: "padding exceeds size",
			vp: avatar.Viewport{
				Width: 50, Height: 50,
				Padding: avatar.Padding{Left: 40, Top: 40, Right: 40, Bottom: 40},
			},
			cfg:        avatar.Config{BorderWidth: 2},
			wantCenter: avatar.Vec2{X: 25, Y: 25},
			wantImage:  0,
			wantBorder: 0,
		},
		{
			name:       "border wider than circle",
			vp:         avatar.Viewport{Width: 20, Height: 20},
			cfg:        avatar.Config{BorderWidth: 30},
			wantCenter: avatar.Vec2{X: 10, Y: 10},
			wantImage:  0,
			wantBorder: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := avatar.ComputeLayout(tt.vp, tt.cfg)
			if got.ImageCenter != tt.wantCenter || got.BorderCenter != tt.wantCenter {
				t.Errorf("centers = %v / %v, want %v", got.ImageCenter, got.BorderCenter, tt.wantCenter)
			}
			if got.ImageRadius != tt.wantImage {
				t.Errorf("ImageRadius = %v, want %v", got.ImageRadius, tt.wantImage)
			}
			if got.BorderRadius != tt.wantBorder {
				t.Errorf("BorderRadius = %v, want %v", got.BorderRadius, tt.wantBorder)
			}
		})
	}
}

func TestComputeLayoutNeverNegative(t *testing.T) {
	for w := 0; w <= 64; w += 4 {
		for h := 0; h <= 64; h += 4 {
			for pad := 0; pad <= 40; pad += 10 {
				for bw := 0; bw <= 40; bw += 5 {
					for _, overlay := range []bool{false, true} {
						vp := avatar.Viewport{
							Width: w, Height: h,
							Padding: avatar.Padding{Left: pad, Top: pad / 2, Right: pad, Bottom: pad / 2},
						}
						got := avatar.ComputeLayout(vp, avatar.Config{BorderWidth: bw, BorderOverlay: overlay})
						if got.ImageRadius < 0 || got.BorderRadius < 0 {
							t.Fatalf("negative radius for %+v bw=%d overlay=%v: %+v", vp, bw, overlay, got)
						}
					}
				}
			}
		}
	}
}

func TestComputeLayoutZeroBorderIgnoresOverlay(t *testing.T) {
	vp := avatar.Viewport{Width: 90, Height: 140, Padding: avatar.Padding{Left: 5, Right: 5}}
	under := avatar.ComputeLayout(vp, avatar.Config{BorderOverlay: false})
	over := avatar.ComputeLayout(vp, avatar.Config{BorderOverlay: true})

	if under.ImageRadius != 40 || over.ImageRadius != 40 {
		t.Errorf("ImageRadius = %v / %v, want 40 for both", under.ImageRadius, over.ImageRadius)
	}
}

func TestComputeLayoutBorderMeetsImageEdge(t *testing.T) {
	vp := avatar.Viewport{Width: 300, Height: 300}
	for bw := 1; bw <= 20; bw++ {
		got := avatar.ComputeLayout(vp, avatar.Config{BorderWidth: bw})
		half := float32(150)
		if got.ImageRadius != half-float32(bw) {
			t.Errorf("bw=%d: ImageRadius = %v, want %v", bw, got.ImageRadius, half-float32(bw))
		}
		if got.BorderRadius != half-float32(bw)/2 {
			t.Errorf("bw=%d: BorderRadius = %v, want %v", bw, got.BorderRadius, half-float32(bw)/2)
		}
		inner := got.BorderRadius - float32(bw)/2
		if inner != got.ImageRadius {
			t.Errorf("bw=%d: ring inner edge %v does not meet image edge %v", bw, inner, got.ImageRadius)
		}
	}
}

func TestComputeLayoutOverlayStrokeInsideImage(t *testing.T) {
	vp := avatar.Viewport{Width: 300, Height: 300}
	for bw := 2; bw <= 20; bw += 2 {
		got := avatar.ComputeLayout(vp, avatar.Config{BorderWidth: bw, BorderOverlay: true})
		if got.ImageRadius != 150 {
			t.Errorf("bw=%d: ImageRadius = %v, want 150", bw, got.ImageRadius)
		}
		outer := got.BorderRadius + float32(bw)/2
		if outer != got.ImageRadius {
			t.Errorf("bw=%d: ring outer edge %v, want flush with image %v", bw, outer, got.ImageRadius)
		}
		overlap := got.ImageRadius - (got.BorderRadius - float32(bw)/2)
		if overlap != float32(bw) {
			t.Errorf("bw=%d: overlap into image = %v, want %d", bw, overlap, bw)
		}
	}
}

func TestComputeLayoutNegativeBorderClamped(t *testing.T) {
	vp := avatar.Viewport{Width: 100, Height: 100}
	got := avatar.ComputeLayout(vp, avatar.Config{BorderWidth: -8})
	if got.ImageRadius != 50 || got.BorderRadius != 50 {
		t.Errorf("got %+v, want both radii 50", got)
	}
}

func TestLayoutBounds(t *testing.T) {
	got := avatar.ComputeLayout(avatar.Viewport{Width: 200, Height: 100}, avatar.Config{BorderWidth: 10})

	want := avatar.Rect{X: 60, Y: 10, W: 80, H: 80}
	if b := got.ImageBounds(); b != want {
		t.Errorf("ImageBounds = %+v, want %+v", b, want)
	}
	want = avatar.Rect{X: 55, Y: 5, W: 90, H: 90}
	if b := got.BorderBounds(); b != want {
		t.Errorf("BorderBounds = %+v, want %+v", b, want)
	}
}
