package compose

import(
	"image/color"
	"testing"
)

func TestWarpNoHintIsNoOp(t *testing.T) {
	product := solid(20, 20, 4, color.NRGBA{50, 60, 70, 255})

	out := Warp(product, "straight on")
	if out.Pix != product.Pix {
		t.Error("zero-shear warp resampled instead of passing through")
	}
}

func TestWarpPreservesGeometry(t *testing.T) {
	product := solid(21, 21, 4, color.NRGBA{200, 100, 50, 255})

	out := Warp(product, "45 degree")
	if out.Pix == product.Pix {
		t.Fatal("sheared warp returned the input buffer")
	}
	if out.Dx() != 21 || out.Dy() != 21 {
		t.Errorf("warped dims = %dx%d, want 21x21", out.Dx(), out.Dy())
	}
	if out.Channels != 4 {
		t.Errorf("warped channels = %d, want 4", out.Channels)
	}

	// The shear anchors at the center, so the center pixel keeps the
	// product's color at full opacity.
	got := out.Pix.NRGBAAt(10, 10)
	if got.A < 250 {
		t.Errorf("center alpha = %d, want opaque", got.A)
	}
	if got.R < 190 || got.R > 210 {
		t.Errorf("center R = %d, want near 200", got.R)
	}
}

func TestWarpExposesTransparency(t *testing.T) {
	product := solid(40, 40, 4, color.NRGBA{255, 255, 255, 255})

	// A sideways shear slides the top rows left of the bottom ones,
	// exposing the top-right corner as transparent fill.
	out := Warp(product, "side view")
	if got := out.Pix.NRGBAAt(39, 0).A; got == 255 {
		t.Errorf("corner alpha = %d, want exposed transparency", got)
	}
}
