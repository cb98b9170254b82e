package compose

import(
	"bytes"
	"image"
	"testing"
)

func TestApplyDepthOfFieldUniformScene(t *testing.T) {
	// Blurring a flat scene is the identity, so the blend must be too.
	bg := solid(60, 60, 4, gray(150))
	before := append([]byte{}, bg.Pix.Pix...)

	out, err := ApplyDepthOfField(bg, image.Point{20, 20}, image.Point{20, 20}, DefaultTunables())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Pix.Pix, before) {
		t.Error("flat scene changed under depth of field")
	}
}

func TestApplyDepthOfField(t *testing.T) {
	// Single-pixel vertical stripes: the strongest possible blur target.
	bg := solid(200, 200, 3, gray(0))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if x%2 == 0 {
				bg.Pix.SetNRGBA(x, y, gray(255))
			}
		}
	}
	before := bg.Clone()

	// Product at (70,70) 60x60; with 0.35 padding the focal box is
	// (49,49)-(151,151), so its center is well clear of the feather.
	out, err := ApplyDepthOfField(bg, image.Point{70, 70}, image.Point{60, 60}, DefaultTunables())
	if err != nil {
		t.Fatal(err)
	}
	if out.Dx() != 200 || out.Dy() != 200 {
		t.Fatalf("dims = %dx%d, want 200x200", out.Dx(), out.Dy())
	}

	if got, want := out.Pix.NRGBAAt(100, 100), before.Pix.NRGBAAt(100, 100); got != want {
		t.Errorf("focal center changed: %v -> %v", want, got)
	}

	// A far corner is fully masked: the stripes there must have
	// smeared toward gray.
	got, orig := out.Pix.NRGBAAt(0, 0), before.Pix.NRGBAAt(0, 0)
	if got == orig {
		t.Error("masked corner unchanged; blur never applied")
	}

	// Alpha never participates in the blend.
	if got := out.Pix.NRGBAAt(0, 0).A; got != 255 {
		t.Errorf("corner alpha = %d, want 255", got)
	}
}

func TestFocalBox(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)
	box := focalBox(image.Point{40, 40}, image.Point{20, 20}, 0.35, bounds)
	if want := image.Rect(33, 33, 67, 67); box != want {
		t.Errorf("focalBox = %v, want %v", box, want)
	}

	// Clipped against the scene.
	box = focalBox(image.Point{0, 0}, image.Point{20, 20}, 0.35, bounds)
	if want := image.Rect(0, 0, 27, 27); box != want {
		t.Errorf("edge focalBox = %v, want %v", box, want)
	}
}

func TestLerpByte(t *testing.T) {
	if got := lerpByte(10, 200, 0); got != 10 {
		t.Errorf("m=0 lerp = %d, want 10", got)
	}
	if got := lerpByte(10, 200, 255); got != 200 {
		t.Errorf("m=255 lerp = %d, want 200", got)
	}
	if got := lerpByte(100, 100, 77); got != 100 {
		t.Errorf("equal-ends lerp = %d, want 100", got)
	}
}
