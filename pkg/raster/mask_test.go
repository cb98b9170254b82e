package raster

import(
	"image"
	"image/color"
	"testing"
)

func TestBlurMask(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 9, 9))
	for x := 0; x < 5; x++ {
		for y := 0; y < 9; y++ {
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	soft := BlurMask(mask, 1.5)
	if !soft.Bounds().Eq(mask.Bounds()) {
		t.Fatalf("blurred bounds %v != %v", soft.Bounds(), mask.Bounds())
	}

	// The hard step at x=4/5 must spread: the boundary columns end up
	// strictly between the two plateaus.
	if got := soft.GrayAt(4, 4).Y; got == 255 || got == 0 {
		t.Errorf("boundary pixel = %d, want feathered", got)
	}
	if got := soft.GrayAt(5, 4).Y; got == 255 || got == 0 {
		t.Errorf("boundary pixel = %d, want feathered", got)
	}
	// Far from the edge the plateaus survive.
	if got := soft.GrayAt(0, 4).Y; got != 255 {
		t.Errorf("deep interior = %d, want 255", got)
	}
	if got := soft.GrayAt(8, 4).Y; got != 0 {
		t.Errorf("deep exterior = %d, want 0", got)
	}

	// Zero radius is a copy, not an alias.
	same := BlurMask(mask, 0)
	if same.GrayAt(0, 0).Y != 255 {
		t.Error("zero-radius blur changed pixels")
	}
	same.SetGray(0, 0, color.Gray{Y: 1})
	if mask.GrayAt(0, 0).Y != 255 {
		t.Error("zero-radius blur aliased the input")
	}
}

func TestDilateMask(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 9, 9))
	mask.SetGray(4, 4, color.Gray{Y: 200})

	out := DilateMask(mask, 5)
	for y := 2; y <= 6; y++ {
		for x := 2; x <= 6; x++ {
			if got := out.GrayAt(x, y).Y; got != 200 {
				t.Errorf("dilated(%d,%d) = %d, want 200", x, y, got)
			}
		}
	}
	if got := out.GrayAt(1, 4).Y; got != 0 {
		t.Errorf("outside kernel = %d, want 0", got)
	}

	// Sub-3 kernels are a no-op copy.
	same := DilateMask(mask, 1)
	if got := same.GrayAt(3, 4).Y; got != 0 {
		t.Errorf("size-1 dilation grew the mask")
	}
}

func TestGrayscale(t *testing.T) {
	im := solid(2, 1, 3, color.NRGBA{255, 0, 0, 255})
	im.Pix.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})

	g := Grayscale(im)
	// Rec.601: pure red 76, pure green 150.
	if got := g.GrayAt(0, 0).Y; got != 76 {
		t.Errorf("red luminosity = %d, want 76", got)
	}
	if got := g.GrayAt(1, 0).Y; got != 150 {
		t.Errorf("green luminosity = %d, want 150", got)
	}
}
