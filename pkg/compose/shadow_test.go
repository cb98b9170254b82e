package compose

import(
	"image"
	"image/color"
	"math"
	"testing"
)

func TestDeriveShadowParams(t *testing.T) {
	sig := SceneSignals{Contrast: 0.1}
	sp := DeriveShadowParams(sig, "", image.Point{200, 300}, DefaultTunables())

	// baseY = max(8, 0.04*300) = 12; no light direction, so no skew.
	if want := (image.Point{8, 12}); sp.Offset != want {
		t.Errorf("Offset = %v, want %v", sp.Offset, want)
	}
	// blur = max(10, 200 * (0.06 + 0.1*0.3)) = 18
	if math.Abs(sp.BlurRadius-18) > 1e-9 {
		t.Errorf("BlurRadius = %f, want 18", sp.BlurRadius)
	}
	// opacity = 0.22 + min(0.1*0.9, 0.35) = 0.31
	if math.Abs(sp.Opacity-0.31) > 1e-9 {
		t.Errorf("Opacity = %f, want 0.31", sp.Opacity)
	}
}

func TestDeriveShadowParamsSmallProduct(t *testing.T) {
	sp := DeriveShadowParams(SceneSignals{}, "", image.Point{50, 50}, DefaultTunables())
	// 0.04*50 = 2, floored at the base offset.
	if sp.Offset.Y != 8 {
		t.Errorf("Offset.Y = %d, want floored at 8", sp.Offset.Y)
	}
	// 50 * 0.06 = 3, floored at the blur minimum.
	if sp.BlurRadius != 10 {
		t.Errorf("BlurRadius = %f, want floored at 10", sp.BlurRadius)
	}
}

func TestDeriveShadowParamsHintOverride(t *testing.T) {
	// The analyzer saw light from the right, but the hint says left;
	// the hint wins, pushing the shadow left of its base offset.
	sig := SceneSignals{LightDX: 0.9, LightDY: 0.9}
	sp := DeriveShadowParams(sig, "light from the left", image.Point{200, 300}, DefaultTunables())

	// x = round(8 + (-0.8)*12) = -2; y = round(12 + 0*10) = 12, the
	// unmatched axis resets rather than keeping the analyzer's value.
	if want := (image.Point{-2, 12}); sp.Offset != want {
		t.Errorf("Offset = %v, want %v", sp.Offset, want)
	}
}

func TestRenderShadow(t *testing.T) {
	silhouette := image.NewGray(image.Rect(0, 0, 21, 21))
	for i := range silhouette.Pix {
		silhouette.Pix[i] = 255
	}

	shadow := RenderShadow(silhouette, 0.5, 2)
	if shadow.Dx() != 21 || shadow.Dy() != 21 {
		t.Fatalf("shadow dims = %dx%d, want 21x21", shadow.Dx(), shadow.Dy())
	}
	if !shadow.HasAlpha() {
		t.Fatal("shadow has no alpha")
	}

	// Deep interior survives the blur at full strength.
	got := shadow.Pix.NRGBAAt(10, 10)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("shadow color = (%d,%d,%d), want black", got.R, got.G, got.B)
	}
	if got.A != 128 {
		t.Errorf("center alpha = %d, want 255*0.5 = 128", got.A)
	}
}

func TestRenderReflection(t *testing.T) {
	product := solid(10, 10, 4, color.NRGBA{100, 0, 0, 255})

	refl, err := RenderReflection(product, 0.35, 0.28)
	if err != nil {
		t.Fatal(err)
	}

	// 0.28 of 10 rows truncates to 2.
	if refl.Dx() != 10 || refl.Dy() != 2 {
		t.Fatalf("reflection dims = %dx%d, want 10x2", refl.Dx(), refl.Dy())
	}

	// Row 0 fades at full opacity, row 1 at half.
	if got := refl.Pix.NRGBAAt(5, 0).A; got != 89 {
		t.Errorf("row 0 alpha = %d, want round(255*0.35) = 89", got)
	}
	if got := refl.Pix.NRGBAAt(5, 1).A; got != 45 {
		t.Errorf("row 1 alpha = %d, want round(255*0.175) = 45", got)
	}
	if got := refl.Pix.NRGBAAt(5, 0); got.R != 100 {
		t.Errorf("reflection color R = %d, want 100", got.R)
	}
}

func TestRenderReflectionRejectsOpaque(t *testing.T) {
	if _, err := RenderReflection(solid(4, 4, 3, gray(9)), 0.35, 0.28); err == nil {
		t.Error("3-channel product accepted")
	}
}
