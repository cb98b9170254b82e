// Package matte post-processes the rough cutout an external
// segmentation model produces, before it ever reaches the compositor:
// feather the hard edges, rescue translucent/reflective regions the
// segmenter cut as background, and keep the faint contact shadows it
// would otherwise discard.
package matte

import(
	"fmt"
	"image"

	"github.com/mockstage/mockstage/pkg/raster"
)

// Empirically tuned constants, preserved as observed behavior.
const (
	featherRadius = 1.5

	glassBrightnessMin = 200 // original pixel brighter than this ...
	glassAlphaMax      = 120 // ... while the matte says mostly-background
	glassAlphaScale    = 0.4 // lifted alpha = alpha*scale + floor
	glassAlphaFloor    = 80

	dilateKernel   = 5
	shadowGrayCeil = 0.6 // only pixels darker than this read as shadow
	shadowScale    = 127.5
	shadowCap      = 50 // max alpha a rescued shadow may contribute
)

// Refine takes a matte with a possibly harsh or binary alpha channel
// plus the original un-segmented image, and returns the matte with a
// refined alpha. RGB channels pass through unchanged.
func Refine(m raster.Image, original raster.Image) (raster.Image, error) {
	if err := m.Validate(); err != nil {
		return raster.Image{}, fmt.Errorf("refine: matte: %v", err)
	}
	if err := original.Validate(); err != nil {
		return raster.Image{}, fmt.Errorf("refine: original: %v", err)
	}
	if !m.Bounds().Eq(original.Bounds()) {
		return raster.Image{}, fmt.Errorf("refine: matte %v != original %v", m.Bounds(), original.Bounds())
	}

	m = m.WithAlpha()

	alphaMask, err := m.AlphaMask()
	if err != nil {
		return raster.Image{}, fmt.Errorf("refine: %v", err)
	}

	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	// 1. Feather, to avoid hard-cutout edges.
	feathered := raster.BlurMask(alphaMask, featherRadius)

	alpha := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alpha[y*w+x] = float64(feathered.GrayAt(x+b.Min.X, y+b.Min.Y).Y)
		}
	}

	// 2. Glass/highlight rescue: where the original is bright but the
	// matte got cut too aggressively, lift alpha toward a floor.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := original.Pix.NRGBAAt(x+b.Min.X, y+b.Min.Y)
			brightness := (float64(px.R) + float64(px.G) + float64(px.B)) / 3.0
			i := y*w + x
			if brightness > glassBrightnessMin && alpha[i] < glassAlphaMax {
				alpha[i] = alpha[i]*glassAlphaScale + glassAlphaFloor
			}
		}
	}

	// 3. Contact shadows: dilate the footprint, then wherever we're
	// outside it and the original is dark, hand a little opacity back.
	rescued := grayFromFloats(alpha, w, h)
	dilated := raster.DilateMask(rescued, dilateKernel)
	gray := raster.Grayscale(original)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			footprint := float64(dilated.GrayAt(x, y).Y) / 255.0
			darkness := shadowGrayCeil - float64(gray.GrayAt(x+b.Min.X, y+b.Min.Y).Y)/255.0
			contribution := clampF((1.0-footprint)*darkness*shadowScale, 0, shadowCap)
			alpha[i] = clampF(alpha[i]+contribution, 0, 255)
		}
	}

	out := m.Clone()
	if err := out.SetAlphaMask(grayAt(alpha, w, h, b)); err != nil {
		return raster.Image{}, fmt.Errorf("refine: %v", err)
	}
	return out, nil
}

func grayFromFloats(vals []float64, w, h int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i, v := range vals {
		g.Pix[i] = uint8(clampF(v, 0, 255))
	}
	return g
}

// grayAt builds a mask aligned with bounds b from row-major floats.
func grayAt(vals []float64, w, h int, b image.Rectangle) *image.Gray {
	g := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Pix[g.PixOffset(x+b.Min.X, y+b.Min.Y)] = uint8(clampF(vals[y*w+x], 0, 255))
		}
	}
	return g
}

func clampF(v, lo, hi float64) float64 {
	if v < lo { return lo }
	if v > hi { return hi }
	return v
}
