package compose

import(
	"fmt"
	"math"

	"github.com/mockstage/mockstage/pkg/raster"
)

// MatchLighting adjusts the product's brightness and color
// temperature toward the scene it will be pasted into. The product's
// alpha channel is never modified by this stage; tests pin it
// byte-identical.
func MatchLighting(product raster.Image, background raster.Image, t Tunables) (raster.Image, error) {
	if !product.HasAlpha() {
		return raster.Image{}, fmt.Errorf("match lighting: product has no alpha channel")
	}
	if err := background.Validate(); err != nil {
		return raster.Image{}, fmt.Errorf("match lighting: %v", err)
	}

	meanR, meanG, meanB := meanRGB(background)
	brightness := (meanR + meanG + meanB) / 3.0 / 255.0

	factor := t.BrightnessBase + brightness*t.BrightnessRange

	// Warm scenes pull the product warmer, cool scenes cooler. The
	// red/blue gains fold into the brightness factor so each channel
	// is touched exactly once.
	gainR, gainB := 1.0-t.TemperatureShift, 1.0+t.TemperatureShift
	if meanR > meanB {
		gainR, gainB = 1.0+t.TemperatureShift, 1.0-t.TemperatureShift
	}

	out := product.Clone()
	pix := out.Pix.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = clamp255(float64(pix[i+0]) * factor * gainR)
		pix[i+1] = clamp255(float64(pix[i+1]) * factor)
		pix[i+2] = clamp255(float64(pix[i+2]) * factor * gainB)
		// pix[i+3] deliberately untouched
	}

	return out, nil
}

func meanRGB(im raster.Image) (r, g, b float64) {
	pix := im.Pix.Pix
	n := float64(len(pix) / 4)
	for i := 0; i < len(pix); i += 4 {
		r += float64(pix[i+0])
		g += float64(pix[i+1])
		b += float64(pix[i+2])
	}
	return r / n, g / n, b / n
}

func clamp255(v float64) uint8 {
	v = math.Round(v)
	if v < 0 { return 0 }
	if v > 255 { return 255 }
	return uint8(v)
}
