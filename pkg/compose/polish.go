package compose

import(
	"fmt"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/mockstage/mockstage/pkg/raster"
)

// Polish is the final pass over a composited frame: upscale small
// outputs so the shorter dimension meets the floor, sharpen with an
// unsharp mask, and add a little matching grain so product and
// generated background share one texture. Grain is the only random
// element in the whole pipeline; it takes an explicit seed so a
// composite is reproducible byte for byte.
func Polish(composited raster.Image, sig SceneSignals, seed int64, t Tunables) (raster.Image, error) {
	if err := composited.Validate(); err != nil {
		return raster.Image{}, fmt.Errorf("polish: %v", err)
	}

	out := composited

	// Upscale so the shorter dimension is at least the floor,
	// preserving aspect ratio. Lanczos, since we're growing.
	w, h := out.Dx(), out.Dy()
	if shorter := min(w, h); shorter < t.PolishMinDim && shorter > 0 {
		scale := float64(t.PolishMinDim) / float64(shorter)
		nw := int(math.Round(float64(w) * scale))
		nh := int(math.Round(float64(h) * scale))
		out = raster.Image{
			Pix:      imaging.Resize(out.Pix, nw, nh, imaging.Lanczos),
			Channels: out.Channels,
		}
	} else {
		out = out.Clone()
	}

	out = unsharpMask(out, t.UnsharpRadius, t.UnsharpAmount, t.UnsharpThreshold)

	// Grain stdev scales with scene contrast; busy scenes hide more
	// noise, so they get a bit more of it to blend residual seams.
	sigma := 255.0 * (t.GrainBase + sig.Contrast*t.GrainContrast)
	addGrain(out, sigma, seed)

	return out, nil
}

// unsharpMask sharpens RGB by adding back amount * (original - blurred)
// wherever the difference exceeds the threshold. Alpha passes through.
func unsharpMask(im raster.Image, radius, amount float64, threshold int) raster.Image {
	blurred := imaging.Blur(im.Pix, radius)

	out := im
	pix := out.Pix.Pix
	soft := blurred.Pix
	for i := 0; i < len(pix); i += 4 {
		for c := 0; c < 3; c++ {
			diff := int(pix[i+c]) - int(soft[i+c])
			if diff < -threshold || diff > threshold {
				pix[i+c] = clamp255(float64(pix[i+c]) + float64(diff)*amount)
			}
		}
	}
	return out
}

// addGrain perturbs RGB channels with Gaussian noise of the given
// stdev, in place. Alpha is untouched.
func addGrain(im raster.Image, sigma float64, seed int64) {
	if sigma <= 0 { return }

	rng := rand.New(rand.NewSource(seed))
	pix := im.Pix.Pix
	for i := 0; i < len(pix); i += 4 {
		for c := 0; c < 3; c++ {
			pix[i+c] = clamp255(float64(pix[i+c]) + rng.NormFloat64()*sigma)
		}
	}
}
