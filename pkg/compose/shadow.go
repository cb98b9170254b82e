package compose

import(
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/mockstage/mockstage/pkg/raster"
)

// ShadowParams describes the drop shadow for one composite: where it
// falls relative to the product, how soft it is, and how dark.
type ShadowParams struct {
	Offset     image.Point
	BlurRadius float64 // pixels, >= 0
	Opacity    float64 // 0-1
}

func (sp ShadowParams)String() string {
	return fmt.Sprintf("shadow[off:(%d,%d) blur:%.1f op:%.2f]", sp.Offset.X, sp.Offset.Y, sp.BlurRadius, sp.Opacity)
}

// DeriveShadowParams turns scene signals (plus an optional lighting
// hint) into shadow geometry for a product of the given scaled size.
// A hint naming any direction keyword overrides the analyzer's light
// direction outright.
func DeriveShadowParams(sig SceneSignals, lightingHint string, productSize image.Point, t Tunables) ShadowParams {
	baseX := t.ShadowBaseX
	baseY := math.Max(t.ShadowBaseX, t.ShadowBaseYFrac*float64(productSize.Y))

	dx, dy := sig.LightDX, sig.LightDY
	if horiz, vert := ParseLightDirection(lightingHint); horiz != DirNone || vert != DirNone {
		dx, dy = horiz.lightOffset(), vert.lightOffset()
	}

	minDim := math.Min(float64(productSize.X), float64(productSize.Y))

	return ShadowParams{
		Offset: image.Point{
			X: int(math.Round(baseX + dx*t.ShadowDXScale)),
			Y: int(math.Round(baseY + dy*t.ShadowDYScale)),
		},
		BlurRadius: math.Max(t.ShadowBlurMin, minDim*(t.ShadowBlurBase+sig.Contrast*t.ShadowBlurContrast)),
		Opacity:    t.ShadowOpacityBase + math.Min(sig.Contrast*t.ShadowOpacityScale, t.ShadowOpacityCeiling),
	}
}

// RenderShadow produces the shadow sprite: the product silhouette,
// blurred, scaled by opacity, as pure black pixels. Same dimensions
// as the product.
func RenderShadow(productAlpha *image.Gray, opacity, blur float64) raster.Image {
	soft := raster.BlurMask(productAlpha, blur)

	b := soft.Bounds()
	sprite := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := clamp255(float64(soft.GrayAt(x, y).Y) * opacity)
			sprite.SetNRGBA(x, y, color.NRGBA{0, 0, 0, a})
		}
	}
	return raster.Image{Pix: sprite, Channels: 4}
}

// RenderReflection produces a mirrored sprite of the product's base:
// flipped vertically, cropped to heightFrac of the product height,
// faded top-to-bottom from opacity down to nothing, and intersected
// with the product's own silhouette.
func RenderReflection(product raster.Image, opacity, heightFrac float64) (raster.Image, error) {
	if !product.HasAlpha() {
		return raster.Image{}, fmt.Errorf("reflection: product has no alpha channel")
	}

	cropH := int(float64(product.Dy()) * heightFrac)
	if cropH < 1 { cropH = 1 }

	flipped := imaging.FlipV(product.Pix)
	sprite := imaging.Crop(flipped, image.Rect(0, 0, product.Dx(), cropH))

	b := sprite.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		fade := 255.0 * (1.0 - float64(y-b.Min.Y)/float64(cropH)) * opacity
		for x := b.Min.X; x < b.Max.X; x++ {
			px := sprite.NRGBAAt(x, y)
			px.A = clamp255(fade * float64(px.A) / 255.0)
			sprite.SetNRGBA(x, y, px)
		}
	}

	return raster.Image{Pix: sprite, Channels: 4}, nil
}
