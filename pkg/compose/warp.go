package compose

import(
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/mockstage/mockstage/pkg/raster"
)

// Warp applies a mild affine shear to the product based on a
// camera-angle hint, approximating the perspective of the described
// shot. The shear is anchored at the image center, dimensions are
// preserved, and areas exposed by the shear fill with transparency.
// A hint resolving to zero shear returns the input unchanged - no
// resampling pass for nothing.
func Warp(product raster.Image, angleHint string) raster.Image {
	shearX, shearY := ParseTilt(angleHint)
	if shearX == 0 && shearY == 0 {
		return product
	}

	b := product.Bounds()
	cx := float64(b.Min.X+b.Max.X) / 2.0
	cy := float64(b.Min.Y+b.Max.Y) / 2.0
	m := raster.ShearAbout(shearX, shearY, cx, cy)

	dst := image.NewNRGBA(b)
	draw.CatmullRom.Transform(dst, f64.Aff3(m), product.Pix, b, draw.Src, nil)

	return raster.Image{Pix: dst, Channels: product.Channels}
}
