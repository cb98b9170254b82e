package compose

import(
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/mockstage/mockstage/pkg/raster"
)

// ApplyDepthOfField softens the background away from the product: a
// padded focal box around the product's footprint stays sharp, and
// everything outside it blends toward a Gaussian-blurred copy. The
// mask is zero over the focal box and feathered at its edges, so the
// sharp-to-soft transition has no visible seam.
func ApplyDepthOfField(background raster.Image, productPos, productSize image.Point, t Tunables) (raster.Image, error) {
	if err := background.Validate(); err != nil {
		return raster.Image{}, fmt.Errorf("depth of field: %v", err)
	}

	b := background.Bounds()
	blurred := imaging.Blur(background.Pix, t.DofBlur)

	box := focalBox(productPos, productSize, t.DofPadding, b)

	mask := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if image.Pt(x, y).In(box) {
				continue
			}
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	mask = raster.BlurMask(mask, t.DofMaskFeather)

	// Blend: mask 0 keeps the sharp original, 255 picks up the blur.
	out := background.Clone()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := int(mask.GrayAt(x, y).Y)
			if m == 0 {
				continue
			}
			sharp := out.Pix.NRGBAAt(x, y)
			soft := blurred.NRGBAAt(x-b.Min.X, y-b.Min.Y)
			out.Pix.SetNRGBA(x, y, color.NRGBA{
				R: lerpByte(sharp.R, soft.R, m),
				G: lerpByte(sharp.G, soft.G, m),
				B: lerpByte(sharp.B, soft.B, m),
				A: sharp.A,
			})
		}
	}

	return out, nil
}

func lerpByte(a, b uint8, m int) uint8 {
	return uint8((int(a)*(255-m) + int(b)*m + 127) / 255)
}
