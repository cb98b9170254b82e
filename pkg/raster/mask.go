package raster

// Grayscale mask operations used by the matte refiner and the
// shadow/depth-of-field stages.

import(
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// BlurMask Gaussian-blurs a grayscale mask. The sigma convention
// matches the rest of the pipeline: radius == standard deviation.
func BlurMask(mask *image.Gray, radius float64) *image.Gray {
	if radius <= 0 {
		return CloneMask(mask)
	}

	// imaging only blurs NRGBA; a gray input comes back with all three
	// color channels equal, so reading R restores the mask.
	blurred := imaging.Blur(mask, radius)
	out := image.NewGray(mask.Bounds())
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetGray(x, y, color.Gray{Y: blurred.NRGBAAt(x-b.Min.X, y-b.Min.Y).R})
		}
	}
	return out
}

// DilateMask applies a max filter with a size x size square kernel,
// growing bright regions. size must be odd.
func DilateMask(mask *image.Gray, size int) *image.Gray {
	if size < 3 { return CloneMask(mask) }

	half := size / 2
	b := mask.Bounds()
	out := image.NewGray(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			max := uint8(0)
			for dy := -half; dy <= half; dy++ {
				for dx := -half; dx <= half; dx++ {
					px, py := x+dx, y+dy
					if px < b.Min.X || px >= b.Max.X || py < b.Min.Y || py >= b.Max.Y {
						continue
					}
					if v := mask.GrayAt(px, py).Y; v > max {
						max = v
					}
				}
			}
			out.SetGray(x, y, color.Gray{Y: max})
		}
	}
	return out
}

// Grayscale returns the luminosity of the image's RGB channels using
// the usual Rec.601 weights, ignoring alpha.
func Grayscale(im Image) *image.Gray {
	b := im.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := im.Pix.NRGBAAt(x, y)
			lum := 0.299*float64(px.R) + 0.587*float64(px.G) + 0.114*float64(px.B)
			out.SetGray(x, y, color.Gray{Y: uint8(lum + 0.5)})
		}
	}
	return out
}

func CloneMask(mask *image.Gray) *image.Gray {
	out := image.NewGray(mask.Bounds())
	copy(out.Pix, mask.Pix)
	return out
}
