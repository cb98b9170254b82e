// Package raster holds the pixel-buffer types the compositing
// pipeline passes around. Every image is stored as a non-premultiplied
// NRGBA buffer with an explicit channel count, so the decision to
// treat the alpha channel as meaningful is visible in the value rather
// than inferred at each stage.
package raster

import(
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// An Image is a width x height grid of pixels. Channels is 3 for an
// opaque image and 4 when the alpha channel carries meaning. The
// backing buffer always has four bytes per pixel; a 3-channel image
// simply keeps alpha pegged at 0xff.
type Image struct {
	Pix      *image.NRGBA
	Channels int
}

// New returns a transparent (4-channel) or black (3-channel) image.
func New(w, h, channels int) (Image, error) {
	if w <= 0 || h <= 0 {
		return Image{}, fmt.Errorf("raster new: zero-area image %dx%d", w, h)
	}
	if channels != 3 && channels != 4 {
		return Image{}, fmt.Errorf("raster new: bad channel count %d", channels)
	}

	im := Image{Pix: image.NewNRGBA(image.Rect(0, 0, w, h)), Channels: channels}
	if channels == 3 {
		for i := 3; i < len(im.Pix.Pix); i += 4 {
			im.Pix.Pix[i] = 0xff
		}
	}
	return im, nil
}

// FromImage converts any stdlib image into a raster Image with the
// given channel count. Conversion to NRGBA goes through imaging so
// that YCbCr etc. decode sources are handled uniformly.
func FromImage(img image.Image, channels int) Image {
	im := Image{Pix: imaging.Clone(img), Channels: channels}
	if channels == 3 {
		im = im.ToOpaque()
	}
	return im
}

func (im Image)Bounds() image.Rectangle { return im.Pix.Bounds() }
func (im Image)Dx() int                 { return im.Pix.Bounds().Dx() }
func (im Image)Dy() int                 { return im.Pix.Bounds().Dy() }
func (im Image)HasAlpha() bool          { return im.Channels == 4 }

func (im Image)String() string {
	return fmt.Sprintf("raster[%dx%d, %dch]", im.Dx(), im.Dy(), im.Channels)
}

// Validate fails fast on the malformed inputs no stage can coerce.
func (im Image)Validate() error {
	if im.Pix == nil {
		return fmt.Errorf("raster: nil pixel buffer")
	}
	if im.Dx() <= 0 || im.Dy() <= 0 {
		return fmt.Errorf("raster: zero-area image %dx%d", im.Dx(), im.Dy())
	}
	if im.Channels != 3 && im.Channels != 4 {
		return fmt.Errorf("raster: bad channel count %d", im.Channels)
	}
	return nil
}

func (im Image)Clone() Image {
	return Image{Pix: imaging.Clone(im.Pix), Channels: im.Channels}
}

// WithAlpha returns a 4-channel copy. A previously opaque image comes
// back fully opaque; its alpha just becomes meaningful from here on.
func (im Image)WithAlpha() Image {
	out := im.Clone()
	out.Channels = 4
	return out
}

// ToOpaque returns a 3-channel copy with alpha pegged at 0xff. Any
// translucency is discarded, not composited; callers that want
// flattening should paste onto a background first.
func (im Image)ToOpaque() Image {
	out := Image{Pix: imaging.Clone(im.Pix), Channels: 3}
	for i := 3; i < len(out.Pix.Pix); i += 4 {
		out.Pix.Pix[i] = 0xff
	}
	return out
}

// AlphaMask copies the alpha channel out as a grayscale mask,
// 255 = fully opaque/foreground.
func (im Image)AlphaMask() (*image.Gray, error) {
	if !im.HasAlpha() {
		return nil, fmt.Errorf("raster: alpha mask of a %d-channel image", im.Channels)
	}

	b := im.Bounds()
	mask := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			mask.SetGray(x, y, color.Gray{Y: im.Pix.NRGBAAt(x, y).A})
		}
	}
	return mask, nil
}

// SetAlphaMask overwrites the alpha channel from a grayscale mask of
// the same dimensions.
func (im Image)SetAlphaMask(mask *image.Gray) error {
	if !im.HasAlpha() {
		return fmt.Errorf("raster: set alpha on a %d-channel image", im.Channels)
	}
	if !mask.Bounds().Eq(im.Bounds()) {
		return fmt.Errorf("raster: mask bounds %v != image bounds %v", mask.Bounds(), im.Bounds())
	}

	b := im.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := im.Pix.NRGBAAt(x, y)
			px.A = mask.GrayAt(x, y).Y
			im.Pix.SetNRGBA(x, y, px)
		}
	}
	return nil
}

// OpaqueBounds returns the bounding box of pixels with any opacity at
// all - the product footprint within its transparent canvas. A fully
// transparent (or 3-channel) image yields the whole bounds.
func OpaqueBounds(im Image) image.Rectangle {
	if !im.HasAlpha() {
		return im.Bounds()
	}

	b := im.Bounds()
	found := false
	box := image.Rectangle{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if im.Pix.NRGBAAt(x, y).A == 0 {
				continue
			}
			p := image.Point{x, y}
			if !found {
				box = image.Rectangle{Min: p, Max: p.Add(image.Point{1, 1})}
				found = true
			} else {
				box = GrowRectangle(box, p)
			}
		}
	}

	if !found { return im.Bounds() }
	return box
}

func GrowRectangle(r image.Rectangle, p image.Point) image.Rectangle {
	if p.X < r.Min.X {
		r.Min.X = p.X
	} else if p.X >= r.Max.X {
		r.Max.X = p.X + 1
	}

	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	} else if p.Y >= r.Max.Y {
		r.Max.Y = p.Y + 1
	}

	return r
}

// Crop returns the sub-image under r as a fresh buffer.
func (im Image)Crop(r image.Rectangle) Image {
	return Image{Pix: imaging.Crop(im.Pix, r), Channels: im.Channels}
}
