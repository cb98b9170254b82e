// Package imgio reads and writes the raster formats collaborators
// hand us: PNG, JPEG, TIFF and WebP, selected by file extension.
// JPEGs are normalized to their EXIF orientation on load, so the
// pipeline never sees a sideways product shot.
package imgio

import(
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepteams/webp"
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/tiff"

	"github.com/mockstage/mockstage/pkg/raster"
)

// Load decodes the file into a raster Image. Formats that can carry
// alpha (PNG, TIFF, WebP) come back 4-channel; JPEG comes back
// 3-channel.
func Load(filename string) (raster.Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return raster.Image{}, fmt.Errorf("open+r '%s': %v", filename, err)
	}
	defer reader.Close()

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {

	case ".png":
		img, err := png.Decode(reader)
		if err != nil {
			return raster.Image{}, fmt.Errorf("png loading '%s': %v", filename, err)
		}
		return raster.FromImage(img, 4), nil

	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(reader)
		if err != nil {
			return raster.Image{}, fmt.Errorf("jpeg loading '%s': %v", filename, err)
		}
		img = normalizeOrientation(img, filename)
		return raster.FromImage(img, 3), nil

	case ".tif", ".tiff":
		img, err := tiff.Decode(reader)
		if err != nil {
			return raster.Image{}, fmt.Errorf("tiff loading '%s': %v", filename, err)
		}
		return raster.FromImage(img, 4), nil

	case ".webp":
		img, err := webp.Decode(reader)
		if err != nil {
			return raster.Image{}, fmt.Errorf("webp loading '%s': %v", filename, err)
		}
		return raster.FromImage(img, 4), nil
	}

	return raster.Image{}, fmt.Errorf("load '%s': unsupported extension '%s'", filename, ext)
}

// normalizeOrientation rotates/flips a JPEG per its EXIF orientation
// tag. Files without EXIF (or without the tag) pass through as-is.
func normalizeOrientation(img image.Image, filename string) image.Image {
	reader, err := os.Open(filename)
	if err != nil {
		return img
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return img
	}
	tag, err := ex.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return img
	}

	switch orientation {
	case 2: return imaging.FlipH(img)
	case 3: return imaging.Rotate180(img)
	case 4: return imaging.FlipV(img)
	case 5: return imaging.Transpose(img)
	case 6: return imaging.Rotate270(img)
	case 7: return imaging.Transverse(img)
	case 8: return imaging.Rotate90(img)
	}
	return img
}

// Save encodes by extension. quality applies to the lossy formats.
func Save(filename string, im raster.Image, quality int) error {
	if err := im.Validate(); err != nil {
		return fmt.Errorf("save '%s': %v", filename, err)
	}
	if quality <= 0 { quality = 95 }

	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	defer writer.Close()

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return png.Encode(writer, im.Pix)
	case ".jpg", ".jpeg":
		return jpeg.Encode(writer, im.Pix, &jpeg.Options{Quality: quality})
	case ".tif", ".tiff":
		return tiff.Encode(writer, im.Pix, &tiff.Options{Compression: tiff.Deflate})
	case ".webp":
		opts := webp.DefaultOptions()
		opts.Quality = float32(quality)
		return webp.Encode(writer, im.Pix, opts)
	}

	return fmt.Errorf("save '%s': unsupported extension '%s'", filename, ext)
}

// WritePNG is the quick debug-dump path.
func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}
