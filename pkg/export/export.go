// Package export renders a finished mockup into the sizes and
// formats the outside world wants: platform presets, aspect-
// preserving resize onto a fixed canvas, transparency flattening for
// JPEG, and PNG/JPEG/WebP encoding.
package export

import(
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/deepteams/webp"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mockstage/mockstage/pkg/raster"
)

// A Preset is a named target size/format for a platform.
type Preset struct {
	Name            string
	Width           int
	Height          int
	Format          string // png, jpeg, webp
	Quality         int    // for lossy formats
	BackgroundColor string // hex; replaces transparency on jpeg exports
}

// Presets is the platform preset table, immutable after init.
var Presets = map[string]Preset{
	// Instagram
	"instagram-post":       {Name: "Instagram Post", Width: 1080, Height: 1080, Format: "png", Quality: 95},
	"instagram-story":      {Name: "Instagram Story", Width: 1080, Height: 1920, Format: "png", Quality: 95},
	"instagram-reel-cover": {Name: "Instagram Reel Cover", Width: 1080, Height: 1920, Format: "png", Quality: 95},

	// Amazon
	"amazon-main":      {Name: "Amazon Main", Width: 1000, Height: 1000, Format: "png", Quality: 95, BackgroundColor: "#FFFFFF"},
	"amazon-lifestyle": {Name: "Amazon Lifestyle", Width: 1500, Height: 1500, Format: "png", Quality: 95},
	"amazon-zoom":      {Name: "Amazon Zoom", Width: 2000, Height: 2000, Format: "png", Quality: 95},

	// Website
	"website-hero":      {Name: "Website Hero", Width: 1920, Height: 1080, Format: "png", Quality: 95},
	"website-thumbnail": {Name: "Website Thumbnail", Width: 400, Height: 400, Format: "png", Quality: 95},
	"website-banner":    {Name: "Website Banner", Width: 1200, Height: 400, Format: "png", Quality: 95},

	// Social media
	"facebook-ad":   {Name: "Facebook Ad", Width: 1200, Height: 628, Format: "png", Quality: 95},
	"facebook-post": {Name: "Facebook Post", Width: 1200, Height: 630, Format: "png", Quality: 95},
	"twitter-post":  {Name: "Twitter Post", Width: 1200, Height: 675, Format: "png", Quality: 95},
	"linkedin-post": {Name: "LinkedIn Post", Width: 1200, Height: 627, Format: "png", Quality: 95},
	"pinterest":     {Name: "Pinterest", Width: 1000, Height: 1500, Format: "png", Quality: 95},

	// Print
	"print-a4":     {Name: "Print A4 (300dpi)", Width: 2480, Height: 3508, Format: "png", Quality: 100},
	"print-letter": {Name: "Print Letter (300dpi)", Width: 2550, Height: 3300, Format: "png", Quality: 100},

	// E-commerce
	"shopify-product": {Name: "Shopify Product", Width: 2048, Height: 2048, Format: "png", Quality: 95},
	"etsy-listing":    {Name: "Etsy Listing", Width: 2000, Height: 2000, Format: "png", Quality: 95},
	"ebay-gallery":    {Name: "eBay Gallery", Width: 1600, Height: 1600, Format: "png", Quality: 95},
}

// A Request says how to export. Preset (if set) fills in the size and
// format; explicit fields override it.
type Request struct {
	Preset          string
	Width           int
	Height          int
	Format          string
	Quality         int
	BackgroundColor string
}

// Export renders the image per the request and returns encoded bytes.
func Export(im raster.Image, req Request) ([]byte, error) {
	if err := im.Validate(); err != nil {
		return nil, fmt.Errorf("export: %v", err)
	}

	if req.Preset != "" {
		p, ok := Presets[req.Preset]
		if !ok {
			return nil, fmt.Errorf("export: no preset named '%s'", req.Preset)
		}
		if req.Width == 0   { req.Width = p.Width }
		if req.Height == 0  { req.Height = p.Height }
		if req.Format == "" { req.Format = p.Format }
		if req.Quality == 0 { req.Quality = p.Quality }
		if req.BackgroundColor == "" { req.BackgroundColor = p.BackgroundColor }
	}
	if req.Format == ""  { req.Format = "png" }
	if req.Quality == 0  { req.Quality = 95 }

	img := im.Pix
	if req.Width > 0 && req.Height > 0 {
		// Cutouts keep transparent letterbox bands; opaque sources get
		// white ones, since they have no transparency to preserve.
		canvas := color.NRGBA{0, 0, 0, 0}
		if !im.HasAlpha() {
			canvas = color.NRGBA{255, 255, 255, 255}
		}
		img = SmartResize(img, req.Width, req.Height, canvas)
	}

	format := strings.ToLower(req.Format)

	// JPEG can't carry transparency; flatten onto a background color.
	if format == "jpg" || format == "jpeg" {
		flat, err := Flatten(img, req.BackgroundColor)
		if err != nil {
			return nil, fmt.Errorf("export: %v", err)
		}
		img = flat
	}

	buf := &bytes.Buffer{}
	switch format {
	case "png":
		if err := png.Encode(buf, img); err != nil {
			return nil, fmt.Errorf("export png: %v", err)
		}
	case "jpg", "jpeg":
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: req.Quality}); err != nil {
			return nil, fmt.Errorf("export jpeg: %v", err)
		}
	case "webp":
		opts := webp.DefaultOptions()
		opts.Quality = float32(req.Quality)
		if err := webp.Encode(buf, img, opts); err != nil {
			return nil, fmt.Errorf("export webp: %v", err)
		}
	default:
		return nil, fmt.Errorf("export: unsupported format '%s'", req.Format)
	}

	return buf.Bytes(), nil
}

// SmartResize fits the image within the target dimensions preserving
// aspect ratio, centered on a canvas of exactly the target size filled
// with the given color.
func SmartResize(img *image.NRGBA, targetW, targetH int, canvasColor color.NRGBA) *image.NRGBA {
	srcW, srcH := img.Bounds().Dx(), img.Bounds().Dy()

	imgRatio := float64(srcW) / float64(srcH)
	targetRatio := float64(targetW) / float64(targetH)

	var newW, newH int
	if imgRatio > targetRatio {
		// Wider than the target - fit to width
		newW = targetW
		newH = int(float64(targetW) / imgRatio)
	} else {
		newH = targetH
		newW = int(float64(targetH) * imgRatio)
	}
	if newW < 1 { newW = 1 }
	if newH < 1 { newH = 1 }

	resized := imaging.Resize(img, newW, newH, imaging.Lanczos)
	canvas := imaging.New(targetW, targetH, canvasColor)
	return imaging.Paste(canvas, resized, image.Point{(targetW - newW) / 2, (targetH - newH) / 2})
}

// Flatten composites the image over a solid background color,
// discarding transparency. hexColor defaults to white.
func Flatten(img *image.NRGBA, hexColor string) (*image.NRGBA, error) {
	if hexColor == "" {
		hexColor = "#FFFFFF"
	}
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return nil, fmt.Errorf("flatten: bad color '%s': %v", hexColor, err)
	}

	r, g, b := c.RGB255()
	canvas := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.NRGBA{r, g, b, 255})
	return imaging.Overlay(canvas, img, image.Point{}, 1.0), nil
}
