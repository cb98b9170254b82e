package compose

import(
	"fmt"
	"image"
	"log"

	"github.com/disintegration/imaging"

	"github.com/mockstage/mockstage/pkg/raster"
)

// Options steer one composite call. Zero value is not useful; start
// from NewOptions.
type Options struct {
	LightingHint    string // free text, e.g. "soft light from the left"
	AngleHint       string // free text, e.g. "low-angle shot"
	AddReflection   bool
	AddDepthOfField bool
	GrainSeed       int64
	Verbosity       int
	Tunables        Tunables
}

func NewOptions() Options {
	return Options{
		AddReflection:   true,
		AddDepthOfField: true,
		GrainSeed:       1,
		Tunables:        DefaultTunables(),
	}
}

// SmartComposite runs the full pipeline: analyze the scene, plan
// placement, match the product's lighting, optionally warp it toward
// the hinted camera angle, soften the far background, then layer
// shadow, product and reflection and polish the result.
//
// The product must carry (or be convertible to) an alpha channel;
// opaque pixels are product, transparent pixels are not. The output
// keeps the background's dimensions unless the polish stage has to
// upscale to meet its size floor. Stages share no state; independent
// calls may run fully in parallel.
func SmartComposite(product, background raster.Image, opts Options) (raster.Image, error) {
	if err := product.Validate(); err != nil {
		return raster.Image{}, fmt.Errorf("composite: product: %v", err)
	}
	if err := background.Validate(); err != nil {
		return raster.Image{}, fmt.Errorf("composite: background: %v", err)
	}

	// A 3-channel product is convertible: it composites as a fully
	// opaque rectangle. Cutouts should arrive 4-channel.
	product = product.WithAlpha()

	sig, err := Analyze(background, opts.Tunables)
	if err != nil {
		return raster.Image{}, fmt.Errorf("composite: %v", err)
	}
	if opts.Verbosity > 0 { log.Printf("composite: %s\n", sig) }
	if opts.Verbosity > 1 {
		log.Printf("composite: scene brightness histogram: %v\n", BrightnessHistogram(background))
	}

	plan, err := Plan(
		image.Point{product.Dx(), product.Dy()},
		image.Point{background.Dx(), background.Dy()},
		sig.CoverageHint, opts.Tunables)
	if err != nil {
		return raster.Image{}, fmt.Errorf("composite: %v", err)
	}
	if opts.Verbosity > 0 { log.Printf("composite: %s\n", plan) }

	scaled := raster.Image{
		Pix:      imaging.Resize(product.Pix, plan.Size.X, plan.Size.Y, imaging.Lanczos),
		Channels: 4,
	}

	lit, err := MatchLighting(scaled, background, opts.Tunables)
	if err != nil {
		return raster.Image{}, fmt.Errorf("composite: %v", err)
	}

	warped := Warp(lit, opts.AngleHint)

	canvas := background.WithAlpha()
	if opts.AddDepthOfField {
		canvas, err = ApplyDepthOfField(canvas, plan.Position, plan.Size, opts.Tunables)
		if err != nil {
			return raster.Image{}, fmt.Errorf("composite: %v", err)
		}
	}

	sp := DeriveShadowParams(sig, opts.LightingHint, plan.Size, opts.Tunables)
	if opts.Verbosity > 0 { log.Printf("composite: %s\n", sp) }

	silhouette, err := warped.AlphaMask()
	if err != nil {
		return raster.Image{}, fmt.Errorf("composite: %v", err)
	}
	shadow := RenderShadow(silhouette, sp.Opacity, sp.BlurRadius)
	canvas.Pix = imaging.Overlay(canvas.Pix, shadow.Pix, plan.Position.Add(sp.Offset), 1.0)

	canvas.Pix = imaging.Overlay(canvas.Pix, warped.Pix, plan.Position, 1.0)

	if opts.AddReflection && sig.SupportsReflection {
		refl, err := RenderReflection(warped, sig.ReflectionStrength, opts.Tunables.ReflectionHeight)
		if err != nil {
			return raster.Image{}, fmt.Errorf("composite: %v", err)
		}
		base := image.Point{plan.Position.X, plan.Position.Y + plan.Size.Y}
		canvas.Pix = imaging.Overlay(canvas.Pix, refl.Pix, base, 1.0)
	}

	out, err := Polish(canvas, sig, opts.GrainSeed, opts.Tunables)
	if err != nil {
		return raster.Image{}, fmt.Errorf("composite: %v", err)
	}
	out.Channels = background.Channels

	return out, nil
}
