package compose

import(
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/mockstage/mockstage/pkg/raster"
)

// DumpPlacement renders the placement plan over the background and
// writes it out as a PNG - the product box, the padded focal box, and
// the shadow offset vector. Handy when a composite lands somewhere
// surprising.
func DumpPlacement(background raster.Image, plan PlacementPlan, sp ShadowParams, t Tunables, filename string) error {
	dc := gg.NewContextForImage(background.Pix)

	// Product footprint
	dc.SetRGB(0, 1, 0)
	dc.SetLineWidth(2)
	dc.DrawRectangle(float64(plan.Position.X), float64(plan.Position.Y), float64(plan.Size.X), float64(plan.Size.Y))
	dc.Stroke()

	// Focal box kept sharp by the depth-of-field stage
	box := focalBox(plan.Position, plan.Size, t.DofPadding, background.Bounds())
	dc.SetRGB(0, 0.5, 1)
	dc.DrawRectangle(float64(box.Min.X), float64(box.Min.Y), float64(box.Dx()), float64(box.Dy()))
	dc.Stroke()

	// Shadow offset, drawn from the product center
	center := image.Point{plan.Position.X + plan.Size.X/2, plan.Position.Y + plan.Size.Y/2}
	dc.SetRGB(1, 0, 0)
	dc.DrawLine(float64(center.X), float64(center.Y),
		float64(center.X+sp.Offset.X*4), float64(center.Y+sp.Offset.Y*4))
	dc.Stroke()

	dc.SetRGB(1, 1, 1)
	dc.DrawString(fmt.Sprintf("%s %s", plan, sp), 20, 30)

	return dc.SavePNG(filename)
}
