package compose

import(
	"fmt"
	"image"
	"math"
)

// A PlacementPlan says how big the product should be and where its
// top-left corner lands in the scene. Computed once per composite.
type PlacementPlan struct {
	Scale    float64     // applied to the product before pasting; may shrink, never overgrows coverage
	Position image.Point // top-left pixel offset in the background
	Size     image.Point // product dimensions after scaling
}

func (p PlacementPlan)String() string {
	return fmt.Sprintf("plan[x%.3f at (%d,%d), %dx%d]", p.Scale, p.Position.X, p.Position.Y, p.Size.X, p.Size.Y)
}

// Plan computes scale and anchor for a product of the given size in
// the given background. The product is scaled to the largest size
// that keeps both dimensions within coverage * background, centered
// horizontally, and anchored so its vertical center sits at
// AnchorY * background height (then clamped to fit).
func Plan(productSize, backgroundSize image.Point, coverage float64, t Tunables) (PlacementPlan, error) {
	if productSize.X <= 0 || productSize.Y <= 0 {
		return PlacementPlan{}, fmt.Errorf("plan: zero-area product %v", productSize)
	}
	if backgroundSize.X <= 0 || backgroundSize.Y <= 0 {
		return PlacementPlan{}, fmt.Errorf("plan: zero-area background %v", backgroundSize)
	}
	if coverage <= 0 || coverage > 1 {
		return PlacementPlan{}, fmt.Errorf("plan: coverage %f outside (0,1]", coverage)
	}

	widthRatio := float64(backgroundSize.X) * coverage / float64(productSize.X)
	heightRatio := float64(backgroundSize.Y) * coverage / float64(productSize.Y)
	scale := math.Min(widthRatio, heightRatio)

	scaled := image.Point{
		X: int(math.Round(float64(productSize.X) * scale)),
		Y: int(math.Round(float64(productSize.Y) * scale)),
	}
	if scaled.X < 1 { scaled.X = 1 }
	if scaled.Y < 1 { scaled.Y = 1 }

	x := (backgroundSize.X - scaled.X) / 2
	y := int(math.Round(t.AnchorY*float64(backgroundSize.Y) - float64(scaled.Y)/2.0))

	// Clamp so the product fully fits within the background.
	if y < 0 { y = 0 }
	if max := backgroundSize.Y - scaled.Y; y > max { y = max }

	return PlacementPlan{Scale: scale, Position: image.Point{x, y}, Size: scaled}, nil
}
