package compose

import(
	"fmt"
	"image"
	"math"

	"github.com/skypies/util/histogram"
	"gonum.org/v1/gonum/stat"

	"github.com/mockstage/mockstage/pkg/raster"
)

// SceneSignals is the numeric description of a background's lighting
// and surface character. Computed once per scene, then consumed by
// the planner, lighting matcher, shadow synthesizer and polish stage.
// Immutable once computed.
type SceneSignals struct {
	Brightness         float64 // mean pixel brightness, 0-1
	Contrast           float64 // stdev of brightness, 0-1
	LightDX            float64 // brightness-weighted light direction, [-1,1]
	LightDY            float64
	SupportsReflection bool
	ReflectionStrength float64 // 0-1
	CoverageHint       float64 // fraction of scene the product should occupy
}

func (sig SceneSignals)String() string {
	return fmt.Sprintf("signals[bri:%.3f con:%.3f light:(%+.2f,%+.2f) refl:%v/%.2f cov:%.2f]",
		sig.Brightness, sig.Contrast, sig.LightDX, sig.LightDY,
		sig.SupportsReflection, sig.ReflectionStrength, sig.CoverageHint)
}

// Analyze extracts SceneSignals from a background image. Pure and
// deterministic: identical pixels yield identical signals.
func Analyze(background raster.Image, t Tunables) (SceneSignals, error) {
	if err := background.Validate(); err != nil {
		return SceneSignals{}, fmt.Errorf("analyze: %v", err)
	}

	b := background.Bounds()
	w, h := b.Dx(), b.Dy()

	// Per-pixel brightness = mean of the RGB channels, alpha ignored.
	// We keep per-column and per-row running sums so the directional
	// means below don't need a second pass over the pixels.
	bri := make([]float64, 0, w*h)
	colSums := make([]float64, w)
	rowSums := make([]float64, h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := background.Pix.NRGBAAt(x, y)
			v := (float64(px.R) + float64(px.G) + float64(px.B)) / 3.0
			bri = append(bri, v)
			colSums[x-b.Min.X] += v
			rowSums[y-b.Min.Y] += v
		}
	}

	sig := SceneSignals{
		Brightness: stat.Mean(bri, nil) / 255.0,
		Contrast:   stat.PopStdDev(bri, nil) / 255.0,
	}

	// Light direction: the brightness-weighted mean of normalized
	// pixel positions. A scene brighter on its right yields DX > 0.
	sig.LightDX = weightedPosition(colSums)
	sig.LightDY = weightedPosition(rowSums)

	// Reflection heuristic: a bright, even bottom band reads as a
	// glossy floor worth mirroring the product into.
	bottom := bri[(h-bandRows(h, t.ReflectionBand))*w:]
	if stat.Mean(bottom, nil)/255.0 > t.ReflectionBrightness && sig.Contrast < t.BusyContrast {
		sig.SupportsReflection = true
		sig.ReflectionStrength = t.ReflectionStrength
	}

	// Busier scenes get smaller product coverage to avoid clutter.
	if sig.Contrast > t.BusyContrast {
		sig.CoverageHint = t.CoverageBusy
	} else {
		sig.CoverageHint = t.CoverageCalm
	}

	return sig, nil
}

// weightedPosition returns the weighted mean of positions spaced
// linearly over [-1,1], weighted by the brightness sums per position.
func weightedPosition(sums []float64) float64 {
	n := len(sums)
	if n < 2 { return 0 }

	total := 0.0
	for _, s := range sums {
		total += s
	}
	if total == 0 { return 0 } // pitch black scene has no direction

	pos := make([]float64, n)
	for i := range pos {
		pos[i] = -1.0 + 2.0*float64(i)/float64(n-1)
	}
	return stat.Mean(pos, sums)
}

// bandRows is how many bottom rows fall inside the reflection band;
// exactly the rows at y >= (1-band)*h, always at least one.
func bandRows(h int, band float64) int {
	rows := h - int(math.Ceil(float64(h)*(1.0-band)))
	if rows < 1 { rows = 1 }
	if rows > h { rows = h }
	return rows
}

// BrightnessHistogram buckets scene brightness for verbose dumps, in
// the same shape the rest of the tooling expects.
func BrightnessHistogram(im raster.Image) histogram.Histogram {
	hist := histogram.Histogram{NumBuckets: 256, ValMin: 0, ValMax: 256}

	b := im.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := im.Pix.NRGBAAt(x, y)
			v := (int(px.R) + int(px.G) + int(px.B)) / 3
			hist.Add(histogram.ScalarVal(v))
		}
	}
	return hist
}

// focalBox is the padded box around the product's footprint that the
// depth-of-field stage keeps sharp.
func focalBox(pos image.Point, size image.Point, pad float64, bounds image.Rectangle) image.Rectangle {
	padX := int(float64(size.X) * pad)
	padY := int(float64(size.Y) * pad)
	box := image.Rect(pos.X-padX, pos.Y-padY, pos.X+size.X+padX, pos.Y+size.Y+padY)
	return box.Intersect(bounds)
}
