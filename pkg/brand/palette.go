// Package brand extracts a brand color palette from a logo image:
// quantize, count, merge perceptually-close colors, and assign
// primary/secondary/accent roles by prominence and contrast.
package brand

import(
	"fmt"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mockstage/mockstage/pkg/raster"
)

// A Swatch is one extracted color and the fraction of opaque logo
// pixels it accounts for.
type Swatch struct {
	Color colorful.Color
	Ratio float64
}

func (s Swatch)Hex() string { return s.Color.Hex() }

// A Palette assigns roles to the extracted swatches.
type Palette struct {
	Primary   string
	Secondary string
	Accent    string
	Swatches  []Swatch
}

const (
	sampleDim   = 64   // logos are downsampled to at most this before counting
	quantStep   = 32   // channel quantization bin size
	mergeDist   = 0.12 // CIE Lab distance under which swatches merge
	minAlpha    = 128  // transparent logo pixels don't vote
)

// ExtractPalette returns up to n dominant colors of the logo, most
// prominent first.
func ExtractPalette(logo raster.Image, n int) ([]Swatch, error) {
	if err := logo.Validate(); err != nil {
		return nil, fmt.Errorf("palette: %v", err)
	}
	if n < 1 { n = 1 }

	small := imaging.Fit(logo.Pix, sampleDim, sampleDim, imaging.Linear)

	counts := map[[3]uint8]int{}
	total := 0
	b := small.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := small.NRGBAAt(x, y)
			if logo.HasAlpha() && px.A < minAlpha {
				continue
			}
			key := [3]uint8{quantize(px.R), quantize(px.G), quantize(px.B)}
			counts[key]++
			total++
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("palette: logo is fully transparent")
	}

	swatches := make([]Swatch, 0, len(counts))
	for key, count := range counts {
		swatches = append(swatches, Swatch{
			Color: colorful.Color{R: float64(key[0]) / 255.0, G: float64(key[1]) / 255.0, B: float64(key[2]) / 255.0},
			Ratio: float64(count) / float64(total),
		})
	}
	sort.Slice(swatches, func(i, j int) bool {
		if swatches[i].Ratio != swatches[j].Ratio {
			return swatches[i].Ratio > swatches[j].Ratio
		}
		return swatches[i].Hex() < swatches[j].Hex()
	})

	// Merge perceptually-close swatches into their bigger sibling.
	merged := []Swatch{}
	for _, s := range swatches {
		absorbed := false
		for i := range merged {
			if merged[i].Color.DistanceLab(s.Color) < mergeDist {
				merged[i].Ratio += s.Ratio
				absorbed = true
				break
			}
		}
		if !absorbed {
			merged = append(merged, s)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Ratio > merged[j].Ratio })

	if len(merged) > n {
		merged = merged[:n]
	}
	return merged, nil
}

// AssignRoles picks primary (most prominent), secondary (next swatch
// with real contrast against the primary) and accent (most saturated
// of the rest) from an extracted palette.
func AssignRoles(swatches []Swatch) Palette {
	p := Palette{Swatches: swatches}
	if len(swatches) == 0 {
		return p
	}

	p.Primary = swatches[0].Hex()

	for _, s := range swatches[1:] {
		if s.Color.DistanceLab(swatches[0].Color) > 0.25 {
			p.Secondary = s.Hex()
			break
		}
	}

	bestChroma := -1.0
	for _, s := range swatches[1:] {
		if s.Hex() == p.Secondary {
			continue
		}
		_, sat, _ := s.Color.Hsv()
		if sat > bestChroma {
			bestChroma = sat
			p.Accent = s.Hex()
		}
	}

	return p
}

// quantize snaps a channel to the center of its bin, so counting
// tolerates gradients and anti-aliasing.
func quantize(v uint8) uint8 {
	bin := int(v) / quantStep
	center := bin*quantStep + quantStep/2
	if center > 255 { center = 255 }
	return uint8(center)
}
