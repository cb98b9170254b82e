package compose

import(
	"strings"
)

// Hints arrive as free text ("soft light from the left", "low-angle
// shot"). All of the substring matching lives here, so the compound
// and overlapping matches the keywords allow are pinned down in one
// place rather than scattered through the pipeline.

type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirTop
	DirBottom
)

func (d Direction)String() string {
	switch d {
	case DirLeft:   return "left"
	case DirRight:  return "right"
	case DirTop:    return "top"
	case DirBottom: return "bottom"
	}
	return "none"
}

// ParseLightDirection picks the horizontal and vertical light
// keywords out of a hint. Either axis may come back DirNone; when a
// hint names both axes ("top left") both are reported.
func ParseLightDirection(hint string) (horiz, vert Direction) {
	hint = strings.ToLower(hint)

	switch {
	case strings.Contains(hint, "left"):  horiz = DirLeft
	case strings.Contains(hint, "right"): horiz = DirRight
	}

	switch {
	case strings.Contains(hint, "top"):    vert = DirTop
	case strings.Contains(hint, "bottom"): vert = DirBottom
	}

	return horiz, vert
}

// lightOffsets are the pinned per-keyword shadow direction overrides.
func (d Direction)lightOffset() float64 {
	switch d {
	case DirLeft:   return -0.8
	case DirRight:  return 0.8
	case DirTop:    return -0.4
	case DirBottom: return 0.6
	}
	return 0
}

// ParseTilt maps a camera-angle hint onto a pair of shear factors.
// Matching is substring based and deliberately compound: "low-angle"
// resolves both a vertical tilt ("low") and a horizontal one
// ("angle"). A hint matching nothing returns (0, 0), which the warp
// stage treats as a no-op.
func ParseTilt(hint string) (shearX, shearY float64) {
	hint = strings.ToLower(hint)

	switch {
	case strings.Contains(hint, "top"):
		shearY = -0.08
	case strings.Contains(hint, "low"), strings.Contains(hint, "side"):
		shearY = 0.05
	}

	switch {
	case strings.Contains(hint, "45"), strings.Contains(hint, "angle"):
		shearX = 0.08
	case strings.Contains(hint, "side"):
		shearX = 0.12
	}

	return shearX, shearY
}
