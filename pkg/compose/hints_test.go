package compose

import(
	"testing"
)

func TestParseLightDirection(t *testing.T) {
	tests := []struct {
		hint  string
		horiz Direction
		vert  Direction
	}{
		{"", DirNone, DirNone},
		{"soft light from the left", DirLeft, DirNone},
		{"RIGHT side lighting", DirRight, DirNone},
		{"light from the top", DirNone, DirTop},
		{"bottom glow", DirNone, DirBottom},
		{"top left window light", DirLeft, DirTop},
		{"dramatic spotlight", DirNone, DirNone},
	}
	for _, tt := range tests {
		horiz, vert := ParseLightDirection(tt.hint)
		if horiz != tt.horiz || vert != tt.vert {
			t.Errorf("ParseLightDirection(%q) = (%s,%s), want (%s,%s)",
				tt.hint, horiz, vert, tt.horiz, tt.vert)
		}
	}
}

func TestLightOffset(t *testing.T) {
	tests := []struct {
		d    Direction
		want float64
	}{
		{DirLeft, -0.8},
		{DirRight, 0.8},
		{DirTop, -0.4},
		{DirBottom, 0.6},
		{DirNone, 0},
	}
	for _, tt := range tests {
		if got := tt.d.lightOffset(); got != tt.want {
			t.Errorf("%s offset = %f, want %f", tt.d, got, tt.want)
		}
	}
}

func TestParseTilt(t *testing.T) {
	tests := []struct {
		hint   string
		shearX float64
		shearY float64
	}{
		{"", 0, 0},
		{"straight on", 0, 0},
		{"top-down shot", 0, -0.08},
		{"low shot", 0, 0.05},
		{"45 degree", 0.08, 0},
		// Compound: "low-angle" matches both "low" and "angle".
		{"low-angle shot", 0.08, 0.05},
		// "side" resolves the vertical tilt first, so the stronger
		// horizontal shear only fires when "angle"/"45" are absent.
		{"side view", 0.12, 0.05},
		{"side angle", 0.08, 0.05},
	}
	for _, tt := range tests {
		shearX, shearY := ParseTilt(tt.hint)
		if shearX != tt.shearX || shearY != tt.shearY {
			t.Errorf("ParseTilt(%q) = (%f,%f), want (%f,%f)",
				tt.hint, shearX, shearY, tt.shearX, tt.shearY)
		}
	}
}
