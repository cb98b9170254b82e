// Package compose implements the scene-matching composite pipeline:
// analyze a background, plan product placement, match lighting,
// synthesize shadow and reflection, and polish the final frame.
package compose

import(
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

// Tunables holds the empirically tuned constants of the pipeline.
// The defaults are pinned values - regression tests assert them as
// observed behavior, they are not physical models. Override via yaml
// if you must, but expect the look of the output to drift.
type Tunables struct {
	// Background analysis
	BusyContrast         float64 `yaml:"busy_contrast"`          // above this a scene counts as busy
	CoverageBusy         float64 `yaml:"coverage_busy"`          // product coverage in a busy scene
	CoverageCalm         float64 `yaml:"coverage_calm"`          // product coverage in a calm scene
	ReflectionBand       float64 `yaml:"reflection_band"`        // bottom fraction examined for reflectivity
	ReflectionBrightness float64 `yaml:"reflection_brightness"`  // bottom band must be at least this bright
	ReflectionStrength   float64 `yaml:"reflection_strength"`    // opacity granted when the scene reflects

	// Placement
	AnchorY float64 `yaml:"anchor_y"` // product's vertical center sits at this fraction of scene height

	// Lighting match
	BrightnessBase   float64 `yaml:"brightness_base"`   // factor = base + scene brightness * range
	BrightnessRange  float64 `yaml:"brightness_range"`
	TemperatureShift float64 `yaml:"temperature_shift"` // warm/cool red-blue channel gain

	// Shadow synthesis
	ShadowBaseX          float64 `yaml:"shadow_base_x"`
	ShadowBaseYFrac      float64 `yaml:"shadow_base_y_frac"`     // of product height, floored at ShadowBaseX
	ShadowDXScale        float64 `yaml:"shadow_dx_scale"`
	ShadowDYScale        float64 `yaml:"shadow_dy_scale"`
	ShadowBlurMin        float64 `yaml:"shadow_blur_min"`
	ShadowBlurBase       float64 `yaml:"shadow_blur_base"`
	ShadowBlurContrast   float64 `yaml:"shadow_blur_contrast"`
	ShadowOpacityBase    float64 `yaml:"shadow_opacity_base"`
	ShadowOpacityScale   float64 `yaml:"shadow_opacity_scale"`
	ShadowOpacityCeiling float64 `yaml:"shadow_opacity_ceiling"`
	ReflectionHeight     float64 `yaml:"reflection_height"`      // fraction of product height

	// Depth of field
	DofBlur        float64 `yaml:"dof_blur"`
	DofPadding     float64 `yaml:"dof_padding"`      // focal box padding, fraction of product size
	DofMaskFeather float64 `yaml:"dof_mask_feather"`

	// Final polish
	PolishMinDim     int     `yaml:"polish_min_dim"`   // shorter output dimension floor
	UnsharpRadius    float64 `yaml:"unsharp_radius"`
	UnsharpAmount    float64 `yaml:"unsharp_amount"`   // 1.2 == 120%
	UnsharpThreshold int     `yaml:"unsharp_threshold"`
	GrainBase        float64 `yaml:"grain_base"`       // noise stdev = 255 * (base + contrast*scale)
	GrainContrast    float64 `yaml:"grain_contrast"`
}

func DefaultTunables() Tunables {
	return Tunables{
		BusyContrast:         0.18,
		CoverageBusy:         0.55,
		CoverageCalm:         0.65,
		ReflectionBand:       0.35,
		ReflectionBrightness: 0.55,
		ReflectionStrength:   0.35,

		AnchorY: 0.58,

		BrightnessBase:   0.7,
		BrightnessRange:  0.6,
		TemperatureShift: 0.05,

		ShadowBaseX:          8,
		ShadowBaseYFrac:      0.04,
		ShadowDXScale:        12,
		ShadowDYScale:        10,
		ShadowBlurMin:        10,
		ShadowBlurBase:       0.06,
		ShadowBlurContrast:   0.3,
		ShadowOpacityBase:    0.22,
		ShadowOpacityScale:   0.9,
		ShadowOpacityCeiling: 0.35,
		ReflectionHeight:     0.28,

		DofBlur:        2.8,
		DofPadding:     0.35,
		DofMaskFeather: 12,

		PolishMinDim:     1400,
		UnsharpRadius:    1.4,
		UnsharpAmount:    1.2,
		UnsharpThreshold: 3,
		GrainBase:        0.012,
		GrainContrast:    0.01,
	}
}

// LoadTunables reads overrides from a yaml file on top of the defaults.
func LoadTunables(filename string) (Tunables, error) {
	t := DefaultTunables()

	contents, err := os.ReadFile(filename)
	if err != nil {
		return t, fmt.Errorf("tunables read '%s': %v", filename, err)
	}
	if err := yaml.Unmarshal(contents, &t); err != nil {
		return t, fmt.Errorf("tunables parse '%s': %v", filename, err)
	}
	return t, nil
}

func (t Tunables)AsYaml() string {
	b, err := yaml.Marshal(t)
	if err != nil {
		log.Fatalf("Can't marshal tunables yaml: %v\n", err)
	}
	return string(b)
}
