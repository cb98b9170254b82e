package main

import(
	"flag"
	"log"
	"os"

	"github.com/mockstage/mockstage/pkg/compose"
	"github.com/mockstage/mockstage/pkg/export"
	"github.com/mockstage/mockstage/pkg/imgio"
	"github.com/mockstage/mockstage/pkg/matte"
	"github.com/mockstage/mockstage/pkg/raster"
)

var(
	fVerbosity int
	fProduct string
	fBackground string
	fOutput string
	fLighting string
	fAngle string
	fReflection bool
	fDof bool
	fSeed int64
	fTrim bool
	fConfig string
	fPreset string
	fQuality int
	fDebugDump string

	fRefine bool
	fMatte string
	fOriginal string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")

	flag.StringVar(&fProduct, "product", "", "product cutout image (PNG with alpha, ideally)")
	flag.StringVar(&fBackground, "background", "", "background scene image")
	flag.StringVar(&fOutput, "o", "out.png", "output filename (extension picks the format)")
	flag.StringVar(&fLighting, "lighting", "", "lighting hint, e.g. 'soft light from the left'")
	flag.StringVar(&fAngle, "angle", "", "camera angle hint, e.g. 'low-angle shot'")
	flag.BoolVar(&fReflection, "reflection", true, "add a reflection when the scene supports one")
	flag.BoolVar(&fDof, "dof", true, "soften the background away from the product")
	flag.Int64Var(&fSeed, "seed", 1, "grain seed, for reproducible output")
	flag.BoolVar(&fTrim, "trim", false, "crop the product to its opaque footprint before compositing")
	flag.StringVar(&fConfig, "config", "", "yaml file of tunable overrides")
	flag.StringVar(&fPreset, "preset", "", "export preset, e.g. 'instagram-post' (see pkg/export)")
	flag.IntVar(&fQuality, "quality", 0, "encode quality for lossy formats (preset default if 0)")
	flag.StringVar(&fDebugDump, "debugdump", "", "write a placement debug PNG here")

	flag.BoolVar(&fRefine, "refine", false, "refine a matte's alpha instead of compositing")
	flag.StringVar(&fMatte, "matte", "", "matte image to refine (needs -refine)")
	flag.StringVar(&fOriginal, "original", "", "un-segmented original behind the matte (needs -refine)")
	flag.Parse()

	log.Printf("mockstage starting\n")
}

func main() {
	if fRefine {
		refine()
		return
	}
	composite()
}

func composite() {
	if fProduct == "" || fBackground == "" {
		log.Fatal("need both -product and -background")
	}

	opts := compose.NewOptions()
	opts.LightingHint = fLighting
	opts.AngleHint = fAngle
	opts.AddReflection = fReflection
	opts.AddDepthOfField = fDof
	opts.GrainSeed = fSeed
	opts.Verbosity = fVerbosity

	if fConfig != "" {
		t, err := compose.LoadTunables(fConfig)
		if err != nil {
			log.Fatal(err)
		}
		opts.Tunables = t
	}
	if opts.Verbosity > 0 {
		log.Printf("Final tunables:-\n\n%s\n", opts.Tunables.AsYaml())
	}

	product, err := imgio.Load(fProduct)
	if err != nil {
		log.Fatal(err)
	}
	background, err := imgio.Load(fBackground)
	if err != nil {
		log.Fatal(err)
	}

	if fTrim {
		product = product.Crop(raster.OpaqueBounds(product))
		if fVerbosity > 0 { log.Printf("trimmed product to %s\n", product) }
	}

	out, err := compose.SmartComposite(product, background, opts)
	if err != nil {
		log.Fatal(err)
	}

	if fDebugDump != "" {
		dumpPlacement(product, background, opts)
	}

	if fPreset != "" {
		writePreset(out)
		return
	}
	if err := imgio.Save(fOutput, out, fQuality); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%s)\n", fOutput, out)
}

// dumpPlacement re-derives the plan the compositor used and renders
// the debug overlay. Cheap enough to just run the analysis twice.
func dumpPlacement(product, background raster.Image, opts compose.Options) {
	sig, err := compose.Analyze(background, opts.Tunables)
	if err != nil {
		log.Fatal(err)
	}
	plan, err := compose.Plan(
		product.Bounds().Size(), background.Bounds().Size(),
		sig.CoverageHint, opts.Tunables)
	if err != nil {
		log.Fatal(err)
	}
	sp := compose.DeriveShadowParams(sig, opts.LightingHint, plan.Size, opts.Tunables)
	if err := compose.DumpPlacement(background, plan, sp, opts.Tunables, fDebugDump); err != nil {
		log.Fatal(err)
	}
}

func writePreset(out raster.Image) {
	b, err := export.Export(out, export.Request{Preset: fPreset, Quality: fQuality})
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(fOutput, b, 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%d bytes, preset %s)\n", fOutput, len(b), fPreset)
}

func refine() {
	if fMatte == "" || fOriginal == "" {
		log.Fatal("need both -matte and -original with -refine")
	}

	m, err := imgio.Load(fMatte)
	if err != nil {
		log.Fatal(err)
	}
	original, err := imgio.Load(fOriginal)
	if err != nil {
		log.Fatal(err)
	}

	out, err := matte.Refine(m, original)
	if err != nil {
		log.Fatal(err)
	}
	if err := imgio.Save(fOutput, out, fQuality); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%s)\n", fOutput, out)
}
