package imgio

import(
	"image/color"
	"path/filepath"
	"testing"

	"github.com/mockstage/mockstage/pkg/raster"
)

func testImage(w, h int) raster.Image {
	im, err := raster.New(w, h, 4)
	if err != nil {
		panic(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.Pix.SetNRGBA(x, y, color.NRGBA{uint8(x * 10), uint8(y * 10), 40, 255})
		}
	}
	return im
}

func TestPNGRoundtrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "rt.png")
	im := testImage(20, 10)
	im.Pix.SetNRGBA(3, 3, color.NRGBA{10, 20, 30, 77})

	if err := Save(filename, im, 0); err != nil {
		t.Fatal(err)
	}
	back, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}

	if back.Dx() != 20 || back.Dy() != 10 {
		t.Fatalf("dims = %dx%d, want 20x10", back.Dx(), back.Dy())
	}
	if !back.HasAlpha() {
		t.Error("PNG loaded without alpha")
	}
	if got := back.Pix.NRGBAAt(3, 3); got != (color.NRGBA{10, 20, 30, 77}) {
		t.Errorf("pixel = %v, want (10,20,30,77)", got)
	}
}

func TestJPEGLoadsOpaque(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "rt.jpg")
	if err := Save(filename, testImage(20, 10), 95); err != nil {
		t.Fatal(err)
	}
	back, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}
	if back.HasAlpha() {
		t.Error("JPEG loaded with a meaningful alpha channel")
	}
	if back.Dx() != 20 || back.Dy() != 10 {
		t.Errorf("dims = %dx%d, want 20x10", back.Dx(), back.Dy())
	}
}

func TestTIFFRoundtrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "rt.tiff")
	im := testImage(12, 12)
	if err := Save(filename, im, 0); err != nil {
		t.Fatal(err)
	}
	back, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}
	if got := back.Pix.NRGBAAt(5, 5); got != im.Pix.NRGBAAt(5, 5) {
		t.Errorf("pixel = %v, want %v", got, im.Pix.NRGBAAt(5, 5))
	}
}

func TestWebPRoundtrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "rt.webp")
	if err := Save(filename, testImage(32, 32), 90); err != nil {
		t.Fatal(err)
	}
	back, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}
	if back.Dx() != 32 || back.Dy() != 32 {
		t.Errorf("dims = %dx%d, want 32x32", back.Dx(), back.Dy())
	}
}

func TestUnsupportedExtensions(t *testing.T) {
	if _, err := Load("product.bmp"); err == nil {
		t.Error("bmp load accepted")
	}
	if err := Save(filepath.Join(t.TempDir(), "x.bmp"), testImage(4, 4), 0); err == nil {
		t.Error("bmp save accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestWritePNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dump.png")
	if err := WritePNG(testImage(8, 8).Pix, filename); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(filename); err != nil {
		t.Fatal(err)
	}
}
