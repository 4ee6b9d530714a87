package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func TestFit(t *testing.T) {
	cases := []struct {
		name                   string
		srcW, srcH, tgtW, tgtH int
		want                   image.Rectangle
	}{
		{"wide shrinks to width", 2000, 1000, 800, 600, image.Rect(0, 100, 800, 500)},
		{"tall shrinks to height", 500, 2000, 800, 600, image.Rect(325, 0, 475, 600)},
		{"exact fit", 800, 600, 800, 600, image.Rect(0, 0, 800, 600)},
		{"small is centered not enlarged", 100, 50, 800, 600, image.Rect(350, 275, 450, 325)},
		{"square into square", 3000, 3000, 1200, 1200, image.Rect(0, 0, 1200, 1200)},
	}
	for _, c := range cases {
		if got := Fit(c.srcW, c.srcH, c.tgtW, c.tgtH); got != c.want {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}

func TestFitDegenerate(t *testing.T) {
	if got := Fit(0, 100, 800, 600); got != (image.Rectangle{}) {
		t.Fatalf("zero width: %v", got)
	}
	if got := Fit(100, 100, 0, 0); got != (image.Rectangle{}) {
		t.Fatalf("zero target: %v", got)
	}
	// Extreme aspect ratios still produce at least a 1px band.
	r := Fit(10000, 1, 100, 100)
	if r.Dy() < 1 {
		t.Fatalf("height=%d", r.Dy())
	}
}

func TestResizeLetterboxes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 400; x++ {
			src.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	dst := Resize(src, 100, 100)
	if got := dst.Bounds(); got.Dx() != 100 || got.Dy() != 100 {
		t.Fatalf("bounds=%v", got)
	}
	// The top band is letterbox white, the center carries the image.
	if r, g, b, _ := dst.At(50, 2).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Fatalf("top band not white: %d %d %d", r>>8, g>>8, b>>8)
	}
	if r, _, _, _ := dst.At(50, 50).RGBA(); r>>8 < 150 {
		t.Fatalf("center not painted: r=%d", r>>8)
	}
}

func TestEncodeJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	data, err := EncodeJPEG(img, 0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 10 {
		t.Fatalf("dims=%dx%d", cfg.Width, cfg.Height)
	}
}
