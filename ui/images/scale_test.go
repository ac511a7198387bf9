package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFitSize(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{960, 600, 480, 480, 480, 300},
		{960, 600, 2000, 2000, 960, 600},
		{600, 960, 480, 480, 300, 480},
		{100, 1, 10, 10, 10, 1},
		{10, 10, 0, 0, 1, 1},
	}
	for _, c := range cases {
		w, h := FitSize(image.Rect(0, 0, c.w, c.h), c.maxW, c.maxH)
		if w != c.wantW || h != c.wantH {
			t.Errorf("FitSize(%dx%d in %dx%d)=%dx%d want %dx%d", c.w, c.h, c.maxW, c.maxH, w, h, c.wantW, c.wantH)
		}
	}
}

func TestScaleToFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	out := ScaleToFit(src, 20, 20)
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 10 {
		t.Fatalf("bounds=%v want 20x10", out.Bounds())
	}
	r, _, _, a := out.At(10, 5).RGBA()
	if r>>8 != 200 || a>>8 != 255 {
		t.Fatalf("uniform colour not preserved: r=%d a=%d", r>>8, a>>8)
	}
	if same := ScaleToFit(src, 100, 100); same != image.Image(src) {
		t.Fatalf("image that fits should be returned unchanged")
	}
	if ScaleToFit(nil, 10, 10) != nil {
		t.Fatalf("nil source should yield nil")
	}
}

func TestEncodePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	data := EncodePNG(src)
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != src.Bounds() {
		t.Fatalf("bounds=%v", img.Bounds())
	}
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image should encode to nil")
	}
}
