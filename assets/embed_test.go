package assets

import "testing"

func TestGlobeImage(t *testing.T) {
	img, err := GlobeImage()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Fatalf("bounds=%v want 48x48", b)
	}
}
