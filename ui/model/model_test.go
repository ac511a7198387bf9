package model

import (
	"image"
	"image/color"
	"testing"
)

func TestLatencyModel_SummaryAndReset(t *testing.T) {
	m := NewLatencyModel()
	if s := m.Summary(); s.Count != 0 {
		t.Fatalf("empty model count=%d", s.Count)
	}
	for i := 1; i <= 100; i++ {
		m.Observe(float64(i))
	}
	s := m.Summary()
	if s.Count != 100 {
		t.Fatalf("count=%d want 100", s.Count)
	}
	if s.P50 < 49 || s.P50 > 51 {
		t.Fatalf("p50=%v want ~50", s.P50)
	}
	if s.P99 < 98 || s.P99 > 100.1 {
		t.Fatalf("p99=%v want ~99", s.P99)
	}
	if s.Max < 99.9 || s.Max > 100.1 {
		t.Fatalf("max=%v want ~100", s.Max)
	}
	m.Reset()
	if s := m.Summary(); s.Count != 0 {
		t.Fatalf("after reset count=%d", s.Count)
	}
}

func TestFrameModel_StoreCopies(t *testing.T) {
	m := NewFrameModel()
	if img, seq := m.Latest(); img != nil || seq != 0 {
		t.Fatalf("expected empty model")
	}
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	src.SetRGBA(1, 2, color.RGBA{R: 200, A: 255})
	m.Store(src)

	// Renderer reuses its buffer; the stored copy must not follow.
	src.SetRGBA(1, 2, color.RGBA{G: 10, A: 255})
	img, seq := m.Latest()
	if seq != 1 {
		t.Fatalf("seq=%d want 1", seq)
	}
	if got := img.RGBAAt(1, 2); got.R != 200 || got.G != 0 {
		t.Fatalf("stored pixel=%v", got)
	}
}

func TestFrameModel_SubImage(t *testing.T) {
	m := NewFrameModel()
	full := image.NewRGBA(image.Rect(0, 0, 10, 10))
	full.SetRGBA(5, 6, color.RGBA{B: 77, A: 255})
	sub := full.SubImage(image.Rect(4, 4, 8, 8)).(*image.RGBA)
	m.Store(sub)
	img, _ := m.Latest()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("bounds=%v", img.Bounds())
	}
	if got := img.RGBAAt(1, 2); got.B != 77 {
		t.Fatalf("pixel=%v want blue 77", got)
	}
}
