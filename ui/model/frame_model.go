package model

import (
	"image"
)

// FrameModel keeps a private copy of the most recently rendered frame.
// The renderer reuses its buffers, so frames must be copied on Store.
type FrameModel struct {
	buf *image.RGBA
	seq uint64
}

func NewFrameModel() *FrameModel { return &FrameModel{} }

// Store copies img into the model and bumps the sequence number.
func (m *FrameModel) Store(img *image.RGBA) {
	if m == nil || img == nil {
		return
	}
	b := img.Bounds()
	if m.buf == nil || m.buf.Bounds().Size() != b.Size() {
		m.buf = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	if img.Stride == m.buf.Stride && b.Min == (image.Point{}) {
		copy(m.buf.Pix, img.Pix)
	} else {
		w := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
			copy(m.buf.Pix[y*m.buf.Stride:y*m.buf.Stride+w], src[:w])
		}
	}
	m.seq++
}

// Latest returns the last stored frame and its sequence number (0 if none).
func (m *FrameModel) Latest() (*image.RGBA, uint64) {
	if m == nil {
		return nil, 0
	}
	return m.buf, m.seq
}
