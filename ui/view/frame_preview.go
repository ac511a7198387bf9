package view

import (
	"image"

	"github.com/soocke/voronoi-bench/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	maxPreviewW = 480
	maxPreviewH = 300
)

// FramePreview shows the most recent rendered frame in a label.
type FramePreview interface {
	UpdateFrame(img image.Image)
	Reset()
}

type framePreview struct {
	label     *LabelWidget
	prevPhoto *Img // disposed before replacement so old pixel data is released
}

// NewFramePreview grids a placeholder preview spanning the given columns.
func NewFramePreview(row, columns int) FramePreview {
	photo := NewPhoto(Data(placeholderPNG()))
	lbl := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(lbl, Row(row), Column(0), Columnspan(columns), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &framePreview{label: lbl, prevPhoto: photo}
}

func (v *framePreview) UpdateFrame(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	v.show(images.EncodePNG(images.ScaleToFit(img, maxPreviewW, maxPreviewH)))
}

func (v *framePreview) Reset() {
	if v.label == nil {
		return
	}
	v.show(placeholderPNG())
}

func (v *framePreview) show(pngBytes []byte) {
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}

func placeholderPNG() []byte {
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, maxPreviewW, maxPreviewH)))
}
