package presenter

import (
	"image"

	"github.com/soocke/voronoi-bench/ui/model"
)

// FrameView shows a rendered frame.
type FrameView interface{ UpdateFrame(img image.Image) }

// FramePresenter decouples the renderer's display callback from the preview.
// Display only copies the frame; Tick pushes it to the view when it changed,
// so preview encoding never lands inside a measured render.
type FramePresenter struct {
	model *model.FrameModel
	view  FrameView
	shown uint64
}

func NewFramePresenter(m *model.FrameModel, view FrameView) *FramePresenter {
	return &FramePresenter{model: m, view: view}
}

// Display matches globe.Display.
func (p *FramePresenter) Display(frame *image.RGBA) {
	if p == nil || p.model == nil {
		return
	}
	p.model.Store(frame)
}

// Tick pushes the latest frame if one arrived since the previous tick.
func (p *FramePresenter) Tick() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	img, seq := p.model.Latest()
	if img == nil || seq == p.shown {
		return
	}
	p.shown = seq
	p.view.UpdateFrame(img)
}
