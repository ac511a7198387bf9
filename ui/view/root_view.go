package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/voronoi-bench/assets"
	"github.com/soocke/voronoi-bench/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level window layout.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Input   *PointInput
	Session SessionStats
	Preview FramePreview

	// Widgets
	StateLabel      *TLabelWidget
	PointCountLabel *LabelWidget
	PerfLabel       *TLabelWidget
	StatusLabel     *LabelWidget
	PercentileLabel *TLabelWidget
}

// UI is the view surface presenters depend on.
type UI interface {
	SetStatusText(text string)
	SetPerfText(text string)
	SetPointCountText(text string)
	SetStateLabel(text string)
	SetPercentileText(text string)
	SetSession(run, total time.Duration)
	UpdateFrame(img image.Image)
}

var _ UI = (*RootView)(nil)

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger, Input: newPointInput(logger)}
}

// Build constructs the layout with the entry prefilled to initialPoints.
func (rv *RootView) Build(initialPoints int, onExit func(), onToggleTheme func()) {
	if rv == nil {
		return
	}
	theme.InitStyles()

	// Row 0: logo, state label, buttons
	logo := Label(Image(NewPhoto(Data(assets.GlobePNG))), Borderwidth(0))
	Grid(logo, Row(0), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	rv.StateLabel = TLabel(Style(theme.StyleStateLabel), Txt("Loop: stopped"))
	Grid(rv.StateLabel, Row(0), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(3), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	themeBtn := TButton(Style(theme.StyleApplyButton), Txt("Light/Dark"), Command(onToggleTheme))
	Grid(themeBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := TButton(Style(theme.StyleExitButton), Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: point input and run durations
	controls := Frame()
	Grid(controls, Row(1), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.Input.Build(controls, 0, initialPoints)
	rv.Session = NewSessionStats(controls, 0, 3)

	// Rows 2-5: text outputs
	rv.PointCountLabel = Label(Txt(""), Anchor("w"))
	Grid(rv.PointCountLabel, Row(2), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"))
	rv.PerfLabel = TLabel(Style(theme.StylePerfLabel), Txt(""))
	Grid(rv.PerfLabel, Row(3), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	rv.PercentileLabel = TLabel(Style(theme.StyleMutedLabel), Txt("Percentiles: -"))
	Grid(rv.PercentileLabel, Row(4), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"))
	rv.StatusLabel = Label(Txt(""), Anchor("w"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StatusLabel, Row(5), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	// Row 6: frame preview
	rv.Preview = NewFramePreview(6, 4)
}

func (rv *RootView) SetStatusText(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

func (rv *RootView) SetPerfText(text string) {
	if rv != nil && rv.PerfLabel != nil {
		rv.PerfLabel.Configure(Txt(text))
	}
}

func (rv *RootView) SetPointCountText(text string) {
	if rv != nil && rv.PointCountLabel != nil {
		rv.PointCountLabel.Configure(Txt(text))
	}
}

func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

func (rv *RootView) SetPercentileText(text string) {
	if rv != nil && rv.PercentileLabel != nil {
		rv.PercentileLabel.Configure(Txt(text))
	}
}

// SetSession updates the run and total durations.
func (rv *RootView) SetSession(run, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetRun(run)
	rv.Session.SetTotal(total)
}

// UpdateFrame proxies to the frame preview.
func (rv *RootView) UpdateFrame(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdateFrame(img)
	}
}

// ResetFrame clears the frame preview.
func (rv *RootView) ResetFrame() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}
