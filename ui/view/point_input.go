package view

import (
	"log/slog"
	"strconv"
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointInput is the point count entry. It commits on the Apply button or the
// Return key, which is when subscribers are told about a change.
type PointInput struct {
	logger   *slog.Logger
	widget   *TextWidget
	applyBtn *ButtonWidget
	handlers []func(raw string)
}

func newPointInput(logger *slog.Logger) *PointInput {
	return &PointInput{logger: logger}
}

// Build creates the label, entry and Apply button on row.
func (v *PointInput) Build(parent *FrameWidget, row, initial int) {
	lbl := Label(Txt("Points"), Anchor("w"))
	Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	v.widget = Text(Height(1), Width(12))
	Grid(v.widget, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	v.widget.Delete("1.0", END)
	v.widget.Insert("1.0", strconv.Itoa(initial))
	// KeyRelease so the newline the Text class binding inserts is already present and can be stripped.
	Bind(v.widget, "<KeyRelease-Return>", Command(v.commit))
	v.applyBtn = Button(Txt("Apply"), Command(v.commit))
	Grid(v.applyBtn, In(parent), Row(row), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
}

// Value returns the current entry text.
func (v *PointInput) Value() string {
	if v == nil || v.widget == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(v.widget.Get("1.0", END), ""))
}

// OnChange subscribes fn to committed edits.
func (v *PointInput) OnChange(fn func(raw string)) {
	if v == nil || fn == nil {
		return
	}
	v.handlers = append(v.handlers, fn)
}

func (v *PointInput) commit() {
	raw := v.Value()
	v.widget.Delete("1.0", END)
	v.widget.Insert("1.0", raw)
	if v.logger != nil {
		v.logger.Debug("point count committed", "raw", raw)
	}
	for _, h := range v.handlers {
		h(raw)
	}
}
