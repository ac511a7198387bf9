package bench

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/voronoi-bench/domain/sampling"
)

// LoopControl is the part of the Controller the parameter handler drives.
type LoopControl interface {
	Restart() error
	Cancel()
}

// ParameterHandler applies validated point-count changes: it resets the
// window, reconfigures the renderer and restarts the loop, in that order.
type ParameterHandler struct {
	logger    *slog.Logger
	window    *sampling.Window
	renderer  Renderer
	loop      LoopControl
	sink      Sink
	maxPoints int
	current   int
	listeners []ChangeListener
}

// NewParameterHandler returns a handler whose current point count is initial.
// maxPoints bounds accepted values; zero means unbounded.
func NewParameterHandler(logger *slog.Logger, window *sampling.Window, renderer Renderer, loop LoopControl, sink Sink, initial, maxPoints int) *ParameterHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ParameterHandler{
		logger:    logger,
		window:    window,
		renderer:  renderer,
		loop:      loop,
		sink:      sink,
		maxPoints: maxPoints,
		current:   initial,
	}
}

// AddListener registers a change observer.
func (h *ParameterHandler) AddListener(l ChangeListener) { h.listeners = append(h.listeners, l) }

// PointCount returns the last accepted point count.
func (h *ParameterHandler) PointCount() int { return h.current }

// Handle parses raw and applies it. Rejected input leaves the window, the
// renderer and the running loop untouched.
func (h *ParameterHandler) Handle(raw string) error {
	n, err := ParsePointCount(raw, h.maxPoints)
	if err != nil {
		h.logger.Warn("point count rejected", "raw", raw, "error", err)
		h.sink.SetError(err)
		h.notify(0, err)
		return err
	}

	h.window.Reset()
	h.sink.SetPointCountLabel(n)
	h.sink.SetStatusText(CalculatingText)
	if err := h.renderer.Update(n); err != nil {
		// The renderer may be half-configured; no frame may run against it.
		h.loop.Cancel()
		h.sink.SetPointCountLabel(h.current)
		uerr := &UpdateError{PointCount: n, Err: err}
		h.logger.Error("renderer update failed", "point_count", n, "error", err)
		h.sink.SetError(uerr)
		h.notify(n, uerr)
		return uerr
	}
	prev := h.current
	h.current = n
	h.logger.Info("point count changed", "from", prev, "to", n)
	h.notify(n, nil)
	return h.loop.Restart()
}

func (h *ParameterHandler) notify(n int, err error) {
	for _, l := range h.listeners {
		l(n, err)
	}
}

// ParsePointCount validates raw as a positive base-10 integer no larger than
// max (when max > 0).
func ParsePointCount(raw string, max int) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &InvalidParameterError{Raw: raw, Reason: "empty value"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		if _, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return 0, &InvalidParameterError{Raw: raw, Reason: "not an integer"}
		}
		return 0, &InvalidParameterError{Raw: raw, Reason: "not a number"}
	}
	if n <= 0 {
		return 0, &InvalidParameterError{Raw: raw, Reason: "must be positive"}
	}
	if max > 0 && n > max {
		return 0, &InvalidParameterError{Raw: raw, Reason: fmt.Sprintf("exceeds maximum %d", max)}
	}
	return n, nil
}
