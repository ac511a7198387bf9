// Package globe renders random sites on a rotating orthographic globe. It is
// the workload the benchmark measures. No tessellation is computed.
package globe

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand/v2"
	"time"

	"golang.org/x/image/vector"
)

const (
	siteRadius   = 2.5
	outlineWidth = 1.5
	// Fraction of the smaller canvas dimension covered by the globe.
	globeScale = 0.45
)

// Site is a point on the sphere in degrees.
type Site struct {
	Lon float64
	Lat float64
}

// Display receives each finished frame. It must not retain the image.
type Display func(frame *image.RGBA)

// Options configures a Renderer.
type Options struct {
	Width       int
	Height      int
	MsPerDegree float64 // rotation speed; 150 turns the globe one degree per 150ms
	Seed        int64   // 0 seeds from the clock
	Clock       func() time.Time
	Display     Display // nil renders off-screen
}

// Renderer projects sites orthographically and rasterizes them.
type Renderer struct {
	opts   Options
	rng    *rand.Rand
	sites  []Site
	start  time.Time
	raster *vector.Rasterizer
	frames uint64
}

// New creates a renderer with pointCount random sites.
func New(pointCount int, opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.MsPerDegree <= 0 {
		opts.MsPerDegree = 150
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	seed := uint64(opts.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := &Renderer{
		opts:   opts,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		start:  opts.Clock(),
		raster: vector.NewRasterizer(opts.Width, opts.Height),
	}
	if err := r.Update(pointCount); err != nil {
		return nil, err
	}
	return r, nil
}

// Update regenerates the site set in place.
func (r *Renderer) Update(pointCount int) error {
	if pointCount <= 0 {
		return fmt.Errorf("point count must be positive, got %d", pointCount)
	}
	sites := r.sites[:0]
	if cap(sites) < pointCount {
		sites = make([]Site, 0, pointCount)
	}
	for i := 0; i < pointCount; i++ {
		sites = append(sites, Site{
			Lon: 360 * r.rng.Float64(),
			Lat: 180*r.rng.Float64() - 90,
		})
	}
	r.sites = sites
	return nil
}

// Sites returns the current site set. The slice is owned by the renderer.
func (r *Renderer) Sites() []Site { return r.sites }

// Frames returns the number of frames rendered.
func (r *Renderer) Frames() uint64 { return r.frames }

// Rotation returns the globe rotation in degrees at t.
func (r *Renderer) Rotation(t time.Time) float64 {
	return float64(t.Sub(r.start).Milliseconds()) / r.opts.MsPerDegree
}

// Render draws one frame and hands it to the display.
func (r *Renderer) Render() error {
	if len(r.sites) == 0 {
		return errors.New("no sites to render")
	}
	rect := image.Rect(0, 0, r.opts.Width, r.opts.Height)
	frame := acquireFrame(rect)
	defer recycleFrame(frame)

	draw.Draw(frame, rect, image.NewUniform(colorBackground), image.Point{}, draw.Src)

	cx := float64(r.opts.Width) / 2
	cy := float64(r.opts.Height) / 2
	radius := globeScale * math.Min(float64(r.opts.Width), float64(r.opts.Height))
	r.fillCircle(frame, cx, cy, radius+outlineWidth, colorOutline)
	r.fillCircle(frame, cx, cy, radius, colorSphere)

	rot := r.Rotation(r.opts.Clock())
	for i, s := range r.sites {
		x, y, visible := project(s, rot, cx, cy, radius)
		if !visible {
			continue
		}
		r.fillCircle(frame, x, y, siteRadius+0.75, colorOutline)
		r.fillCircle(frame, x, y, siteRadius, category10[i%len(category10)])
	}
	r.frames++

	if r.opts.Display != nil {
		r.opts.Display(frame)
	}
	return nil
}

// project maps a site onto the canvas for a globe rotated by rot degrees
// about the polar axis. Sites on the far hemisphere are not visible.
func project(s Site, rot, cx, cy, radius float64) (x, y float64, visible bool) {
	lambda := (s.Lon + rot) * math.Pi / 180
	phi := s.Lat * math.Pi / 180
	cosPhi := math.Cos(phi)
	if cosPhi*math.Cos(lambda) < 0 {
		return 0, 0, false
	}
	x = cx + radius*cosPhi*math.Sin(lambda)
	y = cy - radius*math.Sin(phi)
	return x, y, true
}

// fillCircle rasterizes a disk approximated by four cubic Bezier arcs.
func (r *Renderer) fillCircle(dst *image.RGBA, cx, cy, radius float64, c color.RGBA) {
	const k = 0.5522847498
	b := dst.Bounds()
	r.raster.Reset(b.Dx(), b.Dy())
	x, y, rr, kr := float32(cx), float32(cy), float32(radius), float32(radius*k)
	r.raster.MoveTo(x+rr, y)
	r.raster.CubeTo(x+rr, y+kr, x+kr, y+rr, x, y+rr)
	r.raster.CubeTo(x-kr, y+rr, x-rr, y+kr, x-rr, y)
	r.raster.CubeTo(x-rr, y-kr, x-kr, y-rr, x, y-rr)
	r.raster.CubeTo(x+kr, y-rr, x+rr, y-kr, x+rr, y)
	r.raster.ClosePath()
	r.raster.DrawOp = draw.Over
	r.raster.Draw(dst, b, image.NewUniform(c), image.Point{})
}
