package globe

import "github.com/soocke/voronoi-bench/domain/bench"

// Factory adapts New to bench.RendererFactory.
func Factory(opts Options) bench.RendererFactory {
	return func(pointCount int) (bench.Renderer, error) {
		r, err := New(pointCount, opts)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}
