package pigment

// RenderOption configures a Renderer during creation.
//
// Example:
//
//	// Default: one worker per CPU
//	r := pigment.NewRenderer()
//
//	// Single-threaded rendering
//	r := pigment.NewRenderer(pigment.WithWorkers(1))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Renderer creation.
type renderOptions struct {
	workers int
	pool    *Pool
}

// defaultRenderOptions returns the default renderer options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		workers: 0, // 0 means GOMAXPROCS
	}
}

// WithWorkers sets the number of worker goroutines used for rendering.
// Values <= 0 select GOMAXPROCS. Ignored when a pool is supplied via
// WithPool.
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		o.workers = n
	}
}

// WithPool makes the renderer use p instead of creating its own pool.
// The renderer's Close leaves p open; the caller remains responsible
// for closing it.
func WithPool(p *Pool) RenderOption {
	return func(o *renderOptions) {
		o.pool = p
	}
}
