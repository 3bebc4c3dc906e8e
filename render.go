package pigment

import (
	"github.com/pigment/pigment/internal/parallel"
)

// Pool is a reusable set of render workers. A single Pool may back any
// number of renderers via WithPool; it must be closed by its creator.
type Pool struct {
	p *parallel.Pool
}

// NewPool creates a worker pool with n workers. Values <= 0 select
// GOMAXPROCS.
func NewPool(n int) *Pool {
	return &Pool{p: parallel.New(n)}
}

// Workers reports the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.p.Workers()
}

// Close shuts down the pool's workers. Safe to call more than once.
func (p *Pool) Close() {
	p.p.Close()
}

// Renderer rasterizes source trees into pixmaps using a worker pool.
// A Renderer may be reused for any number of renders and must be closed
// when done. It is safe for concurrent use.
type Renderer struct {
	pool  *parallel.Pool
	owned bool
}

// NewRenderer creates a renderer. By default the pool has GOMAXPROCS
// workers; see WithWorkers and WithPool.
func NewRenderer(opts ...RenderOption) *Renderer {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.pool != nil {
		return &Renderer{pool: o.pool.p}
	}
	return &Renderer{pool: parallel.New(o.workers), owned: true}
}

// Close shuts down the renderer's worker pool. Pools supplied via
// WithPool stay open; they belong to the caller.
func (r *Renderer) Close() {
	if r.owned {
		r.pool.Close()
	}
}

// Render rasterizes src into a width x height pixmap by sampling every
// output pixel. Rows are dispatched to the pool and rendered concurrently;
// each pixel is a pure function of src and its coordinates, so the result
// is identical for any worker count or scheduling order. Sources without
// borders are valid and simply sampled everywhere.
func (r *Renderer) Render(src Source, width, height int32) *Pixmap {
	pm := NewPixmap(width, height)
	w, h := pm.Width(), pm.Height()
	if w == 0 || h == 0 {
		return pm
	}

	Logger().Debug("render", "width", w, "height", h, "workers", r.pool.Workers())

	data := pm.Data()
	rows := make([]func(), h)
	for y := int32(0); y < h; y++ {
		y := y
		rows[y] = func() {
			i := int(y) * int(w) * 4
			for x := int32(0); x < w; x++ {
				b := src.Sample(x, y).Bytes()
				copy(data[i:i+4], b[:])
				i += 4
			}
		}
	}
	r.pool.ExecuteAll(rows)

	return pm
}

// Render rasterizes src into a width x height pixmap with a one-shot
// renderer. Callers rendering repeatedly should hold a Renderer instead to
// amortize pool startup.
func Render(src Source, width, height int32, opts ...RenderOption) *Pixmap {
	r := NewRenderer(opts...)
	defer r.Close()
	return r.Render(src, width, height)
}
