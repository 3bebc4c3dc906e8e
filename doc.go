// Package pigment is a procedural image-compositing engine.
//
// # Overview
//
// A pigment scene is a tree of sources. A [Source] answers one question —
// what color is at integer coordinate (x, y)? — and anything that can
// answer it composes with anything else that can: constant colors, sampled
// images, and the combinators that translate ([Offset]), resample
// ([Scale]), soften ([Blur]) and layer ([Stack]) other sources. Rendering
// walks a finite output grid, asks the root source for every pixel in
// parallel, and packs the answers into an RGBA pixel buffer.
//
// # Quick Start
//
//	import (
//	    "github.com/pigment/pigment"
//	    "github.com/pigment/pigment/imageio"
//	)
//
//	im, err := imageio.Load("input.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	small := pigment.MustScale(im, 0.25, pigment.FilterLinear)
//	scene := pigment.Stack{
//	    pigment.NewOffset(small, 40, 40),
//	    pigment.RGB(0.1, 0.1, 0.3), // background
//	}
//
//	pm := pigment.Render(scene, 512, 512)
//	if err := pm.SavePNG("out.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinates and borders
//
// Sampling is total: every source returns a color for every int32
// coordinate, falling back to the zero (fully transparent) Color outside
// its meaningful region. Bounded sources additionally report [Borders], an
// inclusive rectangle used by combinators as an early-out hint. Coordinate
// arithmetic wraps modulo 2^32 rather than faulting.
//
// # Concurrency
//
// Source trees are immutable after construction and sampling is pure, so
// the rasterizer fans pixels out across a worker pool without locks. The
// same tree rendered with any worker count yields byte-identical output.
//
// # Architecture
//
//   - Public API: Color, Image, Source, combinators, Renderer, Pixmap
//   - imageio: file decoding/encoding glue (PNG, JPEG, GIF, BMP, TIFF, WebP)
//   - internal/parallel: the work-stealing pool behind Renderer
package pigment
