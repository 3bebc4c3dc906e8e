// Command pigmentdemo demonstrates the pigment compositing engine.
//
// Given an input image it shrinks it, blurs it, and scatters four copies
// over the output; without one it composes the same scene from procedural
// color fields.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/pigment/pigment"
	"github.com/pigment/pigment/imageio"
)

func main() {
	var (
		width   = flag.Int("width", 600, "output width")
		height  = flag.Int("height", 600, "output height")
		input   = flag.String("input", "", "input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
		output  = flag.String("output", "out.png", "output file")
		workers = flag.Int("workers", 0, "render workers (0 = all CPUs)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		pigment.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var leaf pigment.Source
	if *input != "" {
		im, err := imageio.Load(*input)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", *input, err)
		}
		leaf = im
	} else {
		leaf = proceduralTile()
	}

	small := pigment.MustScale(leaf, 0.1, pigment.FilterNearest)
	blur := pigment.NewBlur(small, 8)

	scene := pigment.Stack{
		pigment.NewOffset(blur, 200, 200),
		pigment.NewOffset(blur, 100, 100),
		pigment.NewOffset(blur, 400, 200),
		pigment.NewOffset(blur, 200, 400),
	}

	pm := pigment.Render(scene, int32(*width), int32(*height),
		pigment.WithWorkers(*workers))

	if err := imageio.Save(*output, pm); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, pm.Width(), pm.Height())
}

// proceduralTile builds a bounded stand-in for an input image: a soft
// color grid big enough that the demo's 0.1x scale still shows structure.
func proceduralTile() pigment.Source {
	const size = 2000
	data := make([]byte, size*size*4)
	i := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := pigment.Hex("#3498db")
			if (x/200+y/200)%2 == 0 {
				c = pigment.Hex("#e74c3c")
			}
			b := c.Bytes()
			copy(data[i:i+4], b[:])
			i += 4
		}
	}

	im, err := pigment.NewImage(size, size, pigment.FormatRGBA8, data)
	if err != nil {
		log.Fatalf("Failed to build tile: %v", err)
	}
	return im
}
