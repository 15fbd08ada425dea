// Command gradientdemo renders a linear gradient fill to a PNG.
//
//	gradientdemo -x1 800 -stops '0:#ff0000,0.5:gold,1:navy' -output out.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/fill"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "gradient.png", "output file")
		ramp    = flag.String("ramp", "", "optional file for an enlarged view of the ramp texture")
		x0      = flag.Float64("x0", 0, "gradient start x")
		y0      = flag.Float64("y0", 0, "gradient start y")
		x1      = flag.Float64("x1", 800, "gradient end x")
		y1      = flag.Float64("y1", 600, "gradient end y")
		stops   = flag.String("stops", "0:#ff0000,1:#0000ff", "comma separated offset:color pairs (empty for none)")
		space   = flag.String("space", "global", "texture space: global or local")
		size    = flag.Int("size", fill.DefaultTextureSize, "ramp texture size")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		fill.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ts := fill.SpaceGlobal
	switch *space {
	case "global":
	case "local":
		ts = fill.SpaceLocal
	default:
		log.Fatalf("unknown texture space %q", *space)
	}

	g := fill.NewLinearGradient(*x0, *y0, *x1, *y1,
		fill.WithSpace(ts),
		fill.WithTextureSize(*size))
	if err := addStops(g, *stops); err != nil {
		log.Fatalf("Invalid stops: %v", err)
	}

	b, err := g.Build()
	if err != nil {
		log.Fatalf("Failed to build gradient: %v", err)
	}

	pm := paint(b, *width, *height)
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Gradient saved to %s (%dx%d)\n", *output, *width, *height)

	if *ramp != "" {
		if err := saveRamp(b.Texture(), *ramp); err != nil {
			log.Fatalf("Failed to save ramp: %v", err)
		}
		log.Printf("Ramp saved to %s\n", *ramp)
	}
}

// addStops parses "offset:color,offset:color". Empty entries are
// skipped, so an empty list yields a transparent gradient.
func addStops(g *fill.Gradient, list string) error {
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		off, col, ok := strings.Cut(part, ":")
		if !ok {
			return fmt.Errorf("stop %q: want offset:color", part)
		}
		offset, err := strconv.ParseFloat(off, 64)
		if err != nil {
			return fmt.Errorf("stop %q: %w", part, err)
		}
		g.AddColorStop(offset, col)
	}
	return g.Err()
}

// paint fills a width x height image with the gradient, sampling each
// pixel center. Local gradients see the image as their unit square.
func paint(b *fill.Built, width, height int) *fill.Pixmap {
	pm := fill.NewPixmap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if b.Space() == fill.SpaceLocal {
				px /= float64(width)
				py /= float64(height)
			}
			pm.SetPixel(x, y, b.ColorAt(px, py))
		}
	}
	return pm
}

func saveRamp(tex *fill.Texture, path string) error {
	src := tex.Image()
	dst := image.NewNRGBA(image.Rect(0, 0, 4*tex.Width(), tex.Height()/4+1))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, dst)
}
