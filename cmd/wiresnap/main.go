// Command wiresnap renders a single wireframe frame to a PNG file.
// Useful for eyeballing the pipeline without opening a window.
//
//	wiresnap -shape pyramid -angle 0.8 -o pyramid.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"wireframe/internal/config"
	"wireframe/wiregl"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "Path to YAML config.")
		shape   = flag.String("shape", "cube", "Shape: cube, pyramid or octahedron.")
		angle   = flag.Float64("angle", 0.6, "Rotation angle in radians.")
		out     = flag.String("o", "frame.png", "Output PNG path.")
	)
	flag.Parse()

	if err := run(*cfgPath, *shape, wiregl.Scalar(*angle), *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath, shapeName string, angle wiregl.Scalar, out string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	shape, err := parseShape(shapeName)
	if err != nil {
		return err
	}

	r := wiregl.NewRenderer()
	r.ClearColor = wiregl.ColorFromPacked(cfg.Background)
	r.EdgeColor = wiregl.ColorFromPacked(cfg.EdgeColor)
	r.Camera = wiregl.Camera{
		FOVYRad:  cfg.FOVYRad(),
		Near:     cfg.Near,
		Far:      cfg.Far,
		Distance: cfg.CameraDistance,
	}
	r.SpinXRate = cfg.SpinXRate

	tgt := wiregl.NewBufferTarget(cfg.Width, cfg.Height)
	r.RenderFrame(tgt, shape, angle)

	img := image.NewRGBA(image.Rect(0, 0, tgt.W, tgt.H))
	for i, p := range tgt.Pix {
		c := wiregl.ColorFromPacked(p)
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xFF
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}

func parseShape(name string) (wiregl.Shape, error) {
	for i := 0; i < wiregl.NumShapes; i++ {
		s := wiregl.Shape(i)
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}
