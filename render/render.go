// Package render produces CPU-side wireframe snapshots of a model. It
// projects vertices with a simple perspective divide and rasterizes edges
// straight into an image.RGBA; no GPU is involved.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"view3d/obj"
	"view3d/transform"
)

// Options controls a snapshot.
type Options struct {
	Width      int
	Height     int
	FOV        float64 // projection strength, pixels per unit at the origin plane
	Distance   float64 // viewer distance from the origin along +Z
	Background color.RGBA
	Stroke     color.RGBA
}

// DefaultOptions is a sensible frame for models around unit scale.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		FOV:        300,
		Distance:   6,
		Background: color.RGBA{16, 16, 24, 255},
		Stroke:     color.RGBA{255, 255, 0, 255},
	}
}

// project maps a point to pixel coordinates. The screen Y axis grows
// downward, so world +Y is flipped to point up in the image. The boolean is
// false when the point is at or behind the viewer and cannot be projected.
func project(p transform.Point, opts Options) (int, int, bool) {
	depth := opts.Distance + p.Z()
	if depth <= 0 {
		return 0, 0, false
	}
	factor := opts.FOV / depth
	x := int(p.X()*factor) + opts.Width/2
	y := opts.Height/2 - int(p.Y()*factor)
	return x, y, true
}

// Wireframe renders every edge of the model into a fresh image.
func Wireframe(m *obj.Model, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{opts.Background}, image.Point{}, draw.Src)

	type screenPoint struct {
		x, y int
		ok   bool
	}
	projected := make([]screenPoint, len(m.Vertices))
	for i, p := range m.Vertices {
		x, y, ok := project(p, opts)
		projected[i] = screenPoint{x, y, ok}
	}

	for _, e := range m.Edges() {
		a, b := projected[e[0]], projected[e[1]]
		if !a.ok || !b.ok {
			continue
		}
		drawLine(img, a.x, a.y, b.x, b.y, opts.Stroke)
	}
	return img
}

// drawLine walks the line from (x1, y1) to (x2, y2), stepping whichever
// axis covers more pixels, and plots every point inside the image bounds.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		setPixel(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)
	for i := 0; i <= int(steps); i++ {
		setPixel(img, int(x), int(y), col)
		x += xInc
		y += yInc
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if x < 0 || x >= img.Bounds().Dx() || y < 0 || y >= img.Bounds().Dy() {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}

// SavePNG writes the image to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
