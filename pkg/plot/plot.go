// Package plot draws a score curve as a png. It is deliberately dumb:
// a polyline, axis lines, the minima marked, and a few freetype
// labels. Anything fancier belongs in a real plotting program fed by
// the csv output.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Args are the optional knobs for Line. Zero values get defaults.
type Args struct {
	W, H   int    // image size in pixels
	Title  string // drawn at the top left
	Minima []int  // indices marked on the curve
}

const (
	defaultW = 720
	defaultH = 400
	margin   = 48
	fontSize = 12
)

var (
	bgCol     = color.RGBA{255, 255, 255, 255}
	axisCol   = color.RGBA{90, 90, 90, 255}
	lineCol   = color.RGBA{50, 90, 160, 255}
	minimaCol = color.RGBA{200, 40, 40, 255}
)

// Line renders ys as a line plot and writes it to fname as a png.
// It needs at least two points to draw anything.
func Line(fname string, ys []float32, args *Args) error {
	if len(ys) < 2 {
		return fmt.Errorf("plot needs at least 2 points, got %d", len(ys))
	}
	if args == nil {
		args = &Args{}
	}
	w, h := args.W, args.H
	if w == 0 {
		w = defaultW
	}
	if h == 0 {
		h = defaultH
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bgCol), image.Point{}, draw.Src)

	min, max := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	span := max - min
	if span == 0 {
		span = 1 // flat curve, draw it mid-plot
	}

	// pixel coordinates of data point i
	px := func(i int) int {
		return margin + i*(w-2*margin)/(len(ys)-1)
	}
	py := func(v float32) int {
		frac := (v - min) / span
		return h - margin - int(frac*float32(h-2*margin))
	}

	// axes
	hline(img, margin, w-margin, h-margin, axisCol)
	vline(img, margin, margin, h-margin, axisCol)

	for i := 1; i < len(ys); i++ {
		segment(img, px(i-1), py(ys[i-1]), px(i), py(ys[i]), lineCol)
	}
	for _, i := range args.Minima {
		if i >= 0 && i < len(ys) {
			box(img, px(i), py(ys[i]), 2, minimaCol)
		}
	}

	if err := labels(img, args.Title, min, max, len(ys), h); err != nil {
		return err
	}

	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("plot file %v: %w", fname, err)
	}
	defer fp.Close()
	return png.Encode(fp, img)
}

// labels draws the title, the y range and the x extent with the Go
// regular font.
func labels(img *image.RGBA, title string, min, max float32, n, h int) error {
	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(fnt)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(color.Black))

	put := func(s string, x, y int) error {
		_, err := c.DrawString(s, freetype.Pt(x, y))
		return err
	}
	if title != "" {
		if err := put(title, margin, margin-12); err != nil {
			return err
		}
	}
	if err := put(fmt.Sprintf("%.2f", max), 4, margin+4); err != nil {
		return err
	}
	if err := put(fmt.Sprintf("%.2f", min), 4, h-margin); err != nil {
		return err
	}
	return put(fmt.Sprintf("0 .. %d", n-1), margin, h-margin+16)
}

func setPx(img *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

func hline(img *image.RGBA, x0, x1, y int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		setPx(img, x, y, col)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, col color.RGBA) {
	for y := y0; y <= y1; y++ {
		setPx(img, x, y, col)
	}
}

// box fills a small square centred on x, y. Used for the minima marks.
func box(img *image.RGBA, x, y, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			setPx(img, x+dx, y+dy, col)
		}
	}
}

// segment draws a line between two points by stepping along the longer
// axis. Not anti-aliased, does not need to be.
func segment(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		setPx(img, x0, y0, col)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		setPx(img, x, y, col)
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
