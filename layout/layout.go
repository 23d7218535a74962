package layout

import (
	"fmt"
	"math"

	"img2pdf/contracts"
)

// Margin is kept clear on every side of a page, in points (0.5 inch).
const Margin = 36.0

// Geometry is a page size in points. Only the two Letter presets exist;
// every page picks one of them independently.
type Geometry struct {
	Width  float64
	Height float64
}

var (
	Portrait  = Geometry{Width: 612, Height: 792}
	Landscape = Geometry{Width: 792, Height: 612}
)

func (g Geometry) PrintableWidth() float64 {
	return g.Width - 2*Margin
}

func (g Geometry) PrintableHeight() float64 {
	return g.Height - 2*Margin
}

// SelectGeometry picks the page orientation for an image of the given pixel
// size. Height >= width means portrait, so square images land on portrait.
func SelectGeometry(imgWidth, imgHeight int) Geometry {
	if imgHeight >= imgWidth {
		return Portrait
	}
	return Landscape
}

// Placement positions a scaled image on a page. X/Y are the top-left origin
// of the drawn image, Width/Height its scaled size, all in points.
type Placement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Scale  float64
}

// Place computes the scale-to-fit placement of an image inside the printable
// area of g, centered on the full page. The scale is uniform, the minimum of
// the two axis ratios, so the image fills the printable area along the
// constraining axis and never overflows the other.
func Place(g Geometry, imgWidth, imgHeight int) (Placement, error) {
	if imgWidth <= 0 || imgHeight <= 0 {
		return Placement{}, &contracts.InvalidImageError{
			Reason: fmt.Sprintf("degenerate pixel size %dx%d", imgWidth, imgHeight),
		}
	}

	scale := math.Min(
		g.PrintableWidth()/float64(imgWidth),
		g.PrintableHeight()/float64(imgHeight),
	)
	drawWidth := float64(imgWidth) * scale
	drawHeight := float64(imgHeight) * scale

	return Placement{
		X:      (g.Width - drawWidth) / 2,
		Y:      (g.Height - drawHeight) / 2,
		Width:  drawWidth,
		Height: drawHeight,
		Scale:  scale,
	}, nil
}
