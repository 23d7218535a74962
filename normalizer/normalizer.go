package normalizer

import (
	"bytes"
	"image"
	"image/color"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"img2pdf/contracts"
	"img2pdf/utils"
)

// transparency classifies a decoded image once, at load time. Each class
// maps to one flattening procedure.
type transparency int

const (
	opaque transparency = iota
	alphaChannel
	paletteTransparent
)

// Normalize loads one image and produces the fully opaque, correctly
// oriented bitmap that feeds the page writer. EXIF orientation is applied to
// the pixels and discarded; any transparency is composited onto white.
func Normalize(path string) (*image.NRGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &contracts.LoadError{Source: path, Err: err}
	}

	img, err := decode(data)
	if err != nil {
		return nil, &contracts.LoadError{Source: path, Err: err}
	}

	// Missing EXIF reports orientation 1, which needs no transform.
	if orientation, _ := utils.GetOrientation(data); orientation > 1 {
		img = applyOrientation(img, orientation)
	}

	return flatten(img, transparencyOf(img)), nil
}

// decode tries the registered decoders first, then falls back to an
// explicit WebP decode. Detection is by content, not file extension.
func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}

	if img, werr := webp.Decode(bytes.NewReader(data)); werr == nil {
		return img, nil
	}

	return nil, err
}

// applyOrientation rotates/flips the pixel data so the visual orientation
// matches the EXIF tag's intent. Tag values per the EXIF spec: 2-4 are
// mirrored/rotated in place, 5-8 swap width and height.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	}
	return img
}

// transparencyOf inspects the decoded image's concrete type. Color models
// without an alpha component are opaque; paletted images are opaque unless
// some palette entry carries transparency.
func transparencyOf(img image.Image) transparency {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return opaque
	case *image.Paletted:
		for _, entry := range m.Palette {
			if _, _, _, a := entry.RGBA(); a < 0xffff {
				return paletteTransparent
			}
		}
		return opaque
	default:
		if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
			return opaque
		}
		return alphaChannel
	}
}

// flatten produces the opaque NRGBA raster. Images with transparency are
// composited src-over onto a full-coverage white background.
func flatten(img image.Image, mode transparency) *image.NRGBA {
	if mode == opaque {
		return imaging.Clone(img)
	}

	bounds := img.Bounds()
	white := imaging.New(bounds.Dx(), bounds.Dy(), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return imaging.Overlay(white, img, image.Pt(0, 0), 1.0)
}
