package pdf_writer

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/phpdave11/gofpdf"

	"img2pdf/contracts"
	"img2pdf/layout"
)

const defaultJpegQuality = 90

// DocumentWriter accumulates pages in call order and flushes them as one
// PDF on Finalize. It is append-only and single-use: once finalized, any
// further call is a misuse reported as InvalidStateError.
type DocumentWriter struct {
	pdf       *gofpdf.Fpdf
	file      *os.File
	path      string
	quality   int
	pages     int
	finalized bool
}

// Open creates the destination file and an empty document. An unwritable
// path fails here, before any image is processed.
func Open(path string, jpegQuality int) (*DocumentWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, &contracts.DestinationError{Path: path, Err: err}
	}

	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = defaultJpegQuality
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt"})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	return &DocumentWriter{
		pdf:     pdf,
		file:    file,
		path:    path,
		quality: jpegQuality,
	}, nil
}

// AppendPage adds one page of the given geometry and draws the bitmap at the
// computed placement. Pages are strictly sequential; there is no way to
// revisit a page once the next one begins.
func (dw *DocumentWriter) AppendPage(g layout.Geometry, img *image.NRGBA, pl layout.Placement) error {
	if dw.finalized {
		return &contracts.InvalidStateError{Op: "append after finalize"}
	}

	// Explicit size per page; orientation is already encoded in g.
	dw.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: g.Width, Ht: g.Height})

	// The bitmap is opaque by construction, so JPEG loses no coverage.
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: dw.quality}); err != nil {
		return fmt.Errorf("error encoding page image: %v", err)
	}

	imageId := fmt.Sprintf("img_%d", dw.pages)
	opts := gofpdf.ImageOptions{
		ImageType: "JPEG",
		ReadDpi:   false,
	}
	dw.pdf.RegisterImageOptionsReader(imageId, opts, &buf)
	dw.pdf.ImageOptions(imageId, pl.X, pl.Y, pl.Width, pl.Height, false, opts, 0, "")

	if err := dw.pdf.Error(); err != nil {
		return fmt.Errorf("error drawing page %d: %v", dw.pages, err)
	}

	dw.pages++
	return nil
}

// PageCount reports how many pages have been appended so far.
func (dw *DocumentWriter) PageCount() int {
	return dw.pages
}

// Finalize flushes all appended pages to the destination and closes it.
// It is a one-time operation; a second call, or finalizing with zero pages
// appended, is reported as InvalidStateError.
func (dw *DocumentWriter) Finalize() error {
	if dw.finalized {
		return &contracts.InvalidStateError{Op: "finalize called twice"}
	}
	if dw.pages == 0 {
		dw.finalized = true
		dw.file.Close()
		return &contracts.InvalidStateError{Op: "finalize with no pages appended"}
	}
	dw.finalized = true

	if err := dw.pdf.Output(dw.file); err != nil {
		dw.file.Close()
		return &contracts.DestinationError{Path: dw.path, Err: err}
	}
	if err := dw.file.Close(); err != nil {
		return &contracts.DestinationError{Path: dw.path, Err: err}
	}
	return nil
}

// Discard releases the destination file without producing a document. The
// created file is left on disk; deciding whether to delete it is the
// caller's business.
func (dw *DocumentWriter) Discard() {
	if !dw.finalized {
		dw.finalized = true
		dw.file.Close()
	}
}
