package converter

import (
	"context"
	"errors"
	"path/filepath"

	"img2pdf/contracts"
	"img2pdf/layout"
	"img2pdf/normalizer"
	"img2pdf/pdf_writer"
)

// Convert runs the whole pipeline: for each source image, in caller order,
// normalize it, pick its page geometry, and append one page to the output
// document. Images are processed strictly one at a time; only a single
// decoded bitmap is alive at any point, however long the sequence is.
//
// Any per-image failure aborts the run immediately (no skip-and-continue);
// whatever was written to the destination so far is left behind and must be
// treated as invalid by the caller. Cancellation is honored between images
// only, and leaves the document unfinalized.
func Convert(ctx context.Context, request contracts.Request, progress contracts.ProgressFunc) contracts.Outcome {
	if len(request.Sources) == 0 {
		return failure("", &contracts.InvalidImageError{Reason: "empty image sequence"})
	}

	writer, err := pdf_writer.Open(request.OutputPath, request.JpegQuality)
	if err != nil {
		return failure("", err)
	}

	total := len(request.Sources)
	for i, source := range request.Sources {
		if ctx != nil && ctx.Err() != nil {
			writer.Discard()
			return contracts.Outcome{Status: contracts.StatusCancelled, Err: contracts.ErrCancelled}
		}

		if progress != nil {
			progress(i+1, total, filepath.Base(source))
		}

		img, err := normalizer.Normalize(source)
		if err != nil {
			writer.Discard()
			return failure(source, err)
		}

		width := img.Bounds().Dx()
		height := img.Bounds().Dy()

		geometry := layout.SelectGeometry(width, height)
		placement, err := layout.Place(geometry, width, height)
		if err != nil {
			var invalid *contracts.InvalidImageError
			if errors.As(err, &invalid) {
				invalid.Source = source
			}
			writer.Discard()
			return failure(source, err)
		}

		if err := writer.AppendPage(geometry, img, placement); err != nil {
			writer.Discard()
			return failure(source, err)
		}
	}

	if err := writer.Finalize(); err != nil {
		return failure("", err)
	}

	return contracts.Outcome{Status: contracts.StatusSuccess, OutputPath: request.OutputPath}
}

func failure(source string, err error) contracts.Outcome {
	return contracts.Outcome{Status: contracts.StatusFailure, FailedSource: source, Err: err}
}
