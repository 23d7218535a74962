package contracts

import "context"

// ProgressFunc is called once per image, in input order, as its processing
// begins. Index is 1-based. Implementations must not block the pipeline.
type ProgressFunc func(index, total int, sourceName string)

type Converter interface {
	Convert(ctx context.Context, request Request, progress ProgressFunc) Outcome
}

// Request describes one conversion run: an ordered list of image paths and
// the PDF to produce from them. The order of Sources is the page order.
type Request struct {
	Sources     []string
	OutputPath  string
	JpegQuality int
}

type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusCancelled
)

// Outcome is the single terminal result of a run. FailedSource names the
// image whose processing aborted the run, when one did.
type Outcome struct {
	Status       Status
	OutputPath   string
	FailedSource string
	Err          error
}
