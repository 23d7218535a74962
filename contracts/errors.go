package contracts

import (
	"errors"
	"fmt"
)

// ErrCancelled is reported when the conversion was stopped cooperatively
// between images instead of finishing the document.
var ErrCancelled = errors.New("conversion cancelled")

// LoadError means a source image could not be read or decoded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load image %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// InvalidImageError means an image (or the image sequence itself) is
// geometrically unusable: zero-area pixels, empty input list.
type InvalidImageError struct {
	Source string
	Reason string
}

func (e *InvalidImageError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid image: %s", e.Reason)
	}
	return fmt.Sprintf("invalid image %s: %s", e.Source, e.Reason)
}

// DestinationError means the output path could not be created or written.
type DestinationError struct {
	Path string
	Err  error
}

func (e *DestinationError) Error() string {
	return fmt.Sprintf("cannot write destination %s: %v", e.Path, e.Err)
}

func (e *DestinationError) Unwrap() error {
	return e.Err
}

// InvalidStateError means the document writer was driven out of order:
// appending after finalize, finalizing twice, finalizing an empty document.
type InvalidStateError struct {
	Op string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("document writer misuse: %s", e.Op)
}
