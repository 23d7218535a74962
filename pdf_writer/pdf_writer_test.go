package pdf_writer

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"img2pdf/contracts"
	"img2pdf/layout"
)

func testBitmap(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 11), B: 128, A: 255})
		}
	}
	return img
}

func appendTestPage(t *testing.T, dw *DocumentWriter, width, height int) {
	t.Helper()
	g := layout.SelectGeometry(width, height)
	pl, err := layout.Place(g, width, height)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if err := dw.AppendPage(g, testBitmap(width, height), pl); err != nil {
		t.Fatalf("AppendPage failed: %v", err)
	}
}

func TestOpenUnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.pdf")
	_, err := Open(path, 90)
	if err == nil {
		t.Fatal("expected an error for a destination in a missing directory")
	}
	var destErr *contracts.DestinationError
	if !errors.As(err, &destErr) {
		t.Fatalf("expected DestinationError, got %T: %v", err, err)
	}
	if destErr.Path != path {
		t.Errorf("DestinationError names %q, want %q", destErr.Path, path)
	}
}

func TestAppendAndFinalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	dw, err := Open(path, 90)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	appendTestPage(t, dw, 40, 30)
	appendTestPage(t, dw, 30, 40)

	if got := dw.PageCount(); got != 2 {
		t.Errorf("PageCount = %d, want 2", got)
	}

	if err := dw.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	output := string(data)

	if !strings.HasPrefix(output, "%PDF") {
		t.Error("output does not start with a PDF header")
	}
	if !strings.Contains(output, "/Count 2") {
		t.Error("output should contain two pages")
	}
	// One landscape and one portrait media box.
	if !strings.Contains(output, "792.00 612.00") {
		t.Error("missing landscape page size")
	}
	if !strings.Contains(output, "612.00 792.00") {
		t.Error("missing portrait page size")
	}
}

func TestFinalizeTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	dw, err := Open(path, 90)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	appendTestPage(t, dw, 10, 10)

	if err := dw.Finalize(); err != nil {
		t.Fatalf("first Finalize failed: %v", err)
	}

	err = dw.Finalize()
	var stateErr *contracts.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("second Finalize: expected InvalidStateError, got %T: %v", err, err)
	}
}

func TestAppendAfterFinalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	dw, err := Open(path, 90)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	appendTestPage(t, dw, 10, 10)
	if err := dw.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	g := layout.Portrait
	pl, _ := layout.Place(g, 10, 10)
	err = dw.AppendPage(g, testBitmap(10, 10), pl)
	var stateErr *contracts.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("append after finalize: expected InvalidStateError, got %T: %v", err, err)
	}
}

func TestFinalizeWithoutPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	dw, err := Open(path, 90)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	err = dw.Finalize()
	var stateErr *contracts.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("empty finalize: expected InvalidStateError, got %T: %v", err, err)
	}
}

func TestDiscardLeavesNoDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	dw, err := Open(path, 90)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	appendTestPage(t, dw, 10, 10)
	dw.Discard()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if strings.HasPrefix(string(data), "%PDF") {
		t.Error("discarded writer should not have produced a finalized document")
	}

	// Discard is terminal: the writer accepts nothing afterwards.
	err = dw.Finalize()
	var stateErr *contracts.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("finalize after discard: expected InvalidStateError, got %T: %v", err, err)
	}
}

func TestOpenClampsQuality(t *testing.T) {
	for _, quality := range []int{-1, 0, 101} {
		path := filepath.Join(t.TempDir(), "out.pdf")
		dw, err := Open(path, quality)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if dw.quality != defaultJpegQuality {
			t.Errorf("quality %d should clamp to %d, got %d", quality, defaultJpegQuality, dw.quality)
		}
		dw.Discard()
	}
}
