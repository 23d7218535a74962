package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"img2pdf/contracts"
	"img2pdf/converter"
	"img2pdf/files_manager"
)

type InputFlags = contracts.InputFlags

func main() {
	inputDir := flag.String("input", "", "Directory with images to convert (alternative to listing files)")
	output := flag.String("output", "output.pdf", "Path of the PDF to create")
	jpegQuality := flag.Int("quality", 100, "JPEG quality (1-100)")
	flag.Parse()

	args := InputFlags{
		InputDir:    *inputDir,
		Output:      *output,
		JpegQuality: *jpegQuality,
	}

	inputs := flag.Args()
	if args.InputDir != "" {
		inputs = append(inputs, args.InputDir)
	}
	if len(inputs) == 0 {
		fmt.Println("No images given: list image files as arguments or use -input.")
		flag.Usage()
		os.Exit(1)
	}

	sources, err := files_manager.CollectImagePaths(inputs)
	if err != nil {
		fmt.Printf("[ERROR]: %v\n", err)
		os.Exit(1)
	}
	if len(sources) == 0 {
		fmt.Println("No image files found in the given inputs.")
		os.Exit(1)
	}

	destination, err := files_manager.CheckDestination(args.Output)
	if err != nil {
		fmt.Printf("[ERROR]: %v\n", err)
		os.Exit(1)
	}

	// Ctrl-C stops the pipeline between images, leaving no finalized PDF.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	startTime := time.Now()

	outcome := converter.Convert(ctx, contracts.Request{
		Sources:     sources,
		OutputPath:  destination,
		JpegQuality: args.JpegQuality,
	}, func(index, total int, name string) {
		fmt.Printf("Processing %d/%d: %s\n", index, total, name)
	})

	switch outcome.Status {
	case contracts.StatusSuccess:
		fmt.Printf("Saved: %s\n", outcome.OutputPath)
		fmt.Printf("Total time taken: %s\n", time.Since(startTime))
	case contracts.StatusCancelled:
		fmt.Println("Conversion cancelled.")
		os.Exit(1)
	default:
		if outcome.FailedSource != "" {
			fmt.Printf("[ERROR] %s: %v\n", outcome.FailedSource, outcome.Err)
		} else {
			fmt.Printf("[ERROR]: %v\n", outcome.Err)
		}
		os.Exit(1)
	}
}
