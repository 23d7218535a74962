package files_manager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"img2pdf/contracts"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// CollectImagePaths resolves the caller's arguments into an ordered list of
// image paths. File arguments are kept in the order given (duplicates
// collapse to their first occurrence); directory arguments expand to their
// image files in name order.
func CollectImagePaths(args []string) ([]string, error) {
	seen := make(map[string]bool)
	paths := make([]string, 0, len(args))

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			dirPaths, err := GetImagePaths(arg)
			if err != nil {
				return nil, err
			}
			for _, p := range dirPaths {
				if !seen[p] {
					seen[p] = true
					paths = append(paths, p)
				}
			}
			continue
		}

		if !seen[arg] {
			seen[arg] = true
			paths = append(paths, arg)
		}
	}
	return paths, nil
}

// GetImagePaths lists the image files directly inside dir, in name order.
// Resource-fork droppings ("._" prefixes) and subdirectories are skipped.
func GetImagePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), "._") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if imageExtensions[ext] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// CheckDestination validates the output path before any conversion work and
// returns it with a ".pdf" extension guaranteed. The parent directory must
// already exist.
func CheckDestination(path string) (string, error) {
	if path == "" {
		return "", &contracts.DestinationError{Path: path, Err: fmt.Errorf("output path required")}
	}
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		path += ".pdf"
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return "", &contracts.DestinationError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return "", &contracts.DestinationError{Path: path, Err: fmt.Errorf("%s is not a directory", dir)}
	}
	return path, nil
}
