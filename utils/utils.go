package utils

import (
	"fmt"

	"github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

// GetOrientation extracts the EXIF Orientation tag (1-8) from raw image
// bytes. Files without EXIF, or without the tag, report orientation 1
// (no transform needed).
func GetOrientation(data []byte) (int, error) {
	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil {
		return 1, fmt.Errorf("EXIF not found: %v", err)
	}

	im := exifcommon.NewIfdMapping()
	ti := exif.NewTagIndex()
	if err := exifcommon.LoadStandardIfds(im); err != nil {
		return 1, err
	}

	_, index, err := exif.Collect(im, ti, rawExif)
	if err != nil {
		return 1, err
	}

	orientation := 1

	if tag, err := index.RootIfd.FindTagWithName("Orientation"); err == nil && len(tag) > 0 {
		if val, err := tag[0].Value(); err == nil {
			if vals, ok := val.([]uint16); ok && len(vals) > 0 {
				orientation = int(vals[0])
			}
		}
	}

	if orientation < 1 || orientation > 8 {
		orientation = 1
	}
	return orientation, nil
}
