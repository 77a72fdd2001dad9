package exif

import (
	"context"
	"fmt"
	"os"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"

	appErrors "sortery/internal/errors"
)

const exifLayout = "2006:01:02 15:04:05"

// Reader reads the capture time recorded in a photo. Files without usable
// EXIF data report ErrMetadataUnavailable.
type Reader struct{}

func (Reader) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("open %s: %w: %v", path, appErrors.ErrMetadataUnavailable, err)
	}
	defer f.Close()

	meta, err := goexif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode exif %s: %w: %v", path, appErrors.ErrMetadataUnavailable, err)
	}

	if t, ok := originalTime(meta); ok {
		return t, nil
	}
	// fall back to the DateTime tag
	if t, err := meta.DateTime(); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("no capture time in %s: %w", path, appErrors.ErrMetadataUnavailable)
}

func originalTime(meta *goexif.Exif) (time.Time, bool) {
	tag, err := meta.Get(goexif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, false
	}
	raw, err := tag.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(exifLayout, raw, time.Local)
	return t, err == nil
}
