//go:build !linux && !darwin

package timestamps

import (
	"fmt"
	"io/fs"
	"time"

	appErrors "sortery/internal/errors"
)

func birthTime(path string, _ fs.FileInfo) (time.Time, error) {
	return time.Time{}, fmt.Errorf("creation time not supported for %s: %w", path, appErrors.ErrMetadataUnavailable)
}

func accessTime(path string, _ fs.FileInfo) (time.Time, error) {
	return time.Time{}, fmt.Errorf("access time not supported for %s: %w", path, appErrors.ErrMetadataUnavailable)
}
