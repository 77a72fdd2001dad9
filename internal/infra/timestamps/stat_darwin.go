//go:build darwin

package timestamps

import (
	"fmt"
	"io/fs"
	"syscall"
	"time"

	appErrors "sortery/internal/errors"
)

func birthTime(path string, info fs.FileInfo) (time.Time, error) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, fmt.Errorf("creation time not recorded for %s: %w", path, appErrors.ErrMetadataUnavailable)
	}
	return time.Unix(st.Birthtimespec.Unix()), nil
}

func accessTime(path string, info fs.FileInfo) (time.Time, error) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, fmt.Errorf("access time not recorded for %s: %w", path, appErrors.ErrMetadataUnavailable)
	}
	return time.Unix(st.Atimespec.Unix()), nil
}
