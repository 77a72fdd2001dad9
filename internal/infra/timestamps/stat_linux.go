//go:build linux

package timestamps

import (
	"fmt"
	"io/fs"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	appErrors "sortery/internal/errors"
)

func statx(path string, mask int) (unix.Statx_t, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, mask, &stx)
	return stx, err
}

func birthTime(path string, _ fs.FileInfo) (time.Time, error) {
	stx, err := statx(path, unix.STATX_BTIME)
	if err != nil {
		return time.Time{}, fmt.Errorf("statx %s: %w: %v", path, appErrors.ErrMetadataUnavailable, err)
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, fmt.Errorf("creation time not recorded for %s: %w", path, appErrors.ErrMetadataUnavailable)
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}

func accessTime(path string, info fs.FileInfo) (time.Time, error) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Atim.Unix()), nil
	}
	stx, err := statx(path, unix.STATX_ATIME)
	if err != nil || stx.Mask&unix.STATX_ATIME == 0 {
		return time.Time{}, fmt.Errorf("access time not recorded for %s: %w", path, appErrors.ErrMetadataUnavailable)
	}
	return time.Unix(stx.Atime.Sec, int64(stx.Atime.Nsec)), nil
}
