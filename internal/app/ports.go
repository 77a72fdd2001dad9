package app

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"sortery/internal/domain"
)

type FileSystem interface {
	Walk(root string, fn filepath.WalkFunc) error
	ReadDir(path string) ([]fs.FileInfo, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	Rename(src, dst string) error
}

// TimeReader reads the creation, modification or access time of a file.
// Implementations return an error wrapping ErrMetadataUnavailable when the
// filesystem does not record the requested field.
type TimeReader interface {
	Timestamp(path string, info fs.FileInfo, selector domain.TimestampSelector) (time.Time, error)
}

type ExifReader interface {
	DateTimeOriginal(ctx context.Context, path string) (time.Time, error)
}

// ProgressSink receives execution progress.
type ProgressSink interface {
	SetProgress(done, total int)
	Complete()
}
