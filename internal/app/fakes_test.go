package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"sortery/internal/domain"
	appErrors "sortery/internal/errors"
)

type mockFS struct {
	entries []mockEntry
}

type mockEntry struct {
	path  string
	isDir bool
}

func (m mockFS) Walk(root string, fn filepath.WalkFunc) error {
	for _, entry := range m.entries {
		info := mockFileInfo{name: filepath.Base(entry.path), isDir: entry.isDir}
		if err := fn(entry.path, info, nil); err != nil {
			return err
		}
	}
	return nil
}

func (m mockFS) ReadDir(path string) ([]fs.FileInfo, error) {
	var out []fs.FileInfo
	for _, entry := range m.entries {
		if filepath.Dir(entry.path) == filepath.Clean(path) {
			out = append(out, mockFileInfo{name: filepath.Base(entry.path), isDir: entry.isDir})
		}
	}
	return out, nil
}

func (m mockFS) Stat(path string) (fs.FileInfo, error) {
	for _, entry := range m.entries {
		if entry.path == path {
			return mockFileInfo{name: filepath.Base(path), isDir: entry.isDir}, nil
		}
	}
	return nil, fs.ErrNotExist
}

func (m mockFS) Exists(path string) (bool, error) {
	_, err := m.Stat(path)
	return err == nil, nil
}

func (m mockFS) MkdirAll(path string, perm fs.FileMode) error {
	return nil
}

func (m mockFS) Rename(src, dst string) error {
	return nil
}

type mockTimes struct {
	timestamps map[string]time.Time
}

func (m mockTimes) Timestamp(path string, info fs.FileInfo, selector domain.TimestampSelector) (time.Time, error) {
	if ts, ok := m.timestamps[path]; ok {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("%s: %w", selector, appErrors.ErrMetadataUnavailable)
}

type mockExif struct {
	timestamps map[string]time.Time
}

func (m mockExif) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	if ts, ok := m.timestamps[path]; ok {
		return ts, nil
	}
	return time.Time{}, errors.New("missing exif")
}

type mockFileInfo struct {
	name  string
	isDir bool
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() interface{}   { return nil }

type recordingSink struct {
	updates   [][2]int
	completed bool
}

func (r *recordingSink) SetProgress(done, total int) {
	r.updates = append(r.updates, [2]int{done, total})
}

func (r *recordingSink) Complete() {
	r.completed = true
}
