package fs

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// AferoFS adapts an afero filesystem to the planner and executor ports.
// Walk and ReadDir visit names in lexical order.
type AferoFS struct {
	Fs afero.Fs
}

func NewOSFS() AferoFS {
	return AferoFS{Fs: afero.NewOsFs()}
}

func NewMemFS() AferoFS {
	return AferoFS{Fs: afero.NewMemMapFs()}
}

func (a AferoFS) Walk(root string, fn filepath.WalkFunc) error {
	return afero.Walk(a.Fs, root, fn)
}

func (a AferoFS) ReadDir(path string) ([]fs.FileInfo, error) {
	return afero.ReadDir(a.Fs, path)
}

func (a AferoFS) Stat(path string) (fs.FileInfo, error) {
	return a.Fs.Stat(path)
}

func (a AferoFS) Exists(path string) (bool, error) {
	return afero.Exists(a.Fs, path)
}

func (a AferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.Fs.MkdirAll(path, perm)
}

func (a AferoFS) Rename(src, dst string) error {
	return a.Fs.Rename(src, dst)
}
