package domain

import (
	"path/filepath"
	"strings"
)

// FileRef is an immutable handle to a filesystem path. Two refs are equal
// when their cleaned paths are equal, so FileRef can be used as a map key.
type FileRef struct {
	path string
}

func NewFileRef(path string) FileRef {
	return FileRef{path: filepath.Clean(path)}
}

func (f FileRef) String() string {
	return f.path
}

func (f FileRef) Name() string {
	return filepath.Base(f.path)
}

// Extension returns the text after the last dot of the file name, without
// the dot. Names with no dot, or whose only dot is the leading one
// (".bashrc"), have no extension.
func (f FileRef) Extension() string {
	name := f.Name()
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

// Stem returns the file name without its extension.
func (f FileRef) Stem() string {
	name := f.Name()
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	return name[:i]
}

func (f FileRef) Dir() FileRef {
	return FileRef{path: filepath.Dir(f.path)}
}

func (f FileRef) Join(elem ...string) FileRef {
	return NewFileRef(filepath.Join(append([]string{f.path}, elem...)...))
}

func (f FileRef) IsZero() bool {
	return f.path == ""
}
