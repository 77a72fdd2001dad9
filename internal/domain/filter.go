package domain

import "strings"

// ExtensionFilter is a set of raw extensions (no leading dot, case-sensitive)
// plus a flag telling whether the filter takes effect.
type ExtensionFilter struct {
	Extensions map[string]struct{}
	Enabled    bool
}

// NewExtensionFilter builds a filter that is enabled when list is non-empty.
func NewExtensionFilter(list []string) ExtensionFilter {
	f := ExtensionFilter{
		Extensions: make(map[string]struct{}, len(list)),
		Enabled:    len(list) > 0,
	}
	for _, ext := range list {
		f.Extensions[ext] = struct{}{}
	}
	return f
}

// ParseExtensionFilter splits a command-line value such as "jpg-png" or
// "jpg,png". An enabled filter with an empty value matches files that have
// no extension.
func ParseExtensionFilter(value string, enabled bool) ExtensionFilter {
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == '-' || r == ',' })
	if len(parts) == 0 {
		parts = []string{""}
	}
	f := NewExtensionFilter(parts)
	f.Enabled = enabled
	return f
}

func (f ExtensionFilter) Contains(ext string) bool {
	_, ok := f.Extensions[ext]
	return ok
}

func (f ExtensionFilter) List() []string {
	out := make([]string, 0, len(f.Extensions))
	for ext := range f.Extensions {
		out = append(out, ext)
	}
	return out
}

// IsSortable reports whether file takes part in a sort. An enabled only
// filter always wins over exclude.
func IsSortable(file FileRef, exclude, only ExtensionFilter) bool {
	ext := file.Extension()
	if only.Enabled {
		return only.Contains(ext)
	}
	if exclude.Enabled && exclude.Contains(ext) {
		return false
	}
	return true
}
