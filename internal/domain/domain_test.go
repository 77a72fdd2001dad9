package domain

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRefViews(t *testing.T) {
	tests := []struct {
		path string
		name string
		stem string
		ext  string
	}{
		{path: "my_file.txt", name: "my_file.txt", stem: "my_file", ext: "txt"},
		{path: "dir/archive.tar.gz", name: "archive.tar.gz", stem: "archive.tar", ext: "gz"},
		{path: "dir/test", name: "test", stem: "test", ext: ""},
		{path: "dir/.bashrc", name: ".bashrc", stem: ".bashrc", ext: ""},
		{path: "target/2021/02/2021 test.", name: "2021 test.", stem: "2021 test", ext: ""},
	}
	for _, tt := range tests {
		ref := NewFileRef(tt.path)
		if ref.Name() != tt.name || ref.Stem() != tt.stem || ref.Extension() != tt.ext {
			t.Errorf("%s: got name=%q stem=%q ext=%q", tt.path, ref.Name(), ref.Stem(), ref.Extension())
		}
	}
}

func TestFileRefEqualityIsByCleanedPath(t *testing.T) {
	a := NewFileRef("source/./files/../test.jpg")
	b := NewFileRef("source/test.jpg")
	if a != b {
		t.Fatalf("expected %q == %q", a, b)
	}
	if got := NewFileRef("my_file.txt").Join("my_file.txt"); got != NewFileRef("my_file.txt/my_file.txt") {
		t.Fatalf("unexpected join: %q", got)
	}
}

func TestIsSortable(t *testing.T) {
	file := NewFileRef("file.txt")
	disabled := ExtensionFilter{}
	txt := NewExtensionFilter([]string{"txt"})

	if !IsSortable(file, disabled, txt) {
		t.Fatalf("only=txt should include file.txt")
	}
	if !IsSortable(file, txt, txt) {
		t.Fatalf("only must win over exclude")
	}
	if !IsSortable(file, disabled, disabled) {
		t.Fatalf("no filters should include everything")
	}
	if IsSortable(file, txt, disabled) {
		t.Fatalf("exclude=txt should skip file.txt")
	}
	if IsSortable(file, disabled, NewExtensionFilter([]string{"jpg"})) {
		t.Fatalf("only=jpg should skip file.txt")
	}
}

func TestIsSortableWithoutFiltersAcceptsExtensionlessFiles(t *testing.T) {
	for _, name := range []string{"test", ".bashrc", "a.b.c", "x."} {
		if !IsSortable(NewFileRef(name), ExtensionFilter{}, ExtensionFilter{}) {
			t.Errorf("%s should be sortable with no filters", name)
		}
	}
}

func TestOnlyDominatesExclude(t *testing.T) {
	exts := []string{"jpg", "png", "", "txt"}
	for _, ext := range exts {
		file := NewFileRef("photo." + ext)
		if ext == "" {
			file = NewFileRef("photo")
		}
		only := NewExtensionFilter([]string{ext})
		exclude := NewExtensionFilter(exts)
		if !IsSortable(file, exclude, only) {
			t.Errorf("ext %q: only should dominate exclude", ext)
		}
	}
}

func TestParseExtensionFilter(t *testing.T) {
	f := ParseExtensionFilter("jpg-png,gif", true)
	for _, ext := range []string{"jpg", "png", "gif"} {
		if !f.Contains(ext) {
			t.Errorf("expected %q in filter", ext)
		}
	}
	if f.Contains("JPG") {
		t.Errorf("filters are case-sensitive")
	}

	empty := ParseExtensionFilter("", true)
	if !empty.Enabled || !empty.Contains("") {
		t.Fatalf("enabled empty filter should match extension-less files")
	}
	if IsSortable(NewFileRef("README"), empty, ExtensionFilter{}) {
		t.Fatalf("README should be excluded by an empty exclude entry")
	}
}

func TestParseTimestampSelector(t *testing.T) {
	cases := map[string]TimestampSelector{"c": Created, "m": Modified, "a": Accessed, "e": Taken, "": Created}
	for in, want := range cases {
		got, err := ParseTimestampSelector(in)
		if err != nil || got != want {
			t.Errorf("%q: got %v, %v", in, got, err)
		}
	}
	if _, err := ParseTimestampSelector("x"); err == nil {
		t.Fatalf("expected error for unknown date type")
	}
}

func TestDestination(t *testing.T) {
	target := NewFileRef("/target")
	ts := time.Date(2021, 2, 1, 9, 5, 7, 0, time.Local)

	tests := []struct {
		file     string
		format   string
		preserve bool
		want     string
	}{
		{file: "/src/test.jpg", format: "%Y", want: "/target/2021/02/2021.jpg"},
		{file: "/src/test.jpg", format: "%Y", preserve: true, want: "/target/2021/02/2021 test.jpg"},
		{file: "/src/files/test", format: "%Y", preserve: true, want: "/target/2021/02/2021 test."},
		{file: "/src/a.png", format: DefaultDateFormat, want: "/target/2021/02/2021-02-01 09h05m07s.png"},
	}
	for _, tt := range tests {
		got := Destination(target, NewFileRef(tt.file), ts, tt.format, tt.preserve)
		if got != NewFileRef(filepath.FromSlash(tt.want)) {
			t.Errorf("%s: got %q, want %q", tt.file, got, tt.want)
		}
	}
}

func TestDestinationIsDeterministic(t *testing.T) {
	target := NewFileRef("/target")
	file := NewFileRef("/src/IMG_0001.JPG")
	ts := time.Date(1999, 12, 31, 23, 59, 59, 0, time.Local)

	first := Destination(target, file, ts, DefaultDateFormat, true)
	for i := 0; i < 10; i++ {
		if got := Destination(target, file, ts, DefaultDateFormat, true); got != first {
			t.Fatalf("call %d: got %q, want %q", i, got, first)
		}
	}
}

func TestResolveCollision(t *testing.T) {
	dir := NewFileRef("/target/2021/02")
	candidate := dir.Join("test.txt")

	assigned := map[FileRef]struct{}{}
	if got := ResolveCollision(candidate, assigned); got != candidate {
		t.Fatalf("free candidate should be unchanged, got %q", got)
	}

	assigned[candidate] = struct{}{}
	assigned[dir.Join("test_1.txt")] = struct{}{}
	if got := ResolveCollision(candidate, assigned); got != dir.Join("test_2.txt") {
		t.Fatalf("got %q, want test_2.txt", got)
	}

	assigned[dir.Join("test_2.txt")] = struct{}{}
	if got := ResolveCollision(candidate, assigned); got != dir.Join("test_3.txt") {
		t.Fatalf("got %q, want test_3.txt", got)
	}
}

func TestResolveCollisionKeepsTrailingDot(t *testing.T) {
	candidate := NewFileRef("/target/2021/02/2021 test.")
	assigned := map[FileRef]struct{}{candidate: {}}
	if got := ResolveCollision(candidate, assigned); got != NewFileRef("/target/2021/02/2021 test_2.") {
		t.Fatalf("got %q", got)
	}
}

func TestResolveCollisionAssignsDistinctNames(t *testing.T) {
	candidate := NewFileRef("/target/2021/02/2021.jpg")
	assigned := map[FileRef]struct{}{}
	var order []FileRef
	for i := 0; i < 25; i++ {
		got := ResolveCollision(candidate, assigned)
		if _, dup := assigned[got]; dup {
			t.Fatalf("duplicate destination %q", got)
		}
		assigned[got] = struct{}{}
		order = append(order, got)
	}
	if order[0] != candidate {
		t.Fatalf("first file should keep the unsuffixed name, got %q", order[0])
	}
	if want := NewFileRef(fmt.Sprintf("/target/2021/02/2021_%d.jpg", 25)); order[24] != want {
		t.Fatalf("got %q, want %q", order[24], want)
	}
}

func TestResolveCollisionWithLeadingDotName(t *testing.T) {
	// ".jpg" has no extension, so the whole name is the stem.
	candidate := Destination(NewFileRef("/t"), NewFileRef("/src/a.jpg"), time.Date(2021, 2, 1, 0, 0, 0, 0, time.Local), "", false)
	if candidate != NewFileRef("/t/2021/02/.jpg") {
		t.Fatalf("unexpected candidate %q", candidate)
	}
	assigned := map[FileRef]struct{}{candidate: {}}
	second := ResolveCollision(candidate, assigned)
	if second != NewFileRef("/t/2021/02/.jpg_2.") {
		t.Fatalf("got %q", second)
	}
	assigned[second] = struct{}{}
	if third := ResolveCollision(candidate, assigned); third != NewFileRef("/t/2021/02/.jpg_3.") {
		t.Fatalf("got %q", third)
	}
}
