// Package archive walks module archives: zip files bundling structural
// sources.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern selects sources anywhere in archive.
const DefaultPattern = "**/*.chtl"

// WalkFunc is called for each file in archive visited by Walk. The archive
// argument is path passed to Walk. If an error is returned, processing
// stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk calls walkFn for every file which name is under prefix and matches
// doublestar pattern (relative to prefix). Empty pattern is DefaultPattern.
// Archives with absolute entry names or ".." components are refused.
func Walk(archive, prefix, pattern string, walkFn WalkFunc) error {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("bad pattern %q", pattern)
	}
	prefix = strings.Trim(path.Clean("/"+strings.ReplaceAll(prefix, `\`, "/")), "/")

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		rel, ok := under(name, prefix)
		if !ok {
			continue
		}
		if match, _ := doublestar.Match(pattern, rel); !match {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// under returns name relative to directory prefix. Name equal to prefix is
// returned as is so single file may be selected.
func under(name, prefix string) (string, bool) {
	switch {
	case prefix == "":
		return name, true
	case name == prefix:
		return path.Base(name), true
	case strings.HasPrefix(name, prefix+"/"):
		return name[len(prefix)+1:], true
	}
	return "", false
}

// ReadFile returns content of archive entry.
func ReadFile(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
