package compile

import (
	"archive/zip"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"chtlc/archive"
	"chtlc/state"
)

const sourceExt = ".chtl"

// Source is single structural document found on input. Name is path
// relative to the walked input (always including file name) and is used for
// output naming, Origin is what gets logged.
type Source struct {
	Name   string
	Origin string
	read   func() ([]byte, error)
}

// Read returns source text decoded into UTF-8.
func (s Source) Read(env *state.LocalEnv) (string, error) {
	data, err := s.read()
	if err != nil {
		return "", err
	}
	return env.Decode(data)
}

func fileSource(path, name string) Source {
	return Source{Name: name, Origin: path, read: func() ([]byte, error) { return os.ReadFile(path) }}
}

// Discover finds sources for single command line argument: file, directory
// (recursively), zip archive or path inside it, or doublestar pattern.
func Discover(ctx context.Context, arg string, log *zap.Logger) ([]Source, error) {
	if _, err := os.Lstat(arg); err != nil && hasMeta(arg) {
		return discoverGlob(ctx, arg, log)
	}

	src, err := filepath.Abs(arg)
	if err != nil {
		return nil, err
	}
	// walk up until existing path is found, the rest could be path inside
	// of an archive
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			continue
		}
		if fi.IsDir() {
			if len(tail) != 0 {
				return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return discoverDir(ctx, head, log)
		}
		if !fi.Mode().IsRegular() {
			return nil, fmt.Errorf("unexpected path mode for (%s)", head)
		}
		if isArchive(head) {
			inner := strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			return discoverArchive(ctx, head, filepath.ToSlash(inner), "", log)
		}
		if len(tail) != 0 {
			return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		return []Source{fileSource(head, filepath.Base(head))}, nil
	}
	return nil, fmt.Errorf("input source was not found (%s)", arg)
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func isArchive(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zip")
}

func isSource(path string) bool {
	return strings.EqualFold(filepath.Ext(path), sourceExt)
}

func discoverGlob(ctx context.Context, pattern string, log *zap.Logger) ([]Source, error) {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("bad source pattern %q: %w", pattern, err)
	}
	var res []Source
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(filepath.FromSlash(base), m)
		if err != nil {
			rel = filepath.Base(m)
		}
		if isArchive(m) {
			inner, err := discoverArchive(ctx, m, "", filepath.Dir(rel), log)
			if err != nil {
				log.Error("Unable to process archive", zap.String("file", m), zap.Error(err))
			}
			res = append(res, inner...)
			continue
		}
		res = append(res, fileSource(m, rel))
	}
	if len(res) == 0 {
		log.Debug("Nothing matches", zap.String("pattern", pattern))
	}
	return res, nil
}

func discoverDir(ctx context.Context, dir string, log *zap.Logger) ([]Source, error) {
	var res []Source
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		switch {
		case isArchive(path):
			inner, err := discoverArchive(ctx, path, "", filepath.Dir(rel), log)
			if err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			res = append(res, inner...)
		case isSource(path):
			res = append(res, fileSource(path, rel))
		default:
			log.Debug("Skipping file, not recognized as source or archive", zap.String("file", path))
		}
		return nil
	})
	if err == nil && len(res) == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return res, err
}

// discoverArchive lists sources in archive under pathIn. Entry names are
// prefixed with pathOut so outputs keep archive location.
func discoverArchive(ctx context.Context, path, pathIn, pathOut string, log *zap.Logger) ([]Source, error) {
	env := state.EnvFromContext(ctx)

	pattern := archive.DefaultPattern
	if isSource(pathIn) {
		pattern = "*"
	}

	var res []Source
	err := archive.Walk(path, pathIn, pattern, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := f.Name
		if env.CodePage != nil && f.NonUTF8 {
			// zip does not define file name encoding, old archives need
			// code page forced
			if n, err := env.CodePage.NewDecoder().String(name); err == nil {
				name = n
			} else {
				log.Warn("Unable to convert archive name from specified encoding", zap.String("path", name), zap.Error(err))
			}
		}
		res = append(res, Source{
			Name:   filepath.Join(pathOut, filepath.FromSlash(name)),
			Origin: arc + ":" + f.Name,
			read:   func() ([]byte, error) { return readEntry(arc, f) },
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return res, nil
}

// readEntry reopens archive, entries collected by Walk are not valid after
// it returns.
func readEntry(arc string, entry *zip.File) ([]byte, error) {
	var data []byte
	err := archive.Walk(arc, entry.Name, "*", func(_ string, f *zip.File) error {
		if f.Name != entry.Name {
			return nil
		}
		var err error
		data, err = archive.ReadFile(f)
		return err
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("entry %s disappeared from %s", entry.Name, arc)
	}
	return data, nil
}
