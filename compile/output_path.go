package compile

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"chtlc/config"
	"chtlc/state"
)

// buildOutputPath returns output file path for source src (relative to the
// walked input) under destination dst. It uses either default naming scheme
// or user defined template and takes into account whether to preserve
// source directory structure. Segments are cleaned and, if requested,
// transliterated.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)
	ext := env.Cfg.Output.Extension

	if env.Cfg.Output.OutputNameTemplate == "" {
		return filepath.Join(outDir, buildDefaultFileName(src, env)+ext)
	}

	expanded, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Output.OutputNameTemplate,
		newValues(config.OutputNameTemplateFieldName, src))
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		expanded = ""
	}
	segments := splitPath(filepath.FromSlash(expanded))
	if len(segments) == 0 {
		// fallback to default name when template expanded to nothing
		return filepath.Join(outDir, buildDefaultFileName(src, env)+ext)
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, s := range segments {
		parts = append(parts, cleanPathSegment(s, env))
	}
	parts[len(parts)-1] += ext
	return filepath.Join(parts...)
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func buildDefaultFileName(src string, env *state.LocalEnv) string {
	return cleanPathSegment(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)), env)
}

// splitPath returns non empty path segments in order.
func splitPath(path string) []string {
	var segments []string
	for head, tail := filepath.Split(strings.TrimRight(path, string(os.PathSeparator))); ; head, tail = filepath.Split(head) {
		if tail != "" && tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimRight(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Output.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

// sidePath returns path of file written next to output with different
// extension.
func sidePath(out, ext string) string {
	return strings.TrimSuffix(out, filepath.Ext(out)) + ext
}
