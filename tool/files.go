package tool

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

const defaultSeparator = " "

const (
	frameworkMinitest = "minitest"
	frameworkRSpec    = "rspec"
)

// SupportsFiles reports whether the tool accepts explicit file targets.
func (t *Tool) SupportsFiles() bool {
	_, ok := t.Files()
	return ok
}

// FileFlag returns the flag placed before targeted files and the separator
// used to join them.
func (t *Tool) FileFlag() (flag, separator string) {
	files, _ := t.Files()
	separator = files.Separator
	if separator == "" {
		separator = defaultSeparator
	}
	return files.Flag, separator
}

// TargetFiles narrows requested paths to the ones this tool should receive:
// those matching its pattern, mapped to test files when configured.
func (t *Tool) TargetFiles(requested []string, workDir string) []string {
	files, ok := t.Files()
	if !ok {
		return nil
	}

	var matcher glob.Glob
	if files.Pattern != "" {
		g, err := glob.Compile(files.Pattern, '/')
		if err != nil {
			zap.S().Warnf("ignoring invalid file pattern %q for %s: %v", files.Pattern, t.Key(), err)
		} else {
			matcher = g
		}
	}

	seen := make(map[string]bool)
	var result []string

	for _, path := range requested {
		path = filepath.ToSlash(filepath.Clean(path))
		if matcher != nil && !matcher.Match(path) && !matcher.Match(filepath.Base(path)) {
			continue
		}

		if files.MapToTests != "" {
			mapped, ok := testFileFor(path, files.MapToTests, workDir)
			if !ok {
				continue
			}
			path = mapped
		}

		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	return result
}

// testFileFor maps a source file to its conventional test file. Paths that
// already are test files map to themselves. The mapped file must exist.
func testFileFor(path, framework, workDir string) (string, bool) {
	var dir, suffix string
	switch framework {
	case frameworkMinitest:
		dir, suffix = "test", "_test"
	case frameworkRSpec:
		dir, suffix = "spec", "_spec"
	default:
		return path, true
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	candidate := path
	if !strings.HasSuffix(base, suffix) {
		rest := base
		if i := strings.Index(rest, "/"); i >= 0 && (strings.HasPrefix(rest, "app/") || strings.HasPrefix(rest, "lib/")) {
			rest = rest[i+1:]
		}
		candidate = dir + "/" + rest + suffix + ext
	}

	if _, err := os.Stat(filepath.Join(workDir, filepath.FromSlash(candidate))); err != nil {
		return "", false
	}
	return candidate, true
}
