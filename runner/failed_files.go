package runner

import (
	"os"
	"path/filepath"
	"regexp"
)

// A line naming a file starts with a relative-looking path followed directly
// by ":<digit>" (file:line) or " -- " (file -- message).
var failedFilePattern = regexp.MustCompile(`(?m)^\s*([^\s:]+)(?::\d| -- )`)

// FailedFiles returns the existing relative files named in the tool's
// output, in order of first appearance.
func (r *Runner) FailedFiles() []string {
	if !r.executed {
		return nil
	}
	return ExtractFailedFiles(r.result.Output(), r.settings.WorkDir)
}

// ExtractFailedFiles scans output for file references. Absolute paths and
// paths that do not exist under workDir are dropped.
func ExtractFailedFiles(output, workDir string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, match := range failedFilePattern.FindAllStringSubmatch(output, -1) {
		path := match[1]
		if filepath.IsAbs(path) || seen[path] {
			continue
		}
		seen[path] = true

		info, err := os.Stat(filepath.Join(workDir, path))
		if err != nil || info.IsDir() {
			continue
		}
		result = append(result, path)
	}

	return result
}
