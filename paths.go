package configcake

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// splitList splits a comma-separated string into a list, trimming the
// surrounding whitespace of each entry.
func splitList(source string) []string {
	parts := strings.Split(source, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// expandUser replaces a leading ~ with the invoking user's home directory.
func expandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// resolveLayerPaths resolves layer filenames to absolute paths. A leading ~
// expands to the user's home directory first; anything still relative is
// resolved against the absolute directory containing the master file, not
// the process working directory.
func resolveLayerPaths(masterPath string, names []string) ([]string, error) {
	masterAbs, err := filepath.Abs(masterPath)
	if err != nil {
		return nil, fmt.Errorf("resolve master path %s: %w", masterPath, err)
	}
	baseDir := filepath.Dir(masterAbs)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		expanded, err := expandUser(name)
		if err != nil {
			return nil, err
		}
		if !filepath.IsAbs(expanded) {
			expanded = filepath.Join(baseDir, expanded)
		}
		paths = append(paths, expanded)
	}
	return paths, nil
}
