package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GatherFiles collects the regular files directly under root whose extension
// (case-insensitive) is one of the given ones.
func GatherFiles(root string, extensions []string) ([]string, error) {
	hasExtension := func(name string) bool {
		ext := strings.ToLower(filepath.Ext(name))
		for _, e := range extensions {
			if e == ext {
				return true
			}
		}
		return false
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if !hasExtension(entry.Name()) {
			continue
		}

		paths = append(paths, filepath.Join(root, entry.Name()))
	}

	return paths, nil
}
