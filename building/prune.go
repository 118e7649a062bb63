package building

import (
	"log"
	"os"
	"path/filepath"
)

// pruneStale removes regular files in dir whose name is not in keep. Outputs
// are overwrite-idempotent, so stale files are the only way a vanished icon
// could survive a rebuild.
func pruneStale(dir string, keep map[string]bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if keep[entry.Name()] {
			continue
		}

		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}

		log.Printf("pruned stale file '%s'", entry.Name())
	}

	return nil
}

// keepFileNames is the optimized-file name set of the current icon store.
func (state *buildState) keepFileNames() map[string]bool {
	keep := make(map[string]bool, len(state.store.Icons))
	for _, ic := range state.store.Icons {
		keep[ic.FileName] = true
	}

	return keep
}
