package building

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gitlab.com/begraf/ikonwerk/filesystem"
)

const cacheFileName = ".ikonwerk-cache.json"

// buildCache records, per icon, when its source was last modified at build
// time. A later build re-optimizes only the icons whose sources moved on.
type buildCache struct {
	BuildID string      `json:"buildId"`
	Version string      `json:"version"`
	Icons   []cacheIcon `json:"icons"`
}

type cacheIcon struct {
	Name           string    `json:"name"`
	SourceModified time.Time `json:"sourceModified"`
	OutputPath     string    `json:"outputPath"`
}

func (c buildCache) iconByName(name string) (cacheIcon, bool) {
	for _, ci := range c.Icons {
		if ci.Name == name {
			return ci, true
		}
	}

	return cacheIcon{}, false
}

func readBuildCache(buildDirectory string) (cache buildCache, err error) {
	payloadBytes, err := os.ReadFile(filepath.Join(buildDirectory, cacheFileName))
	if err != nil {
		return
	}

	err = json.Unmarshal(payloadBytes, &cache)
	return
}

func makeBuildCache(state *buildState) buildCache {
	cache := buildCache{
		BuildID: uuid.NewString(),
		Version: state.manifest.Version,
	}

	for _, ic := range state.store.Icons {
		mod, err := filesystem.FileModifiedTime(ic.SourcePath)
		if err != nil {
			continue
		}

		cache.Icons = append(cache.Icons, cacheIcon{
			Name:           ic.Name,
			SourceModified: mod,
			OutputPath:     ic.OptimizedPath,
		})
	}

	return cache
}

func writeBuildCache(state *buildState) error {
	cache := makeBuildCache(state)

	jsonBytes, err := json.Marshal(cache)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(state.BuildDirectory, cacheFileName), jsonBytes, 0o666)
}
