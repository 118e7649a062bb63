package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest carries the fields of the project's package.json that the build
// cares about. The version stamped onto every artifact originates here.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func ReadManifest(projectDirectory string) (Manifest, error) {
	var manifest Manifest

	payload, err := os.ReadFile(filepath.Join(projectDirectory, "package.json"))
	if err != nil {
		return manifest, fmt.Errorf("could not read package manifest: %w", err)
	}

	if err := json.Unmarshal(payload, &manifest); err != nil {
		return manifest, fmt.Errorf("could not parse package manifest: %w", err)
	}

	if manifest.Version == "" {
		return manifest, fmt.Errorf("package manifest carries no version")
	}

	return manifest, nil
}
