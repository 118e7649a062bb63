package data

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gitlab.com/begraf/ikonwerk/data/icon"
)

// Store holds every icon discovered in the project's source directory,
// ordered by export name.
type Store struct {
	SourceDirectory string
	Icons           []*icon.Icon
}

// NewStore scans sourceDirectory for SVG files and loads one record per file.
// Name violations are errors; the whole build aborts rather than skipping a
// bad file silently.
func NewStore(sourceDirectory, optimizedDirectory string) (*Store, error) {
	store := &Store{
		SourceDirectory: sourceDirectory,
	}

	var err error
	store.Icons, err = loadIcons(sourceDirectory, optimizedDirectory)
	if err != nil {
		return nil, fmt.Errorf("load icons failed: %w", err)
	}

	return store, nil
}

func (s *Store) IconByName(name string) *icon.Icon {
	for _, ic := range s.Icons {
		if ic.Name == name {
			return ic
		}
	}

	return nil
}

// Names returns the icon identifiers in store order.
func (s *Store) Names() []string {
	names := make([]string, len(s.Icons))
	for i, ic := range s.Icons {
		names[i] = ic.Name
	}

	return names
}

func loadIcons(sourceDirectory, optimizedDirectory string) ([]*icon.Icon, error) {
	entries, err := os.ReadDir(sourceDirectory)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	var icons []*icon.Icon
	seen := make(map[string]bool)

	for _, entry := range entries {
		fileName := entry.Name()

		if !entry.Type().IsRegular() {
			continue
		}

		if strings.HasPrefix(fileName, ".") {
			continue
		}

		if filepath.Ext(fileName) != icon.Extension {
			continue
		}

		source, err := os.ReadFile(filepath.Join(sourceDirectory, fileName))
		if err != nil {
			return nil, fmt.Errorf("could not read source file: %w", err)
		}

		ic, err := icon.New(
			fileName,
			filepath.Join(sourceDirectory, fileName),
			filepath.Join(optimizedDirectory, fileName),
			source,
		)
		if err != nil {
			return nil, err
		}

		if seen[ic.Name] {
			return nil, fmt.Errorf("duplicate icon name '%s'", ic.Name)
		}
		seen[ic.Name] = true

		icons = append(icons, ic)
	}

	sort.Slice(icons, func(i, j int) bool {
		return icons[i].ExportName < icons[j].ExportName
	})

	return icons, nil
}
