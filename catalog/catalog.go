package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gitlab.com/begraf/ikonwerk/data/icon"
)

// Entry is one persisted icon with its search tags.
type Entry struct {
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

// Catalog is the persisted record of all known icons. src/data.json is the
// source of truth; a reduced projection ships with the distribution.
type Catalog struct {
	Name    string  `json:"name,omitempty"`
	Version string  `json:"version,omitempty"`
	Icons   []Entry `json:"icons"`
}

// Load reads a persisted catalog. A missing or unparseable file yields an
// empty catalog; curated tags are valuable but never worth failing a build
// over, the reconciliation rebuilds the rest.
func Load(path string) Catalog {
	empty := Catalog{Icons: []Entry{}}

	payload, err := os.ReadFile(path)
	if err != nil {
		return empty
	}

	var c Catalog
	if err := json.Unmarshal(payload, &c); err != nil {
		return empty
	}

	if c.Icons == nil {
		c.Icons = []Entry{}
	}

	return c
}

// Reconcile brings the catalog in line with the current icon set: new icons
// gain entries, vanished icons lose theirs, existing tags survive verbatim,
// and everything ends up sorted.
func (c *Catalog) Reconcile(names []string) {
	c.Icons = sortAll(defaultTags(prune(merge(c.Icons, names), names)))
}

// merge appends an empty entry for every name without one.
func merge(entries []Entry, names []string) []Entry {
	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.Name] = true
	}

	for _, name := range names {
		if !known[name] {
			entries = append(entries, Entry{Name: name})
		}
	}

	return entries
}

// prune drops entries whose icon no longer exists.
func prune(entries []Entry, names []string) []Entry {
	current := make(map[string]bool, len(names))
	for _, name := range names {
		current[name] = true
	}

	kept := entries[:0]
	for _, e := range entries {
		if current[e.Name] {
			kept = append(kept, e)
		}
	}

	return kept
}

// defaultTags fills empty tag sets from the hyphen segments of the name.
func defaultTags(entries []Entry) []Entry {
	for i, e := range entries {
		if len(e.Tags) == 0 {
			entries[i].Tags = icon.DeriveTags(e.Name)
		}
	}

	return entries
}

func sortAll(entries []Entry) []Entry {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	for _, e := range entries {
		sort.Strings(e.Tags)
	}

	return entries
}

// Tags returns the distinct tags across all entries, sorted.
func (c *Catalog) Tags() []string {
	seen := make(map[string]bool)

	var tags []string
	for _, e := range c.Icons {
		for _, t := range e.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}

	sort.Strings(tags)

	return tags
}

// Write persists the catalog as indented JSON.
func (c Catalog) Write(path string) error {
	payload, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	payload = append(payload, '\n')

	if err := os.WriteFile(path, payload, 0o666); err != nil {
		return fmt.Errorf("could not write catalog: %w", err)
	}

	return nil
}

// Projection is the distribution form of the catalog: a fixed package name,
// the build version, and the reconciled entries.
func (c Catalog) Projection(packageName, version string) Catalog {
	return Catalog{
		Name:    packageName,
		Version: version,
		Icons:   c.Icons,
	}
}
