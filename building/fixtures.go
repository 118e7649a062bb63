package building

import (
	"fmt"
	"log"
	"path/filepath"

	"gitlab.com/begraf/ikonwerk/config"
	"gitlab.com/begraf/ikonwerk/data/icon"
	"gitlab.com/begraf/ikonwerk/filesystem"
)

// mirrorFixtures copies the optimized icons and the cheatsheet into the
// project's fixture tree for manual browser testing. Plain copies, no
// transformation.
func mirrorFixtures(state *buildState) error {
	fixtureDirectory := filepath.Join(state.ProjectDirectory, config.DefaultFixtureDirectory())
	fixtureSVGDirectory := filepath.Join(fixtureDirectory, "svg")

	if err := filesystem.CreateDirectoryIfNotExists(fixtureSVGDirectory); err != nil {
		return fmt.Errorf("could not ensure fixture directory: %w", err)
	}

	if err := pruneStale(fixtureSVGDirectory, state.keepFileNames()); err != nil {
		return err
	}

	svgPaths, err := filesystem.GatherFiles(state.SVGDirectory(), []string{icon.Extension})
	if err != nil {
		return fmt.Errorf("scanning optimized icons: %w", err)
	}

	for _, inPath := range svgPaths {
		outPath := filepath.Join(fixtureSVGDirectory, filepath.Base(inPath))

		if err := filesystem.Copy(inPath, outPath); err != nil {
			return err
		}
	}

	cheatsheet := filepath.Join(state.BuildDirectory, "cheatsheet.html")
	if err := filesystem.Copy(cheatsheet, filepath.Join(fixtureDirectory, "cheatsheet.html")); err != nil {
		return err
	}

	log.Printf("mirrored %d fixtures into '%s'", len(svgPaths)+1, fixtureDirectory)

	return nil
}
