package building

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gitlab.com/begraf/ikonwerk/catalog"
	"gitlab.com/begraf/ikonwerk/config"
	"gitlab.com/begraf/ikonwerk/data"
	"gitlab.com/begraf/ikonwerk/emit"
	"gitlab.com/begraf/ikonwerk/filesystem"
	"gitlab.com/begraf/ikonwerk/optimize"
)

type Options struct {
	Clean            bool
	ProjectDirectory string
	BuildDirectory   string
}

func RunBuildCmd(cmd *cobra.Command, args []string) error {
	if !config.HasProjectDirectory() {
		return fmt.Errorf("no project directory configured")
	}

	opts := Options{
		ProjectDirectory: config.ProjectDirectory(),
		BuildDirectory:   config.BuildDirectory(),
	}

	if clean, err := cmd.Flags().GetBool("clean"); err == nil {
		opts.Clean = clean
	}

	if output, err := cmd.Flags().GetString("output"); err == nil && output != "" {
		opts.BuildDirectory = output
	}

	return Build(opts)
}

type buildState struct {
	Options
	manifest data.Manifest
	store    *data.Store
}

// SVGDirectory is where the optimized icons land inside the build tree.
func (state *buildState) SVGDirectory() string {
	return filepath.Join(state.BuildDirectory, "svg")
}

// WriteFile writes a file at the given path interpreted relative to the build directory.
func (state *buildState) WriteFile(path string, content []byte) error {
	if filepath.IsAbs(path) {
		return fmt.Errorf("absolute path")
	}

	p := filepath.Join(state.BuildDirectory, path)

	return os.WriteFile(p, content, 0o666)
}

func Build(opts Options) error {
	if err := filesystem.CreateDirectoryIfNotExists(opts.BuildDirectory); err != nil {
		return fmt.Errorf("could not ensure build directory: %w", err)
	}

	manifest, err := data.ReadManifest(opts.ProjectDirectory)
	if err != nil {
		return err
	}

	state := &buildState{
		Options:  opts,
		manifest: manifest,
	}

	if err := filesystem.CreateDirectoryIfNotExists(state.SVGDirectory()); err != nil {
		return fmt.Errorf("could not ensure svg directory: %w", err)
	}

	sourceDirectory := filepath.Join(opts.ProjectDirectory, config.DefaultSourceDirectory())
	state.store, err = data.NewStore(sourceDirectory, state.SVGDirectory())
	if err != nil {
		return err
	}

	if len(state.store.Icons) == 0 {
		return fmt.Errorf("no icons found under '%s'", sourceDirectory)
	}

	log.Printf("loaded %d icons from '%s'", len(state.store.Icons), sourceDirectory)

	changed, err := collectChangedIcons(state)
	if err != nil {
		return err
	}

	optimized, err := optimizeIcons(state, changed)
	if err != nil {
		return err
	}

	if err := pruneStale(state.SVGDirectory(), state.keepFileNames()); err != nil {
		return err
	}

	// The catalog reconciliation is pure and cheap; it runs up front because
	// the cheatsheet's tag legend reads from it.
	cat := catalog.Load(filepath.Join(opts.ProjectDirectory, config.DefaultCatalogFile()))
	cat.Reconcile(state.store.Names())
	cat.Name = manifest.Name
	cat.Version = manifest.Version

	var g errgroup.Group

	g.Go(func() error {
		return writeCatalogs(state, cat)
	})

	g.Go(func() error {
		return emit.Package(optimized, state.BuildDirectory, manifest.Version)
	})

	g.Go(func() error {
		return writeSpriteAndCheatsheet(state, optimized, cat.Tags())
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if err := mirrorFixtures(state); err != nil {
		return err
	}

	if err := writeBuildCache(state); err != nil {
		log.Fatalf("write build cache: %s", err)
	}

	log.Println("done")

	return nil
}

// collectChangedIcons determines which icons must be re-optimized: everything
// on a clean build, otherwise icons whose source outdates the cached build or
// whose optimized output went missing.
func collectChangedIcons(state *buildState) (*IconSet, error) {
	s := NewIconSet()

	currentCache, err := readBuildCache(state.BuildDirectory)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("could not read cache: %v", err)
	}

	for _, ic := range state.store.Icons {
		performUpdate := true

		if !state.Clean {
			sourceModTime, err := filesystem.FileModifiedTime(ic.SourcePath)
			if err != nil {
				return nil, err
			}

			if cached, ok := currentCache.iconByName(ic.Name); ok {
				_, statErr := os.Stat(ic.OptimizedPath)
				performUpdate = statErr != nil || sourceModTime.After(cached.SourceModified)
			}
		}

		if !performUpdate {
			continue
		}

		s.Add(ic)
	}

	return s, nil
}

// optimizeIcons runs the optimizer over every changed icon in parallel and
// writes the results; unchanged icons are re-read from their on-disk optimized
// form. Any failure aborts the whole build.
func optimizeIcons(state *buildState, changed *IconSet) ([]*optimize.OptimizedIcon, error) {
	optimized := make([]*optimize.OptimizedIcon, len(state.store.Icons))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, ic := range state.store.Icons {
		i, ic := i, ic
		g.Go(func() error {
			if !changed.Contains(ic.Name) {
				markup, err := os.ReadFile(ic.OptimizedPath)
				if err == nil {
					optimized[i] = &optimize.OptimizedIcon{Icon: ic, Markup: markup}
					return nil
				}
				// Cached output unreadable, fall through to a fresh pass.
			}

			oic, err := optimize.Icon(ic)
			if err != nil {
				return err
			}

			if err := os.WriteFile(ic.OptimizedPath, oic.Markup, 0o666); err != nil {
				return fmt.Errorf("could not write optimized icon: %w", err)
			}

			optimized[i] = oic
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("optimized %d icons (%d reused)", changed.Len(), len(optimized)-changed.Len())

	return optimized, nil
}

func writeCatalogs(state *buildState, cat catalog.Catalog) error {
	sourcePath := filepath.Join(state.ProjectDirectory, config.DefaultCatalogFile())
	if err := cat.Write(sourcePath); err != nil {
		return err
	}

	distPath := filepath.Join(state.BuildDirectory, config.DistPackageName()+".json")

	return cat.Projection(config.DistPackageName(), state.manifest.Version).Write(distPath)
}

func writeSpriteAndCheatsheet(state *buildState, optimized []*optimize.OptimizedIcon, tags []string) error {
	sprite := emit.Sprite(optimized, state.manifest.Version)

	if err := state.WriteFile(config.DistPackageName()+".sprite.svg", sprite); err != nil {
		return fmt.Errorf("could not write sprite: %w", err)
	}

	page, err := emit.Cheatsheet(optimized, emit.CheatsheetOptions{
		Version:      state.manifest.Version,
		Sprite:       sprite,
		NotesPath:    filepath.Join(state.ProjectDirectory, config.DefaultNotesFile()),
		TemplatePath: filepath.Join(state.ProjectDirectory, config.DefaultTemplateFile()),
		Tags:         tags,
	})
	if err != nil {
		return err
	}

	if err := state.WriteFile("cheatsheet.html", page); err != nil {
		return fmt.Errorf("could not write cheatsheet: %w", err)
	}

	return nil
}
