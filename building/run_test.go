package building

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/begraf/ikonwerk/catalog"
)

const probeSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512" viewBox="0 0 512 512"><path fill="none" stroke="#000" stroke-width="32" d="M80 80 L432 432"/></svg>`

func newProject(t *testing.T, iconNames ...string) string {
	t.Helper()

	project := t.TempDir()
	svgDir := filepath.Join(project, "src", "svg")
	require.NoError(t, os.MkdirAll(svgDir, 0o777))

	manifest := `{"name": "ionicons", "version": "7.1.0"}`
	require.NoError(t, os.WriteFile(filepath.Join(project, "package.json"), []byte(manifest), 0o666))

	for _, name := range iconNames {
		require.NoError(t, os.WriteFile(filepath.Join(svgDir, name+".svg"), []byte(probeSVG), 0o666))
	}

	return project
}

func buildOptions(project string) Options {
	return Options{
		ProjectDirectory: project,
		BuildDirectory:   filepath.Join(project, "dist"),
	}
}

func readProjectFile(t *testing.T, project string, parts ...string) []byte {
	t.Helper()
	payload, err := os.ReadFile(filepath.Join(append([]string{project}, parts...)...))
	require.NoError(t, err)
	return payload
}

func TestBuildArtifacts(t *testing.T) {
	project := newProject(t, "airplane-outline", "menu")
	require.NoError(t, Build(buildOptions(project)))

	t.Run("optimized icons", func(t *testing.T) {
		optimized := string(readProjectFile(t, project, "dist", "svg", "airplane-outline.svg"))
		assert.Contains(t, optimized, `class="ionicon`)
		assert.NotContains(t, optimized, "stroke=")
	})

	t.Run("catalogs", func(t *testing.T) {
		var source catalog.Catalog
		require.NoError(t, json.Unmarshal(readProjectFile(t, project, "src", "data.json"), &source))
		require.Len(t, source.Icons, 2)
		assert.Equal(t, "airplane-outline", source.Icons[0].Name)
		assert.Equal(t, []string{"airplane", "outline"}, source.Icons[0].Tags)

		var dist catalog.Catalog
		require.NoError(t, json.Unmarshal(readProjectFile(t, project, "dist", "ionicons.json"), &dist))
		assert.Equal(t, "ionicons", dist.Name)
		assert.Equal(t, "7.1.0", dist.Version)
		assert.Equal(t, source.Icons, dist.Icons)
	})

	t.Run("sprite", func(t *testing.T) {
		sprite := string(readProjectFile(t, project, "dist", "ionicons.sprite.svg"))
		assert.Contains(t, sprite, `data-ikonwerk="7.1.0"`)
		assert.Contains(t, sprite, `<symbol id="airplane-outline"`)
		assert.Contains(t, sprite, `<symbol id="menu"`)
	})

	t.Run("cheatsheet", func(t *testing.T) {
		page := string(readProjectFile(t, project, "dist", "cheatsheet.html"))
		assert.Contains(t, page, "2 icons")
		assert.Contains(t, page, `<use href="#menu"`)
	})

	t.Run("package", func(t *testing.T) {
		index := string(readProjectFile(t, project, "dist", "icons", "index.mjs"))
		assert.Contains(t, index, "airplaneOutline")
		assert.Contains(t, index, "menu")

		for _, name := range []string{"airplane-outline.mjs", "airplane-outline.js", "menu.mjs", "menu.js"} {
			_, err := os.Stat(filepath.Join(project, "dist", "icons", "imports", name))
			assert.NoError(t, err, name)
		}
	})

	t.Run("fixture mirror", func(t *testing.T) {
		mirror := readProjectFile(t, project, "www", "svg", "menu.svg")
		built := readProjectFile(t, project, "dist", "svg", "menu.svg")
		assert.Equal(t, built, mirror)

		page := readProjectFile(t, project, "www", "cheatsheet.html")
		assert.Equal(t, readProjectFile(t, project, "dist", "cheatsheet.html"), page)
	})

	t.Run("build cache", func(t *testing.T) {
		cache, err := readBuildCache(filepath.Join(project, "dist"))
		require.NoError(t, err)
		assert.NotEmpty(t, cache.BuildID)
		assert.Len(t, cache.Icons, 2)
	})
}

func TestBuildIsIdempotent(t *testing.T) {
	project := newProject(t, "airplane-outline", "menu")
	opts := buildOptions(project)

	require.NoError(t, Build(opts))

	first := map[string][]byte{}
	stable := [][]string{
		{"src", "data.json"},
		{"dist", "ionicons.json"},
		{"dist", "ionicons.sprite.svg"},
		{"dist", "svg", "menu.svg"},
		{"dist", "icons", "index.mjs"},
		{"dist", "icons", "index.js"},
		{"dist", "icons", "index.d.ts"},
		{"dist", "icons", "package.json"},
	}
	for _, parts := range stable {
		first[filepath.Join(parts...)] = readProjectFile(t, project, parts...)
	}

	require.NoError(t, Build(opts))

	for _, parts := range stable {
		assert.Equal(t,
			string(first[filepath.Join(parts...)]),
			string(readProjectFile(t, project, parts...)),
			filepath.Join(parts...),
		)
	}
}

func TestBuildAddIcon(t *testing.T) {
	project := newProject(t, "airplane")
	opts := buildOptions(project)
	require.NoError(t, Build(opts))

	// Curate a tag by hand; it must survive the next build.
	catalogPath := filepath.Join(project, "src", "data.json")
	cat := catalog.Load(catalogPath)
	cat.Icons[0].Tags = []string{"travel", "flight"}
	require.NoError(t, cat.Write(catalogPath))

	svgDir := filepath.Join(project, "src", "svg")
	require.NoError(t, os.WriteFile(filepath.Join(svgDir, "menu.svg"), []byte(probeSVG), 0o666))

	require.NoError(t, Build(opts))

	cat = catalog.Load(catalogPath)
	require.Len(t, cat.Icons, 2)
	assert.Equal(t, "airplane", cat.Icons[0].Name)
	assert.Equal(t, []string{"flight", "travel"}, cat.Icons[0].Tags)
	assert.Equal(t, "menu", cat.Icons[1].Name)
	assert.Equal(t, []string{"menu"}, cat.Icons[1].Tags)

	_, err := os.Stat(filepath.Join(project, "dist", "icons", "imports", "menu.mjs"))
	assert.NoError(t, err)
}

func TestBuildRemoveIcon(t *testing.T) {
	project := newProject(t, "airplane", "menu")
	opts := buildOptions(project)
	require.NoError(t, Build(opts))

	require.NoError(t, os.Remove(filepath.Join(project, "src", "svg", "menu.svg")))
	require.NoError(t, Build(opts))

	cat := catalog.Load(filepath.Join(project, "src", "data.json"))
	require.Len(t, cat.Icons, 1)
	assert.Equal(t, "airplane", cat.Icons[0].Name)

	for _, parts := range [][]string{
		{"dist", "svg", "menu.svg"},
		{"dist", "icons", "imports", "menu.mjs"},
		{"dist", "icons", "imports", "menu.js"},
		{"www", "svg", "menu.svg"},
	} {
		_, err := os.Stat(filepath.Join(append([]string{project}, parts...)...))
		assert.True(t, os.IsNotExist(err), filepath.Join(parts...))
	}

	index := string(readProjectFile(t, project, "dist", "icons", "index.mjs"))
	assert.NotContains(t, index, "menu")
}

func TestBuildAbortsOnBadFileName(t *testing.T) {
	project := newProject(t, "airplane")
	svgDir := filepath.Join(project, "src", "svg")
	require.NoError(t, os.WriteFile(filepath.Join(svgDir, "a.b.svg"), []byte(probeSVG), 0o666))

	err := Build(buildOptions(project))
	require.Error(t, err)

	// Nothing was written.
	entries, readErr := os.ReadDir(filepath.Join(project, "dist", "svg"))
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestBuildAbortsOnMalformedSVG(t *testing.T) {
	project := newProject(t, "airplane")
	svgDir := filepath.Join(project, "src", "svg")
	require.NoError(t, os.WriteFile(filepath.Join(svgDir, "broken.svg"), []byte("<div>not svg</div>"), 0o666))

	err := Build(buildOptions(project))
	require.Error(t, err)
}

func TestBuildCleanReoptimizes(t *testing.T) {
	project := newProject(t, "airplane")
	opts := buildOptions(project)
	require.NoError(t, Build(opts))

	// Corrupt the optimized output behind the cache's back.
	optimizedPath := filepath.Join(project, "dist", "svg", "airplane.svg")
	require.NoError(t, os.WriteFile(optimizedPath, []byte("garbage"), 0o666))

	opts.Clean = true
	require.NoError(t, Build(opts))

	assert.Contains(t, string(readProjectFile(t, project, "dist", "svg", "airplane.svg")), "ionicon")
}
