package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	payload := `{"name": "ionicons", "version": "7.1.0", "license": "MIT"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(payload), 0o666))

	manifest, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "ionicons", manifest.Name)
	assert.Equal(t, "7.1.0", manifest.Version)
}

func TestReadManifestRequiresVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name": "x"}`), 0o666))

	_, err := ReadManifest(dir)
	assert.Error(t, err)
}

func TestReadManifestMissingFile(t *testing.T) {
	_, err := ReadManifest(t.TempDir())
	assert.Error(t, err)
}
