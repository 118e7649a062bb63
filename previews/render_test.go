package previews

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/begraf/ikonwerk/data/icon"
)

const probeSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512"><path fill="#000000" d="M64 64 H448 V448 H64 Z"/></svg>`

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()

	ic, err := icon.New("probe.svg", "/src/probe.svg", "/dist/probe.svg", []byte(probeSVG))
	require.NoError(t, err)

	err = RenderAll([]*icon.Icon{ic}, Options{
		OutputDirectory: dir,
		Width:           64,
	})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "probe.png"))
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestRenderPreviewRejectsBrokenSVG(t *testing.T) {
	ic, err := icon.New("broken.svg", "", "", []byte("<svg"))
	require.NoError(t, err)

	err = renderPreview(ic, filepath.Join(t.TempDir(), "broken.png"), 64)
	assert.Error(t, err)
}
