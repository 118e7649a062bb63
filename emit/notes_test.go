package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNotes(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		_, ok, err := ReadNotes(filepath.Join(t.TempDir(), "cheatsheet.md"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("frontmatter and body are split", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cheatsheet.md")
		source := "---\ntitle: Icons\n---\nA **bold** intro.\n"
		require.NoError(t, os.WriteFile(path, []byte(source), 0o666))

		notes, ok, err := ReadNotes(path)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Icons", notes.Title)
		assert.Contains(t, string(notes.Body), "<strong>bold</strong>")
	})

	t.Run("body without frontmatter", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cheatsheet.md")
		require.NoError(t, os.WriteFile(path, []byte("Just text.\n"), 0o666))

		notes, ok, err := ReadNotes(path)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Empty(t, notes.Title)
		assert.Contains(t, string(notes.Body), "Just text.")
	})

	t.Run("unterminated frontmatter is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cheatsheet.md")
		require.NoError(t, os.WriteFile(path, []byte("---\ntitle: x\n"), 0o666))

		_, _, err := ReadNotes(path)
		assert.Error(t, err)
	})
}

func TestSplitFrontMatterSource(t *testing.T) {
	fm, md, err := splitFrontMatterSource([]byte("---\na: 1\n---\nbody\n"))
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(fm))
	assert.Equal(t, "body\n", string(md))
}
