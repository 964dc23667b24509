package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/figart/pkg/errors"
	"github.com/arthur-debert/figart/pkg/fonts"
	"github.com/common-nighthawk/go-figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFigureBackend_BuiltinFont(t *testing.T) {
	b := NewFigureBackend(nil)

	art, err := b.Render("Hi", "standard")

	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(art))
	assert.True(t, strings.HasSuffix(art, "\n"))
	assert.Greater(t, strings.Count(art, "\n"), 1, "art should span several lines")
}

func TestFigureBackend_Deterministic(t *testing.T) {
	b := NewFigureBackend(nil)

	first, err := b.Render("Go", "doom")
	require.NoError(t, err)
	second, err := b.Render("Go", "doom")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFigureBackend_UnknownFontIsError(t *testing.T) {
	b := NewFigureBackend(nil)

	art, err := b.Render("Hi", "no-such-font-anywhere")

	require.Error(t, err)
	assert.Empty(t, art)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFontNotFound))
	assert.Contains(t, errors.Message(err), "no-such-font-anywhere.flf")
}

func TestFigureBackend_EveryBuiltinFont(t *testing.T) {
	b := NewFigureBackend(nil)

	var unbundled []string
	for _, name := range fonts.Builtin().Names() {
		if !Bundled(name) {
			unbundled = append(unbundled, name)
			_, err := b.Render("Hi", name)
			assert.True(t, errors.IsErrorCode(err, errors.ErrFontNotFound), name)
			continue
		}
		art, err := b.Render("Hi", name)
		if assert.NoError(t, err, name) {
			assert.NotEmpty(t, strings.TrimSpace(art), name)
		}
	}

	assert.Equal(t, []string{"fraktur", "smiscript1"}, unbundled)
}

func TestFigureBackend_FontFileSuppliesUnbundledFont(t *testing.T) {
	data, err := figure.Asset("fonts/smscript.flf")
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fraktur.flf"), data, 0644))

	files, _, err := FontFiles(dir)
	require.NoError(t, err)
	b := NewFigureBackend(files)

	art, err := b.Render("Hi", "fraktur")
	require.NoError(t, err)
	want, err := b.Render("Hi", "smscript")
	require.NoError(t, err)
	assert.Equal(t, want, art)
}

func TestFigureBackend_MissingFontFile(t *testing.T) {
	b := NewFigureBackend(map[string]string{
		"mine": filepath.Join(t.TempDir(), "mine.flf"),
	})

	_, err := b.Render("Hi", "mine")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFontLoad))
}

func TestFontFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta.flf", "alpha.flf", "Upper.FLF", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("flf2a$ 1 1 1 -1 0\n"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.flf"), 0755))

	files, names, err := FontFiles(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"Upper", "alpha", "zeta"}, names)
	assert.Equal(t, filepath.Join(dir, "alpha.flf"), files["alpha"])
	assert.Equal(t, filepath.Join(dir, "Upper.FLF"), files["Upper"])
	assert.NotContains(t, files, "notes")
	assert.NotContains(t, files, "nested")
}

func TestFontFiles_MissingDir(t *testing.T) {
	files, names, err := FontFiles(filepath.Join(t.TempDir(), "absent"))

	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Empty(t, names)
}

func TestFontFiles_NotADir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, _, err := FontFiles(file)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
