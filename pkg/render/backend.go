package render

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/figart/pkg/errors"
	"github.com/common-nighthawk/go-figure"
)

// Backend turns text into block-letter art using a named font.
type Backend interface {
	Render(text, font string) (string, error)
}

// FontFileExt is the extension of FIGlet font files
const FontFileExt = ".flf"

// FigureBackend renders with go-figure. Fonts registered through files are
// read from disk; all other names are looked up in go-figure's bundled set.
type FigureBackend struct {
	files map[string]string
}

// NewFigureBackend creates a backend. files maps font names to .flf paths
// and may be nil.
func NewFigureBackend(files map[string]string) *FigureBackend {
	b := &FigureBackend{files: make(map[string]string, len(files))}
	for name, path := range files {
		b.files[name] = path
	}
	return b
}

// Render implements Backend. Font files take precedence over bundled fonts,
// so a user .flf can supply a catalog font go-figure does not ship. Fonts
// found in neither place are FONT_NOT_FOUND; go-figure panics on broken
// font data and those come back as RENDER_FAILED errors.
func (b *FigureBackend) Render(text, font string) (art string, err error) {
	defer func() {
		if r := recover(); r != nil {
			art = ""
			err = errors.Newf(errors.ErrRender, "%v", r).WithDetail("font", font)
		}
	}()

	if file, ok := b.files[font]; ok {
		return renderFile(text, file)
	}
	if !Bundled(font) {
		return "", errors.Newf(errors.ErrFontNotFound,
			"font %s is not bundled, add %s%s to the fonts directory", font, font, FontFileExt).
			WithDetail("font", font)
	}
	return figure.NewFigure(text, font, false).String(), nil
}

// Bundled reports whether go-figure ships font
func Bundled(font string) bool {
	_, err := figure.Asset(path.Join("fonts", font+FontFileExt))
	return err == nil
}

func renderFile(text, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFontLoad, "cannot open font file %s", path)
	}
	defer func() { _ = f.Close() }()

	return figure.NewFigureWithFont(text, f, false).String(), nil
}

// FontFiles scans dir for FIGlet font files and returns a name to path map
// along with the names in sorted order. A missing dir is not an error.
func FontFiles(dir string) (map[string]string, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil, nil
		}
		return nil, nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read font dir %s", dir)
	}

	files := make(map[string]string)
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), FontFileExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if _, dup := files[name]; dup {
			continue
		}
		files[name] = filepath.Join(dir, e.Name())
		names = append(names, name)
	}
	sort.Strings(names)
	return files, names, nil
}

// String describes the backend for logs
func (b *FigureBackend) String() string {
	return fmt.Sprintf("go-figure (%d font files)", len(b.files))
}
