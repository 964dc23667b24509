// Package render is the facade between the command line and the glyph
// renderer. It checks requested styles against a fonts.Catalog, falls back
// to the catalog default on a miss, and hands the actual drawing to a
// Backend.
package render

import (
	"fmt"
	"io"

	"github.com/arthur-debert/figart/pkg/errors"
	"github.com/arthur-debert/figart/pkg/fonts"
	"github.com/arthur-debert/figart/pkg/logging"
)

// MsgFallback is the notice written when a style is not in the catalog
const MsgFallback = "Font '%s' not found. Using '%s' font.\n"

// MsgRenderError prefixes the message of a failed render
const MsgRenderError = "Error generating ASCII art: "

// Result is the outcome of one render.
type Result struct {
	Requested string
	Font      string
	Art       string
	FellBack  bool
	Err       error
}

// OK reports whether the render produced art
func (r Result) OK() bool { return r.Err == nil }

// String returns the art, or the failure message when rendering failed.
func (r Result) String() string {
	if r.Err != nil {
		return MsgRenderError + errors.Message(r.Err)
	}
	return r.Art
}

// Preview pairs a preview font with its render result
type Preview struct {
	Font   string
	Result Result
}

// Generator renders text against a fixed catalog.
type Generator struct {
	catalog *fonts.Catalog
	backend Backend
	preview []string
	notices io.Writer
}

// Option configures a Generator
type Option func(*Generator)

// WithNotices sets where fallback notices are written. Defaults to io.Discard.
func WithNotices(w io.Writer) Option {
	return func(g *Generator) { g.notices = w }
}

// WithPreviewFonts replaces the preview subset
func WithPreviewFonts(names []string) Option {
	return func(g *Generator) { g.preview = append([]string(nil), names...) }
}

// New creates a Generator over catalog and backend
func New(catalog *fonts.Catalog, backend Backend, opts ...Option) *Generator {
	g := &Generator{
		catalog: catalog,
		backend: backend,
		preview: append([]string(nil), fonts.PreviewSubset...),
		notices: io.Discard,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Catalog returns the catalog the generator validates against
func (g *Generator) Catalog() *fonts.Catalog { return g.catalog }

// Render draws text in style. Unknown styles fall back to the catalog
// default after a notice. Backend failures are returned inside the Result.
func (g *Generator) Render(text, style string) Result {
	logger := logging.GetLogger("render.Generator")
	res := Result{Requested: style, Font: style}

	if !g.catalog.Contains(style) {
		res.Font = g.catalog.Default()
		res.FellBack = true
		fmt.Fprintf(g.notices, MsgFallback, style, res.Font)
		logger.Info().
			Str("requested", style).
			Str("font", res.Font).
			Msg("Font not in catalog, using default")
	}

	art, err := g.backend.Render(text, res.Font)
	if err != nil {
		res.Err = err
		logger.Info().Err(err).Str("font", res.Font).Msg("Render failed")
		return res
	}

	res.Art = art
	logger.Debug().
		Str("font", res.Font).
		Int("textLen", len(text)).
		Int("artLen", len(art)).
		Msg("Rendered")
	return res
}

// ListStyles returns the first count catalog entries, 1-indexed
func (g *Generator) ListStyles(count int) []fonts.Entry {
	return g.catalog.List(count)
}

// PreviewFonts returns a copy of the preview subset
func (g *Generator) PreviewFonts() []string {
	return append([]string(nil), g.preview...)
}

// PreviewStyles renders text in the first count preview fonts, in order.
func (g *Generator) PreviewStyles(text string, count int) []Preview {
	if count > len(g.preview) {
		count = len(g.preview)
	}
	if count <= 0 {
		return nil
	}

	done := logging.LogOperationStart(logging.GetLogger("render.Generator"), "preview")
	defer done()

	previews := make([]Preview, 0, count)
	for _, name := range g.preview[:count] {
		previews = append(previews, Preview{Font: name, Result: g.Render(text, name)})
	}
	return previews
}
