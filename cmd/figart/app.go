package figart

import (
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/figart/pkg/config"
	"github.com/arthur-debert/figart/pkg/errors"
	"github.com/arthur-debert/figart/pkg/fonts"
	"github.com/arthur-debert/figart/pkg/logging"
	"github.com/arthur-debert/figart/pkg/output"
	"github.com/arthur-debert/figart/pkg/prompt"
	"github.com/arthur-debert/figart/pkg/render"
	"github.com/arthur-debert/figart/pkg/style"
	"github.com/arthur-debert/figart/pkg/ui"
)

// Option customizes the root command, mostly for tests
type Option func(*deps)

// deps are the collaborators the commands are built from
type deps struct {
	backend  render.Backend
	prompter prompt.Prompter
	now      func() time.Time
}

// WithBackend replaces the go-figure backend
func WithBackend(b render.Backend) Option {
	return func(d *deps) { d.backend = b }
}

// WithPrompter replaces the interactive terminal prompter
func WithPrompter(p prompt.Prompter) Option {
	return func(d *deps) { d.prompter = p }
}

// WithClock replaces time.Now for document headers
func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

// app is the per-invocation state shared by all commands
type app struct {
	deps
	cfg       *config.Config
	catalog   *fonts.Catalog
	generator *render.Generator
	format    ui.Format
	out       io.Writer
}

// newApp loads configuration, discovers user fonts and builds the generator.
func newApp(d deps, configFile string, format ui.Format, out io.Writer) (*app, error) {
	logger := logging.GetLogger("cmd.app")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile})
	if err != nil {
		return nil, err
	}

	files, extra, err := render.FontFiles(cfg.Font.Dir)
	if err != nil {
		return nil, err
	}
	catalog := fonts.Builtin().WithExtra(extra...)
	if err := cfg.ValidateFonts(catalog); err != nil {
		return nil, err
	}

	if d.backend == nil {
		d.backend = render.NewFigureBackend(files)
	}
	if d.prompter == nil {
		d.prompter = prompt.Terminal{}
	}
	if d.now == nil {
		d.now = time.Now
	}

	logger.Debug().
		Str("fontDir", cfg.Font.Dir).
		Int("userFonts", len(extra)).
		Int("catalog", catalog.Len()).
		Msg("Initialized")

	return &app{
		deps:    d,
		cfg:     cfg,
		catalog: catalog,
		generator: render.New(catalog, d.backend,
			render.WithNotices(out),
			render.WithPreviewFonts(cfg.Preview.Fonts)),
		format: format,
		out:    out,
	}, nil
}

func (a *app) color() bool {
	return ui.UseColor(a.format, a.out)
}

func (a *app) printer() *output.Printer {
	return output.NewPrinter(a.out, a.color())
}

func (a *app) layout() output.Layout {
	return output.Layout{
		TimestampFormat: a.cfg.Output.TimestampFormat,
		Separator:       a.cfg.Output.Separator,
		SeparatorWidth:  a.cfg.Output.SeparatorWidth,
	}
}

// renderText prints the document for text in font and optionally saves it.
// Render and save failures are reported as output, not returned.
func (a *app) renderText(text, font, savePath string) {
	res := a.generator.Render(text, font)

	doc := output.Document{
		Text:      text,
		Font:      font,
		Generated: a.now(),
		Art:       res.String(),
		Layout:    a.layout(),
	}
	content := doc.String()
	fmt.Fprint(a.out, content)

	if savePath == "" {
		return
	}
	if err := output.Save(savePath, content); err != nil {
		a.printer().Status(style.StatusError, fmt.Sprintf(MsgSaveError, errors.Message(err)))
		return
	}
	fmt.Fprintln(a.out)
	a.printer().Status(style.StatusSuccess, fmt.Sprintf(MsgSaved, savePath))
}

// listFonts prints the first entries of the catalog. raw is the
// --list-fonts value; empty means the configured default count.
func (a *app) listFonts(raw string) error {
	count := a.cfg.List.Count
	if raw != "" {
		count = fonts.ParseCount(raw, a.catalog.Len(), a.cfg.List.Count)
	}
	return a.printer().List(a.generator.ListStyles(count), a.catalog.Len())
}

// preview prints text in the configured preview fonts
func (a *app) preview(text string) error {
	return a.printer().Preview(text, a.generator.PreviewStyles(text, a.cfg.Preview.Count))
}
