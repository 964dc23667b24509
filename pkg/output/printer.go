package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/figart/pkg/fonts"
	"github.com/arthur-debert/figart/pkg/render"
	"github.com/arthur-debert/figart/pkg/style"
)

const listTemplate = `
<Heading>Available Fonts (showing {{.Shown}} of {{.Total}}):</Heading>
<Rule>{{.Rule}}</Rule>
{{range .Entries}}<Index>{{printf "%3d" .Index}}.</Index> <FontName>{{esc .Name}}</FontName>
{{end}}
<Muted>Use '--list-fonts all' to see all available fonts.</Muted>
`

const previewHeadTemplate = `
<Heading>Preview of '{{esc .Text}}' in different fonts:</Heading>
<Rule>{{.Rule}}</Rule>
`

const previewFontTemplate = `
Font: <FontName>{{esc .Font}}</FontName>
<Rule>{{.Rule}}</Rule>
`

// Printer writes listings and previews, styled when color is on
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// List prints a numbered font listing. total is the catalog size.
func (p *Printer) List(entries []fonts.Entry, total int) error {
	return p.markup(listTemplate, struct {
		Shown   int
		Total   int
		Rule    string
		Entries []fonts.Entry
	}{
		Shown:   len(entries),
		Total:   total,
		Rule:    strings.Repeat("-", 50),
		Entries: entries,
	})
}

// Preview prints text rendered in each preview font. Art is written as is.
func (p *Printer) Preview(text string, previews []render.Preview) error {
	head := struct {
		Text string
		Rule string
	}{Text: text, Rule: strings.Repeat("-", 60)}
	if err := p.markup(previewHeadTemplate, head); err != nil {
		return err
	}

	for _, pv := range previews {
		section := struct {
			Font string
			Rule string
		}{Font: pv.Font, Rule: strings.Repeat("-", 40)}
		if err := p.markup(previewFontTemplate, section); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "%s\n\n", pv.Result.String()); err != nil {
			return err
		}
	}
	return nil
}

// Status prints a one-line status message
func (p *Printer) Status(status style.Status, msg string) {
	fmt.Fprintln(p.w, style.StatusLine(status, msg, p.color))
}

func (p *Printer) markup(tmpl string, data interface{}) error {
	out, err := style.Render(tmpl, data, p.color)
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.w, out)
	return err
}
