// Package help renders figart's longer help documents and serves them as
// help topics.
package help

import (
	"embed"

	"github.com/charmbracelet/glamour"
)

//go:embed docs/*.md
var docs embed.FS

// ExamplesMarkdown returns the raw examples document
func ExamplesMarkdown() string {
	data, err := docs.ReadFile("docs/examples.md")
	if err != nil {
		return ""
	}
	return string(data)
}

// Examples returns the examples document, rendered with glamour when color
// is on and as the markdown source otherwise.
func Examples(color bool, width int) string {
	return Markdown(ExamplesMarkdown(), color, width)
}

// Markdown renders content for the terminal. Without color, or when glamour
// fails, the source is returned unchanged.
func Markdown(content string, color bool, width int) string {
	if !color {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
