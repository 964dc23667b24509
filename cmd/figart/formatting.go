package figart

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/figart/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// usageColor decides once whether help headings on stdout are bold.
// NO_COLOR and pipes both turn it off.
var usageColor = ui.DetectFormat(os.Stdout) == ui.FormatTerminal

func formatBold(s string) string {
	if !usageColor {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting registers the usage template helpers with cobra
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"boldUpper": formatBoldUpper,
	})
}
