// Package output formats what figart prints: the rendered document with its
// header, the font listing and the preview sheet. It also saves documents
// to disk.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/figart/pkg/errors"
	"github.com/arthur-debert/figart/pkg/logging"
)

// Layout controls the document header
type Layout struct {
	TimestampFormat string
	Separator       string
	SeparatorWidth  int
}

// DefaultLayout matches the built-in configuration
var DefaultLayout = Layout{
	TimestampFormat: "2006-01-02 15:04:05",
	Separator:       "=",
	SeparatorWidth:  50,
}

// Document is a rendered piece of art with the request that produced it
type Document struct {
	Text      string
	Font      string
	Generated time.Time
	Art       string
	Layout    Layout
}

// Header returns the three header lines, each newline terminated
func (d Document) Header() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ASCII Art Generated: %s\n", d.Generated.Format(d.Layout.TimestampFormat))
	fmt.Fprintf(&b, "Text: '%s' | Font: %s\n", d.Text, d.Font)
	b.WriteString(strings.Repeat(d.Layout.Separator, d.Layout.SeparatorWidth))
	b.WriteString("\n")
	return b.String()
}

// String returns the header followed by the art, newline terminated. This
// is exactly what is printed and what is saved.
func (d Document) String() string {
	if d.Art != "" && !strings.HasSuffix(d.Art, "\n") {
		return d.Header() + d.Art + "\n"
	}
	return d.Header() + d.Art
}

// Save writes content to path as UTF-8. The file is closed on every path.
func Save(path, content string) (err error) {
	logger := logging.GetLogger("output.Save")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		logger.Info().Err(err).Str("path", path).Msg("Cannot open output file")
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot open %s", path).WithDetail("path", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, errors.ErrFileWrite, "cannot close %s", path).WithDetail("path", path)
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		logger.Info().Err(err).Str("path", path).Msg("Cannot write output file")
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).WithDetail("path", path)
	}

	logger.Info().Str("path", path).Int("bytes", len(content)).Msg("Saved art")
	return nil
}
