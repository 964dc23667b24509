package style

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/beevik/etree"
)

// NoFormatTag wraps text that should only appear in plain output
const NoFormatTag = "no-format"

const rootTag = "markup"

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape protects user text placed inside markup
func Escape(s string) string {
	return escaper.Replace(s)
}

// ExpandTags replaces style tags with the registry's styling
func ExpandTags(input string, registry Registry) (string, error) {
	root, err := parse(input)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	if err := walk(root, &out, registry, true); err != nil {
		return "", err
	}
	return out.String(), nil
}

// StripTags removes style tags and keeps their text
func StripTags(input string) (string, error) {
	root, err := parse(input)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	if err := walk(root, &out, nil, false); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Render executes tmpl with data, then expands the tags when color is true
// or strips them otherwise. Templates get an "esc" function for user text.
func Render(tmpl string, data interface{}, color bool) (string, error) {
	t, err := template.New("markup").Funcs(template.FuncMap{"esc": Escape}).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	if color {
		return ExpandTags(buf.String(), Default)
	}
	return StripTags(buf.String())
}

func parse(input string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		return nil, fmt.Errorf("invalid markup: %w", err)
	}
	return doc.Root(), nil
}

func walk(e *etree.Element, out *strings.Builder, registry Registry, color bool) error {
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			out.WriteString(t.Data)
		case *etree.Element:
			var inner strings.Builder
			if err := walk(t, &inner, registry, color); err != nil {
				return err
			}
			switch {
			case t.Tag == NoFormatTag:
				if !color {
					out.WriteString(inner.String())
				}
			case !color:
				out.WriteString(inner.String())
			default:
				style, ok := registry[t.Tag]
				if !ok {
					return fmt.Errorf("unknown style tag <%s>", t.Tag)
				}
				out.WriteString(style.Render(inner.String()))
			}
		}
	}
	return nil
}
