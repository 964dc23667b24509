package help

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is a named help document
type Topic struct {
	Name    string
	Content string
}

// Topics holds the help documents found in a file system
type Topics struct {
	topics map[string]*Topic
}

// LoadTopics reads every .md file under dir in fsys. The topic name is the
// file name without its extension.
func LoadTopics(fsys fs.FS, dir string) (*Topics, error) {
	t := &Topics{topics: make(map[string]*Topic)}

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ".md")
		t.topics[name] = &Topic{Name: name, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return t, nil
}

// Builtin returns the topics embedded in figart
func Builtin() *Topics {
	t, err := LoadTopics(docs, "docs")
	if err != nil {
		// the embedded tree is fixed at build time
		panic(err)
	}
	return t
}

// Get looks a topic up by name. A leading "--" is ignored so flags can be
// asked about directly.
func (t *Topics) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	topic, ok := t.topics[name]
	return topic, ok
}

// Names returns the sorted topic names
func (t *Topics) Names() []string {
	names := make([]string, 0, len(t.topics))
	for name := range t.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColorFunc decides whether output written to w is styled
type ColorFunc func(w io.Writer) bool

// NewCommand builds a help command that knows about subcommands and topics.
// "help topics" lists the topics; anything that is not a topic falls back to
// the regular command help.
func NewCommand(root *cobra.Command, t *Topics, color ColorFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: "Help provides help for any command or topic.\n\n" +
			"To see all available help topics:\n  " + root.Name() + " help topics",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, t.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return root.Help()
			}

			if args[0] == "topics" {
				fmt.Fprintln(out, "Available help topics:")
				for _, name := range t.Names() {
					fmt.Fprintf(out, "  %s\n", name)
				}
				fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", root.Name())
				return nil
			}

			if topic, ok := t.Get(args[0]); ok {
				fmt.Fprint(out, Markdown(topic.Content, color(out), 80))
				return nil
			}

			target, _, err := root.Find(args)
			if err != nil || target == nil {
				return fmt.Errorf("unknown help topic %q", args[0])
			}
			return target.Help()
		},
	}
}
