package help

import (
	"bytes"
	"io"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples_Plain(t *testing.T) {
	out := Examples(false, 80)

	assert.Equal(t, ExamplesMarkdown(), out)
	assert.Contains(t, out, `figart "Python" --font doom`)
	assert.Contains(t, out, "figart --preview \"Sample\"")
}

func TestExamples_Rendered(t *testing.T) {
	out := Examples(true, 60)

	assert.NotEmpty(t, out)
	assert.Contains(t, out, "Examples")
}

func TestLoadTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"help/fonts.md":      {Data: []byte("# Fonts\n")},
		"help/nested/cfg.md": {Data: []byte("# Config\n")},
		"help/notes.txt":     {Data: []byte("ignored")},
	}

	topics, err := LoadTopics(fsys, "help")
	require.NoError(t, err)

	assert.Equal(t, []string{"cfg", "fonts"}, topics.Names())
	topic, ok := topics.Get("fonts")
	require.True(t, ok)
	assert.Equal(t, "# Fonts\n", topic.Content)

	_, ok = topics.Get("--cfg")
	assert.True(t, ok)
	_, ok = topics.Get("notes")
	assert.False(t, ok)
}

func TestBuiltin(t *testing.T) {
	assert.Equal(t, []string{"catalog", "config", "examples"}, Builtin().Names())
}

func newRoot() (*cobra.Command, *bytes.Buffer) {
	root := &cobra.Command{Use: "figart", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "fonts", Short: "List available fonts", Run: func(*cobra.Command, []string) {}})
	root.SetHelpCommand(NewCommand(root, Builtin(), func(io.Writer) bool { return false }))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"topic list", []string{"help", "topics"}, "Available help topics:\n  catalog\n  config\n  examples\n"},
		{"topic", []string{"help", "config"}, "FIGART_FONT__DEFAULT"},
		{"command", []string{"help", "fonts"}, "List available fonts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRoot()
			root.SetArgs(tt.args)

			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}
