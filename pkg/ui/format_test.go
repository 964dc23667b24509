package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"Terminal", FormatTerminal, false},
		{"text", FormatText, false},
		{"plain", FormatText, false},
		{"json", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestDetectFormat_RegularFileIsText(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, FormatText, DetectFormat(f))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(os.Stdout))
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, FormatText, Resolve(FormatAuto, &buf))
	assert.Equal(t, FormatTerminal, Resolve(FormatTerminal, &buf))
	assert.Equal(t, FormatText, Resolve(FormatText, os.Stdout))
	assert.False(t, UseColor(FormatAuto, &buf))
	assert.True(t, UseColor(FormatTerminal, &buf))
}
