package fonts_test

import (
	"testing"

	"github.com/arthur-debert/figart/pkg/errors"
	"github.com/arthur-debert/figart/pkg/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, names ...string) *fonts.Catalog {
	t.Helper()
	c, err := fonts.NewCatalog(names, fonts.DefaultStyle)
	require.NoError(t, err)
	return c
}

func TestNewCatalog_RequiresDefault(t *testing.T) {
	_, err := fonts.NewCatalog([]string{"slant", "doom"}, fonts.DefaultStyle)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	names := []string{"standard", "slant"}
	c := newCatalog(t, names...)
	names[1] = "mutated"

	assert.Equal(t, []string{"standard", "slant"}, c.Names())

	got := c.Names()
	got[0] = "mutated"
	assert.Equal(t, "standard", c.Names()[0])
}

func TestContains_IsExact(t *testing.T) {
	c := newCatalog(t, "standard", "slant")

	assert.True(t, c.Contains("slant"))
	assert.False(t, c.Contains("Slant"))
	assert.False(t, c.Contains(" slant"))
	assert.False(t, c.Contains("sla"))
	assert.False(t, c.Contains(""))
}

func TestList(t *testing.T) {
	c := newCatalog(t, "standard", "3-d", "3x5", "banner", "standard")

	tests := []struct {
		name  string
		count int
		want  []fonts.Entry
	}{
		{"first three", 3, []fonts.Entry{{1, "standard"}, {2, "3-d"}, {3, "3x5"}}},
		{"exact size keeps duplicates", 5, []fonts.Entry{
			{1, "standard"}, {2, "3-d"}, {3, "3x5"}, {4, "banner"}, {5, "standard"},
		}},
		{"clamped", 99, []fonts.Entry{
			{1, "standard"}, {2, "3-d"}, {3, "3x5"}, {4, "banner"}, {5, "standard"},
		}},
		{"zero", 0, nil},
		{"negative", -2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.List(tt.count))
		})
	}
}

func TestList_AllMatchesCatalog(t *testing.T) {
	c := fonts.Builtin()
	entries := c.List(c.Len())

	require.Len(t, entries, c.Len())
	for i, e := range entries {
		assert.Equal(t, i+1, e.Index)
		assert.Equal(t, c.Names()[i], e.Name)
	}
}

func TestBuiltin(t *testing.T) {
	c := fonts.Builtin()

	assert.Equal(t, 148, c.Len())
	assert.Equal(t, fonts.DefaultStyle, c.Default())
	assert.Equal(t, "standard", c.Names()[0])
	assert.Equal(t, "weird", c.Names()[c.Len()-1])
	for _, name := range fonts.PreviewSubset {
		assert.True(t, c.Contains(name), "preview font %q must be built in", name)
	}
}

func TestResolve(t *testing.T) {
	c := newCatalog(t, "standard", "slant", "doom")

	tests := []struct {
		name   string
		choice string
		want   string
		wantOK bool
	}{
		{"number", "2", "slant", true},
		{"number with spaces", " 3 ", "doom", true},
		{"first", "1", "standard", true},
		{"zero out of range", "0", "standard", false},
		{"too large", "4", "standard", false},
		{"name", "doom", "doom", true},
		{"unknown name", "gothic", "standard", false},
		{"case differs", "DOOM", "standard", false},
		{"empty", "", "standard", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Resolve(tt.choice)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestWithExtra(t *testing.T) {
	base := newCatalog(t, "standard", "slant")

	extended := base.WithExtra("mine", "slant", "mine", "other")

	assert.Equal(t, []string{"standard", "slant", "mine", "other"}, extended.Names())
	assert.Equal(t, []string{"standard", "slant"}, base.Names())
	assert.Equal(t, "standard", extended.Default())
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"all", 148},
		{"3", 3},
		{"0", 0},
		{"500", 500},
		{"", fonts.DefaultListCount},
		{"ten", fonts.DefaultListCount},
		{"2.5", fonts.DefaultListCount},
		{"-4", fonts.DefaultListCount},
		{"ALL", fonts.DefaultListCount},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, fonts.ParseCount(tt.raw, 148, fonts.DefaultListCount))
		})
	}
}

func TestParseCount_CustomFallback(t *testing.T) {
	assert.Equal(t, 7, fonts.ParseCount("lots", 148, 7))
	assert.Equal(t, 2, fonts.ParseCount("2", 148, 7))
}
