package theme

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(t *testing.T, name string) *Formatter {
	t.Helper()
	th, ok := Lookup(name)
	require.True(t, ok, "theme %s", name)
	return NewFormatter(th, ColorNever)
}

func TestSelect(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	th, err := Select("modern", r)
	require.NoError(t, err)
	assert.Equal(t, "modern", th.Name)
	assert.Equal(t, "╮", th.Corner())

	for i := 0; i < 20; i++ {
		th, err := Select(Random, r)
		require.NoError(t, err)
		assert.Contains(t, Names(), th.Name)
	}

	_, err = Select("neon", r)
	require.Error(t, err)
}

func TestThemeBordersHaveSixGlyphs(t *testing.T) {
	for _, name := range Names() {
		th, _ := Lookup(name)
		assert.Len(t, []rune(th.Border), 6, name)
		assert.Equal(t, "", th.Glyph(6))
	}
}

func TestFormat(t *testing.T) {
	f := plain(t, "classic")

	got := f.Format("a\nb", Success)
	want := strings.Join([]string{
		"┐ ✓ Output:",
		"┐  a",
		"┐  b",
		Divider,
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatCRLF(t *testing.T) {
	f := plain(t, "classic")
	assert.Equal(t, f.Format("a\nb", Success), f.Format("a\r\nb\r\n", Success))
	assert.NotContains(t, f.Format("x\r\n\r\ny\r\n", Info), "\r")
}

func TestFormatEmpty(t *testing.T) {
	f := plain(t, "bold")
	assert.Equal(t, "", f.Format("", Success))
	assert.Equal(t, "", f.Format("", Error))
}

func TestFormatStatusGlyphs(t *testing.T) {
	f := plain(t, "bold")
	tests := []struct {
		status Status
		header string
	}{
		{Success, "┓ ✓ Output:"},
		{Error, "┓ ✗ Output:"},
		{Warning, "┓ ⚠ Output:"},
		{Info, "┓ ℹ Output:"},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			out := f.Format("x", tt.status)
			assert.True(t, strings.HasPrefix(out, tt.header), out)
			assert.Equal(t, 1, strings.Count(out, "Output:"))
		})
	}
}

func TestFormatAlwaysColor(t *testing.T) {
	th, _ := Lookup("classic")
	f := NewFormatter(th, ColorAlways)
	out := f.Format("x", Error)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Output:")
}

func TestNoticeAndBanner(t *testing.T) {
	f := plain(t, "modern")
	assert.Equal(t, "⚠ Use 'exit' to quit", f.Notice(Warning, "Use 'exit' to quit"))

	b := f.Banner()
	assert.Contains(t, b, "╭")
	assert.Contains(t, b, "Type 'help' to see available commands")
	assert.True(t, strings.HasSuffix(b, Divider))
}

func TestParseColorMode(t *testing.T) {
	m, err := ParseColorMode("")
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, m)

	m, err = ParseColorMode("NEVER")
	require.NoError(t, err)
	assert.Equal(t, ColorNever, m)

	_, err = ParseColorMode("sometimes")
	require.Error(t, err)
}
