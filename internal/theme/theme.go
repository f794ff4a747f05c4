package theme

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Random is the theme name that asks Select to pick one at random.
const Random = "random"

// Theme is the fixed visual styling of a session.
type Theme struct {
	Name string
	// Border holds six runes: top-left, top-edge, top-right, side,
	// bottom-left, bottom-right.
	Border    string
	Primary   color.Attribute
	Secondary color.Attribute
	// Frame is the lipgloss border drawing the same glyphs, used for the banner.
	Frame lipgloss.Border
	// FrameColor is the ANSI color index matching Primary.
	FrameColor lipgloss.Color
}

var themes = map[string]Theme{
	"classic": {
		Name:       "classic",
		Border:     "┌─┐│└┘",
		Primary:    color.FgGreen,
		Secondary:  color.FgBlue,
		Frame:      lipgloss.NormalBorder(),
		FrameColor: lipgloss.Color("2"),
	},
	"modern": {
		Name:       "modern",
		Border:     "╭─╮│╰╯",
		Primary:    color.FgCyan,
		Secondary:  color.FgMagenta,
		Frame:      lipgloss.RoundedBorder(),
		FrameColor: lipgloss.Color("6"),
	},
	"bold": {
		Name:       "bold",
		Border:     "┏━┓┃┗┛",
		Primary:    color.FgYellow,
		Secondary:  color.FgRed,
		Frame:      lipgloss.ThickBorder(),
		FrameColor: lipgloss.Color("3"),
	},
}

// Names returns the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the built-in theme with the given name.
func Lookup(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// Select resolves a configured theme name. "random" or "" draws one from r.
func Select(name string, r *rand.Rand) (Theme, error) {
	if name == "" || name == Random {
		names := Names()
		return themes[names[r.Intn(len(names))]], nil
	}
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// Glyph returns the i-th border rune.
func (t Theme) Glyph(i int) string {
	runes := []rune(t.Border)
	if i < 0 || i >= len(runes) {
		return ""
	}
	return string(runes[i])
}

// Corner is the glyph prefixed to every line of an output block.
func (t Theme) Corner() string {
	return t.Glyph(2)
}
