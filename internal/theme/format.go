package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// ColorMode decides whether ANSI colors are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a configured color mode. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(s)) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("unknown color mode %q", s)
	}
}

const banner = `    ____  _  __  _____ _          _ _
   |  _ \| |/ / / ____| |__   ___| | |
   | |_) | ' /  \___ \| '_ \ / _ \ | |
   |  _ <| . \   ___) | | | |  __/ | |
   |_| \_\_|\_\ |____/|_| |_|\___|_|_|
`

// Formatter renders results as themed output blocks. It holds no mutable
// state after construction.
type Formatter struct {
	theme     Theme
	mode      ColorMode
	primary   *color.Color
	secondary *color.Color
	status    map[Status]*color.Color
}

func NewFormatter(t Theme, mode ColorMode) *Formatter {
	f := &Formatter{
		theme:     t,
		mode:      mode,
		primary:   newColor(t.Primary, mode),
		secondary: newColor(t.Secondary, mode),
		status:    make(map[Status]*color.Color, len(statusColors)),
	}
	for st, attr := range statusColors {
		f.status[st] = newColor(attr, mode)
	}
	return f
}

func newColor(attr color.Attribute, mode ColorMode) *color.Color {
	c := color.New(attr)
	switch mode {
	case ColorAlways:
		c.EnableColor()
	case ColorNever:
		c.DisableColor()
	}
	return c
}

func (f *Formatter) Theme() Theme {
	return f.theme
}

// Format wraps text in a bordered block headed by the status glyph.
// Empty text renders as an empty string.
func (f *Formatter) Format(text string, st Status) string {
	if text == "" {
		return ""
	}

	corner := f.primary.Sprint(f.theme.Corner())
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s Output:\n", corner, f.status[st].Sprint(st.Glyph()))
	for _, line := range lines {
		fmt.Fprintf(&b, "%s  %s\n", corner, strings.TrimSuffix(line, "\r"))
	}
	b.WriteString(Divider)
	return b.String()
}

// Notice renders a single status line outside of an output block.
func (f *Formatter) Notice(st Status, msg string) string {
	return f.status[st].Sprintf("%s %s", st.Glyph(), msg)
}

// Banner renders the startup banner framed with the theme's border.
func (f *Formatter) Banner() string {
	style := lipgloss.NewStyle().
		Border(f.theme.Frame).
		Padding(0, 2)
	if f.mode != ColorNever {
		style = style.BorderForeground(f.theme.FrameColor)
	}

	var b strings.Builder
	b.WriteString(f.primary.Sprint(style.Render(strings.TrimRight(banner, "\n"))))
	b.WriteString("\n")
	b.WriteString(f.secondary.Sprintf("%s Type 'help' to see available commands", Info.Glyph()))
	b.WriteString("\n")
	b.WriteString(Divider)
	return b.String()
}
