package theme

import (
	"strings"

	"github.com/fatih/color"
)

// Status tags a result and decides which glyph decorates it.
type Status int

const (
	Success Status = iota
	Error
	Warning
	Info
)

const (
	PromptGlyph = "➜"
	dividerRune = "─"
	dividerSize = 50
)

// Divider is the horizontal rule closing every output block.
var Divider = strings.Repeat(dividerRune, dividerSize)

var statusGlyphs = map[Status]string{
	Success: "✓",
	Error:   "✗",
	Warning: "⚠",
	Info:    "ℹ",
}

var statusColors = map[Status]color.Attribute{
	Success: color.FgGreen,
	Error:   color.FgRed,
	Warning: color.FgYellow,
	Info:    color.FgCyan,
}

// Glyph returns the display glyph for s.
func (s Status) Glyph() string {
	return statusGlyphs[s]
}

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}
