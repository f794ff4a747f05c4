package prompt

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"rkshell/internal/theme"
)

// Builder expands the configured prompt template.
//
// Supported escapes: \u user, \h host, \w working directory, \W its base
// name, \$ "#" for root and "$" otherwise.
type Builder struct {
	template string
	getwd    func() (string, error)
	color    *color.Color
}

func NewBuilder(template string, getwd func() (string, error), mode theme.ColorMode) *Builder {
	c := color.New(color.FgCyan)
	switch mode {
	case theme.ColorAlways:
		c.EnableColor()
	case theme.ColorNever:
		c.DisableColor()
	}
	return &Builder{template: template, getwd: getwd, color: c}
}

func (p *Builder) Build() string {
	prompt := p.template

	wd := func() string {
		dir, err := p.getwd()
		if err != nil {
			return "?"
		}
		return dir
	}

	replacements := map[string]func() string{
		"\\u": func() string { return os.Getenv("USER") },
		"\\h": func() string { hostname, _ := os.Hostname(); return hostname },
		"\\w": wd,
		"\\W": func() string { return filepath.Base(wd()) },
		"\\$": func() string {
			if os.Geteuid() == 0 {
				return "#"
			}
			return "$"
		},
	}

	for pattern, replacer := range replacements {
		if strings.Contains(prompt, pattern) {
			prompt = strings.ReplaceAll(prompt, pattern, replacer())
		}
	}

	return p.color.Sprint(theme.PromptGlyph + " " + prompt)
}
