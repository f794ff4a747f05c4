package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"rkshell/internal/theme"
)

func TestBuildDefault(t *testing.T) {
	p := NewBuilder("rkshell> ", func() (string, error) { return "/tmp", nil }, theme.ColorNever)
	assert.Equal(t, "➜ rkshell> ", p.Build())
}

func TestBuildExpandsDirectory(t *testing.T) {
	p := NewBuilder(`\W (\w)> `, func() (string, error) { return "/home/rk/work", nil }, theme.ColorNever)
	assert.Equal(t, "➜ work (/home/rk/work)> ", p.Build())

	p = NewBuilder(`\w> `, func() (string, error) { return "", errors.New("gone") }, theme.ColorNever)
	assert.Equal(t, "➜ ?> ", p.Build())
}

func TestBuildColored(t *testing.T) {
	p := NewBuilder("rk> ", func() (string, error) { return "/", nil }, theme.ColorAlways)
	out := p.Build()
	assert.Contains(t, out, "\x1b[36m")
	assert.Contains(t, out, "rk> ")
}
