package shell

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkshell/internal/config"
	"rkshell/internal/theme"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default(t.TempDir())
	cfg.Theme = "classic"
	cfg.Color = "never"
	cfg.Interactive = "never"
	return cfg
}

func newTestShell(t *testing.T, cfg *config.Config, input string) (*Shell, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	s, err := NewShell(cfg,
		WithIO(strings.NewReader(input), &out, &errOut),
		WithSystem(newFixture(t).sys),
	)
	require.NoError(t, err)
	return s, &out
}

func TestSessionRunsUntilExit(t *testing.T) {
	cfg := testConfig(t)
	s, out := newTestShell(t, cfg, "pwd\nbogus\n\nexit\nnever reached\n")

	code, err := s.Start()
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	got := out.String()
	assert.Contains(t, got, "Type 'help' to see available commands")
	assert.Contains(t, got, "➜ rkshell> ")
	assert.Contains(t, got, "┐  "+testCwd)
	assert.Contains(t, got, "┐ ✗ Output:\n┐  Invalid command: bogus")
	assert.Contains(t, got, "┐ ⚠ Output:\n┐  Empty command")
	assert.True(t, strings.HasSuffix(got, "Exiting shell...\n"))
	assert.NotContains(t, got, "never reached")

	data, err := os.ReadFile(cfg.HistoryFile)
	require.NoError(t, err)
	assert.Equal(t, "pwd\nbogus\nexit\n", string(data))
}

func TestSessionEndsOnEOF(t *testing.T) {
	s, out := newTestShell(t, testConfig(t), "date")

	code, err := s.Start()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "┐  07-mar-2024")
	assert.True(t, strings.HasSuffix(out.String(), "Exiting shell...\n"))
}

func TestSessionSurvivesFailures(t *testing.T) {
	s, out := newTestShell(t, testConfig(t), "cat missing.txt\nhead -x a.txt\ntime -secs -hours\nexit\n")

	code, err := s.Start()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Error: File 'missing.txt' does not exist")
	assert.Contains(t, out.String(), "Error: Invalid line count '-x'")
	assert.Contains(t, out.String(), "┐  HH:SS -  09:03")
}

// scriptReader replays canned ReadLine results.
type scriptReader struct {
	steps []scriptStep
}

type scriptStep struct {
	line string
	err  error
}

func (r *scriptReader) ReadLine(string) (string, error) {
	if len(r.steps) == 0 {
		return "", io.EOF
	}
	step := r.steps[0]
	r.steps = r.steps[1:]
	return step.line, step.err
}

func (r *scriptReader) Close() error { return nil }

func TestLoopInterruptKeepsSession(t *testing.T) {
	s, out := newTestShell(t, testConfig(t), "")
	s.reader = &scriptReader{steps: []scriptStep{
		{err: ErrInterrupt},
		{line: "pwd"},
		{line: "exit"},
	}}

	code, err := s.loop()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "⚠ Use 'exit' to quit")
	assert.Contains(t, out.String(), "┐  "+testCwd)
	assert.Equal(t, []string{"pwd", "exit"}, s.history.GetAll())
}

func TestLoopReadFailure(t *testing.T) {
	s, _ := newTestShell(t, testConfig(t), "")
	boom := errors.New("device gone")
	s.reader = &scriptReader{steps: []scriptStep{{err: boom}}}

	code, err := s.loop()
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, boom)
}

func TestNewShellPicksTheme(t *testing.T) {
	cfg := testConfig(t)
	cfg.Theme = theme.Random

	var out bytes.Buffer
	s, err := NewShell(cfg,
		WithIO(strings.NewReader(""), &out, &out),
		WithSystem(newFixture(t).sys),
		WithRand(rand.New(rand.NewSource(7))),
	)
	require.NoError(t, err)
	assert.Contains(t, theme.Names(), s.formatter.Theme().Name)
	assert.False(t, s.interactive)
}

func TestNewShellRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"theme", func(c *config.Config) { c.Theme = "neon" }},
		{"color", func(c *config.Config) { c.Color = "sometimes" }},
		{"interactive", func(c *config.Config) { c.Interactive = "maybe" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)
			_, err := NewShell(cfg,
				WithIO(strings.NewReader(""), io.Discard, io.Discard),
				WithSystem(newFixture(t).sys),
			)
			assert.Error(t, err)
		})
	}
}

func TestNewShellLoadsHistory(t *testing.T) {
	cfg := testConfig(t)
	cfg.HistoryFile = filepath.Join(t.TempDir(), "hist")
	require.NoError(t, os.WriteFile(cfg.HistoryFile, []byte("list\npwd\n"), 0600))

	s, _ := newTestShell(t, cfg, "")
	assert.Equal(t, []string{"list", "pwd"}, s.history.GetAll())
}
