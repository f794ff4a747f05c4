package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		dev     bool
		want    string
		wantErr bool
	}{
		{name: "empty prod", input: "", want: "info"},
		{name: "empty dev", input: "", dev: true, want: "debug"},
		{name: "warning alias", input: "WARNING", want: "warn"},
		{name: "error", input: "error", want: "error"},
		{name: "unknown", input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input, tt.dev)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level.String())
		})
	}
}

func TestLBeforeInitIsNoop(t *testing.T) {
	saved := logger
	logger = nil
	t.Cleanup(func() { logger = saved })

	l := L()
	require.NotNil(t, l)
	l.Infow("dropped", "k", "v")
	assert.NotNil(t, l.With("component", "test"))
}

func TestInitWritesJSONLines(t *testing.T) {
	saved := logger
	t.Cleanup(func() { logger = saved })

	path := filepath.Join(t.TempDir(), "logs", "rkshell.log")
	require.NoError(t, Init(Options{Path: path, Level: "info"}))

	L().With("component", "test").Infow("command executed", "command", "pwd")
	L().Debugw("filtered out")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"command executed"`)
	assert.Contains(t, out, `"command":"pwd"`)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.False(t, strings.Contains(out, "filtered out"))

}

func TestDPanicIsLoggedWithoutPanicking(t *testing.T) {
	saved := logger
	t.Cleanup(func() { logger = saved })

	path := filepath.Join(t.TempDir(), "rkshell.log")
	require.NoError(t, Init(Options{Path: path, Level: "error"}))

	assert.NotPanics(t, func() {
		L().DPanicw("shell initialization failed", "error", "bad theme")
	})
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"DPANIC"`)
	assert.Contains(t, string(data), `"error":"bad theme"`)
}

func TestInitRejectsEmptyPath(t *testing.T) {
	require.Error(t, Init(Options{}))
}
