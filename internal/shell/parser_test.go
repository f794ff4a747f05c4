package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Invocation
		expectedErr error
	}{
		{
			name:     "bare command",
			input:    "pwd",
			expected: Invocation{Name: "pwd", Args: []string{}},
		},
		{
			name:     "command with arguments",
			input:    "head -5 notes.txt",
			expected: Invocation{Name: "head", Args: []string{"-5", "notes.txt"}},
		},
		{
			name:     "surrounding and repeated whitespace",
			input:    "  copy_file\ta.txt    b.txt  ",
			expected: Invocation{Name: "copy_file", Args: []string{"a.txt", "b.txt"}},
		},
		{
			name:     "quotes are not special",
			input:    `cat "my file.txt"`,
			expected: Invocation{Name: "cat", Args: []string{`"my`, `file.txt"`}},
		},
		{
			name:        "empty line",
			input:       "",
			expectedErr: ErrEmptyCommand,
		},
		{
			name:        "whitespace only",
			input:       " \t  ",
			expectedErr: ErrEmptyCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
