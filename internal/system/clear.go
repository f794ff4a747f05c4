package system

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"time"
)

const clearTimeout = 5 * time.Second

// ansiClear homes the cursor and erases the screen.
const ansiClear = "\033[H\033[2J"

func clearCommand() (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/c", "cls"}
	}
	return "clear", nil
}

// ClearScreen runs the platform clear command with its output sent to out.
// When the command is unavailable it falls back to the ANSI sequence.
func ClearScreen(out io.Writer) error {
	name, args := clearCommand()

	path, err := exec.LookPath(name)
	if err != nil {
		_, err := io.WriteString(out, ansiClear)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), clearTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}
	return nil
}
