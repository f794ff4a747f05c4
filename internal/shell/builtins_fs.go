package shell

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

const emptyFilePlaceholder = "(Empty file)"

func (b *builtins) listFiles(args []string) (Result, error) {
	return b.listEntries("list [path]", args, func(info fs.FileInfo) bool { return !info.IsDir() })
}

func (b *builtins) listDirs(args []string) (Result, error) {
	return b.listEntries("dirs [path]", args, fs.FileInfo.IsDir)
}

func (b *builtins) listEntries(usage string, args []string, keep func(fs.FileInfo) bool) (Result, error) {
	dir := "."
	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return fail(usageError(usage))
	}

	info, err := b.sys.Fs.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fail(newError(NotFoundError, err, "Directory not found -> %s", dir))
		}
		return fail(pathError(dir, err))
	}
	if !info.IsDir() {
		return fail(newError(UsageError, nil, "'%s' is not a directory", dir))
	}

	entries, err := afero.ReadDir(b.sys.Fs, dir)
	if err != nil {
		return fail(pathError(dir, err))
	}

	var names []string
	for _, entry := range entries {
		if keep(entry) {
			names = append(names, entry.Name())
		}
	}
	return ok(strings.Join(names, "\n"))
}

// readText reads a whole regular file that must decode as text.
func (b *builtins) readText(name string) (string, *Error) {
	info, err := b.sys.Fs.Stat(name)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if filepath.Ext(name) == "" {
				return "", newError(NotFoundError, err, "File '%s' not found. Did you forget the file extension?", name)
			}
			cwd, _ := b.sys.Getwd()
			return "", newError(NotFoundError, err, "File '%s' does not exist in the current directory: %s", name, cwd)
		case errors.Is(err, fs.ErrPermission):
			return "", newError(PermissionError, err, "Permission denied to read '%s'", name)
		default:
			return "", newError(IOError, err, "Unable to read '%s' - %v", name, err)
		}
	}
	if info.IsDir() {
		return "", newError(UsageError, nil, "'%s' is a directory, not a file", name)
	}

	data, err := afero.ReadFile(b.sys.Fs, name)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", newError(PermissionError, err, "Permission denied to read '%s'", name)
		}
		return "", newError(IOError, err, "Unable to read '%s' - %v", name, err)
	}

	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return "", newError(EncodingError, nil, "'%s' appears to be a binary file", name)
	}
	return string(data), nil
}

func (b *builtins) catFile(args []string) (Result, error) {
	if len(args) != 1 {
		return fail(usageError("cat <filename>"))
	}

	content, err := b.readText(args[0])
	if err != nil {
		return fail(err)
	}
	if content == "" {
		return ok(emptyFilePlaceholder)
	}
	return ok(content)
}

func (b *builtins) headFile(args []string) (Result, error) {
	n, lines, err := b.countedLines("head -N <filename>", args)
	if err != nil {
		return fail(err)
	}
	if n > len(lines) {
		n = len(lines)
	}
	return ok(strings.Join(lines[:n], ""))
}

func (b *builtins) tailFile(args []string) (Result, error) {
	n, lines, err := b.countedLines("tail -N <filename>", args)
	if err != nil {
		return fail(err)
	}
	if n > len(lines) {
		n = len(lines)
	}
	return ok(strings.Join(lines[len(lines)-n:], ""))
}

// countedLines parses "-N <file>" and returns N with the file's lines,
// each keeping its own terminator.
func (b *builtins) countedLines(usage string, args []string) (int, []string, *Error) {
	if len(args) != 2 {
		return 0, nil, usageError(usage)
	}

	n, err := strconv.Atoi(strings.ReplaceAll(args[0], "-", ""))
	if err != nil {
		return 0, nil, newError(UsageError, err, "Invalid line count '%s'. Usage: %s", args[0], usage)
	}

	content, cerr := b.readText(args[1])
	if cerr != nil {
		return 0, nil, cerr
	}
	return n, splitLines(content), nil
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (b *builtins) copyFile(args []string) (Result, error) {
	if len(args) != 2 {
		return fail(usageError("copy_file <src> <dest>"))
	}
	src, dest := args[0], args[1]

	info, err := b.sys.Fs.Stat(src)
	if err != nil {
		return fail(pathError(src, err))
	}
	if info.IsDir() {
		return fail(newError(UsageError, nil, "'%s' is a directory, not a file", src))
	}

	data, err := afero.ReadFile(b.sys.Fs, src)
	if err != nil {
		return fail(pathError(src, err))
	}
	if err := afero.WriteFile(b.sys.Fs, dest, data, 0644); err != nil {
		return fail(pathError(dest, err))
	}

	return ok("Copied " + src + " to " + dest)
}

func (b *builtins) removeFile(args []string) (Result, error) {
	if len(args) != 1 {
		return fail(usageError("remove_file <filename>"))
	}
	name := args[0]

	info, err := b.sys.Fs.Stat(name)
	if err != nil {
		return fail(pathError(name, err))
	}
	if info.IsDir() {
		return fail(newError(UsageError, nil, "'%s' is a directory, not a file", name))
	}

	if err := b.sys.Fs.Remove(name); err != nil {
		return fail(pathError(name, err))
	}
	return ok("Removed " + name)
}

func (b *builtins) emptyFile(args []string) (Result, error) {
	if len(args) != 1 {
		return fail(usageError("empty_file <filename>"))
	}
	name := args[0]

	if info, err := b.sys.Fs.Stat(name); err == nil && info.IsDir() {
		return fail(newError(UsageError, nil, "'%s' is a directory, not a file", name))
	}

	f, err := b.sys.Fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fail(pathError(name, err))
	}
	if err := f.Close(); err != nil {
		return fail(pathError(name, err))
	}
	return ok("Emptied " + name)
}
