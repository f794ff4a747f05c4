package shell

import (
	"fmt"
	"strings"

	"rkshell/internal/help"
	"rkshell/internal/system"
)

type builtin struct {
	Name    string
	Handler Handler
}

// builtins holds what the command handlers share.
type builtins struct {
	sys   *system.System
	help  *help.Source
	names []string
}

func (b *builtins) table() []builtin {
	return []builtin{
		{Name: "list", Handler: HandlerFunc(b.listFiles)},
		{Name: "dirs", Handler: HandlerFunc(b.listDirs)},
		{Name: "date", Handler: HandlerFunc(b.showDate)},
		{Name: "time", Handler: HandlerFunc(b.showTime)},
		{Name: "cat", Handler: HandlerFunc(b.catFile)},
		{Name: "head", Handler: HandlerFunc(b.headFile)},
		{Name: "tail", Handler: HandlerFunc(b.tailFile)},
		{Name: "copy_file", Handler: HandlerFunc(b.copyFile)},
		{Name: "remove_file", Handler: HandlerFunc(b.removeFile)},
		{Name: "empty_file", Handler: HandlerFunc(b.emptyFile)},
		{Name: "ipconfig", Handler: HandlerFunc(b.showIP)},
		{Name: "pwd", Handler: HandlerFunc(b.showCwd)},
		{Name: "clear", Handler: HandlerFunc(b.clearScreen)},
		{Name: "exit", Handler: HandlerFunc(exitShell)},
		{Name: "help", Handler: HandlerFunc(b.helpCommand)},
	}
}

func exitShell(args []string) (Result, error) {
	return Result{Exit: true}, nil
}

func (b *builtins) helpCommand(args []string) (Result, error) {
	switch len(args) {
	case 0:
		var sb strings.Builder
		sb.WriteString("Usage: help <command_name>")
		n := 0
		for _, name := range b.names {
			if name == "help" {
				continue
			}
			n++
			fmt.Fprintf(&sb, "\n  %2d. %s", n, name)
		}
		return info(sb.String())
	case 1:
	default:
		return fail(usageError("help [command]"))
	}

	catalog, err := b.help.Load()
	if err != nil {
		return fail(newError(IOError, err, "%v", err))
	}

	name := args[0]
	rec, found := catalog.Lookup(name)
	if !found {
		return fail(newError(NotFoundError, nil, "Unknown help command: %s", name))
	}

	return info(fmt.Sprintf("%s :\n %s\nCommand: %s", name, rec.Title, rec.Command))
}
