package shell

import (
	"errors"
	"fmt"

	"rkshell/internal/help"
	"rkshell/internal/logging"
	"rkshell/internal/system"
	"rkshell/internal/theme"
)

func l() *logging.Logger {
	return logging.L().With("component", "shell")
}

// Dispatcher routes input lines to handlers and formats their results.
// The command table is fixed at construction.
type Dispatcher struct {
	handlers map[string]Handler
	names    []string
	format   *theme.Formatter
}

func NewDispatcher(sys *system.System, helpSrc *help.Source, f *theme.Formatter) *Dispatcher {
	b := &builtins{sys: sys, help: helpSrc}
	table := b.table()

	d := &Dispatcher{
		handlers: make(map[string]Handler, len(table)),
		names:    make([]string, 0, len(table)),
		format:   f,
	}
	for _, cmd := range table {
		d.handlers[cmd.Name] = cmd.Handler
		d.names = append(d.names, cmd.Name)
	}
	b.names = d.names

	return d
}

// Names returns the command names in table order.
func (d *Dispatcher) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Execute dispatches line and returns the formatted block alongside the
// raw result. Exit results come back unformatted.
func (d *Dispatcher) Execute(line string) (string, Result) {
	res := d.Dispatch(line)
	if res.Exit {
		return "", res
	}
	return d.format.Format(res.Text, res.Status), res
}

// Dispatch parses line, runs the matching handler and turns every failure
// into an error result.
func (d *Dispatcher) Dispatch(line string) Result {
	inv, err := Parse(line)
	if err != nil {
		l().Warnw("empty command entered")
		return Result{Text: "Empty command", Status: theme.Warning}
	}

	handler, found := d.handlers[inv.Name]
	if !found {
		err := ErrUnknownCommand(inv.Name)
		l().Errorw("invalid command attempted", "command", inv.Name, "args", inv.Args)
		return Result{Text: err.Msg, Status: theme.Error}
	}

	res, err := d.run(handler, inv)
	if err != nil {
		kind := IOError
		var cmdErr *Error
		if errors.As(err, &cmdErr) {
			kind = cmdErr.Kind
		}
		l().Errorw("command failed",
			"command", inv.Name,
			"args", inv.Args,
			"kind", kind.String(),
			"error", err.Error(),
		)
		return Result{Text: "Error: " + err.Error(), Status: theme.Error}
	}

	l().Infow("command executed", "command", inv.Name, "args", inv.Args, "status", res.Status.String())
	return res
}

func (d *Dispatcher) run(h Handler, inv Invocation) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = fmt.Errorf("%v", r)
		}
	}()
	return h.Execute(inv.Args)
}
