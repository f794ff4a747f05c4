package shell

import "rkshell/internal/theme"

// Result is what a handler hands back to the dispatcher.
type Result struct {
	Text   string
	Status theme.Status
	// Exit asks the session loop to end the session.
	Exit bool
}

// Handler runs one command.
type Handler interface {
	Execute(args []string) (Result, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(args []string) (Result, error)

func (f HandlerFunc) Execute(args []string) (Result, error) {
	return f(args)
}

func ok(text string) (Result, error) {
	return Result{Text: text, Status: theme.Success}, nil
}

func info(text string) (Result, error) {
	return Result{Text: text, Status: theme.Info}, nil
}

func fail(err *Error) (Result, error) {
	return Result{}, err
}
