package shell

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chzyer/readline"

	"rkshell/internal/completion"
	"rkshell/internal/config"
	"rkshell/internal/help"
	"rkshell/internal/history"
	"rkshell/internal/prompt"
	"rkshell/internal/system"
	"rkshell/internal/theme"
)

const (
	farewell      = "Exiting shell..."
	interruptHint = "Use 'exit' to quit"
)

// Shell is one interactive session: it reads lines, dispatches them and
// prints the formatted results until exit or end of input.
type Shell struct {
	config     *config.Config
	sys        *system.System
	history    *history.Manager
	completion *completion.Manager
	dispatcher *Dispatcher
	formatter  *theme.Formatter
	prompt     *prompt.Builder
	reader     LineReader

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	rand   *rand.Rand

	sigChan     chan os.Signal
	interactive bool
}

type ShellOption func(*Shell) error

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) ShellOption {
	return func(s *Shell) error {
		s.in, s.out, s.errOut = in, out, errOut
		return nil
	}
}

// WithSystem replaces the operating-system collaborator.
func WithSystem(sys *system.System) ShellOption {
	return func(s *Shell) error {
		s.sys = sys
		return nil
	}
}

// WithRand sets the source used to pick a random theme.
func WithRand(r *rand.Rand) ShellOption {
	return func(s *Shell) error {
		s.rand = r
		return nil
	}
}

func NewShell(cfg *config.Config, opts ...ShellOption) (*Shell, error) {
	s := &Shell{
		config:  cfg,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		sigChan: make(chan os.Signal, 1),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.sys == nil {
		s.sys = system.New(s.out)
	}

	th, err := theme.Select(cfg.Theme, s.rand)
	if err != nil {
		return nil, fmt.Errorf("failed to select theme: %w", err)
	}

	colorMode, err := theme.ParseColorMode(cfg.Color)
	if err != nil {
		return nil, err
	}

	s.formatter = theme.NewFormatter(th, colorMode)
	s.prompt = prompt.NewBuilder(cfg.Prompt, s.sys.Getwd, colorMode)

	s.history, err = history.NewManager(cfg.HistoryFile, cfg.MaxHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize history: %w", err)
	}

	helpSrc := help.NewSource(s.sys.Fs, cfg.HelpFile)
	s.dispatcher = NewDispatcher(s.sys, helpSrc, s.formatter)
	s.completion = completion.NewManager(s.dispatcher, helpSrc, s.sys.Fs)

	mode, err := config.ParseMode(cfg.Interactive)
	if err != nil {
		return nil, err
	}
	s.interactive = mode == config.ModeAlways || (mode == config.ModeAuto && isTerminal(s.in))

	return s, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && readline.IsTerminal(int(f.Fd()))
}

// Start runs the session and returns the process exit code.
func (s *Shell) Start() (int, error) {
	if err := s.initialize(); err != nil {
		return 1, err
	}
	defer s.cleanup()

	fmt.Fprintln(s.out, s.formatter.Banner())
	l().Infow("session started",
		"theme", s.formatter.Theme().Name,
		"interactive", s.interactive,
	)

	return s.loop()
}

func (s *Shell) initialize() error {
	if s.interactive {
		reader, err := newEditorReader(&readline.Config{
			AutoComplete:    s.completion,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
			HistoryLimit:    s.config.MaxHistory,
			Stdout:          s.out,
			Stderr:          s.errOut,
		}, s.history.GetAll())
		if err != nil {
			return err
		}
		s.reader = reader
		return nil
	}

	// Without a line editor Ctrl+C arrives as a signal; the reader turns
	// it into ErrInterrupt so the loop stays the only writer.
	signal.Notify(s.sigChan, syscall.SIGINT)
	s.reader = newBufferedReader(s.in, s.out, s.sigChan)
	return nil
}

func (s *Shell) printInterruptHint() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.formatter.Notice(theme.Warning, interruptHint))
}

func (s *Shell) cleanup() {
	signal.Stop(s.sigChan)

	if err := s.history.Save(); err != nil {
		l().Warnw("failed to save history", "error", err)
	}
	if err := s.reader.Close(); err != nil {
		l().Warnw("failed to close line reader", "error", err)
	}
	l().Infow("session ended")
}

func (s *Shell) loop() (int, error) {
	for {
		fmt.Fprintln(s.out)

		line, err := s.reader.ReadLine(s.prompt.Build())
		if err != nil {
			switch {
			case errors.Is(err, ErrInterrupt):
				s.printInterruptHint()
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintln(s.out)
				fmt.Fprintln(s.out, farewell)
				return 0, nil
			default:
				l().Errorw("failed to read input", "error", err)
				fmt.Fprintln(s.errOut, s.formatter.Notice(theme.Error, "Error: "+err.Error()))
				return 1, fmt.Errorf("failed to read input: %w", err)
			}
		}

		s.history.Add(line)

		display, res := s.dispatcher.Execute(line)
		if res.Exit {
			fmt.Fprintln(s.out, farewell)
			return 0, nil
		}
		if display != "" {
			fmt.Fprintln(s.out, display)
		}
	}
}
