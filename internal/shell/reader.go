package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned by a LineReader when the user pressed Ctrl+C at
// the prompt.
var ErrInterrupt = errors.New("interrupt")

// LineReader yields one input line per call, without its terminator.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// bufferedReader serves scripted input: a pipe, a file or a test buffer.
// A signal on interrupts while it waits for a line is reported as
// ErrInterrupt; the pending line is delivered by the next ReadLine.
type bufferedReader struct {
	in         *bufio.Reader
	out        io.Writer
	interrupts <-chan os.Signal

	start sync.Once
	lines chan lineResult
	done  chan struct{}
}

type lineResult struct {
	line string
	err  error
}

func newBufferedReader(in io.Reader, out io.Writer, interrupts <-chan os.Signal) *bufferedReader {
	return &bufferedReader{
		in:         bufio.NewReader(in),
		out:        out,
		interrupts: interrupts,
		lines:      make(chan lineResult),
		done:       make(chan struct{}),
	}
}

func (r *bufferedReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	r.start.Do(func() { go r.readLines() })

	select {
	case res := <-r.lines:
		return res.line, res.err
	case <-r.interrupts:
		return "", ErrInterrupt
	}
}

// readLines feeds lines to ReadLine until the input fails or the reader
// is closed.
func (r *bufferedReader) readLines() {
	for {
		line, err := r.in.ReadString('\n')
		res := lineResult{line: strings.TrimRight(line, "\r\n")}
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			res = lineResult{err: err}
		}

		select {
		case r.lines <- res:
		case <-r.done:
			return
		}
		if res.err != nil {
			return
		}
	}
}

func (r *bufferedReader) Close() error {
	close(r.done)
	return nil
}

// editorReader serves a terminal with line editing, history and completion.
type editorReader struct {
	rl *readline.Instance
}

func newEditorReader(cfg *readline.Config, history []string) (*editorReader, error) {
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	for _, line := range history {
		_ = rl.SaveHistory(line)
	}
	return &editorReader{rl: rl}, nil
}

func (r *editorReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)

	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	return line, err
}

func (r *editorReader) Close() error {
	return r.rl.Close()
}
