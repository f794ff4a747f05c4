package completion

import (
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// NameSource lists command names or help topics.
type NameSource interface {
	Names() []string
}

type CompletionFunc func(args []string, word string) []string

// Manager completes command names, help topics and file paths. It
// satisfies readline.AutoCompleter.
type Manager struct {
	commands    NameSource
	topics      NameSource
	fs          afero.Fs
	customComps map[string]CompletionFunc
}

func NewManager(commands, topics NameSource, fsys afero.Fs) *Manager {
	m := &Manager{
		commands:    commands,
		topics:      topics,
		fs:          fsys,
		customComps: make(map[string]CompletionFunc),
	}

	m.customComps["help"] = m.completeHelp
	m.customComps["time"] = completeTimeFlags
	for _, noArgs := range []string{"date", "ipconfig", "pwd", "clear", "exit"} {
		m.customComps[noArgs] = func([]string, string) []string { return nil }
	}

	return m
}

// Do implements readline.AutoCompleter.
func (m *Manager) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	word := currentWord(prefix)

	var out [][]rune
	for _, cand := range m.Complete(prefix) {
		if strings.HasPrefix(cand, word) {
			out = append(out, []rune(cand[len(word):]))
		}
	}
	return out, len([]rune(word))
}

// Complete returns full candidates for the word under the cursor at the
// end of line.
func (m *Manager) Complete(line string) []string {
	words := strings.Fields(line)
	word := currentWord(line)

	if len(words) == 0 || (len(words) == 1 && word != "") {
		return m.completeCommand(word)
	}

	args := words[1:]
	if word != "" {
		args = args[:len(args)-1]
	}
	if completer, exists := m.customComps[words[0]]; exists {
		return completer(args, word)
	}

	return m.completePath(word)
}

func currentWord(line string) string {
	if line == "" || strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
		return ""
	}
	words := strings.Fields(line)
	return words[len(words)-1]
}

func (m *Manager) completeCommand(prefix string) []string {
	return matchNames(m.commands, prefix)
}

func (m *Manager) completeHelp(args []string, word string) []string {
	if len(args) > 0 {
		return nil
	}
	return matchNames(m.topics, word)
}

func matchNames(src NameSource, prefix string) []string {
	var completions []string
	for _, name := range src.Names() {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name)
		}
	}
	return uniqueStrings(completions)
}

func completeTimeFlags(args []string, word string) []string {
	used := make(map[string]bool, len(args))
	for _, a := range args {
		used[a] = true
	}

	var out []string
	for _, flag := range []string{"-hours", "-mins", "-secs"} {
		if !used[flag] && strings.HasPrefix(flag, word) {
			out = append(out, flag)
		}
	}
	return out
}

func uniqueStrings(strs []string) []string {
	keys := make(map[string]bool)
	var list []string

	for _, entry := range strs {
		if !keys[entry] {
			keys[entry] = true
			list = append(list, entry)
		}
	}

	sort.Strings(list)
	return list
}

func (m *Manager) completePath(prefix string) []string {
	var completions []string

	// dir is the typed directory part, kept verbatim so candidates extend
	// the word under the cursor.
	dir, searchPrefix := "", prefix
	if i := strings.LastIndex(prefix, "/"); i >= 0 {
		dir, searchPrefix = prefix[:i+1], prefix[i+1:]
	}

	basePath := strings.TrimSuffix(dir, "/")
	switch {
	case dir == "":
		basePath = "."
	case basePath == "":
		basePath = "/"
	}

	files, err := afero.ReadDir(m.fs, basePath)
	if err != nil {
		return completions
	}

	for _, file := range files {
		name := file.Name()
		if !strings.HasPrefix(name, searchPrefix) {
			continue
		}
		if file.IsDir() {
			name += "/"
		}
		completions = append(completions, dir+name)
	}

	return completions
}
