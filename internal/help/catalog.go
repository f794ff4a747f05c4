package help

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/spf13/afero"
)

//go:embed commands.json
var defaultData []byte

// Record is the help entry of one command.
type Record struct {
	Title   string `json:"title"`
	Command string `json:"command"`
}

// Catalog is an immutable set of help records keyed by command name.
type Catalog struct {
	records map[string]Record
}

// Parse decodes a JSON object of {"name": {"title": ..., "command": ...}}.
func Parse(data []byte) (*Catalog, error) {
	records := make(map[string]Record)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode help data: %w", err)
	}
	return &Catalog{records: records}, nil
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultData)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Lookup(name string) (Record, bool) {
	r, ok := c.records[name]
	return r, ok
}

// Names returns every command name in the catalog, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.records))
	for name := range c.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source loads the catalog from a file. The file is read again on every
// Load so edits show up without restarting the shell.
type Source struct {
	fs   afero.Fs
	path string
}

func NewSource(fsys afero.Fs, path string) *Source {
	return &Source{fs: fsys, path: path}
}

// Load reads and parses the help file. A missing file, or an empty path,
// yields the built-in catalog.
func (s *Source) Load() (*Catalog, error) {
	if s == nil || s.path == "" {
		return Default(), nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read help file %s: %w", s.path, err)
	}

	return Parse(data)
}

// Names lists the topics of the current catalog, or none when it cannot
// be loaded.
func (s *Source) Names() []string {
	c, err := s.Load()
	if err != nil {
		return nil
	}
	return c.Names()
}
