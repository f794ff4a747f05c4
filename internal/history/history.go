package history

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Manager keeps the lines typed at the prompt. An empty file path keeps
// history in memory only.
type Manager struct {
	entries    []string
	filePath   string
	maxEntries int
	mu         sync.RWMutex
}

func NewManager(filePath string, maxEntries int) (*Manager, error) {
	m := &Manager{
		filePath:   filePath,
		maxEntries: maxEntries,
	}

	if err := m.load(); err != nil {
		return nil, err
	}

	return m, nil
}

// Add records entry unless it is blank or repeats the previous one.
func (m *Manager) Add(entry string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry = strings.TrimSpace(entry)
	if entry == "" || (len(m.entries) > 0 && m.entries[len(m.entries)-1] == entry) {
		return
	}

	m.entries = append(m.entries, entry)
	m.trim()
}

func (m *Manager) trim() {
	if m.maxEntries > 0 && len(m.entries) > m.maxEntries {
		m.entries = m.entries[len(m.entries)-m.maxEntries:]
	}
}

func (m *Manager) GetAll() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, len(m.entries))
	copy(result, m.entries)
	return result
}

func (m *Manager) load() error {
	if m.filePath == "" {
		return nil
	}

	file, err := os.Open(m.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entry := strings.TrimSpace(scanner.Text())
		if entry != "" {
			m.entries = append(m.entries, entry)
		}
	}
	m.trim()

	return scanner.Err()
}

func (m *Manager) Save() error {
	if m.filePath == "" {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(m.filePath), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(m.filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, entry := range m.entries {
		if _, err := writer.WriteString(entry + "\n"); err != nil {
			return err
		}
	}

	return writer.Flush()
}
