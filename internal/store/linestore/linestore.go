package linestore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/todo-cli/internal/model"
)

// Line-backed storage: one "<RFC3339>\t<description>" record per line.
// No locking; an interactive save overwrites anything appended since load.

const dataFileName = ".todo"

// DefaultPath is the todo file in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dataFileName), nil
}

// Store reads and writes the todo file at Path.
type Store struct {
	Path string
}

// Load returns the stored records. A missing file is an empty list and
// malformed lines are skipped.
func (s Store) Load() ([]model.Record, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Record{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	records := []model.Record{}
	for line := range bytes.SplitSeq(b, []byte{'\n'}) {
		r, err := model.ParseLine(string(line))
		if err != nil {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

// Save truncates the file and writes every record in order.
func (s Store) Save(records []model.Record) error {
	var buf bytes.Buffer
	for _, r := range records {
		buf.WriteString(r.MarshalLine())
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Append adds one record to the end of the file, creating it if needed.
func (s Store) Append(r model.Record) error {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	if _, err := f.WriteString(r.MarshalLine() + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}
