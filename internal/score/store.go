package score

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
)

// FileStore persists a Table as a plain text file, one score per line.
type FileStore struct {
	Path string
}

// Load reads the table from disk. A missing file is not an error and yields
// an empty table.
func (s FileStore) Load() (Table, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info().Str("path", s.Path).Msg("no highscore file found")
			return NewTable(), nil
		}
		return NewTable(), fmt.Errorf("read high scores %s: %w", s.Path, err)
	}
	t, err := Parse(bytes.NewReader(data))
	if err != nil {
		return t, fmt.Errorf("parse high scores %s: %w", s.Path, err)
	}
	return t, nil
}

// Save rewrites the whole file.
func (s FileStore) Save(t Table) error {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write high scores %s: %w", s.Path, err)
	}
	return nil
}
