package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"actlog/pkg/actlog/models"
)

// WriteError indicates the output workbook could not be persisted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write workbook %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write renders the mapped rows into the activity log template and
// saves the workbook in dir under the next free activity_log_<n>.xlsx
// name. The save is atomic: the file is written to a temporary path in
// dir and renamed, so a crash never leaves a partial workbook under a
// final name. Returns the path of the written file.
func Write(columns []string, rows []models.MappedRow, meta map[string]string, dir string) (string, error) {
	tmpl, err := LoadTemplate()
	if err != nil {
		return "", &WriteError{Path: dir, Err: err}
	}

	name, err := NextFilename(dir)
	if err != nil {
		return "", &WriteError{Path: dir, Err: err}
	}
	path := filepath.Join(dir, name)

	f, err := build(tmpl, columns, rows, meta)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	defer f.Close()

	tmp, err := os.CreateTemp(dir, ".actlog-*.xlsx")
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}
