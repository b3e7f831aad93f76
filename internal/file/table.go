package file

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/vulntriage/vulntriage/internal/log"
)

// Row is a single data row of a tabular input with at least the requested number of columns. Missing trailing
// cells are empty strings.
type Row struct {
	Line  int
	Cells []string
}

// Cell returns the trimmed value of the given column.
func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return strings.TrimSpace(r.Cells[idx])
}

// Blank reports whether every cell of the row is empty.
func (r Row) Blank() bool {
	for _, c := range r.Cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ReadTable reads a comma separated table from the given path. The first record is treated as a header and skipped.
// Every returned row is padded to at least columns cells.
func ReadTable(fs afero.Fs, path string, columns int) ([]Row, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %q: %w", path, err)
	}
	defer log.CloseAndLogError(f, path)

	return readTable(f, columns)
}

func readTable(reader io.Reader, columns int) ([]Row, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows []Row
	line := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("unable to read line %d: %w", line, err)
		}
		if line == 1 {
			// header
			continue
		}
		for len(record) < columns {
			record = append(record, "")
		}
		rows = append(rows, Row{Line: line, Cells: record})
	}
	return rows, nil
}
