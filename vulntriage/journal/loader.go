package journal

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/vulntriage/vulntriage/internal/file"
	"github.com/vulntriage/vulntriage/internal/log"
)

const columns = 7

// Load reads a journal table with the columns responsible, publication, status, id, cve, cvss, product. The first
// row is a header. Blank rows are skipped.
func Load(fs afero.Fs, path string) (*Journal, error) {
	rows, err := file.ReadTable(fs, path, columns)
	if err != nil {
		return nil, fmt.Errorf("unable to read journal: %w", err)
	}

	var entries []Entry
	for _, row := range rows {
		if row.Blank() {
			continue
		}
		entries = append(entries, Entry{
			Responsible: row.Cell(0),
			Publication: row.Cell(1),
			Status:      row.Cell(2),
			ID:          row.Cell(3),
			CVE:         row.Cell(4),
			CVSS:        row.Cell(5),
			Product:     row.Cell(6),
		})
	}

	log.Debugf("loaded %d journal entries from %q", len(entries), path)
	return New(entries), nil
}
