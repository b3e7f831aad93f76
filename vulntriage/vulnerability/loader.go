package vulnerability

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/vulntriage/vulntriage/internal/file"
	"github.com/vulntriage/vulntriage/internal/log"
)

const columns = 5

// Load reads a vulnerability table with the columns number, cve, cvss, product, source url. The first row is a
// header. Blank rows are skipped.
func Load(fs afero.Fs, path string) ([]Vulnerability, error) {
	rows, err := file.ReadTable(fs, path, columns)
	if err != nil {
		return nil, fmt.Errorf("unable to read vulnerabilities: %w", err)
	}

	var vulns []Vulnerability
	for _, row := range rows {
		if row.Blank() {
			continue
		}
		vulns = append(vulns, Vulnerability{
			Number:    row.Cell(0),
			CVE:       row.Cell(1),
			CVSS:      row.Cell(2),
			Product:   row.Cell(3),
			SourceURL: row.Cell(4),
		})
	}

	log.Debugf("loaded %d vulnerabilities from %q", len(vulns), path)
	return vulns, nil
}
