/*
Package journal provides read access to the publication journal: the record of vulnerabilities that were already
triaged and published.
*/
package journal

import (
	"strings"
)

// Entry is a single published journal row.
type Entry struct {
	Responsible string `json:"responsible"`
	Publication string `json:"publication"`
	Status      string `json:"status"`
	ID          string `json:"id"`
	CVE         string `json:"cve"`
	CVSS        string `json:"cvss"`
	Product     string `json:"product"`
}

// Provider finds previously recorded entries for a CVE.
type Provider interface {
	FindByCVE(cve string) []Entry
}

// Journal is an in-memory Provider.
type Journal struct {
	entries []Entry
	byCVE   map[string][]int
}

// New indexes the given entries by their trimmed CVE identifier.
func New(entries []Entry) *Journal {
	j := &Journal{
		entries: entries,
		byCVE:   make(map[string][]int),
	}
	for idx, e := range entries {
		cve := strings.TrimSpace(e.CVE)
		if cve == "" {
			continue
		}
		j.byCVE[cve] = append(j.byCVE[cve], idx)
	}
	return j
}

// FindByCVE returns every entry whose CVE equals the given one after trimming surrounding whitespace on both sides.
// An empty CVE never matches.
func (j *Journal) FindByCVE(cve string) []Entry {
	if j == nil {
		return nil
	}
	var out []Entry
	for _, idx := range j.byCVE[strings.TrimSpace(cve)] {
		out = append(out, j.entries[idx])
	}
	return out
}

// Len is the number of journal entries.
func (j *Journal) Len() int {
	if j == nil {
		return 0
	}
	return len(j.entries)
}
