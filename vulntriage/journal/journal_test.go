package journal

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByCVE(t *testing.T) {
	j := New([]Entry{
		{Status: "allow", ID: "COM-7303", CVE: "CVE-2021-25743", Product: "Google Inc, Kubernetes"},
		{Status: "conditional", ID: "COM-6888", CVE: "CVE-2024-45283", Product: "SAP SE, SAP NetWeaver"},
		{Status: "deny", CVE: "CVE-2023-12345"},
		{Status: "duplicate", ID: "COM-7303", CVE: "  CVE-2021-25743  ", Product: "Google Kubernetes Old"},
		{Status: "deny", CVE: ""},
	})

	tests := []struct {
		name     string
		cve      string
		expected []string
	}{
		{name: "recorded twice with padding", cve: "CVE-2021-25743", expected: []string{"Google Inc, Kubernetes", "Google Kubernetes Old"}},
		{name: "query is trimmed", cve: " CVE-2024-45283\t", expected: []string{"SAP SE, SAP NetWeaver"}},
		{name: "absent", cve: "CVE-1999-0001"},
		{name: "empty never matches", cve: "  "},
		{name: "equality not containment", cve: "CVE-2021-2574"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var products []string
			for _, e := range j.FindByCVE(test.cve) {
				products = append(products, e.Product)
			}
			assert.Equal(t, test.expected, products)
		})
	}
}

func TestFindByCVE_nilJournal(t *testing.T) {
	var j *Journal
	assert.Empty(t, j.FindByCVE("CVE-2021-25743"))
	assert.Equal(t, 0, j.Len())
}

func TestNameFor(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{name: "start of working day", at: time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC), expected: "journal 15.10.2025"},
		{name: "end of working day", at: time.Date(2025, 10, 15, 19, 59, 0, 0, time.UTC), expected: "journal 15.10.2025"},
		{name: "evening", at: time.Date(2025, 10, 15, 20, 0, 0, 0, time.UTC), expected: "journal 15.10.2025 (2)"},
		{name: "before midnight", at: time.Date(2025, 10, 15, 23, 59, 0, 0, time.UTC), expected: "journal 15.10.2025 (2)"},
		{name: "after midnight", at: time.Date(2025, 10, 16, 0, 30, 0, 0, time.UTC), expected: "journal 15.10.2025 (2)"},
		{name: "early morning across a month", at: time.Date(2025, 11, 1, 7, 59, 0, 0, time.UTC), expected: "journal 31.10.2025 (2)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, NameFor(test.at, "journal"))
		})
	}

	assert.Equal(t, DefaultBaseName+" 15.10.2025", NameFor(time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC), ""))
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/journal.csv", []byte(
		"responsible,publication,status,id,cve,cvss,product\n"+
			"J. Doe,feed,allow,COM-1,CVE-2024-0001,9.8,\"Acme, Widget\"\n"+
			",,,,,,\n"+
			"J. Doe,feed,deny,-----------, CVE-2024-0002 ,5.0,Other\n"), 0644))

	j, err := Load(fs, "/journal.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, j.Len())

	found := j.FindByCVE("CVE-2024-0001")
	require.Len(t, found, 1)
	assert.Equal(t, Entry{
		Responsible: "J. Doe",
		Publication: "feed",
		Status:      "allow",
		ID:          "COM-1",
		CVE:         "CVE-2024-0001",
		CVSS:        "9.8",
		Product:     "Acme, Widget",
	}, found[0])
	assert.Len(t, j.FindByCVE("CVE-2024-0002"), 1)

	_, err = Load(fs, "/missing.csv")
	assert.Error(t, err)
}
