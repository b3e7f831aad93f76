package vulnerability

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/vulns.csv", []byte(
		"number,cve,cvss,product,source\n"+
			"1,CVE-2024-0001,9.8,Microsoft - Windows 10 Enterprise,https://example.com/1\n"+
			"\n"+
			"2,CVE-2024-0002,5.0,\"WordPress Plugin, Contact Form 7\"\n"), 0644))

	actual, err := Load(fs, "/vulns.csv")
	require.NoError(t, err)

	expected := []Vulnerability{
		{Number: "1", CVE: "CVE-2024-0001", CVSS: "9.8", Product: "Microsoft - Windows 10 Enterprise", SourceURL: "https://example.com/1"},
		{Number: "2", CVE: "CVE-2024-0002", CVSS: "5.0", Product: "WordPress Plugin, Contact Form 7"},
	}
	if d := cmp.Diff(expected, actual); d != "" {
		t.Errorf("unexpected vulnerabilities (-want +got):\n%s", d)
	}
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/vulns.csv")
	assert.Error(t, err)
}
