package internal

import (
	"testing"
	"time"

	"github.com/vulntriage/vulntriage/vulntriage"
	"github.com/vulntriage/vulntriage/vulntriage/inventory"
	"github.com/vulntriage/vulntriage/vulntriage/journal"
	"github.com/vulntriage/vulntriage/vulntriage/match"
	"github.com/vulntriage/vulntriage/vulntriage/rule"
	"github.com/vulntriage/vulntriage/vulntriage/status"
	"github.com/vulntriage/vulntriage/vulntriage/triage"
	"github.com/vulntriage/vulntriage/vulntriage/vulnerability"
)

// GenerateAnalysis builds a fixed analysis covering every decision source.
func GenerateAnalysis(t *testing.T) vulntriage.Analysis {
	t.Helper()

	kernel := rule.Parse(rule.LinuxCategory, "kernel", "Linux;Kernel;ID-LNX-001;Linux Kernel")
	wordpress := rule.Parse(rule.DenyCategory, "wordpress", "WordPress;;1")

	return vulntriage.Analysis{
		Descriptor: vulntriage.Descriptor{
			ID:                "2f1e7c9a-3b0d-4c55-9a51-6a1f3c0d2e11",
			Timestamp:         time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC),
			Responsible:       "J. Doe",
			Publication:       "feed",
			ConfigFingerprint: "00000000deadbeef",
			InventorySize:     2,
			RuleCount:         2,
		},
		Results: []triage.Result{
			{
				Vulnerability: vulnerability.Vulnerability{Number: "1", CVE: "CVE-2024-0001", CVSS: "9.8", Product: "Microsoft - Windows 10 Enterprise"},
				Decision:      status.NewUndecided(),
				Source:        triage.InventorySource,
				Matches: match.Records{
					{
						Entry:               inventory.Entry{ID: "ID-WIN-11", Vendor: "Microsoft", Name: "Windows 11 Pro", Source: inventory.LocalSource},
						Tier:                match.FuzzyTier,
						MatchedWordCount:    2,
						AverageSimilarity:   100,
						VendorMatchedCount:  1,
						ProductMatchedCount: 1,
					},
				},
				Words: []string{"enterprise", "microsoft", "windows"},
			},
			{
				Vulnerability: vulnerability.Vulnerability{Number: "2", CVE: "CVE-2024-0002", CVSS: "5.0", Product: "WordPress Plugin Contact Form 7"},
				Decision:      status.NewDeny(),
				Source:        triage.RuleSource,
				Rule:          &wordpress,
				Words:         []string{"contact", "form", "plugin", "wordpress"},
			},
			{
				Vulnerability: vulnerability.Vulnerability{Number: "3", CVE: "CVE-2024-0003", CVSS: "7.5", Product: "The Linux Foundation - Linux Kernel 6.1"},
				Decision:      status.NewLinux("ID-LNX-001"),
				Source:        triage.RuleSource,
				Rule:          &kernel,
				Words:         []string{"foundation", "kernel", "linux", "the"},
			},
			{
				Vulnerability: vulnerability.Vulnerability{Number: "4", CVE: "CVE-2023-1111", CVSS: "6.1", Product: "Google Inc, Kubernetes"},
				Decision:      status.NewDuplicate(),
				Source:        triage.JournalSource,
				Duplicates:    []journal.Entry{{Status: "allow", ID: "COM-7303", CVE: "CVE-2023-1111", Product: "Google Inc, Kubernetes"}},
				Words:         []string{"google", "inc", "kubernetes"},
			},
		},
	}
}
