package vulntriage_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagoodman/go-partybus"

	"github.com/vulntriage/vulntriage/internal/bus"
	"github.com/vulntriage/vulntriage/vulntriage"
	"github.com/vulntriage/vulntriage/vulntriage/event"
	"github.com/vulntriage/vulntriage/vulntriage/event/parsers"
	"github.com/vulntriage/vulntriage/vulntriage/inventory"
	"github.com/vulntriage/vulntriage/vulntriage/journal"
	"github.com/vulntriage/vulntriage/vulntriage/matcher"
	"github.com/vulntriage/vulntriage/vulntriage/rule"
	"github.com/vulntriage/vulntriage/vulntriage/status"
	"github.com/vulntriage/vulntriage/vulntriage/triage"
	"github.com/vulntriage/vulntriage/vulntriage/vulnerability"
)

type capturingPublisher struct {
	lock   sync.Mutex
	events []partybus.Event
}

func (p *capturingPublisher) Publish(e partybus.Event) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.events = append(p.events, e)
}

func fixtureEngine() *triage.Engine {
	inv := inventory.Inventory{
		{ID: "ID-WIN-11", Vendor: "Microsoft", Name: "Windows 11 Pro", Source: inventory.LocalSource},
	}
	rules := rule.NewSet(
		rule.Parse(rule.DenyCategory, "wordpress", "WordPress;;1"),
		rule.Parse(rule.AllowCategory, "nginx", "F5;NGINX;ID-NGINX;0"),
	)
	j := journal.New([]journal.Entry{{CVE: "CVE-2024-0001"}})
	return triage.NewEngine(matcher.DefaultConfig(), rules, inv, j)
}

func fixtureVulnerabilities(n int) []vulnerability.Vulnerability {
	products := []string{
		"Microsoft - Windows 10 Enterprise",
		"WordPress Plugin Contact Form 7",
		"F5, NGINX Plus",
		"Unknown exotic product",
	}
	var vulns []vulnerability.Vulnerability
	for i := 0; i < n; i++ {
		vulns = append(vulns, vulnerability.Vulnerability{
			Number:  fmt.Sprintf("%d", i+1),
			CVE:     fmt.Sprintf("CVE-2024-%04d", i+1),
			Product: products[i%len(products)],
		})
	}
	return vulns
}

func TestAnalyze(t *testing.T) {
	publisher := &capturingPublisher{}
	bus.Set(publisher)
	t.Cleanup(func() { bus.Set(nil) })

	vulns := fixtureVulnerabilities(40)
	analysis, err := vulntriage.Analyze(context.Background(), fixtureEngine(), vulns, vulntriage.AnalyzeOptions{Workers: 4, Responsible: "J. Doe"})
	require.NoError(t, err)

	require.Len(t, analysis.Results, len(vulns))
	for idx, r := range analysis.Results {
		assert.Equal(t, vulns[idx], r.Vulnerability, "result %d out of order", idx)
	}

	first := analysis.Results[0]
	assert.Equal(t, status.Duplicate, first.Decision.Status)
	assert.Equal(t, status.Undecided, analysis.Results[4].Decision.Status)
	assert.Equal(t, status.Deny, analysis.Results[1].Decision.Status)
	assert.Equal(t, status.Allow, analysis.Results[2].Decision.Status)
	assert.Equal(t, "ID-NGINX", analysis.Results[2].Decision.ResolvedID)

	counts := analysis.Counts()
	assert.Equal(t, 1, counts[status.Duplicate])
	assert.Equal(t, 9, counts[status.Undecided])
	assert.Equal(t, 20, counts[status.Deny])
	assert.Equal(t, 10, counts[status.Allow])

	assert.NotEmpty(t, analysis.Descriptor.ID)
	assert.Equal(t, "J. Doe", analysis.Descriptor.Responsible)
	assert.Equal(t, 1, analysis.Descriptor.InventorySize)
	assert.Equal(t, 2, analysis.Descriptor.RuleCount)
	assert.NotEmpty(t, analysis.Descriptor.ConfigFingerprint)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, event.TriageStarted, publisher.events[0].Type)
	mon, err := parsers.ParseTriageStarted(publisher.events[0])
	require.NoError(t, err)
	assert.Equal(t, int64(len(vulns)), mon.VulnerabilitiesProcessed.Current())
	assert.Equal(t, int64(10), mon.ByStatus[status.Allow].Current())
	// the duplicate still gathers its inventory candidates
	assert.Equal(t, int64(10), mon.CandidatesDiscovered.Current())
}

func TestAnalyze_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := vulntriage.Analyze(ctx, fixtureEngine(), fixtureVulnerabilities(8), vulntriage.AnalyzeOptions{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_noEngine(t *testing.T) {
	_, err := vulntriage.Analyze(context.Background(), nil, nil, vulntriage.AnalyzeOptions{})
	assert.Error(t, err)
}

func TestAnalyze_empty(t *testing.T) {
	analysis, err := vulntriage.Analyze(context.Background(), fixtureEngine(), nil, vulntriage.AnalyzeOptions{})
	require.NoError(t, err)
	assert.Empty(t, analysis.Results)
}

func TestFingerprint(t *testing.T) {
	rules := rule.NewSet(rule.Parse(rule.DenyCategory, "wordpress", "WordPress;;1"))

	base, err := vulntriage.Fingerprint(matcher.DefaultConfig(), rules)
	require.NoError(t, err)

	again, err := vulntriage.Fingerprint(matcher.DefaultConfig(), rule.NewSet(rule.Parse(rule.DenyCategory, "wordpress", "WordPress;;1")))
	require.NoError(t, err)
	assert.Equal(t, base, again)

	cfg := matcher.DefaultConfig()
	cfg.FuzzRatioThreshold = 85
	changedConfig, err := vulntriage.Fingerprint(cfg, rules)
	require.NoError(t, err)
	assert.NotEqual(t, base, changedConfig)

	changedRules, err := vulntriage.Fingerprint(matcher.DefaultConfig(), rule.NewSet(rule.Parse(rule.DenyCategory, "wordpress", "WordPress;;0")))
	require.NoError(t, err)
	assert.NotEqual(t, base, changedRules)
}
