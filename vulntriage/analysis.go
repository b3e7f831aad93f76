package vulntriage

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"
	"golang.org/x/sync/errgroup"

	"github.com/vulntriage/vulntriage/internal/bus"
	"github.com/vulntriage/vulntriage/internal/log"
	"github.com/vulntriage/vulntriage/vulntriage/event"
	"github.com/vulntriage/vulntriage/vulntriage/event/monitor"
	"github.com/vulntriage/vulntriage/vulntriage/matcher"
	"github.com/vulntriage/vulntriage/vulntriage/rule"
	"github.com/vulntriage/vulntriage/vulntriage/status"
	"github.com/vulntriage/vulntriage/vulntriage/triage"
	"github.com/vulntriage/vulntriage/vulntriage/vulnerability"
)

// Descriptor identifies a single batch run.
type Descriptor struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Responsible string    `json:"responsible,omitempty"`
	Publication string    `json:"publication,omitempty"`
	// ConfigFingerprint changes whenever the matcher settings or the rule set change.
	ConfigFingerprint string `json:"configFingerprint"`
	InventorySize     int    `json:"inventorySize"`
	RuleCount         int    `json:"ruleCount"`
}

// Analysis holds the results of a batch in the order of the input vulnerabilities.
type Analysis struct {
	Descriptor Descriptor
	Results    []triage.Result
}

// Counts returns the number of results per status.
func (a Analysis) Counts() map[status.Status]int {
	counts := make(map[status.Status]int)
	for _, r := range a.Results {
		counts[r.Decision.Status]++
	}
	return counts
}

type AnalyzeOptions struct {
	// Workers bounds the number of vulnerabilities triaged concurrently. Zero or less uses the number of CPUs.
	Workers     int
	Responsible string
	Publication string
}

// Analyze triages every vulnerability with the given engine. Results keep the input order. Cancelling the context
// stops scheduling further vulnerabilities and returns the context error.
func Analyze(ctx context.Context, engine *triage.Engine, vulns []vulnerability.Vulnerability, opts AnalyzeOptions) (*Analysis, error) {
	if engine == nil {
		return nil, fmt.Errorf("no triage engine provided")
	}

	fingerprint, err := Fingerprint(engine.Config(), engine.Rules())
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	log.Infof("triaging %s vulnerabilities against %s inventory entries and %s rules",
		humanize.Comma(int64(len(vulns))), humanize.Comma(int64(engine.InventorySize())), humanize.Comma(int64(engine.Rules().Len())))

	tracker := newTracker(len(vulns))
	results := make([]triage.Result, len(vulns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	start := time.Now()
	for idx := range vulns {
		idx := idx
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[idx] = engine.Triage(vulns[idx])
			tracker.record(results[idx])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracker.complete()

	log.Infof("triaged %s vulnerabilities in %s", humanize.Comma(int64(len(vulns))), time.Since(start).Round(time.Millisecond))

	return &Analysis{
		Descriptor: Descriptor{
			ID:                uuid.New().String(),
			Timestamp:         start,
			Responsible:       opts.Responsible,
			Publication:       opts.Publication,
			ConfigFingerprint: fingerprint,
			InventorySize:     engine.InventorySize(),
			RuleCount:         engine.Rules().Len(),
		},
		Results: results,
	}, nil
}

// Fingerprint hashes the matcher settings and the rule set.
func Fingerprint(cfg matcher.Config, rules rule.Set) (string, error) {
	f, err := hashstructure.Hash(struct {
		Config matcher.Config
		Rules  []rule.Rule
	}{
		Config: cfg,
		Rules:  rules.All(),
	}, hashstructure.FormatV2, &hashstructure.HashOptions{
		ZeroNil: true,
	})
	if err != nil {
		return "", fmt.Errorf("could not build configuration fingerprint: %w", err)
	}
	return fmt.Sprintf("%016x", f), nil
}

// tracker publishes and updates the batch progress monitors.
type tracker struct {
	lock       sync.Mutex
	processed  *progress.Manual
	candidates *progress.Manual
	byStatus   map[status.Status]*progress.Manual
}

func newTracker(total int) *tracker {
	t := &tracker{
		processed:  progress.NewManual(int64(total)),
		candidates: &progress.Manual{},
		byStatus:   make(map[status.Status]*progress.Manual),
	}

	byStatus := make(map[status.Status]progress.Monitorable)
	for _, s := range append([]status.Status{status.Undecided}, status.Ordered...) {
		m := &progress.Manual{}
		t.byStatus[s] = m
		byStatus[s] = m
	}

	bus.Publish(partybus.Event{
		Type: event.TriageStarted,
		Value: monitor.Triage{
			VulnerabilitiesProcessed: progress.Progressable(t.processed),
			CandidatesDiscovered:     progress.Monitorable(t.candidates),
			ByStatus:                 byStatus,
		},
	})
	return t
}

func (t *tracker) record(r triage.Result) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.processed.Increment()
	t.candidates.Set(t.candidates.Current() + int64(len(r.Matches)))
	if m, ok := t.byStatus[r.Decision.Status]; ok {
		m.Increment()
	}
}

func (t *tracker) complete() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.processed.SetCompleted()
	t.candidates.SetCompleted()
	for _, m := range t.byStatus {
		m.SetCompleted()
	}
}
