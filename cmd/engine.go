package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/vulntriage/vulntriage/internal/log"
	"github.com/vulntriage/vulntriage/vulntriage/inventory"
	"github.com/vulntriage/vulntriage/vulntriage/journal"
	"github.com/vulntriage/vulntriage/vulntriage/triage"
)

// loadEngine builds the triage engine from the configured inventory tables, rules and (optionally) the journal.
func loadEngine(fs afero.Fs, withJournal bool) (*triage.Engine, error) {
	inv, err := inventory.Load(fs, appConfig.Input.InventoryLocations()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	for source, count := range inv.BySource() {
		log.Infof("loaded %s %s inventory entries", humanize.Comma(int64(count)), source)
	}

	var j journal.Provider
	if withJournal && appConfig.Input.Journal != "" {
		loaded, err := journal.Load(fs, appConfig.Input.Journal)
		if err != nil {
			return nil, fmt.Errorf("failed to load journal: %w", err)
		}
		log.Infof("loaded %s journal entries", humanize.Comma(int64(loaded.Len())))
		j = loaded
	}

	rules := appConfig.Rules.Set()
	log.Infof("loaded %d rules (%d priority)", rules.Len(), rules.PriorityCount())

	return triage.NewEngine(appConfig.Match.Config, rules, inv, j), nil
}
