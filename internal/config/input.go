package config

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/vulntriage/vulntriage/vulntriage/inventory"
)

// input locates the tables a batch is read from.
type input struct {
	Vulnerabilities  string `yaml:"vulnerabilities" json:"vulnerabilities" mapstructure:"vulnerabilities"`       // the newly disclosed vulnerabilities to triage
	InventoryLocal   string `yaml:"inventory-local" json:"inventory-local" mapstructure:"inventory-local"`       // software catalogued by the local site
	InventoryGeneral string `yaml:"inventory-general" json:"inventory-general" mapstructure:"inventory-general"` // software catalogued organization-wide
	Journal          string `yaml:"journal" json:"journal" mapstructure:"journal"`                               // previously triaged vulnerabilities
}

func (cfg input) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("input.vulnerabilities", "")
	v.SetDefault("input.inventory-local", "")
	v.SetDefault("input.inventory-general", "")
	v.SetDefault("input.journal", "")
}

func (cfg *input) parseConfigValues() error {
	for _, p := range []*string{&cfg.Vulnerabilities, &cfg.InventoryLocal, &cfg.InventoryGeneral, &cfg.Journal} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("unable to expand input path %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// InventoryLocations lists the inventory tables with the source tag of each.
func (cfg input) InventoryLocations() []inventory.Location {
	return []inventory.Location{
		{Path: cfg.InventoryLocal, Source: inventory.LocalSource},
		{Path: cfg.InventoryGeneral, Source: inventory.GeneralSource},
	}
}
