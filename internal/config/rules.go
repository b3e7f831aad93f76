package config

import (
	"github.com/spf13/viper"

	"github.com/vulntriage/vulntriage/vulntriage/rule"
)

// rules holds the raw override rule tables, one per category, each mapping a rule name to its semicolon-delimited
// fields. Rule names are case-folded by the configuration loader.
type rules struct {
	Deny        map[string]string `yaml:"deny" json:"deny" mapstructure:"deny"`                      // vendor;product;priority
	Allow       map[string]string `yaml:"allow" json:"allow" mapstructure:"allow"`                   // vendor;product;id;priority
	Linux       map[string]string `yaml:"linux" json:"linux" mapstructure:"linux"`                   // vendor;product;id;replacement name
	Conditional map[string]string `yaml:"conditional" json:"conditional" mapstructure:"conditional"` // vendor;product;priority
}

func (cfg rules) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("rules.deny", map[string]string{})
	v.SetDefault("rules.allow", map[string]string{})
	v.SetDefault("rules.linux", map[string]string{})
	v.SetDefault("rules.conditional", map[string]string{})
}

// Set parses every table into a rule set.
func (cfg rules) Set() rule.Set {
	return rule.FromSections(map[rule.Category]map[string]string{
		rule.DenyCategory:        cfg.Deny,
		rule.AllowCategory:       cfg.Allow,
		rule.LinuxCategory:       cfg.Linux,
		rule.ConditionalCategory: cfg.Conditional,
	})
}
