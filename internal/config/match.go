package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/vulntriage/vulntriage/vulntriage/matcher"
)

// matchConfig contains the scoring thresholds of the inventory matcher.
type matchConfig struct {
	matcher.Config `yaml:",inline" mapstructure:",squash"`
}

func (cfg matchConfig) loadDefaultValues(v *viper.Viper) {
	d := matcher.DefaultConfig()
	v.SetDefault("match.min-word-length", d.MinWordLength)
	v.SetDefault("match.prefix-threshold-short", d.PrefixThresholdShort)
	v.SetDefault("match.prefix-threshold-medium", d.PrefixThresholdMedium)
	v.SetDefault("match.prefix-threshold-long", d.PrefixThresholdLong)
	v.SetDefault("match.fuzz-ratio-threshold", d.FuzzRatioThreshold)
	v.SetDefault("match.min-matched-words", d.MinMatchedWords)
	v.SetDefault("match.index1-results-limit", d.Index1ResultsLimit)
}

func (cfg *matchConfig) parseConfigValues() error {
	if err := cfg.Config.Validate(); err != nil {
		return fmt.Errorf("bad match configuration: %w", err)
	}
	return nil
}
