package matcher

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

const perfectScore = 100

// Config holds the settings of the word-set scorer and inventory matcher. It is passed by value into every call and
// never modified by the matcher.
type Config struct {
	MinWordLength        int `yaml:"min-word-length" json:"minWordLength" mapstructure:"min-word-length"`
	PrefixThresholdShort int `yaml:"prefix-threshold-short" json:"prefixThresholdShort" mapstructure:"prefix-threshold-short"`
	// PrefixThresholdMedium and PrefixThresholdLong only short-circuit a prefix match when set to 100.
	PrefixThresholdMedium int `yaml:"prefix-threshold-medium" json:"prefixThresholdMedium" mapstructure:"prefix-threshold-medium"`
	PrefixThresholdLong   int `yaml:"prefix-threshold-long" json:"prefixThresholdLong" mapstructure:"prefix-threshold-long"`
	FuzzRatioThreshold    int `yaml:"fuzz-ratio-threshold" json:"fuzzRatioThreshold" mapstructure:"fuzz-ratio-threshold"`
	MinMatchedWords       int `yaml:"min-matched-words" json:"minMatchedWords" mapstructure:"min-matched-words"`
	Index1ResultsLimit    int `yaml:"index1-results-limit" json:"index1ResultsLimit" mapstructure:"index1-results-limit"`
}

func DefaultConfig() Config {
	return Config{
		MinWordLength:         3,
		PrefixThresholdShort:  100,
		PrefixThresholdMedium: 90,
		PrefixThresholdLong:   80,
		FuzzRatioThreshold:    60,
		MinMatchedWords:       2,
		Index1ResultsLimit:    5,
	}
}

// prefixThreshold selects the prefix threshold bucket by the rune length of the vulnerability word.
func (c Config) prefixThreshold(length int) int {
	switch {
	case length < 5:
		return c.PrefixThresholdShort
	case length < 10:
		return c.PrefixThresholdMedium
	default:
		return c.PrefixThresholdLong
	}
}

// Validate reports every setting that is out of range.
func (c Config) Validate() error {
	var errs error

	percentages := []struct {
		name  string
		value int
	}{
		{"prefix-threshold-short", c.PrefixThresholdShort},
		{"prefix-threshold-medium", c.PrefixThresholdMedium},
		{"prefix-threshold-long", c.PrefixThresholdLong},
		{"fuzz-ratio-threshold", c.FuzzRatioThreshold},
	}
	for _, p := range percentages {
		if p.value < 0 || p.value > perfectScore {
			errs = multierror.Append(errs, fmt.Errorf("%s must be within [0, 100], got %d", p.name, p.value))
		}
	}

	positives := []struct {
		name  string
		value int
	}{
		{"min-word-length", c.MinWordLength},
		{"min-matched-words", c.MinMatchedWords},
		{"index1-results-limit", c.Index1ResultsLimit},
	}
	for _, p := range positives {
		if p.value <= 0 {
			errs = multierror.Append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.value))
		}
	}

	return errs
}
