package config

import (
	"github.com/spf13/viper"

	"github.com/vulntriage/vulntriage/vulntriage/journal"
)

// report contains the details recorded alongside a batch.
type report struct {
	Responsible     string `yaml:"responsible" json:"responsible" mapstructure:"responsible"`                   // person triaging the batch
	Publication     string `yaml:"publication" json:"publication" mapstructure:"publication"`                   // where the vulnerabilities were published
	JournalBaseName string `yaml:"journal-base-name" json:"journal-base-name" mapstructure:"journal-base-name"` // prefix of dated journal names
}

func (cfg report) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("report.responsible", "")
	v.SetDefault("report.publication", "")
	v.SetDefault("report.journal-base-name", journal.DefaultBaseName)
}
