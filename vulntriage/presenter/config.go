package presenter

import (
	"errors"
	"fmt"
	"os"
	"text/template"

	"github.com/mitchellh/go-homedir"

	"github.com/vulntriage/vulntriage/vulntriage/presenter/models"
	presenterTemplate "github.com/vulntriage/vulntriage/vulntriage/presenter/template"
)

// Config is the presenter domain's configuration data structure.
type Config struct {
	format           Option
	templateFilePath string
	sortBy           models.SortStrategy
	minWordLength    int
	colorize         bool
}

// ValidatedConfig returns a new, validated presenter.Config. If a valid Config cannot be created using the given input,
// an error is returned.
func ValidatedConfig(output, outputTemplateFile, sortBy string, minWordLength int) (Config, error) {
	format := ParseOption(output)

	if format == UnknownPresenter {
		return Config{}, fmt.Errorf("unsupported output format %q, supported formats are: %+v", output, Options)
	}

	strategy, ok := models.ParseSortStrategy(sortBy)
	if !ok {
		return Config{}, fmt.Errorf("unsupported sort strategy %q, supported strategies are: %+v", sortBy,
			models.SortStrategies())
	}

	if format == TemplatePresenter {
		if outputTemplateFile == "" {
			return Config{}, fmt.Errorf("must specify path to template file when using %q output format",
				TemplatePresenter)
		}

		expanded, err := homedir.Expand(outputTemplateFile)
		if err != nil {
			return Config{}, fmt.Errorf("unable to expand path %q: %w", outputTemplateFile, err)
		}

		if _, err := os.Stat(expanded); errors.Is(err, os.ErrNotExist) {
			// file does not exist
			return Config{}, fmt.Errorf("template file %q does not exist", outputTemplateFile)
		}

		contents, err := os.ReadFile(expanded)
		if err != nil {
			return Config{}, fmt.Errorf("unable to read template file: %w", err)
		}

		if _, err := template.New("").Funcs(presenterTemplate.FuncMap).Parse(string(contents)); err != nil {
			return Config{}, fmt.Errorf("unable to parse template: %w", err)
		}
	}

	if outputTemplateFile != "" && format != TemplatePresenter {
		return Config{}, fmt.Errorf("specified template file %q, but "+
			"%q output format must be selected in order to use a template file",
			outputTemplateFile, TemplatePresenter)
	}

	return Config{
		format:           format,
		templateFilePath: outputTemplateFile,
		sortBy:           strategy,
		minWordLength:    minWordLength,
	}, nil
}

// Format is the selected output format.
func (c Config) Format() Option {
	return c.format
}

// WithColor returns a copy of the config that enables or disables colored output.
func (c Config) WithColor(enabled bool) Config {
	c.colorize = enabled
	return c
}
