package presenter

import (
	"io"

	"github.com/vulntriage/vulntriage/vulntriage"
	"github.com/vulntriage/vulntriage/vulntriage/presenter/json"
	"github.com/vulntriage/vulntriage/vulntriage/presenter/table"
	"github.com/vulntriage/vulntriage/vulntriage/presenter/template"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(presenterConfig Config, analysis vulntriage.Analysis, appConfig interface{}) Presenter {
	switch presenterConfig.format {
	case JSONPresenter:
		return json.NewPresenter(analysis, presenterConfig.sortBy, appConfig)
	case TablePresenter:
		return table.NewPresenter(analysis, presenterConfig.sortBy, presenterConfig.minWordLength, presenterConfig.colorize)
	case TemplatePresenter:
		return template.NewPresenter(analysis, presenterConfig.sortBy, appConfig, presenterConfig.templateFilePath)
	default:
		return nil
	}
}
