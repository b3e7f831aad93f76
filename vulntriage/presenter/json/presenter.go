package json

import (
	"encoding/json"
	"io"

	"github.com/vulntriage/vulntriage/vulntriage"
	"github.com/vulntriage/vulntriage/vulntriage/presenter/models"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	analysis  vulntriage.Analysis
	sortBy    models.SortStrategy
	appConfig interface{}
}

// NewPresenter creates a new JSON presenter
func NewPresenter(analysis vulntriage.Analysis, sortBy models.SortStrategy, appConfig interface{}) *Presenter {
	return &Presenter{
		analysis:  analysis,
		sortBy:    sortBy,
		appConfig: appConfig,
	}
}

// Present creates a JSON-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	doc := models.NewDocument(pres.analysis, pres.sortBy, pres.appConfig)

	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}
