package inventory

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/vulntriage/vulntriage/internal/file"
	"github.com/vulntriage/vulntriage/internal/log"
)

const columns = 3

var ErrNoInventory = errors.New("no inventory could be loaded")

// Location is an inventory table on disk together with the source tag its entries receive.
type Location struct {
	Path   string
	Source Source
}

// Load reads every location that exists and concatenates the entries in location order. Missing locations are
// skipped; it is an error when no location could be read. Tables have the columns id, name, vendor and a header row.
func Load(fs afero.Fs, locations ...Location) (Inventory, error) {
	var (
		inv    Inventory
		errs   error
		loaded int
	)

	for _, location := range locations {
		if location.Path == "" {
			continue
		}
		if !file.Exists(fs, location.Path) {
			log.Infof("%s inventory not found: %q", location.Source, location.Path)
			continue
		}

		entries, err := loadTable(fs, location)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		log.Debugf("loaded %d %s inventory entries from %q", len(entries), location.Source, location.Path)
		inv = append(inv, entries...)
		loaded++
	}

	if loaded == 0 {
		if errs != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoInventory, errs)
		}
		return nil, ErrNoInventory
	}
	if errs != nil {
		log.Warnf("some inventory could not be loaded: %+v", errs)
	}
	return inv, nil
}

func loadTable(fs afero.Fs, location Location) ([]Entry, error) {
	rows, err := file.ReadTable(fs, location.Path, columns)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s inventory: %w", location.Source, err)
	}

	var entries []Entry
	for _, row := range rows {
		e := Entry{
			ID:     row.Cell(0),
			Name:   row.Cell(1),
			Vendor: row.Cell(2),
			Source: location.Source,
		}
		if e.Name == "" && e.Vendor == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
