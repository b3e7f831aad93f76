package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/vulntriage/vulntriage/internal/log"
)

// reportWriter returns the destination of the report along with a function that finalizes it.
func reportWriter() (io.Writer, func() error, error) {
	nop := func() error { return nil }

	path := strings.TrimSpace(appConfig.File)
	if path == "" {
		return os.Stdout, nop, nil
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, nop, fmt.Errorf("unable to expand report path %q: %w", appConfig.File, err)
	}

	reportFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nop, fmt.Errorf("unable to create report file: %w", err)
	}
	return reportFile, func() error {
		log.Infof("report written to %q", path)
		return reportFile.Close()
	}, nil
}
