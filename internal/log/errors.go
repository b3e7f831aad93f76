package log

import "io"

// CloseAndLogError closes the given resource and only logs (at debug level) when closing fails.
func CloseAndLogError(closer io.Closer, location string) {
	if closer == nil {
		Debugf("no closer provided when attempting to close: %v", location)
		return
	}
	if err := closer.Close(); err != nil {
		Debugf("failed to close %q: %+v", location, err)
	}
}
