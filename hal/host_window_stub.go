//go:build !cgo

package hal

import "errors"

// RunWindow reports that the window backend is unavailable in this build.
func RunWindow(_ func(h HAL) func() error, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
