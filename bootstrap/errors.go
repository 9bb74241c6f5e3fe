package bootstrap

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMissingExtension is matched by errors reporting a required instance
	// extension the platform does not advertise.
	ErrMissingExtension = errors.New("missing required extension")

	// ErrNoPhysicalDevice is returned when no usable physical device exists.
	ErrNoPhysicalDevice = errors.New("no physical device available")

	// ErrIncompleteQueueSupport is returned when the selected device has no
	// combination of queue families covering graphics, present and compute.
	ErrIncompleteQueueSupport = errors.New("physical device does not support Graphics, Present and Compute queue")

	// ErrAlreadyRun is returned by Run on a Bootstrapper that has already run.
	ErrAlreadyRun = errors.New("bootstrap already run")
)

// MissingExtensionError names the first required extension that could not be
// validated.
type MissingExtensionError struct {
	Name string
}

func (e *MissingExtensionError) Error() string {
	return fmt.Sprintf("could not validate extension %s", e.Name)
}

// Is makes MissingExtensionError match ErrMissingExtension.
func (e *MissingExtensionError) Is(target error) bool {
	return target == ErrMissingExtension
}
