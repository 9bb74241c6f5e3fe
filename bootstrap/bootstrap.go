// Package bootstrap negotiates a Vulkan execution context: it validates the
// required instance extensions, creates the instance, selects a physical
// device and resolves the queue families used for graphics, presentation and
// compute.
//
// The flow is single-pass. Every phase either advances the Bootstrapper to the
// next State or aborts the whole bootstrap.
package bootstrap

import (
	"fmt"
	"io"
	"log"

	"vulkan-context/driver"
	"vulkan-context/queues"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
	vk "github.com/vulkan-go/vulkan"
)

// State is a step of the bootstrap.
type State int

const (
	Start State = iota
	ExtensionsValidated
	InstanceCreated
	DeviceSelected
	QueueFamiliesResolved
	Aborted
)

func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case ExtensionsValidated:
		return "ExtensionsValidated"
	case InstanceCreated:
		return "InstanceCreated"
	case DeviceSelected:
		return "DeviceSelected"
	case QueueFamiliesResolved:
		return "QueueFamiliesResolved"
	case Aborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithLogger sets the logger receiving progress notices. By default notices
// are discarded.
func WithLogger(logger *log.Logger) Option {
	return func(b *Bootstrapper) {
		b.logger = logger
	}
}

// Bootstrapper runs the bootstrap once against a driver.
type Bootstrapper struct {
	driver driver.Driver
	config Config
	logger *log.Logger

	state State
}

// New returns a Bootstrapper in the Start state.
func New(drv driver.Driver, cfg Config, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		driver: drv,
		config: cfg,
		logger: log.New(io.Discard, "", 0),
		state:  Start,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns the step the bootstrap has reached.
func (b *Bootstrapper) State() State {
	return b.state
}

// Run performs all phases and returns the populated context. On failure the
// Bootstrapper is Aborted, anything created so far has been released and the
// returned context is nil.
func (b *Bootstrapper) Run() (*ExecutionContext, error) {
	if b.state != Start {
		return nil, ErrAlreadyRun
	}

	ctx := &ExecutionContext{}
	if err := b.run(ctx); err != nil {
		b.state = Aborted
		ctx.Destroy()
		return nil, err
	}

	return ctx, nil
}

func (b *Bootstrapper) run(ctx *ExecutionContext) error {
	start := hrtime.Now()
	if err := b.validateExtensions(); err != nil {
		return errors.Wrap(err, "validateExtensions")
	}
	ctx.Timings.Extensions = hrtime.Since(start)
	b.advance(ExtensionsValidated)

	start = hrtime.Now()
	if err := b.createInstance(ctx); err != nil {
		return errors.Wrap(err, "createInstance")
	}
	ctx.Timings.Instance = hrtime.Since(start)
	b.advance(InstanceCreated)
	b.logger.Printf("Instance created (%s)", ctx.Timings.Instance)

	start = hrtime.Now()
	if err := b.pickPhysicalDevice(ctx); err != nil {
		return errors.Wrap(err, "pickPhysicalDevice")
	}
	ctx.Timings.Device = hrtime.Since(start)
	b.advance(DeviceSelected)
	b.logger.Printf(
		"Selected %s (%s, Vulkan %s)",
		ctx.Properties.Name,
		ctx.Properties.TypeName(),
		formatVersion(ctx.Properties.APIVersion),
	)

	start = hrtime.Now()
	if err := b.findQueueFamilies(ctx); err != nil {
		return errors.Wrap(err, "findQueueFamilies")
	}
	ctx.Timings.QueueFamilies = hrtime.Since(start)
	b.advance(QueueFamiliesResolved)
	b.logger.Printf("Selected queue families %s", ctx.QueueFamilies)

	b.logger.Printf("Bootstrap finished in %s", ctx.Timings.Total())
	return nil
}

func (b *Bootstrapper) advance(next State) {
	b.state = next
}

func (b *Bootstrapper) validateExtensions() error {
	available, err := b.driver.InstanceExtensions()
	if err != nil {
		return errors.Wrap(err, "querying instance extensions")
	}

	return ValidateExtensions(b.config.RequiredExtensions, available)
}

func (b *Bootstrapper) createInstance(ctx *ExecutionContext) error {
	extensions := make([]string, len(b.config.RequiredExtensions))
	copy(extensions, b.config.RequiredExtensions)

	instance, err := b.driver.CreateInstance(driver.InstanceInfo{
		ApplicationName:    b.config.ApplicationName,
		ApplicationVersion: b.config.ApplicationVersion,
		EngineName:         b.config.EngineName,
		EngineVersion:      b.config.EngineVersion,
		APIVersion:         b.config.APIVersion,
		Extensions:         extensions,
	})
	if err != nil {
		return err
	}

	ctx.Instance = instance
	return nil
}

func (b *Bootstrapper) pickPhysicalDevice(ctx *ExecutionContext) error {
	devices, err := ctx.Instance.PhysicalDevices()
	if err != nil {
		return errors.Wrap(err, "enumerating physical devices")
	}

	index, props, err := SelectDevice(devices, b.logger)
	if err != nil {
		return err
	}

	ctx.PhysicalDevice = devices[index]
	ctx.Properties = props
	return nil
}

func (b *Bootstrapper) findQueueFamilies(ctx *ExecutionContext) error {
	families, err := ctx.PhysicalDevice.QueueFamilies()
	if err != nil {
		return errors.Wrap(err, "getting queue family properties")
	}

	indices, scanned := queues.Find(families, queues.FamilyIndices.IsFullComplete)
	if !indices.IsFullComplete() {
		return errors.Wrapf(
			ErrIncompleteQueueSupport,
			"%s has %d queue families, found %s",
			ctx.Properties.Name, len(families), indices,
		)
	}
	b.logger.Printf("Scanned %d of %d queue families", scanned, len(families))

	ctx.QueueFamilies = indices
	return nil
}

// ValidateExtensions checks that every required extension name is advertised.
// Names must match byte for byte. The error for the first missing name is a
// *MissingExtensionError.
func ValidateExtensions(required, available []string) error {
	advertised := make(map[string]struct{}, len(available))
	for _, name := range available {
		advertised[name] = struct{}{}
	}

	for _, name := range required {
		if _, found := advertised[name]; !found {
			return errors.WithHintf(
				&MissingExtensionError{Name: name},
				"the platform advertises %d instance extensions, none of them %q",
				len(available), name,
			)
		}
	}

	return nil
}

// SelectDevice returns the index and properties of the first discrete GPU in
// devices. Devices of any other type are skipped, and so are devices whose
// properties cannot be read. Both an empty list and a list without a discrete
// GPU are reported as ErrNoPhysicalDevice.
func SelectDevice(devices []driver.PhysicalDevice, logger *log.Logger) (int, driver.Properties, error) {
	if len(devices) == 0 {
		return 0, driver.Properties{}, ErrNoPhysicalDevice
	}

	for i, device := range devices {
		props, err := device.Properties()
		if err != nil {
			logger.Printf("WARNING: could not get properties of physical device %d: %s", i, err)
			continue
		}

		if props.Type == vk.PhysicalDeviceTypeDiscreteGpu {
			return i, props, nil
		}
	}

	return 0, driver.Properties{}, errors.WithHint(
		errors.Wrapf(ErrNoPhysicalDevice, "none of the %d physical devices is a discrete GPU", len(devices)),
		"integrated, virtual and CPU devices are not used",
	)
}

// formatVersion renders a packed Vulkan version, ignoring the variant bits.
func formatVersion(version uint32) string {
	return fmt.Sprintf("%d.%d.%d", (version>>22)&0x7f, (version>>12)&0x3ff, version&0xfff)
}
