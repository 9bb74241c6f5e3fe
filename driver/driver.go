// Package driver describes the parts of a graphics driver that are needed to
// negotiate an execution context. The vkdriver package implements it on top of
// the Vulkan loader; tests use scripted fakes.
package driver

import (
	"vulkan-context/queues"

	vk "github.com/vulkan-go/vulkan"
)

// Driver is the entry point into the graphics driver.
type Driver interface {
	// InstanceExtensions lists the instance extensions the platform advertises.
	InstanceExtensions() ([]string, error)

	// CreateInstance creates an instance with exactly the extensions listed in
	// info. The caller owns the result and must Destroy it.
	CreateInstance(info InstanceInfo) (Instance, error)
}

// Instance is an initialized connection to the driver.
type Instance interface {
	// PhysicalDevices returns the accelerators visible to the instance in the
	// order the driver enumerates them.
	PhysicalDevices() ([]PhysicalDevice, error)

	// Destroy releases the instance. Physical devices obtained from it must not
	// be used afterwards.
	Destroy()
}

// PhysicalDevice is a reference to an accelerator reported by the driver. The
// driver owns it, so there is nothing to destroy.
type PhysicalDevice interface {
	Properties() (Properties, error)
	QueueFamilies() ([]queues.Family, error)
}

// Device is a logical device created on a physical device.
type Device interface {
	Destroy()
}

// InstanceInfo carries the application identity and the extensions to enable
// when creating an instance.
type InstanceInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32
	Extensions         []string
}

// Properties is the subset of physical device properties used to pick a device.
type Properties struct {
	Name          string
	Type          vk.PhysicalDeviceType
	APIVersion    uint32
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
}

// TypeName returns a readable name for the device type.
func (p Properties) TypeName() string {
	switch p.Type {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return "integrated GPU"
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return "discrete GPU"
	case vk.PhysicalDeviceTypeVirtualGpu:
		return "virtual GPU"
	case vk.PhysicalDeviceTypeCpu:
		return "CPU"
	default:
		return "other"
	}
}
