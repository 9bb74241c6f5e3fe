package bootstrap

import (
	"time"

	"vulkan-context/driver"
	"vulkan-context/queues"
)

// ExecutionContext is the result of a successful bootstrap. QueueFamilies were
// discovered on PhysicalDevice and on no other device.
type ExecutionContext struct {
	// Instance is owned by the context and released by Destroy.
	Instance driver.Instance

	// PhysicalDevice is owned by the driver.
	PhysicalDevice driver.PhysicalDevice

	// Properties of PhysicalDevice as read during selection.
	Properties driver.Properties

	QueueFamilies queues.FamilyIndices

	// Device is the logical device. Bootstrap never creates one; later stages
	// store theirs here so that Destroy releases it before the instance.
	Device driver.Device

	// Timings records how long each phase took.
	Timings Timings
}

// Timings holds the duration of each bootstrap phase.
type Timings struct {
	Extensions    time.Duration
	Instance      time.Duration
	Device        time.Duration
	QueueFamilies time.Duration
}

// Total returns the time spent across all phases.
func (t Timings) Total() time.Duration {
	return t.Extensions + t.Instance + t.Device + t.QueueFamilies
}

// Destroy releases the logical device and then the instance. It may be called
// on a partially filled context and more than once.
func (c *ExecutionContext) Destroy() {
	if c.Device != nil {
		c.Device.Destroy()
		c.Device = nil
	}

	if c.Instance != nil {
		c.Instance.Destroy()
		c.Instance = nil
	}

	c.PhysicalDevice = nil
}
