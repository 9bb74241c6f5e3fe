// Package vkdriver implements driver.Driver with the system Vulkan loader.
//
// The loader is located through GLFW, so Load and everything that follows must
// run on the main OS thread.
package vkdriver

import (
	"vulkan-context/driver"
	"vulkan-context/queues"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

// Vulkan is a driver.Driver backed by the Vulkan loader.
type Vulkan struct{}

// Load initializes GLFW and points vulkan-go at the loader GLFW found. Close
// must be called once the driver is no longer needed.
func Load() (*Vulkan, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw.Init")
	}

	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, errors.WithHint(
			errors.New("no Vulkan loader found"),
			"install a Vulkan runtime and a driver (ICD) for your GPU",
		)
	}

	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())

	if err := vk.Init(); err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to init Vulkan Go")
	}

	return &Vulkan{}, nil
}

// Close releases GLFW.
func (v *Vulkan) Close() {
	glfw.Terminate()
}

// InstanceExtensions implements driver.Driver.
func (v *Vulkan) InstanceExtensions() ([]string, error) {
	var count uint32
	res := vk.EnumerateInstanceExtensionProperties("", &count, nil)
	if err := vk.Error(res); err != nil {
		return nil, errors.Wrap(err, "enumerating instance extension properties count")
	}

	list := make([]vk.ExtensionProperties, count)
	res = vk.EnumerateInstanceExtensionProperties("", &count, list)
	if err := vk.Error(res); err != nil {
		return nil, errors.Wrap(err, "enumerating instance extension properties")
	}

	names := make([]string, 0, count)
	for _, ext := range list[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// CreateInstance implements driver.Driver.
func (v *Vulkan) CreateInstance(info driver.InstanceInfo) (driver.Instance, error) {
	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   info.ApplicationName + "\x00",
		ApplicationVersion: info.ApplicationVersion,
		PEngineName:        info.EngineName + "\x00",
		EngineVersion:      info.EngineVersion,
		ApiVersion:         info.APIVersion,
	}

	extensions := make([]string, 0, len(info.Extensions))
	for _, name := range info.Extensions {
		extensions = append(extensions, name+"\x00")
	}

	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&createInfo, nil, &instance)); err != nil {
		return nil, errors.Wrap(err, "failed to create Vulkan instance")
	}

	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, errors.Wrap(err, "failed to load instance functions")
	}

	return &Instance{handle: instance}, nil
}

// Instance is a driver.Instance owning a vk.Instance.
type Instance struct {
	handle vk.Instance
}

// Handle returns the underlying instance handle for later bootstrap stages.
func (i *Instance) Handle() vk.Instance {
	return i.handle
}

// PhysicalDevices implements driver.Instance.
func (i *Instance) PhysicalDevices() ([]driver.PhysicalDevice, error) {
	var deviceCount uint32
	err := vk.Error(vk.EnumeratePhysicalDevices(i.handle, &deviceCount, nil))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get the number of physical devices")
	}
	if deviceCount == 0 {
		return nil, nil
	}

	pDevices := make([]vk.PhysicalDevice, deviceCount)
	err = vk.Error(vk.EnumeratePhysicalDevices(i.handle, &deviceCount, pDevices))
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate the physical devices")
	}

	devices := make([]driver.PhysicalDevice, 0, deviceCount)
	for _, device := range pDevices[:deviceCount] {
		devices = append(devices, &PhysicalDevice{handle: device})
	}
	return devices, nil
}

// Destroy implements driver.Instance.
func (i *Instance) Destroy() {
	if i.handle == nil {
		return
	}
	vk.DestroyInstance(i.handle, nil)
	i.handle = nil
}

// PhysicalDevice is a driver.PhysicalDevice referencing a vk.PhysicalDevice.
type PhysicalDevice struct {
	handle vk.PhysicalDevice
}

// Handle returns the underlying physical device handle.
func (d *PhysicalDevice) Handle() vk.PhysicalDevice {
	return d.handle
}

// Properties implements driver.PhysicalDevice.
func (d *PhysicalDevice) Properties() (driver.Properties, error) {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(d.handle, &props)
	props.Deref()

	return driver.Properties{
		Name:          vk.ToString(props.DeviceName[:]),
		Type:          props.DeviceType,
		APIVersion:    props.ApiVersion,
		DriverVersion: props.DriverVersion,
		VendorID:      props.VendorID,
		DeviceID:      props.DeviceID,
	}, nil
}

// QueueFamilies implements driver.PhysicalDevice.
func (d *PhysicalDevice) QueueFamilies() ([]queues.Family, error) {
	var queueFamilyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(d.handle, &queueFamilyCount, nil)

	queueFamilies := make([]vk.QueueFamilyProperties, queueFamilyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(d.handle, &queueFamilyCount, queueFamilies)

	families := make([]queues.Family, 0, queueFamilyCount)
	for _, family := range queueFamilies[:queueFamilyCount] {
		family.Deref()

		families = append(families, queues.Family{
			Flags: family.QueueFlags,
			Count: family.QueueCount,
		})
	}
	return families, nil
}
