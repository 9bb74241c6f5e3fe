package bootstrap

import (
	"vulkan-context/driver"
	"vulkan-context/queues"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

type fakeDriver struct {
	extensions    []string
	extensionsErr error
	createErr     error
	devices       []*fakeDevice
	devicesErr    error

	created []*fakeInstance
}

func (d *fakeDriver) InstanceExtensions() ([]string, error) {
	return d.extensions, d.extensionsErr
}

func (d *fakeDriver) CreateInstance(info driver.InstanceInfo) (driver.Instance, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	instance := &fakeInstance{driver: d, info: info}
	d.created = append(d.created, instance)
	return instance, nil
}

type fakeInstance struct {
	driver    *fakeDriver
	info      driver.InstanceInfo
	destroyed int
}

func (i *fakeInstance) PhysicalDevices() ([]driver.PhysicalDevice, error) {
	if i.driver.devicesErr != nil {
		return nil, i.driver.devicesErr
	}
	devices := make([]driver.PhysicalDevice, 0, len(i.driver.devices))
	for _, device := range i.driver.devices {
		devices = append(devices, device)
	}
	return devices, nil
}

func (i *fakeInstance) Destroy() {
	i.destroyed++
}

type fakeDevice struct {
	props       driver.Properties
	propsErr    error
	families    []queues.Family
	familiesErr error
}

func (d *fakeDevice) Properties() (driver.Properties, error) {
	return d.props, d.propsErr
}

func (d *fakeDevice) QueueFamilies() ([]queues.Family, error) {
	return d.families, d.familiesErr
}

type fakeLogicalDevice struct {
	destroyed int
	order     *[]string
}

func (d *fakeLogicalDevice) Destroy() {
	d.destroyed++
	if d.order != nil {
		*d.order = append(*d.order, "device")
	}
}

type orderedInstance struct {
	fakeInstance
	order *[]string
}

func (i *orderedInstance) Destroy() {
	i.fakeInstance.Destroy()
	*i.order = append(*i.order, "instance")
}

func device(name string, typ vk.PhysicalDeviceType, families ...queues.Family) *fakeDevice {
	return &fakeDevice{
		props: driver.Properties{
			Name:       name,
			Type:       typ,
			APIVersion: vk.MakeVersion(1, 4, 0),
		},
		families: families,
	}
}

func family(bits ...vk.QueueFlagBits) queues.Family {
	var flags vk.QueueFlags
	for _, bit := range bits {
		flags |= vk.QueueFlags(bit)
	}
	return queues.Family{Flags: flags, Count: 1}
}

var errDriver = errors.New("VK_ERROR_INITIALIZATION_FAILED")

func testConfig() Config {
	return Config{
		ApplicationName: "Test",
		EngineName:      "Test",
		APIVersion:      vk.MakeVersion(1, 4, 0),
		RequiredExtensions: []string{
			"VK_KHR_surface",
			"VK_KHR_win32_surface",
		},
	}
}

func workingDriver() *fakeDriver {
	return &fakeDriver{
		extensions: []string{
			"VK_KHR_surface",
			"VK_KHR_win32_surface",
			"VK_EXT_debug_utils",
		},
		devices: []*fakeDevice{
			device("Intel UHD", vk.PhysicalDeviceTypeIntegratedGpu,
				family(vk.QueueGraphicsBit, vk.QueueComputeBit)),
			device("GeForce", vk.PhysicalDeviceTypeDiscreteGpu,
				family(vk.QueueTransferBit),
				family(vk.QueueComputeBit),
				family(vk.QueueGraphicsBit, vk.QueueComputeBit)),
		},
	}
}
