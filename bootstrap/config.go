package bootstrap

import (
	"runtime"

	vk "github.com/vulkan-go/vulkan"
)

// Config is the fixed input of a bootstrap: who is asking for the instance and
// which instance extensions must be present.
type Config struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32

	// APIVersion is the Vulkan version the instance targets.
	APIVersion uint32

	// RequiredExtensions must all be advertised by the platform; the instance
	// is created with exactly this list.
	RequiredExtensions []string
}

const (
	applicationName = "Audio"
	engineName      = "Audio"
)

// DefaultConfig returns the configuration used by the command: API 1.4 and the
// surface extensions of the platform the binary was built for.
func DefaultConfig() Config {
	return Config{
		ApplicationName:    applicationName,
		ApplicationVersion: 0,
		EngineName:         engineName,
		EngineVersion:      0,
		APIVersion:         vk.MakeVersion(1, 4, 0),
		RequiredExtensions: SurfaceExtensions(runtime.GOOS),
	}
}

// SurfaceExtensions returns the generic surface extension followed by the
// window-system surface extension for goos.
func SurfaceExtensions(goos string) []string {
	var platform string
	switch goos {
	case "windows":
		platform = "VK_KHR_win32_surface"
	case "darwin", "ios":
		platform = "VK_EXT_metal_surface"
	case "android":
		platform = "VK_KHR_android_surface"
	default:
		platform = "VK_KHR_xcb_surface"
	}

	return []string{vk.KhrSurfaceExtensionName, platform}
}
