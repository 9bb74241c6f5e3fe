// Package queues finds the Vulkan queue families a program needs on a physical
// device.
package queues

import (
	"fmt"

	"vulkan-context/optional"

	vk "github.com/vulkan-go/vulkan"
)

// FamilyIndices holds the indexes of Vulkan queue families needed by the programs.
type FamilyIndices struct {

	// Graphics is the index of the graphics queue family.
	Graphics optional.Optional[uint32]

	// Present is the index of the queue family used for presenting to the drawing
	// surface.
	Present optional.Optional[uint32]

	// Compute is the index of the queue family used for compute dispatches.
	Compute optional.Optional[uint32]
}

// IsGraphicsComplete returns true if the graphics family has been set.
func (f FamilyIndices) IsGraphicsComplete() bool {
	return f.Graphics.HasValue()
}

// IsPresentComplete returns true if the present family has been set.
func (f FamilyIndices) IsPresentComplete() bool {
	return f.Present.HasValue()
}

// IsComputeComplete returns true if the compute family has been set.
func (f FamilyIndices) IsComputeComplete() bool {
	return f.Compute.HasValue()
}

// IsGeneralComplete returns true if both the graphics and present families
// have been set.
func (f FamilyIndices) IsGeneralComplete() bool {
	return f.IsGraphicsComplete() && f.IsPresentComplete()
}

// IsFullComplete returns true if all families have been set.
func (f FamilyIndices) IsFullComplete() bool {
	return f.IsGeneralComplete() && f.IsComputeComplete()
}

func (f FamilyIndices) String() string {
	return fmt.Sprintf("[G: %s, P: %s, C: %s]", f.Graphics, f.Present, f.Compute)
}

// Family describes one queue family of a physical device.
type Family struct {
	Flags vk.QueueFlags
	Count uint32
}

// Supports reports whether the family's queues have the capability bit set.
func (f Family) Supports(bit vk.QueueFlagBits) bool {
	return f.Flags&vk.QueueFlags(bit) != 0
}

// Find scans families in index order and records, for each role, the index of
// the latest family supporting it. A graphics family is also taken as the present family: no surface
// support query is made, every graphics family is assumed to be able to
// present.
//
// done is called after each family has been processed and the scan stops as
// soon as it returns true, so families after that point are never considered.
// Find returns the indices and the number of families examined.
func Find(families []Family, done func(FamilyIndices) bool) (FamilyIndices, int) {
	indices := FamilyIndices{}

	for i, family := range families {
		if family.Supports(vk.QueueGraphicsBit) {
			indices.Graphics.Set(uint32(i))
			indices.Present.Set(uint32(i))
		}

		if family.Supports(vk.QueueComputeBit) {
			indices.Compute.Set(uint32(i))
		}

		if done(indices) {
			return indices, i + 1
		}
	}

	return indices, len(families)
}
