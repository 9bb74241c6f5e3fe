package queues

import (
	"testing"

	. "github.com/onsi/gomega"
	vk "github.com/vulkan-go/vulkan"
)

func family(bits ...vk.QueueFlagBits) Family {
	var flags vk.QueueFlags
	for _, bit := range bits {
		flags |= vk.QueueFlags(bit)
	}
	return Family{Flags: flags, Count: 1}
}

func TestFindSingleFamilyFullMatch(t *testing.T) {
	g := NewWithT(t)

	families := []Family{
		family(vk.QueueGraphicsBit, vk.QueueComputeBit),
		family(vk.QueueGraphicsBit, vk.QueueComputeBit, vk.QueueTransferBit),
	}

	indices, scanned := Find(families, FamilyIndices.IsFullComplete)
	g.Expect(indices.IsFullComplete()).To(BeTrue())
	g.Expect(indices.Graphics.Get()).To(Equal(uint32(0)))
	g.Expect(indices.Present.Get()).To(Equal(uint32(0)))
	g.Expect(indices.Compute.Get()).To(Equal(uint32(0)))
	g.Expect(scanned).To(Equal(1))
}

func TestFindSplitAcrossFamilies(t *testing.T) {
	g := NewWithT(t)

	families := []Family{
		family(vk.QueueComputeBit),
		family(vk.QueueGraphicsBit),
	}

	indices, scanned := Find(families, FamilyIndices.IsFullComplete)
	g.Expect(indices.IsFullComplete()).To(BeTrue())
	g.Expect(indices.Graphics.Get()).To(Equal(uint32(1)))
	g.Expect(indices.Present.Get()).To(Equal(uint32(1)))
	g.Expect(indices.Compute.Get()).To(Equal(uint32(0)))
	g.Expect(scanned).To(Equal(2))
}

func TestFindNoCompute(t *testing.T) {
	g := NewWithT(t)

	indices, scanned := Find([]Family{family(vk.QueueGraphicsBit)}, FamilyIndices.IsFullComplete)
	g.Expect(indices.IsFullComplete()).To(BeFalse())
	g.Expect(indices.IsGeneralComplete()).To(BeTrue())
	g.Expect(indices.IsComputeComplete()).To(BeFalse())
	g.Expect(scanned).To(Equal(1))
}

func TestFindLaterGraphicsFamilyReplacesEarlier(t *testing.T) {
	g := NewWithT(t)

	families := []Family{
		family(vk.QueueGraphicsBit),
		family(vk.QueueGraphicsBit, vk.QueueTransferBit),
		family(vk.QueueComputeBit),
		family(vk.QueueGraphicsBit, vk.QueueComputeBit),
	}

	indices, scanned := Find(families, FamilyIndices.IsFullComplete)
	g.Expect(indices.String()).To(Equal("[G: 1, P: 1, C: 2]"))
	g.Expect(scanned).To(Equal(3))
}

func TestFindCustomStopPredicate(t *testing.T) {
	g := NewWithT(t)

	families := []Family{
		family(vk.QueueGraphicsBit),
		family(vk.QueueComputeBit),
	}

	indices, scanned := Find(families, FamilyIndices.IsGeneralComplete)
	g.Expect(scanned).To(Equal(1))
	g.Expect(indices.IsComputeComplete()).To(BeFalse())
}

func TestFindEmpty(t *testing.T) {
	g := NewWithT(t)

	indices, scanned := Find(nil, FamilyIndices.IsFullComplete)
	g.Expect(indices).To(Equal(FamilyIndices{}))
	g.Expect(scanned).To(Equal(0))
	g.Expect(indices.String()).To(Equal("[G: none, P: none, C: none]"))
}

func TestSupports(t *testing.T) {
	g := NewWithT(t)

	f := family(vk.QueueComputeBit, vk.QueueTransferBit)
	g.Expect(f.Supports(vk.QueueComputeBit)).To(BeTrue())
	g.Expect(f.Supports(vk.QueueTransferBit)).To(BeTrue())
	g.Expect(f.Supports(vk.QueueGraphicsBit)).To(BeFalse())
}
