package machine

import "testing"

func TestLookupRegion(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	region, offset, ok := lookupRegion(0x1f801810)
	assert(ok)
	assert(region == RegionGPU)
	assert(offset == 0)

	region, offset, ok = lookupRegion(0x1f801814)
	assert(ok)
	assert(region == RegionGPU)
	assert(offset == 4)

	_, _, ok = lookupRegion(0xdeadbeef)
	assert(!ok)

	region, offset, ok = lookupRegion(0x00100000)
	assert(ok)
	assert(region == RegionRAM)
	assert(offset == 0x00100000)
}
