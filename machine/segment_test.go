package machine

import "testing"

func TestPhysical(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(physical(0xbfc00000) == 0x1fc00000)
	assert(physical(0x9fc00000) == 0x1fc00000)
	assert(physical(0x00000000) == 0x00000000)
}
