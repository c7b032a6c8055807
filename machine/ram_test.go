package machine

import "testing"

func TestRAMRoundTrip(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	ram := NewRAM()
	ram.Store32(0x100, 0xdeadbeef)
	assert(ram.Load32(0x100) == 0xdeadbeef)

	ram.Store16(0x200, 0xbeef)
	assert(ram.Load16(0x200) == 0xbeef)

	ram.Store8(0x300, 0xab)
	assert(ram.Load8(0x300) == 0xab)
}

func TestScratchpadRoundTrip(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	sp := NewScratchpad()
	sp.Store32(0, 0x12345678)
	assert(sp.Load32(0) == 0x12345678)
}
