package machine

import (
	"bytes"
	"testing"
)

func newTestCPU() *CPU {
	ram := NewRAM()
	scratchpad := NewScratchpad()
	dma := NewDMA()
	gpu := NewGPU(NewHandOff())
	bus := NewBus(ram, nil, scratchpad, dma, gpu)
	return NewCPU(bus)
}

// newTestCPUWithBIOS builds a BIOS image of the right size with its
// first word set to firstWord, little-endian.
func newTestCPUWithBIOS(t *testing.T, firstWord uint32) *CPU {
	image := make([]byte, BiosSize)
	image[0] = byte(firstWord)
	image[1] = byte(firstWord >> 8)
	image[2] = byte(firstWord >> 16)
	image[3] = byte(firstWord >> 24)

	bios, err := LoadBIOS(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("LoadBIOS: %v", err)
	}

	ram := NewRAM()
	scratchpad := NewScratchpad()
	dma := NewDMA()
	gpu := NewGPU(NewHandOff())
	bus := NewBus(ram, bios, scratchpad, dma, gpu)
	return NewCPU(bus)
}

// TestBootFetch exercises the first instruction a real BIOS executes:
// lui $t0, 0x0013.
func TestBootFetch(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	cpu := newTestCPUWithBIOS(t, 0x3c080013)

	cpu.Step()

	assert(cpu.PC == 0xbfc00004)
	assert(cpu.NextPC == 0xbfc00008)
	assert(cpu.Reg(8) == 0x00130000)
}

func TestAddRaisesOverflowWithoutWriting(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	cpu := newTestCPU()
	cpu.outRegs[8] = 0x7fffffff
	cpu.outRegs[9] = 1
	cpu.outRegs[10] = 0xdeadbeef // sentinel: must survive an overflow trap untouched
	cpu.Regs = cpu.outRegs

	// add $10, $8, $9
	instr := Instruction(0x01095020)
	cpu.decodeAndExecute(instr)

	assert(cpu.outRegs[10] == 0xdeadbeef) // never written: trapping add discards its result
	assert(cpu.Cop0.Cause>>2&0x1f == uint32(ExcOverflow))
}

func TestAdduWraps(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	cpu := newTestCPU()
	cpu.outRegs[8] = 0x7fffffff
	cpu.outRegs[9] = 1
	cpu.Regs = cpu.outRegs

	// addu $10, $8, $9
	instr := Instruction(0x01095021)
	cpu.decodeAndExecute(instr)

	assert(cpu.outRegs[10] == 0x80000000)
}

func TestDivSignedByZero(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	cpu := newTestCPU()

	cpu.outRegs[8] = 5
	cpu.outRegs[9] = 0
	cpu.Regs = cpu.outRegs
	cpu.opDIV(Instruction(0x0109001a)) // div $8, $9
	assert(cpu.LO == 0xffffffff)
	assert(cpu.HI == 5)

	negFive := int32(-5)
	cpu.outRegs[8] = uint32(negFive)
	cpu.Regs = cpu.outRegs
	cpu.opDIV(Instruction(0x0109001a))
	assert(cpu.LO == 1)
	assert(int32(cpu.HI) == -5)
}

func TestDivOverflowCase(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	cpu := newTestCPU()
	negOne := int32(-1)
	cpu.outRegs[8] = 0x80000000
	cpu.outRegs[9] = uint32(negOne)
	cpu.Regs = cpu.outRegs

	cpu.opDIV(Instruction(0x0109001a))
	assert(cpu.LO == 0x80000000)
	assert(cpu.HI == 0)
}

func TestDivuByZero(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	cpu := newTestCPU()
	cpu.outRegs[8] = 42
	cpu.outRegs[9] = 0
	cpu.Regs = cpu.outRegs

	cpu.opDIVU(Instruction(0x0109001b))
	assert(cpu.LO == 0xffffffff)
	assert(cpu.HI == 42)
}

// TestLoadDelay checks that the instruction right after a load still
// observes the pre-load value of the destination register.
func TestLoadDelay(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	cpu := newTestCPU()
	cpu.Bus.Store32(0x1000, 0x12345678)

	cpu.outRegs[1] = 0x1000
	cpu.outRegs[2] = 0xaaaaaaaa
	cpu.Regs = cpu.outRegs

	// lw $2, 0($1)
	cpu.decodeAndExecute(Instruction(0x8c220000))
	// the load hasn't committed yet: reading $2 right away still sees the old value
	assert(cpu.Reg(2) == 0xaaaaaaaa)

	// apply pending load, as Step would between instructions
	if cpu.load.valid {
		cpu.outRegs[cpu.load.reg] = cpu.load.value
		cpu.load.valid = false
	}
	cpu.Regs = cpu.outRegs
	assert(cpu.Reg(2) == 0x12345678)
}

// TestLwlLwrRoundTrip checks that storing a word through swl/swr at a
// misaligned base and reading it back through lwl/lwr reconstructs the
// original value.
func TestLwlLwrRoundTrip(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	cpu := newTestCPU()
	addr := uint32(0x1001) // misaligned by 1

	cpu.outRegs[1] = addr
	cpu.outRegs[2] = 0xdeadbeef
	cpu.Regs = cpu.outRegs

	// the classic unaligned-store idiom: swr at the base, swl 3 bytes in.
	cpu.opSWR(encodeIType(0x2e, 1, 2, 0))
	cpu.opSWL(encodeIType(0x2a, 1, 2, 3))

	cpu.outRegs[3] = 0
	cpu.Regs = cpu.outRegs

	cpu.opLWR(encodeIType(0x26, 1, 3, 0))
	applyPending(cpu)
	cpu.opLWL(encodeIType(0x22, 1, 3, 3))
	applyPending(cpu)

	assert(cpu.Reg(3) == 0xdeadbeef)
}

// TestIsolateCacheStoreWritesICacheLine checks that a word store made
// while SR's isolate-cache bit is set lands in the instruction cache
// line array instead of RAM, and reads back through the same path.
func TestIsolateCacheStoreWritesICacheLine(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	cpu := newTestCPU()
	cpu.Cop0.SR = 0x10000 // isolate cache

	cpu.storeWord(0x10, 0x12345678)
	assert(cpu.loadWord(0x10) == 0x12345678)
	line1 := cpu.Bus.ICacheLine(1)
	assert(line1.Get(0) == Instruction(0x12345678))
	assert(cpu.Bus.ram.Load32(0x10) == 0xcdcdcdcd) // never reached RAM: still NewRAM's fill pattern

	cpu.Bus.icacheCtl = CacheControl(4) // tag-test mode
	cpu.storeWord(0x20, 0xffffffff)
	line2 := cpu.Bus.ICacheLine(2)
	assert(line2.Get(0) == Instruction(0x0000000d)) // tag-test write doesn't touch data, still BREAK-filled
}

func applyPending(cpu *CPU) {
	if cpu.load.valid {
		cpu.outRegs[cpu.load.reg] = cpu.load.value
		cpu.load.valid = false
	}
	cpu.Regs = cpu.outRegs
}

// encodeIType builds an I-type instruction word: op(6) rs(5) rt(5) imm(16).
func encodeIType(op, rs, rt uint32, imm int32) Instruction {
	word := (op & 0x3f) << 26
	word |= (rs & 0x1f) << 21
	word |= (rt & 0x1f) << 16
	word |= uint32(imm) & 0xffff
	return Instruction(word)
}
