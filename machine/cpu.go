package machine

// pendingLoad is the single in-flight load-delay slot: a load's result
// is staged here and only becomes visible to the register file on the
// following Step.
type pendingLoad struct {
	valid bool
	reg   uint32
	value uint32
}

// CPU is the R3000A fetch/decode/execute interpreter. It holds a
// non-owning reference to the Bus it executes against; all other
// machine state belongs to Bus.
type CPU struct {
	PC        uint32
	NextPC    uint32
	CurrentPC uint32

	Regs    [32]uint32
	outRegs [32]uint32

	HI, LO uint32

	Cop0 Cop0

	load pendingLoad

	BranchTaken bool
	InDelaySlot bool

	Bus *Bus

	Debugger *Debugger
}

// NewCPU returns a CPU reset to the BIOS entry point, bound to bus.
func NewCPU(bus *Bus) *CPU {
	cpu := &CPU{
		PC:     0xbfc00000,
		NextPC: 0xbfc00004,
		Bus:    bus,
	}
	for i := range cpu.Regs {
		cpu.Regs[i] = uint32(i) // garbage, real hardware leaves these undefined
	}
	cpu.Regs[0] = 0
	cpu.outRegs = cpu.Regs
	return cpu
}

func (cpu *CPU) Reg(i uint32) uint32 {
	return cpu.Regs[i]
}

// SetReg stages a register write into the commit-pending shadow array.
// Index 0 is allowed here rather than special-cased: the commit step
// at the end of Step always re-zeroes outRegs[0] regardless.
func (cpu *CPU) SetReg(i, v uint32) {
	cpu.outRegs[i] = v
}

// Step fetches, decodes and executes exactly one instruction, applying
// the load-delay and branch-delay bookkeeping described in
// SPEC_FULL.md §4.5.
func (cpu *CPU) Step() {
	cpu.CurrentPC = cpu.PC

	if cpu.CurrentPC&3 != 0 {
		cpu.raiseException(ExcLoadAddr)
		cpu.InDelaySlot = cpu.BranchTaken
		cpu.BranchTaken = false
		return
	}

	if cpu.Debugger != nil {
		cpu.Debugger.checkBreakpoint(cpu.CurrentPC)
	}

	instr := Instruction(cpu.Bus.Load32(cpu.CurrentPC))

	cpu.PC = cpu.NextPC
	cpu.NextPC += 4

	if cpu.load.valid {
		cpu.outRegs[cpu.load.reg] = cpu.load.value
		cpu.load.valid = false
	}

	cpu.InDelaySlot = cpu.BranchTaken
	cpu.BranchTaken = false

	cpu.decodeAndExecute(instr)

	cpu.outRegs[0] = 0
	cpu.Regs = cpu.outRegs
}

// raiseException drives Cop0 exception entry and redirects the fetch
// pipeline. It is the only way PC/NextPC change outside of normal
// sequencing and branch/jump execution.
func (cpu *CPU) raiseException(exc Exception) {
	handler := cpu.Cop0.enterException(exc, cpu.CurrentPC, cpu.InDelaySlot)
	cpu.PC = handler
	cpu.NextPC = handler + 4
}

// setPendingLoad schedules reg to receive v on the *next* Step, honoring
// the one-slot delay. Overwriting an in-flight pending load with a new
// one before it commits is intentional: the newer load wins.
func (cpu *CPU) setPendingLoad(reg, v uint32) {
	cpu.load = pendingLoad{valid: true, reg: reg, value: v}
}

// valueForLoadMerge returns the value lwl/lwr/etc. should merge against:
// a load already in flight for the same register bypasses the delay
// slot, since that's the value the register is about to take on. Inside
// Step the previous instruction's load has already been moved into
// outRegs, so outRegs is read rather than the committed Regs.
func (cpu *CPU) valueForLoadMerge(reg uint32) uint32 {
	if cpu.load.valid && cpu.load.reg == reg {
		return cpu.load.value
	}
	return cpu.outRegs[reg]
}

// --- memory access, gated by the isolate-cache bit ---------------------
//
// Byte and half-word accesses under isolate-cache are simply dropped:
// the instruction cache lines are word-addressed, and the BIOS only
// ever isolates the cache for word-granular flush/init writes. Word
// accesses are redirected into the cache line array instead of RAM;
// see Bus.LoadIsolatedWord/StoreIsolatedWord.

func (cpu *CPU) loadByte(addr uint32) uint8 {
	if cpu.cacheIsolatedFor(addr) {
		return 0
	}
	return cpu.Bus.Load8(addr)
}

func (cpu *CPU) loadHalf(addr uint32) uint16 {
	if cpu.cacheIsolatedFor(addr) {
		return 0
	}
	return cpu.Bus.Load16(addr)
}

func (cpu *CPU) loadWord(addr uint32) uint32 {
	if cpu.cacheIsolatedFor(addr) {
		return cpu.Bus.LoadIsolatedWord(addr)
	}
	return cpu.Bus.Load32(addr)
}

func (cpu *CPU) storeByte(addr uint32, v uint8) {
	if cpu.cacheIsolatedFor(addr) {
		return
	}
	cpu.Bus.Store8(addr, v)
}

func (cpu *CPU) storeHalf(addr uint32, v uint16) {
	if cpu.cacheIsolatedFor(addr) {
		return
	}
	cpu.Bus.Store16(addr, v)
}

func (cpu *CPU) storeWord(addr uint32, v uint32) {
	if cpu.cacheIsolatedFor(addr) {
		cpu.Bus.StoreIsolatedWord(addr, v)
		return
	}
	cpu.Bus.Store32(addr, v)
}

// cacheIsolatedFor reports whether an access to addr is kept away from
// RAM at the CPU layer because SR's isolate-cache bit is set and addr
// targets RAM.
// DMA and GPU traffic never goes through this gate.
func (cpu *CPU) cacheIsolatedFor(addr uint32) bool {
	if !cpu.Cop0.CacheIsolated() {
		return false
	}
	region, _, ok := lookupRegion(physical(addr))
	return ok && region == RegionRAM
}

// --- decode --------------------------------------------------------------

func (cpu *CPU) decodeAndExecute(instr Instruction) {
	switch instr.Function() {
	case 0x00:
		cpu.execSpecial(instr)
	case 0x01:
		cpu.opBXX(instr)
	case 0x02:
		cpu.opJ(instr)
	case 0x03:
		cpu.opJAL(instr)
	case 0x04:
		cpu.opBEQ(instr)
	case 0x05:
		cpu.opBNE(instr)
	case 0x06:
		cpu.opBLEZ(instr)
	case 0x07:
		cpu.opBGTZ(instr)
	case 0x08:
		cpu.opADDI(instr)
	case 0x09:
		cpu.opADDIU(instr)
	case 0x0a:
		cpu.opSLTI(instr)
	case 0x0b:
		cpu.opSLTIU(instr)
	case 0x0c:
		cpu.opANDI(instr)
	case 0x0d:
		cpu.opORI(instr)
	case 0x0e:
		cpu.opXORI(instr)
	case 0x0f:
		cpu.opLUI(instr)
	case 0x10:
		cpu.execCop0(instr)
	case 0x11, 0x13:
		cpu.raiseException(ExcCopError)
	case 0x12:
		cpu.execCop2(instr)
	case 0x20:
		cpu.opLB(instr)
	case 0x21:
		cpu.opLH(instr)
	case 0x22:
		cpu.opLWL(instr)
	case 0x23:
		cpu.opLW(instr)
	case 0x24:
		cpu.opLBU(instr)
	case 0x25:
		cpu.opLHU(instr)
	case 0x26:
		cpu.opLWR(instr)
	case 0x28:
		cpu.opSB(instr)
	case 0x29:
		cpu.opSH(instr)
	case 0x2a:
		cpu.opSWL(instr)
	case 0x2b:
		cpu.opSW(instr)
	case 0x2e:
		cpu.opSWR(instr)
	case 0x31, 0x33, 0x39, 0x3b:
		cpu.raiseException(ExcCopError)
	case 0x32:
		cpu.lwc2(instr)
	case 0x3a:
		cpu.swc2(instr)
	default:
		cpu.raiseException(ExcIllegalOp)
	}
}

func (cpu *CPU) execSpecial(instr Instruction) {
	switch instr.Subfunction() {
	case 0x00:
		cpu.opSLL(instr)
	case 0x02:
		cpu.opSRL(instr)
	case 0x03:
		cpu.opSRA(instr)
	case 0x04:
		cpu.opSLLV(instr)
	case 0x06:
		cpu.opSRLV(instr)
	case 0x07:
		cpu.opSRAV(instr)
	case 0x08:
		cpu.opJR(instr)
	case 0x09:
		cpu.opJALR(instr)
	case 0x0c:
		cpu.raiseException(ExcSysCall)
	case 0x0d:
		cpu.raiseException(ExcBreak)
	case 0x10:
		cpu.opMFHI(instr)
	case 0x11:
		cpu.opMTHI(instr)
	case 0x12:
		cpu.opMFLO(instr)
	case 0x13:
		cpu.opMTLO(instr)
	case 0x18:
		cpu.opMULT(instr)
	case 0x19:
		cpu.opMULTU(instr)
	case 0x1a:
		cpu.opDIV(instr)
	case 0x1b:
		cpu.opDIVU(instr)
	case 0x20:
		cpu.opADD(instr)
	case 0x21:
		cpu.opADDU(instr)
	case 0x22:
		cpu.opSUB(instr)
	case 0x23:
		cpu.opSUBU(instr)
	case 0x24:
		cpu.opAND(instr)
	case 0x25:
		cpu.opOR(instr)
	case 0x26:
		cpu.opXOR(instr)
	case 0x27:
		cpu.opNOR(instr)
	case 0x2a:
		cpu.opSLT(instr)
	case 0x2b:
		cpu.opSLTU(instr)
	default:
		cpu.raiseException(ExcIllegalOp)
	}
}

func (cpu *CPU) execCop0(instr Instruction) {
	switch instr.CopCode() {
	case 0x00:
		cpu.opMFC0(instr)
	case 0x04:
		cpu.opMTC0(instr)
	case 0x10:
		cpu.Cop0.returnFromException()
	default:
		fatalf("cpu: unhandled cop0 instruction 0x%x", uint32(instr))
	}
}

func (cpu *CPU) execCop2(Instruction) {
	fatalf("cpu: GTE (coprocessor 2) is not implemented")
}

func (cpu *CPU) lwc2(Instruction) {
	fatalf("cpu: lwc2 is not implemented")
}

func (cpu *CPU) swc2(Instruction) {
	fatalf("cpu: swc2 is not implemented")
}

// --- loads/stores ----------------------------------------------------------

func (cpu *CPU) opLB(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	v := int8(cpu.loadByte(addr))
	cpu.setPendingLoad(instr.T(), uint32(int32(v)))
}

func (cpu *CPU) opLBU(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	cpu.setPendingLoad(instr.T(), uint32(cpu.loadByte(addr)))
}

func (cpu *CPU) opLH(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	if addr&1 != 0 {
		cpu.raiseException(ExcLoadAddr)
		return
	}
	v := int16(cpu.loadHalf(addr))
	cpu.setPendingLoad(instr.T(), uint32(int32(v)))
}

func (cpu *CPU) opLHU(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	if addr&1 != 0 {
		cpu.raiseException(ExcLoadAddr)
		return
	}
	cpu.setPendingLoad(instr.T(), uint32(cpu.loadHalf(addr)))
}

func (cpu *CPU) opLW(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	if addr&3 != 0 {
		cpu.raiseException(ExcLoadAddr)
		return
	}
	cpu.setPendingLoad(instr.T(), cpu.loadWord(addr))
}

func (cpu *CPU) opLWL(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	aligned := addr &^ 3
	word := cpu.loadWord(aligned)
	cur := cpu.valueForLoadMerge(instr.T())

	var v uint32
	switch addr & 3 {
	case 0:
		v = (cur & 0x00ffffff) | (word << 24)
	case 1:
		v = (cur & 0x0000ffff) | (word << 16)
	case 2:
		v = (cur & 0x000000ff) | (word << 8)
	default:
		v = word
	}
	cpu.setPendingLoad(instr.T(), v)
}

func (cpu *CPU) opLWR(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	aligned := addr &^ 3
	word := cpu.loadWord(aligned)
	cur := cpu.valueForLoadMerge(instr.T())

	var v uint32
	switch addr & 3 {
	case 0:
		v = word
	case 1:
		v = (cur & 0xff000000) | (word >> 8)
	case 2:
		v = (cur & 0xffff0000) | (word >> 16)
	default:
		v = (cur & 0xffffff00) | (word >> 24)
	}
	cpu.setPendingLoad(instr.T(), v)
}

func (cpu *CPU) opSB(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	cpu.storeByte(addr, uint8(cpu.Reg(instr.T())))
}

func (cpu *CPU) opSH(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	if addr&1 != 0 {
		cpu.raiseException(ExcStoreAddr)
		return
	}
	cpu.storeHalf(addr, uint16(cpu.Reg(instr.T())))
}

func (cpu *CPU) opSW(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	if addr&3 != 0 {
		cpu.raiseException(ExcStoreAddr)
		return
	}
	cpu.storeWord(addr, cpu.Reg(instr.T()))
}

func (cpu *CPU) opSWL(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	aligned := addr &^ 3
	curMem := cpu.loadWord(aligned)
	v := cpu.Reg(instr.T())

	var mem uint32
	switch addr & 3 {
	case 0:
		mem = (curMem & 0xffffff00) | (v >> 24)
	case 1:
		mem = (curMem & 0xffff0000) | (v >> 16)
	case 2:
		mem = (curMem & 0xff000000) | (v >> 8)
	default:
		mem = v
	}
	cpu.storeWord(aligned, mem)
}

func (cpu *CPU) opSWR(instr Instruction) {
	addr := cpu.Reg(instr.S()) + instr.ImmSE()
	aligned := addr &^ 3
	curMem := cpu.loadWord(aligned)
	v := cpu.Reg(instr.T())

	var mem uint32
	switch addr & 3 {
	case 0:
		mem = v
	case 1:
		mem = (curMem & 0x000000ff) | (v << 8)
	case 2:
		mem = (curMem & 0x0000ffff) | (v << 16)
	default:
		mem = (curMem & 0x00ffffff) | (v << 24)
	}
	cpu.storeWord(aligned, mem)
}

// --- ALU ---------------------------------------------------------------

func addOverflows(a, b, res int32) bool {
	return ((a^res)&(b^res)) < 0
}

func subOverflows(a, b, res int32) bool {
	return ((a^b)&(a^res)) < 0
}

func (cpu *CPU) opADD(instr Instruction) {
	a := int32(cpu.Reg(instr.S()))
	b := int32(cpu.Reg(instr.T()))
	res := a + b
	if addOverflows(a, b, res) {
		cpu.raiseException(ExcOverflow)
		return
	}
	cpu.SetReg(instr.D(), uint32(res))
}

func (cpu *CPU) opADDU(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.Reg(instr.S())+cpu.Reg(instr.T()))
}

func (cpu *CPU) opADDI(instr Instruction) {
	a := int32(cpu.Reg(instr.S()))
	b := int32(instr.ImmSE())
	res := a + b
	if addOverflows(a, b, res) {
		cpu.raiseException(ExcOverflow)
		return
	}
	cpu.SetReg(instr.T(), uint32(res))
}

func (cpu *CPU) opADDIU(instr Instruction) {
	cpu.SetReg(instr.T(), cpu.Reg(instr.S())+instr.ImmSE())
}

func (cpu *CPU) opSUB(instr Instruction) {
	a := int32(cpu.Reg(instr.S()))
	b := int32(cpu.Reg(instr.T()))
	res := a - b
	if subOverflows(a, b, res) {
		cpu.raiseException(ExcOverflow)
		return
	}
	cpu.SetReg(instr.D(), uint32(res))
}

func (cpu *CPU) opSUBU(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.Reg(instr.S())-cpu.Reg(instr.T()))
}

func (cpu *CPU) opAND(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.Reg(instr.S())&cpu.Reg(instr.T()))
}

func (cpu *CPU) opOR(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.Reg(instr.S())|cpu.Reg(instr.T()))
}

func (cpu *CPU) opXOR(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.Reg(instr.S())^cpu.Reg(instr.T()))
}

func (cpu *CPU) opNOR(instr Instruction) {
	cpu.SetReg(instr.D(), ^(cpu.Reg(instr.S()) | cpu.Reg(instr.T())))
}

func (cpu *CPU) opSLT(instr Instruction) {
	v := int32(cpu.Reg(instr.S())) < int32(cpu.Reg(instr.T()))
	cpu.SetReg(instr.D(), oneIfTrue(v))
}

func (cpu *CPU) opSLTU(instr Instruction) {
	v := cpu.Reg(instr.S()) < cpu.Reg(instr.T())
	cpu.SetReg(instr.D(), oneIfTrue(v))
}

func (cpu *CPU) opANDI(instr Instruction) {
	cpu.SetReg(instr.T(), cpu.Reg(instr.S())&instr.Imm())
}

func (cpu *CPU) opORI(instr Instruction) {
	cpu.SetReg(instr.T(), cpu.Reg(instr.S())|instr.Imm())
}

func (cpu *CPU) opXORI(instr Instruction) {
	cpu.SetReg(instr.T(), cpu.Reg(instr.S())^instr.Imm())
}

func (cpu *CPU) opLUI(instr Instruction) {
	cpu.SetReg(instr.T(), instr.Imm()<<16)
}

func (cpu *CPU) opSLTI(instr Instruction) {
	v := int32(cpu.Reg(instr.S())) < int32(instr.ImmSE())
	cpu.SetReg(instr.T(), oneIfTrue(v))
}

func (cpu *CPU) opSLTIU(instr Instruction) {
	v := cpu.Reg(instr.S()) < instr.ImmSE()
	cpu.SetReg(instr.T(), oneIfTrue(v))
}

func (cpu *CPU) opSLL(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.Reg(instr.T())<<instr.Shift())
}

func (cpu *CPU) opSRL(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.Reg(instr.T())>>instr.Shift())
}

func (cpu *CPU) opSRA(instr Instruction) {
	cpu.SetReg(instr.D(), uint32(int32(cpu.Reg(instr.T()))>>instr.Shift()))
}

func (cpu *CPU) opSLLV(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.Reg(instr.T())<<(cpu.Reg(instr.S())&0x1f))
}

func (cpu *CPU) opSRLV(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.Reg(instr.T())>>(cpu.Reg(instr.S())&0x1f))
}

func (cpu *CPU) opSRAV(instr Instruction) {
	cpu.SetReg(instr.D(), uint32(int32(cpu.Reg(instr.T()))>>(cpu.Reg(instr.S())&0x1f)))
}

// --- multiply/divide -----------------------------------------------------

func (cpu *CPU) opMULT(instr Instruction) {
	a := int64(int32(cpu.Reg(instr.S())))
	b := int64(int32(cpu.Reg(instr.T())))
	v := uint64(a * b)
	cpu.HI = uint32(v >> 32)
	cpu.LO = uint32(v)
}

func (cpu *CPU) opMULTU(instr Instruction) {
	v := uint64(cpu.Reg(instr.S())) * uint64(cpu.Reg(instr.T()))
	cpu.HI = uint32(v >> 32)
	cpu.LO = uint32(v)
}

func (cpu *CPU) opDIV(instr Instruction) {
	n := int32(cpu.Reg(instr.S()))
	d := int32(cpu.Reg(instr.T()))

	switch {
	case d == 0:
		if n >= 0 {
			cpu.LO = 0xffffffff
		} else {
			cpu.LO = 1
		}
		cpu.HI = uint32(n)
	case n == -0x80000000 && d == -1:
		cpu.LO = 0x80000000
		cpu.HI = 0
	default:
		cpu.LO = uint32(n / d)
		cpu.HI = uint32(n % d)
	}
}

func (cpu *CPU) opDIVU(instr Instruction) {
	n := cpu.Reg(instr.S())
	d := cpu.Reg(instr.T())

	if d == 0 {
		cpu.LO = 0xffffffff
		cpu.HI = n
		return
	}
	cpu.LO = n / d
	cpu.HI = n % d
}

func (cpu *CPU) opMFHI(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.HI)
}

func (cpu *CPU) opMTHI(instr Instruction) {
	cpu.HI = cpu.Reg(instr.S())
}

func (cpu *CPU) opMFLO(instr Instruction) {
	cpu.SetReg(instr.D(), cpu.LO)
}

func (cpu *CPU) opMTLO(instr Instruction) {
	cpu.LO = cpu.Reg(instr.S())
}

// --- branches/jumps -------------------------------------------------------

// branch redirects NextPC to the current delay-slot PC plus a
// word-shifted signed offset, and marks the branch as taken.
func (cpu *CPU) branch(offsetImm uint32) {
	cpu.NextPC = cpu.PC + (offsetImm << 2)
	cpu.BranchTaken = true
}

func (cpu *CPU) opBEQ(instr Instruction) {
	if cpu.Reg(instr.S()) == cpu.Reg(instr.T()) {
		cpu.branch(instr.ImmSE())
	}
}

func (cpu *CPU) opBNE(instr Instruction) {
	if cpu.Reg(instr.S()) != cpu.Reg(instr.T()) {
		cpu.branch(instr.ImmSE())
	}
}

func (cpu *CPU) opBLEZ(instr Instruction) {
	if int32(cpu.Reg(instr.S())) <= 0 {
		cpu.branch(instr.ImmSE())
	}
}

func (cpu *CPU) opBGTZ(instr Instruction) {
	if int32(cpu.Reg(instr.S())) > 0 {
		cpu.branch(instr.ImmSE())
	}
}

// opBXX implements the combined BLTZ/BGEZ/BLTZAL/BGEZAL encoding at
// primary opcode 0x01.
func (cpu *CPU) opBXX(instr Instruction) {
	rt := instr.T()
	negative := int32(cpu.Reg(instr.S())) < 0
	test := negative != (rt&1 != 0)

	if rt>>1 == 8 {
		cpu.SetReg(31, cpu.NextPC)
	}
	if test {
		cpu.branch(instr.ImmSE())
	}
}

func (cpu *CPU) opJ(instr Instruction) {
	cpu.NextPC = (cpu.PC & 0xf0000000) | (instr.ImmJump() << 2)
	cpu.BranchTaken = true
}

func (cpu *CPU) opJAL(instr Instruction) {
	ra := cpu.NextPC
	cpu.NextPC = (cpu.PC & 0xf0000000) | (instr.ImmJump() << 2)
	cpu.BranchTaken = true
	cpu.SetReg(31, ra)
}

func (cpu *CPU) opJR(instr Instruction) {
	cpu.NextPC = cpu.Reg(instr.S())
	cpu.BranchTaken = true
}

func (cpu *CPU) opJALR(instr Instruction) {
	ra := cpu.NextPC
	cpu.NextPC = cpu.Reg(instr.S())
	cpu.BranchTaken = true
	cpu.SetReg(instr.D(), ra)
}

// --- coprocessor 0 ---------------------------------------------------------

func (cpu *CPU) opMFC0(instr Instruction) {
	var v uint32
	switch instr.D() {
	case 12:
		v = cpu.Cop0.SR
	case 13:
		v = cpu.Cop0.Cause
	case 14:
		v = cpu.Cop0.EPC
	}
	cpu.setPendingLoad(instr.T(), v)
}

func (cpu *CPU) opMTC0(instr Instruction) {
	val := cpu.Reg(instr.T())
	switch instr.D() {
	case 12:
		cpu.Cop0.SR = val
	case 3, 5, 6, 7, 9, 11, 13:
		// breakpoint/debug config registers and Cause: acknowledged but not modeled
	}
}
