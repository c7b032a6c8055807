package machine

// Cop0 is the MIPS system-control coprocessor: status, cause and
// exception-PC registers. Real interrupt delivery is out of scope for
// this core (see SPEC_FULL.md §1); SR/Cause/EPC only ever change through
// mtc0/rfe and exception entry/return triggered by the interpreter
// itself.
type Cop0 struct {
	SR    uint32 // register 12
	Cause uint32 // register 13
	EPC   uint32 // register 14
}

// CacheIsolated reports whether SR bit 16 (isolate cache) is set. The
// CPU's load/store helpers consult this directly; the bus never sees it.
func (c *Cop0) CacheIsolated() bool {
	return c.SR&0x10000 != 0
}

// exceptionHandler returns the target PC for exception entry, selected
// by the BEV bit (SR bit 22).
func (c *Cop0) exceptionHandler() uint32 {
	if c.SR&(1<<22) != 0 {
		return 0xbfc00180
	}
	return 0x80000080
}

// enterException pushes a new kernel/interrupt-disable pair onto SR's
// 3-level mode stack, records the exception code and EPC, and returns
// the handler address to jump to.
func (c *Cop0) enterException(cause Exception, pc uint32, inDelaySlot bool) uint32 {
	mode := c.SR & 0x3f
	c.SR &^= 0x3f
	c.SR |= (mode << 2) & 0x3f

	c.Cause &^= 0x7c
	c.Cause |= uint32(cause) << 2

	if inDelaySlot {
		c.EPC = pc - 4
		c.Cause |= 1 << 31
	} else {
		c.EPC = pc
		c.Cause &^= 1 << 31
	}

	return c.exceptionHandler()
}

// returnFromException implements rfe: pop the mode stack by shifting
// SR's low 6 bits right by 2, preserving the top pair (bits 4-5) of the
// pre-shift value. A plain right-shift without preserving that pair
// loses the outermost interrupt-enable/mode pair after a third nested
// exception return.
func (c *Cop0) returnFromException() {
	mode := c.SR & 0x3f
	c.SR &^= 0x3f
	c.SR |= (mode >> 2) | (mode & 0x30)
}
