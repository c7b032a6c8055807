package machine

// segmentMasks is the 8-entry KUSEG/KSEG0/KSEG1/KSEG2 mask table, indexed
// by bits [31:29] of a virtual address. Unlike a real MMU this never
// faults: every virtual address maps to exactly one physical address.
var segmentMasks = [8]uint32{
	0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, // KUSEG (2GiB, mirrors KSEG0/1)
	0x7fffffff, // KSEG0: cached, strips the top bit
	0x1fffffff, // KSEG1: uncached, strips the top three bits
	0xffffffff, 0xffffffff, // KSEG2: I/O and cache control, untranslated
}

// physical translates a virtual address to a physical one by masking with
// the region selected by vaddr's top three bits.
func physical(vaddr uint32) uint32 {
	return vaddr & segmentMasks[vaddr>>29]
}
