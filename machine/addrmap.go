package machine

// Region identifies a named slice of the physical address space
type Region int

const (
	RegionRAM         Region = iota // Main 2MiB RAM
	RegionEXP1                      // Expansion port 1
	RegionScratchpad                // Data cache used as fast scratch RAM
	RegionMemControl                // SYSCONTROL: memory timing/expansion config
	RegionRAMSize                   // RAM configuration register
	RegionIRQControl                // Interrupt controller
	RegionDMA                       // DMA controller and channels
	RegionTimers                    // Timers
	RegionGPU                       // GPU GP0/GP1/GPUSTAT/GPUREAD ports
	RegionSPU                       // Sound processing unit
	RegionEXP2                      // Expansion port 2
	RegionBIOS                      // BIOS ROM
	RegionCacheControl              // Cache control register, lives in KSEG2
)

// AddrRange is an immutable {start, length} span of the physical address
// space. The high bits of vaddr are stripped by Segmentation before a
// range is probed, so ranges only ever see physical addresses.
type AddrRange struct {
	Start  uint32
	Length uint32
	Region Region
}

// End returns the last address (inclusive) covered by the range.
func (r AddrRange) End() uint32 {
	return r.Start + r.Length - 1
}

// Offset returns the distance between addr and the start of the range.
// The caller must already know addr is inside the range.
func (r AddrRange) Offset(addr uint32) uint32 {
	return addr - r.Start
}

func (r AddrRange) contains(addr uint32) bool {
	return addr >= r.Start && addr <= r.End()
}

// addressMap lists every mapped physical range known to the bus, in probe
// order. Addresses outside all of these are OutOfRange.
var addressMap = [...]AddrRange{
	{Start: 0x00000000, Length: 2 * 1024 * 1024, Region: RegionRAM},
	{Start: 0x1f000000, Length: 8 * 1024 * 1024, Region: RegionEXP1},
	{Start: 0x1f800000, Length: 0x1024, Region: RegionScratchpad},
	{Start: 0x1f801000, Length: 36, Region: RegionMemControl},
	{Start: 0x1f801060, Length: 4, Region: RegionRAMSize},
	{Start: 0x1f801070, Length: 8, Region: RegionIRQControl},
	{Start: 0x1f801080, Length: 0x80, Region: RegionDMA},
	{Start: 0x1f801100, Length: 0x30, Region: RegionTimers},
	{Start: 0x1f801810, Length: 8, Region: RegionGPU},
	{Start: 0x1f801c00, Length: 640, Region: RegionSPU},
	{Start: 0x1f802000, Length: 66, Region: RegionEXP2},
	{Start: 0x1fc00000, Length: 512 * 1024, Region: RegionBIOS},
	{Start: 0xfffe0130, Length: 4, Region: RegionCacheControl},
}

// lookupRegion linearly probes addressMap for the first range containing
// paddr, returning its region and the offset within it.
func lookupRegion(paddr uint32) (region Region, offset uint32, ok bool) {
	for _, r := range addressMap {
		if r.contains(paddr) {
			return r.Region, r.Offset(paddr), true
		}
	}
	return 0, 0, false
}
