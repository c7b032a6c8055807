package machine

import "log"

// Bus owns every addressable device and dispatches width-typed loads and
// stores to them by physical address. It is the only thing that knows
// how virtual addresses, the address map and the DMA/GPU register
// layouts fit together.
type Bus struct {
	ram        *RAM
	bios       *BIOS
	scratchpad *Scratchpad
	dma        *DMA
	gpu        *GPU

	icacheCtl CacheControl     // recorded for inspection only, never consulted by fetch
	icache    [256]ICacheLine // the 4KiB instruction cache, touched by isolate-cache word accesses

	Debugger *Debugger
}

// ICacheControl returns the last value written to the cache-control
// register. The bus does not act on it: fetch timing and line
// invalidation are not modeled, only the register's inspectable state.
func (bus *Bus) ICacheControl() CacheControl {
	return bus.icacheCtl
}

// ICacheLine returns a copy of instruction cache line index (mod 256),
// for inspection. Lines are only ever written by isolate-cache word
// stores; fetch never reads them back.
func (bus *Bus) ICacheLine(index uint32) ICacheLine {
	return bus.icache[index&0xff]
}

func icacheAddr(addr uint32) (line, word uint32) {
	return (addr >> 4) & 0xff, (addr >> 2) & 3
}

// LoadIsolatedWord and StoreIsolatedWord are the CPU's isolate-cache
// word access path: with SR's isolate-cache bit set, RAM-bound word
// loads/stores are redirected here instead of reaching ram. This mirrors
// the BIOS's boot-time cache-init routine, which isolates the cache and
// writes through the address range it wants to flush rather than
// through main memory.
func (bus *Bus) LoadIsolatedWord(addr uint32) uint32 {
	line, word := icacheAddr(addr)
	return uint32(bus.icache[line].Get(word))
}

func (bus *Bus) StoreIsolatedWord(addr uint32, val uint32) {
	line, word := icacheAddr(addr)
	if bus.icacheCtl.TagTestMode() {
		bus.icache[line].SetTagValid(addr)
		return
	}
	bus.icache[line].Set(word, Instruction(val))
	bus.icache[line].SetTagValid(addr)
}

// NewBus wires ram/bios/scratchpad/dma/gpu into a single dispatch point.
func NewBus(ram *RAM, bios *BIOS, scratchpad *Scratchpad, dma *DMA, gpu *GPU) *Bus {
	bus := &Bus{ram: ram, bios: bios, scratchpad: scratchpad, dma: dma, gpu: gpu}
	for i := range bus.icache {
		bus.icache[i] = *NewICacheLine()
	}
	return bus
}

func (bus *Bus) checkRead(addr uint32) {
	if bus.Debugger != nil {
		bus.Debugger.checkRead(addr)
	}
}

func (bus *Bus) checkWrite(addr uint32) {
	if bus.Debugger != nil {
		bus.Debugger.checkWrite(addr)
	}
}

// --- generic width-typed dispatch -----------------------------------------

func (bus *Bus) Load8(vaddr uint32) uint8 {
	bus.checkRead(vaddr)
	paddr := physical(vaddr)
	region, offset, ok := lookupRegion(paddr)
	if !ok {
		raiseBus(OutOfRange, "load8 at 0x%08x", vaddr)
	}
	switch region {
	case RegionRAM:
		return bus.ram.Load8(offset)
	case RegionBIOS:
		return bus.bios.Load8(offset)
	case RegionScratchpad:
		return bus.scratchpad.Load8(offset)
	case RegionSPU:
		return 0
	case RegionEXP1:
		return 0xff
	case RegionDMA, RegionGPU:
		fatalf("bus: 8 bit load from %v is not supported", region)
	case RegionMemControl, RegionRAMSize, RegionCacheControl:
		raiseBus(OutOfRange, "8 bit load from %v at 0x%08x", region, vaddr)
	case RegionIRQControl, RegionTimers:
		return 0
	case RegionEXP2:
		return 0xff
	}
	fatalf("bus: unreachable region %v", region)
	return 0
}

func (bus *Bus) Load16(vaddr uint32) uint16 {
	bus.checkRead(vaddr)
	paddr := physical(vaddr)
	region, offset, ok := lookupRegion(paddr)
	if !ok {
		raiseBus(OutOfRange, "load16 at 0x%08x", vaddr)
	}
	switch region {
	case RegionRAM:
		return bus.ram.Load16(offset)
	case RegionBIOS:
		return bus.bios.Load16(offset)
	case RegionScratchpad:
		return bus.scratchpad.Load16(offset)
	case RegionSPU:
		return 0
	case RegionDMA, RegionGPU:
		fatalf("bus: 16 bit load from %v is not supported", region)
	case RegionMemControl, RegionRAMSize, RegionCacheControl:
		raiseBus(OutOfRange, "16 bit load from %v at 0x%08x", region, vaddr)
	case RegionIRQControl, RegionTimers:
		return 0
	case RegionEXP1, RegionEXP2:
		return 0xffff
	}
	fatalf("bus: unreachable region %v", region)
	return 0
}

func (bus *Bus) Load32(vaddr uint32) uint32 {
	bus.checkRead(vaddr)
	paddr := physical(vaddr)
	region, offset, ok := lookupRegion(paddr)
	if !ok {
		raiseBus(OutOfRange, "load32 at 0x%08x", vaddr)
	}
	switch region {
	case RegionRAM:
		return bus.ram.Load32(offset)
	case RegionBIOS:
		return bus.bios.Load32(offset)
	case RegionScratchpad:
		return bus.scratchpad.Load32(offset)
	case RegionSPU:
		return 0
	case RegionDMA:
		return bus.loadDMA(offset)
	case RegionGPU:
		return bus.loadGPU(offset)
	case RegionMemControl, RegionRAMSize, RegionCacheControl:
		raiseBus(OutOfRange, "32 bit load from %v at 0x%08x", region, vaddr)
	case RegionIRQControl:
		log.Printf("bus: unimplemented IRQ control read at 0x%08x", vaddr)
		return 0
	case RegionTimers:
		log.Printf("bus: unimplemented timer read at 0x%08x", vaddr)
		return 0
	case RegionEXP1, RegionEXP2:
		return 0xffffffff
	}
	fatalf("bus: unreachable region %v", region)
	return 0
}

func (bus *Bus) Store8(vaddr uint32, val uint8) {
	bus.checkWrite(vaddr)
	paddr := physical(vaddr)
	region, offset, ok := lookupRegion(paddr)
	if !ok {
		raiseBus(OutOfRange, "store8 at 0x%08x", vaddr)
	}
	switch region {
	case RegionRAM:
		bus.ram.Store8(offset, val)
	case RegionBIOS:
		raiseBus(OutOfRange, "store8 to BIOS at 0x%08x", vaddr)
	case RegionScratchpad:
		bus.scratchpad.Store8(offset, val)
	case RegionSPU, RegionEXP2:
		// ignored
	case RegionDMA, RegionGPU:
		fatalf("bus: 8 bit store to %v is not supported", region)
	case RegionMemControl, RegionRAMSize, RegionCacheControl:
		// ignored
	case RegionIRQControl, RegionTimers:
		log.Printf("bus: ignored 8 bit write to %v at 0x%08x", region, vaddr)
	case RegionEXP1:
		// ignored
	}
}

func (bus *Bus) Store16(vaddr uint32, val uint16) {
	bus.checkWrite(vaddr)
	paddr := physical(vaddr)
	region, offset, ok := lookupRegion(paddr)
	if !ok {
		raiseBus(OutOfRange, "store16 at 0x%08x", vaddr)
	}
	switch region {
	case RegionRAM:
		bus.ram.Store16(offset, val)
	case RegionBIOS:
		raiseBus(OutOfRange, "store16 to BIOS at 0x%08x", vaddr)
	case RegionScratchpad:
		bus.scratchpad.Store16(offset, val)
	case RegionSPU, RegionEXP1, RegionEXP2:
		// ignored
	case RegionDMA, RegionGPU:
		fatalf("bus: 16 bit store to %v is not supported", region)
	case RegionMemControl, RegionRAMSize, RegionCacheControl:
		// ignored
	case RegionIRQControl, RegionTimers:
		log.Printf("bus: ignored 16 bit write to %v at 0x%08x", region, vaddr)
	}
}

func (bus *Bus) Store32(vaddr uint32, val uint32) {
	bus.checkWrite(vaddr)
	paddr := physical(vaddr)
	region, offset, ok := lookupRegion(paddr)
	if !ok {
		raiseBus(OutOfRange, "store32 at 0x%08x", vaddr)
	}
	switch region {
	case RegionRAM:
		bus.ram.Store32(offset, val)
	case RegionBIOS:
		raiseBus(OutOfRange, "store32 to BIOS at 0x%08x", vaddr)
	case RegionScratchpad:
		bus.scratchpad.Store32(offset, val)
	case RegionSPU, RegionEXP1, RegionEXP2:
		// ignored
	case RegionDMA:
		bus.storeDMA(offset, val)
	case RegionGPU:
		bus.storeGPU(offset, val)
	case RegionMemControl, RegionRAMSize:
		// ignored
	case RegionCacheControl:
		bus.icacheCtl = CacheControl(val)
	case RegionIRQControl, RegionTimers:
		log.Printf("bus: ignored 32 bit write to %v at 0x%08x", region, vaddr)
	}
}

// --- GPU register ports ---------------------------------------------------

func (bus *Bus) loadGPU(offset uint32) uint32 {
	switch offset {
	case 0:
		return bus.gpu.Read()
	case 4:
		return bus.gpu.Status()
	default:
		raiseBus(OutOfRange, "gpu register read at offset 0x%x", offset)
	}
	return 0
}

func (bus *Bus) storeGPU(offset uint32, val uint32) {
	switch offset {
	case 0:
		bus.gpu.GP0(val)
	case 4:
		bus.gpu.GP1(val)
	default:
		raiseBus(OutOfRange, "gpu register write at offset 0x%x", offset)
	}
}

// --- DMA register ports ---------------------------------------------------

func (bus *Bus) loadDMA(offset uint32) uint32 {
	major := (offset >> 4) & 7
	minor := offset & 0xf

	if major <= 6 {
		ch := bus.dma.channel(Port(major))
		switch minor {
		case 0:
			return ch.Base
		case 4:
			return ch.BlockControl()
		case 8:
			return ch.Control()
		default:
			raiseBus(OutOfRange, "dma: read channel %d minor 0x%x", major, minor)
		}
	}
	if major == 7 {
		switch minor {
		case 0:
			return bus.dma.Control
		case 4:
			return bus.dma.Interrupt()
		default:
			raiseBus(OutOfRange, "dma: read controller minor 0x%x", minor)
		}
	}
	raiseBus(OutOfRange, "dma: read major %d", major)
	return 0
}

func (bus *Bus) storeDMA(offset uint32, val uint32) {
	major := (offset >> 4) & 7
	minor := offset & 0xf

	if major <= 6 {
		port := Port(major)
		ch := bus.dma.channel(port)
		switch minor {
		case 0:
			ch.SetBase(val)
		case 4:
			ch.SetBlockControl(val)
		case 8:
			ch.SetControl(val)
			if ch.Active() {
				bus.runDMA(port)
			}
		default:
			raiseBus(OutOfRange, "dma: write channel %d minor 0x%x", major, minor)
		}
		return
	}
	if major == 7 {
		switch minor {
		case 0:
			bus.dma.Control = val
		case 4:
			bus.dma.SetInterrupt(val)
		default:
			raiseBus(OutOfRange, "dma: write controller minor 0x%x", minor)
		}
		return
	}
	raiseBus(OutOfRange, "dma: write major %d", major)
}

// --- transfer engines -------------------------------------------------------

func (bus *Bus) runDMA(port Port) {
	ch := bus.dma.channel(port)
	if ch.Sync == SyncLinkedList {
		bus.runLinkedList(port, ch)
		return
	}
	bus.runBlock(port, ch)
}

func (bus *Bus) runBlock(port Port, ch *Channel) {
	size, ok := ch.TransferSize()
	if !ok {
		fatalf("dma: block transfer on port %d has no known size", port)
	}

	var step int32 = 4
	if ch.Step == StepDecrement {
		step = -4
	}

	addr := ch.Base
	for remaining := size; remaining > 0; remaining-- {
		cur := addr & 0x001ffffc

		switch ch.Direction {
		case DirFromRam:
			switch port {
			case PortGPU:
				bus.gpu.GP0(bus.ram.Load32(cur))
			default:
				raiseBus(Unimplemented, "dma: block FromRam transfer on port %d", port)
			}
		case DirToRam:
			switch port {
			case PortOTC:
				var word uint32
				if remaining == 1 {
					word = 0x00ffffff
				} else {
					word = (addr - 4) & 0x001fffff
				}
				bus.ram.Store32(cur, word)
			default:
				raiseBus(Unimplemented, "dma: block ToRam transfer on port %d", port)
			}
		}

		addr = uint32(int32(addr) + step)
	}

	// TODO(dma-irq): set dma.ChannelIrqFlags for this port here once
	// completion interrupts are modeled.
	ch.Done()
}

func (bus *Bus) runLinkedList(port Port, ch *Channel) {
	if port != PortGPU || ch.Direction != DirFromRam {
		raiseBus(Unimplemented, "dma: linked-list transfer on port %d direction %d", port, ch.Direction)
	}

	addr := ch.Base & 0x001ffffc
	for {
		header := bus.ram.Load32(addr)
		length := header >> 24

		for i := uint32(1); i <= length; i++ {
			wordAddr := (addr + 4*i) & 0x001ffffc
			bus.gpu.GP0(bus.ram.Load32(wordAddr))
		}

		if header&0x00800000 != 0 {
			break
		}
		addr = header & 0x001ffffc
	}

	ch.Done()
}
