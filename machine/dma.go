package machine

// DMA holds the global control/interrupt registers and the 7 channels.
// The transfer engines that actually move words between RAM and the
// other peripherals live on Bus (machine/bus.go), since they need RAM
// and GPU access that DMA itself does not own.
type DMA struct {
	Control uint32 // global DMA control register, reset value from Nocash's docs

	ForceIrq        bool
	ChannelIrqEn    uint8 // bits 16-22
	ChannelIrqFlags uint8 // bits 24-30
	IrqMasterEn     bool  // bit 23
	IrqDummy        uint8 // bits 0-5, meaning unknown, echoed back verbatim

	Channels [7]*Channel
}

func NewDMA() *DMA {
	dma := &DMA{Control: 0x07654321}
	for i := range dma.Channels {
		dma.Channels[i] = NewChannel()
	}
	return dma
}

// Signal computes the pure-function interrupt signal bit: forced, or
// the master enable gating any enabled channel's flag.
func (dma *DMA) Signal() bool {
	return dma.ForceIrq || (dma.IrqMasterEn && (dma.ChannelIrqEn&dma.ChannelIrqFlags) != 0)
}

// Interrupt packs the DMA interrupt register for reads.
func (dma *DMA) Interrupt() uint32 {
	var r uint32
	r |= uint32(dma.IrqDummy)
	r |= oneIfTrue(dma.ForceIrq) << 15
	r |= uint32(dma.ChannelIrqEn) << 16
	r |= oneIfTrue(dma.IrqMasterEn) << 23
	r |= uint32(dma.ChannelIrqFlags) << 24
	r |= oneIfTrue(dma.Signal()) << 31
	return r
}

// SetInterrupt applies a write to the DMA interrupt register: flag bits
// are cleared by writing 1s to them (AND-NOT), force-irq/enables/master
// enable are taken verbatim from val, and the signal bit is recomputed —
// it is never independently writable.
func (dma *DMA) SetInterrupt(val uint32) {
	dma.IrqDummy = uint8(val & 0x3f)
	dma.ForceIrq = boolFromBit(val, 15)
	dma.ChannelIrqEn = uint8((val >> 16) & 0x7f)
	dma.IrqMasterEn = boolFromBit(val, 23)

	ack := uint8((val >> 24) & 0x7f)
	dma.ChannelIrqFlags &^= ack
}

// channel returns the channel register set for a port index.
func (dma *DMA) channel(port Port) *Channel {
	return dma.Channels[port]
}
