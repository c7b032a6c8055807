package machine

// TextureDepth is the color depth of a texture page.
type TextureDepth uint8

const (
	TexDepth4Bit  TextureDepth = 0
	TexDepth8Bit  TextureDepth = 1
	TexDepth15Bit TextureDepth = 2
)

// Field selects which interlaced half-frame is current.
type Field uint8

const (
	FieldBottom Field = 0
	FieldTop    Field = 1
)

// HorizontalRes packs the 2-bit + 1-bit horizontal resolution fields.
type HorizontalRes uint8

func hResFromFields(hr1, hr2 uint8) HorizontalRes {
	return HorizontalRes((hr2 & 1) | ((hr1 & 3) << 1))
}

func (hr HorizontalRes) intoStatus() uint32 {
	return uint32(hr) << 16
}

type VerticalRes uint8

const (
	VRes240Lines VerticalRes = 0
	VRes480Lines VerticalRes = 1
)

type VMode uint8

const (
	VModeNTSC VMode = 0
	VModePAL  VMode = 1
)

type DisplayDepth uint8

const (
	DisplayDepth15Bits DisplayDepth = 0
	DisplayDepth24Bits DisplayDepth = 1
)

// DmaDirection is the direction requested for GP0<->DMA transfers.
type DmaDirection uint8

const (
	DmaDirOff     DmaDirection = 0
	DmaDirFifo    DmaDirection = 1
	DmaDirCPUToGP DmaDirection = 2
	DmaDirToCPU   DmaDirection = 3
)

// gp0Mode selects how GP0 interprets the next incoming word.
type gp0Mode uint8

const (
	gp0ModeCommand   gp0Mode = iota // next word is a header, or a pending command's argument
	gp0ModeImageLoad                // next words are raw pixel data, simply drained
)

// gp0OpInfo is one opcode table entry: how many words (including the
// header) the command takes, and what to do once they're all in.
type gp0OpInfo struct {
	argc    uint8
	handler func(*GPU)
}

var gp0Table = map[uint8]gp0OpInfo{
	0x00: {1, func(*GPU) {}},
	0x01: {1, func(*GPU) {}}, // clear texture cache: no-op, no texture cache modeled
	0x28: {5, gp0MonochromeQuad},
	0x2c: {9, gp0TexturedQuad},
	0x30: {6, gp0ShadedTriangle},
	0x38: {8, gp0ShadedQuad},
	0xa0: {3, gp0ImageLoadStart},
	0xc0: {3, gp0ImageStore},
	0xe1: {1, gp0DrawMode},
	0xe2: {1, gp0TextureWindow},
	0xe3: {1, gp0DrawingAreaTopLeft},
	0xe4: {1, gp0DrawingAreaBottomRight},
	0xe5: {1, gp0DrawingOffset},
	0xe6: {1, gp0MaskBitSetting},
}

// GPU is the GP0/GP1 command front-end and status-register state. It
// never rasterizes anything; drawing primitives are handed off to an
// external sink as GpuMsg values.
type GPU struct {
	PageBaseX             uint8
	PageBaseY             uint8
	SemiTransparency      uint8
	TextureDepth          TextureDepth
	Dithering             bool
	DrawToDisplay         bool
	ForceSetMaskBit       bool
	PreserveMaskedPixels  bool
	Field                 Field
	TextureDisable        bool
	HRes                  HorizontalRes
	VRes                  VerticalRes
	VMode                 VMode
	DisplayDepth          DisplayDepth
	Interlaced            bool
	DisplayDisabled       bool
	Interrupt             bool
	DmaDirection          DmaDirection
	RectangleTextureXFlip bool
	RectangleTextureYFlip bool

	TextureWindowXMask   uint8
	TextureWindowYMask   uint8
	TextureWindowXOffset uint8
	TextureWindowYOffset uint8

	DrawingAreaLeft   uint16
	DrawingAreaTop    uint16
	DrawingAreaRight  uint16
	DrawingAreaBottom uint16
	DrawingXOffset    int32
	DrawingYOffset    int32

	DisplayVRamXStart uint16
	DisplayVRamYStart uint16
	DisplayHorizStart uint16
	DisplayHorizEnd   uint16
	DisplayLineStart  uint16
	DisplayLineEnd    uint16

	cmd          CommandBuffer
	curOpcode    uint8
	argRemaining uint8
	mode         gp0Mode
	imgRemaining uint32

	sink *HandOff
}

// NewGPU returns a GPU that hands draw messages off to sink.
func NewGPU(sink *HandOff) *GPU {
	return &GPU{
		TextureDepth:    TexDepth4Bit,
		Field:           FieldTop,
		HRes:            hResFromFields(0, 0),
		VRes:            VRes240Lines,
		VMode:           VModeNTSC,
		DisplayDepth:    DisplayDepth15Bits,
		DisplayDisabled: true,
		DmaDirection:    DmaDirOff,
		sink:            sink,
	}
}

func (gpu *GPU) emit(msg GpuMsg) {
	gpu.sink.Put(msg)
}

// GP0 pushes a word into the command FIFO, running its handler once all
// arguments have arrived.
func (gpu *GPU) GP0(val uint32) {
	if gpu.mode == gp0ModeImageLoad {
		gpu.imgRemaining--
		if gpu.imgRemaining == 0 {
			gpu.mode = gp0ModeCommand
		}
		return
	}

	if gpu.argRemaining == 0 {
		opcode := uint8(val >> 24)
		info, ok := gp0Table[opcode]
		if !ok {
			fatalf("gpu: unhandled GP0 opcode 0x%x", opcode)
		}
		gpu.cmd.Clear()
		gpu.curOpcode = opcode
		gpu.argRemaining = info.argc
	}

	gpu.cmd.Push(val)
	gpu.argRemaining--
	if gpu.argRemaining == 0 {
		gp0Table[gpu.curOpcode].handler(gpu)
	}
}

func decodeVertexPos(word uint32) (x, y int32) {
	return signExtend11(word & 0x7ff), signExtend11((word >> 16) & 0x7ff)
}

func decodeColor(word uint32) (r, g, b uint32) {
	return word & 0xff, (word >> 8) & 0xff, (word >> 16) & 0xff
}

func gp0MonochromeQuad(gpu *GPU) {
	r, g, b := decodeColor(gpu.cmd.Get(0))
	var quad [4]Vertex
	for i := 0; i < 4; i++ {
		x, y := decodeVertexPos(gpu.cmd.Get(uint8(1 + i)))
		quad[i] = Vertex{X: x, Y: y, R: r, G: g, B: b}
	}
	gpu.emit(GpuMsg{Kind: MsgQuad, Quad: quad})
}

func gp0TexturedQuad(gpu *GPU) {
	var quad [4]Vertex
	for i := 0; i < 4; i++ {
		x, y := decodeVertexPos(gpu.cmd.Get(uint8(1 + 2*i)))
		quad[i] = Vertex{X: x, Y: y, R: 0x80, G: 0, B: 0}
	}
	gpu.emit(GpuMsg{Kind: MsgQuad, Quad: quad})
}

func gp0ShadedTriangle(gpu *GPU) {
	var tri [3]Vertex
	for i := 0; i < 3; i++ {
		r, g, b := decodeColor(gpu.cmd.Get(uint8(2 * i)))
		x, y := decodeVertexPos(gpu.cmd.Get(uint8(2*i + 1)))
		tri[i] = Vertex{X: x, Y: y, R: r, G: g, B: b}
	}
	gpu.emit(GpuMsg{Kind: MsgTriangle, Triangle: tri})
}

func gp0ShadedQuad(gpu *GPU) {
	var quad [4]Vertex
	for i := 0; i < 4; i++ {
		r, g, b := decodeColor(gpu.cmd.Get(uint8(2 * i)))
		x, y := decodeVertexPos(gpu.cmd.Get(uint8(2*i + 1)))
		quad[i] = Vertex{X: x, Y: y, R: r, G: g, B: b}
	}
	gpu.emit(GpuMsg{Kind: MsgQuad, Quad: quad})
}

// gp0ImageLoadStart handles GP0(0xA0): begin draining a rectangular CPU
// to VRAM transfer. No pixel storage is implemented; we only need to
// consume the right number of words.
func gp0ImageLoadStart(gpu *GPU) {
	size := gpu.cmd.Get(2)
	w := size & 0xffff
	h := (size >> 16) & 0xffff
	count := ceilDiv(w*h, 2)
	if count > 0 {
		gpu.mode = gp0ModeImageLoad
		gpu.imgRemaining = count
	}
}

func gp0ImageStore(*GPU) {
	// GP0(0xC0): VRAM to CPU image store. Not implemented, rendering is
	// out of scope; the command still drains its fixed argument count.
}

// gp0DrawMode handles GP0(0xE1).
func gp0DrawMode(gpu *GPU) {
	val := gpu.cmd.Get(0)
	gpu.PageBaseX = uint8(val & 0xf)
	gpu.PageBaseY = uint8((val >> 4) & 1)
	gpu.SemiTransparency = uint8((val >> 5) & 3)

	switch (val >> 7) & 3 {
	case 0:
		gpu.TextureDepth = TexDepth4Bit
	case 1:
		gpu.TextureDepth = TexDepth8Bit
	default:
		gpu.TextureDepth = TexDepth15Bit
	}

	gpu.Dithering = boolFromBit(val, 9)
	gpu.DrawToDisplay = boolFromBit(val, 10)
	gpu.TextureDisable = boolFromBit(val, 11)
	gpu.RectangleTextureXFlip = boolFromBit(val, 12)
	gpu.RectangleTextureYFlip = boolFromBit(val, 13)
}

// gp0TextureWindow handles GP0(0xE2).
func gp0TextureWindow(gpu *GPU) {
	val := gpu.cmd.Get(0)
	gpu.TextureWindowXMask = uint8(val & 0x1f)
	gpu.TextureWindowYMask = uint8((val >> 5) & 0x1f)
	gpu.TextureWindowXOffset = uint8((val >> 10) & 0x1f)
	gpu.TextureWindowYOffset = uint8((val >> 15) & 0x1f)
}

// gp0DrawingAreaTopLeft handles GP0(0xE3).
func gp0DrawingAreaTopLeft(gpu *GPU) {
	val := gpu.cmd.Get(0)
	gpu.DrawingAreaTop = uint16((val >> 10) & 0x3ff)
	gpu.DrawingAreaLeft = uint16(val & 0x3ff)
}

// gp0DrawingAreaBottomRight handles GP0(0xE4).
func gp0DrawingAreaBottomRight(gpu *GPU) {
	val := gpu.cmd.Get(0)
	gpu.DrawingAreaBottom = uint16((val >> 10) & 0x3ff)
	gpu.DrawingAreaRight = uint16(val & 0x3ff)
}

// gp0DrawingOffset handles GP0(0xE5). It always emits exactly one offset
// message followed by one draw barrier, with nothing in between.
func gp0DrawingOffset(gpu *GPU) {
	val := gpu.cmd.Get(0)
	x := signExtend11(val & 0x7ff)
	y := signExtend11((val >> 11) & 0x7ff)
	gpu.DrawingXOffset = x
	gpu.DrawingYOffset = y

	gpu.emit(GpuMsg{Kind: MsgOffset, OffsetX: x, OffsetY: y})
	gpu.emit(GpuMsg{Kind: MsgDraw})
}

// gp0MaskBitSetting handles GP0(0xE6).
func gp0MaskBitSetting(gpu *GPU) {
	val := gpu.cmd.Get(0)
	gpu.ForceSetMaskBit = boolFromBit(val, 0)
	gpu.PreserveMaskedPixels = boolFromBit(val, 1)
}

// GP1 dispatches a GP1 control-port write on its top byte.
func (gpu *GPU) GP1(val uint32) {
	switch opcode := uint8(val >> 24); opcode {
	case 0x00:
		gpu.gp1Reset()
	case 0x01:
		gpu.gp1ResetCommandBuffer()
	case 0x02:
		gpu.gp1AckIrq()
	case 0x03:
		gpu.gp1DisplayEnable(val)
	case 0x04:
		gpu.gp1DmaDirection(val)
	case 0x05:
		gpu.gp1DisplayVRAMStart(val)
	case 0x06:
		gpu.gp1DisplayHorizontalRange(val)
	case 0x07:
		gpu.gp1DisplayVerticalRange(val)
	case 0x08:
		gpu.gp1DisplayMode(val)
	default:
		fatalf("gpu: unhandled GP1 opcode 0x%x", opcode)
	}
}

// gp1Reset handles GP1(0x00).
func (gpu *GPU) gp1Reset() {
	gpu.Interrupt = false
	gpu.PageBaseX = 0
	gpu.PageBaseY = 0
	gpu.SemiTransparency = 0
	gpu.TextureDepth = TexDepth4Bit
	gpu.TextureWindowXMask = 0
	gpu.TextureWindowYMask = 0
	gpu.TextureWindowXOffset = 0
	gpu.TextureWindowYOffset = 0
	gpu.Dithering = false
	gpu.DrawToDisplay = false
	gpu.TextureDisable = false
	gpu.RectangleTextureXFlip = false
	gpu.RectangleTextureYFlip = false
	gpu.DrawingAreaLeft = 0
	gpu.DrawingAreaTop = 0
	gpu.DrawingAreaRight = 0
	gpu.DrawingAreaBottom = 0
	gpu.DrawingXOffset = 0
	gpu.DrawingYOffset = 0
	gpu.ForceSetMaskBit = false
	gpu.PreserveMaskedPixels = false
	gpu.DmaDirection = DmaDirOff
	gpu.DisplayDisabled = true
	gpu.DisplayVRamXStart = 0
	gpu.DisplayVRamYStart = 0
	gpu.HRes = hResFromFields(0, 0)
	gpu.VRes = VRes240Lines
	gpu.VMode = VModeNTSC
	gpu.DisplayDepth = DisplayDepth15Bits
	gpu.Interlaced = true
	gpu.DisplayHorizStart = 0x200
	gpu.DisplayHorizEnd = 0xc00
	gpu.DisplayLineStart = 0x10
	gpu.DisplayLineEnd = 0x100

	gpu.gp1ResetCommandBuffer()
}

// gp1ResetCommandBuffer handles GP1(0x01).
func (gpu *GPU) gp1ResetCommandBuffer() {
	gpu.cmd.Clear()
	gpu.argRemaining = 0
	gpu.mode = gp0ModeCommand
}

// gp1AckIrq handles GP1(0x02).
func (gpu *GPU) gp1AckIrq() {
	gpu.Interrupt = false
}

// gp1DisplayEnable handles GP1(0x03).
func (gpu *GPU) gp1DisplayEnable(val uint32) {
	gpu.DisplayDisabled = boolFromBit(val, 0)
}

// gp1DmaDirection handles GP1(0x04).
func (gpu *GPU) gp1DmaDirection(val uint32) {
	switch val & 3 {
	case 0:
		gpu.DmaDirection = DmaDirOff
	case 1:
		gpu.DmaDirection = DmaDirFifo
	case 2:
		gpu.DmaDirection = DmaDirCPUToGP
	case 3:
		gpu.DmaDirection = DmaDirToCPU
	}
}

// gp1DisplayVRAMStart handles GP1(0x05).
func (gpu *GPU) gp1DisplayVRAMStart(val uint32) {
	gpu.DisplayVRamXStart = uint16(val & 0x3fe)
	gpu.DisplayVRamYStart = uint16((val >> 10) & 0x1ff)
}

// gp1DisplayHorizontalRange handles GP1(0x06).
func (gpu *GPU) gp1DisplayHorizontalRange(val uint32) {
	gpu.DisplayHorizStart = uint16(val & 0xfff)
	gpu.DisplayHorizEnd = uint16((val >> 12) & 0xfff)
}

// gp1DisplayVerticalRange handles GP1(0x07).
func (gpu *GPU) gp1DisplayVerticalRange(val uint32) {
	gpu.DisplayLineStart = uint16(val & 0x3ff)
	gpu.DisplayLineEnd = uint16((val >> 10) & 0x3ff)
}

// gp1DisplayMode handles GP1(0x08). Vertical resolution is clamped to
// 240 lines regardless of the written value: double-height mode is out
// of scope for this core (see SPEC_FULL.md §10).
func (gpu *GPU) gp1DisplayMode(val uint32) {
	hr1 := uint8(val & 3)
	hr2 := uint8((val >> 6) & 1)
	gpu.HRes = hResFromFields(hr1, hr2)
	gpu.VRes = VRes240Lines

	if boolFromBit(val, 3) {
		gpu.VMode = VModePAL
	} else {
		gpu.VMode = VModeNTSC
	}

	if boolFromBit(val, 4) {
		gpu.DisplayDepth = DisplayDepth24Bits
	} else {
		gpu.DisplayDepth = DisplayDepth15Bits
	}

	gpu.Interlaced = boolFromBit(val, 5)

	if boolFromBit(val, 7) {
		fatalf("gpu: unsupported reverse flag in display mode 0x%x", val)
	}
}

// Status packs the GPUSTAT register.
func (gpu *GPU) Status() uint32 {
	var r uint32
	r |= uint32(gpu.PageBaseX)
	r |= uint32(gpu.PageBaseY) << 4
	r |= uint32(gpu.SemiTransparency) << 5
	r |= uint32(gpu.TextureDepth) << 7
	r |= oneIfTrue(gpu.Dithering) << 9
	r |= oneIfTrue(gpu.DrawToDisplay) << 10
	r |= oneIfTrue(gpu.ForceSetMaskBit) << 11
	r |= oneIfTrue(gpu.PreserveMaskedPixels) << 12
	r |= uint32(gpu.Field) << 13
	// bit 14 ("reverse flag") isn't supported by real hardware either; left zero
	r |= oneIfTrue(gpu.TextureDisable) << 15
	r |= gpu.HRes.intoStatus()
	r |= uint32(gpu.VRes) << 19
	r |= uint32(gpu.VMode) << 20
	r |= uint32(gpu.DisplayDepth) << 21
	r |= oneIfTrue(gpu.Interlaced) << 22
	r |= oneIfTrue(gpu.DisplayDisabled) << 23
	r |= oneIfTrue(gpu.Interrupt) << 24

	r |= 1 << 26 // always ready to receive a command
	r |= 1 << 27 // always ready to send VRAM to the CPU
	r |= 1 << 28 // always ready to receive a DMA block

	r |= uint32(gpu.DmaDirection) << 29
	// bit 31 (odd/even scanline) isn't modeled: cycle-accurate timing is a non-goal

	var dmaRequest uint32
	switch gpu.DmaDirection {
	case DmaDirOff:
		dmaRequest = 0
	case DmaDirFifo:
		dmaRequest = 1
	case DmaDirCPUToGP:
		dmaRequest = (r >> 28) & 1
	case DmaDirToCPU:
		dmaRequest = (r >> 27) & 1
	}
	r |= dmaRequest << 25

	return r
}

// Read returns the value of the GPUREAD port. Image readback is out of
// scope; this is a placeholder.
func (gpu *GPU) Read() uint32 {
	return 0
}
