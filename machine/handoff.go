package machine

import "sync"

// MsgKind tags the variant carried by a GpuMsg.
type MsgKind int

const (
	MsgTriangle MsgKind = iota // 3 vertices
	MsgQuad                    // 4 vertices
	MsgOffset                  // a drawing-offset change
	MsgDraw                    // barrier: commit everything emitted since the last barrier
)

// Vertex is a single draw-primitive corner: a signed screen position and
// an unsigned 8-bit-per-channel color, decoded straight out of GP0
// command words.
type Vertex struct {
	X, Y    int32
	R, G, B uint32
}

// GpuMsg is one entry in the draw-message stream the GPU front-end hands
// off to an external consumer. Exactly one of Triangle/Quad/OffsetX,Y is
// meaningful, selected by Kind.
type GpuMsg struct {
	Kind     MsgKind
	Triangle [3]Vertex
	Quad     [4]Vertex
	OffsetX  int32
	OffsetY  int32
}

// HandOff is a single-slot rendezvous channel: Put blocks its caller
// until any previously stored value has been taken by Consume. This is
// deliberately not a queue — a queue would let the emulator thread race
// ahead of the presentation thread and reorder draw messages relative to
// when they were produced.
type HandOff struct {
	mu      sync.Mutex
	notFull sync.Cond
	present bool
	value   GpuMsg
}

// NewHandOff returns an empty rendezvous channel.
func NewHandOff() *HandOff {
	h := &HandOff{}
	h.notFull = *sync.NewCond(&h.mu)
	return h
}

// Put blocks while a value is already waiting to be consumed, then
// stores v and returns.
func (h *HandOff) Put(v GpuMsg) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for h.present {
		h.notFull.Wait()
	}
	h.value = v
	h.present = true
}

// Consume is non-blocking: it takes the waiting value if there is one and
// wakes any producer blocked in Put, or reports ok=false if the slot is
// empty.
func (h *HandOff) Consume() (v GpuMsg, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.present {
		return GpuMsg{}, false
	}
	v = h.value
	h.present = false
	h.notFull.Signal()
	return v, true
}

// Drain discards any value currently waiting, without blocking, and
// wakes a producer blocked in Put. Driver.Run calls it when its step
// loop exits.
func (h *HandOff) Drain() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.present {
		h.present = false
		h.notFull.Signal()
	}
}
