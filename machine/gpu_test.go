package machine

import (
	"runtime"
	"testing"
)

func TestGP0MonochromeQuad(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	handoff := NewHandOff()
	gpu := NewGPU(handoff)

	gpu.GP0(0x28800000)
	gpu.GP0(0x00000000)
	gpu.GP0(0x000000ff)
	gpu.GP0(0x00ff0000)
	gpu.GP0(0x00ff00ff)

	msg, ok := handoff.Consume()
	assert(ok)
	assert(msg.Kind == MsgQuad)
	for _, v := range msg.Quad {
		assert(v.R == 0 && v.G == 0 && v.B == 0x80)
	}
	assert(msg.Quad[0].X == 0 && msg.Quad[0].Y == 0)
	assert(msg.Quad[1].X == 255 && msg.Quad[1].Y == 0)
	assert(msg.Quad[2].X == 0 && msg.Quad[2].Y == 255)
	assert(msg.Quad[3].X == 255 && msg.Quad[3].Y == 255)

	_, ok = handoff.Consume()
	assert(!ok)
}

// TestGP0DrawingOffsetEmitsOffsetThenDraw exercises the single-slot
// rendezvous channel from the consuming side: since HandOff.Put blocks
// until taken, the two messages must be drained concurrently with the
// GP0 call that produces them.
func TestGP0DrawingOffsetEmitsOffsetThenDraw(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	handoff := NewHandOff()
	gpu := NewGPU(handoff)

	done := make(chan struct{})
	go func() {
		gpu.GP0(0xe5000010) // x=0x10, y=0
		close(done)
	}()

	msg := pollConsume(t, handoff)
	assert(msg.Kind == MsgOffset)
	assert(msg.OffsetX == 0x10)

	msg = pollConsume(t, handoff)
	assert(msg.Kind == MsgDraw)

	<-done

	_, ok := handoff.Consume()
	assert(!ok)
}

// pollConsume spins on Consume until a value is ready, since Put may not
// have landed yet when called from a separate goroutine. Each empty poll
// yields so the producing goroutine can run even with a single CPU.
func pollConsume(t *testing.T, h *HandOff) GpuMsg {
	for i := 0; i < 100000; i++ {
		if v, ok := h.Consume(); ok {
			return v
		}
		runtime.Gosched()
	}
	t.Fatal("timed out waiting for handoff value")
	return GpuMsg{}
}

func TestGPUStatusDmaDirection(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	gpu := NewGPU(NewHandOff())
	gpu.GP1(0x04000002) // DmaDirCPUToGP
	assert(gpu.DmaDirection == DmaDirCPUToGP)
	assert((gpu.Status()>>29)&3 == uint32(DmaDirCPUToGP))
}
