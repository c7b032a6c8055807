package machine

import "testing"

func TestChannelControlRoundTrip(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	ch := NewChannel()
	ch.SetControl(0x01000203) // FromRam, Decrement, Request sync, Enable
	assert(ch.Direction == DirFromRam)
	assert(ch.Step == StepDecrement)
	assert(ch.Sync == SyncRequest)
	assert(ch.Enable)
	assert(!ch.Trigger)
	assert(ch.Control() == 0x01000203)
}

func TestChannelActive(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	ch := NewChannel()
	assert(!ch.Active())

	ch.Enable = true
	ch.Sync = SyncManual
	assert(!ch.Active()) // manual requires Trigger too

	ch.Trigger = true
	assert(ch.Active())

	ch.Sync = SyncRequest
	ch.Trigger = false
	assert(ch.Active()) // non-manual only needs Enable
}

func TestDMAInterruptAckClearsFlags(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	dma := NewDMA()
	dma.ChannelIrqEn = 0x7f
	dma.ChannelIrqFlags = 0x01
	dma.IrqMasterEn = true
	assert(dma.Signal())

	dma.SetInterrupt(0x01000000) // ack channel 0's flag bit
	assert(dma.ChannelIrqFlags == 0)
	assert(!dma.Signal())

	v := dma.Interrupt()
	assert((v>>24)&0x7f == 0)
	assert((v>>31)&1 == 0)
}

func TestChannelTransferSize(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	ch := NewChannel()
	ch.Sync = SyncManual
	ch.BlockSize = 4
	size, ok := ch.TransferSize()
	assert(ok)
	assert(size == 4)

	ch.Sync = SyncRequest
	ch.BlockSize = 4
	ch.BlockCount = 3
	size, ok = ch.TransferSize()
	assert(ok)
	assert(size == 12)

	ch.Sync = SyncLinkedList
	_, ok = ch.TransferSize()
	assert(!ok)
}
