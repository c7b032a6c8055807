package machine

import (
	"log"
	"sync/atomic"
)

// Driver wires a CPU, Bus and the device set it owns into a runnable
// machine, and runs the interpreter until told to stop. The Bus and all
// device state are private to whatever goroutine calls Run; HandOff is
// the only thing safe to touch from elsewhere.
type Driver struct {
	CPU      *CPU
	Bus      *Bus
	HandOff  *HandOff
	Debugger *Debugger

	shutdown atomic.Bool
}

// NewDriver allocates a full machine around bios and returns it ready
// to Run.
func NewDriver(bios *BIOS) *Driver {
	ram := NewRAM()
	scratchpad := NewScratchpad()
	dma := NewDMA()
	handoff := NewHandOff()
	gpu := NewGPU(handoff)
	bus := NewBus(ram, bios, scratchpad, dma, gpu)
	cpu := NewCPU(bus)

	debugger := NewDebugger()
	cpu.Debugger = debugger
	bus.Debugger = debugger

	return &Driver{CPU: cpu, Bus: bus, HandOff: handoff, Debugger: debugger}
}

// RequestShutdown asks Run to stop at the next instruction boundary. Safe
// to call from any goroutine.
func (d *Driver) RequestShutdown() {
	d.shutdown.Store(true)
}

func (d *Driver) shuttingDown() bool {
	return d.shutdown.Load()
}

// Run steps the CPU until RequestShutdown is observed or a BusError
// escapes an instruction. On exit it drains HandOff, discarding any
// message still waiting in the slot.
func (d *Driver) Run() {
	for !d.shuttingDown() {
		if !d.step() {
			break
		}
	}
	d.HandOff.Drain()
}

// step executes exactly one instruction, recovering a *BusError into a
// logged shutdown. Any other panic (a fatalf from an unimplemented or
// unreachable path) is not recovered: it propagates and crashes the
// process, since those mark programming errors rather than recoverable
// runtime conditions.
func (d *Driver) step() (ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if busErr, isBusErr := r.(*BusError); isBusErr {
			log.Printf("driver: %v, shutting down", busErr)
			d.RequestShutdown()
			ok = false
			return
		}
		panic(r)
	}()

	d.CPU.Step()
	return true
}
