package machine

import "fmt"

// BusKind classifies a BusError.
type BusKind int

const (
	OutOfRange   BusKind = iota // unmapped physical address or ill-formed DMA offset
	Unimplemented               // opcode or DMA path not covered by this core
	InvalidBios                 // BIOS blob did not match the required size
)

func (k BusKind) String() string {
	switch k {
	case OutOfRange:
		return "out of range"
	case Unimplemented:
		return "unimplemented"
	case InvalidBios:
		return "invalid bios"
	default:
		return "unknown"
	}
}

// BusError reports a fatal, non-recoverable condition raised by the memory
// bus, the DMA engine or the GPU front-end. It is not used for ordinary
// MIPS architectural exceptions (those are handled by Cop0 and never leave
// the CPU). Emulator-thread callers recover a panic carrying a *BusError,
// log it, and shut the core down; see machine/driver.go.
type BusError struct {
	Kind BusKind
	Msg  string
}

func (e *BusError) Error() string {
	return fmt.Sprintf("bus: %s: %s", e.Kind, e.Msg)
}

func busErrorf(kind BusKind, format string, a ...interface{}) *BusError {
	return &BusError{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// raiseBus panics with a *BusError so it can propagate to the emulator
// loop's recover() at the instruction boundary.
func raiseBus(kind BusKind, format string, a ...interface{}) {
	panic(busErrorf(kind, format, a...))
}

// fatalf is used for immediate programming errors rather than recoverable
// bus conditions (a width access a region does not support, an
// unreachable decode path). It panics with a plain string.
func fatalf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}
