package machine

// Exception is a Cop0 exception code, written to Cause[6:2] on entry.
// These are ordinary CPU control flow, not BusErrors: they're handled
// entirely inside the interpreter and never surface to the driver.
type Exception uint32

const (
	ExcInterrupt   Exception = 0x0
	ExcLoadAddr    Exception = 0x4
	ExcStoreAddr   Exception = 0x5
	ExcSysCall     Exception = 0x8
	ExcBreak       Exception = 0x9
	ExcIllegalOp   Exception = 0xa
	ExcCopError    Exception = 0xb
	ExcOverflow    Exception = 0xc
)
