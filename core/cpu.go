package core

// CPUOp identifies a CPU intrinsic. On the host build every intrinsic is
// reported to the installed observer so tests can check sequencing.
type CPUOp uint8

const (
	OpNop CPUOp = iota + 1
	OpDelay
	OpWFI
	OpSleepDeep
	OpDisableIRQ
	OpEnableIRQ
)

func (op CPUOp) String() string {
	switch op {
	case OpNop:
		return "nop"
	case OpDelay:
		return "delay"
	case OpWFI:
		return "wfi"
	case OpSleepDeep:
		return "sleepdeep"
	case OpDisableIRQ:
		return "cpsid"
	case OpEnableIRQ:
		return "cpsie"
	}
	return "unknown"
}

// CPUObserver receives intrinsics executed on the host build. arg carries the
// cycle count for OpDelay and is zero otherwise.
type CPUObserver func(op CPUOp, arg uint32)

var cpuObserver CPUObserver

// SetCPUObserver installs the intrinsic observer (nil removes it). It has no
// effect on hardware builds.
func SetCPUObserver(fn CPUObserver) {
	cpuObserver = fn
}
