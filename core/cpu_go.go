//go:build !tinygo

package core

import "sync/atomic"

var irqMasked atomic.Bool

func notify(op CPUOp, arg uint32) {
	if fn := cpuObserver; fn != nil {
		fn(op, arg)
	}
}

// Nop executes a single no-op instruction
func Nop() { notify(OpNop, 0) }

// Delay busy-waits for roughly the given number of CPU cycles
func Delay(cycles uint32) { notify(OpDelay, cycles) }

// WaitForInterrupt halts the core until the next interrupt. On the host it
// returns immediately, as if a wakeup event had fired.
func WaitForInterrupt() { notify(OpWFI, 0) }

// SetSleepDeep selects deep sleep for the next WaitForInterrupt
func SetSleepDeep() { notify(OpSleepDeep, 0) }

// DisableInterrupts masks interrupts without saving the previous state
func DisableInterrupts() {
	irqMasked.Store(true)
	notify(OpDisableIRQ, 0)
}

// EnableInterrupts unmasks interrupts
func EnableInterrupts() {
	irqMasked.Store(false)
	notify(OpEnableIRQ, 0)
}

// InterruptsMasked reports whether DisableInterrupts is in effect
func InterruptsMasked() bool {
	return irqMasked.Load()
}
