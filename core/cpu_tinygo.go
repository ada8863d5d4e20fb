//go:build tinygo

package core

import (
	"device/arm"
	"runtime/interrupt"
)

// SCB_SCR SLEEPDEEP bit
const scbScrSleepDeep = 1 << 2

var irqMasked bool

// Nop executes a single no-op instruction
func Nop() { arm.Asm("nop") }

// Delay busy-waits for roughly the given number of CPU cycles. The loop body
// is a nop plus a taken branch, about four cycles on the Cortex-M0+.
func Delay(cycles uint32) {
	for i := cycles / 4; i > 0; i-- {
		arm.Asm("nop")
	}
}

// WaitForInterrupt halts the core until the next interrupt
func WaitForInterrupt() { arm.Asm("wfi") }

// SetSleepDeep selects deep sleep for the next WaitForInterrupt
func SetSleepDeep() {
	arm.SCB.SCR.SetBits(scbScrSleepDeep)
}

// DisableInterrupts masks interrupts without saving the previous state
func DisableInterrupts() {
	interrupt.Disable()
	irqMasked = true
}

// EnableInterrupts unmasks interrupts
func EnableInterrupts() {
	irqMasked = false
	interrupt.Restore(0)
}

// InterruptsMasked reports whether DisableInterrupts is in effect
func InterruptsMasked() bool {
	return irqMasked
}
