//go:build tinygo

package core

import "runtime/interrupt"

// Critical runs fn with interrupts masked, restoring the previous mask
// afterwards so it is safe to call from a handler.
func Critical(fn func()) {
	state := interrupt.Disable()
	defer interrupt.Restore(state)
	fn()
}
