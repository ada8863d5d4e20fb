//go:build tinygo

package timer

import (
	"runtime/interrupt"

	"dahal/nvic"
)

func init() {
	interrupt.New(int(nvic.IrqSoftwareTimer), func(interrupt.Interrupt) {
		HandleInterrupt()
	})
}
