//go:build tinygo

package wkup

import (
	"runtime/interrupt"

	"dahal/nvic"
)

func init() {
	interrupt.New(int(nvic.IrqWakeupQuadDec), func(interrupt.Interrupt) {
		HandleInterrupt()
	})
}
