// Package nvic wraps the Cortex-M0+ nested vectored interrupt controller.
package nvic

import "dahal/device"

// Irq is a DA14531 interrupt number.
type Irq uint8

const (
	IrqUART          Irq = 2
	IrqUART2         Irq = 3
	IrqI2C           Irq = 4
	IrqADC           Irq = 6
	IrqGPIO0         Irq = 10
	IrqGPIO1         Irq = 11
	IrqGPIO2         Irq = 12
	IrqGPIO3         Irq = 13
	IrqGPIO4         Irq = 14
	IrqSoftwareTimer Irq = 15
	IrqWakeupQuadDec Irq = 16

	NumIrqs = 32
)

// Priority bits implemented by the core; values are left-aligned in the
// priority byte.
const priorityBits = 2

// MaxPriority is the lowest urgency that can be configured.
const MaxPriority = 1<<priorityBits - 1

// Controller owns the NVIC.
type Controller struct {
	regs *device.NVIC
}

// Constrain takes ownership of the NVIC.
func Constrain(regs *device.NVIC) *Controller {
	regs.Claim()
	return &Controller{regs: regs}
}

func (irq Irq) bit() uint32 {
	if irq >= NumIrqs {
		panic("nvic: interrupt number out of range")
	}
	return 1 << irq
}

// SetPriority sets the priority of irq, 0 being the most urgent.
func (c *Controller) SetPriority(irq Irq, prio uint8) {
	_ = irq.bit()
	if prio > MaxPriority {
		panic("nvic: priority out of range")
	}
	shift := uint8(irq%4)*8 + (8 - priorityBits)
	c.regs.IPR[irq/4].ReplaceBits(uint32(prio), MaxPriority, shift)
}

// Priority returns the configured priority of irq.
func (c *Controller) Priority(irq Irq) uint8 {
	_ = irq.bit()
	shift := uint8(irq%4)*8 + (8 - priorityBits)
	return uint8(c.regs.IPR[irq/4].Get()>>shift) & MaxPriority
}

// EnableIRQ unmasks irq.
func (c *Controller) EnableIRQ(irq Irq) {
	c.regs.ISER.Set(irq.bit())
}

// DisableIRQ masks irq.
func (c *Controller) DisableIRQ(irq Irq) {
	c.regs.ICER.Set(irq.bit())
}

// IsEnabled reports whether irq is unmasked.
func (c *Controller) IsEnabled(irq Irq) bool {
	return c.regs.ISER.HasBits(irq.bit())
}

// IsPending reports whether irq is pending.
func (c *Controller) IsPending(irq Irq) bool {
	return c.regs.ISPR.HasBits(irq.bit())
}

// Pend marks irq pending from software.
func (c *Controller) Pend(irq Irq) {
	c.regs.ISPR.Set(irq.bit())
}

// ClearPendingInterrupts clears every pending interrupt.
func (c *Controller) ClearPendingInterrupts() {
	c.regs.ICPR.Set(0xFFFFFFFF)
}
