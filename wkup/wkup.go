// Package wkup drives the wakeup controller, which counts debounced edges
// on selected GPIOs and raises the WKUP_QUADEC interrupt.
package wkup

import (
	"sync/atomic"

	"dahal/crg"
	"dahal/device"
	"dahal/gpio"
	"dahal/irq"
	"dahal/nvic"
)

// Polarity of the edge that counts as an event
type Polarity uint8

const (
	ActiveLow Polarity = iota
	ActiveHigh
)

const irqPriority = 2

var (
	handler irq.Slot
	active  atomic.Pointer[device.Wkup]
)

// Config of one wakeup source
type Config struct {
	Polarity Polarity
	Events   uint8 // events counted before the interrupt fires, at least 1
	Debounce uint8 // debounce time in ms, 0..63
}

// Controller owns the WKUP block
type Controller struct {
	regs *device.Wkup
}

// Constrain takes ownership of the wakeup controller
func Constrain(regs *device.Wkup) *Controller {
	regs.Claim()
	active.Store(regs)
	return &Controller{regs: regs}
}

// EnableIRQ arms the controller on pin and enables its interrupt
func (c *Controller) EnableIRQ(clk *crg.Controller, nv *nvic.Controller, pin gpio.Readable, cfg Config) {
	if cfg.Events == 0 {
		panic("wkup: event count must be at least 1")
	}
	bit := uint32(1) << pin.ID().Number

	clk.EnablePeripheral(crg.WakeupCtrl)

	c.regs.IRQ_STATUS.SetBits(device.WKUP_IRQ_STATUS_REG_WKUP_CNTR_RST)
	deb := uint32(cfg.Debounce) << device.WKUP_CTRL_REG_WKUP_DEB_VALUE_Pos & device.WKUP_CTRL_REG_WKUP_DEB_VALUE_Msk
	c.regs.CTRL.ReplaceBits(deb, device.WKUP_CTRL_REG_WKUP_DEB_VALUE_Msk, 0)
	if cfg.Polarity == ActiveHigh {
		c.regs.POL_GPIO.SetBits(bit)
	} else {
		c.regs.POL_GPIO.ClearBits(bit)
	}
	c.regs.COMPARE.Set(uint32(cfg.Events - 1))
	c.regs.CTRL.SetBits(device.WKUP_CTRL_REG_WKUP_ENABLE_IRQ)
	c.regs.SELECT_GPIO.SetBits(bit)

	nv.SetPriority(nvic.IrqWakeupQuadDec, irqPriority)
	nv.EnableIRQ(nvic.IrqWakeupQuadDec)
}

// RegisterHandler installs the wakeup callback. It can only be set once.
func (c *Controller) RegisterHandler(fn func()) error {
	return handler.Register(fn)
}

// HandleInterrupt is the WKUP_QUADEC vector body: it acknowledges the
// event, disables further wakeup interrupts and runs the callback.
func HandleInterrupt() {
	if regs := active.Load(); regs != nil {
		regs.IRQ_STATUS.SetBits(device.WKUP_IRQ_STATUS_REG_WKUP_IRQ_STATUS)
		regs.CTRL.ClearBits(device.WKUP_CTRL_REG_WKUP_ENABLE_IRQ)
	}
	handler.Invoke()
}
