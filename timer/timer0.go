// Package timer drives Timer0 (the software timer with its PWM0/PWM1
// outputs) and Timer2, the triple PWM generator.
package timer

import (
	"dahal/crg"
	"dahal/device"
	"dahal/irq"
	"dahal/nvic"
)

// ClockSource is the timer input clock.
type ClockSource uint8

const (
	ClockLP  ClockSource = iota // 32.768 kHz low power clock
	ClockSys                    // divided system clock
)

// Priority of the software timer interrupt.
const swTimPriority = 2

var swTimHandler irq.Slot

// Config of Timer0.
type Config struct {
	ClockSource ClockSource
	PWMMode     bool
	Div10       bool // further divide the selected clock by 10
}

// Timer0 owns the TIMER0 block.
type Timer0 struct {
	regs *device.Timer0
}

// Constrain takes ownership of TIMER0.
func Constrain(regs *device.Timer0) *Timer0 {
	regs.Claim()
	return &Timer0{regs: regs}
}

// Init applies cfg and sets the software timer interrupt priority.
func (t *Timer0) Init(nv *nvic.Controller, cfg Config) {
	ctrl := t.regs.CTRL.Get() &^ (device.TIMER0_CTRL_REG_TIM0_CLK_SEL |
		device.TIMER0_CTRL_REG_PWM_MODE |
		device.TIMER0_CTRL_REG_TIM0_CLK_DIV)
	if cfg.ClockSource == ClockSys {
		ctrl |= device.TIMER0_CTRL_REG_TIM0_CLK_SEL
	}
	if cfg.PWMMode {
		ctrl |= device.TIMER0_CTRL_REG_PWM_MODE
	}
	if cfg.Div10 {
		ctrl |= device.TIMER0_CTRL_REG_TIM0_CLK_DIV
	}
	t.regs.CTRL.Set(ctrl)
	nv.SetPriority(nvic.IrqSoftwareTimer, swTimPriority)
}

// Start runs the counter. Stop halts it and keeps the reload values.
func (t *Timer0) Start() { t.regs.CTRL.SetBits(device.TIMER0_CTRL_REG_TIM0_CTRL) }
func (t *Timer0) Stop()  { t.regs.CTRL.ClearBits(device.TIMER0_CTRL_REG_TIM0_CTRL) }

// Running reports whether the counter is enabled.
func (t *Timer0) Running() bool {
	return t.regs.CTRL.HasBits(device.TIMER0_CTRL_REG_TIM0_CTRL)
}

// EnableClock gates the shared timer clock on.
func (t *Timer0) EnableClock(c *crg.Controller) {
	c.EnablePeripheral(crg.Timer)
}

// SetClockDiv selects the timer input divider in CLK_PER_REG.
func (t *Timer0) SetClockDiv(c *crg.Controller, div crg.TimerDiv) {
	c.SetTimerClockDiv(div)
}

// SetPWM programs the on time and the high and low reload values.
func (t *Timer0) SetPWM(on, high, low uint16) {
	t.SetPWMOn(on)
	t.SetPWMHigh(high)
	t.SetPWMLow(low)
}

// SetPWMOn, SetPWMHigh and SetPWMLow write one reload register each.
func (t *Timer0) SetPWMOn(v uint16)   { t.regs.ON.Set(uint32(v)) }
func (t *Timer0) SetPWMHigh(v uint16) { t.regs.RELOAD_M.Set(uint32(v)) }
func (t *Timer0) SetPWMLow(v uint16)  { t.regs.RELOAD_N.Set(uint32(v)) }

// RegisterHandler installs the software timer callback. It can only be
// set once.
func (t *Timer0) RegisterHandler(fn func()) error {
	return swTimHandler.Register(fn)
}

// EnableIRQ unmasks the software timer interrupt.
func (t *Timer0) EnableIRQ(nv *nvic.Controller) {
	nv.EnableIRQ(nvic.IrqSoftwareTimer)
}

// DisableIRQ masks the software timer interrupt.
func (t *Timer0) DisableIRQ(nv *nvic.Controller) {
	nv.DisableIRQ(nvic.IrqSoftwareTimer)
}

// HandleInterrupt is the software timer vector body.
func HandleInterrupt() {
	swTimHandler.Invoke()
}
