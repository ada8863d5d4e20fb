package timer

import (
	"dahal/core"
	"dahal/crg"
	"dahal/device"
	"dahal/x/mathx"
)

// Channel is one of the Timer2 outputs.
type Channel uint8

const (
	PWM2 Channel = iota
	PWM3
	PWM4
	numChannels
)

const maxDivider = 0x3FFF

// PWMConfig of the triple PWM.
type PWMConfig struct {
	ClockSource ClockSource
	FrequencyHz uint32
}

// TriplePWM owns Timer2.
type TriplePWM struct {
	regs    *device.Timer2
	divider uint32
}

// ConstrainPWM takes ownership of Timer2.
func ConstrainPWM(regs *device.Timer2) *TriplePWM {
	regs.Claim()
	return &TriplePWM{regs: regs}
}

// Init gates the timer clock on and programs the PWM period. It panics on
// a zero frequency or one the source clock cannot produce.
func (p *TriplePWM) Init(c *crg.Controller, cfg PWMConfig) {
	src := uint32(core.LPClockHz)
	if cfg.ClockSource == ClockSys {
		src = core.SysClockHz
	}
	if cfg.FrequencyHz == 0 || cfg.FrequencyHz > src {
		panic("timer: pwm frequency out of range")
	}
	div := src/cfg.FrequencyHz - 1
	if div > maxDivider {
		panic("timer: pwm frequency too low for clock source")
	}

	c.EnablePeripheral(crg.Timer)
	core.WriteBit(p.regs.CTRL, device.TRIPLE_PWM_CTRL_REG_TRIPLE_PWM_CLK_SEL, cfg.ClockSource == ClockSys)
	p.regs.FREQUENCY.Set(div)
	p.divider = div
}

// Divider returns the programmed period in source clock ticks minus one.
func (p *TriplePWM) Divider() uint32 { return p.divider }

func (p *TriplePWM) check(ch Channel) {
	if ch >= numChannels {
		panic("timer: invalid pwm channel")
	}
}

// SetChannel sets the tick at which ch goes high and the tick at which it
// goes low again. Values beyond the period are clamped.
func (p *TriplePWM) SetChannel(ch Channel, start, end uint32) {
	p.check(ch)
	p.regs.START[ch].Set(mathx.Clamp(start, 0, p.divider))
	p.regs.END[ch].Set(mathx.Clamp(end, 0, p.divider))
}

// SetDutyCycle drives ch high for duty/max of the period.
func (p *TriplePWM) SetDutyCycle(ch Channel, duty, max uint32) {
	p.SetChannel(ch, 0, mathx.Scale(duty, max, p.divider))
}

// Enable starts all three channels. Disable stops them.
func (p *TriplePWM) Enable()  { p.regs.CTRL.SetBits(device.TRIPLE_PWM_CTRL_REG_TRIPLE_PWM_ENABLE) }
func (p *TriplePWM) Disable() { p.regs.CTRL.ClearBits(device.TRIPLE_PWM_CTRL_REG_TRIPLE_PWM_ENABLE) }

// Pause holds all outputs while on.
func (p *TriplePWM) Pause(on bool) {
	core.WriteBit(p.regs.CTRL, device.TRIPLE_PWM_CTRL_REG_SW_PAUSE_EN, on)
}
