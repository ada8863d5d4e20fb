// Package crg is the clock and reset generator of the DA14531: peripheral
// clock gating, AMBA bus dividers and the system status bits the sleep
// sequencer depends on.
package crg

import (
	"dahal/core"
	"dahal/device"
)

// Peripheral is a clock-gated peripheral
type Peripheral uint8

const (
	QuadDec Peripheral = iota
	SPI
	UART1
	UART2
	I2C
	WakeupCtrl
	Timer
	OTPC
	numPeripherals
)

var peripheralNames = [numPeripherals]string{
	"quaddec", "spi", "uart1", "uart2", "i2c", "wkup", "timer", "otpc",
}

func (p Peripheral) String() string {
	if p < numPeripherals {
		return peripheralNames[p]
	}
	return "invalid"
}

// PeripheralClock is a raw CLK_PER_REG enable mask
type PeripheralClock uint32

const (
	ClockQuadDec PeripheralClock = device.CLK_PER_REG_QUAD_ENABLE
	ClockSPI     PeripheralClock = device.CLK_PER_REG_SPI_ENABLE
	ClockUART1   PeripheralClock = device.CLK_PER_REG_UART1_ENABLE
	ClockUART2   PeripheralClock = device.CLK_PER_REG_UART2_ENABLE
	ClockI2C     PeripheralClock = device.CLK_PER_REG_I2C_ENABLE
	ClockWakeup  PeripheralClock = device.CLK_PER_REG_WAKEUPCT_ENABLE
	ClockTimer   PeripheralClock = device.CLK_PER_REG_TMR_ENABLE
)

// TimerDiv is the Timer0/Timer2 input clock divider
type TimerDiv uint8

const (
	TimerDiv1 TimerDiv = iota
	TimerDiv2
	TimerDiv4
	TimerDiv8
)

// Controller owns CRG_TOP
type Controller struct {
	regs *device.CRGTop
}

// Constrain takes ownership of the CRG_TOP block
func Constrain(regs *device.CRGTop) *Controller {
	regs.Claim()
	return &Controller{regs: regs}
}

// gate returns the register and bit that clock p
func (c *Controller) gate(p Peripheral) (core.Register, uint32) {
	switch p {
	case QuadDec:
		return c.regs.CLK_PER, device.CLK_PER_REG_QUAD_ENABLE
	case SPI:
		return c.regs.CLK_PER, device.CLK_PER_REG_SPI_ENABLE
	case UART1:
		return c.regs.CLK_PER, device.CLK_PER_REG_UART1_ENABLE
	case UART2:
		return c.regs.CLK_PER, device.CLK_PER_REG_UART2_ENABLE
	case I2C:
		return c.regs.CLK_PER, device.CLK_PER_REG_I2C_ENABLE
	case WakeupCtrl:
		return c.regs.CLK_PER, device.CLK_PER_REG_WAKEUPCT_ENABLE
	case Timer:
		return c.regs.CLK_PER, device.CLK_PER_REG_TMR_ENABLE
	case OTPC:
		return c.regs.CLK_AMBA, device.CLK_AMBA_REG_OTP_ENABLE
	}
	panic("crg: invalid peripheral")
}

// EnablePeripheral turns on the clock of p. Enabling an enabled clock is a
// no-op. Safe to call from interrupt handlers.
func (c *Controller) EnablePeripheral(p Peripheral) {
	reg, bit := c.gate(p)
	core.Critical(func() { reg.SetBits(bit) })
}

// DisablePeripheral turns off the clock of p
func (c *Controller) DisablePeripheral(p Peripheral) {
	reg, bit := c.gate(p)
	core.Critical(func() { reg.ClearBits(bit) })
}

// IsEnabled reports whether the clock of p is on
func (c *Controller) IsEnabled(p Peripheral) bool {
	reg, bit := c.gate(p)
	return reg.HasBits(bit)
}

// SetPeripheralClockState sets or clears several CLK_PER_REG enables at once
func (c *Controller) SetPeripheralClockState(mask PeripheralClock, on bool) {
	core.Critical(func() { core.WriteBit(c.regs.CLK_PER, uint32(mask), on) })
}

// SetTimerClockDiv selects the timer input clock divider
func (c *Controller) SetTimerClockDiv(div TimerDiv) {
	core.Critical(func() {
		c.regs.CLK_PER.ReplaceBits(uint32(div)<<device.CLK_PER_REG_TMR_DIV_Pos, device.CLK_PER_REG_TMR_DIV_Msk, 0)
	})
}

// UseLowestAMBAClocks divides HCLK and PCLK by the maximum
func (c *Controller) UseLowestAMBAClocks() { c.setAMBADividers(3) }

// UseHighestAMBAClocks runs HCLK and PCLK undivided
func (c *Controller) UseHighestAMBAClocks() { c.setAMBADividers(0) }

func (c *Controller) setAMBADividers(div uint32) {
	core.Critical(func() {
		v := c.regs.CLK_AMBA.Get() &^ (device.CLK_AMBA_REG_HCLK_DIV_Msk | device.CLK_AMBA_REG_PCLK_DIV_Msk)
		v |= div<<device.CLK_AMBA_REG_HCLK_DIV_Pos | div<<device.CLK_AMBA_REG_PCLK_DIV_Pos
		c.regs.CLK_AMBA.Set(v)
	})
}
