package crg

import (
	"dahal/core"
	"dahal/device"
)

// RemapAddr selects the memory mapped at address zero after wakeup
type RemapAddr uint8

const (
	RemapROM RemapAddr = iota
	RemapOTP
	RemapRAM1
	RemapRAM3
)

// IsDebugUp reports whether a debugger is attached
func (c *Controller) IsDebugUp() bool {
	return c.regs.SYS_STAT.HasBits(device.SYS_STAT_REG_DBG_IS_UP)
}

// DisableDebug detaches the SWD interface
func (c *Controller) DisableDebug() {
	c.regs.SYS_CTRL.ClearBits(device.SYS_CTRL_REG_DEBUGGER_ENABLE_Msk)
}

// Debugger returns the DEBUGGER_ENABLE field
func (c *Controller) Debugger() uint8 {
	return uint8(core.Field(c.regs.SYS_CTRL, device.SYS_CTRL_REG_DEBUGGER_ENABLE_Msk, device.SYS_CTRL_REG_DEBUGGER_ENABLE_Pos))
}

// SetDebugger writes the DEBUGGER_ENABLE field, for instance to restore a
// value returned by Debugger.
func (c *Controller) SetDebugger(v uint8) {
	c.regs.SYS_CTRL.ReplaceBits(uint32(v)<<device.SYS_CTRL_REG_DEBUGGER_ENABLE_Pos, device.SYS_CTRL_REG_DEBUGGER_ENABLE_Msk, 0)
}

// ClocklessWakeupStat reports the clockless wakeup comparator output
func (c *Controller) ClocklessWakeupStat() bool {
	return c.regs.ANA_STATUS.HasBits(device.ANA_STATUS_REG_CLKLESS_WAKEUP_STAT)
}

// BoostSelected reports whether the chip strapped for boost mode
func (c *Controller) BoostSelected() bool {
	return c.regs.ANA_STATUS.HasBits(device.ANA_STATUS_REG_BOOST_SELECTED)
}

// SetRemapAddr selects the memory remapped to address zero
func (c *Controller) SetRemapAddr(addr RemapAddr) {
	c.regs.SYS_CTRL.ReplaceBits(uint32(addr)<<device.SYS_CTRL_REG_REMAP_ADR0_Pos, device.SYS_CTRL_REG_REMAP_ADR0_Msk, 0)
}

// RemapAddr returns the current remap selection
func (c *Controller) RemapAddr() RemapAddr {
	return RemapAddr(core.Field(c.regs.SYS_CTRL, device.SYS_CTRL_REG_REMAP_ADR0_Msk, device.SYS_CTRL_REG_REMAP_ADR0_Pos))
}

// RAM bank power control values
const (
	ramPowered  = 0
	ramRetained = 2
	ramOff      = 3
)

// SetRAMPowerCtrl powers each RAM bank off in sleep when its flag is true,
// or keeps it retained otherwise.
func (c *Controller) SetRAMPowerCtrl(ram1Off, ram2Off, ram3Off bool) {
	ctrl := func(off bool) uint32 {
		if off {
			return ramOff
		}
		return ramRetained
	}
	c.regs.RAM_PWR_CTRL.Set(ctrl(ram1Off)<<device.RAM_PWR_CTRL_REG_RAM1_PWR_CTRL_Pos |
		ctrl(ram2Off)<<device.RAM_PWR_CTRL_REG_RAM2_PWR_CTRL_Pos |
		ctrl(ram3Off)<<device.RAM_PWR_CTRL_REG_RAM3_PWR_CTRL_Pos)
}
