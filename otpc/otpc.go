// Package otpc controls the OTP memory controller mode
package otpc

import (
	"dahal/crg"
	"dahal/device"
)

// Mode of the OTP controller
type Mode uint8

const (
	DeepStandby Mode = iota
	Standby
	Read
	Program
	ProgramVerify
	InitialRead
	DMARead
)

var modeNames = [...]string{"deep-standby", "standby", "read", "program", "program-verify", "initial-read", "dma-read"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "invalid"
}

// Controller owns the OTPC block
type Controller struct {
	regs *device.OTPC
}

// Constrain takes ownership of the OTP controller
func Constrain(regs *device.OTPC) *Controller {
	regs.Claim()
	return &Controller{regs: regs}
}

// Enable gates the OTPC clock on and switches to mode
func (c *Controller) Enable(clk *crg.Controller, mode Mode) {
	if mode > DMARead {
		panic("otpc: invalid mode")
	}
	clk.EnablePeripheral(crg.OTPC)
	c.regs.MODE.Set(uint32(mode) << device.OTPC_MODE_REG_OTPC_MODE_MODE_Pos)
}

// Disable returns to deep standby and gates the clock off
func (c *Controller) Disable(clk *crg.Controller) {
	c.regs.MODE.Set(uint32(DeepStandby))
	clk.DisablePeripheral(crg.OTPC)
}

// Mode returns the current controller mode
func (c *Controller) Mode() Mode {
	return Mode(c.regs.MODE.Get() & device.OTPC_MODE_REG_OTPC_MODE_MODE_Msk)
}
