// Package i2c is a blocking, polled I2C master for the DA14531.
//
// The controller is configured with a builder and started once:
//
//	bus := i2c.Constrain(p.I2C).
//		SetPins(sda, scl).
//		SetSpeed(i2c.Fast)
//	if err := bus.Start(clk); err != nil { ... }
//
// Each byte is queued and then waited for before the next one, so a
// transaction never overruns the FIFO. Errors are reported as
// *AbortError, matching ErrTransmit or ErrReceive with errors.Is.
package i2c

import (
	"errors"
	"fmt"

	"tinygo.org/x/drivers"

	"dahal/core"
	"dahal/crg"
	"dahal/device"
	"dahal/gpio"
)

// Speed is the bus speed mode
type Speed uint8

const (
	Standard Speed = 1 // 100 kHz
	Fast     Speed = 2 // 400 kHz
)

// AddressingMode selects 7- or 10-bit target addresses
type AddressingMode uint8

const (
	Bits7 AddressingMode = iota
	Bits10
)

// SCL high/low counts for a 16 MHz controller clock
const (
	ssHighCount = 0x48
	ssLowCount  = 0x4F
	fsHighCount = 0x08
	fsLowCount  = 0x17
)

var (
	ErrTransmit   = errors.New("i2c: transmit failed")
	ErrReceive    = errors.New("i2c: receive failed")
	ErrNotStarted = errors.New("i2c: controller not started")
)

// Direction of the byte that failed
type Direction uint8

const (
	Transmit Direction = iota
	Receive
)

// AbortError reports a transfer the controller aborted, with the raw
// TX_ABRT_SOURCE bits.
type AbortError struct {
	Dir    Direction
	Source uint32
}

func (e *AbortError) Error() string {
	if e.Dir == Receive {
		return "i2c: receive aborted, source " + core.Hex(e.Source)
	}
	return "i2c: transmit aborted, source " + core.Hex(e.Source)
}

// Is maps the abort onto ErrTransmit or ErrReceive
func (e *AbortError) Is(target error) bool {
	return (target == ErrTransmit && e.Dir == Transmit) ||
		(target == ErrReceive && e.Dir == Receive)
}

// NoAck reports whether the target failed to acknowledge its address or data
func (e *AbortError) NoAck() bool {
	return e.Source&(device.I2C_TX_ABRT_SOURCE_REG_7B_ADDR_NOACK|device.I2C_TX_ABRT_SOURCE_REG_TXDATA_NOACK) != 0
}

// I2C is the I2C controller
type I2C struct {
	regs    *device.I2C
	sda     gpio.AnyAlternate[gpio.I2CSDA]
	scl     gpio.AnyAlternate[gpio.I2CSCL]
	hasPins bool
	speed   Speed
	mode    AddressingMode
	started bool
}

var _ drivers.I2C = (*I2C)(nil)

// Constrain takes ownership of the I2C block. Defaults: standard speed,
// 7-bit addressing, no pins.
func Constrain(regs *device.I2C) *I2C {
	regs.Claim()
	return &I2C{regs: regs, speed: Standard, mode: Bits7}
}

// SetPins assigns the data and clock pins
func (i *I2C) SetPins(sda gpio.AnyAlternate[gpio.I2CSDA], scl gpio.AnyAlternate[gpio.I2CSCL]) *I2C {
	i.sda, i.scl, i.hasPins = sda, scl, true
	return i
}

// SetSpeed selects the bus speed
func (i *I2C) SetSpeed(s Speed) *I2C {
	if s != Standard && s != Fast {
		panic("i2c: invalid speed")
	}
	i.speed = s
	return i
}

// SetAddressingMode selects 7- or 10-bit addressing
func (i *I2C) SetAddressingMode(m AddressingMode) *I2C {
	i.mode = m
	return i
}

// Start enables the I2C clock and brings the controller up as a master.
// It panics when no pins were assigned.
func (i *I2C) Start(clk *crg.Controller) error {
	if !i.hasPins {
		panic("i2c: pins not set")
	}
	clk.EnablePeripheral(crg.I2C)

	if err := i.setEnabled(false); err != nil {
		return err
	}
	i.regs.INTR_MASK.Set(0)
	if i.speed == Fast {
		i.regs.FS_SCL_HCNT.Set(fsHighCount)
		i.regs.FS_SCL_LCNT.Set(fsLowCount)
	} else {
		i.regs.SS_SCL_HCNT.Set(ssHighCount)
		i.regs.SS_SCL_LCNT.Set(ssLowCount)
	}

	con := uint32(i.speed)<<device.I2C_CON_REG_SPEED_Pos |
		device.I2C_CON_REG_MASTER_MODE |
		device.I2C_CON_REG_SLAVE_DISABLE |
		device.I2C_CON_REG_RESTART_EN
	if i.mode == Bits10 {
		con |= device.I2C_CON_REG_10BITADDR_MASTER
	}
	i.regs.CON.Set(con)
	i.regs.RX_TL.Set(0)
	i.regs.TX_TL.Set(0)

	if err := i.setEnabled(true); err != nil {
		return err
	}
	i.started = true
	return nil
}

// Stop disables the controller and gates its clock
func (i *I2C) Stop(clk *crg.Controller) error {
	err := i.setEnabled(false)
	clk.DisablePeripheral(crg.I2C)
	i.started = false
	return err
}

func (i *I2C) setEnabled(on bool) error {
	core.WriteBit(i.regs.ENABLE, device.I2C_ENABLE_REG_CTRL_ENABLE, on)
	err := core.WaitFor(func() bool {
		return i.regs.ENABLE_STATUS.HasBits(device.I2C_ENABLE_STATUS_REG_IC_EN) == on
	})
	if err != nil {
		return fmt.Errorf("i2c: enable=%t: %w", on, err)
	}
	return nil
}

// setTarget programs the target address; TAR is only writable while the
// controller is disabled.
func (i *I2C) setTarget(addr uint16) error {
	if err := i.setEnabled(false); err != nil {
		return err
	}
	i.regs.TAR.Set(uint32(addr) & device.I2C_TAR_REG_IC_TAR_Msk)
	return i.setEnabled(true)
}
