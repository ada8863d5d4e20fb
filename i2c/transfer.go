package i2c

import (
	"fmt"

	"dahal/core"
	"dahal/device"
)

// Tx writes w then reads into r in one transaction addressed to addr. STOP
// is only issued after the last byte; a read following a write starts with
// a repeated START.
func (i *I2C) Tx(addr uint16, w, r []byte) error {
	if !i.started {
		return ErrNotStarted
	}
	if len(w) == 0 && len(r) == 0 {
		return nil
	}
	if err := i.setTarget(addr); err != nil {
		return err
	}

	for k, b := range w {
		var flags uint32
		if k == len(w)-1 && len(r) == 0 {
			flags |= device.I2C_DATA_CMD_REG_STOP
		}
		if err := i.writeByte(b, flags); err != nil {
			return err
		}
	}
	for k := range r {
		var flags uint32
		if k == 0 && len(w) > 0 {
			flags |= device.I2C_DATA_CMD_REG_RESTART
		}
		if k == len(r)-1 {
			flags |= device.I2C_DATA_CMD_REG_STOP
		}
		b, err := i.readByte(flags)
		if err != nil {
			return err
		}
		r[k] = b
	}
	return nil
}

// Write sends buf to addr
func (i *I2C) Write(addr uint16, buf []byte) error {
	return i.Tx(addr, buf, nil)
}

// Read fills buf from addr
func (i *I2C) Read(addr uint16, buf []byte) error {
	return i.Tx(addr, nil, buf)
}

// WriteRead sends w to addr then reads into r
func (i *I2C) WriteRead(addr uint16, w, r []byte) error {
	return i.Tx(addr, w, r)
}

// ReadRegister reads len(buf) bytes starting at register reg
func (i *I2C) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return i.Tx(uint16(addr), []byte{reg}, buf)
}

// WriteRegister writes buf starting at register reg
func (i *I2C) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	w := make([]byte, 0, len(buf)+1)
	w = append(w, reg)
	w = append(w, buf...)
	return i.Tx(uint16(addr), w, nil)
}

func (i *I2C) writeByte(b byte, flags uint32) error {
	core.Critical(func() {
		i.regs.DATA_CMD.Set(uint32(b) | flags)
	})
	if err := i.waitIdle(); err != nil {
		return err
	}
	return i.checkAbort(Transmit)
}

func (i *I2C) readByte(flags uint32) (byte, error) {
	core.Critical(func() {
		i.regs.DATA_CMD.Set(device.I2C_DATA_CMD_REG_CMD | flags)
	})
	err := core.WaitFor(func() bool {
		return i.regs.RXFLR.Get() != 0 || i.regs.TX_ABRT_SOURCE.Get() != 0
	})
	if err != nil {
		return 0, fmt.Errorf("i2c: waiting for rx data: %w", err)
	}
	if err := i.checkAbort(Receive); err != nil {
		return 0, err
	}
	b := byte(i.regs.DATA_CMD.Get() & device.I2C_DATA_CMD_REG_DAT_Msk)
	if err := i.waitIdle(); err != nil {
		return 0, err
	}
	return b, nil
}

// waitIdle waits for the TX FIFO to drain and the master to go idle
func (i *I2C) waitIdle() error {
	err := core.WaitFor(func() bool {
		return i.regs.STATUS.HasBits(device.I2C_STATUS_REG_TFE)
	})
	if err != nil {
		return fmt.Errorf("i2c: waiting for tx fifo: %w", err)
	}
	err = core.WaitFor(func() bool {
		return !i.regs.STATUS.HasBits(device.I2C_STATUS_REG_MST_ACTIVITY)
	})
	if err != nil {
		return fmt.Errorf("i2c: waiting for bus idle: %w", err)
	}
	return nil
}

// checkAbort reports and acknowledges an aborted transfer
func (i *I2C) checkAbort(dir Direction) error {
	src := i.regs.TX_ABRT_SOURCE.Get()
	if src == 0 {
		return nil
	}
	i.regs.CLR_TX_ABRT.Get()
	err := &AbortError{Dir: dir, Source: src}
	core.DebugPrintln(err.Error())
	return err
}
