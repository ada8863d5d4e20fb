// Package uart is a blocking, polled driver for the first DA14531 UART.
// It backs the register monitor and the debug writer on the target.
package uart

import (
	"errors"
	"fmt"
	"io"

	"dahal/core"
	"dahal/crg"
	"dahal/device"
	"dahal/gpio"
	"dahal/x/mathx"
)

// ErrNotConfigured is returned by transfers before Configure succeeded
var ErrNotConfigured = errors.New("uart: not configured")

// UART is the first UART, 8N1 with FIFOs enabled
type UART struct {
	regs       *device.UART
	tx         gpio.AnyAlternate[gpio.UARTTX]
	rx         gpio.AnyAlternate[gpio.UARTRX]
	hasPins    bool
	configured bool
	baud       uint32
	lost       uint32
}

var _ io.ReadWriter = (*UART)(nil)

// Constrain takes ownership of the UART block
func Constrain(regs *device.UART) *UART {
	regs.Claim()
	return &UART{regs: regs}
}

// SetPins assigns the transmit and receive pins
func (u *UART) SetPins(tx gpio.AnyAlternate[gpio.UARTTX], rx gpio.AnyAlternate[gpio.UARTRX]) *UART {
	u.tx, u.rx, u.hasPins = tx, rx, true
	return u
}

// Divisor splits the 16x oversampled divisor for baud into the DLL, DLH
// and fractional DLF fields.
func Divisor(baud uint32) (dll, dlh, dlf uint32) {
	d16 := mathx.RoundDiv(uint32(core.SysClockHz), baud)
	return (d16 >> 4) & 0xFF, (d16 >> 12) & 0xFF, d16 & device.UART_DLF_REG_DLF_Msk
}

// Configure gates the UART clock on and programs baud, 8N1 framing and
// the FIFOs. It panics when no pins were assigned or baud is zero.
func (u *UART) Configure(clk *crg.Controller, baud uint32) error {
	if !u.hasPins {
		panic("uart: pins not set")
	}
	if baud == 0 || baud > core.SysClockHz/16 {
		panic("uart: invalid baud rate " + core.Itoa(int(baud)))
	}
	clk.EnablePeripheral(crg.UART1)

	// The divisor latch is only writable while the line is idle.
	if err := core.WaitFor(func() bool { return !u.regs.USR.HasBits(device.UART_USR_REG_BUSY) }); err != nil {
		return fmt.Errorf("uart: waiting for idle line: %w", err)
	}
	dll, dlh, dlf := Divisor(baud)
	u.regs.LCR.Set(device.UART_LCR_REG_DLAB)
	u.regs.RBR_THR_DLL.Set(dll)
	u.regs.IER_DLH.Set(dlh)
	u.regs.DLF.Set(dlf)
	u.regs.LCR.Set(3 << device.UART_LCR_REG_DLS_Pos)
	u.regs.IIR_FCR.Set(device.UART_IIR_FCR_REG_FIFOE | device.UART_IIR_FCR_REG_RFIFOR | device.UART_IIR_FCR_REG_XFIFOR)
	u.regs.IER_DLH.Set(0)

	u.baud = baud
	u.configured = true
	return nil
}

// Baud returns the configured baud rate, zero before Configure
func (u *UART) Baud() uint32 {
	return u.baud
}

// WriteByte waits for room in the transmitter and queues b
func (u *UART) WriteByte(b byte) error {
	if !u.configured {
		return ErrNotConfigured
	}
	if err := core.WaitFor(func() bool { return u.regs.LSR.HasBits(device.UART_LSR_REG_THRE) }); err != nil {
		return fmt.Errorf("uart: transmit: %w", err)
	}
	u.regs.RBR_THR_DLL.Set(uint32(b))
	return nil
}

// Write sends p byte by byte
func (u *UART) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := u.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// ReadByte waits for one received byte
func (u *UART) ReadByte() (byte, error) {
	if !u.configured {
		return 0, ErrNotConfigured
	}
	if err := core.WaitFor(u.Buffered); err != nil {
		return 0, fmt.Errorf("uart: receive: %w", err)
	}
	return byte(u.regs.RBR_THR_DLL.Get()), nil
}

// Read blocks for the first byte and then drains whatever else is
// already buffered, up to len(p).
func (u *UART) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := u.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b
	n := 1
	for n < len(p) && u.Buffered() {
		p[n] = byte(u.regs.RBR_THR_DLL.Get())
		n++
	}
	return n, nil
}

// Buffered reports whether received data is waiting
func (u *UART) Buffered() bool {
	return u.regs.LSR.HasBits(device.UART_LSR_REG_DR)
}

// Overrun reports and clears the receiver overrun flag; LSR clears on read
func (u *UART) Overrun() bool {
	return u.regs.LSR.HasBits(device.UART_LSR_REG_OE)
}

// Flush waits until the transmitter is completely empty
func (u *UART) Flush() error {
	if !u.configured {
		return ErrNotConfigured
	}
	if err := core.WaitFor(func() bool { return u.regs.LSR.HasBits(device.UART_LSR_REG_TEMT) }); err != nil {
		return fmt.Errorf("uart: flush: %w", err)
	}
	return nil
}

// DebugWriter adapts the UART to core.SetDebugWriter, one line per message.
// A line that cannot be sent is abandoned and counted by LostDebugLines.
func (u *UART) DebugWriter() core.DebugWriter {
	return func(s string) {
		if _, err := u.Write([]byte(s)); err != nil {
			u.lost++
			return
		}
		if _, err := u.Write([]byte("\r\n")); err != nil {
			u.lost++
		}
	}
}

// LostDebugLines returns how many debug lines the transmitter refused
func (u *UART) LostDebugLines() uint32 {
	return u.lost
}
