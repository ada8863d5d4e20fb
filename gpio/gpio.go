// Package gpio drives port 0 of the DA14531 with type-state pin handles.
//
// Every pin starts out Disconnected. A transition such as IntoOutput
// consumes the handle it is called on and returns a handle whose type
// reflects the new mode, so reading an output or driving an input does not
// compile. Handles are plain values; using one after it has been consumed
// panics.
//
// Handles are not safe for concurrent use.
package gpio

import (
	"strconv"

	"dahal/device"
)

// Port identifies a GPIO port. The DA14531 only has port 0.
type Port uint8

const Port0 Port = 0

// PinState is the logic level of a pin.
type PinState uint8

const (
	Low PinState = iota
	High
)

func (s PinState) String() string {
	if s == High {
		return "high"
	}
	return "low"
}

// ID is the identity of a pin.
type ID struct {
	Port   Port
	Number uint8
}

func (id ID) String() string {
	n := strconv.Itoa(int(id.Number))
	if id.Number < 10 {
		n = "0" + n
	}
	return "P" + strconv.Itoa(int(id.Port)) + "_" + n
}

// Mode register PUPD encoding.
const (
	pupdInput    = 0b00
	pupdPullUp   = 0b01
	pupdPullDown = 0b10
	pupdOutput   = 0b11

	pidGPIO = 0
)

// bank is the shared state behind the handles of one port.
type bank struct {
	regs *device.GPIO
	seq  uint32
	gen  [12]uint32
}

func (b *bank) check(n uint8, gen uint32) {
	if b.gen[n] != gen {
		panic("gpio: stale handle for " + ID{Port0, n}.String())
	}
}

// consume invalidates the current handle of pin n and returns the
// generation of its successor.
func (b *bank) consume(n uint8, gen uint32) uint32 {
	b.check(n, gen)
	b.seq++
	b.gen[n] = b.seq
	return b.seq
}

func (b *bank) setMode(n uint8, pupd, pid uint32) {
	b.regs.MODE[n].Set(pupd<<device.P0_MODE_REG_PUPD_Pos | pid&device.P0_MODE_REG_PID_Msk)
}

func (b *bank) drive(n uint8, s PinState) {
	if s == High {
		b.regs.SET_DATA.Set(1 << n)
	} else {
		b.regs.RESET_DATA.Set(1 << n)
	}
}

func (b *bank) level(n uint8) PinState {
	if b.regs.DATA.HasBits(1 << n) {
		return High
	}
	return Low
}

func (b *bank) output(n uint8, initial PinState) {
	b.drive(n, initial)
	b.setMode(n, pupdOutput, pidGPIO)
}

func (b *bank) disconnect(n uint8) {
	b.setMode(n, pupdPullDown, pidGPIO)
}

// Parts holds every pin of port 0 in the Disconnected mode.
type Parts struct {
	P0_00 Disconnected[P0_00]
	P0_01 Disconnected[P0_01]
	P0_02 Disconnected[P0_02]
	P0_03 Disconnected[P0_03]
	P0_04 Disconnected[P0_04]
	P0_05 Disconnected[P0_05]
	P0_06 Disconnected[P0_06]
	P0_07 Disconnected[P0_07]
	P0_08 Disconnected[P0_08]
	P0_09 Disconnected[P0_09]
	P0_10 Disconnected[P0_10]
	P0_11 Disconnected[P0_11]
}

// Split takes ownership of the GPIO block and hands out its pins.
func Split(regs *device.GPIO) *Parts {
	regs.Claim()
	b := &bank{regs: regs}
	return &Parts{
		P0_00: Disconnected[P0_00]{pin[P0_00]{b: b}},
		P0_01: Disconnected[P0_01]{pin[P0_01]{b: b}},
		P0_02: Disconnected[P0_02]{pin[P0_02]{b: b}},
		P0_03: Disconnected[P0_03]{pin[P0_03]{b: b}},
		P0_04: Disconnected[P0_04]{pin[P0_04]{b: b}},
		P0_05: Disconnected[P0_05]{pin[P0_05]{b: b}},
		P0_06: Disconnected[P0_06]{pin[P0_06]{b: b}},
		P0_07: Disconnected[P0_07]{pin[P0_07]{b: b}},
		P0_08: Disconnected[P0_08]{pin[P0_08]{b: b}},
		P0_09: Disconnected[P0_09]{pin[P0_09]{b: b}},
		P0_10: Disconnected[P0_10]{pin[P0_10]{b: b}},
		P0_11: Disconnected[P0_11]{pin[P0_11]{b: b}},
	}
}
