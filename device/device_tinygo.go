//go:build tinygo

package device

import (
	"runtime/volatile"
	"unsafe"

	"dahal/core"
)

// reg16 adapts a 16-bit peripheral register to core.Register
type reg16 struct{ r *volatile.Register16 }

func (x reg16) Get() uint32           { return uint32(x.r.Get()) }
func (x reg16) Set(v uint32)          { x.r.Set(uint16(v)) }
func (x reg16) SetBits(m uint32)      { x.r.SetBits(uint16(m)) }
func (x reg16) ClearBits(m uint32)    { x.r.ClearBits(uint16(m)) }
func (x reg16) HasBits(m uint32) bool { return x.r.HasBits(uint16(m)) }
func (x reg16) ReplaceBits(v, m uint32, pos uint8) {
	x.r.ReplaceBits(uint16(v), uint16(m), pos)
}

// newPeripherals maps every register at its hardware address
func newPeripherals() *Peripherals {
	return build(func(info RegisterInfo) core.Register {
		if info.Width == 32 {
			return (*volatile.Register32)(unsafe.Pointer(uintptr(info.Addr)))
		}
		return reg16{(*volatile.Register16)(unsafe.Pointer(uintptr(info.Addr)))}
	})
}
