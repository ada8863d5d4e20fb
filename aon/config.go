package aon

import (
	"dahal/core"
	"dahal/crg"
	"dahal/gpio"
)

// Wakeup pins P0_01..P0_05 map to HIBERN_WKUP_MASK bits 0..4
const wakeupMaskAll = 0x1F

// SleepConfig describes a hibernation request. The zero value wakes on no
// pin, so at least one pin must be enabled before it is used.
type SleepConfig struct {
	pinMask    uint8
	ram1       bool
	ram2       bool
	ram3       bool
	remap      crg.RemapAddr
	padLatchEn bool
}

// NewSleepConfig returns an empty configuration: no wake pins, every RAM
// bank off, ROM at address zero.
func NewSleepConfig() SleepConfig { return SleepConfig{} }

// EnableWakeupPin adds pin to the wake sources. The pin must be an input,
// which is what keeps its level meaningful through hibernation.
func EnableWakeupPin[N gpio.WakeupCapable, P gpio.Pull](c SleepConfig, _ gpio.Input[N, P]) SleepConfig {
	var n N
	c.pinMask |= 1 << (n.Number() - 1)
	return c
}

// EnablePins adds raw HIBERN_WKUP_MASK bits
func (c SleepConfig) EnablePins(mask uint8) SleepConfig {
	c.pinMask |= mask
	return c
}

// SetRAMPower selects which RAM banks keep their contents
func (c SleepConfig) SetRAMPower(ram1, ram2, ram3 bool) SleepConfig {
	c.ram1, c.ram2, c.ram3 = ram1, ram2, ram3
	return c
}

// SetRemapAddr selects what is mapped at address zero on wakeup
func (c SleepConfig) SetRemapAddr(addr crg.RemapAddr) SleepConfig {
	c.remap = addr
	return c
}

// SetPadLatchEn keeps the pad states latched during sleep
func (c SleepConfig) SetPadLatchEn(on bool) SleepConfig {
	c.padLatchEn = on
	return c
}

// PinMask returns the wake pin mask
func (c SleepConfig) PinMask() uint8 { return c.pinMask }

func (c SleepConfig) anyRetained() bool { return c.ram1 || c.ram2 || c.ram3 }

func (c SleepConfig) validate() error {
	if c.pinMask == 0 {
		panic("aon: no wakeup pin enabled")
	}
	if c.pinMask&^wakeupMaskAll != 0 {
		panic("aon: wakeup mask " + core.Hex(uint32(c.pinMask)) + " names a pin that cannot wake the chip")
	}
	if (c.remap == crg.RemapRAM1 && !c.ram1) || (c.remap == crg.RemapRAM3 && !c.ram3) {
		return ErrRemapNotRetained
	}
	return nil
}

