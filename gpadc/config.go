package gpadc

import "dahal/gpio"

// Channel is a GP_ADC_SEL input
type Channel uint8

// Internal positive inputs
const (
	Temperature Channel = 4
	VBatHigh    Channel = 5
	VBatLow     Channel = 6
	VDDD        Channel = 7
)

// PinChannel returns the ADC input wired to pin N. Pin channels can be used
// as positive or negative input.
func PinChannel[N gpio.ADCCapable](_ gpio.Alternate[N, gpio.ADC]) Channel {
	var n N
	switch n.Number() {
	case 1:
		return 0
	case 2:
		return 1
	case 6:
		return 2
	}
	return 3
}

// Attenuation of the input range
type Attenuation uint8

const (
	AttnNone Attenuation = iota
	AttnX2
	AttnX3
	AttnX4
)

// Averaging is the number of conversions averaged per sample
type Averaging uint8

const (
	SamplesX1 Averaging = iota
	SamplesX2
	SamplesX4
	SamplesX8
	SamplesX16
	SamplesX32
	SamplesX64
	SamplesX128
)

// SampleTime in multiples of 8 ADC clock cycles
type SampleTime uint8

const (
	Cycles1x8 SampleTime = iota
	Cycles2x8
	Cycles3x8
	Cycles4x8
	Cycles5x8
	Cycles6x8
	Cycles7x8
	Cycles8x8
	Cycles9x8
	Cycles10x8
	Cycles11x8
	Cycles12x8
	Cycles13x8
	Cycles14x8
	Cycles15x8
)

// Config describes one ADC setup. The zero value is single-ended, single
// shot, on channel 0 with no chopping, shifting or attenuation.
type Config struct {
	differential bool
	chopper      bool
	continuous   bool
	shifter      bool
	dieTemp      bool
	attenuation  Attenuation
	averaging    Averaging
	sampleTime   SampleTime
	pos, neg     Channel
	trim         uint16
}

// DefaultConfig returns the zero configuration
func DefaultConfig() Config { return Config{} }

// SetChannelPos selects the positive input. Selecting Temperature also
// powers the die temperature sensor.
func (c Config) SetChannelPos(ch Channel) Config {
	if ch > VDDD {
		panic("gpadc: invalid positive channel")
	}
	c.pos = ch
	c.dieTemp = ch == Temperature
	return c
}

// SetChannelNeg selects the negative input and switches to differential mode
func (c Config) SetChannelNeg(ch Channel) Config {
	if ch > 3 {
		panic("gpadc: negative input must be a pin channel")
	}
	c.neg = ch
	c.differential = true
	return c
}

// SetAttenuation selects the input range. It panics above AttnX4.
func (c Config) SetAttenuation(a Attenuation) Config {
	if a > AttnX4 {
		panic("gpadc: attenuation out of range")
	}
	c.attenuation = a
	return c
}

// SetSampleTime sets the sampling period. It panics above Cycles15x8.
func (c Config) SetSampleTime(s SampleTime) Config {
	if s > Cycles15x8 {
		panic("gpadc: sample time out of range")
	}
	c.sampleTime = s
	return c
}

// SetAveraging sets how many conversions make one sample. It panics above
// SamplesX128.
func (c Config) SetAveraging(a Averaging) Config {
	if a > SamplesX128 {
		panic("gpadc: oversampling out of range")
	}
	c.averaging = a
	return c
}

// SetChopper enables chopping, which halves the offset at the cost of a
// second conversion per sample.
func (c Config) SetChopper(on bool) Config { c.chopper = on; return c }

// SetShifter enables the offset shifter.
func (c Config) SetShifter(on bool) Config { c.shifter = on; return c }

// SetContinuous makes the converter restart after every sample.
func (c Config) SetContinuous(on bool) Config { c.continuous = on; return c }

// SetTrim sets the GP_ADC_TRIM value, usually read from OTP. The LDO level
// field is always overridden.
func (c Config) SetTrim(v uint16) Config { c.trim = v; return c }

// Differential reports whether a negative input was selected
func (c Config) Differential() bool { return c.differential }
