// Package gpadc drives the general purpose ADC: configuration, single
// polled conversions and the two-point offset calibration.
package gpadc

import (
	"errors"

	"dahal/core"
	"dahal/device"
)

// ErrCalibration is returned when the offset left after calibration is
// still 8 counts or more.
var ErrCalibration = errors.New("gpadc: offset calibration failed")

const (
	ctrl2Reset = 0x0210
	ctrl3Reset = 0x0040

	ldoLevel925mV = 0x4

	// 25us settling time of the die temperature sensor at 16 MHz
	dieTempSettleCycles = 400

	offsetMid      = 0x200
	offsetMax      = 0x3FF
	calibThreshold = 8
)

// ADC owns the GPADC block
type ADC struct {
	regs *device.GPADC
}

// Constrain takes ownership of the GPADC block
func Constrain(regs *device.GPADC) *ADC {
	regs.Claim()
	return &ADC{regs: regs}
}

// Init resets the ADC, programs the trim with the 925mV LDO level, applies
// cfg and enables the converter.
func (a *ADC) Init(cfg Config) {
	a.Reset()
	trim := uint32(cfg.trim) &^ device.GP_ADC_TRIM_REG_GP_ADC_LDO_LEVEL_Msk
	a.regs.TRIM.Set(trim | ldoLevel925mV<<device.GP_ADC_TRIM_REG_GP_ADC_LDO_LEVEL_Pos)
	a.Configure(cfg)
	a.Enable()
}

// Reset returns the control, select and trim registers to their reset values
func (a *ADC) Reset() {
	a.regs.CTRL.Set(0)
	a.regs.CTRL2.Set(ctrl2Reset)
	a.regs.CTRL3.Set(ctrl3Reset)
	a.regs.SEL.Set(0)
	a.regs.TRIM.Set(0)
}

// Configure applies cfg without touching the enable bit
func (a *ADC) Configure(cfg Config) {
	ctrl := a.regs.CTRL.Get() &^ (device.GP_ADC_CTRL_REG_GP_ADC_SE |
		device.GP_ADC_CTRL_REG_GP_ADC_CONT |
		device.GP_ADC_CTRL_REG_DIE_TEMP_EN |
		device.GP_ADC_CTRL_REG_GP_ADC_CHOP)
	if !cfg.differential {
		ctrl |= device.GP_ADC_CTRL_REG_GP_ADC_SE
	}
	if cfg.continuous {
		ctrl |= device.GP_ADC_CTRL_REG_GP_ADC_CONT
	}
	if cfg.dieTemp {
		ctrl |= device.GP_ADC_CTRL_REG_DIE_TEMP_EN
	}
	if cfg.chopper {
		ctrl |= device.GP_ADC_CTRL_REG_GP_ADC_CHOP
	}
	a.regs.CTRL.Set(ctrl)

	a.regs.SEL.Set(uint32(cfg.pos)<<device.GP_ADC_SEL_REG_GP_ADC_SEL_P_Pos |
		uint32(cfg.neg)<<device.GP_ADC_SEL_REG_GP_ADC_SEL_N_Pos)

	if cfg.dieTemp {
		core.Delay(dieTempSettleCycles)
	}

	ctrl2 := a.regs.CTRL2.Get() &^ (device.GP_ADC_CTRL2_REG_GP_ADC_OFFS_SH_EN |
		device.GP_ADC_CTRL2_REG_GP_ADC_ATTN_Msk |
		device.GP_ADC_CTRL2_REG_GP_ADC_CONV_NRS_Msk |
		device.GP_ADC_CTRL2_REG_GP_ADC_SMPL_TIME_Msk)
	if cfg.shifter {
		ctrl2 |= device.GP_ADC_CTRL2_REG_GP_ADC_OFFS_SH_EN
	}
	ctrl2 |= uint32(cfg.attenuation) << device.GP_ADC_CTRL2_REG_GP_ADC_ATTN_Pos & device.GP_ADC_CTRL2_REG_GP_ADC_ATTN_Msk
	ctrl2 |= uint32(cfg.averaging) << device.GP_ADC_CTRL2_REG_GP_ADC_CONV_NRS_Pos & device.GP_ADC_CTRL2_REG_GP_ADC_CONV_NRS_Msk
	ctrl2 |= uint32(cfg.sampleTime) << device.GP_ADC_CTRL2_REG_GP_ADC_SMPL_TIME_Pos & device.GP_ADC_CTRL2_REG_GP_ADC_SMPL_TIME_Msk
	a.regs.CTRL2.Set(ctrl2)
}

// Enable powers the converter and waits out its ramp-up time
func (a *ADC) Enable() {
	a.regs.CTRL.SetBits(device.GP_ADC_CTRL_REG_GP_ADC_EN)
	del := core.Field(a.regs.CTRL3, device.GP_ADC_CTRL3_REG_GP_ADC_EN_DEL_Msk, device.GP_ADC_CTRL3_REG_GP_ADC_EN_DEL_Pos)
	core.Delay(4 * del)
}

// Disable powers the converter down
func (a *ADC) Disable() {
	a.regs.CTRL.ClearBits(device.GP_ADC_CTRL_REG_GP_ADC_EN)
}

// StartConversion triggers one conversion
func (a *ADC) StartConversion() {
	a.regs.CTRL.SetBits(device.GP_ADC_CTRL_REG_GP_ADC_START)
}

// WaitForConversion waits for the running conversion and clears the
// completion interrupt.
func (a *ADC) WaitForConversion() error {
	err := core.WaitFor(func() bool {
		return !a.regs.CTRL.HasBits(device.GP_ADC_CTRL_REG_GP_ADC_START)
	})
	if err != nil {
		return err
	}
	a.regs.CLEAR_INT.Set(1)
	return nil
}

// CurrentSample returns the last conversion result
func (a *ADC) CurrentSample() uint16 {
	return uint16(a.regs.RESULT.Get())
}

// Read runs one conversion and returns its result
func (a *ADC) Read() (uint16, error) {
	a.StartConversion()
	if err := a.WaitForConversion(); err != nil {
		return 0, err
	}
	return a.CurrentSample(), nil
}

// EnableSink turns on the 20uA constant load of the ADC LDO
func (a *ADC) EnableSink() { a.regs.CTRL2.SetBits(device.GP_ADC_CTRL2_REG_GP_ADC_I20U) }

// DisableSink turns the LDO load off
func (a *ADC) DisableSink() { a.regs.CTRL2.ClearBits(device.GP_ADC_CTRL2_REG_GP_ADC_I20U) }

func (a *ADC) EnableShifter()  { a.regs.CTRL2.SetBits(device.GP_ADC_CTRL2_REG_GP_ADC_OFFS_SH_EN) }
func (a *ADC) DisableShifter() { a.regs.CTRL2.ClearBits(device.GP_ADC_CTRL2_REG_GP_ADC_OFFS_SH_EN) }
func (a *ADC) HasShifter() bool {
	return a.regs.CTRL2.HasBits(device.GP_ADC_CTRL2_REG_GP_ADC_OFFS_SH_EN)
}

// SetSampleTimeRaw writes the sample time field directly (0..15)
func (a *ADC) SetSampleTimeRaw(v uint8) {
	if v > 15 {
		panic("gpadc: sample time out of range")
	}
	a.regs.CTRL2.ReplaceBits(uint32(v)<<device.GP_ADC_CTRL2_REG_GP_ADC_SMPL_TIME_Pos, device.GP_ADC_CTRL2_REG_GP_ADC_SMPL_TIME_Msk, 0)
}

// SetOversamplingRaw writes the averaging field directly (0..7)
func (a *ADC) SetOversamplingRaw(v uint8) {
	if v > 7 {
		panic("gpadc: oversampling out of range")
	}
	a.regs.CTRL2.ReplaceBits(uint32(v)<<device.GP_ADC_CTRL2_REG_GP_ADC_CONV_NRS_Pos, device.GP_ADC_CTRL2_REG_GP_ADC_CONV_NRS_Msk, 0)
}
