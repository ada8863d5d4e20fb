package gpadc

import (
	"math"

	"dahal/core"
	"dahal/device"
	"dahal/x/mathx"
)

// CalibrateOffset measures the converter offset with the inputs muted in
// both polarities, programs the compensating OFFP/OFFN values and verifies
// the result. trim is the GP_ADC_TRIM value for Init.
func (a *ADC) CalibrateOffset(trim uint16) error {
	a.Init(DefaultConfig().
		SetTrim(trim).
		SetSampleTime(Cycles1x8).
		SetAveraging(SamplesX128))
	a.EnableSink()

	a.regs.OFFP.Set(offsetMid)
	a.regs.OFFN.Set(offsetMid)
	a.regs.CTRL.ReplaceBits(device.GP_ADC_CTRL_REG_GP_ADC_MUTE,
		device.GP_ADC_CTRL_REG_GP_ADC_MUTE|device.GP_ADC_CTRL_REG_GP_ADC_SIGN, 0)

	offP, err := a.offsetSample()
	if err != nil {
		return err
	}
	a.regs.CTRL.SetBits(device.GP_ADC_CTRL_REG_GP_ADC_SIGN)
	offN, err := a.offsetSample()
	if err != nil {
		return err
	}

	a.regs.OFFP.Set(compensate(offP))
	a.regs.OFFN.Set(compensate(offN))
	a.regs.CTRL.ClearBits(device.GP_ADC_CTRL_REG_GP_ADC_SIGN)

	residual, err := a.offsetSample()
	if err != nil {
		return err
	}
	a.regs.CTRL.ClearBits(device.GP_ADC_CTRL_REG_GP_ADC_MUTE)
	a.DisableSink()

	core.DebugPrintln("gpadc: offset p=" + core.Itoa(offP) + " n=" + core.Itoa(offN) +
		" residual=" + core.Itoa(residual))
	if mathx.Abs(residual) >= calibThreshold {
		return ErrCalibration
	}
	return nil
}

// offsetSample converts once and returns the 10-bit distance from mid-scale
func (a *ADC) offsetSample() (int, error) {
	v, err := a.Read()
	if err != nil {
		return 0, err
	}
	return int(v>>6) - offsetMid, nil
}

func compensate(off int) uint32 {
	return uint32(mathx.Clamp(offsetMid-2*off, 0, offsetMax))
}

// CorrectionApply removes a gain and offset error, as stored in OTP, from a
// raw 16-bit sample.
func CorrectionApply(gainError, offset int16, sample uint16) uint16 {
	const full = float64(math.MaxUint16)
	den := full + float64(gainError)
	res := full*float64(sample)/den - full*float64(offset)/den
	if res < 0 {
		return 0
	}
	if res > full {
		return math.MaxUint16
	}
	return uint16(res)
}

// ConvertToVoltage scales a 16-bit sample to volts for the unattenuated
// 3.6V range.
func ConvertToVoltage(sample uint16) float32 {
	return float32(sample) * 3.6 / math.MaxUint16
}
