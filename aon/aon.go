// Package aon drives the always-on power domain: pad latching and the
// hibernation entry sequence.
//
// Hibernation is entered through a fixed series of stages. Each stage
// completes before the next begins, and the register writes inside a stage
// happen in a fixed order:
//
//	Preparing              watchdog frozen, interrupts masked, pending cleared
//	DebugQuiesced          debugger detached
//	WakeupArmed            wake mask and polarity programmed and settled
//	HibernationConfigured  sleep mode, RAM retention, remap, pad latch, LDO trim
//	PowerRailConfigured    VBAT_HIGH/VBAT_LOW connection for boost or buck
//	PowerOnResetConfigured only VBAT_LOW can trigger a POR
//	QuiescedForRetention   RCX spare trim
//	Asleep                 WFI
package aon

import (
	"errors"

	"dahal/core"
	"dahal/crg"
	"dahal/device"
	"dahal/nvic"
	"dahal/wdog"
)

// Stage of the hibernation sequence
type Stage uint8

const (
	Running Stage = iota
	Preparing
	DebugQuiesced
	WakeupArmed
	HibernationConfigured
	PowerRailConfigured
	PowerOnResetConfigured
	QuiescedForRetention
	Asleep
)

var stageNames = [...]string{
	"running",
	"preparing",
	"debug-quiesced",
	"wakeup-armed",
	"hibernation-configured",
	"power-rail-configured",
	"por-configured",
	"quiesced-for-retention",
	"asleep",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "invalid"
}

// ErrRemapNotRetained rejects remapping address zero to a RAM bank that
// is powered off in hibernation.
var ErrRemapNotRetained = errors.New("aon: remap target not retained")

// SleepError reports a sequence that could not complete Stage. By then
// the watchdog runs again and the interrupt mask, the debugger setting and
// HIBERN_CTRL are back to their values on entry. Pending interrupts
// cleared while preparing stay cleared.
type SleepError struct {
	Stage Stage
	Err   error
}

func (e *SleepError) Error() string {
	return "aon: " + e.Stage.String() + ": " + e.Err.Error()
}

func (e *SleepError) Unwrap() error { return e.Err }

// Register values for the hibernation power configuration
const (
	lpmxAllOff      = 7
	ldoRetTrimNoRAM = 0x0E
	ldoRetTrimRAM   = 0x0D
	vbatHLForced    = 2
	vbatHLAuto      = 3
	anaSpareRCX     = 2
)

// AON owns CRG_AON
type AON struct {
	regs  *device.CRGAon
	stage Stage
}

// Constrain takes ownership of CRG_AON
func Constrain(regs *device.CRGAon) *AON {
	regs.Claim()
	return &AON{regs: regs}
}

// SetPadLatchEn latches (false) or releases (true) the pad states
func (a *AON) SetPadLatchEn(on bool) {
	var v uint32
	if on {
		v = device.PAD_LATCH_REG_PAD_LATCH_EN
	}
	a.regs.PAD_LATCH.Set(v)
}

// Stage returns the last stage the sequencer completed
func (a *AON) Stage() Stage { return a.stage }

func (a *AON) reach(s Stage) {
	a.stage = s
	core.DebugPrintln("aon: " + s.String())
}

// EnterHibernation runs the hibernation sequence and halts the core. On
// hardware the chip resets on wakeup, so a nil return is only seen on the
// host. It panics on an empty or invalid wake mask and returns
// ErrRemapNotRetained, before touching any register, when address zero
// would be remapped to a bank that is not retained.
//
// If a status wait times out, the state listed on SleepError is restored
// and a *SleepError names the stage that could not be reached.
func (a *AON) EnterHibernation(nv *nvic.Controller, clk *crg.Controller, wd *wdog.Watchdog, cfg SleepConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	a.stage = Running
	masked := core.InterruptsMasked()
	dbg := clk.Debugger()
	hibern := a.regs.HIBERN_CTRL.Get()

	wd.Freeze()
	core.DisableInterrupts()
	nv.ClearPendingInterrupts()
	a.reach(Preparing)

	fail := func(s Stage, err error) error {
		if s > DebugQuiesced {
			a.regs.HIBERN_CTRL.Set(hibern)
			clk.SetDebugger(dbg)
		}
		wd.Resume()
		if !masked {
			core.EnableInterrupts()
		}
		return &SleepError{Stage: s, Err: err}
	}

	if err := core.WaitFor(func() bool { return !clk.IsDebugUp() }); err != nil {
		return fail(DebugQuiesced, err)
	}
	clk.DisableDebug()
	a.reach(DebugQuiesced)

	a.regs.HIBERN_CTRL.ReplaceBits(uint32(cfg.pinMask)<<device.HIBERN_CTRL_REG_HIBERN_WKUP_MASK_Pos, device.HIBERN_CTRL_REG_HIBERN_WKUP_MASK_Msk, 0)
	// The clockless wakeup XOR tree must idle high before sleeping; if it
	// does not, the pins rest at the wake level and the polarity flips.
	if !clk.ClocklessWakeupStat() {
		hib := a.regs.HIBERN_CTRL.Get()
		a.regs.HIBERN_CTRL.Set(hib ^ device.HIBERN_CTRL_REG_HIBERN_WKUP_POLARITY)
	}
	if err := core.WaitFor(clk.ClocklessWakeupStat); err != nil {
		return fail(WakeupArmed, err)
	}
	a.reach(WakeupArmed)

	a.regs.HIBERN_CTRL.SetBits(device.HIBERN_CTRL_REG_HIBERNATION_ENABLE)
	core.SetSleepDeep()
	clk.SetRAMPowerCtrl(!cfg.ram1, !cfg.ram2, !cfg.ram3)
	clk.SetRemapAddr(cfg.remap)
	core.WriteBit(a.regs.PAD_LATCH, device.PAD_LATCH_REG_PAD_LATCH_EN, cfg.padLatchEn)
	a.regs.RAM_LPMX.ReplaceBits(lpmxAllOff<<device.RAM_LPMX_REG_RAMX_LPMX_Pos, device.RAM_LPMX_REG_RAMX_LPMX_Msk, 0)
	trim := uint32(ldoRetTrimNoRAM)
	if cfg.anyRetained() {
		trim = ldoRetTrimRAM
	}
	pwr := a.regs.POWER_AON_CTRL.Get() &^ device.POWER_AON_CTRL_REG_LDO_RET_TRIM_Msk
	pwr |= trim<<device.POWER_AON_CTRL_REG_LDO_RET_TRIM_Pos | device.POWER_AON_CTRL_REG_FORCE_RUNNING_COMP_DIS
	a.regs.POWER_AON_CTRL.Set(pwr)
	a.reach(HibernationConfigured)

	pwr = a.regs.POWER_AON_CTRL.Get() &^ device.POWER_AON_CTRL_REG_VBAT_HL_CONNECT_RES_CTRL_Msk
	if clk.BoostSelected() {
		pwr |= vbatHLForced<<device.POWER_AON_CTRL_REG_VBAT_HL_CONNECT_RES_CTRL_Pos | device.POWER_AON_CTRL_REG_CHARGE_VBAT_DISABLE
	} else {
		pwr |= vbatHLAuto << device.POWER_AON_CTRL_REG_VBAT_HL_CONNECT_RES_CTRL_Pos
	}
	a.regs.POWER_AON_CTRL.Set(pwr)
	a.reach(PowerRailConfigured)

	pwr = a.regs.POWER_AON_CTRL.Get()
	pwr |= device.POWER_AON_CTRL_REG_POR_VBAT_HIGH_RST_MASK
	pwr &^= device.POWER_AON_CTRL_REG_POR_VBAT_LOW_RST_MASK
	a.regs.POWER_AON_CTRL.Set(pwr)
	a.reach(PowerOnResetConfigured)

	a.regs.GP_DATA.ReplaceBits(anaSpareRCX<<device.GP_DATA_REG_ANA_SPARE_Pos, device.GP_DATA_REG_ANA_SPARE_Msk, 0)
	a.reach(QuiescedForRetention)

	core.Nop()
	core.Nop()
	core.Nop()
	a.reach(Asleep)
	core.WaitForInterrupt()
	return nil
}
