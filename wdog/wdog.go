// Package wdog drives the system watchdog. The counter reloads from the
// period on every Feed; when it expires the chip resets.
package wdog

import "dahal/device"

// DefaultPeriod is the reload value used until Start sets another
const DefaultPeriod uint8 = 0xC8

// Watchdog owns the watchdog and the freeze controls in GP_REG
type Watchdog struct {
	regs   *device.Watchdog
	freeze *device.GPReg
	period uint8
}

// Constrain takes ownership of the watchdog and GP_REG blocks
func Constrain(regs *device.Watchdog, gp *device.GPReg) *Watchdog {
	regs.Claim()
	gp.Claim()
	return &Watchdog{regs: regs, freeze: gp, period: DefaultPeriod}
}

// Start reloads the counter with period, selects reset on expiry and
// releases the freeze.
func (w *Watchdog) Start(period uint8) {
	w.period = period
	w.Feed()
	w.regs.WATCHDOG_CTRL.Set(device.WATCHDOG_CTRL_REG_NMI_RST)
	w.Resume()
}

// Feed reloads the counter
func (w *Watchdog) Feed() {
	w.regs.WATCHDOG.ReplaceBits(uint32(w.period), device.WATCHDOG_REG_WDOG_VAL_Msk, 0)
}

// Freeze stops the counter
func (w *Watchdog) Freeze() {
	w.freeze.SET_FREEZE.Set(device.SET_FREEZE_REG_FRZ_WDOG)
}

// Resume restarts a frozen counter
func (w *Watchdog) Resume() {
	w.freeze.RESET_FREEZE.Set(device.RESET_FREEZE_REG_FRZ_WDOG)
}

// Period returns the reload value
func (w *Watchdog) Period() uint8 { return w.period }
