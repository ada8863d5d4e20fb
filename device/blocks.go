package device

import (
	"sync/atomic"

	"dahal/core"
)

// owner guards a register block against being constrained twice
type owner struct {
	name    string
	claimed atomic.Bool
}

// Claim marks the block as owned by a driver. It panics if the block was
// already claimed: two drivers on one block is a programming error.
func (o *owner) Claim() {
	if !o.claimed.CompareAndSwap(false, true) {
		panic("device: " + o.name + " already constrained")
	}
}

// Claimed reports whether a driver owns the block
func (o *owner) Claimed() bool {
	return o.claimed.Load()
}

// GPIO is port 0: data, set/reset and one mode register per pin
type GPIO struct {
	owner
	DATA       core.Register
	SET_DATA   core.Register
	RESET_DATA core.Register
	MODE       [12]core.Register
}

// CRGTop holds clock gating, system control and analog status
type CRGTop struct {
	owner
	CLK_AMBA     core.Register
	CLK_PER      core.Register
	SYS_CTRL     core.Register
	SYS_STAT     core.Register
	RAM_PWR_CTRL core.Register
	ANA_STATUS   core.Register
}

// CRGAon is the always-on power domain
type CRGAon struct {
	owner
	POWER_AON_CTRL core.Register
	PAD_LATCH      core.Register
	HIBERN_CTRL    core.Register
	GP_DATA        core.Register
	RAM_LPMX       core.Register
}

// GPReg holds the peripheral freeze controls
type GPReg struct {
	owner
	SET_FREEZE   core.Register
	RESET_FREEZE core.Register
}

// Watchdog is the system watchdog timer
type Watchdog struct {
	owner
	WATCHDOG      core.Register
	WATCHDOG_CTRL core.Register
}

// NVIC is the Cortex-M0+ interrupt controller (32 vectors)
type NVIC struct {
	owner
	ISER core.Register
	ICER core.Register
	ISPR core.Register
	ICPR core.Register
	IPR  [8]core.Register
}

// I2C is the I2C controller
type I2C struct {
	owner
	CON            core.Register
	TAR            core.Register
	DATA_CMD       core.Register
	SS_SCL_HCNT    core.Register
	SS_SCL_LCNT    core.Register
	FS_SCL_HCNT    core.Register
	FS_SCL_LCNT    core.Register
	INTR_MASK      core.Register
	RX_TL          core.Register
	TX_TL          core.Register
	CLR_TX_ABRT    core.Register
	ENABLE         core.Register
	STATUS         core.Register
	TXFLR          core.Register
	RXFLR          core.Register
	TX_ABRT_SOURCE core.Register
	ENABLE_STATUS  core.Register
}

// GPADC is the general purpose ADC
type GPADC struct {
	owner
	CTRL      core.Register
	CTRL2     core.Register
	CTRL3     core.Register
	SEL       core.Register
	OFFP      core.Register
	OFFN      core.Register
	TRIM      core.Register
	CLEAR_INT core.Register
	RESULT    core.Register
}

// Timer0 is the 16-bit PWM timer with the software timer interrupt
type Timer0 struct {
	owner
	CTRL     core.Register
	ON       core.Register
	RELOAD_M core.Register
	RELOAD_N core.Register
}

// Timer2 is the triple PWM timer
type Timer2 struct {
	owner
	CTRL      core.Register
	FREQUENCY core.Register
	START     [3]core.Register
	END       [3]core.Register
}

// Wkup is the wakeup controller
type Wkup struct {
	owner
	CTRL        core.Register
	COMPARE     core.Register
	IRQ_STATUS  core.Register
	COUNTER     core.Register
	SELECT_GPIO core.Register
	POL_GPIO    core.Register
}

// OTPC is the OTP memory controller
type OTPC struct {
	owner
	MODE core.Register
}

// UART is the first UART
type UART struct {
	owner
	RBR_THR_DLL core.Register
	IER_DLH     core.Register
	IIR_FCR     core.Register
	LCR         core.Register
	MCR         core.Register
	LSR         core.Register
	USR         core.Register
	DLF         core.Register
}
