// Package device describes the DA14531 register file: one struct per
// peripheral block, the register map they are built from and the one-shot
// hand-out of the whole set.
package device

import (
	"fmt"
	"sync/atomic"

	"dahal/core"
)

// Peripherals is the complete set of register blocks. Drivers take
// ownership of a block through its Constrain/Split function.
type Peripherals struct {
	GPIO     *GPIO
	CRGTop   *CRGTop
	CRGAon   *CRGAon
	GPReg    *GPReg
	Watchdog *Watchdog
	NVIC     *NVIC
	I2C      *I2C
	GPADC    *GPADC
	Timer0   *Timer0
	Timer2   *Timer2
	Wkup     *Wkup
	OTPC     *OTPC
	UART     *UART

	byAddr map[uint32]Entry
}

// Entry pairs a register with its map information
type Entry struct {
	RegisterInfo
	Reg core.Register
}

var taken atomic.Bool

// Take returns the peripheral set the first time it is called and
// (nil, false) afterwards.
func Take() (*Peripherals, bool) {
	if !taken.CompareAndSwap(false, true) {
		return nil, false
	}
	return newPeripherals(), true
}

// Lookup finds the register mapped at addr
func (p *Peripherals) Lookup(addr uint32) (Entry, bool) {
	e, ok := p.byAddr[addr]
	return e, ok
}

// Registers returns every mapped register in map order
func (p *Peripherals) Registers() []Entry {
	out := make([]Entry, 0, len(registerMap))
	for _, info := range registerMap {
		out = append(out, p.byAddr[info.Addr])
	}
	return out
}

// build wires every block from the register map using newReg to create the
// backing register.
func build(newReg func(RegisterInfo) core.Register) *Peripherals {
	regs := make(map[string]core.Register, len(registerMap))
	p := &Peripherals{byAddr: make(map[uint32]Entry, len(registerMap))}
	for _, info := range registerMap {
		r := newReg(info)
		regs[info.Name] = r
		p.byAddr[info.Addr] = Entry{RegisterInfo: info, Reg: r}
	}
	get := func(name string) core.Register {
		r, ok := regs[name]
		if !ok {
			panic("device: register " + name + " missing from map")
		}
		return r
	}

	p.GPIO = &GPIO{
		owner:      owner{name: "GPIO"},
		DATA:       get("P0_DATA_REG"),
		SET_DATA:   get("P0_SET_DATA_REG"),
		RESET_DATA: get("P0_RESET_DATA_REG"),
	}
	for i := range p.GPIO.MODE {
		p.GPIO.MODE[i] = get(fmt.Sprintf("P%02d_MODE_REG", i))
	}
	p.CRGTop = &CRGTop{
		owner:        owner{name: "CRG_TOP"},
		CLK_AMBA:     get("CLK_AMBA_REG"),
		CLK_PER:      get("CLK_PER_REG"),
		SYS_CTRL:     get("SYS_CTRL_REG"),
		SYS_STAT:     get("SYS_STAT_REG"),
		RAM_PWR_CTRL: get("RAM_PWR_CTRL_REG"),
		ANA_STATUS:   get("ANA_STATUS_REG"),
	}
	p.CRGAon = &CRGAon{
		owner:          owner{name: "CRG_AON"},
		POWER_AON_CTRL: get("POWER_AON_CTRL_REG"),
		PAD_LATCH:      get("PAD_LATCH_REG"),
		HIBERN_CTRL:    get("HIBERN_CTRL_REG"),
		GP_DATA:        get("GP_DATA_REG"),
		RAM_LPMX:       get("RAM_LPMX_REG"),
	}
	p.GPReg = &GPReg{
		owner:        owner{name: "GPREG"},
		SET_FREEZE:   get("SET_FREEZE_REG"),
		RESET_FREEZE: get("RESET_FREEZE_REG"),
	}
	p.Watchdog = &Watchdog{
		owner:         owner{name: "WDOG"},
		WATCHDOG:      get("WATCHDOG_REG"),
		WATCHDOG_CTRL: get("WATCHDOG_CTRL_REG"),
	}
	p.NVIC = &NVIC{
		owner: owner{name: "NVIC"},
		ISER:  get("NVIC_ISER"),
		ICER:  get("NVIC_ICER"),
		ISPR:  get("NVIC_ISPR"),
		ICPR:  get("NVIC_ICPR"),
	}
	for i := range p.NVIC.IPR {
		p.NVIC.IPR[i] = get(fmt.Sprintf("NVIC_IPR%d", i))
	}
	p.I2C = &I2C{
		owner:          owner{name: "I2C"},
		CON:            get("I2C_CON_REG"),
		TAR:            get("I2C_TAR_REG"),
		DATA_CMD:       get("I2C_DATA_CMD_REG"),
		SS_SCL_HCNT:    get("I2C_SS_SCL_HCNT_REG"),
		SS_SCL_LCNT:    get("I2C_SS_SCL_LCNT_REG"),
		FS_SCL_HCNT:    get("I2C_FS_SCL_HCNT_REG"),
		FS_SCL_LCNT:    get("I2C_FS_SCL_LCNT_REG"),
		INTR_MASK:      get("I2C_INTR_MASK_REG"),
		RX_TL:          get("I2C_RX_TL_REG"),
		TX_TL:          get("I2C_TX_TL_REG"),
		CLR_TX_ABRT:    get("I2C_CLR_TX_ABRT_REG"),
		ENABLE:         get("I2C_ENABLE_REG"),
		STATUS:         get("I2C_STATUS_REG"),
		TXFLR:          get("I2C_TXFLR_REG"),
		RXFLR:          get("I2C_RXFLR_REG"),
		TX_ABRT_SOURCE: get("I2C_TX_ABRT_SOURCE_REG"),
		ENABLE_STATUS:  get("I2C_ENABLE_STATUS_REG"),
	}
	p.GPADC = &GPADC{
		owner:     owner{name: "GPADC"},
		CTRL:      get("GP_ADC_CTRL_REG"),
		CTRL2:     get("GP_ADC_CTRL2_REG"),
		CTRL3:     get("GP_ADC_CTRL3_REG"),
		SEL:       get("GP_ADC_SEL_REG"),
		OFFP:      get("GP_ADC_OFFP_REG"),
		OFFN:      get("GP_ADC_OFFN_REG"),
		TRIM:      get("GP_ADC_TRIM_REG"),
		CLEAR_INT: get("GP_ADC_CLEAR_INT_REG"),
		RESULT:    get("GP_ADC_RESULT_REG"),
	}
	p.Timer0 = &Timer0{
		owner:    owner{name: "TIMER0"},
		CTRL:     get("TIMER0_CTRL_REG"),
		ON:       get("TIMER0_ON_REG"),
		RELOAD_M: get("TIMER0_RELOAD_M_REG"),
		RELOAD_N: get("TIMER0_RELOAD_N_REG"),
	}
	p.Timer2 = &Timer2{
		owner:     owner{name: "TIMER2"},
		CTRL:      get("TRIPLE_PWM_CTRL_REG"),
		FREQUENCY: get("TRIPLE_PWM_FREQUENCY"),
	}
	for i := range p.Timer2.START {
		p.Timer2.START[i] = get(fmt.Sprintf("PWM%d_START_CYCLE", i+2))
		p.Timer2.END[i] = get(fmt.Sprintf("PWM%d_END_CYCLE", i+2))
	}
	p.Wkup = &Wkup{
		owner:       owner{name: "WKUP"},
		CTRL:        get("WKUP_CTRL_REG"),
		COMPARE:     get("WKUP_COMPARE_REG"),
		IRQ_STATUS:  get("WKUP_IRQ_STATUS_REG"),
		COUNTER:     get("WKUP_COUNTER_REG"),
		SELECT_GPIO: get("WKUP_SELECT_GPIO_REG"),
		POL_GPIO:    get("WKUP_POL_GPIO_REG"),
	}
	p.OTPC = &OTPC{
		owner: owner{name: "OTPC"},
		MODE:  get("OTPC_MODE_REG"),
	}
	p.UART = &UART{
		owner:       owner{name: "UART"},
		RBR_THR_DLL: get("UART_RBR_THR_DLL_REG"),
		IER_DLH:     get("UART_IER_DLH_REG"),
		IIR_FCR:     get("UART_IIR_FCR_REG"),
		LCR:         get("UART_LCR_REG"),
		MCR:         get("UART_MCR_REG"),
		LSR:         get("UART_LSR_REG"),
		USR:         get("UART_USR_REG"),
		DLF:         get("UART_DLF_REG"),
	}
	return p
}
