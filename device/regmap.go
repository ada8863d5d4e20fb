package device

// RegisterInfo describes one entry of the DA14531 register map
type RegisterInfo struct {
	Name  string
	Addr  uint32
	Width uint8 // 16 or 32
	Reset uint32
}

// Block base addresses
const (
	CRG_AON_BASE = 0x50000000
	WKUP_BASE    = 0x50000100
	UART_BASE    = 0x50001000
	CRG_PER_BASE = 0x50001200
	I2C_BASE     = 0x50001300
	GPADC_BASE   = 0x50001500
	GPIO_BASE    = 0x50003000
	WDOG_BASE    = 0x50003100
	GPREG_BASE   = 0x50003300
	TIMER0_BASE  = 0x50003400
	TIMER2_BASE  = 0x50003500
	OTPC_BASE    = 0x07F40000
	NVIC_BASE    = 0xE000E100
)

func r16(name string, addr, reset uint32) RegisterInfo {
	return RegisterInfo{Name: name, Addr: addr, Width: 16, Reset: reset}
}

func r32(name string, addr, reset uint32) RegisterInfo {
	return RegisterInfo{Name: name, Addr: addr, Width: 32, Reset: reset}
}

// registerMap lists every register the drivers touch
var registerMap = []RegisterInfo{
	// CRG_TOP / CRG_AON share the 0x5000_00xx window
	r16("CLK_AMBA_REG", CRG_AON_BASE+0x00, 0x0000),
	r16("POWER_AON_CTRL_REG", CRG_AON_BASE+0x20, 0x0860),
	r16("SYS_CTRL_REG", CRG_AON_BASE+0x24, 0x0180),
	r16("SYS_STAT_REG", CRG_AON_BASE+0x28, 0x0000),
	r16("PAD_LATCH_REG", CRG_AON_BASE+0x30, 0x0001),
	r16("HIBERN_CTRL_REG", CRG_AON_BASE+0x34, 0x0000),
	r16("GP_DATA_REG", CRG_AON_BASE+0x40, 0x0000),
	r16("RAM_LPMX_REG", CRG_AON_BASE+0x4C, 0x0000),
	r16("RAM_PWR_CTRL_REG", CRG_AON_BASE+0x50, 0x0000),
	r16("ANA_STATUS_REG", CRG_AON_BASE+0x74, 0x0000),

	r16("WKUP_CTRL_REG", WKUP_BASE+0x00, 0x0000),
	r16("WKUP_COMPARE_REG", WKUP_BASE+0x02, 0x0000),
	r16("WKUP_IRQ_STATUS_REG", WKUP_BASE+0x04, 0x0000),
	r16("WKUP_COUNTER_REG", WKUP_BASE+0x06, 0x0000),
	r16("WKUP_SELECT_GPIO_REG", WKUP_BASE+0x0A, 0x0000),
	r16("WKUP_POL_GPIO_REG", WKUP_BASE+0x0C, 0x0000),

	r16("UART_RBR_THR_DLL_REG", UART_BASE+0x00, 0x0000),
	r16("UART_IER_DLH_REG", UART_BASE+0x04, 0x0000),
	r16("UART_IIR_FCR_REG", UART_BASE+0x08, 0x0001),
	r16("UART_LCR_REG", UART_BASE+0x0C, 0x0000),
	r16("UART_MCR_REG", UART_BASE+0x10, 0x0000),
	r16("UART_LSR_REG", UART_BASE+0x14, 0x0060),
	r16("UART_USR_REG", UART_BASE+0x7C, 0x0006),
	r16("UART_DLF_REG", UART_BASE+0xC0, 0x0000),

	r16("CLK_PER_REG", CRG_PER_BASE+0x24, 0x0000),

	r16("I2C_CON_REG", I2C_BASE+0x00, 0x007D),
	r16("I2C_TAR_REG", I2C_BASE+0x04, 0x0055),
	r16("I2C_DATA_CMD_REG", I2C_BASE+0x10, 0x0000),
	r16("I2C_SS_SCL_HCNT_REG", I2C_BASE+0x14, 0x0048),
	r16("I2C_SS_SCL_LCNT_REG", I2C_BASE+0x18, 0x004F),
	r16("I2C_FS_SCL_HCNT_REG", I2C_BASE+0x1C, 0x0008),
	r16("I2C_FS_SCL_LCNT_REG", I2C_BASE+0x20, 0x0017),
	r16("I2C_INTR_MASK_REG", I2C_BASE+0x30, 0x08FF),
	r16("I2C_RX_TL_REG", I2C_BASE+0x38, 0x0000),
	r16("I2C_TX_TL_REG", I2C_BASE+0x3C, 0x0000),
	r16("I2C_CLR_TX_ABRT_REG", I2C_BASE+0x54, 0x0000),
	r16("I2C_ENABLE_REG", I2C_BASE+0x6C, 0x0000),
	r16("I2C_STATUS_REG", I2C_BASE+0x70, 0x0006),
	r16("I2C_TXFLR_REG", I2C_BASE+0x74, 0x0000),
	r16("I2C_RXFLR_REG", I2C_BASE+0x78, 0x0000),
	r16("I2C_TX_ABRT_SOURCE_REG", I2C_BASE+0x80, 0x0000),
	r16("I2C_ENABLE_STATUS_REG", I2C_BASE+0x9C, 0x0000),

	r16("GP_ADC_CTRL_REG", GPADC_BASE+0x00, 0x0000),
	r16("GP_ADC_CTRL2_REG", GPADC_BASE+0x02, 0x0210),
	r16("GP_ADC_CTRL3_REG", GPADC_BASE+0x04, 0x0040),
	r16("GP_ADC_SEL_REG", GPADC_BASE+0x06, 0x0000),
	r16("GP_ADC_OFFP_REG", GPADC_BASE+0x08, 0x0200),
	r16("GP_ADC_OFFN_REG", GPADC_BASE+0x0A, 0x0200),
	r16("GP_ADC_TRIM_REG", GPADC_BASE+0x0C, 0x0000),
	r16("GP_ADC_CLEAR_INT_REG", GPADC_BASE+0x0E, 0x0000),
	r16("GP_ADC_RESULT_REG", GPADC_BASE+0x10, 0x0000),

	r16("P0_DATA_REG", GPIO_BASE+0x00, 0x0000),
	r16("P0_SET_DATA_REG", GPIO_BASE+0x02, 0x0000),
	r16("P0_RESET_DATA_REG", GPIO_BASE+0x04, 0x0000),
	r16("P00_MODE_REG", GPIO_BASE+0x06, 0x0200),
	r16("P01_MODE_REG", GPIO_BASE+0x08, 0x0200),
	r16("P02_MODE_REG", GPIO_BASE+0x0A, 0x0200),
	r16("P03_MODE_REG", GPIO_BASE+0x0C, 0x0200),
	r16("P04_MODE_REG", GPIO_BASE+0x0E, 0x0200),
	r16("P05_MODE_REG", GPIO_BASE+0x10, 0x0200),
	r16("P06_MODE_REG", GPIO_BASE+0x12, 0x0200),
	r16("P07_MODE_REG", GPIO_BASE+0x14, 0x0200),
	r16("P08_MODE_REG", GPIO_BASE+0x16, 0x0200),
	r16("P09_MODE_REG", GPIO_BASE+0x18, 0x0200),
	r16("P10_MODE_REG", GPIO_BASE+0x1A, 0x0200),
	r16("P11_MODE_REG", GPIO_BASE+0x1C, 0x0200),

	r16("WATCHDOG_REG", WDOG_BASE+0x00, 0x00FF),
	r16("WATCHDOG_CTRL_REG", WDOG_BASE+0x02, 0x0000),

	r16("SET_FREEZE_REG", GPREG_BASE+0x00, 0x0000),
	r16("RESET_FREEZE_REG", GPREG_BASE+0x02, 0x0000),

	r16("TIMER0_CTRL_REG", TIMER0_BASE+0x00, 0x0000),
	r16("TIMER0_ON_REG", TIMER0_BASE+0x02, 0x0000),
	r16("TIMER0_RELOAD_M_REG", TIMER0_BASE+0x04, 0x0000),
	r16("TIMER0_RELOAD_N_REG", TIMER0_BASE+0x06, 0x0000),

	r16("TRIPLE_PWM_CTRL_REG", TIMER2_BASE+0x00, 0x0000),
	r16("TRIPLE_PWM_FREQUENCY", TIMER2_BASE+0x02, 0x0000),
	r16("PWM2_START_CYCLE", TIMER2_BASE+0x04, 0x0000),
	r16("PWM3_START_CYCLE", TIMER2_BASE+0x06, 0x0000),
	r16("PWM4_START_CYCLE", TIMER2_BASE+0x08, 0x0000),
	r16("PWM2_END_CYCLE", TIMER2_BASE+0x0A, 0x0000),
	r16("PWM3_END_CYCLE", TIMER2_BASE+0x0C, 0x0000),
	r16("PWM4_END_CYCLE", TIMER2_BASE+0x0E, 0x0000),

	r32("OTPC_MODE_REG", OTPC_BASE+0x00, 0x00000000),

	r32("NVIC_ISER", NVIC_BASE+0x000, 0x00000000),
	r32("NVIC_ICER", NVIC_BASE+0x080, 0x00000000),
	r32("NVIC_ISPR", NVIC_BASE+0x100, 0x00000000),
	r32("NVIC_ICPR", NVIC_BASE+0x180, 0x00000000),
	r32("NVIC_IPR0", NVIC_BASE+0x300, 0x00000000),
	r32("NVIC_IPR1", NVIC_BASE+0x304, 0x00000000),
	r32("NVIC_IPR2", NVIC_BASE+0x308, 0x00000000),
	r32("NVIC_IPR3", NVIC_BASE+0x30C, 0x00000000),
	r32("NVIC_IPR4", NVIC_BASE+0x310, 0x00000000),
	r32("NVIC_IPR5", NVIC_BASE+0x314, 0x00000000),
	r32("NVIC_IPR6", NVIC_BASE+0x318, 0x00000000),
	r32("NVIC_IPR7", NVIC_BASE+0x31C, 0x00000000),
}

// RegisterMap returns a copy of the register table
func RegisterMap() []RegisterInfo {
	out := make([]RegisterInfo, len(registerMap))
	copy(out, registerMap)
	return out
}
