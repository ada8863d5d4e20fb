package device

// Bit fields. Masks are pre-shifted; Pos is the field's lowest bit.

// CLK_AMBA_REG
const (
	CLK_AMBA_REG_HCLK_DIV_Pos   = 0x0
	CLK_AMBA_REG_HCLK_DIV_Msk   = 0x3
	CLK_AMBA_REG_PCLK_DIV_Pos   = 0x4
	CLK_AMBA_REG_PCLK_DIV_Msk   = 0x30
	CLK_AMBA_REG_OTP_ENABLE_Pos = 0x7
	CLK_AMBA_REG_OTP_ENABLE_Msk = 0x80
	CLK_AMBA_REG_OTP_ENABLE     = CLK_AMBA_REG_OTP_ENABLE_Msk
)

// CLK_PER_REG
const (
	CLK_PER_REG_TMR_DIV_Pos     = 0x0
	CLK_PER_REG_TMR_DIV_Msk     = 0x3
	CLK_PER_REG_TMR_ENABLE      = 0x8
	CLK_PER_REG_WAKEUPCT_ENABLE = 0x10
	CLK_PER_REG_I2C_ENABLE      = 0x20
	CLK_PER_REG_UART2_ENABLE    = 0x40
	CLK_PER_REG_UART1_ENABLE    = 0x80
	CLK_PER_REG_SPI_ENABLE      = 0x400
	CLK_PER_REG_QUAD_ENABLE     = 0x800
)

// POWER_AON_CTRL_REG
const (
	POWER_AON_CTRL_REG_CHARGE_VBAT_DISABLE          = 0x10
	POWER_AON_CTRL_REG_VBAT_HL_CONNECT_RES_CTRL_Pos = 0x5
	POWER_AON_CTRL_REG_VBAT_HL_CONNECT_RES_CTRL_Msk = 0x60
	POWER_AON_CTRL_REG_LDO_RET_TRIM_Pos             = 0x7
	POWER_AON_CTRL_REG_LDO_RET_TRIM_Msk             = 0x780
	POWER_AON_CTRL_REG_POR_VBAT_LOW_RST_MASK        = 0x800
	POWER_AON_CTRL_REG_POR_VBAT_HIGH_RST_MASK       = 0x1000
	POWER_AON_CTRL_REG_FORCE_RUNNING_COMP_DIS       = 0x2000
)

// SYS_CTRL_REG
const (
	SYS_CTRL_REG_REMAP_ADR0_Pos      = 0x0
	SYS_CTRL_REG_REMAP_ADR0_Msk      = 0x7
	SYS_CTRL_REG_DEBUGGER_ENABLE_Pos = 0x7
	SYS_CTRL_REG_DEBUGGER_ENABLE_Msk = 0x180
)

// SYS_STAT_REG
const (
	SYS_STAT_REG_DBG_IS_UP = 0x80
)

// PAD_LATCH_REG
const (
	PAD_LATCH_REG_PAD_LATCH_EN = 0x1
)

// HIBERN_CTRL_REG
const (
	HIBERN_CTRL_REG_HIBERN_WKUP_MASK_Pos = 0x0
	HIBERN_CTRL_REG_HIBERN_WKUP_MASK_Msk = 0x1F
	HIBERN_CTRL_REG_HIBERN_WKUP_POLARITY = 0x20
	HIBERN_CTRL_REG_HIBERNATION_ENABLE   = 0x100
)

// GP_DATA_REG
const (
	GP_DATA_REG_ANA_SPARE_Pos = 0x0
	GP_DATA_REG_ANA_SPARE_Msk = 0x3
)

// RAM_LPMX_REG
const (
	RAM_LPMX_REG_RAMX_LPMX_Pos = 0x0
	RAM_LPMX_REG_RAMX_LPMX_Msk = 0x7
)

// RAM_PWR_CTRL_REG: 0 powered, 2 retained, 3 off
const (
	RAM_PWR_CTRL_REG_RAM1_PWR_CTRL_Pos = 0x0
	RAM_PWR_CTRL_REG_RAM1_PWR_CTRL_Msk = 0x3
	RAM_PWR_CTRL_REG_RAM2_PWR_CTRL_Pos = 0x2
	RAM_PWR_CTRL_REG_RAM2_PWR_CTRL_Msk = 0xC
	RAM_PWR_CTRL_REG_RAM3_PWR_CTRL_Pos = 0x4
	RAM_PWR_CTRL_REG_RAM3_PWR_CTRL_Msk = 0x30
)

// ANA_STATUS_REG
const (
	ANA_STATUS_REG_CLKLESS_WAKEUP_STAT = 0x100
	ANA_STATUS_REG_BOOST_SELECTED      = 0x200
)

// WKUP_CTRL_REG
const (
	WKUP_CTRL_REG_WKUP_DEB_VALUE_Pos = 0x0
	WKUP_CTRL_REG_WKUP_DEB_VALUE_Msk = 0x3F
	WKUP_CTRL_REG_WKUP_ENABLE_IRQ    = 0x80
)

// WKUP_IRQ_STATUS_REG
const (
	WKUP_IRQ_STATUS_REG_WKUP_IRQ_STATUS = 0x1
	WKUP_IRQ_STATUS_REG_WKUP_CNTR_RST   = 0x2
)

// UART
const (
	UART_IER_DLH_REG_ERBFI = 0x1
	UART_IER_DLH_REG_ETBEI = 0x2

	UART_IIR_FCR_REG_FIFOE  = 0x1
	UART_IIR_FCR_REG_RFIFOR = 0x2
	UART_IIR_FCR_REG_XFIFOR = 0x4

	UART_LCR_REG_DLS_Pos = 0x0
	UART_LCR_REG_DLS_Msk = 0x3
	UART_LCR_REG_STOP    = 0x4
	UART_LCR_REG_PEN     = 0x8
	UART_LCR_REG_DLAB    = 0x80

	UART_LSR_REG_DR   = 0x1
	UART_LSR_REG_OE   = 0x2
	UART_LSR_REG_THRE = 0x20
	UART_LSR_REG_TEMT = 0x40

	UART_USR_REG_BUSY = 0x1

	UART_DLF_REG_DLF_Msk = 0xF
)

// I2C
const (
	I2C_CON_REG_MASTER_MODE      = 0x1
	I2C_CON_REG_SPEED_Pos        = 0x1
	I2C_CON_REG_SPEED_Msk        = 0x6
	I2C_CON_REG_10BITADDR_SLAVE  = 0x8
	I2C_CON_REG_10BITADDR_MASTER = 0x10
	I2C_CON_REG_RESTART_EN       = 0x20
	I2C_CON_REG_SLAVE_DISABLE    = 0x40

	I2C_TAR_REG_IC_TAR_Msk = 0x3FF

	I2C_DATA_CMD_REG_DAT_Msk = 0xFF
	I2C_DATA_CMD_REG_CMD     = 0x100
	I2C_DATA_CMD_REG_STOP    = 0x200
	I2C_DATA_CMD_REG_RESTART = 0x400

	I2C_ENABLE_REG_CTRL_ENABLE  = 0x1
	I2C_ENABLE_STATUS_REG_IC_EN = 0x1

	I2C_STATUS_REG_ACTIVITY     = 0x1
	I2C_STATUS_REG_TFNF         = 0x2
	I2C_STATUS_REG_TFE          = 0x4
	I2C_STATUS_REG_RFNE         = 0x8
	I2C_STATUS_REG_MST_ACTIVITY = 0x20

	I2C_TX_ABRT_SOURCE_REG_7B_ADDR_NOACK = 0x1
	I2C_TX_ABRT_SOURCE_REG_TXDATA_NOACK  = 0x8
	I2C_TX_ABRT_SOURCE_REG_ARB_LOST      = 0x1000
)

// GP_ADC_CTRL_REG
const (
	GP_ADC_CTRL_REG_GP_ADC_EN       = 0x1
	GP_ADC_CTRL_REG_GP_ADC_START    = 0x2
	GP_ADC_CTRL_REG_GP_ADC_CONT     = 0x4
	GP_ADC_CTRL_REG_GP_ADC_CLK_SEL  = 0x8
	GP_ADC_CTRL_REG_GP_ADC_INT      = 0x10
	GP_ADC_CTRL_REG_GP_ADC_MINT     = 0x20
	GP_ADC_CTRL_REG_GP_ADC_SE       = 0x40
	GP_ADC_CTRL_REG_GP_ADC_MUTE     = 0x80
	GP_ADC_CTRL_REG_GP_ADC_SIGN     = 0x100
	GP_ADC_CTRL_REG_GP_ADC_CHOP     = 0x200
	GP_ADC_CTRL_REG_GP_ADC_LDO_HOLD = 0x400
	GP_ADC_CTRL_REG_DIE_TEMP_EN     = 0x800
)

// GP_ADC_CTRL2_REG
const (
	GP_ADC_CTRL2_REG_GP_ADC_ATTN_Pos      = 0x0
	GP_ADC_CTRL2_REG_GP_ADC_ATTN_Msk      = 0x3
	GP_ADC_CTRL2_REG_GP_ADC_I20U          = 0x4
	GP_ADC_CTRL2_REG_GP_ADC_OFFS_SH_EN    = 0x8
	GP_ADC_CTRL2_REG_GP_ADC_CONV_NRS_Pos  = 0x5
	GP_ADC_CTRL2_REG_GP_ADC_CONV_NRS_Msk  = 0xE0
	GP_ADC_CTRL2_REG_GP_ADC_SMPL_TIME_Pos = 0x8
	GP_ADC_CTRL2_REG_GP_ADC_SMPL_TIME_Msk = 0xF00
	GP_ADC_CTRL2_REG_GP_ADC_STORE_DEL_Pos = 0xC
	GP_ADC_CTRL2_REG_GP_ADC_STORE_DEL_Msk = 0xF000
)

// GP_ADC_CTRL3_REG
const (
	GP_ADC_CTRL3_REG_GP_ADC_EN_DEL_Pos = 0x0
	GP_ADC_CTRL3_REG_GP_ADC_EN_DEL_Msk = 0xFF
)

// GP_ADC_SEL_REG
const (
	GP_ADC_SEL_REG_GP_ADC_SEL_N_Pos = 0x0
	GP_ADC_SEL_REG_GP_ADC_SEL_N_Msk = 0x7
	GP_ADC_SEL_REG_GP_ADC_SEL_P_Pos = 0x3
	GP_ADC_SEL_REG_GP_ADC_SEL_P_Msk = 0x78
)

// GP_ADC_TRIM_REG
const (
	GP_ADC_TRIM_REG_GP_ADC_OFFS_SH_VREF  = 0x3
	GP_ADC_TRIM_REG_GP_ADC_LDO_LEVEL_Pos = 0x4
	GP_ADC_TRIM_REG_GP_ADC_LDO_LEVEL_Msk = 0x70
)

// GPIO
const (
	P0_MODE_REG_PID_Pos  = 0x0
	P0_MODE_REG_PID_Msk  = 0x3F
	P0_MODE_REG_PUPD_Pos = 0x8
	P0_MODE_REG_PUPD_Msk = 0x300
)

// WATCHDOG
const (
	WATCHDOG_REG_WDOG_VAL_Msk  = 0xFF
	WATCHDOG_CTRL_REG_NMI_RST  = 0x1
	SET_FREEZE_REG_FRZ_SWTIM   = 0x4
	SET_FREEZE_REG_FRZ_WDOG    = 0x8
	RESET_FREEZE_REG_FRZ_SWTIM = 0x4
	RESET_FREEZE_REG_FRZ_WDOG  = 0x8
)

// TIMER0_CTRL_REG
const (
	TIMER0_CTRL_REG_TIM0_CTRL    = 0x1
	TIMER0_CTRL_REG_TIM0_CLK_SEL = 0x2
	TIMER0_CTRL_REG_TIM0_CLK_DIV = 0x4
	TIMER0_CTRL_REG_PWM_MODE     = 0x8
)

// TRIPLE_PWM_CTRL_REG
const (
	TRIPLE_PWM_CTRL_REG_TRIPLE_PWM_ENABLE  = 0x1
	TRIPLE_PWM_CTRL_REG_SW_PAUSE_EN        = 0x2
	TRIPLE_PWM_CTRL_REG_HW_PAUSE_EN        = 0x4
	TRIPLE_PWM_CTRL_REG_TRIPLE_PWM_CLK_SEL = 0x8
)

// OTPC_MODE_REG
const (
	OTPC_MODE_REG_OTPC_MODE_MODE_Pos = 0x0
	OTPC_MODE_REG_OTPC_MODE_MODE_Msk = 0x7
)
