package gpio

// Pull is the input pull configuration of an Input pin.
type Pull interface {
	Floating | PullUp | PullDown
	pupd() uint32
}

type (
	Floating struct{}
	PullUp   struct{}
	PullDown struct{}
)

func (Floating) pupd() uint32 { return pupdInput }
func (PullUp) pupd() uint32   { return pupdPullUp }
func (PullDown) pupd() uint32 { return pupdPullDown }

// Function is a peripheral function an Alternate pin is routed to.
type Function interface {
	UARTRX | UARTTX | UART2RX | UART2TX |
		SPIDI | SPIDO | SPICLK | SPIEN |
		I2CSCL | I2CSDA | ADC |
		PWM0 | PWM1 | PWM2 | PWM3 | PWM4
	pid() uint32
	pupd() uint32
}

// Peripheral function markers.
type (
	UARTRX  struct{}
	UARTTX  struct{}
	UART2RX struct{}
	UART2TX struct{}
	SPIDI   struct{}
	SPIDO   struct{}
	SPICLK  struct{}
	SPIEN   struct{}
	I2CSCL  struct{}
	I2CSDA  struct{}
	ADC     struct{}
	PWM0    struct{}
	PWM1    struct{}
	PWM2    struct{}
	PWM3    struct{}
	PWM4    struct{}
)

func (UARTRX) pid() uint32  { return 1 }
func (UARTTX) pid() uint32  { return 2 }
func (UART2RX) pid() uint32 { return 3 }
func (UART2TX) pid() uint32 { return 4 }
func (SPIDI) pid() uint32   { return 5 }
func (SPIDO) pid() uint32   { return 6 }
func (SPICLK) pid() uint32  { return 7 }
func (SPIEN) pid() uint32   { return 8 }
func (I2CSCL) pid() uint32  { return 9 }
func (I2CSDA) pid() uint32  { return 10 }
func (ADC) pid() uint32     { return 15 }
func (PWM0) pid() uint32    { return 16 }
func (PWM1) pid() uint32    { return 17 }
func (PWM2) pid() uint32    { return 25 }
func (PWM3) pid() uint32    { return 26 }
func (PWM4) pid() uint32    { return 27 }

// Receive-side functions idle as inputs with a pull-up; the rest drive.
func (UARTRX) pupd() uint32  { return pupdPullUp }
func (UARTTX) pupd() uint32  { return pupdOutput }
func (UART2RX) pupd() uint32 { return pupdPullUp }
func (UART2TX) pupd() uint32 { return pupdOutput }
func (SPIDI) pupd() uint32   { return pupdInput }
func (SPIDO) pupd() uint32   { return pupdOutput }
func (SPICLK) pupd() uint32  { return pupdOutput }
func (SPIEN) pupd() uint32   { return pupdOutput }
func (I2CSCL) pupd() uint32  { return pupdInput }
func (I2CSDA) pupd() uint32  { return pupdInput }
func (ADC) pupd() uint32     { return pupdInput }
func (PWM0) pupd() uint32    { return pupdOutput }
func (PWM1) pupd() uint32    { return pupdOutput }
func (PWM2) pupd() uint32    { return pupdOutput }
func (PWM3) pupd() uint32    { return pupdOutput }
func (PWM4) pupd() uint32    { return pupdOutput }
