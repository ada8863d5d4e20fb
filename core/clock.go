package core

// Clock sources of the DA14531.
const (
	SysClockHz = 16_000_000 // XTAL32M divided down to the 16 MHz system clock
	LPClockHz  = 32_768     // XTAL32K low-power clock
)

// CyclesFromMicros converts microseconds to system clock cycles
func CyclesFromMicros(us uint32) uint32 {
	return us * (SysClockHz / 1_000_000)
}

// MicrosFromCycles converts system clock cycles to microseconds
func MicrosFromCycles(cycles uint32) uint32 {
	return cycles / (SysClockHz / 1_000_000)
}
