package core

import "strconv"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (set by target code)
	debugPrintln DebugWriter = func(s string) {}

	// debugEnabled controls whether debug output is active.
	// Disabled by default; drivers call DebugPrintln on slow paths only.
	debugEnabled bool
)

// SetDebugWriter sets the platform-specific debug output function.
// Targets point it at the UART or semihosting; tests at t.Log.
func SetDebugWriter(writer DebugWriter) {
	if writer == nil {
		writer = func(string) {}
	}
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled {
		debugPrintln(msg)
	}
}

// Hex formats v as 0x-prefixed hexadecimal without pulling in fmt
func Hex(v uint32) string {
	return "0x" + strconv.FormatUint(uint64(v), 16)
}

// Itoa formats v in decimal
func Itoa(v int) string {
	return strconv.Itoa(v)
}
