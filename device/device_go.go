//go:build !tinygo

package device

var hostSim *Sim

// newPeripherals backs the peripheral set with the simulator on the host
func newPeripherals() *Peripherals {
	p, s := NewSimulated()
	hostSim = s
	return p
}

// Simulator returns the simulator behind the set handed out by Take, or
// nil before Take has been called.
func Simulator() *Sim {
	return hostSim
}
