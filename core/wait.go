package core

// DefaultSpinLimit bounds every busy-wait on a hardware status bit. At
// 16 MHz one iteration costs a handful of cycles, so the default gives up
// after roughly half a second.
const DefaultSpinLimit = 1_000_000

// SpinLimit is the number of polls WaitFor performs before giving up.
// Tests lower it to exercise timeout paths quickly.
var SpinLimit = DefaultSpinLimit

// WaitFor polls cond until it reports true or SpinLimit polls have been made.
func WaitFor(cond func() bool) error {
	return WaitForN(SpinLimit, cond)
}

// WaitForN polls cond at most limit times. A non-positive limit polls once.
func WaitForN(limit int, cond func() bool) error {
	if limit < 1 {
		limit = 1
	}
	for i := 0; i < limit; i++ {
		if cond() {
			return nil
		}
	}
	return ErrTimeout
}
