//go:build !tinygo

package core

import "sync"

// On the host, interrupt handlers are modelled as goroutines. A process-wide
// mutex stands in for PRIMASK so read-modify-write sequences guarded by
// Critical are atomic with respect to them. Critical sections must not nest.
var critical sync.Mutex

// Critical runs fn with interrupts masked
func Critical(fn func()) {
	critical.Lock()
	defer critical.Unlock()
	fn()
}
