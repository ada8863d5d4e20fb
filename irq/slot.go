// Package irq holds interrupt handler slots. A slot is assigned once and
// then read from interrupt context without locking.
package irq

import (
	"errors"
	"sync/atomic"
)

var (
	ErrAlreadyRegistered = errors.New("irq: handler already registered")
	ErrNilHandler        = errors.New("irq: nil handler")
)

// Slot is a single-assignment handler cell for one interrupt vector
type Slot struct {
	fn atomic.Pointer[func()]
}

// Register installs fn. Only the first registration succeeds.
func (s *Slot) Register(fn func()) error {
	if fn == nil {
		return ErrNilHandler
	}
	if !s.fn.CompareAndSwap(nil, &fn) {
		return ErrAlreadyRegistered
	}
	return nil
}

// Registered reports whether a handler is installed
func (s *Slot) Registered() bool {
	return s.fn.Load() != nil
}

// Invoke runs the handler if one is installed and reports whether it did
func (s *Slot) Invoke() bool {
	if fn := s.fn.Load(); fn != nil {
		(*fn)()
		return true
	}
	return false
}
