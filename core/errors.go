package core

import "errors"

// Code is a short, stable error identifier. It is comparable, allocation
// free and implements error, so it can be returned directly or carried over
// the monitor link as text.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes.
const (
	OK              Code = "ok"
	ErrTimeout      Code = "timeout"
	ErrUnknownReg   Code = "unknown_register"
	ErrReadOnly     Code = "read_only"
	ErrInvalidParam Code = "invalid_params"
	ErrUnsupported  Code = "unsupported"
	ErrGeneric      Code = "error"
)

// Coder is implemented by wrapped errors that carry a Code.
type Coder interface {
	Code() Code
}

// Of extracts a Code from an error chain, defaulting to ErrGeneric.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	var x Coder
	if errors.As(err, &x) {
		return x.Code()
	}
	return ErrGeneric
}
