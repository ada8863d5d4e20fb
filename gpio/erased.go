package gpio

// anyPin is the shared part of erased handles: the pin number moves from
// the type into a field.
type anyPin struct {
	b   *bank
	n   uint8
	gen uint32
}

func (p anyPin) check() {
	if p.b == nil {
		panic("gpio: use of unowned pin handle")
	}
	p.b.check(p.n, p.gen)
}

func (p anyPin) consume() anyPin {
	p.check()
	return anyPin{b: p.b, n: p.n, gen: p.b.consume(p.n, p.gen)}
}

func (p anyPin) erased() anyPin { return p }

// ID returns the port and number of the pin.
func (p anyPin) ID() ID { return ID{Port0, p.n} }

func (p anyPin) String() string { return p.ID().String() }

// IntoFloatingInput configures the pin as an input without pull resistor.
func (p anyPin) IntoFloatingInput() AnyInput[Floating] {
	return anyInput[Floating](p)
}

// IntoPullUpInput configures the pin as an input with pull-up.
func (p anyPin) IntoPullUpInput() AnyInput[PullUp] {
	return anyInput[PullUp](p)
}

// IntoPullDownInput configures the pin as an input with pull-down.
func (p anyPin) IntoPullDownInput() AnyInput[PullDown] {
	return anyInput[PullDown](p)
}

// IntoOutput configures the pin as a push-pull output.
func (p anyPin) IntoOutput(initial PinState) AnyOutput {
	q := p.consume()
	q.b.output(q.n, initial)
	return AnyOutput{q}
}

// IntoDisconnected returns the pin to its reset configuration.
func (p anyPin) IntoDisconnected() AnyDisconnected {
	q := p.consume()
	q.b.disconnect(q.n)
	return AnyDisconnected{q}
}

func anyInput[P Pull](p anyPin) AnyInput[P] {
	q := p.consume()
	var pull P
	q.b.setMode(q.n, pull.pupd(), pidGPIO)
	return AnyInput[P]{q}
}

// AnyConvertible is implemented by every erased handle.
type AnyConvertible interface {
	erased() anyPin
}

// IntoAnyAlternate routes an erased pin to peripheral function F.
func IntoAnyAlternate[F Function](p AnyConvertible) AnyAlternate[F] {
	q := p.erased().consume()
	var f F
	q.b.setMode(q.n, f.pupd(), f.pid())
	return AnyAlternate[F]{q}
}

// AnyDisconnected is an erased pin in its reset configuration.
type AnyDisconnected struct{ anyPin }

// AnyInput is an erased input pin with pull P.
type AnyInput[P Pull] struct{ anyPin }

// IsHigh reports whether the pin reads high.
func (p AnyInput[P]) IsHigh() bool {
	p.check()
	return p.b.level(p.n) == High
}

// IsLow reports whether the pin reads low.
func (p AnyInput[P]) IsLow() bool { return !p.IsHigh() }

// AnyOutput is an erased push-pull output.
type AnyOutput struct{ anyPin }

// SetHigh drives the pin high.
func (p AnyOutput) SetHigh() { p.Set(High) }

// SetLow drives the pin low.
func (p AnyOutput) SetLow() { p.Set(Low) }

// Set drives the pin to s.
func (p AnyOutput) Set(s PinState) {
	p.check()
	p.b.drive(p.n, s)
}

// Toggle inverts the driven level.
func (p AnyOutput) Toggle() {
	if p.IsSetHigh() {
		p.SetLow()
	} else {
		p.SetHigh()
	}
}

// State returns the level the pin is driven to.
func (p AnyOutput) State() PinState {
	p.check()
	return p.b.level(p.n)
}

// IsSetHigh reports whether the pin is driven high.
func (p AnyOutput) IsSetHigh() bool { return p.State() == High }

// IsSetLow reports whether the pin is driven low.
func (p AnyOutput) IsSetLow() bool { return p.State() == Low }

// AnyAlternate is an erased pin routed to peripheral function F.
type AnyAlternate[F Function] struct{ anyPin }
