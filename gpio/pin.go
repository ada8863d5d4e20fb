package gpio

// pin is the part shared by every typed handle: the owning bank and the
// generation that proves the handle is current.
type pin[N Number] struct {
	b   *bank
	gen uint32
}

func (p pin[N]) num() uint8 {
	var n N
	return n.Number()
}

func (p pin[N]) check() {
	if p.b == nil {
		panic("gpio: use of unowned pin handle")
	}
	p.b.check(p.num(), p.gen)
}

func (p pin[N]) consume() pin[N] {
	p.check()
	return pin[N]{b: p.b, gen: p.b.consume(p.num(), p.gen)}
}

func (p pin[N]) base() pin[N] { return p }

func (p pin[N]) erase() anyPin {
	q := p.consume()
	return anyPin{b: q.b, n: q.num(), gen: q.gen}
}

// ID returns the port and number of the pin.
func (p pin[N]) ID() ID { return ID{Port0, p.num()} }

func (p pin[N]) String() string { return p.ID().String() }

// IntoFloatingInput configures the pin as an input without pull resistor.
func (p pin[N]) IntoFloatingInput() Input[N, Floating] {
	return intoInput[N, Floating](p)
}

// IntoPullUpInput configures the pin as an input with pull-up.
func (p pin[N]) IntoPullUpInput() Input[N, PullUp] {
	return intoInput[N, PullUp](p)
}

// IntoPullDownInput configures the pin as an input with pull-down.
func (p pin[N]) IntoPullDownInput() Input[N, PullDown] {
	return intoInput[N, PullDown](p)
}

// IntoOutput configures the pin as a push-pull output. The level is latched
// before the mode changes so the pin never glitches.
func (p pin[N]) IntoOutput(initial PinState) Output[N] {
	q := p.consume()
	q.b.output(q.num(), initial)
	return Output[N]{q}
}

// IntoDisconnected returns the pin to its reset configuration.
func (p pin[N]) IntoDisconnected() Disconnected[N] {
	q := p.consume()
	q.b.disconnect(q.num())
	return Disconnected[N]{q}
}

func intoInput[N Number, P Pull](p pin[N]) Input[N, P] {
	q := p.consume()
	var pull P
	q.b.setMode(q.num(), pull.pupd(), pidGPIO)
	return Input[N, P]{q}
}

// Convertible is implemented by every typed handle of pin N.
type Convertible[N Number] interface {
	base() pin[N]
}

// IntoAlternate routes pin N to peripheral function F.
func IntoAlternate[F Function, N Number](p Convertible[N]) Alternate[N, F] {
	q := p.base().consume()
	var f F
	q.b.setMode(q.num(), f.pupd(), f.pid())
	return Alternate[N, F]{q}
}

// Disconnected is a pin in its reset configuration.
type Disconnected[N Number] struct{ pin[N] }

// Erase drops the pin number from the type.
func (p Disconnected[N]) Erase() AnyDisconnected {
	return AnyDisconnected{p.erase()}
}

// Input is a pin configured as a digital input with pull P.
type Input[N Number, P Pull] struct{ pin[N] }

// IsHigh reports whether the pin reads high.
func (p Input[N, P]) IsHigh() bool {
	p.check()
	return p.b.level(p.num()) == High
}

// IsLow reports whether the pin reads low.
func (p Input[N, P]) IsLow() bool { return !p.IsHigh() }

// Erase drops the pin number from the type.
func (p Input[N, P]) Erase() AnyInput[P] {
	return AnyInput[P]{p.erase()}
}

// Output is a pin configured as a push-pull output.
type Output[N Number] struct{ pin[N] }

// SetHigh drives the pin high.
func (p Output[N]) SetHigh() { p.Set(High) }

// SetLow drives the pin low.
func (p Output[N]) SetLow() { p.Set(Low) }

// Set drives the pin to s.
func (p Output[N]) Set(s PinState) {
	p.check()
	p.b.drive(p.num(), s)
}

// Toggle inverts the driven level.
func (p Output[N]) Toggle() {
	if p.IsSetHigh() {
		p.SetLow()
	} else {
		p.SetHigh()
	}
}

// State returns the level the pin is driven to.
func (p Output[N]) State() PinState {
	p.check()
	return p.b.level(p.num())
}

// IsSetHigh reports whether the pin is driven high.
func (p Output[N]) IsSetHigh() bool { return p.State() == High }

// IsSetLow reports whether the pin is driven low.
func (p Output[N]) IsSetLow() bool { return p.State() == Low }

// Erase drops the pin number from the type.
func (p Output[N]) Erase() AnyOutput {
	return AnyOutput{p.erase()}
}

// Alternate is a pin routed to peripheral function F.
type Alternate[N Number, F Function] struct{ pin[N] }

// Erase drops the pin number from the type.
func (p Alternate[N, F]) Erase() AnyAlternate[F] {
	return AnyAlternate[F]{p.erase()}
}

// Readable is implemented by input handles, typed or erased.
type Readable interface {
	ID() ID
	IsHigh() bool
	IsLow() bool
}

var (
	_ Readable = Input[P0_00, Floating]{}
	_ Readable = AnyInput[PullUp]{}
)
