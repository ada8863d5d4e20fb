package gpio

// scoped runs f with a copy of p, then puts the mode register and handle
// generation back. The restore is deferred so it also runs when f panics.
func (p pin[N]) scoped(f func(tmp pin[N])) {
	p.check()
	n := p.num()
	mode := p.b.regs.MODE[n].Get()
	gen := p.b.gen[n]
	defer func() {
		p.b.regs.MODE[n].Set(mode)
		p.b.gen[n] = gen
	}()
	f(p)
}

// WithFloatingInput temporarily configures the pin as a floating input for
// the duration of f. The original handle must not be used inside f.
func (p pin[N]) WithFloatingInput(f func(Input[N, Floating])) {
	p.scoped(func(q pin[N]) { f(intoInput[N, Floating](q)) })
}

// WithPullUpInput temporarily configures the pin as a pulled-up input.
func (p pin[N]) WithPullUpInput(f func(Input[N, PullUp])) {
	p.scoped(func(q pin[N]) { f(intoInput[N, PullUp](q)) })
}

// WithPullDownInput temporarily configures the pin as a pulled-down input.
func (p pin[N]) WithPullDownInput(f func(Input[N, PullDown])) {
	p.scoped(func(q pin[N]) { f(intoInput[N, PullDown](q)) })
}

// WithOutput temporarily configures the pin as an output driven to initial.
func (p pin[N]) WithOutput(initial PinState, f func(Output[N])) {
	p.scoped(func(q pin[N]) { f(q.IntoOutput(initial)) })
}
