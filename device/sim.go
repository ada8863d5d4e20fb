package device

import (
	"strconv"
	"sync"

	"dahal/core"
)

// EventKind distinguishes register writes from CPU intrinsics in a trace
type EventKind uint8

const (
	EventWrite EventKind = iota + 1
	EventCPU
)

// Event is one entry of the simulator trace
type Event struct {
	Kind  EventKind
	Name  string // register name, or the intrinsic for EventCPU
	Value uint32 // value written, or the intrinsic argument
	Op    core.CPUOp
}

func (e Event) String() string {
	if e.Kind == EventCPU {
		if e.Op == core.OpDelay {
			return e.Name + "(" + strconv.FormatUint(uint64(e.Value), 10) + ")"
		}
		return e.Name
	}
	return e.Name + "=" + core.Hex(e.Value)
}

// WriteHook models hardware side effects of a write. It receives the
// previous and the written value and returns the value to store.
type WriteHook func(old, v uint32) uint32

// ReadHook models hardware side effects of a read and returns the value
// seen by the driver.
type ReadHook func(v uint32) uint32

// Sim is an in-memory register file for host builds and tests
type Sim struct {
	mu    sync.Mutex
	regs  map[string]*SimRegister
	trace []Event
}

// SimRegister is a simulated register; it implements core.Register
type SimRegister struct {
	sim     *Sim
	info    RegisterInfo
	value   uint32
	onWrite WriteHook
	onRead  ReadHook
}

// NewSimulated returns a peripheral set backed by a fresh simulator. The
// simulator also becomes the CPU intrinsic observer.
func NewSimulated() (*Peripherals, *Sim) {
	s := &Sim{regs: make(map[string]*SimRegister, len(registerMap))}
	p := build(func(info RegisterInfo) core.Register {
		r := &SimRegister{sim: s, info: info, value: info.Reset}
		s.regs[info.Name] = r
		return r
	})
	s.installModels()
	core.SetCPUObserver(s.recordCPU)
	return p, s
}

func (r *SimRegister) mask() uint32 {
	if r.info.Width == 32 {
		return 0xFFFFFFFF
	}
	return 0xFFFF
}

// Get reads the register, applying any read hook
func (r *SimRegister) Get() uint32 {
	r.sim.mu.Lock()
	v, hook := r.value, r.onRead
	r.sim.mu.Unlock()
	if hook != nil {
		v = hook(v)
	}
	return v & r.mask()
}

// Set writes the register, applying any write hook, and records the write
func (r *SimRegister) Set(v uint32) {
	v &= r.mask()
	r.sim.mu.Lock()
	old, hook := r.value, r.onWrite
	r.sim.mu.Unlock()
	stored := v
	if hook != nil {
		stored = hook(old, v) & r.mask()
	}
	r.sim.mu.Lock()
	r.value = stored
	r.sim.trace = append(r.sim.trace, Event{Kind: EventWrite, Name: r.info.Name, Value: v})
	r.sim.mu.Unlock()
}

func (r *SimRegister) SetBits(mask uint32)      { r.Set(r.Get() | mask) }
func (r *SimRegister) ClearBits(mask uint32)    { r.Set(r.Get() &^ mask) }
func (r *SimRegister) HasBits(mask uint32) bool { return r.Get()&mask != 0 }

func (r *SimRegister) ReplaceBits(value, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}

func (s *Sim) reg(name string) *SimRegister {
	r, ok := s.regs[name]
	if !ok {
		panic("device: no simulated register " + name)
	}
	return r
}

// Peek returns the stored value without running hooks
func (s *Sim) Peek(name string) uint32 {
	r := s.reg(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	return r.value
}

// Poke stores a value without hooks or tracing, as the hardware would
func (s *Sim) Poke(name string, v uint32) {
	r := s.reg(name)
	s.mu.Lock()
	r.value = v & r.mask()
	s.mu.Unlock()
}

// OnWrite replaces the write hook of a register
func (s *Sim) OnWrite(name string, hook WriteHook) {
	r := s.reg(name)
	s.mu.Lock()
	r.onWrite = hook
	s.mu.Unlock()
}

// OnRead replaces the read hook of a register
func (s *Sim) OnRead(name string, hook ReadHook) {
	r := s.reg(name)
	s.mu.Lock()
	r.onRead = hook
	s.mu.Unlock()
}

func (s *Sim) recordCPU(op core.CPUOp, arg uint32) {
	s.mu.Lock()
	s.trace = append(s.trace, Event{Kind: EventCPU, Name: op.String(), Value: arg, Op: op})
	s.mu.Unlock()
}

// Trace returns a copy of the recorded events
func (s *Sim) Trace() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.trace))
	copy(out, s.trace)
	return out
}

// ResetTrace discards the recorded events
func (s *Sim) ResetTrace() {
	s.mu.Lock()
	s.trace = s.trace[:0]
	s.mu.Unlock()
}

// Writes returns the values written to a register, oldest first
func (s *Sim) Writes(name string) []uint32 {
	var out []uint32
	for _, e := range s.Trace() {
		if e.Kind == EventWrite && e.Name == name {
			out = append(out, e.Value)
		}
	}
	return out
}

// FirstWrite returns the trace index of the first write to name, or -1
func (s *Sim) FirstWrite(name string) int {
	for i, e := range s.Trace() {
		if e.Kind == EventWrite && e.Name == name {
			return i
		}
	}
	return -1
}

// LastWrite returns the trace index of the last write to name, or -1
func (s *Sim) LastWrite(name string) int {
	tr := s.Trace()
	for i := len(tr) - 1; i >= 0; i-- {
		if tr[i].Kind == EventWrite && tr[i].Name == name {
			return i
		}
	}
	return -1
}

// FirstCPU returns the trace index of the first occurrence of op, or -1
func (s *Sim) FirstCPU(op core.CPUOp) int {
	for i, e := range s.Trace() {
		if e.Kind == EventCPU && e.Op == op {
			return i
		}
	}
	return -1
}

// installModels adds the hardware behaviour drivers rely on when polling
func (s *Sim) installModels() {
	// GPIO set/reset registers act on the data register and read as zero.
	s.OnWrite("P0_SET_DATA_REG", func(_, v uint32) uint32 {
		s.Poke("P0_DATA_REG", s.Peek("P0_DATA_REG")|v)
		return 0
	})
	s.OnWrite("P0_RESET_DATA_REG", func(_, v uint32) uint32 {
		s.Poke("P0_DATA_REG", s.Peek("P0_DATA_REG")&^v)
		return 0
	})

	// NVIC set/clear pairs share one state word.
	pair := func(set, clr string) {
		s.OnWrite(set, func(old, v uint32) uint32 {
			n := old | v
			s.Poke(clr, n)
			return n
		})
		s.OnWrite(clr, func(old, v uint32) uint32 {
			n := old &^ v
			s.Poke(set, n)
			return n
		})
	}
	pair("NVIC_ISER", "NVIC_ICER")
	pair("NVIC_ISPR", "NVIC_ICPR")

	// I2C enable status follows the enable bit; reading the clear
	// register acknowledges the abort source.
	s.OnWrite("I2C_ENABLE_REG", func(_, v uint32) uint32 {
		s.Poke("I2C_ENABLE_STATUS_REG", v&I2C_ENABLE_REG_CTRL_ENABLE)
		return v
	})
	s.OnRead("I2C_CLR_TX_ABRT_REG", func(v uint32) uint32 {
		s.Poke("I2C_TX_ABRT_SOURCE_REG", 0)
		return v
	})

	// ADC conversions complete instantly: the start bit self-clears and
	// the interrupt flag rises until cleared.
	s.OnWrite("GP_ADC_CTRL_REG", func(_, v uint32) uint32 {
		if v&GP_ADC_CTRL_REG_GP_ADC_START != 0 {
			v &^= GP_ADC_CTRL_REG_GP_ADC_START
			v |= GP_ADC_CTRL_REG_GP_ADC_INT
		}
		return v
	})
	s.OnWrite("GP_ADC_CLEAR_INT_REG", func(_, v uint32) uint32 {
		s.Poke("GP_ADC_CTRL_REG", s.Peek("GP_ADC_CTRL_REG")&^GP_ADC_CTRL_REG_GP_ADC_INT)
		return 0
	})
}
