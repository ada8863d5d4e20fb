package i2c

import (
	"bytes"
	"errors"
	"testing"

	"tinygo.org/x/drivers/shtc3"

	"dahal/core"
	"dahal/crg"
	"dahal/device"
	"dahal/gpio"
)

// target is a fake bus device answering on one address
type target struct {
	addr uint16
	tx   []byte // bytes returned to reads
	got  []byte // bytes written by the master
	cmds []uint32
}

func setup(t *testing.T) (*I2C, *crg.Controller, *device.Sim) {
	t.Helper()
	p, s := device.NewSimulated()
	parts := gpio.Split(p.GPIO)
	sda := gpio.IntoAlternate[gpio.I2CSDA, gpio.P0_01](parts.P0_01).Erase()
	scl := gpio.IntoAlternate[gpio.I2CSCL, gpio.P0_02](parts.P0_02).Erase()
	clk := crg.Constrain(p.CRGTop)
	return Constrain(p.I2C).SetPins(sda, scl), clk, s
}

func (f *target) attach(s *device.Sim) {
	s.OnWrite("I2C_DATA_CMD_REG", func(_, v uint32) uint32 {
		f.cmds = append(f.cmds, v)
		if uint16(s.Peek("I2C_TAR_REG")) != f.addr {
			s.Poke("I2C_TX_ABRT_SOURCE_REG", device.I2C_TX_ABRT_SOURCE_REG_7B_ADDR_NOACK)
			return 0
		}
		if v&device.I2C_DATA_CMD_REG_CMD != 0 {
			var b byte
			if len(f.tx) > 0 {
				b, f.tx = f.tx[0], f.tx[1:]
			}
			s.Poke("I2C_RXFLR_REG", 1)
			return uint32(b)
		}
		f.got = append(f.got, byte(v))
		return 0
	})
	s.OnRead("I2C_DATA_CMD_REG", func(v uint32) uint32 {
		s.Poke("I2C_RXFLR_REG", 0)
		return v
	})
}

func TestStartConfiguresController(t *testing.T) {
	tests := []struct {
		name   string
		speed  Speed
		mode   AddressingMode
		con    uint32
		hcnt   string
		lcnt   string
		counts [2]uint32
	}{
		{"standard 7-bit", Standard, Bits7, 0x63, "I2C_SS_SCL_HCNT_REG", "I2C_SS_SCL_LCNT_REG", [2]uint32{0x48, 0x4F}},
		{"fast 7-bit", Fast, Bits7, 0x65, "I2C_FS_SCL_HCNT_REG", "I2C_FS_SCL_LCNT_REG", [2]uint32{0x08, 0x17}},
		{"standard 10-bit", Standard, Bits10, 0x73, "I2C_SS_SCL_HCNT_REG", "I2C_SS_SCL_LCNT_REG", [2]uint32{0x48, 0x4F}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus, clk, s := setup(t)
			bus.SetSpeed(tt.speed).SetAddressingMode(tt.mode)
			if err := bus.Start(clk); err != nil {
				t.Fatalf("Start: %v", err)
			}
			if !clk.IsEnabled(crg.I2C) {
				t.Error("I2C clock not enabled")
			}
			if got := s.Peek("I2C_CON_REG"); got != tt.con {
				t.Errorf("CON = 0x%02x, want 0x%02x", got, tt.con)
			}
			if s.Peek(tt.hcnt) != tt.counts[0] || s.Peek(tt.lcnt) != tt.counts[1] {
				t.Errorf("SCL counts = 0x%02x/0x%02x", s.Peek(tt.hcnt), s.Peek(tt.lcnt))
			}
			if s.Peek("I2C_ENABLE_STATUS_REG") != 1 {
				t.Error("controller not enabled")
			}
			// The controller must be disabled while CON is written.
			en := s.Writes("I2C_ENABLE_REG")
			if len(en) != 2 || en[0] != 0 || en[1] != 1 {
				t.Errorf("ENABLE writes = %v", en)
			}
			if s.FirstWrite("I2C_CON_REG") > s.LastWrite("I2C_ENABLE_REG") {
				t.Error("CON written after enable")
			}
		})
	}
}

func TestStartWithoutPinsPanics(t *testing.T) {
	p, _ := device.NewSimulated()
	bus := Constrain(p.I2C)
	defer func() {
		if recover() == nil {
			t.Fatal("Start without pins should panic")
		}
	}()
	bus.Start(crg.Constrain(p.CRGTop))
}

func TestNotStarted(t *testing.T) {
	bus, _, _ := setup(t)
	if err := bus.Write(0x10, []byte{1}); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("err = %v, want ErrNotStarted", err)
	}
}

func TestTransactionFraming(t *testing.T) {
	const (
		stop    = device.I2C_DATA_CMD_REG_STOP
		restart = device.I2C_DATA_CMD_REG_RESTART
		cmd     = device.I2C_DATA_CMD_REG_CMD
	)
	tests := []struct {
		name string
		w    []byte
		r    int
		want []uint32
	}{
		{"write", []byte{0xAA, 0xBB}, 0, []uint32{0xAA, 0xBB | stop}},
		{"read", nil, 2, []uint32{cmd, cmd | stop}},
		{"write read", []byte{0x0F}, 3, []uint32{0x0F, cmd | restart, cmd, cmd | stop}},
		{"single read", []byte{0x01}, 1, []uint32{0x01, cmd | restart | stop}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus, clk, s := setup(t)
			if err := bus.Start(clk); err != nil {
				t.Fatal(err)
			}
			f := &target{addr: 0x44, tx: []byte{1, 2, 3}}
			f.attach(s)

			r := make([]byte, tt.r)
			if err := bus.Tx(0x44, tt.w, r); err != nil {
				t.Fatalf("Tx: %v", err)
			}
			if len(f.cmds) != len(tt.want) {
				t.Fatalf("commands = %x, want %x", f.cmds, tt.want)
			}
			for i := range tt.want {
				if f.cmds[i] != tt.want[i] {
					t.Errorf("command %d = 0x%03x, want 0x%03x", i, f.cmds[i], tt.want[i])
				}
			}
			if !bytes.Equal(r, []byte{1, 2, 3}[:tt.r]) {
				t.Errorf("read %v", r)
			}
			if !bytes.Equal(f.got, tt.w) {
				t.Errorf("target received %v, want %v", f.got, tt.w)
			}
		})
	}
}

func TestTargetProgrammedWhileDisabled(t *testing.T) {
	bus, clk, s := setup(t)
	if err := bus.Start(clk); err != nil {
		t.Fatal(err)
	}
	(&target{addr: 0x29}).attach(s)
	s.ResetTrace()

	if err := bus.Write(0x29, []byte{0}); err != nil {
		t.Fatal(err)
	}
	tar := s.FirstWrite("I2C_TAR_REG")
	en := s.Writes("I2C_ENABLE_REG")
	if tar < 0 || len(en) != 2 || en[0] != 0 || en[1] != 1 {
		t.Fatalf("TAR at %d, ENABLE writes %v", tar, en)
	}
	if s.FirstWrite("I2C_ENABLE_REG") > tar || s.LastWrite("I2C_ENABLE_REG") < tar {
		t.Error("TAR must be written between disable and enable")
	}
	if s.Peek("I2C_TAR_REG") != 0x29 {
		t.Errorf("TAR = 0x%x", s.Peek("I2C_TAR_REG"))
	}
}

func TestAbort(t *testing.T) {
	bus, clk, s := setup(t)
	if err := bus.Start(clk); err != nil {
		t.Fatal(err)
	}
	(&target{addr: 0x50}).attach(s)

	var logged []string
	core.SetDebugWriter(func(m string) { logged = append(logged, m) })
	core.SetDebugEnabled(true)
	t.Cleanup(func() {
		core.SetDebugWriter(nil)
		core.SetDebugEnabled(false)
	})

	err := bus.Write(0x51, []byte{1})
	if !errors.Is(err, ErrTransmit) || errors.Is(err, ErrReceive) {
		t.Fatalf("write err = %v, want ErrTransmit", err)
	}
	var ab *AbortError
	if !errors.As(err, &ab) || !ab.NoAck() {
		t.Fatalf("want a no-ack abort, got %v", err)
	}
	if s.Peek("I2C_TX_ABRT_SOURCE_REG") != 0 {
		t.Error("abort source not acknowledged")
	}
	t.Logf("logged: %v", logged)
	if len(logged) == 0 {
		t.Error("abort not logged")
	}

	err = bus.Read(0x51, make([]byte, 1))
	if !errors.Is(err, ErrReceive) {
		t.Fatalf("read err = %v, want ErrReceive", err)
	}

	// The bus keeps working after an abort.
	if err := bus.Write(0x50, []byte{7}); err != nil {
		t.Fatalf("write after abort: %v", err)
	}
}

func TestBusStuckTimesOut(t *testing.T) {
	old := core.SpinLimit
	core.SpinLimit = 100
	t.Cleanup(func() { core.SpinLimit = old })

	bus, clk, s := setup(t)
	if err := bus.Start(clk); err != nil {
		t.Fatal(err)
	}
	(&target{addr: 0x10}).attach(s)
	s.Poke("I2C_STATUS_REG", device.I2C_STATUS_REG_TFE|device.I2C_STATUS_REG_MST_ACTIVITY)

	err := bus.Write(0x10, []byte{1})
	if !errors.Is(err, core.ErrTimeout) {
		t.Fatalf("err = %v, want timeout", err)
	}
	if core.Of(err) != core.ErrTimeout {
		t.Errorf("code = %q", core.Of(err))
	}
}

func TestRegisterHelpers(t *testing.T) {
	bus, clk, s := setup(t)
	if err := bus.Start(clk); err != nil {
		t.Fatal(err)
	}
	f := &target{addr: 0x1D, tx: []byte{0xE5}}
	f.attach(s)

	if err := bus.WriteRegister(0x1D, 0x2D, []byte{0x08}); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 1)
	if err := bus.ReadRegister(0x1D, 0x00, buf); err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0xE5 || !bytes.Equal(f.got, []byte{0x2D, 0x08, 0x00}) {
		t.Errorf("buf=%x got=%x", buf, f.got)
	}
}

func TestDrivesSHTC3(t *testing.T) {
	bus, clk, s := setup(t)
	if err := bus.Start(clk); err != nil {
		t.Fatal(err)
	}
	f := &target{addr: 0x70}
	f.attach(s)

	dev := shtc3.New(bus)
	if err := dev.WakeUp(); err != nil {
		t.Fatalf("WakeUp: %v", err)
	}
	if s.Peek("I2C_TAR_REG") != 0x70 {
		t.Errorf("TAR = 0x%x", s.Peek("I2C_TAR_REG"))
	}
	if !bytes.Equal(f.got, []byte{0x35, 0x17}) {
		t.Errorf("wakeup command = %x", f.got)
	}
	last := f.cmds[len(f.cmds)-1]
	if last&device.I2C_DATA_CMD_REG_STOP == 0 {
		t.Error("transaction not terminated with STOP")
	}
}
