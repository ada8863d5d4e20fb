package wkup

import (
	"errors"
	"testing"

	"dahal/crg"
	"dahal/device"
	"dahal/gpio"
	"dahal/irq"
	"dahal/nvic"
)

type rig struct {
	c     *Controller
	clk   *crg.Controller
	nv    *nvic.Controller
	parts *gpio.Parts
	s     *device.Sim
}

func setup(t *testing.T) rig {
	t.Helper()
	p, s := device.NewSimulated()
	return rig{
		c:     Constrain(p.Wkup),
		clk:   crg.Constrain(p.CRGTop),
		nv:    nvic.Constrain(p.NVIC),
		parts: gpio.Split(p.GPIO),
		s:     s,
	}
}

func TestEnableIRQ(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		pol    uint32
		deb    uint32
		events uint32
	}{
		{"active high", Config{Polarity: ActiveHigh, Events: 1, Debounce: 10}, 1 << 3, 10, 0},
		{"active low", Config{Polarity: ActiveLow, Events: 4, Debounce: 0x7F}, 0, 0x3F, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setup(t)
			pin := r.parts.P0_03.IntoPullUpInput()
			r.s.ResetTrace()

			r.c.EnableIRQ(r.clk, r.nv, pin, tt.cfg)

			if !r.clk.IsEnabled(crg.WakeupCtrl) {
				t.Error("wakeup clock off")
			}
			if r.s.FirstWrite("CLK_PER_REG") > r.s.FirstWrite("WKUP_IRQ_STATUS_REG") {
				t.Error("clock must be enabled before the controller is touched")
			}
			if got := r.s.Writes("WKUP_IRQ_STATUS_REG"); len(got) != 1 || got[0]&device.WKUP_IRQ_STATUS_REG_WKUP_CNTR_RST == 0 {
				t.Errorf("counter reset writes = %v", got)
			}
			ctrl := r.s.Peek("WKUP_CTRL_REG")
			if ctrl&device.WKUP_CTRL_REG_WKUP_DEB_VALUE_Msk != tt.deb || ctrl&device.WKUP_CTRL_REG_WKUP_ENABLE_IRQ == 0 {
				t.Errorf("CTRL = 0x%x", ctrl)
			}
			if got := r.s.Peek("WKUP_POL_GPIO_REG"); got != tt.pol {
				t.Errorf("POL = 0x%x, want 0x%x", got, tt.pol)
			}
			if got := r.s.Peek("WKUP_COMPARE_REG"); got != tt.events {
				t.Errorf("COMPARE = %d, want %d", got, tt.events)
			}
			if got := r.s.Peek("WKUP_SELECT_GPIO_REG"); got != 1<<3 {
				t.Errorf("SELECT = 0x%x", got)
			}
			if !r.nv.IsEnabled(nvic.IrqWakeupQuadDec) || r.nv.Priority(nvic.IrqWakeupQuadDec) != 2 {
				t.Error("WKUP_QUADEC not enabled at priority 2")
			}
		})
	}
}

func TestEnableIRQZeroEventsPanics(t *testing.T) {
	r := setup(t)
	pin := r.parts.P0_01.IntoFloatingInput().Erase()
	defer func() {
		if recover() == nil {
			t.Fatal("zero events should panic")
		}
	}()
	r.c.EnableIRQ(r.clk, r.nv, pin, Config{})
}

func TestHandleInterrupt(t *testing.T) {
	r := setup(t)
	r.c.EnableIRQ(r.clk, r.nv, r.parts.P0_02.IntoPullDownInput(), Config{Events: 1})

	var hits int
	if err := r.c.RegisterHandler(func() { hits++ }); err != nil {
		t.Fatal(err)
	}
	if err := r.c.RegisterHandler(func() {}); !errors.Is(err, irq.ErrAlreadyRegistered) {
		t.Fatalf("second registration: %v", err)
	}
	r.s.ResetTrace()

	HandleInterrupt()

	if hits != 1 {
		t.Fatalf("hits = %d", hits)
	}
	if r.s.Peek("WKUP_IRQ_STATUS_REG")&device.WKUP_IRQ_STATUS_REG_WKUP_IRQ_STATUS == 0 {
		t.Error("interrupt not acknowledged")
	}
	if r.s.Peek("WKUP_CTRL_REG")&device.WKUP_CTRL_REG_WKUP_ENABLE_IRQ != 0 {
		t.Error("wakeup interrupt left enabled")
	}
	if r.s.LastWrite("WKUP_CTRL_REG") < r.s.FirstWrite("WKUP_IRQ_STATUS_REG") {
		t.Error("acknowledge must precede disabling")
	}
}
