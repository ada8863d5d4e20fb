package aon

import (
	"errors"
	"strings"
	"testing"

	"dahal/core"
	"dahal/crg"
	"dahal/device"
	"dahal/gpio"
	"dahal/nvic"
	"dahal/wdog"
)

type rig struct {
	aon   *AON
	nv    *nvic.Controller
	clk   *crg.Controller
	wd    *wdog.Watchdog
	parts *gpio.Parts
	s     *device.Sim
}

func setup(t *testing.T) rig {
	t.Helper()
	p, s := device.NewSimulated()
	t.Cleanup(core.EnableInterrupts)
	// Wakeup pins idle at the inactive level unless a test says otherwise.
	s.Poke("ANA_STATUS_REG", device.ANA_STATUS_REG_CLKLESS_WAKEUP_STAT)
	return rig{
		aon:   Constrain(p.CRGAon),
		nv:    nvic.Constrain(p.NVIC),
		clk:   crg.Constrain(p.CRGTop),
		wd:    wdog.Constrain(p.Watchdog, p.GPReg),
		parts: gpio.Split(p.GPIO),
		s:     s,
	}
}

func traceStrings(s *device.Sim) []string {
	var out []string
	for _, e := range s.Trace() {
		out = append(out, e.String())
	}
	return out
}

func TestHibernationSequence(t *testing.T) {
	tests := []struct {
		name  string
		boost bool
		cfg   func(r rig) SleepConfig
		want  []string
	}{
		{
			name: "buck, nothing retained",
			cfg: func(r rig) SleepConfig {
				return EnableWakeupPin(NewSleepConfig(), r.parts.P0_03.IntoPullUpInput())
			},
			want: []string{
				"SET_FREEZE_REG=0x8",
				"cpsid",
				"NVIC_ICPR=0xffffffff",
				"SYS_CTRL_REG=0x0",
				"HIBERN_CTRL_REG=0x4",
				"HIBERN_CTRL_REG=0x104",
				"sleepdeep",
				"RAM_PWR_CTRL_REG=0x3f",
				"SYS_CTRL_REG=0x0",
				"PAD_LATCH_REG=0x0",
				"RAM_LPMX_REG=0x7",
				"POWER_AON_CTRL_REG=0x2f60",
				"POWER_AON_CTRL_REG=0x2f60",
				"POWER_AON_CTRL_REG=0x3760",
				"GP_DATA_REG=0x2",
				"nop", "nop", "nop",
				"wfi",
			},
		},
		{
			name:  "boost, RAM3 retained and remapped",
			boost: true,
			cfg: func(r rig) SleepConfig {
				return EnableWakeupPin(NewSleepConfig(), r.parts.P0_01.IntoFloatingInput()).
					EnablePins(0x10).
					SetRAMPower(false, false, true).
					SetRemapAddr(crg.RemapRAM3).
					SetPadLatchEn(true)
			},
			want: []string{
				"SET_FREEZE_REG=0x8",
				"cpsid",
				"NVIC_ICPR=0xffffffff",
				"SYS_CTRL_REG=0x0",
				"HIBERN_CTRL_REG=0x11",
				"HIBERN_CTRL_REG=0x111",
				"sleepdeep",
				"RAM_PWR_CTRL_REG=0x2f",
				"SYS_CTRL_REG=0x3",
				"PAD_LATCH_REG=0x1",
				"RAM_LPMX_REG=0x7",
				"POWER_AON_CTRL_REG=0x2ee0",
				"POWER_AON_CTRL_REG=0x2ed0",
				"POWER_AON_CTRL_REG=0x36d0",
				"GP_DATA_REG=0x2",
				"nop", "nop", "nop",
				"wfi",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setup(t)
			if tt.boost {
				r.s.Poke("ANA_STATUS_REG", device.ANA_STATUS_REG_CLKLESS_WAKEUP_STAT|device.ANA_STATUS_REG_BOOST_SELECTED)
			}
			cfg := tt.cfg(r)
			r.s.ResetTrace()

			if err := r.aon.EnterHibernation(r.nv, r.clk, r.wd, cfg); err != nil {
				t.Fatalf("EnterHibernation: %v", err)
			}

			got := traceStrings(r.s)
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("trace mismatch\n got: %v\nwant: %v", got, tt.want)
			}
			if r.aon.Stage() != Asleep {
				t.Errorf("stage = %s", r.aon.Stage())
			}
			if !core.InterruptsMasked() {
				t.Error("interrupts must stay masked")
			}
		})
	}
}

func TestWakeupPolarityFlip(t *testing.T) {
	r := setup(t)
	// The wakeup tree only settles once the polarity is inverted.
	r.s.OnRead("ANA_STATUS_REG", func(uint32) uint32 {
		if r.s.Peek("HIBERN_CTRL_REG")&device.HIBERN_CTRL_REG_HIBERN_WKUP_POLARITY != 0 {
			return device.ANA_STATUS_REG_CLKLESS_WAKEUP_STAT
		}
		return 0
	})
	cfg := EnableWakeupPin(NewSleepConfig(), r.parts.P0_02.IntoPullDownInput())
	r.s.ResetTrace()

	if err := r.aon.EnterHibernation(r.nv, r.clk, r.wd, cfg); err != nil {
		t.Fatal(err)
	}
	w := r.s.Writes("HIBERN_CTRL_REG")
	want := []uint32{0x02, 0x22, 0x122}
	if len(w) != len(want) {
		t.Fatalf("HIBERN_CTRL writes = %x, want %x", w, want)
	}
	for i := range want {
		if w[i] != want[i] {
			t.Errorf("HIBERN_CTRL write %d = 0x%x, want 0x%x", i, w[i], want[i])
		}
	}
}

func TestWaitTimeouts(t *testing.T) {
	old := core.SpinLimit
	core.SpinLimit = 20
	t.Cleanup(func() { core.SpinLimit = old })

	tests := []struct {
		name    string
		rig     func(r rig)
		failing Stage
		reached Stage
	}{
		{
			name:    "debugger never detaches",
			rig:     func(r rig) { r.s.Poke("SYS_STAT_REG", device.SYS_STAT_REG_DBG_IS_UP) },
			failing: DebugQuiesced,
			reached: Preparing,
		},
		{
			name:    "wakeup tree never settles",
			rig:     func(r rig) { r.s.Poke("ANA_STATUS_REG", 0) },
			failing: WakeupArmed,
			reached: DebugQuiesced,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setup(t)
			tt.rig(r)
			cfg := EnableWakeupPin(NewSleepConfig(), r.parts.P0_04.IntoPullUpInput())
			sysCtrl := r.s.Peek("SYS_CTRL_REG")
			hibern := r.s.Peek("HIBERN_CTRL_REG")

			err := r.aon.EnterHibernation(r.nv, r.clk, r.wd, cfg)

			var se *SleepError
			if !errors.As(err, &se) {
				t.Fatalf("err = %v, want *SleepError", err)
			}
			t.Logf("error: %v", err)
			if se.Stage != tt.failing || !errors.Is(err, core.ErrTimeout) {
				t.Errorf("SleepError = %+v", se)
			}
			if r.aon.Stage() != tt.reached {
				t.Errorf("stage = %s, want %s", r.aon.Stage(), tt.reached)
			}
			if core.InterruptsMasked() {
				t.Error("interrupts left masked after failure")
			}
			if len(r.s.Writes("RESET_FREEZE_REG")) != 1 {
				t.Error("watchdog not resumed")
			}
			if r.s.FirstCPU(core.OpWFI) >= 0 {
				t.Error("core halted despite failure")
			}
			if got := r.s.Peek("SYS_CTRL_REG"); got != sysCtrl {
				t.Errorf("SYS_CTRL = 0x%x, want 0x%x", got, sysCtrl)
			}
			if got := r.s.Peek("HIBERN_CTRL_REG"); got != hibern {
				t.Errorf("HIBERN_CTRL = 0x%x, want 0x%x", got, hibern)
			}
		})
	}
}

func TestFailureKeepsCallerMask(t *testing.T) {
	old := core.SpinLimit
	core.SpinLimit = 20
	t.Cleanup(func() { core.SpinLimit = old })

	r := setup(t)
	r.s.Poke("ANA_STATUS_REG", 0)
	cfg := EnableWakeupPin(NewSleepConfig(), r.parts.P0_04.IntoPullUpInput())

	core.DisableInterrupts()
	err := r.aon.EnterHibernation(r.nv, r.clk, r.wd, cfg)
	if !errors.Is(err, core.ErrTimeout) {
		t.Fatalf("err = %v, want timeout", err)
	}
	if !core.InterruptsMasked() {
		t.Error("interrupts unmasked although the caller had masked them")
	}
}

func TestRemapRequiresRetention(t *testing.T) {
	tests := []struct {
		name  string
		remap crg.RemapAddr
		ram   [3]bool
		err   error
	}{
		{"ram1 off", crg.RemapRAM1, [3]bool{false, true, true}, ErrRemapNotRetained},
		{"ram3 off", crg.RemapRAM3, [3]bool{true, true, false}, ErrRemapNotRetained},
		{"ram1 kept", crg.RemapRAM1, [3]bool{true, false, false}, nil},
		{"otp", crg.RemapOTP, [3]bool{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setup(t)
			cfg := NewSleepConfig().EnablePins(0x1).
				SetRAMPower(tt.ram[0], tt.ram[1], tt.ram[2]).
				SetRemapAddr(tt.remap)
			r.s.ResetTrace()

			err := r.aon.EnterHibernation(r.nv, r.clk, r.wd, cfg)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if tt.err != nil && len(r.s.Trace()) != 0 {
				t.Errorf("registers touched before rejection: %v", traceStrings(r.s))
			}
		})
	}
}

func TestInvalidMaskPanics(t *testing.T) {
	for _, mask := range []uint8{0, 0x20, 0x81} {
		r := setup(t)
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("mask 0x%x should panic", mask)
				}
			}()
			r.aon.EnterHibernation(r.nv, r.clk, r.wd, NewSleepConfig().EnablePins(mask))
		}()
		if len(r.s.Writes("SET_FREEZE_REG")) != 0 {
			t.Errorf("mask 0x%x: sequence started", mask)
		}
	}
}

func TestWakeupPinBits(t *testing.T) {
	r := setup(t)
	cfg := NewSleepConfig()
	cfg = EnableWakeupPin(cfg, r.parts.P0_01.IntoPullUpInput())
	cfg = EnableWakeupPin(cfg, r.parts.P0_05.IntoFloatingInput())
	if cfg.PinMask() != 0x11 {
		t.Fatalf("mask = 0x%x, want 0x11", cfg.PinMask())
	}
}

func TestSetPadLatchEn(t *testing.T) {
	r := setup(t)
	r.aon.SetPadLatchEn(false)
	r.aon.SetPadLatchEn(true)
	w := r.s.Writes("PAD_LATCH_REG")
	if len(w) != 2 || w[0] != 0 || w[1] != 1 {
		t.Fatalf("PAD_LATCH writes = %v", w)
	}
}

func TestStageNames(t *testing.T) {
	if Preparing.String() != "preparing" || Asleep.String() != "asleep" || Stage(99).String() != "invalid" {
		t.Fatal("stage names")
	}
}
