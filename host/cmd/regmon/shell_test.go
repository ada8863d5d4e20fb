package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"dahal/core"
	"dahal/device"
)

// fakeTarget serves the reset values of the register map
type fakeTarget struct {
	regs  map[uint32]uint32
	reads int
}

func newFakeTarget() *fakeTarget {
	f := &fakeTarget{regs: make(map[uint32]uint32)}
	for _, info := range device.RegisterMap() {
		f.regs[info.Addr] = info.Reset
	}
	return f
}

func (f *fakeTarget) Identify() (string, error) { return "fake", nil }

func (f *fakeTarget) ReadRegister(addr uint32) (uint32, error) {
	f.reads++
	v, ok := f.regs[addr]
	if !ok {
		return 0, core.ErrUnknownReg
	}
	return v, nil
}

func (f *fakeTarget) WriteRegister(addr, v uint32) (uint32, error) {
	if _, ok := f.regs[addr]; !ok {
		return 0, core.ErrUnknownReg
	}
	f.regs[addr] = v
	return v, nil
}

func TestShellCommands(t *testing.T) {
	const p03 = device.GPIO_BASE + 0x0C
	tests := []struct {
		line string
		want string // substring of the output
		reg  uint32 // expected P03_MODE_REG afterwards
	}{
		{"id", "fake", 0x200},
		{"read p03_mode", "P03_MODE_REG", 0x200},
		{"r P03_MODE_REG", "= 0x0200", 0x200},
		{fmt.Sprintf("read %#x", p03), "P03_MODE_REG", 0x200},
		{"write p03_mode 0x300", "= 0x0300", 0x300},
		{"set 'p03_mode' 0x001", "= 0x0201", 0x201},
		{`clear "P03_MODE_REG" 0x200`, "= 0x0000", 0x000},
		{"list p03", "P03_MODE_REG", 0x200},
		{"help", "Available commands", 0x200},
		{"", "", 0x200},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			f := newFakeTarget()
			var out bytes.Buffer
			quit, err := newShell(f, &out).exec(tt.line)
			if err != nil || quit {
				t.Fatalf("exec = %t, %v", quit, err)
			}
			t.Logf("%s", out.String())
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q does not contain %q", out.String(), tt.want)
			}
			if f.regs[p03] != tt.reg {
				t.Errorf("P03_MODE_REG = 0x%x, want 0x%x", f.regs[p03], tt.reg)
			}
		})
	}
}

func TestShellErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"read", errUsage},
		{"write p03_mode", errUsage},
		{"set a b c", errUsage},
		{"read 0x1234", core.ErrUnknownReg},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := newShell(newFakeTarget(), &bytes.Buffer{}).exec(tt.line)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	for _, line := range []string{"frobnicate", "read nosuch", "write p03_mode banana", `read "unterminated`} {
		if _, err := newShell(newFakeTarget(), &bytes.Buffer{}).exec(line); err == nil {
			t.Errorf("%q: expected an error", line)
		}
	}
}

func TestShellDump(t *testing.T) {
	f := newFakeTarget()
	var out bytes.Buffer
	if _, err := newShell(f, &out).exec("dump gp_adc"); err != nil {
		t.Fatal(err)
	}
	want := 0
	for _, info := range device.RegisterMap() {
		if strings.HasPrefix(info.Name, "GP_ADC") {
			want++
		}
	}
	lines := strings.Count(out.String(), "\n")
	if want == 0 || lines != want || f.reads != want {
		t.Errorf("dumped %d lines with %d reads, want %d", lines, f.reads, want)
	}
}

func TestShellQuit(t *testing.T) {
	for _, line := range []string{"quit", "exit", "q"} {
		quit, err := newShell(newFakeTarget(), &bytes.Buffer{}).exec(line)
		if !quit || err != nil {
			t.Errorf("%q: quit=%t err=%v", line, quit, err)
		}
	}
}
