package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"dahal/device"
)

// target is the subset of *mcu.MCU the shell drives
type target interface {
	Identify() (string, error)
	ReadRegister(addr uint32) (uint32, error)
	WriteRegister(addr, value uint32) (uint32, error)
}

var errUsage = errors.New("usage")

type shell struct {
	t      target
	out    io.Writer
	byName map[string]device.RegisterInfo
	byAddr map[uint32]device.RegisterInfo
	names  []string
}

func newShell(t target, out io.Writer) *shell {
	s := &shell{
		t:      t,
		out:    out,
		byName: make(map[string]device.RegisterInfo),
		byAddr: make(map[uint32]device.RegisterInfo),
	}
	for _, info := range device.RegisterMap() {
		s.byName[info.Name] = info
		s.byAddr[info.Addr] = info
		s.names = append(s.names, info.Name)
	}
	sort.Strings(s.names)
	return s
}

// exec runs one command line. quit reports a request to leave the shell.
func (s *shell) exec(line string) (quit bool, err error) {
	args, err := shlex.Split(line)
	if err != nil {
		return false, fmt.Errorf("parse: %w", err)
	}
	if len(args) == 0 {
		return false, nil
	}

	switch cmd, args := args[0], args[1:]; cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		s.help()
	case "id":
		name, err := s.t.Identify()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, name)
	case "list", "ls":
		s.list(args)
	case "read", "r":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: read <register>", errUsage)
		}
		return false, s.read(args[0])
	case "write", "w":
		if len(args) != 2 {
			return false, fmt.Errorf("%w: write <register> <value>", errUsage)
		}
		return false, s.modify(args[0], args[1], func(_, v uint32) uint32 { return v })
	case "set":
		if len(args) != 2 {
			return false, fmt.Errorf("%w: set <register> <mask>", errUsage)
		}
		return false, s.modify(args[0], args[1], func(old, m uint32) uint32 { return old | m })
	case "clear":
		if len(args) != 2 {
			return false, fmt.Errorf("%w: clear <register> <mask>", errUsage)
		}
		return false, s.modify(args[0], args[1], func(old, m uint32) uint32 { return old &^ m })
	case "dump":
		return false, s.dump(args)
	default:
		return false, fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
	return false, nil
}

func (s *shell) help() {
	fmt.Fprintln(s.out, "Available commands:")
	fmt.Fprintln(s.out, "  id                      - Show the firmware identity")
	fmt.Fprintln(s.out, "  list [prefix]           - List known registers")
	fmt.Fprintln(s.out, "  read <reg>              - Read a register by name or address")
	fmt.Fprintln(s.out, "  write <reg> <value>     - Write a register")
	fmt.Fprintln(s.out, "  set <reg> <mask>        - Set bits (read-modify-write)")
	fmt.Fprintln(s.out, "  clear <reg> <mask>      - Clear bits (read-modify-write)")
	fmt.Fprintln(s.out, "  dump [prefix...]        - Read every register matching a prefix")
	fmt.Fprintln(s.out, "  quit/exit/q             - Exit the program")
}

// resolve accepts a register name (case-insensitive, _REG suffix
// optional) or a numeric address.
func (s *shell) resolve(arg string) (uint32, string, error) {
	name := strings.ToUpper(arg)
	if info, ok := s.byName[name]; ok {
		return info.Addr, info.Name, nil
	}
	if info, ok := s.byName[name+"_REG"]; ok {
		return info.Addr, info.Name, nil
	}
	addr, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return 0, "", fmt.Errorf("unknown register %q", arg)
	}
	if info, ok := s.byAddr[uint32(addr)]; ok {
		return info.Addr, info.Name, nil
	}
	return uint32(addr), fmt.Sprintf("0x%08x", addr), nil
}

func parseValue(arg string) (uint32, error) {
	v, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q", arg)
	}
	return uint32(v), nil
}

func (s *shell) read(arg string) error {
	addr, name, err := s.resolve(arg)
	if err != nil {
		return err
	}
	v, err := s.t.ReadRegister(addr)
	if err != nil {
		return err
	}
	s.print(name, addr, v)
	return nil
}

func (s *shell) modify(reg, arg string, op func(old, v uint32) uint32) error {
	addr, name, err := s.resolve(reg)
	if err != nil {
		return err
	}
	v, err := parseValue(arg)
	if err != nil {
		return err
	}
	old, err := s.t.ReadRegister(addr)
	if err != nil {
		return err
	}
	got, err := s.t.WriteRegister(addr, op(old, v))
	if err != nil {
		return err
	}
	s.print(name, addr, got)
	return nil
}

func (s *shell) list(prefixes []string) {
	for _, name := range s.names {
		if matches(name, prefixes) {
			info := s.byName[name]
			fmt.Fprintf(s.out, "0x%08x %-26s %d-bit reset 0x%x\n", info.Addr, name, info.Width, info.Reset)
		}
	}
}

func (s *shell) dump(prefixes []string) error {
	for _, info := range device.RegisterMap() {
		if !matches(info.Name, prefixes) {
			continue
		}
		v, err := s.t.ReadRegister(info.Addr)
		if err != nil {
			return err
		}
		s.print(info.Name, info.Addr, v)
	}
	return nil
}

func (s *shell) print(name string, addr, v uint32) {
	fmt.Fprintf(s.out, "%-26s @0x%08x = 0x%04x (%d)\n", name, addr, v, v)
}

func matches(name string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(name, strings.ToUpper(p)) {
			return true
		}
	}
	return false
}
