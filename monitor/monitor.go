// Package monitor serves register peek/poke requests from a host over a
// byte stream, normally the UART. It is a debugging aid: writes go
// straight to the register file without any driver involvement.
package monitor

import (
	"errors"
	"io"

	"dahal/core"
	"dahal/device"
	"dahal/protocol"
)

// Name is the identity reported to the host
const Name = "dahal DA14531 " + protocol.Version

// Registers resolves addresses to registers; *device.Peripherals
// implements it.
type Registers interface {
	Lookup(addr uint32) (device.Entry, bool)
}

// Server answers requests read from rw
type Server struct {
	rw       io.ReadWriter
	regs     Registers
	dec      *protocol.Decoder
	buf      [protocol.FrameMax]byte
	out      *protocol.ScratchOutput
	served   uint32
	readOnly map[uint32]bool
}

// NewServer creates a server for regs on rw
func NewServer(rw io.ReadWriter, regs Registers) *Server {
	return &Server{
		rw:       rw,
		regs:     regs,
		dec:      protocol.NewDecoder(),
		out:      protocol.NewScratchOutput(),
		readOnly: make(map[uint32]bool),
	}
}

// ProtectRegister makes writes to addr fail with read_only. The target
// uses it for registers whose modification would kill the link itself.
func (s *Server) ProtectRegister(addr uint32) {
	s.readOnly[addr] = true
}

// Served returns the number of requests answered
func (s *Server) Served() uint32 {
	return s.served
}

// Poll performs one read from the stream and answers every complete
// request it yields. A timeout from the stream is not an error.
func (s *Server) Poll() error {
	n, err := s.rw.Read(s.buf[:])
	if err != nil && !errors.Is(err, core.ErrTimeout) && !errors.Is(err, io.EOF) {
		return err
	}
	data := s.buf[:n]
	for len(data) > 0 {
		k := s.dec.Feed(data)
		data = data[k:]
		if err := s.drain(); err != nil {
			return err
		}
	}
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	return nil
}

// Serve polls until the stream fails or reaches EOF
func (s *Server) Serve() error {
	for {
		if err := s.Poll(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (s *Server) drain() error {
	for {
		f, ok := s.dec.Next()
		if !ok {
			return nil
		}
		if err := s.reply(f.Seq, s.handle(f.Payload)); err != nil {
			return err
		}
	}
}

func (s *Server) handle(payload []byte) protocol.Message {
	req, err := protocol.DecodeMessage(payload)
	if err != nil {
		if errors.Is(err, protocol.ErrUnknownCommand) {
			return protocol.Error(string(core.ErrUnsupported))
		}
		return protocol.Error(string(core.ErrInvalidParam))
	}

	switch req.Cmd {
	case protocol.CmdIdentify:
		return protocol.Identity(Name)
	case protocol.CmdReadRegister:
		e, ok := s.regs.Lookup(req.Addr)
		if !ok {
			return protocol.Error(string(core.ErrUnknownReg))
		}
		return protocol.Value(req.Addr, e.Reg.Get())
	case protocol.CmdWriteRegister:
		e, ok := s.regs.Lookup(req.Addr)
		if !ok {
			return protocol.Error(string(core.ErrUnknownReg))
		}
		if s.readOnly[req.Addr] {
			return protocol.Error(string(core.ErrReadOnly))
		}
		e.Reg.Set(req.Value)
		return protocol.Value(req.Addr, e.Reg.Get())
	}
	// Replies sent to the target are not requests.
	return protocol.Error(string(core.ErrUnsupported))
}

// reply sends m behind a sync byte. The link also carries debug text, and
// the host decoder skips such text up to the next sync byte.
func (s *Server) reply(seq uint8, m protocol.Message) error {
	s.out.Reset()
	s.out.Output([]byte{protocol.SyncByte})
	if err := protocol.EncodeFrame(s.out, seq, m); err != nil {
		return err
	}
	if _, err := s.rw.Write(s.out.Result()); err != nil {
		return err
	}
	s.served++
	core.DebugPrintln("monitor: " + m.Cmd.String() + " seq " + core.Itoa(int(seq)))
	return nil
}
