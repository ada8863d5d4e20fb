// Package mcu talks to the register monitor running on a DA14531
package mcu

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"dahal/core"
	"dahal/host/serial"
	"dahal/protocol"
)

// Defaults for request handling
const (
	DefaultTimeout = 500 * time.Millisecond
	DefaultRetries = 2
)

var (
	ErrNotConnected = errors.New("mcu: not connected")
	ErrNoResponse   = errors.New("mcu: no response")
	ErrBadReply     = errors.New("mcu: unexpected reply")
)

// MCU represents a connection to the monitor
type MCU struct {
	mu        sync.Mutex
	port      serial.Port
	dec       *protocol.Decoder
	seq       uint8
	buf       [protocol.FrameMax]byte
	timeout   time.Duration
	retries   int
	connected bool
}

// NewMCU creates a new MCU instance (not yet connected)
func NewMCU() *MCU {
	return &MCU{
		dec:     protocol.NewDecoder(),
		timeout: DefaultTimeout,
		retries: DefaultRetries,
	}
}

// Connect connects to the monitor via serial port
func (m *MCU) Connect(device string) error {
	return m.ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig connects with a custom serial config
func (m *MCU) ConnectWithConfig(cfg *serial.Config) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}
	return m.Attach(port)
}

// Attach uses an already open port
func (m *MCU) Attach(port serial.Port) error {
	if err := port.Flush(); err != nil {
		return fmt.Errorf("mcu: flushing port: %w", err)
	}
	m.mu.Lock()
	m.port = port
	m.dec.Reset()
	m.connected = true
	m.mu.Unlock()
	return nil
}

// SetTimeout sets how long a single attempt waits for its reply
func (m *MCU) SetTimeout(d time.Duration) {
	m.timeout = d
}

// SetRetries sets how often a request is resent after a timeout
func (m *MCU) SetRetries(n int) {
	m.retries = n
}

// Close closes the connection
func (m *MCU) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return nil
	}
	m.connected = false
	return m.port.Close()
}

// IsConnected returns whether a port is attached
func (m *MCU) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// Identify returns the name the firmware reports
func (m *MCU) Identify() (string, error) {
	reply, err := m.call(protocol.Identify())
	if err != nil {
		return "", err
	}
	if reply.Cmd != protocol.CmdIdentity {
		return "", fmt.Errorf("%w: %s", ErrBadReply, reply.Cmd)
	}
	return reply.Text, nil
}

// ReadRegister returns the value of the register mapped at addr
func (m *MCU) ReadRegister(addr uint32) (uint32, error) {
	reply, err := m.call(protocol.ReadRegister(addr))
	if err != nil {
		return 0, fmt.Errorf("mcu: read 0x%08x: %w", addr, err)
	}
	return m.value(addr, reply)
}

// WriteRegister writes value at addr and returns the register's contents
// read back after the write.
func (m *MCU) WriteRegister(addr, value uint32) (uint32, error) {
	reply, err := m.call(protocol.WriteRegister(addr, value))
	if err != nil {
		return 0, fmt.Errorf("mcu: write 0x%08x: %w", addr, err)
	}
	return m.value(addr, reply)
}

func (m *MCU) value(addr uint32, reply protocol.Message) (uint32, error) {
	if reply.Cmd != protocol.CmdValue || reply.Addr != addr {
		return 0, fmt.Errorf("%w: %s for 0x%08x", ErrBadReply, reply.Cmd, reply.Addr)
	}
	return reply.Value, nil
}

// call sends req and waits for the reply carrying the same sequence
// number. Error replies come back as core.Code values.
func (m *MCU) call(req protocol.Message) (protocol.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return protocol.Message{}, ErrNotConnected
	}

	m.seq = (m.seq + 1) & protocol.SeqMask
	// A leading sync byte lets the firmware drop any partial frame first.
	frame, err := protocol.AppendFrame([]byte{protocol.SyncByte}, m.seq, req)
	if err != nil {
		return protocol.Message{}, err
	}

	for attempt := 0; attempt <= m.retries; attempt++ {
		if _, err := m.port.Write(frame); err != nil {
			return protocol.Message{}, fmt.Errorf("mcu: write: %w", err)
		}
		reply, err := m.await(m.seq)
		if errors.Is(err, ErrNoResponse) {
			continue
		}
		if err != nil {
			return protocol.Message{}, err
		}
		if reply.Cmd == protocol.CmdError {
			return protocol.Message{}, core.Code(reply.Text)
		}
		return reply, nil
	}
	return protocol.Message{}, ErrNoResponse
}

func (m *MCU) await(seq uint8) (protocol.Message, error) {
	deadline := time.Now().Add(m.timeout)
	for time.Now().Before(deadline) {
		n, err := m.port.Read(m.buf[:])
		if err != nil && !errors.Is(err, io.EOF) {
			return protocol.Message{}, fmt.Errorf("mcu: read: %w", err)
		}
		if n == 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		data := m.buf[:n]
		for len(data) > 0 {
			k := m.dec.Feed(data)
			data = data[k:]
			if reply, ok, err := m.match(seq); ok {
				return reply, err
			}
		}
	}
	return protocol.Message{}, ErrNoResponse
}

// match drains decoded frames until one carries seq. Replies to earlier,
// timed out attempts are skipped.
func (m *MCU) match(seq uint8) (protocol.Message, bool, error) {
	for {
		f, ok := m.dec.Next()
		if !ok {
			return protocol.Message{}, false, nil
		}
		if f.Seq != seq {
			continue
		}
		reply, err := protocol.DecodeMessage(f.Payload)
		return reply, true, err
	}
}
