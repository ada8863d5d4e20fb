// Package protocol is the wire format of the register monitor.
//
// A frame is
//
//	len | 0x10|seq | payload... | crc_hi | crc_lo | 0x7E
//
// where len counts the whole frame and the CRC covers len, seq and the
// payload. The payload is a VLQ-encoded command id followed by its
// arguments. Requests and their replies carry the same sequence number.
package protocol

import "errors"

// Version is reported in the Identity reply
const Version = "0.1.0"

// Framing constants
const (
	FrameHeader  = 2
	FrameTrailer = 3
	FrameMin     = FrameHeader + FrameTrailer
	FrameMax     = 64
	PayloadMax   = FrameMax - FrameMin

	SyncByte = 0x7E
	SeqDest  = 0x10
	SeqMask  = 0x0F

	posLen = 0
	posSeq = 1
)

// Cmd identifies a request or reply
type Cmd uint8

const (
	CmdIdentify Cmd = iota
	CmdReadRegister
	CmdWriteRegister
	CmdIdentity
	CmdValue
	CmdError
)

var cmdNames = [...]string{"identify", "read_register", "write_register", "identity", "value", "error"}

func (c Cmd) String() string {
	if int(c) < len(cmdNames) {
		return cmdNames[c]
	}
	return "unknown"
}

var (
	ErrUnknownCommand = errors.New("protocol: unknown command")
	ErrTrailingData   = errors.New("protocol: trailing data after message")
	ErrFrameTooLong   = errors.New("protocol: payload does not fit a frame")
)

// Message is one decoded request or reply. Addr and Value are used by the
// register commands, Text by Identity and Error.
type Message struct {
	Cmd   Cmd
	Addr  uint32
	Value uint32
	Text  string
}

// Identify asks the target for its name
func Identify() Message { return Message{Cmd: CmdIdentify} }

// ReadRegister requests the value of the register mapped at addr
func ReadRegister(addr uint32) Message { return Message{Cmd: CmdReadRegister, Addr: addr} }

// WriteRegister requests value to be written at addr
func WriteRegister(addr, value uint32) Message {
	return Message{Cmd: CmdWriteRegister, Addr: addr, Value: value}
}

// Identity replies to Identify
func Identity(name string) Message { return Message{Cmd: CmdIdentity, Text: name} }

// Value replies to a register request with the current contents
func Value(addr, value uint32) Message { return Message{Cmd: CmdValue, Addr: addr, Value: value} }

// Error replies with a stable error code
func Error(code string) Message { return Message{Cmd: CmdError, Text: code} }

// Encode writes the payload of m
func (m Message) Encode(out OutputBuffer) {
	EncodeVLQUint(out, uint32(m.Cmd))
	switch m.Cmd {
	case CmdReadRegister:
		EncodeVLQUint(out, m.Addr)
	case CmdWriteRegister, CmdValue:
		EncodeVLQUint(out, m.Addr)
		EncodeVLQUint(out, m.Value)
	case CmdIdentity, CmdError:
		EncodeVLQString(out, m.Text)
	}
}

// DecodeMessage parses a frame payload
func DecodeMessage(payload []byte) (Message, error) {
	id, err := DecodeVLQUint(&payload)
	if err != nil {
		return Message{}, err
	}
	m := Message{Cmd: Cmd(id)}
	switch m.Cmd {
	case CmdIdentify:
	case CmdReadRegister:
		m.Addr, err = DecodeVLQUint(&payload)
	case CmdWriteRegister, CmdValue:
		if m.Addr, err = DecodeVLQUint(&payload); err == nil {
			m.Value, err = DecodeVLQUint(&payload)
		}
	case CmdIdentity, CmdError:
		m.Text, err = DecodeVLQString(&payload)
	default:
		return Message{}, ErrUnknownCommand
	}
	if err != nil {
		return Message{}, err
	}
	if len(payload) != 0 {
		return Message{}, ErrTrailingData
	}
	return m, nil
}
