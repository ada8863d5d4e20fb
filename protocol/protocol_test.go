package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	tests := []Message{
		Identify(),
		ReadRegister(0x50003300),
		WriteRegister(0x50000030, 0x0840),
		Identity("dahal DA14531 " + Version),
		Value(0xE000E100, 0xFFFFFFFF),
		Error("unknown_register"),
	}
	for _, m := range tests {
		t.Run(m.Cmd.String(), func(t *testing.T) {
			out := NewScratchOutput()
			m.Encode(out)
			t.Logf("%s: % x", m.Cmd, out.Result())
			got, err := DecodeMessage(out.Result())
			if err != nil {
				t.Fatalf("DecodeMessage: %v", err)
			}
			if got != m {
				t.Errorf("got %+v, want %+v", got, m)
			}
		})
	}
}

func TestDecodeMessageErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    error
	}{
		{"empty", nil, ErrBufferTooSmall},
		{"unknown command", []byte{0x09}, ErrUnknownCommand},
		{"missing address", []byte{byte(CmdReadRegister)}, ErrBufferTooSmall},
		{"missing value", []byte{byte(CmdWriteRegister), 0x01}, ErrBufferTooSmall},
		{"trailing data", []byte{byte(CmdIdentify), 0x00}, ErrTrailingData},
		{"short text", []byte{byte(CmdError), 0x05, 'a'}, ErrBufferTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeMessage(tt.payload); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeFrame(t *testing.T) {
	frame, err := AppendFrame(nil, 3, Identify())
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x06, 0x13, 0x00, 0x50, 0x13, SyncByte}
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = % x, want % x", frame, want)
	}

	// Sequence numbers wrap into the low nibble
	frame, _ = AppendFrame(nil, 0x1F, Identify())
	if frame[posSeq] != 0x1F {
		t.Errorf("seq byte 0x%02x", frame[posSeq])
	}
}

func TestEncodeFrameTooLong(t *testing.T) {
	out := NewScratchOutput()
	out.Output([]byte{SyncByte})
	err := EncodeFrame(out, 0, Identity(strings.Repeat("x", PayloadMax)))
	if !errors.Is(err, ErrFrameTooLong) {
		t.Fatalf("err = %v, want ErrFrameTooLong", err)
	}
	if out.CurPosition() != 1 {
		t.Errorf("output not rewound: %d bytes", out.CurPosition())
	}

	// The largest Identity that fits: cmd + length + text
	if _, err := AppendFrame(nil, 0, Identity(strings.Repeat("x", PayloadMax-2))); err != nil {
		t.Errorf("maximal frame rejected: %v", err)
	}
}

func mustFrame(t *testing.T, seq uint8, m Message) []byte {
	t.Helper()
	f, err := AppendFrame(nil, seq, m)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func drain(d *Decoder) []Frame {
	var out []Frame
	for {
		f, ok := d.Next()
		if !ok {
			return out
		}
		out = append(out, f)
	}
}

func TestDecoderStream(t *testing.T) {
	a := mustFrame(t, 1, ReadRegister(0x50003300))
	b := mustFrame(t, 2, WriteRegister(0x50000030, 0x1234))
	stream := append(append([]byte{SyncByte, SyncByte}, a...), b...)

	tests := []struct {
		name  string
		chunk int
	}{
		{"whole", len(stream)},
		{"bytewise", 1},
		{"odd chunks", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			var frames []Frame
			for i := 0; i < len(stream); i += tt.chunk {
				end := min(i+tt.chunk, len(stream))
				if n := d.Feed(stream[i:end]); n != end-i {
					t.Fatalf("Feed accepted %d of %d", n, end-i)
				}
				frames = append(frames, drain(d)...)
			}
			if len(frames) != 2 || frames[0].Seq != 1 || frames[1].Seq != 2 {
				t.Fatalf("frames = %+v", frames)
			}
			m, err := DecodeMessage(frames[1].Payload)
			if err != nil || m != WriteRegister(0x50000030, 0x1234) {
				t.Errorf("second message = %+v, %v", m, err)
			}
			if d.Dropped() != 0 {
				t.Errorf("dropped %d", d.Dropped())
			}
		})
	}
}

func TestDecoderResync(t *testing.T) {
	good := mustFrame(t, 4, Identify())

	badCRC := mustFrame(t, 3, Identify())
	badCRC[2] ^= 0x01

	badSeq := mustFrame(t, 3, Identify())
	badSeq[posSeq] = 0x23

	tests := []struct {
		name   string
		prefix []byte
	}{
		{"garbage", []byte{0x01, 0x02, 0x03, SyncByte}},
		{"bad crc", badCRC},
		{"bad sequence byte", badSeq},
		{"oversized length", []byte{0x70, 0x10, 0x00, 0x00, 0x00, SyncByte}},
		{"debug text", append([]byte("monitor: value seq 1\r\n"), SyncByte)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			d.Feed(append(append([]byte(nil), tt.prefix...), good...))
			frames := drain(d)
			if len(frames) != 1 || frames[0].Seq != 4 {
				t.Fatalf("frames = %+v", frames)
			}
			if d.Dropped() == 0 {
				t.Error("corruption not counted")
			}
			t.Logf("dropped %d", d.Dropped())
		})
	}
}

func TestDecoderOverflow(t *testing.T) {
	d := NewDecoder()
	big := bytes.Repeat([]byte{0x00}, 3*FrameMax)
	n := d.Feed(big)
	if n != 2*FrameMax || d.Overflows() != 1 {
		t.Errorf("Feed = %d, overflows %d", n, d.Overflows())
	}
	d.Reset()
	if _, ok := d.Next(); ok {
		t.Error("frame after Reset")
	}
}
