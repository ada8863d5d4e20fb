package protocol

// Frame is a verified frame with its header and trailer stripped
type Frame struct {
	Seq     uint8 // 0..15
	Payload []byte
}

// EncodeFrame appends the frame carrying m to out. The payload is
// checked against PayloadMax before the trailer is written; on error out
// is rewound to where it was.
func EncodeFrame(out *ScratchOutput, seq uint8, m Message) error {
	cursor := out.CurPosition()
	out.Output([]byte{0, SeqDest | seq&SeqMask})
	m.Encode(out)

	n := len(out.DataSince(cursor))
	if n-FrameHeader > PayloadMax {
		out.Truncate(cursor)
		return ErrFrameTooLong
	}
	out.Update(cursor+posLen, uint8(n+FrameTrailer))

	crc := CRC16(out.DataSince(cursor))
	out.Output([]byte{
		uint8(crc >> 8),
		uint8(crc & 0xFF),
		SyncByte,
	})
	return nil
}

// AppendFrame returns the encoded frame for m as a new slice
func AppendFrame(dst []byte, seq uint8, m Message) ([]byte, error) {
	out := NewScratchOutput()
	if err := EncodeFrame(out, seq, m); err != nil {
		return dst, err
	}
	return append(dst, out.Result()...), nil
}

// Decoder reassembles frames from a byte stream. After a malformed frame
// it discards input up to the next sync byte and carries on.
type Decoder struct {
	fifo     *FifoBuffer
	synced   bool
	dropped  uint32
	overflow uint32
}

// NewDecoder returns a decoder able to hold two full frames
func NewDecoder() *Decoder {
	return &Decoder{fifo: NewFifoBuffer(2*FrameMax + 1), synced: true}
}

// Feed queues received bytes and returns how many were accepted. Callers
// drain Next before feeding the rest.
func (d *Decoder) Feed(p []byte) int {
	n := d.fifo.Write(p)
	if n < len(p) {
		d.overflow++
	}
	return n
}

// Next returns the next complete, CRC-checked frame. ok is false when more
// input is needed.
func (d *Decoder) Next() (f Frame, ok bool) {
	for {
		data := d.fifo.Data()
		if len(data) == 0 {
			return Frame{}, false
		}

		if !d.synced {
			i := indexSync(data)
			if i < 0 {
				d.fifo.Pop(len(data))
				return Frame{}, false
			}
			d.fifo.Pop(i + 1)
			d.synced = true
			continue
		}

		// Runs of sync bytes separate frames.
		if data[0] == SyncByte {
			d.fifo.Pop(1)
			continue
		}
		if len(data) < FrameMin {
			return Frame{}, false
		}

		n := int(data[posLen])
		seq := data[posSeq]
		if n < FrameMin || n > FrameMax || seq&^SeqMask != SeqDest {
			d.desync()
			continue
		}
		if len(data) < n {
			return Frame{}, false
		}
		if data[n-1] != SyncByte {
			d.desync()
			continue
		}
		crc := uint16(data[n-FrameTrailer])<<8 | uint16(data[n-FrameTrailer+1])
		if crc != CRC16(data[:n-FrameTrailer]) {
			d.desync()
			continue
		}

		f = Frame{
			Seq:     seq & SeqMask,
			Payload: append([]byte(nil), data[FrameHeader:n-FrameTrailer]...),
		}
		d.fifo.Pop(n)
		return f, true
	}
}

// Dropped returns the number of malformed frames discarded so far
func (d *Decoder) Dropped() uint32 {
	return d.dropped
}

// Overflows returns how often Feed could not take all of its input
func (d *Decoder) Overflows() uint32 {
	return d.overflow
}

// Reset discards buffered input and resynchronises
func (d *Decoder) Reset() {
	d.fifo.Reset()
	d.synced = true
}

func (d *Decoder) desync() {
	d.synced = false
	d.dropped++
}

func indexSync(data []byte) int {
	for i, b := range data {
		if b == SyncByte {
			return i
		}
	}
	return -1
}
