package core

// Register is a memory-mapped peripheral register as seen by the drivers.
// The method set mirrors runtime/volatile.Register16/32 widened to 32 bits,
// so hardware registers and the host simulator are interchangeable.
type Register interface {
	Get() uint32
	Set(value uint32)
	SetBits(mask uint32)
	ClearBits(mask uint32)
	HasBits(mask uint32) bool
	// ReplaceBits clears mask<<pos and ors in value<<pos.
	ReplaceBits(value, mask uint32, pos uint8)
}

// Field extracts the field selected by mask (already shifted into place) and
// returns it right-aligned.
func Field(r Register, mask uint32, pos uint8) uint32 {
	return (r.Get() & mask) >> pos
}

// WriteBit sets or clears mask depending on on.
func WriteBit(r Register, mask uint32, on bool) {
	if on {
		r.SetBits(mask)
	} else {
		r.ClearBits(mask)
	}
}
