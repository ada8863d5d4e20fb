package gpio

// Pin number markers. They carry no data; the type selects the pin.
type (
	P0_00 struct{}
	P0_01 struct{}
	P0_02 struct{}
	P0_03 struct{}
	P0_04 struct{}
	P0_05 struct{}
	P0_06 struct{}
	P0_07 struct{}
	P0_08 struct{}
	P0_09 struct{}
	P0_10 struct{}
	P0_11 struct{}
)

func (P0_00) Number() uint8 { return 0 }
func (P0_01) Number() uint8 { return 1 }
func (P0_02) Number() uint8 { return 2 }
func (P0_03) Number() uint8 { return 3 }
func (P0_04) Number() uint8 { return 4 }
func (P0_05) Number() uint8 { return 5 }
func (P0_06) Number() uint8 { return 6 }
func (P0_07) Number() uint8 { return 7 }
func (P0_08) Number() uint8 { return 8 }
func (P0_09) Number() uint8 { return 9 }
func (P0_10) Number() uint8 { return 10 }
func (P0_11) Number() uint8 { return 11 }

// Number is satisfied by the pin markers of port 0.
type Number interface {
	P0_00 | P0_01 | P0_02 | P0_03 | P0_04 | P0_05 |
		P0_06 | P0_07 | P0_08 | P0_09 | P0_10 | P0_11
	Number() uint8
}

// WakeupCapable pins can wake the chip from hibernation.
type WakeupCapable interface {
	P0_01 | P0_02 | P0_03 | P0_04 | P0_05
	Number() uint8
}

// ADCCapable pins can be routed to the GPADC.
type ADCCapable interface {
	P0_01 | P0_02 | P0_06 | P0_07
	Number() uint8
}
