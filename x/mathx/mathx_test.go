package mathx

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{11, 10, 0, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(int16(-7)) != 7 || Abs(3) != 3 {
		t.Fatal("Abs")
	}
}

func TestRoundDiv(t *testing.T) {
	tests := []struct {
		a, b, want uint32
	}{
		{10, 4, 3},
		{9, 4, 2},
		{16_000_000, 115200 * 16, 9},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := RoundDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("RoundDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		v, max, span, want uint16
	}{
		{50, 100, 16000, 8000},
		{0, 100, 16000, 0},
		{200, 100, 16000, 16000},
		{1, 0, 16000, 0},
	}
	for _, tt := range tests {
		if got := Scale(tt.v, tt.max, tt.span); got != tt.want {
			t.Errorf("Scale(%d, %d, %d) = %d, want %d", tt.v, tt.max, tt.span, got, tt.want)
		}
	}
}
