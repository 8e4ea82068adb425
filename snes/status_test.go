package snes

import "testing"

func TestStatus_updateNZ(t *testing.T) {
	tests := []struct {
		name      string
		v         uint16
		width     int
		wantZero  bool
		wantNeg   bool
	}{
		{"8-bit zero", 0x00, 8, true, false},
		{"8-bit negative", 0x80, 8, false, true},
		{"8-bit positive", 0x42, 8, false, false},
		{"8-bit ignores high byte", 0xFF00, 8, true, false},
		{"16-bit zero", 0x0000, 16, true, false},
		{"16-bit negative", 0x8000, 16, false, true},
		{"16-bit positive", 0x1234, 16, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p status
			p.updateNZ(tt.v, tt.width)
			if got := p.has(flagZero); got != tt.wantZero {
				t.Errorf("Z = %v, want %v", got, tt.wantZero)
			}
			if got := p.has(flagNegative); got != tt.wantNeg {
				t.Errorf("N = %v, want %v", got, tt.wantNeg)
			}
		})
	}
}

func TestStatus_setClear(t *testing.T) {
	var p status
	p.set(flagCarry, true)
	if !p.has(flagCarry) {
		t.Fatal("expected carry set")
	}
	p.set(flagCarry, false)
	if p.has(flagCarry) {
		t.Fatal("expected carry clear")
	}
}
