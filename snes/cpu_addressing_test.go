package snes

import "testing"

// Operand bytes are fetched through the CPU's own PB:PC, so tests that
// need to plant operand bytes run the CPU out of WRAM bank $7E (writable)
// rather than the ROM banks the reset vector normally points into.

func TestResolveAddress(t *testing.T) {
	_, c := newTestCPU(resetROM(0x8000, 0x8000))
	c.reset()
	c.E = false
	c.D = 0x1000
	c.DB = 0x7E
	c.X = 0x0005
	c.Y = 0x0010
	c.S = 0x01F0
	c.PB = 0x7E
	c.PC = 0x0000

	tests := []struct {
		name  string
		mode  addrMode
		setup func()
		want  uint32
	}{
		{
			name: "direct page",
			mode: modeDirect,
			setup: func() {
				c.bus.write8(uint32(c.PB)<<16|uint32(c.PC), 0x20)
			},
			want: 0x001020,
		},
		{
			name: "direct page,X",
			mode: modeDirectX,
			setup: func() {
				c.bus.write8(uint32(c.PB)<<16|uint32(c.PC), 0x20)
			},
			want: 0x001025,
		},
		{
			name: "absolute",
			mode: modeAbsolute,
			setup: func() {
				c.bus.write8(uint32(c.PB)<<16|uint32(c.PC), 0x00)
				c.bus.write8(uint32(c.PB)<<16|uint32(c.PC)+1, 0x30)
			},
			want: 0x7E3000,
		},
		{
			name: "absolute long",
			mode: modeAbsoluteLong,
			setup: func() {
				c.bus.write8(uint32(c.PB)<<16|uint32(c.PC), 0x00)
				c.bus.write8(uint32(c.PB)<<16|uint32(c.PC)+1, 0x30)
				c.bus.write8(uint32(c.PB)<<16|uint32(c.PC)+2, 0x01)
			},
			want: 0x013000,
		},
		{
			name: "stack relative",
			mode: modeStackRelative,
			setup: func() {
				c.bus.write8(uint32(c.PB)<<16|uint32(c.PC), 0x05)
			},
			want: 0x0001F5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.PC = 0x0000
			tt.setup()
			got := c.resolveAddress(tt.mode)
			if got != tt.want {
				t.Errorf("resolveAddress(%v) = %#06x, want %#06x", tt.mode, got, tt.want)
			}
		})
	}
}

func TestResolveAddress_DirectIndirectIndexed(t *testing.T) {
	_, c := newTestCPU(resetROM(0x8000, 0x8000))
	c.reset()
	c.E = false
	c.D = 0x0000
	c.DB = 0x01
	c.Y = 0x0002
	c.PB = 0x7E
	c.PC = 0x0000

	// (dp),Y: pointer word lives at D+dp in bank 0.
	c.bus.write16(0x000010, 0x2000)
	c.bus.write8(0x7E0000, 0x10) // dp operand

	got := c.resolveAddress(modeDirectIndirectY)
	want := uint32(0x01)<<16 | 0x2002
	if got != want {
		t.Errorf("(dp),Y = %#06x, want %#06x", got, want)
	}
}
