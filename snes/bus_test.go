package snes

import "testing"

func makeLoROM(size int, fill func([]byte)) []byte {
	rom := make([]byte, size)
	if fill != nil {
		fill(rom)
	}
	return rom
}

func TestBus_WRAMMirror(t *testing.T) {
	b := NewBus()
	b.write8(0x7E0042, 0xAB)

	if got := b.read8(0x000042); got != 0xAB {
		t.Errorf("bank $00 mirror: got %#02x, want $AB", got)
	}
	if got := b.read8(0x800042); got != 0xAB {
		t.Errorf("bank $80 mirror: got %#02x, want $AB", got)
	}
}

func TestBus_SRAM(t *testing.T) {
	b := NewBus()
	b.write8(0x006000, 0x55)
	if got := b.read8(0x006000); got != 0x55 {
		t.Errorf("got %#02x, want $55", got)
	}
}

func TestBus_LoROMMapping(t *testing.T) {
	b := NewBus()
	rom := makeLoROM(0x8000, func(r []byte) { r[0] = 0x11; r[0x100] = 0x22 })
	b.loadROM(rom)

	if got := b.read8(0x008000); got != 0x11 {
		t.Errorf("bank $00 offset $8000: got %#02x, want $11", got)
	}
	if got := b.read8(0x808100); got != 0x22 {
		t.Errorf("bank $80 offset $8100: got %#02x, want $22", got)
	}
}

func TestBus_VectorTailAlwaysLastROMBytes(t *testing.T) {
	b := NewBus()
	rom := makeLoROM(0x8000, nil)
	rom[len(rom)-32+0x1C] = 0x00
	rom[len(rom)-32+0x1D] = 0x80
	b.loadROM(rom)

	if got := b.read16(0x00FFFC); got != 0x8000 {
		t.Errorf("reset vector: got %#04x, want $8000", got)
	}
	if got := b.read16(0x01FFFC); got != 0x8000 {
		t.Errorf("vector tail must resolve from any program bank: got %#04x", got)
	}
}

func TestBus_HiROMLinear(t *testing.T) {
	b := NewBus()
	rom := make([]byte, 0x410000)
	rom[0x400000] = 0x99
	b.loadROM(rom)

	if got := b.read8(0x400000); got != 0x99 {
		t.Errorf("got %#02x, want $99", got)
	}
}

func TestBus_OpenBusAndDroppedWrites(t *testing.T) {
	b := NewBus()
	rom := makeLoROM(0x8000, nil)
	b.loadROM(rom)

	b.write8(0x008000, 0xEE) // write into ROM region: dropped
	if got := b.read8(0x008000); got != 0x00 {
		t.Errorf("write into ROM should be dropped, got %#02x", got)
	}

	// bank $01 offset $8000 lies past the end of a one-bank ROM: open bus.
	if got := b.read8(0x018000); got != 0xFF {
		t.Errorf("open-bus read = %#02x, want $FF", got)
	}
}

func TestBus_Read16Read24(t *testing.T) {
	b := NewBus()
	b.write8(0x7E0010, 0x34)
	b.write8(0x7E0011, 0x12)
	b.write8(0x7E0012, 0xAB)

	if got := b.read16(0x7E0010); got != 0x1234 {
		t.Errorf("read16 = %#04x, want $1234", got)
	}
	if got := b.read24(0x7E0010); got != 0xAB1234 {
		t.Errorf("read24 = %#06x, want $AB1234", got)
	}

	// read16(a) == read8(a) | read8(a+1)<<8 for all a
	lo := b.read8(0x7E0010)
	hi := b.read8(0x7E0011)
	if got := b.read16(0x7E0010); got != uint16(lo)|uint16(hi)<<8 {
		t.Errorf("read16 decomposition mismatch")
	}
}

func TestBus_Reset(t *testing.T) {
	b := NewBus()
	b.write8(0x7E0000, 0xFF)
	b.write8(0x006000, 0xFF)
	b.write8(0x002200, 0xFF)
	b.reset()

	if got := b.read8(0x7E0000); got != 0 {
		t.Errorf("WRAM not cleared")
	}
	if got := b.read8(0x006000); got != 0 {
		t.Errorf("SRAM not cleared")
	}
	if got := b.read8(0x002200); got != 0 {
		t.Errorf("I/O shadow not cleared")
	}
}
