package snes

import "testing"

func TestPPU_VRAMRoundTrip(t *testing.T) {
	p := NewPPU()

	p.writeRegister(0x2116, 0x00) // VMADDL
	p.writeRegister(0x2117, 0x00) // VMADDH
	p.writeRegister(0x2118, 0x34) // VMDATAL
	p.writeRegister(0x2119, 0x12) // VMDATAH

	p.writeRegister(0x2116, 0x00) // re-latch address to re-prime read buffer
	p.writeRegister(0x2117, 0x00)

	lo := p.readRegister(0x2139) // VMDATALREAD: prefetched buffer
	hi := p.readRegister(0x213A) // VMDATAHREAD

	got := uint16(lo) | uint16(hi)<<8
	if got != 0x1234 {
		t.Errorf("VRAM round-trip = %#04x, want $1234", got)
	}
}

func TestPPU_CGRAMRoundTrip(t *testing.T) {
	p := NewPPU()

	p.writeRegister(0x2121, 0x00) // CGADD
	p.writeRegister(0x2122, 0xCD) // low byte latch
	p.writeRegister(0x2122, 0xFF) // high byte, bit 7 masked on store

	p.writeRegister(0x2121, 0x00) // reset address + toggle for read-back
	lo := p.readRegister(0x213B)
	hi := p.readRegister(0x213B)

	if lo != 0xCD {
		t.Errorf("CGRAM low byte = %#02x, want $CD", lo)
	}
	if hi != 0x7F {
		t.Errorf("CGRAM high byte = %#02x, want $7F (bit 7 masked)", hi)
	}
}

func TestPPU_OAMDataBufferedWrite(t *testing.T) {
	p := NewPPU()
	p.writeRegister(0x2102, 0x00) // OAMADDL
	p.writeRegister(0x2103, 0x00) // OAMADDH

	p.writeRegister(0x2104, 0x11)
	p.writeRegister(0x2104, 0x22)

	if p.oamLow[0] != 0x11 || p.oamLow[1] != 0x22 {
		t.Errorf("OAM low table = %#02x %#02x, want $11 $22", p.oamLow[0], p.oamLow[1])
	}
}

func TestPPU_INIDISP(t *testing.T) {
	p := NewPPU()
	p.writeRegister(0x2100, 0x8F) // force blank + brightness 15
	if !p.forceBlank {
		t.Error("force blank not set")
	}
	if p.brightness != 0x0F {
		t.Errorf("brightness = %d, want 15", p.brightness)
	}
}

func TestPPU_Timing(t *testing.T) {
	p := NewPPU()

	for i := 0; i < 341*224; i++ {
		p.step()
	}
	if p.scanline != 224 {
		t.Fatalf("scanline = %d, want 224 after 224 lines", p.scanline)
	}

	for i := 0; i < 341; i++ {
		p.step()
	}
	if !p.inVBlank {
		t.Error("expected inVBlank at scanline 225")
	}

	for p.scanline != 0 {
		p.step()
	}
	if p.inVBlank {
		t.Error("expected inVBlank cleared after wraparound")
	}
	if p.frameCount != 1 {
		t.Errorf("frameCount = %d, want 1", p.frameCount)
	}
}

func TestPPU_ForceBlankRendersBlack(t *testing.T) {
	p := NewPPU()
	p.writeRegister(0x2100, 0x80) // force blank
	p.endScanline(0)

	row := p.buffer[0:screenWidth*4]
	for i := 0; i < screenWidth; i++ {
		if row[i*4] != 0 || row[i*4+1] != 0 || row[i*4+2] != 0 {
			t.Fatalf("pixel %d not black under force blank", i)
			break
		}
		if row[i*4+3] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i, row[i*4+3])
		}
	}
}
