package snes

import "testing"

// Scenario 6: frame cadence. A trivial ROM whose reset vector points at a
// tight infinite loop (BMI -2, never taken since N starts clear, so the CPU
// falls through into the zero-filled ROM and keeps executing BRK ($00) —
// what matters is the frame loop's own bookkeeping, not what the CPU
// executes).
func TestSystem_FrameCadence(t *testing.T) {
	rom := resetROM(0x8000, 0x8000, 0x30, 0xFE) // BMI -2
	sys := New(nil)
	if err := sys.LoadROM(rom); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	sys.PowerOn()

	sys.RunFrame()

	if sys.FrameCount() != 1 {
		t.Errorf("FrameCount = %d, want 1", sys.FrameCount())
	}
	if sys.TotalCycles() != 262*1364 {
		t.Errorf("TotalCycles = %d, want %d", sys.TotalCycles(), 262*1364)
	}
	if sys.PPU.scanline != 0 {
		t.Errorf("PPU.scanline = %d, want 0", sys.PPU.scanline)
	}
}

func TestSystem_PowerOffStopsRunFrame(t *testing.T) {
	rom := resetROM(0x8000, 0x8000)
	sys := New(nil)
	if err := sys.LoadROM(rom); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	sys.PowerOn()
	sys.PowerOff()
	sys.RunFrame()

	if sys.TotalCycles() != 0 {
		t.Errorf("TotalCycles = %d, want 0 (RunFrame must no-op when not running)", sys.TotalCycles())
	}
}

func TestSystem_FramebufferSize(t *testing.T) {
	sys := New(nil)
	if got := len(sys.Framebuffer()); got != 256*224*4 {
		t.Errorf("framebuffer size = %d, want %d", got, 256*224*4)
	}
}
