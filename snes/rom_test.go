package snes

import (
	"errors"
	"testing"
)

func TestLoadROM_StripsCopierHeader(t *testing.T) {
	b := NewBus()
	rom := make([]byte, 0x8000+copierHeader)
	rom[copierHeader] = 0x42 // first byte after the stripped header

	if err := b.LoadROM(rom); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	if got := b.read8(0x008000); got != 0x42 {
		t.Errorf("header not stripped: got %#02x at ROM start", got)
	}
}

func TestLoadROM_TooSmall(t *testing.T) {
	b := NewBus()
	err := b.LoadROM(make([]byte, 0x100))
	if !errors.Is(err, ErrInvalidROM) {
		t.Fatalf("expected ErrInvalidROM, got %v", err)
	}
}

func TestLoadROM_Vectors(t *testing.T) {
	b := NewBus()
	rom := make([]byte, 0x8000)
	tail := rom[len(rom)-32:]
	tail[0x1C] = 0xCD
	tail[0x1D] = 0xAB

	if err := b.LoadROM(rom); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	v := b.vectors()
	if v.reset != 0xABCD {
		t.Errorf("reset vector = %#04x, want $ABCD", v.reset)
	}
}
