package snes

import (
	"reflect"
	"testing"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	rom := resetROM(0x8000, 0x8000, 0xA9, 0x42)
	sys := New(nil)
	if err := sys.LoadROM(rom); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	sys.PowerOn()
	sys.RunFrame()

	snap1, err := sys.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if err := sys.Restore(snap1); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	snap2, err := sys.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot after restore: %v", err)
	}

	if !reflect.DeepEqual(snap1, snap2) {
		t.Error("snapshot -> restore -> snapshot must be byte-equal")
	}
}

func TestSnapshot_BadShapeRejected(t *testing.T) {
	sys := New(nil)
	bad := Snapshot{}
	bad.Bus.WRAM = make([]byte, 10) // wrong length

	if err := sys.Restore(bad); err == nil {
		t.Fatal("expected ErrBadSnapshot for mismatched array length")
	}
}

func TestSnapshot_RejectsMidFrame(t *testing.T) {
	sys := New(nil)
	sys.inFrame = true
	if _, err := sys.Snapshot(); err != ErrFrameInProgress {
		t.Fatalf("expected ErrFrameInProgress, got %v", err)
	}
}
