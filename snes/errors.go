package snes

import "errors"

// Sentinel errors surfaced across the package boundary. Per-instruction and
// per-register anomalies (unknown opcodes, open-bus reads, unmapped writes)
// are not errors; they are logged or silently handled in place, matching the
// reference's preference for forward progress over fidelity.
var (
	// ErrInvalidROM is returned by LoadROM when, after stripping any copier
	// header, the remaining image is shorter than a single 32 KiB bank.
	ErrInvalidROM = errors.New("snes: rom too small")

	// ErrBadSnapshot is returned by Restore when a Snapshot's array lengths
	// disagree with what the running components expect.
	ErrBadSnapshot = errors.New("snes: snapshot shape mismatch")

	// ErrFrameInProgress is returned by Snapshot/Restore if called while a
	// RunFrame is underway; the contract only allows capture between frames.
	ErrFrameInProgress = errors.New("snes: snapshot requested mid-frame")
)
