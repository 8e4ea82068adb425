package snes

import (
	"log"
	"os"
)

const (
	cyclesPerScanline = 1364
	scanlinesPerFrame = 262
	cpuDivider        = 12
	ppuDivider        = 4
)

// System owns the CPU, PPU, APU and Bus, drives the master-clock frame
// loop described in spec.md §4.5, and is the sole entry point external
// callers (a GUI shell, a test) use to run the machine.
type System struct {
	Bus *Bus
	CPU *CPU
	PPU *PPU
	APU *APU

	totalCycles uint64
	isRunning   bool
	inFrame     bool

	logger *log.Logger
}

// New builds a fully wired System: a Bus with its PPU/APU ports attached,
// and a CPU reading/writing through that Bus. logger receives diagnostic
// output (unknown-opcode traces, ROM vector dumps); pass nil for
// os.Stderr, matching the teacher's debugOut parameter threaded through
// newCpu.
func New(logger *log.Logger) *System {
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}

	bus := NewBus()
	ppu := NewPPU()
	apu := NewAPU()
	cpu := NewCPU(bus, logger)
	bus.attach(ppu, apu)

	return &System{
		Bus:    bus,
		CPU:    cpu,
		PPU:    ppu,
		APU:    apu,
		logger: logger,
	}
}

// LoadROM strips any copier header, validates length, and stores the ROM
// on the Bus. It does not reset the machine; call PowerOn afterwards.
func (s *System) LoadROM(rom []byte) error {
	if err := s.Bus.LoadROM(rom); err != nil {
		return err
	}
	if v := s.Bus.vectors(); s.logger != nil {
		s.logger.Printf("snes: loaded %d byte ROM, vectors %s", len(s.Bus.rom), v.describe())
	}
	return nil
}

// PowerOn resets every component and starts the clock. Matches
// spec.md §4.5: "resets all components and sets isRunning".
func (s *System) PowerOn() {
	s.Bus.reset()
	s.CPU.reset()
	s.PPU.reset()
	s.APU.reset()
	s.totalCycles = 0
	s.isRunning = true
}

// PowerOff stops the clock without resetting component state, so a
// subsequent inspection (e.g. of the framebuffer) still sees the last
// rendered frame.
func (s *System) PowerOff() {
	s.isRunning = false
}

// IsRunning reports whether PowerOn has been called without a matching
// PowerOff.
func (s *System) IsRunning() bool { return s.isRunning }

// TotalCycles returns the master-clock tick count since the last PowerOn.
func (s *System) TotalCycles() uint64 { return s.totalCycles }

// RunFrame executes one full frame: 262 scanlines of 1364 master-cycle
// ticks each, calling cpu.step() every 12 ticks and ppu.step() every 4,
// apu.step() every tick, and notifying the PPU at scanline and frame
// boundaries. If the System isn't running, RunFrame returns immediately.
func (s *System) RunFrame() {
	if !s.isRunning {
		return
	}

	s.inFrame = true
	defer func() { s.inFrame = false }()

	for line := 0; line < scanlinesPerFrame; line++ {
		for tick := 0; tick < cyclesPerScanline; tick++ {
			if s.totalCycles%cpuDivider == 0 {
				s.CPU.Step()
			}
			if s.totalCycles%ppuDivider == 0 {
				s.PPU.step()
			}
			s.APU.step()
			s.totalCycles++
		}
		s.PPU.endScanline(line)
	}
	s.PPU.endFrame()
}

// Framebuffer exposes the PPU's current 256x224 RGBA buffer. Per spec.md
// §5, callers must only read it between RunFrame calls.
func (s *System) Framebuffer() []byte { return s.PPU.Framebuffer() }

// FrameCount returns the number of frames the PPU has completed.
func (s *System) FrameCount() uint64 { return s.PPU.frameCount }
