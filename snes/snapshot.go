package snes

import "fmt"

// CPUState is the flat, exported view of CPU register state captured in
// a Snapshot. Field names mirror the register names in spec.md §3.
type CPUState struct {
	A, X, Y uint16
	S       uint16
	D       uint16
	DB      byte
	PB      byte
	PC      uint16
	P       byte
	E       bool
	Cycles  uint64
}

// BusState is the flat view of Bus-owned memory.
type BusState struct {
	WRAM     []byte
	SRAM     []byte
	IOShadow []byte
}

// BGLayerState is the flat view of one background layer's tilemap/tile
// config and scroll registers.
type BGLayerState struct {
	TilemapBase  uint16
	TilemapSize  byte
	TileDataBase uint16
	TileSize16   bool
	HScroll      uint16
	VScroll      uint16
}

// PPUState is the flat view of PPU register file, VRAM/CGRAM/OAM and
// timing latches enumerated in spec.md §3.
type PPUState struct {
	Reg [64]byte

	VRAM  []byte
	CGRAM []byte

	OAMLow  []byte
	OAMHigh []byte

	VRAMAddress    uint16
	VRAMIncrement  uint16
	VRAMRemapMode  byte
	VRAMReadBuffer uint16
	VMAINIncOnHigh bool

	OAMAddress     uint16
	OAMFirstWrite  bool
	OAMWriteBuffer byte

	CGRAMAddress byte
	CGRAMLatch   byte
	CGRAMToggle  bool

	M7A, M7B, M7C, M7D int16
	M7X, M7Y           int16
	M7PrevWrite        byte
	M7FlipX, M7FlipY   bool
	M7OutsideFill      bool
	M7Repeat           bool

	BGPrevWrite byte
	BG          [4]BGLayerState
	BGEnabled   [4]bool
	ObjEnabled  bool
	MainEnable  byte
	SubEnable   byte

	OAMSizeIndex  byte
	OAMNameSelect byte
	OAMNameBase   byte
	MosaicSize    byte
	MosaicEnable  byte

	ScreenMode byte
	Brightness byte
	ForceBlank bool

	HCounter, VCounter               uint16
	HCounterLatched, VCounterLatched uint16
	HVLatched                        bool
	PPU1OpenBus, PPU2OpenBus         byte

	Scanline     int
	Cycle        int
	InVBlank     bool
	InHBlank     bool
	FrameOddEven bool
	FrameCount   uint64
	NMIFlag      bool

	Framebuffer []byte
}

// APUState is the flat view of the APU mailbox, RAM, DSP shadow and cycle
// count. The three timers are not captured, so Restore leaves their
// counters and outputs as they were.
type APUState struct {
	CPUToApuPorts [apuMailboxN]byte
	ApuToCpuPorts [apuMailboxN]byte
	RAM           []byte
	DSPRegs       []byte
	Cycles        uint64
}

// Snapshot is a self-describing save state: one struct per component plus
// the master-clock tick count, per SPEC_FULL.md §3.1. It carries no
// version field — callers wanting versioning wrap this struct themselves.
type Snapshot struct {
	CPU         CPUState
	Bus         BusState
	PPU         PPUState
	APU         APUState
	TotalCycles uint64
}

func bgLayerState(l bgLayer) BGLayerState {
	return BGLayerState{
		TilemapBase:  l.tilemapBase,
		TilemapSize:  l.tilemapSize,
		TileDataBase: l.tileDataBase,
		TileSize16:   l.tileSize16,
		HScroll:      l.hScroll,
		VScroll:      l.vScroll,
	}
}

func (b BGLayerState) toBGLayer() bgLayer {
	return bgLayer{
		tilemapBase:  b.TilemapBase,
		tilemapSize:  b.TilemapSize,
		tileDataBase: b.TileDataBase,
		tileSize16:   b.TileSize16,
		hScroll:      b.HScroll,
		vScroll:      b.VScroll,
	}
}

// Snapshot captures the current machine state. It must only be called
// between RunFrame calls; calling it mid-frame returns ErrFrameInProgress
// and a zero Snapshot.
func (s *System) Snapshot() (Snapshot, error) {
	if s.inFrame {
		return Snapshot{}, ErrFrameInProgress
	}

	return Snapshot{
		CPU: CPUState{
			A: s.CPU.A, X: s.CPU.X, Y: s.CPU.Y,
			S: s.CPU.S, D: s.CPU.D,
			DB: s.CPU.DB, PB: s.CPU.PB, PC: s.CPU.PC,
			P: byte(s.CPU.P), E: s.CPU.E, Cycles: s.CPU.Cycles,
		},
		Bus: BusState{
			WRAM:     append([]byte(nil), s.Bus.wram[:]...),
			SRAM:     append([]byte(nil), s.Bus.sram[:]...),
			IOShadow: append([]byte(nil), s.Bus.ioShadow[:]...),
		},
		PPU: PPUState{
			Reg:            s.PPU.reg,
			VRAM:           append([]byte(nil), s.PPU.vram[:]...),
			CGRAM:          append([]byte(nil), s.PPU.cgram[:]...),
			OAMLow:         append([]byte(nil), s.PPU.oamLow[:]...),
			OAMHigh:        append([]byte(nil), s.PPU.oamHigh[:]...),
			VRAMAddress:    s.PPU.vramAddress,
			VRAMIncrement:  s.PPU.vramIncrement,
			VRAMRemapMode:  s.PPU.vramRemapMode,
			VRAMReadBuffer: s.PPU.vramReadBuffer,
			VMAINIncOnHigh: s.PPU.vmainIncOnHigh,
			OAMAddress:     s.PPU.oamAddress,
			OAMFirstWrite:  s.PPU.oamFirstWrite,
			OAMWriteBuffer: s.PPU.oamWriteBuffer,
			CGRAMAddress:   s.PPU.cgramAddress,
			CGRAMLatch:     s.PPU.cgramLatch,
			CGRAMToggle:    s.PPU.cgramToggle,
			M7A:            s.PPU.m7A, M7B: s.PPU.m7B, M7C: s.PPU.m7C, M7D: s.PPU.m7D,
			M7X: s.PPU.m7X, M7Y: s.PPU.m7Y, M7PrevWrite: s.PPU.m7PrevWrite,
			M7FlipX: s.PPU.m7FlipX, M7FlipY: s.PPU.m7FlipY,
			M7OutsideFill: s.PPU.m7OutsideFill, M7Repeat: s.PPU.m7Repeat,
			BGPrevWrite: s.PPU.bgPrevWrite,
			BG: [4]BGLayerState{
				bgLayerState(s.PPU.bg[0]), bgLayerState(s.PPU.bg[1]),
				bgLayerState(s.PPU.bg[2]), bgLayerState(s.PPU.bg[3]),
			},
			BGEnabled:     s.PPU.bgEnabled,
			ObjEnabled:    s.PPU.objEnabled,
			MainEnable:    s.PPU.mainEnable,
			SubEnable:     s.PPU.subEnable,
			OAMSizeIndex:  s.PPU.oamSizeIndex,
			OAMNameSelect: s.PPU.oamNameSelect,
			OAMNameBase:   s.PPU.oamNameBase,
			MosaicSize:    s.PPU.mosaicSize,
			MosaicEnable:  s.PPU.mosaicEnable,
			ScreenMode:      s.PPU.screenMode,
			Brightness:      s.PPU.brightness,
			ForceBlank:      s.PPU.forceBlank,
			HCounter:        s.PPU.hCounter,
			VCounter:        s.PPU.vCounter,
			HCounterLatched: s.PPU.hCounterLatched,
			VCounterLatched: s.PPU.vCounterLatched,
			HVLatched:       s.PPU.hvLatched,
			PPU1OpenBus:     s.PPU.ppu1OpenBus,
			PPU2OpenBus:     s.PPU.ppu2OpenBus,
			Scanline:        s.PPU.scanline,
			Cycle:           s.PPU.cycle,
			InVBlank:        s.PPU.inVBlank,
			InHBlank:        s.PPU.inHBlank,
			FrameOddEven:    s.PPU.frameOddEven,
			FrameCount:      s.PPU.frameCount,
			NMIFlag:         s.PPU.nmiFlag,
			Framebuffer:     append([]byte(nil), s.PPU.buffer...),
		},
		APU: APUState{
			CPUToApuPorts: s.APU.cpuToApuPorts,
			ApuToCpuPorts: s.APU.apuToCpuPorts,
			RAM:           append([]byte(nil), s.APU.ram[:]...),
			DSPRegs:       append([]byte(nil), s.APU.dspRegs[:]...),
			Cycles:        s.APU.Cycles,
		},
		TotalCycles: s.totalCycles,
	}, nil
}

// Restore applies a previously captured Snapshot, validating that every
// byte-array field matches the size the running components expect before
// mutating anything. Per spec.md §7, a shape mismatch is ErrBadSnapshot
// and the System is left untouched.
func (s *System) Restore(snap Snapshot) error {
	if s.inFrame {
		return ErrFrameInProgress
	}
	if err := validateSnapshotShape(snap); err != nil {
		return err
	}

	s.CPU.A, s.CPU.X, s.CPU.Y = snap.CPU.A, snap.CPU.X, snap.CPU.Y
	s.CPU.S, s.CPU.D = snap.CPU.S, snap.CPU.D
	s.CPU.DB, s.CPU.PB, s.CPU.PC = snap.CPU.DB, snap.CPU.PB, snap.CPU.PC
	s.CPU.P = status(snap.CPU.P)
	s.CPU.E = snap.CPU.E
	s.CPU.Cycles = snap.CPU.Cycles

	copy(s.Bus.wram[:], snap.Bus.WRAM)
	copy(s.Bus.sram[:], snap.Bus.SRAM)
	copy(s.Bus.ioShadow[:], snap.Bus.IOShadow)

	s.PPU.reg = snap.PPU.Reg
	copy(s.PPU.vram[:], snap.PPU.VRAM)
	copy(s.PPU.cgram[:], snap.PPU.CGRAM)
	copy(s.PPU.oamLow[:], snap.PPU.OAMLow)
	copy(s.PPU.oamHigh[:], snap.PPU.OAMHigh)
	s.PPU.vramAddress = snap.PPU.VRAMAddress
	s.PPU.vramIncrement = snap.PPU.VRAMIncrement
	s.PPU.vramRemapMode = snap.PPU.VRAMRemapMode
	s.PPU.vramReadBuffer = snap.PPU.VRAMReadBuffer
	s.PPU.vmainIncOnHigh = snap.PPU.VMAINIncOnHigh
	s.PPU.oamAddress = snap.PPU.OAMAddress
	s.PPU.oamFirstWrite = snap.PPU.OAMFirstWrite
	s.PPU.oamWriteBuffer = snap.PPU.OAMWriteBuffer
	s.PPU.cgramAddress = snap.PPU.CGRAMAddress
	s.PPU.cgramLatch = snap.PPU.CGRAMLatch
	s.PPU.cgramToggle = snap.PPU.CGRAMToggle
	s.PPU.m7A, s.PPU.m7B, s.PPU.m7C, s.PPU.m7D = snap.PPU.M7A, snap.PPU.M7B, snap.PPU.M7C, snap.PPU.M7D
	s.PPU.m7X, s.PPU.m7Y, s.PPU.m7PrevWrite = snap.PPU.M7X, snap.PPU.M7Y, snap.PPU.M7PrevWrite
	s.PPU.m7FlipX, s.PPU.m7FlipY = snap.PPU.M7FlipX, snap.PPU.M7FlipY
	s.PPU.m7OutsideFill, s.PPU.m7Repeat = snap.PPU.M7OutsideFill, snap.PPU.M7Repeat
	s.PPU.bgPrevWrite = snap.PPU.BGPrevWrite
	for i := range s.PPU.bg {
		s.PPU.bg[i] = snap.PPU.BG[i].toBGLayer()
	}
	s.PPU.bgEnabled = snap.PPU.BGEnabled
	s.PPU.objEnabled = snap.PPU.ObjEnabled
	s.PPU.mainEnable = snap.PPU.MainEnable
	s.PPU.subEnable = snap.PPU.SubEnable
	s.PPU.oamSizeIndex = snap.PPU.OAMSizeIndex
	s.PPU.oamNameSelect = snap.PPU.OAMNameSelect
	s.PPU.oamNameBase = snap.PPU.OAMNameBase
	s.PPU.mosaicSize = snap.PPU.MosaicSize
	s.PPU.mosaicEnable = snap.PPU.MosaicEnable
	s.PPU.screenMode = snap.PPU.ScreenMode
	s.PPU.brightness = snap.PPU.Brightness
	s.PPU.forceBlank = snap.PPU.ForceBlank
	s.PPU.hCounter, s.PPU.vCounter = snap.PPU.HCounter, snap.PPU.VCounter
	s.PPU.hCounterLatched, s.PPU.vCounterLatched = snap.PPU.HCounterLatched, snap.PPU.VCounterLatched
	s.PPU.hvLatched = snap.PPU.HVLatched
	s.PPU.ppu1OpenBus, s.PPU.ppu2OpenBus = snap.PPU.PPU1OpenBus, snap.PPU.PPU2OpenBus
	s.PPU.scanline = snap.PPU.Scanline
	s.PPU.cycle = snap.PPU.Cycle
	s.PPU.inVBlank = snap.PPU.InVBlank
	s.PPU.inHBlank = snap.PPU.InHBlank
	s.PPU.frameOddEven = snap.PPU.FrameOddEven
	s.PPU.frameCount = snap.PPU.FrameCount
	s.PPU.nmiFlag = snap.PPU.NMIFlag
	copy(s.PPU.buffer, snap.PPU.Framebuffer)

	s.APU.cpuToApuPorts = snap.APU.CPUToApuPorts
	s.APU.apuToCpuPorts = snap.APU.ApuToCpuPorts
	copy(s.APU.ram[:], snap.APU.RAM)
	copy(s.APU.dspRegs[:], snap.APU.DSPRegs)
	s.APU.Cycles = snap.APU.Cycles

	s.totalCycles = snap.TotalCycles
	return nil
}

func validateSnapshotShape(snap Snapshot) error {
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"Bus.WRAM", len(snap.Bus.WRAM), wramSize},
		{"Bus.SRAM", len(snap.Bus.SRAM), sramSize},
		{"Bus.IOShadow", len(snap.Bus.IOShadow), ioShadowLen},
		{"PPU.VRAM", len(snap.PPU.VRAM), vramWords * 2},
		{"PPU.CGRAM", len(snap.PPU.CGRAM), cgramBytes},
		{"PPU.OAMLow", len(snap.PPU.OAMLow), oamLowLen},
		{"PPU.OAMHigh", len(snap.PPU.OAMHigh), oamHighLen},
		{"PPU.Framebuffer", len(snap.PPU.Framebuffer), screenWidth * screenHeight * 4},
		{"APU.RAM", len(snap.APU.RAM), apuRAMSize},
		{"APU.DSPRegs", len(snap.APU.DSPRegs), dspRegsSize},
	}
	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf("%w: %s has %d bytes, want %d", ErrBadSnapshot, c.name, c.got, c.want)
		}
	}
	return nil
}
