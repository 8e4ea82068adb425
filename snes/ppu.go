package snes

// PPU register map ($2100-$213F, addr&0x3F selects the row below). Reads
// and writes outside this table (window masking, color math, and other
// registers the core doesn't need to interpret) are held in a raw shadow
// array so their state round-trips even though this implementation never
// acts on it — see Design Notes on the shared I/O shadow.
//
//	$2100 INIDISP  W  brightness / force-blank
//	$2101 OBSEL    W  sprite size/name select
//	$2102/03       W  OAMADDL/H
//	$2104 OAMDATA  W  buffered low-table word write
//	$2105 BGMODE   W  screen mode, per-BG tile size
//	$2106 MOSAIC   W  mosaic size/enable
//	$2107-0A BGxSC W  tilemap base/size
//	$210B/0C NBA   W  tile-data base
//	$210D-14       W  BG scroll (shared latch)
//	$2115 VMAIN    W  vram increment/remap
//	$2116/17       W  VMADDL/H
//	$2118/19       W  VMDATAL/H
//	$211A M7SEL    W  Mode-7 flip/fill/repeat
//	$211B-20       W  M7A-D, M7X/Y (shared "previous byte" latch)
//	$2121 CGADD    W  CGRAM address
//	$2122 CGDATA   W  CGRAM word write
//	$212C/2D TM/TS W  main/sub layer enable
//	$2134-36 MPY   R  signed multiply result
//	$2137 SLHV     R  latch H/V counters
//	$2138          R  OAMDATAREAD
//	$2139/3A       R  VMDATALREAD/HREAD
//	$213B          R  CGDATAREAD
//	$213C/3D       R  OPHCT/OPVCT
//	$213E/3F       R  STAT77/STAT78
const (
	regINIDISP  = 0x00
	regOBSEL    = 0x01
	regOAMADDL  = 0x02
	regOAMADDH  = 0x03
	regOAMDATA  = 0x04
	regBGMODE   = 0x05
	regMOSAIC   = 0x06
	regBG1SC    = 0x07
	regBG4SC    = 0x0A
	regBG12NBA  = 0x0B
	regBG34NBA  = 0x0C
	regBG1HOFS  = 0x0D
	regBG4VOFS  = 0x14
	regVMAIN    = 0x15
	regVMADDL   = 0x16
	regVMADDH   = 0x17
	regVMDATAL  = 0x18
	regVMDATAH  = 0x19
	regM7SEL    = 0x1A
	regM7A      = 0x1B
	regM7D      = 0x1E
	regM7X      = 0x1F
	regM7Y      = 0x20
	regCGADD    = 0x21
	regCGDATA   = 0x22
	regTM       = 0x2C
	regTS       = 0x2D
	regMPYL     = 0x34
	regMPYH     = 0x36
	regSLHV     = 0x37
	regOAMDREAD = 0x38
	regVMDATALR = 0x39
	regVMDATAHR = 0x3A
	regCGDREAD  = 0x3B
	regOPHCT    = 0x3C
	regOPVCT    = 0x3D
	regSTAT77   = 0x3E
	regSTAT78   = 0x3F
)

const (
	vramWords  = 0x8000
	cgramBytes = 512
	oamLowLen  = 512
	oamHighLen = 32

	screenWidth  = 256
	screenHeight = 224
)

type bgLayer struct {
	tilemapBase  uint16
	tilemapSize  byte
	tileDataBase uint16
	tileSize16   bool
	hScroll      uint16
	vScroll      uint16
}

// PPU holds the memory-mapped register file, VRAM/CGRAM/OAM, and the
// H/V timing model described in spec.md §4.3. Rendering is contract-level
// (see ppu_render.go): state plumbing is complete, pixel output is a
// simplified approximation.
type PPU struct {
	reg [64]byte

	vram  [vramWords * 2]byte
	cgram [cgramBytes]byte

	oamLow  [oamLowLen]byte
	oamHigh [oamHighLen]byte

	vramAddress    uint16
	vramIncrement  uint16
	vramRemapMode  byte
	vramReadBuffer uint16
	vmainIncOnHigh bool

	oamAddress     uint16
	oamFirstWrite  bool
	oamWriteBuffer byte

	cgramAddress byte
	cgramLatch   byte
	cgramToggle  bool

	m7A, m7B, m7C, m7D int16
	m7X, m7Y           int16
	m7PrevWrite        byte
	m7FlipX, m7FlipY   bool
	m7OutsideFill      bool
	m7Repeat           bool

	bgPrevWrite byte
	bg          [4]bgLayer
	bgEnabled   [4]bool
	objEnabled  bool
	mainEnable  byte
	subEnable   byte

	oamSizeIndex  byte
	oamNameSelect byte
	oamNameBase   byte
	mosaicSize    byte
	mosaicEnable  byte

	screenMode byte
	brightness byte
	forceBlank bool

	hCounter, vCounter               uint16
	hCounterLatched, vCounterLatched uint16
	hvLatched                        bool
	ppu1OpenBus, ppu2OpenBus         byte

	scanline     int
	cycle        int
	inVBlank     bool
	inHBlank     bool
	frameOddEven bool
	frameCount   uint64
	nmiFlag      bool

	buffer []byte
}

// NewPPU builds a PPU with a blank 256x224 RGBA framebuffer.
func NewPPU() *PPU {
	return &PPU{
		buffer: make([]byte, screenWidth*screenHeight*4),
	}
}

func (p *PPU) reset() {
	*p = PPU{buffer: p.buffer}
	for i := range p.buffer {
		p.buffer[i] = 0
	}
}

func (p *PPU) refillVRAMBuffer() {
	off := int(p.vramAddress) * 2
	p.vramReadBuffer = uint16(p.vram[off]) | uint16(p.vram[off+1])<<8
}

func (p *PPU) advanceVRAM() {
	p.vramAddress = (p.vramAddress + p.vramIncrement) & 0x7FFF
}

func (p *PPU) writeOAMData(v byte) {
	if p.oamAddress < 0x200 {
		if p.oamAddress%2 == 0 {
			p.oamWriteBuffer = v
		} else {
			p.oamLow[p.oamAddress-1] = p.oamWriteBuffer
			p.oamLow[p.oamAddress] = v
		}
	} else {
		idx := (p.oamAddress - 0x200) % oamHighLen
		p.oamHigh[idx] = v
	}
	p.oamAddress = (p.oamAddress + 1) % 1024
}

func (p *PPU) readOAMData() byte {
	var v byte
	if p.oamAddress < 0x200 {
		v = p.oamLow[p.oamAddress]
	} else {
		v = p.oamHigh[(p.oamAddress-0x200)%oamHighLen]
	}
	p.oamAddress = (p.oamAddress + 1) % 1024
	return v
}

func (p *PPU) writeCGData(v byte) {
	if !p.cgramToggle {
		p.cgramLatch = v
		p.cgramToggle = true
		return
	}
	idx := int(p.cgramAddress) * 2
	p.cgram[idx] = p.cgramLatch
	p.cgram[idx+1] = v & 0x7F
	p.cgramAddress++
	p.cgramToggle = false
}

func (p *PPU) readCGData() byte {
	idx := int(p.cgramAddress) * 2
	if !p.cgramToggle {
		p.cgramToggle = true
		return p.cgram[idx]
	}
	p.cgramToggle = false
	v := p.cgram[idx+1] & 0x7F
	p.cgramAddress++
	return v
}

func (p *PPU) mpy() int32 {
	return int32(p.m7A) * int32(int8(byte(p.m7B)))
}

func (p *PPU) latchHV() {
	p.hCounterLatched = p.hCounter
	p.vCounterLatched = p.vCounter
	p.hvLatched = true
}

func (p *PPU) writeBGScroll(bg *bgLayer, horizontal bool, v byte) {
	if horizontal {
		bg.hScroll = uint16(v)<<8 | uint16(p.bgPrevWrite)
	} else {
		bg.vScroll = uint16(v)<<8 | uint16(p.bgPrevWrite)
	}
	p.bgPrevWrite = v
}

func (p *PPU) writeM7(prev *int16, v byte) {
	*prev = int16(uint16(v)<<8 | uint16(p.m7PrevWrite))
	p.m7PrevWrite = v
}

// readRegister implements the PPU side of the Bus/CPU register contract.
func (p *PPU) readRegister(addr uint16) byte {
	off := addr & 0x3F
	switch off {
	case regMPYL:
		return byte(p.mpy())
	case regMPYL + 1:
		return byte(p.mpy() >> 8)
	case regMPYH:
		return byte(p.mpy() >> 16)
	case regSLHV:
		p.latchHV()
		return p.ppu2OpenBus
	case regOAMDREAD:
		return p.readOAMData()
	case regVMDATALR:
		v := byte(p.vramReadBuffer)
		if !p.vmainIncOnHigh {
			p.advanceVRAM()
			p.refillVRAMBuffer()
		}
		return v
	case regVMDATAHR:
		v := byte(p.vramReadBuffer >> 8)
		if p.vmainIncOnHigh {
			p.advanceVRAM()
			p.refillVRAMBuffer()
		}
		return v
	case regCGDREAD:
		return p.readCGData()
	case regOPHCT:
		if !p.hvLatched {
			p.latchHV()
		}
		return byte(p.hCounterLatched)
	case regOPVCT:
		if !p.hvLatched {
			p.latchHV()
		}
		return byte(p.vCounterLatched)
	case regSTAT77:
		v := byte(0)
		if p.frameOddEven {
			v |= 0x10
		}
		if p.ppu1OpenBus != 0 {
			v |= 0x40
		}
		p.hvLatched = false
		return v
	case regSTAT78:
		v := byte(0x03)
		v |= byte((p.hCounterLatched >> 8) & 1 << 6)
		v |= byte((p.vCounterLatched >> 8) & 1 << 7)
		p.hvLatched = false
		return v
	}
	return p.reg[off]
}

// writeRegister implements the PPU side of the Bus/CPU register contract.
func (p *PPU) writeRegister(addr uint16, v byte) {
	off := addr & 0x3F
	p.reg[off] = v

	switch off {
	case regINIDISP:
		p.brightness = v & 0x0F
		p.forceBlank = v&0x80 != 0
	case regOBSEL:
		p.oamSizeIndex = (v >> 5) & 0x07
		p.oamNameSelect = (v >> 3) & 0x03
		p.oamNameBase = v & 0x07
	case regOAMADDL:
		p.oamAddress = (p.oamAddress &^ 0xFF) | uint16(v)
		p.oamFirstWrite = true
	case regOAMADDH:
		p.oamAddress = (p.oamAddress &^ 0x300) | uint16(v&0x01)<<8
		p.oamFirstWrite = true
	case regOAMDATA:
		p.writeOAMData(v)
	case regBGMODE:
		p.screenMode = v & 0x07
		for i := 0; i < 4; i++ {
			p.bg[i].tileSize16 = v&(0x10<<uint(i)) != 0
		}
	case regMOSAIC:
		p.mosaicSize = (v >> 4) + 1
		p.mosaicEnable = v & 0x0F
	case regBG1SC, regBG1SC + 1, regBG1SC + 2, regBG4SC:
		idx := off - regBG1SC
		p.bg[idx].tilemapBase = uint16(v&0xFC) >> 2 << 10
		p.bg[idx].tilemapSize = v & 0x03
	case regBG12NBA:
		p.bg[0].tileDataBase = uint16(v&0x0F) << 12
		p.bg[1].tileDataBase = uint16(v>>4) << 12
	case regBG34NBA:
		p.bg[2].tileDataBase = uint16(v&0x0F) << 12
		p.bg[3].tileDataBase = uint16(v>>4) << 12
	case regBG1HOFS, regBG1HOFS + 2, regBG1HOFS + 4, regBG1HOFS + 6:
		idx := (off - regBG1HOFS) / 2
		p.writeBGScroll(&p.bg[idx], true, v)
	case regBG1HOFS + 1, regBG1HOFS + 3, regBG1HOFS + 5, regBG4VOFS:
		idx := (off - regBG1HOFS - 1) / 2
		p.writeBGScroll(&p.bg[idx], false, v)
	case regVMAIN:
		if v&0x80 != 0 {
			p.vramIncrement = 32
			p.vmainIncOnHigh = true
		} else {
			p.vramIncrement = 1
			p.vmainIncOnHigh = false
		}
		p.vramRemapMode = (v >> 2) & 0x03
	case regVMADDL:
		p.vramAddress = (p.vramAddress &^ 0x00FF) | uint16(v)
		p.vramAddress &= 0x7FFF
		p.refillVRAMBuffer()
	case regVMADDH:
		p.vramAddress = (p.vramAddress &^ 0xFF00) | uint16(v)<<8
		p.vramAddress &= 0x7FFF
		p.refillVRAMBuffer()
	case regVMDATAL:
		p.vram[int(p.vramAddress)*2] = v
		if !p.vmainIncOnHigh {
			p.advanceVRAM()
		}
	case regVMDATAH:
		p.vram[int(p.vramAddress)*2+1] = v
		if p.vmainIncOnHigh {
			p.advanceVRAM()
		}
	case regM7SEL:
		p.m7FlipX = v&0x01 != 0
		p.m7FlipY = v&0x02 != 0
		p.m7OutsideFill = v&0x80 != 0
		p.m7Repeat = v&0x40 == 0
	case regM7A:
		p.writeM7(&p.m7A, v)
	case regM7A + 1:
		p.writeM7(&p.m7B, v)
	case regM7A + 2:
		p.writeM7(&p.m7C, v)
	case regM7D:
		p.writeM7(&p.m7D, v)
	case regM7X:
		p.writeM7(&p.m7X, v)
	case regM7Y:
		p.writeM7(&p.m7Y, v)
	case regCGADD:
		p.cgramAddress = v
		p.cgramToggle = false
	case regCGDATA:
		p.writeCGData(v)
	case regTM:
		p.mainEnable = v
		for i := 0; i < 4; i++ {
			p.bgEnabled[i] = v&(1<<uint(i)) != 0
		}
		p.objEnabled = v&0x10 != 0
	case regTS:
		p.subEnable = v
	}
}
