package snes

// opEntry is one row of the 256-entry decoded opcode table described in
// Design Notes: an addressing-mode tag plus the operation it feeds.
// cycles is an approximate base cost (taken branches add to it at
// execution time; indexed modes do not); see cpu.go's Step for how it's
// accounted.
type opEntry struct {
	mode   addrMode
	cycles byte
	exec   func(c *CPU, mode addrMode, ea uint32)
}

// opcodeTable is indexed by opcode byte. The 65C816 defines all 256
// values (no illegal-opcode gaps, unlike the 6502 the reference
// emulates); entries left unset fall through Step's "unknown opcode"
// path, which should be unreachable for a conforming table.
var opcodeTable = [256]opEntry{
	0x00: {modeImplied, 7, opBRK},
	0x01: {modeDirectIndirectX, 6, opORA},
	0x02: {modeImplied, 7, opCOP},
	0x03: {modeStackRelative, 4, opORA},
	0x04: {modeDirect, 5, opTSB},
	0x05: {modeDirect, 3, opORA},
	0x06: {modeDirect, 5, opASL},
	0x07: {modeDirectIndirectLong, 6, opORA},
	0x08: {modeImplied, 3, opPHP},
	0x09: {modeImmediateM, 2, opORA},
	0x0A: {modeAccumulator, 2, opASL},
	0x0B: {modeImplied, 4, opPHD},
	0x0C: {modeAbsolute, 6, opTSB},
	0x0D: {modeAbsolute, 4, opORA},
	0x0E: {modeAbsolute, 6, opASL},
	0x0F: {modeAbsoluteLong, 5, opORA},

	0x10: {modeRelative8, 2, opBPL},
	0x11: {modeDirectIndirectY, 5, opORA},
	0x12: {modeDirectIndirect, 5, opORA},
	0x13: {modeStackRelativeY, 7, opORA},
	0x14: {modeDirect, 5, opTRB},
	0x15: {modeDirectX, 4, opORA},
	0x16: {modeDirectX, 6, opASL},
	0x17: {modeDirectIndirectLongY, 6, opORA},
	0x18: {modeImplied, 2, opCLC},
	0x19: {modeAbsoluteY, 4, opORA},
	0x1A: {modeAccumulator, 2, opINC},
	0x1B: {modeImplied, 2, opTCS},
	0x1C: {modeAbsolute, 6, opTRB},
	0x1D: {modeAbsoluteX, 4, opORA},
	0x1E: {modeAbsoluteX, 7, opASL},
	0x1F: {modeAbsoluteLongX, 5, opORA},

	0x20: {modeJumpAbsolute, 6, opJSR},
	0x21: {modeDirectIndirectX, 6, opAND},
	0x22: {modeJumpAbsoluteLong, 8, opJSL},
	0x23: {modeStackRelative, 4, opAND},
	0x24: {modeDirect, 3, opBIT},
	0x25: {modeDirect, 3, opAND},
	0x26: {modeDirect, 5, opROL},
	0x27: {modeDirectIndirectLong, 6, opAND},
	0x28: {modeImplied, 4, opPLP},
	0x29: {modeImmediateM, 2, opAND},
	0x2A: {modeAccumulator, 2, opROL},
	0x2B: {modeImplied, 5, opPLD},
	0x2C: {modeAbsolute, 4, opBIT},
	0x2D: {modeAbsolute, 4, opAND},
	0x2E: {modeAbsolute, 6, opROL},
	0x2F: {modeAbsoluteLong, 5, opAND},

	0x30: {modeRelative8, 2, opBMI},
	0x31: {modeDirectIndirectY, 5, opAND},
	0x32: {modeDirectIndirect, 5, opAND},
	0x33: {modeStackRelativeY, 7, opAND},
	0x34: {modeDirectX, 4, opBIT},
	0x35: {modeDirectX, 4, opAND},
	0x36: {modeDirectX, 6, opROL},
	0x37: {modeDirectIndirectLongY, 6, opAND},
	0x38: {modeImplied, 2, opSEC},
	0x39: {modeAbsoluteY, 4, opAND},
	0x3A: {modeAccumulator, 2, opDEC},
	0x3B: {modeImplied, 2, opTSC},
	0x3C: {modeAbsoluteX, 4, opBIT},
	0x3D: {modeAbsoluteX, 4, opAND},
	0x3E: {modeAbsoluteX, 7, opROL},
	0x3F: {modeAbsoluteLongX, 5, opAND},

	0x40: {modeImplied, 6, opRTI},
	0x41: {modeDirectIndirectX, 6, opEOR},
	0x42: {modeImmediate8, 2, opWDM},
	0x43: {modeStackRelative, 4, opEOR},
	0x44: {modeBlockMove, 7, opMVP},
	0x45: {modeDirect, 3, opEOR},
	0x46: {modeDirect, 5, opLSR},
	0x47: {modeDirectIndirectLong, 6, opEOR},
	0x48: {modeImplied, 3, opPHA},
	0x49: {modeImmediateM, 2, opEOR},
	0x4A: {modeAccumulator, 2, opLSR},
	0x4B: {modeImplied, 3, opPHK},
	0x4C: {modeJumpAbsolute, 3, opJMPAbs},
	0x4D: {modeAbsolute, 4, opEOR},
	0x4E: {modeAbsolute, 6, opLSR},
	0x4F: {modeAbsoluteLong, 5, opEOR},

	0x50: {modeRelative8, 2, opBVC},
	0x51: {modeDirectIndirectY, 5, opEOR},
	0x52: {modeDirectIndirect, 5, opEOR},
	0x53: {modeStackRelativeY, 7, opEOR},
	0x54: {modeBlockMove, 7, opMVN},
	0x55: {modeDirectX, 4, opEOR},
	0x56: {modeDirectX, 6, opLSR},
	0x57: {modeDirectIndirectLongY, 6, opEOR},
	0x58: {modeImplied, 2, opCLI},
	0x59: {modeAbsoluteY, 4, opEOR},
	0x5A: {modeImplied, 3, opPHY},
	0x5B: {modeImplied, 2, opTCD},
	0x5C: {modeJumpAbsoluteLong, 4, opJMPAbsLong},
	0x5D: {modeAbsoluteX, 4, opEOR},
	0x5E: {modeAbsoluteX, 7, opLSR},
	0x5F: {modeAbsoluteLongX, 5, opEOR},

	0x60: {modeImplied, 6, opRTS},
	0x61: {modeDirectIndirectX, 6, opADC},
	0x62: {modeRelative16, 6, opPER},
	0x63: {modeStackRelative, 4, opADC},
	0x64: {modeDirect, 3, opSTZ},
	0x65: {modeDirect, 3, opADC},
	0x66: {modeDirect, 5, opROR},
	0x67: {modeDirectIndirectLong, 6, opADC},
	0x68: {modeImplied, 4, opPLA},
	0x69: {modeImmediateM, 2, opADC},
	0x6A: {modeAccumulator, 2, opROR},
	0x6B: {modeImplied, 6, opRTL},
	0x6C: {modeJumpAbsoluteIndirect, 5, opJMPAbsIndirect},
	0x6D: {modeAbsolute, 4, opADC},
	0x6E: {modeAbsolute, 6, opROR},
	0x6F: {modeAbsoluteLong, 5, opADC},

	0x70: {modeRelative8, 2, opBVS},
	0x71: {modeDirectIndirectY, 5, opADC},
	0x72: {modeDirectIndirect, 5, opADC},
	0x73: {modeStackRelativeY, 7, opADC},
	0x74: {modeDirectX, 4, opSTZ},
	0x75: {modeDirectX, 4, opADC},
	0x76: {modeDirectX, 6, opROR},
	0x77: {modeDirectIndirectLongY, 6, opADC},
	0x78: {modeImplied, 2, opSEI},
	0x79: {modeAbsoluteY, 4, opADC},
	0x7A: {modeImplied, 4, opPLY},
	0x7B: {modeImplied, 2, opTDC},
	0x7C: {modeJumpAbsoluteIndirectX, 6, opJMPAbsIndirectX},
	0x7D: {modeAbsoluteX, 4, opADC},
	0x7E: {modeAbsoluteX, 7, opROR},
	0x7F: {modeAbsoluteLongX, 5, opADC},

	0x80: {modeRelative8, 3, opBRA},
	0x81: {modeDirectIndirectX, 6, opSTA},
	0x82: {modeRelative16, 4, opBRL},
	0x83: {modeStackRelative, 4, opSTA},
	0x84: {modeDirect, 3, opSTY},
	0x85: {modeDirect, 3, opSTA},
	0x86: {modeDirect, 3, opSTX},
	0x87: {modeDirectIndirectLong, 6, opSTA},
	0x88: {modeImplied, 2, opDEY},
	0x89: {modeImmediateM, 2, opBIT},
	0x8A: {modeImplied, 2, opTXA},
	0x8B: {modeImplied, 3, opPHB},
	0x8C: {modeAbsolute, 4, opSTY},
	0x8D: {modeAbsolute, 4, opSTA},
	0x8E: {modeAbsolute, 4, opSTX},
	0x8F: {modeAbsoluteLong, 5, opSTA},

	0x90: {modeRelative8, 2, opBCC},
	0x91: {modeDirectIndirectY, 6, opSTA},
	0x92: {modeDirectIndirect, 5, opSTA},
	0x93: {modeStackRelativeY, 7, opSTA},
	0x94: {modeDirectX, 4, opSTY},
	0x95: {modeDirectX, 4, opSTA},
	0x96: {modeDirectY, 4, opSTX},
	0x97: {modeDirectIndirectLongY, 6, opSTA},
	0x98: {modeImplied, 2, opTYA},
	0x99: {modeAbsoluteY, 5, opSTA},
	0x9A: {modeImplied, 2, opTXS},
	0x9B: {modeImplied, 2, opTXY},
	0x9C: {modeAbsolute, 4, opSTZ},
	0x9D: {modeAbsoluteX, 5, opSTA},
	0x9E: {modeAbsoluteX, 5, opSTZ},
	0x9F: {modeAbsoluteLongX, 5, opSTA},

	0xA0: {modeImmediateX, 2, opLDY},
	0xA1: {modeDirectIndirectX, 6, opLDA},
	0xA2: {modeImmediateX, 2, opLDX},
	0xA3: {modeStackRelative, 4, opLDA},
	0xA4: {modeDirect, 3, opLDY},
	0xA5: {modeDirect, 3, opLDA},
	0xA6: {modeDirect, 3, opLDX},
	0xA7: {modeDirectIndirectLong, 6, opLDA},
	0xA8: {modeImplied, 2, opTAY},
	0xA9: {modeImmediateM, 2, opLDA},
	0xAA: {modeImplied, 2, opTAX},
	0xAB: {modeImplied, 4, opPLB},
	0xAC: {modeAbsolute, 4, opLDY},
	0xAD: {modeAbsolute, 4, opLDA},
	0xAE: {modeAbsolute, 4, opLDX},
	0xAF: {modeAbsoluteLong, 5, opLDA},

	0xB0: {modeRelative8, 2, opBCS},
	0xB1: {modeDirectIndirectY, 5, opLDA},
	0xB2: {modeDirectIndirect, 5, opLDA},
	0xB3: {modeStackRelativeY, 7, opLDA},
	0xB4: {modeDirectX, 4, opLDY},
	0xB5: {modeDirectX, 4, opLDA},
	0xB6: {modeDirectY, 4, opLDX},
	0xB7: {modeDirectIndirectLongY, 6, opLDA},
	0xB8: {modeImplied, 2, opCLV},
	0xB9: {modeAbsoluteY, 4, opLDA},
	0xBA: {modeImplied, 2, opTSX},
	0xBB: {modeImplied, 2, opTYX},
	0xBC: {modeAbsoluteX, 4, opLDY},
	0xBD: {modeAbsoluteX, 4, opLDA},
	0xBE: {modeAbsoluteY, 4, opLDX},
	0xBF: {modeAbsoluteLongX, 5, opLDA},

	0xC0: {modeImmediateX, 2, opCPY},
	0xC1: {modeDirectIndirectX, 6, opCMP},
	0xC2: {modeImmediate8, 3, opREP},
	0xC3: {modeStackRelative, 4, opCMP},
	0xC4: {modeDirect, 3, opCPY},
	0xC5: {modeDirect, 3, opCMP},
	0xC6: {modeDirect, 5, opDEC},
	0xC7: {modeDirectIndirectLong, 6, opCMP},
	0xC8: {modeImplied, 2, opINY},
	0xC9: {modeImmediateM, 2, opCMP},
	0xCA: {modeImplied, 2, opDEX},
	0xCB: {modeImplied, 3, opWAI},
	0xCC: {modeAbsolute, 4, opCPY},
	0xCD: {modeAbsolute, 4, opCMP},
	0xCE: {modeAbsolute, 6, opDEC},
	0xCF: {modeAbsoluteLong, 5, opCMP},

	0xD0: {modeRelative8, 2, opBNE},
	0xD1: {modeDirectIndirectY, 5, opCMP},
	0xD2: {modeDirectIndirect, 5, opCMP},
	0xD3: {modeStackRelativeY, 7, opCMP},
	0xD4: {modeImplied, 6, opPEI},
	0xD5: {modeDirectX, 4, opCMP},
	0xD6: {modeDirectX, 6, opDEC},
	0xD7: {modeDirectIndirectLongY, 6, opCMP},
	0xD8: {modeImplied, 2, opCLD},
	0xD9: {modeAbsoluteY, 4, opCMP},
	0xDA: {modeImplied, 3, opPHX},
	0xDB: {modeImplied, 3, opSTP},
	0xDC: {modeJumpAbsoluteIndirectLong, 6, opJMPAbsIndirectLong},
	0xDD: {modeAbsoluteX, 4, opCMP},
	0xDE: {modeAbsoluteX, 7, opDEC},
	0xDF: {modeAbsoluteLongX, 5, opCMP},

	0xE0: {modeImmediateX, 2, opCPX},
	0xE1: {modeDirectIndirectX, 6, opSBC},
	0xE2: {modeImmediate8, 3, opSEP},
	0xE3: {modeStackRelative, 4, opSBC},
	0xE4: {modeDirect, 3, opCPX},
	0xE5: {modeDirect, 3, opSBC},
	0xE6: {modeDirect, 5, opINC},
	0xE7: {modeDirectIndirectLong, 6, opSBC},
	0xE8: {modeImplied, 2, opINX},
	0xE9: {modeImmediateM, 2, opSBC},
	0xEA: {modeImplied, 2, opNOP},
	0xEB: {modeImplied, 3, opXBA},
	0xEC: {modeAbsolute, 4, opCPX},
	0xED: {modeAbsolute, 4, opSBC},
	0xEE: {modeAbsolute, 6, opINC},
	0xEF: {modeAbsoluteLong, 5, opSBC},

	0xF0: {modeRelative8, 2, opBEQ},
	0xF1: {modeDirectIndirectY, 5, opSBC},
	0xF2: {modeDirectIndirect, 5, opSBC},
	0xF3: {modeStackRelativeY, 7, opSBC},
	0xF4: {modeImplied, 5, opPEA},
	0xF5: {modeDirectX, 4, opSBC},
	0xF6: {modeDirectX, 6, opINC},
	0xF7: {modeDirectIndirectLongY, 6, opSBC},
	0xF8: {modeImplied, 2, opSED},
	0xF9: {modeAbsoluteY, 4, opSBC},
	0xFA: {modeImplied, 4, opPLX},
	0xFB: {modeImplied, 2, opXCE},
	0xFC: {modeJumpAbsoluteIndirectX, 8, opJSRAbsIndirectX},
	0xFD: {modeAbsoluteX, 4, opSBC},
	0xFE: {modeAbsoluteX, 7, opINC},
	0xFF: {modeAbsoluteLongX, 5, opSBC},
}
